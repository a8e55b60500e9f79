package entities

// ServiceType classifies the kind of work covered by an estimate or service.
// The set is fixed; labels are what documents display.
type ServiceType string

const (
	ServiceTypeAlvenaria         ServiceType = "Alvenaria"
	ServiceTypeReparoGeral       ServiceType = "Reparo Geral"
	ServiceTypePintura           ServiceType = "Pintura"
	ServiceTypeHidraulica        ServiceType = "Hidráulica"
	ServiceTypeEletrica          ServiceType = "Elétrica"
	ServiceTypeMontagem          ServiceType = "Montagem"
	ServiceTypeManutencao        ServiceType = "Manutenção"
	ServiceTypeManutencaoGeral   ServiceType = "Manutenção Geral"
	ServiceTypeJardinagem        ServiceType = "Jardinagem"
	ServiceTypeLimpeza           ServiceType = "Limpeza"
	ServiceTypeImpermeabilizacao ServiceType = "Impermeabilização"
	ServiceTypeReforma           ServiceType = "Reforma"
	ServiceTypeTelhado           ServiceType = "Telhado"
	ServiceTypeMarcenaria        ServiceType = "Marcenaria"
	ServiceTypeGessoDrywall      ServiceType = "Gesso/Drywall"
	ServiceTypeInstalacao        ServiceType = "Instalação"
	ServiceTypeDemolicao         ServiceType = "Demolição"
	ServiceTypeOutros            ServiceType = "Outros"
)

// ServiceTypes lists every accepted service type.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeAlvenaria,
		ServiceTypeReparoGeral,
		ServiceTypePintura,
		ServiceTypeHidraulica,
		ServiceTypeEletrica,
		ServiceTypeMontagem,
		ServiceTypeManutencao,
		ServiceTypeManutencaoGeral,
		ServiceTypeJardinagem,
		ServiceTypeLimpeza,
		ServiceTypeImpermeabilizacao,
		ServiceTypeReforma,
		ServiceTypeTelhado,
		ServiceTypeMarcenaria,
		ServiceTypeGessoDrywall,
		ServiceTypeInstalacao,
		ServiceTypeDemolicao,
		ServiceTypeOutros,
	}
}

func (t ServiceType) Valid() bool {
	for _, v := range ServiceTypes() {
		if t == v {
			return true
		}
	}
	return false
}
