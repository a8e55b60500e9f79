// Package documents renders shareable representations of an estimate: the
// printable HTML proposal and the short plain-text summary.
package documents

import (
	"fmt"
	"html/template"
	"strings"

	"obrafacil/internal/domain/entities"
	"obrafacil/pkg/format"
)

var statusLabels = map[entities.EstimateStatus]string{
	entities.EstimateStatusPending:  "Aguardando aprovação",
	entities.EstimateStatusApproved: "Aprovado",
	entities.EstimateStatusRejected: "Rejeitado",
	entities.EstimateStatusExpired:  "Vencido",
}

func statusLabel(s entities.EstimateStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Desconhecido"
}

func paymentLabel(p entities.PaymentBase) string {
	switch p.Method {
	case entities.PaymentMethodCash:
		return "Dinheiro"
	case entities.PaymentMethodPix:
		return "Pix"
	case entities.PaymentMethodInstallments:
		return fmt.Sprintf("Parcelado (%dx)", p.Installments)
	case entities.PaymentMethodCreditCard:
		return "Cartão de crédito"
	case entities.PaymentMethodDebitCard:
		return "Cartão de débito"
	}
	return string(p.Method)
}

func serviceTypeList(types []entities.ServiceType) string {
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = string(t)
	}
	return strings.Join(labels, ", ")
}

var estimateTmpl = template.Must(template.New("estimate").Funcs(template.FuncMap{
	"money":  format.Money,
	"date":   format.Date,
	"status": statusLabel,
	"payment": func(e entities.Estimate) string {
		return paymentLabel(e.Payment)
	},
	"serviceTypes": serviceTypeList,
	"lineTotal": func(it entities.Item) string {
		return format.Money(it.Quantity * it.Value)
	},
}).Parse(estimateHTML))

type estimateDoc struct {
	Estimate   entities.Estimate
	ClientName string
}

// RenderEstimateHTML builds the printable proposal document for an estimate.
// The client is optional; an unknown client renders as "N/A".
func RenderEstimateHTML(e entities.Estimate, c *entities.Client) (string, error) {
	doc := estimateDoc{Estimate: e, ClientName: "N/A"}
	if c != nil && c.Name != "" {
		doc.ClientName = c.Name
	}
	var b strings.Builder
	if err := estimateTmpl.Execute(&b, doc); err != nil {
		return "", fmt.Errorf("render estimate document: %w", err)
	}
	return b.String(), nil
}

// EstimateSummary builds the short plain-text version used for quick sharing.
func EstimateSummary(e entities.Estimate, c *entities.Client) string {
	name, phone, email := "N/A", "N/A", "N/A"
	if c != nil {
		name, phone, email = c.Name, format.Phone(c.Phone), c.Email
	}
	desc := e.Description
	if desc == "" {
		desc = "-"
	}
	lines := []string{
		"Orçamento Nº " + e.ID,
		"Cliente: " + name,
		"Telefone: " + phone,
		"E-mail: " + email,
		"Total: " + format.Money(e.Total),
		"Descrição: " + desc,
	}
	return strings.Join(lines, "\n")
}

const estimateHTML = `<!DOCTYPE html>
<html lang="pt-BR">
  <head>
    <meta charset="UTF-8" />
    <style>
      * { box-sizing: border-box; }
      html, body { margin: 0; padding: 0; height: 100%; }
      body {
        font-family: Arial, sans-serif;
        padding: 40px;
        color: #333;
        line-height: 1.6;
        position: relative;
        min-height: 100%;
      }
      h1, h2 { color: #00695C; margin: 0 0 8px; }
      p { margin: 2px 0; }
      .header { text-align: center; margin-bottom: 24px; }
      .header h1 { font-size: 26px; text-transform: uppercase; }
      .section { margin-bottom: 16px; }
      .label { font-weight: bold; color: #444; margin-right: 4px; }
      .table { width: 100%; border-collapse: collapse; margin-top: 8px; }
      .table th, .table td {
        border: 1px solid #bbb;
        padding: 8px;
        text-align: left;
        vertical-align: top;
      }
      .table th { background-color: #f0f0f0; font-weight: bold; }
      .total { font-size: 18px; font-weight: bold; text-align: right; margin-top: 30px; }
      .signature { margin-top: 60px; display: flex; justify-content: flex-end; }
      .signature-line {
        margin-top: 40px;
        border-top: 1px solid #ccc;
        width: 200px;
        text-align: center;
        font-size: 12px;
        color: #777;
      }
      .footer {
        position: absolute;
        bottom: 40px;
        left: 40px;
        right: 40px;
        font-size: 14px;
        text-align: center;
      }
      .highlight { color: #00695C; font-weight: bold; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>ObraFácil - Orçamento</h1>
      <p>Data: {{date (.Estimate.CreatedAt.Format "2006-01-02")}} | Validade: {{date .Estimate.ValidityDate}}</p>
    </div>

    <div class="section">
      <p><span class="label">Cliente:</span> {{.ClientName}}</p>
      <p><span class="label">Título:</span> {{.Estimate.Title}}</p>
      <p><span class="label">Status:</span> {{status .Estimate.Status}}</p>
    </div>

    <div class="section">
      <p><span class="label">Descrição:</span> {{if .Estimate.Description}}{{.Estimate.Description}}{{else}}Sem descrição{{end}}</p>
    </div>
{{if .Estimate.ClientMaterial}}
    <div class="section">
      <p><span class="label">Cliente fornecerá os materiais.</span></p>
    </div>
{{end}}{{if .Estimate.ServiceTypes}}
    <div class="section">
      <p><span class="label">Tipos de Serviço:</span> {{serviceTypes .Estimate.ServiceTypes}}</p>
    </div>
{{end}}
    <div class="section">
      <p><span class="label">Forma de Pagamento:</span> {{payment .Estimate}}</p>
    </div>
{{if .Estimate.ShowRefCost}}
    <div class="section">
      <p><span class="label">Valor de referência exibido ao cliente.</span></p>
    </div>
{{end}}{{if .Estimate.Discount}}
    <div class="section">
      <p><span class="label">Desconto:</span> {{money .Estimate.Discount}}</p>
    </div>
{{end}}
    <div class="section">
      <h2>Itens</h2>
      <table class="table">
        <thead>
          <tr>
            <th>Descrição</th>
            <th>Quantidade</th>
            <th>Valor Unitário</th>
            <th>Total</th>
          </tr>
        </thead>
        <tbody>
{{range .Estimate.Items}}          <tr>
            <td>{{.Description}}</td>
            <td>{{.Quantity}}</td>
            <td>{{money .Value}}</td>
            <td>{{lineTotal .}}</td>
          </tr>
{{end}}        </tbody>
      </table>
    </div>
{{if .Estimate.ExtraFees}}
    <div class="section">
      <h2>Custos adicionais</h2>
      <table class="table">
        <thead>
          <tr>
            <th>Descrição</th>
            <th>Valor</th>
          </tr>
        </thead>
        <tbody>
{{range .Estimate.ExtraFees}}          <tr>
            <td>{{.Description}}</td>
            <td>{{money .Value}}</td>
          </tr>
{{end}}        </tbody>
      </table>
    </div>
{{end}}
    <div class="total">
      Total: {{money .Estimate.Total}}
    </div>

    <div class="signature">
      <div class="signature-line">Assinatura do Responsável</div>
    </div>

    <div class="footer">
      <p>Este orçamento foi gerado em {{date (.Estimate.CreatedAt.Format "2006-01-02")}} e é válido até {{date .Estimate.ValidityDate}}.</p>
    </div>
  </body>
</html>
`
