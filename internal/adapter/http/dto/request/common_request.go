package request

import "obrafacil/internal/domain/entities"

type ItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Value       float64 `json:"value"`
}

type ExtraFeeRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

type PaymentRequest struct {
	Method       string `json:"method"`
	Installments int    `json:"installments"`
}

func toItems(items []ItemRequest) []entities.Item {
	if items == nil {
		return nil
	}
	out := make([]entities.Item, len(items))
	for i, it := range items {
		out[i] = entities.Item{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Value:       it.Value,
		}
	}
	return out
}

func toExtraFees(fees []ExtraFeeRequest) []entities.ExtraFee {
	if fees == nil {
		return nil
	}
	out := make([]entities.ExtraFee, len(fees))
	for i, f := range fees {
		out[i] = entities.ExtraFee{ID: f.ID, Description: f.Description, Value: f.Value}
	}
	return out
}

func toServiceTypes(types []string) []entities.ServiceType {
	if types == nil {
		return nil
	}
	out := make([]entities.ServiceType, len(types))
	for i, t := range types {
		out[i] = entities.ServiceType(t)
	}
	return out
}
