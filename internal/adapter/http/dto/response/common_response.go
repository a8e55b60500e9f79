package response

import (
	"time"

	"obrafacil/internal/domain/entities"
)

type ItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Value       float64 `json:"value"`
}

type ExtraFeeResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

func fromItems(items []entities.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ItemResponse{ID: it.ID, Description: it.Description, Quantity: it.Quantity, Value: it.Value}
	}
	return out
}

func fromExtraFees(fees []entities.ExtraFee) []ExtraFeeResponse {
	out := make([]ExtraFeeResponse, len(fees))
	for i, f := range fees {
		out[i] = ExtraFeeResponse{ID: f.ID, Description: f.Description, Value: f.Value}
	}
	return out
}

func fromServiceTypes(types []entities.ServiceType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
