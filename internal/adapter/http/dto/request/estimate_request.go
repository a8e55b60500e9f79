package request

import "obrafacil/internal/domain/entities"

type EstimateDeadlineRequest struct {
	DurationDays int `json:"durationDays"`
}

// EstimateRequest is the payload for creating or updating an estimate. The
// total is never accepted from the caller; it is always recomputed from
// items, fees and discount.
type EstimateRequest struct {
	ClientID     string            `json:"clientId" binding:"required"`
	Title        string            `json:"title" binding:"required"`
	Description  string            `json:"description"`
	ValidityDate string            `json:"validityDate" binding:"required"`
	Status       string            `json:"status"`
	ServiceTypes []string          `json:"serviceTypes"`
	Items        []ItemRequest     `json:"items"`
	ExtraFees    []ExtraFeeRequest `json:"extraFees"`
	Discount     float64           `json:"discount"`

	ClientMaterial bool `json:"clientMaterial"`
	ShowRefCost    bool `json:"showRefCost"`

	Payment  PaymentRequest           `json:"payment" binding:"required"`
	Deadline *EstimateDeadlineRequest `json:"deadline"`
	Notes    string                   `json:"notes"`
}

func (r EstimateRequest) ToEntity() entities.Estimate {
	e := entities.Estimate{
		ClientID:       r.ClientID,
		Title:          r.Title,
		Description:    r.Description,
		ValidityDate:   r.ValidityDate,
		Status:         entities.EstimateStatus(r.Status),
		ServiceTypes:   toServiceTypes(r.ServiceTypes),
		Items:          toItems(r.Items),
		ExtraFees:      toExtraFees(r.ExtraFees),
		Discount:       r.Discount,
		ClientMaterial: r.ClientMaterial,
		ShowRefCost:    r.ShowRefCost,
		Payment: entities.PaymentBase{
			Method:       entities.PaymentMethod(r.Payment.Method),
			Installments: r.Payment.Installments,
		},
		Notes: r.Notes,
	}
	if r.Deadline != nil {
		e.Deadline = &entities.EstimateDeadline{DurationDays: r.Deadline.DurationDays}
	}
	return e
}
