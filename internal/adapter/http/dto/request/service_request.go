package request

import "obrafacil/internal/domain/entities"

type PaymentInfoRequest struct {
	Method       string `json:"method"`
	Installments int    `json:"installments"`
	DueDate      string `json:"dueDate"`
	PaidDate     string `json:"paidDate"`
	Status       string `json:"status"`
}

type ExecutionPeriodRequest struct {
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	DurationDays int    `json:"durationDays"`
}

// ServiceRequest is the payload for creating or updating a service directly,
// outside of the estimate approval flow.
type ServiceRequest struct {
	ClientID     string            `json:"clientId" binding:"required"`
	EstimateID   string            `json:"estimateId"`
	Title        string            `json:"title" binding:"required"`
	Description  string            `json:"description"`
	Status       string            `json:"status"`
	ServiceTypes []string          `json:"serviceTypes"`
	Items        []ItemRequest     `json:"items"`
	ExtraFees    []ExtraFeeRequest `json:"extraFees"`
	Discount     float64           `json:"discount"`

	ClientMaterial bool `json:"clientMaterial"`
	ShowRefCost    bool `json:"showRefCost"`

	Payment  PaymentInfoRequest      `json:"payment" binding:"required"`
	Deadline *ExecutionPeriodRequest `json:"deadline"`
	Notes    string                  `json:"notes"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	s := entities.Service{
		ClientID:       r.ClientID,
		EstimateID:     r.EstimateID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         entities.ServiceStatus(r.Status),
		ServiceTypes:   toServiceTypes(r.ServiceTypes),
		Items:          toItems(r.Items),
		ExtraFees:      toExtraFees(r.ExtraFees),
		Discount:       r.Discount,
		ClientMaterial: r.ClientMaterial,
		ShowRefCost:    r.ShowRefCost,
		Payment: entities.PaymentInfo{
			PaymentBase: entities.PaymentBase{
				Method:       entities.PaymentMethod(r.Payment.Method),
				Installments: r.Payment.Installments,
			},
			DueDate:  r.Payment.DueDate,
			PaidDate: r.Payment.PaidDate,
			Status:   entities.PaymentStatus(r.Payment.Status),
		},
		Notes: r.Notes,
	}
	if r.Deadline != nil {
		s.Deadline = &entities.ExecutionPeriod{
			StartDate:    r.Deadline.StartDate,
			EndDate:      r.Deadline.EndDate,
			DurationDays: r.Deadline.DurationDays,
		}
	}
	return s
}

// PaymentStatusRequest selects the payment state set on a service.
type PaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChargeRequest carries the payer contact used when raising a pix charge.
type ChargeRequest struct {
	PayerEmail string `json:"payerEmail"`
}
