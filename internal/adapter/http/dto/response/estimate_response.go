package response

import "obrafacil/internal/domain/entities"

type PaymentResponse struct {
	Method       string `json:"method"`
	Installments int    `json:"installments,omitempty"`
}

type EstimateDeadlineResponse struct {
	DurationDays int `json:"durationDays,omitempty"`
}

type EstimateResponse struct {
	ID           string   `json:"id"`
	ClientID     string   `json:"clientId"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
	ValidityDate string   `json:"validityDate"`
	Status       string   `json:"status"`
	ServiceTypes []string `json:"serviceTypes"`

	Items     []ItemResponse     `json:"items"`
	ExtraFees []ExtraFeeResponse `json:"extraFees,omitempty"`
	Discount  float64            `json:"discount,omitempty"`

	ClientMaterial bool `json:"clientMaterial,omitempty"`
	ShowRefCost    bool `json:"showRefCost,omitempty"`

	Total   float64         `json:"total"`
	Payment PaymentResponse `json:"payment"`

	Deadline *EstimateDeadlineResponse `json:"deadline,omitempty"`
	Notes    string                    `json:"notes,omitempty"`

	HasServiceCreated bool `json:"hasServiceCreated"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	resp := EstimateResponse{
		ID:                e.ID,
		ClientID:          e.ClientID,
		Title:             e.Title,
		Description:       e.Description,
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTimePtr(e.UpdatedAt),
		ValidityDate:      e.ValidityDate,
		Status:            string(e.Status),
		ServiceTypes:      fromServiceTypes(e.ServiceTypes),
		Items:             fromItems(e.Items),
		ExtraFees:         fromExtraFees(e.ExtraFees),
		Discount:          e.Discount,
		ClientMaterial:    e.ClientMaterial,
		ShowRefCost:       e.ShowRefCost,
		Total:             e.Total,
		Payment:           PaymentResponse{Method: string(e.Payment.Method), Installments: e.Payment.Installments},
		Notes:             e.Notes,
		HasServiceCreated: e.HasServiceCreated,
	}
	if e.Deadline != nil {
		resp.Deadline = &EstimateDeadlineResponse{DurationDays: e.Deadline.DurationDays}
	}
	return resp
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, len(estimates))
	for i, e := range estimates {
		out[i] = FromEstimate(e)
	}
	return out
}

// ApprovalResponse reports the outcome of approving an estimate: the updated
// estimate plus the service spawned by this approval. Service is null and
// AlreadyCreated true when a previous approval already produced one.
type ApprovalResponse struct {
	Estimate       EstimateResponse `json:"estimate"`
	Service        *ServiceResponse `json:"service,omitempty"`
	AlreadyCreated bool             `json:"alreadyCreated"`
}
