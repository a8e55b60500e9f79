package response

import "obrafacil/internal/domain/entities"

type PaymentInfoResponse struct {
	Method       string `json:"method"`
	Installments int    `json:"installments,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
	PaidDate     string `json:"paidDate,omitempty"`
	Status       string `json:"status,omitempty"`
}

type ExecutionPeriodResponse struct {
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	DurationDays int    `json:"durationDays,omitempty"`
}

type ServiceResponse struct {
	ID           string   `json:"id"`
	ClientID     string   `json:"clientId"`
	EstimateID   string   `json:"estimateId,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
	Status       string   `json:"status"`
	ServiceTypes []string `json:"serviceTypes"`

	Items     []ItemResponse     `json:"items"`
	ExtraFees []ExtraFeeResponse `json:"extraFees,omitempty"`
	Discount  float64            `json:"discount,omitempty"`

	ClientMaterial bool `json:"clientMaterial,omitempty"`
	ShowRefCost    bool `json:"showRefCost,omitempty"`

	Total   *float64            `json:"total,omitempty"`
	Payment PaymentInfoResponse `json:"payment"`

	Deadline *ExecutionPeriodResponse `json:"deadline,omitempty"`
	Notes    string                   `json:"notes,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	resp := ServiceResponse{
		ID:             s.ID,
		ClientID:       s.ClientID,
		EstimateID:     s.EstimateID,
		Title:          s.Title,
		Description:    s.Description,
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTimePtr(s.UpdatedAt),
		Status:         string(s.Status),
		ServiceTypes:   fromServiceTypes(s.ServiceTypes),
		Items:          fromItems(s.Items),
		ExtraFees:      fromExtraFees(s.ExtraFees),
		Discount:       s.Discount,
		ClientMaterial: s.ClientMaterial,
		ShowRefCost:    s.ShowRefCost,
		Total:          s.Total,
		Payment: PaymentInfoResponse{
			Method:       string(s.Payment.Method),
			Installments: s.Payment.Installments,
			DueDate:      s.Payment.DueDate,
			PaidDate:     s.Payment.PaidDate,
			Status:       string(s.Payment.Status),
		},
		Notes: s.Notes,
	}
	if s.Deadline != nil {
		resp.Deadline = &ExecutionPeriodResponse{
			StartDate:    s.Deadline.StartDate,
			EndDate:      s.Deadline.EndDate,
			DurationDays: s.Deadline.DurationDays,
		}
	}
	return resp
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, s := range services {
		out[i] = FromService(s)
	}
	return out
}

// FinancialSummaryResponse aggregates payment state across services.
type FinancialSummaryResponse struct {
	TotalReceived   float64 `json:"totalReceived"`
	TotalReceivable float64 `json:"totalReceivable"`
	PaidCount       int     `json:"paidCount"`
	PendingCount    int     `json:"pendingCount"`
}

// PixChargeResponse is the provider-side result of raising a pix charge.
type PixChargeResponse struct {
	ProviderPaymentID string `json:"providerPaymentId"`
	Status            string `json:"status"`
	QRCode            string `json:"qrCode,omitempty"`
	QRCodeBase64      string `json:"qrCodeBase64,omitempty"`
	TicketURL         string `json:"ticketUrl,omitempty"`
}
