package entities

import "time"

// ServiceStatus represents the lifecycle of a confirmed job. It is a
// distinct enumeration from EstimateStatus.
type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusScheduled  ServiceStatus = "scheduled"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusCancelled  ServiceStatus = "cancelled"
)

func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceStatusPending, ServiceStatusScheduled, ServiceStatusInProgress,
		ServiceStatusCompleted, ServiceStatusCancelled:
		return true
	}
	return false
}

// Service is a confirmed job created from an approved Estimate. EstimateID
// points back to the originating estimate.
type Service struct {
	ID         string `json:"id"`
	ClientID   string `json:"clientId"`
	EstimateID string `json:"estimateId"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	Status       ServiceStatus `json:"status"`
	ServiceTypes []ServiceType `json:"serviceTypes"`

	Items     []Item     `json:"items"`
	ExtraFees []ExtraFee `json:"extraFees,omitempty"`
	Discount  float64    `json:"discount,omitempty"`

	ClientMaterial bool `json:"clientMaterial,omitempty"`
	ShowRefCost    bool `json:"showRefCost,omitempty"`

	Total *float64 `json:"total,omitempty"`

	Payment PaymentInfo `json:"payment"`

	Deadline *ExecutionPeriod `json:"deadline,omitempty"`
	Notes    string           `json:"notes,omitempty"`
}
