package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate (orçamento).
//
// Domain notes:
//   - pending is the initial status.
//   - Any status may be set by an update; no transition table is enforced.
//   - Moving into approved triggers Service creation, guarded by
//     HasServiceCreated.
type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusExpired  EstimateStatus = "expired"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusPending, EstimateStatusApproved, EstimateStatusRejected, EstimateStatusExpired:
		return true
	}
	return false
}

// Estimate is a priced proposal sent to a client, pending approval.
//
// Monetary representation:
//   - Total is always the calculated value: items subtotal (zeroed when the
//     client supplies materials) plus extra fees minus discount.
//   - ShowRefCost only affects document rendering, never the total.
type Estimate struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	ValidityDate string     `json:"validityDate"`

	Status       EstimateStatus `json:"status"`
	ServiceTypes []ServiceType  `json:"serviceTypes"`

	Items     []Item     `json:"items"`
	ExtraFees []ExtraFee `json:"extraFees,omitempty"`
	Discount  float64    `json:"discount,omitempty"`

	ClientMaterial bool `json:"clientMaterial,omitempty"`
	ShowRefCost    bool `json:"showRefCost,omitempty"`

	Total   float64     `json:"total"`
	Payment PaymentBase `json:"payment"`

	Deadline *EstimateDeadline `json:"deadline,omitempty"`
	Notes    string            `json:"notes,omitempty"`

	// HasServiceCreated guards against a second Service being created from
	// the same approved estimate.
	HasServiceCreated bool `json:"hasServiceCreated,omitempty"`
}
