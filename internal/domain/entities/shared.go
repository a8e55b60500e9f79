package entities

// Item is one billable line of material or labor. Items are owned by the
// Estimate or Service that lists them and are never persisted on their own.
type Item struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Value       float64 `json:"value"`
}

// ExtraFee is a flat additive surcharge (freight, travel) not tied to a
// quantity. Same ownership semantics as Item.
type ExtraFee struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

// ExecutionPeriod is the execution window of a Service. Estimates carry only
// the estimated duration.
type ExecutionPeriod struct {
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	DurationDays int    `json:"durationDays,omitempty"`
}

// EstimateDeadline is the duration-only deadline an Estimate carries before
// it is converted into a scheduled Service.
type EstimateDeadline struct {
	DurationDays int `json:"durationDays,omitempty"`
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodInstallments PaymentMethod = "installments"
)

// PaymentMethods lists every accepted method.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodPix,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodInstallments,
	}
}

func (m PaymentMethod) Valid() bool {
	for _, v := range PaymentMethods() {
		if m == v {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// PaymentBase holds the agreed payment terms of an Estimate. Installments is
// meaningful only when the method is installments.
type PaymentBase struct {
	Method       PaymentMethod `json:"method"`
	Installments int           `json:"installments,omitempty"`
}

// PaymentInfo extends PaymentBase with the collection state tracked on a
// Service.
type PaymentInfo struct {
	PaymentBase
	DueDate  string        `json:"dueDate,omitempty"`
	PaidDate string        `json:"paidDate,omitempty"`
	Status   PaymentStatus `json:"status,omitempty"`
}
