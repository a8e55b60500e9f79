package validation

import "obrafacil/internal/domain/entities"

// estimatePaymentMethods is narrower than the full PaymentMethod set: card
// payments are not accepted on estimates, only on services.
var estimatePaymentMethods = []entities.PaymentMethod{
	entities.PaymentMethodCash,
	entities.PaymentMethodPix,
	entities.PaymentMethodInstallments,
}

// ValidateEstimate checks an estimate candidate before it is persisted.
func ValidateEstimate(e entities.Estimate) error {
	if isBlank(e.ClientID) {
		return newError("clientId", "client id is required")
	}
	if isBlank(e.Title) {
		return newError("title", "title is required")
	}
	if !validDate(e.ValidityDate) {
		return newError("validityDate", "validity date is missing or not a valid date")
	}
	if !e.Status.Valid() {
		return newError("status", "invalid estimate status")
	}
	if err := validateServiceTypes(e.ServiceTypes); err != nil {
		return err
	}
	if err := validateItems(e.Items); err != nil {
		return err
	}
	if e.Total < 0 {
		return newError("total", "total must not be negative")
	}
	for _, m := range estimatePaymentMethods {
		if e.Payment.Method == m {
			return nil
		}
	}
	return newError("payment.method", "invalid payment method")
}

func validateServiceTypes(types []entities.ServiceType) error {
	if len(types) == 0 {
		return newError("serviceTypes", "at least one service type is required")
	}
	for _, st := range types {
		if !st.Valid() {
			return newError("serviceTypes", "invalid service type: "+string(st))
		}
	}
	return nil
}

func validateItems(items []entities.Item) error {
	if len(items) == 0 {
		return newError("items", "at least one item is required")
	}
	for _, it := range items {
		if isBlank(it.Description) {
			return newError("items", "item description is required")
		}
		if it.Quantity <= 0 {
			return newError("items", "item quantity must be greater than zero")
		}
		if it.Value < 0 {
			return newError("items", "item unit value must not be negative")
		}
	}
	return nil
}
