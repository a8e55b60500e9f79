package validation

import "obrafacil/internal/domain/entities"

// ValidateService checks a service candidate before it is persisted. Unlike
// estimates, services accept the full payment method set.
func ValidateService(s entities.Service) error {
	if isBlank(s.ClientID) {
		return newError("clientId", "client id is required")
	}
	if isBlank(s.EstimateID) {
		return newError("estimateId", "estimate id is required")
	}
	if isBlank(s.Title) {
		return newError("title", "title is required")
	}
	if !s.Status.Valid() {
		return newError("status", "invalid service status")
	}
	if err := validateServiceTypes(s.ServiceTypes); err != nil {
		return err
	}
	if err := validateItems(s.Items); err != nil {
		return err
	}
	if s.Total != nil && *s.Total < 0 {
		return newError("total", "total must not be negative")
	}
	if !s.Payment.Method.Valid() {
		return newError("payment.method", "invalid payment method")
	}
	if s.Payment.Status != "" && !s.Payment.Status.Valid() {
		return newError("payment.status", "invalid payment status")
	}
	return nil
}
