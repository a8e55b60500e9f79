package validation

import "obrafacil/internal/domain/entities"

// ValidateClient checks a client candidate before it is persisted. ID and
// timestamps are repository-assigned and not inspected here.
func ValidateClient(c entities.Client) error {
	if isBlank(c.Name) {
		return newError("name", "name is required")
	}
	if isBlank(c.Phone) {
		return newError("phone", "phone is required")
	}
	if !validPhone(c.Phone) {
		return newError("phone", "phone must have 10 or 11 digits")
	}
	if c.Email != "" && !validEmail(c.Email) {
		return newError("email", "invalid email address")
	}
	return nil
}
