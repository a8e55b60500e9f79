// Package validation holds the pure entity validators run before any record
// is persisted. Validators are fail-fast: the first violated rule is
// reported and nothing else is inspected.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidationError reports the first rule a candidate record violates.
// Repositories refuse to persist when a validator returns one.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func newError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

// validPhone accepts 10 or 11 digits after stripping formatting characters.
func validPhone(phone string) bool {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 11
}

func validDate(s string) bool {
	if isBlank(s) {
		return false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
