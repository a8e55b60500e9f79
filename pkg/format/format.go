// Package format holds presentation helpers for money, dates and phone
// numbers in the Brazilian convention used across documents and summaries.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Money renders a value as Brazilian currency, e.g. "R$ 1.234,56".
func Money(value float64) string {
	return ptBR.Sprintf("R$ %.2f", value)
}

// Date renders an ISO date (2006-01-02 or RFC3339) as dd/mm/yyyy.
// Values that do not parse are returned unchanged.
func Date(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return value
}

// Phone renders a digits-only Brazilian phone number as (DD) NNNN-NNNN or
// (DD) NNNNN-NNNN. Inputs with other lengths are returned unchanged.
func Phone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch len(d) {
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	default:
		return value
	}
}
