package entities

import "time"

// Client is a customer of the contractor, persisted as part of the flat
// clients collection.
//
// Other entities never hold a Client directly: Estimate and Service carry a
// clientId and resolve it by lookup.
type Client struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email,omitempty"`
	Address *Address `json:"address,omitempty"`
	Notes   string   `json:"notes,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Address is a free-form Brazilian street address. Every field is optional.
type Address struct {
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	CEP          string `json:"cep,omitempty"`
}
