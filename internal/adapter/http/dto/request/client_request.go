package request

import "obrafacil/internal/domain/entities"

type AddressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	CEP          string `json:"cep"`
}

// ClientRequest is the payload for creating or updating a client. Field
// rules (non-empty name, phone shape, e-mail shape) are enforced by the
// domain validator, so the contract stays identical across transports.
type ClientRequest struct {
	Name    string          `json:"name" binding:"required"`
	Phone   string          `json:"phone" binding:"required"`
	Email   string          `json:"email"`
	Address *AddressRequest `json:"address"`
	Notes   string          `json:"notes"`
}

func (r ClientRequest) ToEntity() entities.Client {
	c := entities.Client{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Notes: r.Notes,
	}
	if r.Address != nil {
		c.Address = &entities.Address{
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
			CEP:          r.Address.CEP,
		}
	}
	return c
}
