package response

import "obrafacil/internal/domain/entities"

type AddressResponse struct {
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	CEP          string `json:"cep,omitempty"`
}

type ClientResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email,omitempty"`
	Address   *AddressResponse `json:"address,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt,omitempty"`
}

func FromClient(c entities.Client) ClientResponse {
	resp := ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTimePtr(c.UpdatedAt),
	}
	if c.Address != nil {
		resp.Address = &AddressResponse{
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
			CEP:          c.Address.CEP,
		}
	}
	return resp
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = FromClient(c)
	}
	return out
}
