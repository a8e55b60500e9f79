package request

import (
	"testing"

	"obrafacil/internal/domain/entities"
)

func TestClientRequestToEntity(t *testing.T) {
	r := ClientRequest{
		Name:  "Maria Silva",
		Phone: "11912345678",
		Email: "maria@example.com",
		Address: &AddressRequest{
			Street: "Rua das Flores", Number: "100", City: "São Paulo", State: "SP", CEP: "01000-000",
		},
		Notes: "indicação",
	}

	c := r.ToEntity()
	if c.Name != "Maria Silva" || c.Phone != "11912345678" || c.Email != "maria@example.com" {
		t.Fatalf("unexpected client: %+v", c)
	}
	if c.Address == nil || c.Address.Street != "Rua das Flores" || c.Address.CEP != "01000-000" {
		t.Fatalf("unexpected address: %+v", c.Address)
	}

	if got := (ClientRequest{Name: "x", Phone: "y"}).ToEntity(); got.Address != nil {
		t.Fatalf("expected nil address when omitted")
	}
}

func TestEstimateRequestToEntity(t *testing.T) {
	r := EstimateRequest{
		ClientID:     "cli-1",
		Title:        "Pintura da sala",
		ValidityDate: "2025-04-09",
		Status:       "pending",
		ServiceTypes: []string{"Pintura"},
		Items: []ItemRequest{
			{ID: "i1", Description: "Tinta", Quantity: 2, Value: 90},
		},
		ExtraFees:      []ExtraFeeRequest{{ID: "f1", Description: "Frete", Value: 30}},
		Discount:       10,
		ClientMaterial: true,
		Payment:        PaymentRequest{Method: "installments", Installments: 2},
		Deadline:       &EstimateDeadlineRequest{DurationDays: 5},
	}

	e := r.ToEntity()
	if e.ClientID != "cli-1" || e.Title != "Pintura da sala" {
		t.Fatalf("unexpected estimate: %+v", e)
	}
	if e.Status != entities.EstimateStatusPending {
		t.Fatalf("expected pending status, got %q", e.Status)
	}
	if len(e.Items) != 1 || e.Items[0].Quantity != 2 || e.Items[0].Value != 90 {
		t.Fatalf("unexpected items: %+v", e.Items)
	}
	if len(e.ExtraFees) != 1 || e.ExtraFees[0].Value != 30 {
		t.Fatalf("unexpected fees: %+v", e.ExtraFees)
	}
	if !e.ClientMaterial {
		t.Fatalf("expected clientMaterial to carry over")
	}
	if e.Payment.Method != entities.PaymentMethodInstallments || e.Payment.Installments != 2 {
		t.Fatalf("unexpected payment: %+v", e.Payment)
	}
	if e.Deadline == nil || e.Deadline.DurationDays != 5 {
		t.Fatalf("unexpected deadline: %+v", e.Deadline)
	}
	if e.Total != 0 {
		t.Fatalf("total must not come from the request, got %v", e.Total)
	}
	if e.HasServiceCreated {
		t.Fatalf("hasServiceCreated must not come from the request")
	}
}

func TestServiceRequestToEntity(t *testing.T) {
	r := ServiceRequest{
		ClientID:   "cli-1",
		EstimateID: "est-1",
		Title:      "Troca de telhado",
		Status:     "scheduled",
		Items:      []ItemRequest{{ID: "i1", Description: "Telha", Quantity: 40, Value: 12.5}},
		Payment: PaymentInfoRequest{
			Method: "pix", DueDate: "2025-05-01", Status: "pending",
		},
		Deadline: &ExecutionPeriodRequest{StartDate: "2025-04-10", EndDate: "2025-04-20", DurationDays: 10},
	}

	s := r.ToEntity()
	if s.EstimateID != "est-1" || s.Status != entities.ServiceStatusScheduled {
		t.Fatalf("unexpected service: %+v", s)
	}
	if s.Payment.Method != entities.PaymentMethodPix || s.Payment.DueDate != "2025-05-01" {
		t.Fatalf("unexpected payment: %+v", s.Payment)
	}
	if s.Payment.Status != entities.PaymentStatusPending {
		t.Fatalf("unexpected payment status: %q", s.Payment.Status)
	}
	if s.Deadline == nil || s.Deadline.DurationDays != 10 {
		t.Fatalf("unexpected deadline: %+v", s.Deadline)
	}
	if s.Total != nil {
		t.Fatalf("total must not come from the request")
	}
}
