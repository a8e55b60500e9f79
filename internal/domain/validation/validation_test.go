package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obrafacil/internal/domain/entities"
	"obrafacil/internal/domain/validation"
)

func validClient() entities.Client {
	return entities.Client{Name: "Ana Silva", Phone: "27999998888"}
}

func TestValidateClient(t *testing.T) {
	t.Run("minimal valid client", func(t *testing.T) {
		assert.NoError(t, validation.ValidateClient(validClient()))
	})

	t.Run("formatted phone is accepted", func(t *testing.T) {
		c := validClient()
		c.Phone = "(27) 9 9999-8888"
		assert.NoError(t, validation.ValidateClient(c))
	})

	tests := []struct {
		name   string
		mutate func(*entities.Client)
		field  string
	}{
		{"blank name", func(c *entities.Client) { c.Name = "   " }, "name"},
		{"blank phone", func(c *entities.Client) { c.Phone = "" }, "phone"},
		{"short phone", func(c *entities.Client) { c.Phone = "999998888" }, "phone"},
		{"long phone", func(c *entities.Client) { c.Phone = "279999988880" }, "phone"},
		{"bad email", func(c *entities.Client) { c.Email = "ana@" }, "email"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validClient()
			tc.mutate(&c)
			err := validation.ValidateClient(c)
			var verr *validation.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func validEstimate() entities.Estimate {
	return entities.Estimate{
		ClientID:     "client-1",
		Title:        "Reforma banheiro",
		ValidityDate: "2026-09-30",
		Status:       entities.EstimateStatusPending,
		ServiceTypes: []entities.ServiceType{entities.ServiceTypeReforma},
		Items:        []entities.Item{{Description: "Azulejo", Quantity: 10, Value: 25}},
		Total:        250,
		Payment:      entities.PaymentBase{Method: entities.PaymentMethodPix},
	}
}

func TestValidateEstimate(t *testing.T) {
	t.Run("valid estimate", func(t *testing.T) {
		assert.NoError(t, validation.ValidateEstimate(validEstimate()))
	})

	t.Run("zero value item is accepted", func(t *testing.T) {
		e := validEstimate()
		e.Items = []entities.Item{{Description: "Mão de obra", Quantity: 1, Value: 0}}
		assert.NoError(t, validation.ValidateEstimate(e))
	})

	tests := []struct {
		name   string
		mutate func(*entities.Estimate)
		field  string
	}{
		{"blank client id", func(e *entities.Estimate) { e.ClientID = " " }, "clientId"},
		{"blank title", func(e *entities.Estimate) { e.Title = "" }, "title"},
		{"unparsable validity date", func(e *entities.Estimate) { e.ValidityDate = "30/09/2026?" }, "validityDate"},
		{"missing validity date", func(e *entities.Estimate) { e.ValidityDate = "" }, "validityDate"},
		{"unknown status", func(e *entities.Estimate) { e.Status = "archived" }, "status"},
		{"no service types", func(e *entities.Estimate) { e.ServiceTypes = nil }, "serviceTypes"},
		{"unknown service type", func(e *entities.Estimate) { e.ServiceTypes = []entities.ServiceType{"Encanamento"} }, "serviceTypes"},
		{"no items", func(e *entities.Estimate) { e.Items = nil }, "items"},
		{"blank item description", func(e *entities.Estimate) { e.Items[0].Description = "" }, "items"},
		{"zero quantity item", func(e *entities.Estimate) { e.Items[0].Quantity = 0 }, "items"},
		{"negative item value", func(e *entities.Estimate) { e.Items[0].Value = -1 }, "items"},
		{"negative total", func(e *entities.Estimate) { e.Total = -10 }, "total"},
		{"credit card not accepted on estimates", func(e *entities.Estimate) { e.Payment.Method = entities.PaymentMethodCreditCard }, "payment.method"},
		{"debit card not accepted on estimates", func(e *entities.Estimate) { e.Payment.Method = entities.PaymentMethodDebitCard }, "payment.method"},
		{"unknown payment method", func(e *entities.Estimate) { e.Payment.Method = "check" }, "payment.method"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := validEstimate()
			tc.mutate(&e)
			err := validation.ValidateEstimate(e)
			var verr *validation.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func validService() entities.Service {
	total := 250.0
	return entities.Service{
		ClientID:     "client-1",
		EstimateID:   "estimate-1",
		Title:        "Reforma banheiro",
		Status:       entities.ServiceStatusScheduled,
		ServiceTypes: []entities.ServiceType{entities.ServiceTypeReforma},
		Items:        []entities.Item{{Description: "Azulejo", Quantity: 10, Value: 25}},
		Total:        &total,
		Payment: entities.PaymentInfo{
			PaymentBase: entities.PaymentBase{Method: entities.PaymentMethodCreditCard},
			Status:      entities.PaymentStatusPending,
		},
	}
}

func TestValidateService(t *testing.T) {
	t.Run("valid service", func(t *testing.T) {
		assert.NoError(t, validation.ValidateService(validService()))
	})

	t.Run("card methods are accepted on services", func(t *testing.T) {
		for _, m := range []entities.PaymentMethod{entities.PaymentMethodCreditCard, entities.PaymentMethodDebitCard} {
			s := validService()
			s.Payment.Method = m
			assert.NoError(t, validation.ValidateService(s))
		}
	})

	t.Run("missing total is accepted", func(t *testing.T) {
		s := validService()
		s.Total = nil
		assert.NoError(t, validation.ValidateService(s))
	})

	tests := []struct {
		name   string
		mutate func(*entities.Service)
		field  string
	}{
		{"blank client id", func(s *entities.Service) { s.ClientID = "" }, "clientId"},
		{"blank estimate id", func(s *entities.Service) { s.EstimateID = "  " }, "estimateId"},
		{"blank title", func(s *entities.Service) { s.Title = "" }, "title"},
		{"unknown status", func(s *entities.Service) { s.Status = "paused" }, "status"},
		{"no items", func(s *entities.Service) { s.Items = nil }, "items"},
		{"zero quantity item", func(s *entities.Service) { s.Items[0].Quantity = 0 }, "items"},
		{"negative total", func(s *entities.Service) { v := -1.0; s.Total = &v }, "total"},
		{"unknown payment method", func(s *entities.Service) { s.Payment.Method = "check" }, "payment.method"},
		{"unknown payment status", func(s *entities.Service) { s.Payment.Status = "refunded" }, "payment.status"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validService()
			tc.mutate(&s)
			err := validation.ValidateService(s)
			var verr *validation.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := validation.ValidateClient(entities.Client{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.True(t, errors.As(err, new(*validation.ValidationError)))
}
