package interfaces

import "context"

// PixCharge is the provider-side result of creating a pix payment.
type PixCharge struct {
	ProviderPaymentID string
	Status            string
	QRCode            string
	QRCodeBase64      string
	TicketURL         string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The business API uses it to raise a pix charge for a service's total; the
// charge outcome is surfaced to the caller, not persisted.
type IPaymentGateway interface {
	CreatePixCharge(ctx context.Context, amount float64, description, payerEmail string) (PixCharge, error)
}
