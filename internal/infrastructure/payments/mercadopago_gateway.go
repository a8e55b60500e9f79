package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"obrafacil/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CreatePixCharge raises a pix payment for a service total. In mock mode it
// fabricates an approved charge so the flow can be exercised without provider
// credentials.
func (g *MercadoPagoGateway) CreatePixCharge(ctx context.Context, amount float64, description, payerEmail string) (interfaces.PixCharge, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock pix charge amount=%.2f provider_payment_id=%s", amount, id)
		return interfaces.PixCharge{
			ProviderPaymentID: id,
			Status:            "approved",
			QRCode:            "mock-pix-qr-" + id,
			QRCodeBase64:      "",
			TicketURL:         "",
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PixCharge{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] pix charge start amount=%.2f", amount)

	req := payment.Request{
		TransactionAmount: amount,
		Description:       description,
		PaymentMethodID:   "pix",
		Payer: &payment.PayerRequest{
			Email: payerEmail,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.PixCharge{}, err
	}

	charge := interfaces.PixCharge{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		Status:            resp.Status,
	}
	if resp.PointOfInteraction.TransactionData.QRCode != "" {
		charge.QRCode = resp.PointOfInteraction.TransactionData.QRCode
		charge.QRCodeBase64 = resp.PointOfInteraction.TransactionData.QRCodeBase64
		charge.TicketURL = resp.PointOfInteraction.TransactionData.TicketURL
	}
	log.Printf("[payment][gateway] pix charge success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return charge, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
