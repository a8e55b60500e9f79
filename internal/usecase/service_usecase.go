package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"obrafacil/internal/domain/entities"
	"obrafacil/internal/domain/pricing"
	"obrafacil/internal/usecase/interfaces"
)

var (
	ErrServiceNotFound             = errors.New("service not found")
	ErrInvalidServiceID            = errors.New("invalid service id")
	ErrInvalidPaymentStatus        = errors.New("invalid payment status")
	ErrInvalidChargeAmount         = errors.New("service has no chargeable total")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// FinancialSummary aggregates payment state across every service: what has
// been received (payment marked paid) versus what is still outstanding.
type FinancialSummary struct {
	TotalReceived   float64 `json:"totalReceived"`
	TotalReceivable float64 `json:"totalReceivable"`
	PaidCount       int     `json:"paidCount"`
	PendingCount    int     `json:"pendingCount"`
}

// IServiceUseCase exposes service operations.
type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	SetPaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Service, error)
	Summary(ctx context.Context) (FinancialSummary, error)
	CreatePixCharge(ctx context.Context, id, payerEmail string) (interfaces.PixCharge, error)
}

type ServiceUseCase struct {
	repo    interfaces.IServiceRepository
	gateway interfaces.IPaymentGateway
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

// NewServiceUseCase wires the service repository and an optional payment
// gateway; gateway may be nil when no provider is configured.
func NewServiceUseCase(repo interfaces.IServiceRepository, gateway interfaces.IPaymentGateway) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, gateway: gateway}
}

func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ClientID = strings.TrimSpace(s.ClientID)
	s.EstimateID = strings.TrimSpace(s.EstimateID)
	s.Title = strings.TrimSpace(s.Title)
	if s.Status == "" {
		s.Status = entities.ServiceStatusPending
	}
	if s.Payment.Status == "" {
		s.Payment.Status = entities.PaymentStatusPending
	}
	total := pricing.Total(s.Items, s.ExtraFees, s.Discount, s.ClientMaterial)
	s.Total = &total
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.ListAll(ctx)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s == nil {
		return entities.Service{}, ErrServiceNotFound
	}
	return *s, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	total := pricing.Total(s.Items, s.ExtraFees, s.Discount, s.ClientMaterial)
	s.Total = &total

	updated, err := u.repo.Update(ctx, s)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Service{}, ErrServiceNotFound
	}
	if err != nil {
		return entities.Service{}, err
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	return u.repo.Delete(ctx, id)
}

// SetPaymentStatus updates the payment state of a service. Marking a
// payment paid stamps paidDate with the current date.
func (u *ServiceUseCase) SetPaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Service, error) {
	if !status.Valid() {
		return entities.Service{}, ErrInvalidPaymentStatus
	}

	service, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}

	service.Payment.Status = status
	if status == entities.PaymentStatusPaid {
		service.Payment.PaidDate = time.Now().UTC().Format("2006-01-02")
	} else {
		service.Payment.PaidDate = ""
	}

	updated, err := u.repo.Update(ctx, service)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Service{}, ErrServiceNotFound
	}
	if err != nil {
		return entities.Service{}, err
	}
	return updated, nil
}

// Summary splits every service into received (payment paid) and receivable
// (anything else, including services without a payment status yet).
func (u *ServiceUseCase) Summary(ctx context.Context) (FinancialSummary, error) {
	services, err := u.repo.ListAll(ctx)
	if err != nil {
		return FinancialSummary{}, err
	}

	var summary FinancialSummary
	for _, s := range services {
		var total float64
		if s.Total != nil {
			total = *s.Total
		}
		if s.Payment.Status == entities.PaymentStatusPaid {
			summary.TotalReceived += total
			summary.PaidCount++
		} else {
			summary.TotalReceivable += total
			summary.PendingCount++
		}
	}
	return summary, nil
}

// CreatePixCharge raises a pix charge for the service's total through the
// configured payment provider.
func (u *ServiceUseCase) CreatePixCharge(ctx context.Context, id, payerEmail string) (interfaces.PixCharge, error) {
	if u.gateway == nil {
		return interfaces.PixCharge{}, ErrPaymentGatewayNotConfigured
	}

	service, err := u.GetByID(ctx, id)
	if err != nil {
		return interfaces.PixCharge{}, err
	}
	if service.Total == nil || *service.Total <= 0 {
		return interfaces.PixCharge{}, ErrInvalidChargeAmount
	}

	charge, err := u.gateway.CreatePixCharge(ctx, *service.Total, service.Title, strings.TrimSpace(payerEmail))
	if err != nil {
		return interfaces.PixCharge{}, err
	}
	log.Printf("[service] pix charge created service_id=%s provider_payment_id=%s status=%s", service.ID, charge.ProviderPaymentID, charge.Status)
	return charge, nil
}
