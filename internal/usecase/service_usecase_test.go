package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"obrafacil/internal/domain/entities"
	"obrafacil/internal/usecase/interfaces"
	mock_interfaces "obrafacil/internal/usecase/interfaces/mocks"
)

func testService(id string, total float64) entities.Service {
	return entities.Service{
		ID:           id,
		ClientID:     "client-1",
		EstimateID:   "est-1",
		Title:        "Reforma cozinha",
		Status:       entities.ServiceStatusScheduled,
		ServiceTypes: []entities.ServiceType{entities.ServiceTypeReforma},
		Items:        []entities.Item{{ID: "i-1", Description: "Azulejo", Quantity: 2, Value: 50}},
		ExtraFees:    []entities.ExtraFee{{ID: "f-1", Description: "Frete", Value: 10}},
		Discount:     5,
		Total:        &total,
		Payment: entities.PaymentInfo{
			PaymentBase: entities.PaymentBase{Method: entities.PaymentMethodPix},
			Status:      entities.PaymentStatusPending,
		},
	}
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("recomputes total and defaults status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		input := testService("", 999)
		input.Status = ""
		input.Payment.Status = ""

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Total == nil || *s.Total != 105 {
					t.Fatalf("expected recomputed total 105, got %v", s.Total)
				}
				if s.Status != entities.ServiceStatusPending {
					t.Fatalf("expected pending status, got %s", s.Status)
				}
				if s.Payment.Status != entities.PaymentStatusPending {
					t.Fatalf("expected pending payment, got %s", s.Payment.Status)
				}
				return s, nil
			},
		)

		if _, err := uc.Create(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_SetPaymentStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		_, err := uc.SetPaymentStatus(context.Background(), "svc-1", "refunded")
		if !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(nil, nil)

		_, err := uc.SetPaymentStatus(context.Background(), "svc-1", entities.PaymentStatusPaid)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("marking paid stamps paidDate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		stored := testService("svc-1", 105)
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(&stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Payment.Status != entities.PaymentStatusPaid {
					t.Fatalf("expected paid status, got %s", s.Payment.Status)
				}
				if s.Payment.PaidDate == "" {
					t.Fatalf("expected paidDate stamped")
				}
				return s, nil
			},
		)

		res, err := uc.SetPaymentStatus(context.Background(), "svc-1", entities.PaymentStatusPaid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Payment.PaidDate == "" {
			t.Fatalf("expected paidDate on result")
		}
	})

	t.Run("reverting to pending clears paidDate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		stored := testService("svc-1", 105)
		stored.Payment.Status = entities.PaymentStatusPaid
		stored.Payment.PaidDate = "2026-08-01"
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(&stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Payment.PaidDate != "" {
					t.Fatalf("expected paidDate cleared, got %q", s.Payment.PaidDate)
				}
				return s, nil
			},
		)

		if _, err := uc.SetPaymentStatus(context.Background(), "svc-1", entities.PaymentStatusPending); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRepository(ctrl)
	uc := NewServiceUseCase(repo, nil)

	paid := testService("svc-1", 500)
	paid.Payment.Status = entities.PaymentStatusPaid
	pending := testService("svc-2", 200)
	overdue := testService("svc-3", 100)
	overdue.Payment.Status = entities.PaymentStatusOverdue
	noTotal := testService("svc-4", 0)
	noTotal.Total = nil
	noTotal.Payment.Status = ""

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Service{paid, pending, overdue, noTotal}, nil)

	summary, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalReceived != 500 || summary.PaidCount != 1 {
		t.Fatalf("unexpected received side: %+v", summary)
	}
	if summary.TotalReceivable != 300 || summary.PendingCount != 3 {
		t.Fatalf("unexpected receivable side: %+v", summary)
	}
}

func TestServiceUseCase_CreatePixCharge(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		_, err := uc.CreatePixCharge(context.Background(), "svc-1", "ana@mail.com")
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("no chargeable total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewServiceUseCase(repo, gateway)

		stored := testService("svc-1", 0)
		stored.Total = nil
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(&stored, nil)

		_, err := uc.CreatePixCharge(context.Background(), "svc-1", "ana@mail.com")
		if !errors.Is(err, ErrInvalidChargeAmount) {
			t.Fatalf("expected ErrInvalidChargeAmount, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewServiceUseCase(repo, gateway)

		stored := testService("svc-1", 105)
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(&stored, nil)
		gateway.EXPECT().CreatePixCharge(gomock.Any(), 105.0, "Reforma cozinha", "ana@mail.com").
			Return(interfaces.PixCharge{ProviderPaymentID: "mp-1", Status: "pending"}, nil)

		charge, err := uc.CreatePixCharge(context.Background(), "svc-1", " ana@mail.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.ProviderPaymentID != "mp-1" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
	})
}
