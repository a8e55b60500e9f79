package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"obrafacil/internal/adapter/http/handlers/mocks"
	"obrafacil/internal/domain/entities"
	"obrafacil/internal/domain/validation"
	"obrafacil/internal/usecase"
	"obrafacil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const serviceBody = `{
	"clientId": "cli-1",
	"title": "Troca de telhado",
	"items": [{"id":"i1","description":"Telha","quantity":40,"value":12.5}],
	"payment": {"method":"pix","status":"pending"}
}`

func newServiceHandler(t *testing.T) (*ServiceHandler, *mocks.MockIServiceUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIServiceUseCase(ctrl)
	return NewServiceHandler(uc), uc
}

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h, _ := newServiceHandler(t)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, uc := newServiceHandler(t)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		total := 500.0
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{
			ID: "srv-1", ClientID: "cli-1", Title: "Troca de telhado",
			Status: entities.ServiceStatusPending, Total: &total, CreatedAt: time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(serviceBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "srv-1" || body["total"] != 500.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceHandler_SetPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		h, _ := newServiceHandler(t)

		r := gin.New()
		r.PATCH("/v1/services/:id/payment", h.SetPaymentStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/services/srv-1/payment", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status value", func(t *testing.T) {
		h, uc := newServiceHandler(t)

		r := gin.New()
		r.PATCH("/v1/services/:id/payment", h.SetPaymentStatus)

		uc.EXPECT().SetPaymentStatus(gomock.Any(), "srv-1", entities.PaymentStatus("bogus")).Return(entities.Service{}, usecase.ErrInvalidPaymentStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/services/srv-1/payment", bytes.NewBufferString(`{"status":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("marks paid", func(t *testing.T) {
		h, uc := newServiceHandler(t)

		r := gin.New()
		r.PATCH("/v1/services/:id/payment", h.SetPaymentStatus)

		uc.EXPECT().SetPaymentStatus(gomock.Any(), "srv-1", entities.PaymentStatusPaid).Return(entities.Service{
			ID: "srv-1",
			Payment: entities.PaymentInfo{
				PaymentBase: entities.PaymentBase{Method: entities.PaymentMethodPix},
				PaidDate:    "2025-03-09",
				Status:      entities.PaymentStatusPaid,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/services/srv-1/payment", bytes.NewBufferString(`{"status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		payment, _ := body["payment"].(map[string]any)
		if payment["paidDate"] != "2025-03-09" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceHandler_CreateCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is accepted", func(t *testing.T) {
		h, uc := newServiceHandler(t)

		r := gin.New()
		r.POST("/v1/services/:id/charge", h.CreateCharge)

		uc.EXPECT().CreatePixCharge(gomock.Any(), "srv-1", "").Return(interfaces.PixCharge{
			ProviderPaymentID: "12345", Status: "approved", QRCode: "qr",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/srv-1/charge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["providerPaymentId"] != "12345" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("no chargeable total", func(t *testing.T) {
		h, uc := newServiceHandler(t)

		r := gin.New()
		r.POST("/v1/services/:id/charge", h.CreateCharge)

		uc.EXPECT().CreatePixCharge(gomock.Any(), "srv-1", "x@y.com").Return(interfaces.PixCharge{}, usecase.ErrInvalidChargeAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/srv-1/charge", bytes.NewBufferString(`{"payerEmail":"x@y.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		h, uc := newServiceHandler(t)

		r := gin.New()
		r.POST("/v1/services/:id/charge", h.CreateCharge)

		uc.EXPECT().CreatePixCharge(gomock.Any(), "srv-1", "").Return(interfaces.PixCharge{}, usecase.ErrPaymentGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/srv-1/charge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestServiceHandler_GetFinancialSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, uc := newServiceHandler(t)

	r := gin.New()
	r.GET("/v1/services/summary", h.GetFinancialSummary)

	uc.EXPECT().Summary(gomock.Any()).Return(usecase.FinancialSummary{
		TotalReceived: 1200, TotalReceivable: 800, PaidCount: 2, PendingCount: 3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["totalReceived"] != 1200.0 || body["pendingCount"] != 3.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapServiceError(t *testing.T) {
	if got := mapServiceError(&validation.ValidationError{Field: "title", Reason: "required"}); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceError(usecase.ErrInvalidServiceID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceError(usecase.ErrInvalidPaymentStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceError(usecase.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceError(usecase.ErrInvalidChargeAmount); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapServiceError(usecase.ErrPaymentGatewayNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapServiceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
