package handlers

import (
	"errors"
	"io"
	"net/http"

	request "obrafacil/internal/adapter/http/dto/request"
	response "obrafacil/internal/adapter/http/dto/response"
	"obrafacil/internal/domain/entities"
	"obrafacil/internal/domain/validation"
	"obrafacil/internal/usecase"
	"obrafacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
)

// ServiceHandler handles HTTP requests for confirmed jobs, their payment
// state and the financial summary.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(service))
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service := payload.ToEntity()
	service.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), service)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// SetPaymentStatus flips the payment state of a service. Moving into paid
// stamps the paid date; moving out clears it.
func (h *ServiceHandler) SetPaymentStatus(c *gin.Context) {
	var payload request.PaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.SetPaymentStatus(c.Request.Context(), c.Param("id"), entities.PaymentStatus(payload.Status))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

// CreateCharge raises a pix charge for the service total. The body is
// optional; it only carries the payer e-mail when known.
func (h *ServiceHandler) CreateCharge(c *gin.Context) {
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	charge, err := h.usecase.CreatePixCharge(c.Request.Context(), c.Param("id"), payload.PayerEmail)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PixChargeResponse{
		ProviderPaymentID: charge.ProviderPaymentID,
		Status:            charge.Status,
		QRCode:            charge.QRCode,
		QRCodeBase64:      charge.QRCodeBase64,
		TicketURL:         charge.TicketURL,
	})
}

func (h *ServiceHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FinancialSummaryResponse{
		TotalReceived:   summary.TotalReceived,
		TotalReceivable: summary.TotalReceivable,
		PaidCount:       summary.PaidCount,
		PendingCount:    summary.PendingCount,
	})
}

func mapServiceError(err error) *pkg.AppError {
	var vErr *validation.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidChargeAmount):
		return pkg.NewDomainErrorSimple("NO_CHARGEABLE_TOTAL", "Service has no chargeable total", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
