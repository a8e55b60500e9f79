package handlers

import (
	"context"
	"errors"
	"net/http"

	request "obrafacil/internal/adapter/http/dto/request"
	response "obrafacil/internal/adapter/http/dto/response"
	"obrafacil/internal/domain/entities"
	"obrafacil/internal/domain/validation"
	"obrafacil/internal/infrastructure/documents"
	"obrafacil/internal/usecase"
	"obrafacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates, including the
// approval flow that spawns a service and the shareable document endpoints.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	clients usecase.IClientUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, clients usecase.IClientUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc, clients: clients}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate := payload.ToEntity()
	estimate.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), estimate)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ApproveEstimate marks the estimate approved and, on the first approval,
// creates the corresponding service. Repeat approvals report alreadyCreated
// instead of spawning a duplicate.
func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	result, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.ApprovalResponse{
		Estimate:       response.FromEstimate(result.Estimate),
		AlreadyCreated: result.AlreadyCreated,
	}
	if result.Service != nil {
		service := response.FromService(*result.Service)
		resp.Service = &service
	}

	c.JSON(http.StatusOK, resp)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Reject)
}

func (h *EstimateHandler) ExpireEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Expire)
}

func (h *EstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Estimate, error),
) {
	estimate, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GetEstimateDocument renders the printable HTML proposal. An estimate whose
// client was meanwhile deleted still renders, with the client shown as N/A.
func (h *EstimateHandler) GetEstimateDocument(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	html, err := documents.RenderEstimateHTML(estimate, h.lookupClient(c.Request.Context(), estimate.ClientID))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetEstimateSummary returns the short plain-text version used for sharing
// over messaging apps.
func (h *EstimateHandler) GetEstimateSummary(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary := documents.EstimateSummary(estimate, h.lookupClient(c.Request.Context(), estimate.ClientID))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(summary))
}

func (h *EstimateHandler) lookupClient(ctx context.Context, clientID string) *entities.Client {
	client, err := h.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil
	}
	return &client
}

func mapEstimateError(err error) *pkg.AppError {
	var vErr *validation.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
