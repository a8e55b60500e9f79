package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"obrafacil/internal/domain/entities"
	"obrafacil/internal/domain/pricing"
	"obrafacil/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// ApprovalResult carries the outcome of approving an estimate. Service is
// nil when a service had already been created for the estimate; callers
// should then surface a notice, not an error.
type ApprovalResult struct {
	Estimate       entities.Estimate
	Service        *entities.Service
	AlreadyCreated bool
}

// IEstimateUseCase exposes estimate operations.
//
// Totals are never trusted from the caller: they are recomputed from items,
// fees, discount and the client-material flag before every validation, so
// the persisted total always equals the calculated value.
type IEstimateUseCase interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (ApprovalResult, error)
	Reject(ctx context.Context, id string) (entities.Estimate, error)
	Expire(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo        interfaces.IEstimateRepository
	serviceRepo interfaces.IServiceRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, serviceRepo interfaces.IServiceRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, serviceRepo: serviceRepo}
}

func (u *EstimateUseCase) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.ClientID = strings.TrimSpace(e.ClientID)
	e.Title = strings.TrimSpace(e.Title)
	if e.Status == "" {
		e.Status = entities.EstimateStatusPending
	}
	e.HasServiceCreated = false
	e.Total = pricing.Total(e.Items, e.ExtraFees, e.Discount, e.ClientMaterial)
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.ListAll(ctx)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e == nil {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return *e, nil
}

func (u *EstimateUseCase) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	existing, err := u.repo.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if existing == nil {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	// The idempotency flag belongs to the approval flow, not to callers.
	e.HasServiceCreated = existing.HasServiceCreated
	e.Total = pricing.Total(e.Items, e.ExtraFees, e.Discount, e.ClientMaterial)

	updated, err := u.repo.Update(ctx, e)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}
	return u.repo.Delete(ctx, id)
}

// Approve sets the estimate to approved and, on the first approval, creates
// the corresponding Service seeded from the estimate. hasServiceCreated
// guards the side effect: once a service exists, approving again only
// updates the status.
func (u *EstimateUseCase) Approve(ctx context.Context, id string) (ApprovalResult, error) {
	estimate, err := u.setStatus(ctx, id, entities.EstimateStatusApproved)
	if err != nil {
		return ApprovalResult{}, err
	}

	if estimate.HasServiceCreated {
		log.Printf("[estimate] service already created estimate_id=%s", estimate.ID)
		return ApprovalResult{Estimate: estimate, AlreadyCreated: true}, nil
	}

	service, err := u.serviceRepo.Create(ctx, serviceFromEstimate(estimate))
	if err != nil {
		return ApprovalResult{}, err
	}

	estimate.HasServiceCreated = true
	estimate, err = u.repo.Update(ctx, estimate)
	if err != nil {
		return ApprovalResult{}, err
	}
	log.Printf("[estimate] approved estimate_id=%s service_id=%s", estimate.ID, service.ID)
	return ApprovalResult{Estimate: estimate, Service: &service}, nil
}

func (u *EstimateUseCase) Reject(ctx context.Context, id string) (entities.Estimate, error) {
	return u.setStatus(ctx, id, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) Expire(ctx context.Context, id string) (entities.Estimate, error) {
	return u.setStatus(ctx, id, entities.EstimateStatusExpired)
}

func (u *EstimateUseCase) setStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	estimate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if estimate == nil {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	estimate.Status = status
	updated, err := u.repo.Update(ctx, *estimate)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return updated, nil
}

// serviceFromEstimate seeds a new pending Service from an approved estimate.
func serviceFromEstimate(e entities.Estimate) entities.Service {
	total := pricing.Total(e.Items, e.ExtraFees, e.Discount, e.ClientMaterial)

	var deadline *entities.ExecutionPeriod
	if e.Deadline != nil {
		deadline = &entities.ExecutionPeriod{DurationDays: e.Deadline.DurationDays}
	}

	return entities.Service{
		ClientID:       e.ClientID,
		EstimateID:     e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Status:         entities.ServiceStatusPending,
		ServiceTypes:   e.ServiceTypes,
		Items:          e.Items,
		ExtraFees:      e.ExtraFees,
		Discount:       e.Discount,
		ClientMaterial: e.ClientMaterial,
		ShowRefCost:    e.ShowRefCost,
		Total:          &total,
		Payment: entities.PaymentInfo{
			PaymentBase: e.Payment,
			Status:      entities.PaymentStatusPending,
		},
		Deadline: deadline,
		Notes:    e.Notes,
	}
}
