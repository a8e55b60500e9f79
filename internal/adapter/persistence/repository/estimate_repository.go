package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"obrafacil/internal/domain/entities"
	"obrafacil/internal/domain/validation"
	"obrafacil/internal/infrastructure/storage"
	"obrafacil/internal/usecase/interfaces"
)

// EstimateRepository persists estimates as one JSON collection in the
// key-value store.
type EstimateRepository struct {
	store storage.Store
}

var _ interfaces.IEstimateRepository = (*EstimateRepository)(nil)

func NewEstimateRepository(store storage.Store) *EstimateRepository {
	return &EstimateRepository{store: store}
}

func (r *EstimateRepository) ListAll(ctx context.Context) ([]entities.Estimate, error) {
	return loadCollection[entities.Estimate](ctx, r.store, keyEstimates), nil
}

func (r *EstimateRepository) GetByID(ctx context.Context, id string) (*entities.Estimate, error) {
	estimates, _ := r.ListAll(ctx)
	for i := range estimates {
		if estimates[i].ID == id {
			return &estimates[i], nil
		}
	}
	return nil, nil
}

func (r *EstimateRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if err := validation.ValidateEstimate(e); err != nil {
		return entities.Estimate{}, err
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = nil

	estimates, _ := r.ListAll(ctx)
	estimates = append(estimates, e)
	if err := saveCollection(ctx, r.store, keyEstimates, estimates); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if err := validation.ValidateEstimate(e); err != nil {
		return entities.Estimate{}, err
	}

	estimates, _ := r.ListAll(ctx)
	for i := range estimates {
		if estimates[i].ID != e.ID {
			continue
		}
		now := time.Now().UTC()
		e.CreatedAt = estimates[i].CreatedAt
		e.UpdatedAt = &now
		estimates[i] = e
		if err := saveCollection(ctx, r.store, keyEstimates, estimates); err != nil {
			return entities.Estimate{}, err
		}
		return e, nil
	}
	return entities.Estimate{}, interfaces.ErrNotFound
}

func (r *EstimateRepository) Delete(ctx context.Context, id string) error {
	estimates, _ := r.ListAll(ctx)
	filtered := estimates[:0]
	for _, e := range estimates {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	return saveCollection(ctx, r.store, keyEstimates, filtered)
}

func (r *EstimateRepository) Exists(ctx context.Context, id string) (bool, error) {
	e, err := r.GetByID(ctx, id)
	return e != nil, err
}
