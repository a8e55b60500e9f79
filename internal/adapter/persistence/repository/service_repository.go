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

// ServiceRepository persists services as one JSON collection in the
// key-value store.
type ServiceRepository struct {
	store storage.Store
}

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

func NewServiceRepository(store storage.Store) *ServiceRepository {
	return &ServiceRepository{store: store}
}

func (r *ServiceRepository) ListAll(ctx context.Context) ([]entities.Service, error) {
	return loadCollection[entities.Service](ctx, r.store, keyServices), nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	services, _ := r.ListAll(ctx)
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := validation.ValidateService(s); err != nil {
		return entities.Service{}, err
	}

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = nil

	services, _ := r.ListAll(ctx)
	services = append(services, s)
	if err := saveCollection(ctx, r.store, keyServices, services); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := validation.ValidateService(s); err != nil {
		return entities.Service{}, err
	}

	services, _ := r.ListAll(ctx)
	for i := range services {
		if services[i].ID != s.ID {
			continue
		}
		now := time.Now().UTC()
		s.CreatedAt = services[i].CreatedAt
		s.UpdatedAt = &now
		services[i] = s
		if err := saveCollection(ctx, r.store, keyServices, services); err != nil {
			return entities.Service{}, err
		}
		return s, nil
	}
	return entities.Service{}, interfaces.ErrNotFound
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	services, _ := r.ListAll(ctx)
	filtered := services[:0]
	for _, s := range services {
		if s.ID != id {
			filtered = append(filtered, s)
		}
	}
	return saveCollection(ctx, r.store, keyServices, filtered)
}

func (r *ServiceRepository) Exists(ctx context.Context, id string) (bool, error) {
	s, err := r.GetByID(ctx, id)
	return s != nil, err
}
