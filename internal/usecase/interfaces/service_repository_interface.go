package interfaces

import (
	"context"

	"obrafacil/internal/domain/entities"
)

// IServiceRepository persists the flat service collection. Same contract as
// IClientRepository.
type IServiceRepository interface {
	ListAll(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (*entities.Service, error)
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
