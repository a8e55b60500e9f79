package interfaces

import (
	"context"

	"obrafacil/internal/domain/entities"
)

// IEstimateRepository persists the flat estimate collection. Same contract
// as IClientRepository.
type IEstimateRepository interface {
	ListAll(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (*entities.Estimate, error)
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
