package interfaces

import (
	"context"

	"obrafacil/internal/domain/entities"
)

// IClientRepository persists the flat client collection.
//
// Contract, shared by every entity repository:
//   - ListAll returns the whole collection; a failed storage read degrades
//     to an empty collection and is only logged.
//   - GetByID returns nil (no error) for a missing id.
//   - Create validates, assigns id and createdAt, then rewrites the whole
//     collection. Update re-validates, refreshes updatedAt and fails with
//     ErrNotFound when the id is absent. Delete is an idempotent no-op.
type IClientRepository interface {
	ListAll(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (*entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
