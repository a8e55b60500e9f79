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

// ClientRepository persists clients as one JSON collection in the key-value
// store. Every mutation rewrites the whole collection, so there are no
// partial writes.
type ClientRepository struct {
	store storage.Store
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(store storage.Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) ListAll(ctx context.Context) ([]entities.Client, error) {
	return loadCollection[entities.Client](ctx, r.store, keyClients), nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*entities.Client, error) {
	clients, _ := r.ListAll(ctx)
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, nil
}

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := validation.ValidateClient(c); err != nil {
		return entities.Client{}, err
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = nil

	clients, _ := r.ListAll(ctx)
	clients = append(clients, c)
	if err := saveCollection(ctx, r.store, keyClients, clients); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := validation.ValidateClient(c); err != nil {
		return entities.Client{}, err
	}

	clients, _ := r.ListAll(ctx)
	for i := range clients {
		if clients[i].ID != c.ID {
			continue
		}
		now := time.Now().UTC()
		c.CreatedAt = clients[i].CreatedAt
		c.UpdatedAt = &now
		clients[i] = c
		if err := saveCollection(ctx, r.store, keyClients, clients); err != nil {
			return entities.Client{}, err
		}
		return c, nil
	}
	return entities.Client{}, interfaces.ErrNotFound
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	clients, _ := r.ListAll(ctx)
	filtered := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	return saveCollection(ctx, r.store, keyClients, filtered)
}

func (r *ClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	c, err := r.GetByID(ctx, id)
	return c != nil, err
}
