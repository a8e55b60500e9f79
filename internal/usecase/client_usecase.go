package usecase

import (
	"context"
	"errors"
	"strings"

	"obrafacil/internal/domain/entities"
	"obrafacil/internal/usecase/interfaces"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
)

// IClientUseCase exposes client CRUD to the HTTP layer.
type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.ListAll(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c == nil {
		return entities.Client{}, ErrClientNotFound
	}
	return *c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	updated, err := u.repo.Update(ctx, c)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Client{}, ErrClientNotFound
	}
	if err != nil {
		return entities.Client{}, err
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	return u.repo.Delete(ctx, id)
}
