package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"obrafacil/internal/domain/entities"
	"obrafacil/internal/usecase/interfaces"
	mock_interfaces "obrafacil/internal/usecase/interfaces/mocks"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("trims fields before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Name != "Ana Silva" || c.Phone != "27999998888" || c.Email != "ana@mail.com" {
					t.Fatalf("expected trimmed fields, got %+v", c)
				}
				c.ID = "client-1"
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Client{Name: " Ana Silva ", Phone: " 27999998888 ", Email: " ana@mail.com "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "client-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(nil, nil)

		_, err := uc.GetByID(context.Background(), "client-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		stored := entities.Client{ID: "client-1", Name: "Ana Silva", Phone: "27999998888"}
		repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(&stored, nil)

		res, err := uc.GetByID(context.Background(), " client-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Ana Silva" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("maps repository not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Client{}, interfaces.ErrNotFound)

		_, err := uc.Update(context.Background(), entities.Client{ID: "client-1", Name: "Ana", Phone: "27999998888"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("missing id is rejected before the repository", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "client-1").Return(nil)

		if err := uc.Delete(context.Background(), "client-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
