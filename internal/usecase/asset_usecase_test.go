package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	mock_interfaces "github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validAsset() entities.Asset {
	return entities.Asset{
		OwnerID:       "owner-1",
		Purpose:       entities.PurposeSale,
		Category:      "residential",
		Country:       "España",
		City:          "Madrid",
		PriceAmount:   250000,
		PriceCurrency: "EUR",
	}
}

func TestAssetUseCase_Create(t *testing.T) {
	t.Run("invalid purpose", func(t *testing.T) {
		uc := NewAssetUseCase(nil)
		a := validAsset()
		a.Purpose = "rent"
		_, err := uc.Create(context.Background(), a)
		if !errors.Is(err, ErrInvalidAssetInput) {
			t.Fatalf("expected ErrInvalidAssetInput, got %v", err)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		uc := NewAssetUseCase(nil)
		a := validAsset()
		a.City = "  "
		_, err := uc.Create(context.Background(), a)
		if !errors.Is(err, ErrInvalidAssetInput) {
			t.Fatalf("expected ErrInvalidAssetInput, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		uc := NewAssetUseCase(nil)
		a := validAsset()
		a.PriceAmount = 0
		_, err := uc.Create(context.Background(), a)
		if !errors.Is(err, ErrInvalidAssetInput) {
			t.Fatalf("expected ErrInvalidAssetInput, got %v", err)
		}
	})

	t.Run("success assigns id and timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewAssetUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Asset{})).DoAndReturn(
			func(_ context.Context, a entities.Asset) (entities.Asset, error) {
				if a.ID == "" || a.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamp: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.Create(context.Background(), validAsset()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAssetUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAssetRepository(ctrl)
	uc := NewAssetUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Asset{
		{ID: "a1", PriceAmount: 100000},
		{ID: "a2", PriceAmount: 600000},
		{ID: "a3", PriceAmount: 2000000},
	}, nil)

	got, err := uc.Search(context.Background(), entities.AssetFilter{PriceRange: "100000-500000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestAssetUseCase_OwnerChecks(t *testing.T) {
	owner := entities.Profile{ID: "owner-1", Role: entities.RoleUser}
	stranger := entities.Profile{ID: "user-2", Role: entities.RoleUser}
	admin := entities.Profile{ID: "admin-1", Role: entities.RoleAdmin}

	t.Run("stranger cannot delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewAssetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Asset{ID: "a1", OwnerID: "owner-1"}, nil)

		err := uc.Delete(context.Background(), stranger, "a1")
		if !errors.Is(err, ErrNotAssetOwner) {
			t.Fatalf("expected ErrNotAssetOwner, got %v", err)
		}
	})

	t.Run("owner can delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewAssetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Asset{ID: "a1", OwnerID: "owner-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "a1").Return(nil)

		if err := uc.Delete(context.Background(), owner, "a1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin can update someone else's asset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewAssetUseCase(repo)

		existing := validAsset()
		existing.ID = "a1"
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Asset{})).DoAndReturn(
			func(_ context.Context, a entities.Asset) (entities.Asset, error) {
				if a.OwnerID != "owner-1" {
					t.Fatalf("owner must be preserved, got %q", a.OwnerID)
				}
				return a, nil
			},
		)

		update := validAsset()
		update.ID = "a1"
		update.OwnerID = "admin-1" // must be ignored
		update.PriceAmount = 300000
		if _, err := uc.Update(context.Background(), admin, update); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
