package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAssetID     = errors.New("invalid asset id")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrInvalidAssetInput  = errors.New("invalid asset input")
	ErrNotAssetOwner      = errors.New("only the owner or an admin may modify this asset")
	ErrInvalidAssetFilter = errors.New("invalid asset filter")
)

// IAssetUseCase exposes club catalog operations. Search fetches the full
// authorized catalog and filters it in memory with the pure filter function.

type IAssetUseCase interface {
	Create(ctx context.Context, a entities.Asset) (entities.Asset, error)
	GetByID(ctx context.Context, id string) (entities.Asset, error)
	Search(ctx context.Context, f entities.AssetFilter) ([]entities.Asset, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Asset, error)
	Update(ctx context.Context, actor entities.Profile, a entities.Asset) (entities.Asset, error)
	Delete(ctx context.Context, actor entities.Profile, id string) error
}

type AssetUseCase struct {
	repo interfaces.IAssetRepository
}

var _ IAssetUseCase = (*AssetUseCase)(nil)

func NewAssetUseCase(repo interfaces.IAssetRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo}
}

func (u *AssetUseCase) Create(ctx context.Context, a entities.Asset) (entities.Asset, error) {
	if err := validateAsset(a); err != nil {
		return entities.Asset{}, err
	}

	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, a)
}

func (u *AssetUseCase) GetByID(ctx context.Context, id string) (entities.Asset, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Asset{}, ErrInvalidAssetID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Asset{}, err
	}
	if a.ID == "" {
		return entities.Asset{}, ErrAssetNotFound
	}
	return a, nil
}

func (u *AssetUseCase) Search(ctx context.Context, f entities.AssetFilter) ([]entities.Asset, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return entities.FilterAssets(all, f), nil
}

func (u *AssetUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Asset, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidAssetInput
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *AssetUseCase) Update(ctx context.Context, actor entities.Profile, a entities.Asset) (entities.Asset, error) {
	existing, err := u.GetByID(ctx, a.ID)
	if err != nil {
		return entities.Asset{}, err
	}
	if !canMutate(actor, existing) {
		return entities.Asset{}, ErrNotAssetOwner
	}
	if err := validateAsset(a); err != nil {
		return entities.Asset{}, err
	}

	a.OwnerID = existing.OwnerID
	a.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, a)
}

func (u *AssetUseCase) Delete(ctx context.Context, actor entities.Profile, id string) error {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, existing) {
		return ErrNotAssetOwner
	}
	return u.repo.Delete(ctx, existing.ID)
}

// canMutate implements the owner-or-admin rule by matching the stored owner
// id against the acting profile.
func canMutate(actor entities.Profile, a entities.Asset) bool {
	return actor.Role == entities.RoleAdmin || actor.ID == a.OwnerID
}

func validateAsset(a entities.Asset) error {
	switch a.Purpose {
	case entities.PurposeSale, entities.PurposePurchase, entities.PurposeNeed:
	default:
		return ErrInvalidAssetInput
	}
	if strings.TrimSpace(a.OwnerID) == "" ||
		strings.TrimSpace(a.Category) == "" ||
		strings.TrimSpace(a.Country) == "" ||
		strings.TrimSpace(a.City) == "" {
		return ErrInvalidAssetInput
	}
	if a.PriceAmount <= 0 || strings.TrimSpace(a.PriceCurrency) == "" {
		return ErrInvalidAssetInput
	}
	return nil
}
