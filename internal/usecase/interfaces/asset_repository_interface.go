package interfaces

import (
	"context"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// IAssetRepository abstracts DynamoDB persistence for Asset.
//
// List fetches the whole catalog; filtering happens in memory in the use case
// (the dataset a member is authorized to see is small and fetched eagerly).

type IAssetRepository interface {
	Create(ctx context.Context, a entities.Asset) (entities.Asset, error)
	GetByID(ctx context.Context, id string) (entities.Asset, error)
	List(ctx context.Context) ([]entities.Asset, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Asset, error)
	Update(ctx context.Context, a entities.Asset) (entities.Asset, error)
	Delete(ctx context.Context, id string) error
}
