package interfaces

import (
	"context"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile.
//
// Create must fail with ErrAlreadyExists when the id is taken. Role/active
// updates are compare-and-swap free (any authorized admin may overwrite), but
// must fail with ErrConditionFailed when the profile does not exist.

type IProfileRepository interface {
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	GetByEmail(ctx context.Context, email string) (entities.Profile, error)
	List(ctx context.Context) ([]entities.Profile, error)
	UpdateRole(ctx context.Context, id string, role entities.Role) (entities.Profile, error)
	UpdateActive(ctx context.Context, id string, active bool) (entities.Profile, error)
}
