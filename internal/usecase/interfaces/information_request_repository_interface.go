package interfaces

import (
	"context"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// IInformationRequestRepository abstracts DynamoDB persistence for
// InformationRequest.
//
// Create is a conditional put on the deterministic (asset, requester) key and
// must fail with ErrAlreadyExists on a duplicate. UpdateStatus writes the new
// status only when the stored status still equals from (compare-and-swap) and
// must fail with ErrConditionFailed otherwise, so two admins racing on the
// same row produce exactly one winner.

type IInformationRequestRepository interface {
	Create(ctx context.Context, r entities.InformationRequest) (entities.InformationRequest, error)
	GetByID(ctx context.Context, id string) (entities.InformationRequest, error)
	List(ctx context.Context) ([]entities.InformationRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]entities.InformationRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.RequestStatus) (entities.InformationRequest, error)
	CountByStatus(ctx context.Context) (map[entities.RequestStatus]int, error)
}
