package interfaces

import (
	"context"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// IRegistrationRequestRepository abstracts DynamoDB persistence for
// RegistrationRequest.
//
// Approve must write the new profile and flip the request to approved in one
// storage transaction (TransactWriteItems): profile put conditional on
// not-exists, request update conditional on status=pending. Either both land
// or neither does — there is no half-created account to clean up manually.

type IRegistrationRequestRepository interface {
	Create(ctx context.Context, r entities.RegistrationRequest) (entities.RegistrationRequest, error)
	GetByID(ctx context.Context, id string) (entities.RegistrationRequest, error)
	List(ctx context.Context) ([]entities.RegistrationRequest, error)
	Approve(ctx context.Context, requestID string, profile entities.Profile) error
	Reject(ctx context.Context, requestID string) (entities.RegistrationRequest, error)
}
