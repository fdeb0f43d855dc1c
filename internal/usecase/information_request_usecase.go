package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"
)

var (
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidRequesterID   = errors.New("invalid requester id")
	ErrRequestNotFound      = errors.New("information request not found")
	ErrDuplicateRequest     = errors.New("information request already exists for this asset and requester")
	ErrRequestStateConflict = errors.New("request status changed concurrently")
)

// IInformationRequestUseCase drives the information-request lifecycle.
//
// Every transition goes through the guarded state machine in entities and is
// persisted with a compare-and-swap on the status the caller read, so stale
// surfaces and racing admins get a conflict instead of a silent overwrite.

type IInformationRequestUseCase interface {
	Create(ctx context.Context, assetID, requesterID, note string) (entities.InformationRequest, error)
	GetByID(ctx context.Context, id string) (entities.InformationRequest, error)
	ListAll(ctx context.Context) ([]entities.InformationRequest, error)
	ListForRequester(ctx context.Context, requesterID string) ([]entities.InformationRequest, error)
	Approve(ctx context.Context, id string) (entities.InformationRequest, error)
	Reject(ctx context.Context, id string) (entities.InformationRequest, error)
	RequestNDA(ctx context.Context, id string) (entities.InformationRequest, error)
	ConfirmNDA(ctx context.Context, id string) (entities.InformationRequest, error)
	ShareInformation(ctx context.Context, id string) (entities.InformationRequest, error)
}

type InformationRequestUseCase struct {
	repo      interfaces.IInformationRequestRepository
	assetRepo interfaces.IAssetRepository
}

var _ IInformationRequestUseCase = (*InformationRequestUseCase)(nil)

func NewInformationRequestUseCase(repo interfaces.IInformationRequestRepository, assetRepo interfaces.IAssetRepository) *InformationRequestUseCase {
	return &InformationRequestUseCase{repo: repo, assetRepo: assetRepo}
}

func (u *InformationRequestUseCase) Create(ctx context.Context, assetID, requesterID, note string) (entities.InformationRequest, error) {
	assetID = strings.TrimSpace(assetID)
	requesterID = strings.TrimSpace(requesterID)
	if assetID == "" {
		return entities.InformationRequest{}, ErrInvalidAssetID
	}
	if requesterID == "" {
		return entities.InformationRequest{}, ErrInvalidRequesterID
	}

	asset, err := u.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return entities.InformationRequest{}, err
	}
	if asset.ID == "" {
		return entities.InformationRequest{}, ErrAssetNotFound
	}

	now := time.Now().UTC()
	r := entities.InformationRequest{
		ID:          entities.RequestKey(assetID, requesterID),
		AssetID:     assetID,
		RequesterID: requesterID,
		Status:      entities.RequestStatusPending,
		Note:        strings.TrimSpace(note),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.InformationRequest{}, ErrDuplicateRequest
		}
		return entities.InformationRequest{}, err
	}
	return created, nil
}

func (u *InformationRequestUseCase) GetByID(ctx context.Context, id string) (entities.InformationRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InformationRequest{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InformationRequest{}, err
	}
	if r.ID == "" {
		return entities.InformationRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *InformationRequestUseCase) ListAll(ctx context.Context) ([]entities.InformationRequest, error) {
	return u.repo.List(ctx)
}

func (u *InformationRequestUseCase) ListForRequester(ctx context.Context, requesterID string) ([]entities.InformationRequest, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return nil, ErrInvalidRequesterID
	}
	return u.repo.ListByRequester(ctx, requesterID)
}

func (u *InformationRequestUseCase) Approve(ctx context.Context, id string) (entities.InformationRequest, error) {
	return u.transition(ctx, id, entities.EventApprove)
}

func (u *InformationRequestUseCase) Reject(ctx context.Context, id string) (entities.InformationRequest, error) {
	return u.transition(ctx, id, entities.EventReject)
}

func (u *InformationRequestUseCase) RequestNDA(ctx context.Context, id string) (entities.InformationRequest, error) {
	return u.transition(ctx, id, entities.EventRequestNDA)
}

func (u *InformationRequestUseCase) ConfirmNDA(ctx context.Context, id string) (entities.InformationRequest, error) {
	return u.transition(ctx, id, entities.EventConfirmNDA)
}

func (u *InformationRequestUseCase) ShareInformation(ctx context.Context, id string) (entities.InformationRequest, error) {
	return u.transition(ctx, id, entities.EventShareInformation)
}

func (u *InformationRequestUseCase) transition(ctx context.Context, id string, event entities.RequestEvent) (entities.InformationRequest, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InformationRequest{}, err
	}

	next, err := entities.Transition(current.Status, event)
	if err != nil {
		return entities.InformationRequest{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, next)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.InformationRequest{}, ErrRequestStateConflict
		}
		return entities.InformationRequest{}, err
	}
	return updated, nil
}
