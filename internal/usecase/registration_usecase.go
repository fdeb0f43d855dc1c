package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidRegistration       = errors.New("invalid registration input")
	ErrRegistrationNotFound      = errors.New("registration request not found")
	ErrRegistrationNotPending    = errors.New("registration request is not pending")
	ErrRegistrationStateConflict = errors.New("registration status changed concurrently")
)

// IRegistrationUseCase drives club membership applications. Approve composes
// identity creation and the status flip as one storage transaction — if the
// profile cannot be written the request stays pending, and vice versa.

type IRegistrationUseCase interface {
	Submit(ctx context.Context, r entities.RegistrationRequest) (entities.RegistrationRequest, error)
	List(ctx context.Context) ([]entities.RegistrationRequest, error)
	Approve(ctx context.Context, requestID, initialPassword string) (entities.Profile, error)
	Reject(ctx context.Context, requestID string) (entities.RegistrationRequest, error)
}

type RegistrationUseCase struct {
	repo     interfaces.IRegistrationRequestRepository
	profiles interfaces.IProfileRepository
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(repo interfaces.IRegistrationRequestRepository, profiles interfaces.IProfileRepository) *RegistrationUseCase {
	return &RegistrationUseCase{repo: repo, profiles: profiles}
}

func (u *RegistrationUseCase) Submit(ctx context.Context, r entities.RegistrationRequest) (entities.RegistrationRequest, error) {
	r.Email = normalizeEmail(r.Email)
	r.FullName = strings.TrimSpace(r.FullName)
	if r.Email == "" || r.FullName == "" {
		return entities.RegistrationRequest{}, ErrInvalidRegistration
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.Status = entities.RegistrationStatusPending
	r.CreatedAt = now
	r.UpdatedAt = now
	return u.repo.Create(ctx, r)
}

func (u *RegistrationUseCase) List(ctx context.Context) ([]entities.RegistrationRequest, error) {
	return u.repo.List(ctx)
}

func (u *RegistrationUseCase) Approve(ctx context.Context, requestID, initialPassword string) (entities.Profile, error) {
	req, err := u.get(ctx, requestID)
	if err != nil {
		return entities.Profile{}, err
	}
	if req.Status != entities.RegistrationStatusPending {
		return entities.Profile{}, ErrRegistrationNotPending
	}

	existing, err := u.profiles.GetByEmail(ctx, req.Email)
	if err != nil {
		return entities.Profile{}, err
	}
	if existing.ID != "" {
		return entities.Profile{}, ErrEmailTaken
	}

	if initialPassword == "" {
		initialPassword = uuid.NewString()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
	if err != nil {
		return entities.Profile{}, err
	}

	now := time.Now().UTC()
	p := entities.Profile{
		ID:           uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		Organization: req.Organization,
		Role:         entities.RoleUser,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.repo.Approve(ctx, req.ID, p); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Profile{}, ErrRegistrationStateConflict
		}
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Profile{}, ErrEmailTaken
		}
		return entities.Profile{}, err
	}
	log.Printf("[registration][usecase] approved request_id=%s profile_id=%s", req.ID, p.ID)
	return p, nil
}

func (u *RegistrationUseCase) Reject(ctx context.Context, requestID string) (entities.RegistrationRequest, error) {
	req, err := u.get(ctx, requestID)
	if err != nil {
		return entities.RegistrationRequest{}, err
	}
	if req.Status != entities.RegistrationStatusPending {
		return entities.RegistrationRequest{}, ErrRegistrationNotPending
	}

	updated, err := u.repo.Reject(ctx, req.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.RegistrationRequest{}, ErrRegistrationStateConflict
		}
		return entities.RegistrationRequest{}, err
	}
	return updated, nil
}

func (u *RegistrationUseCase) get(ctx context.Context, requestID string) (entities.RegistrationRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.RegistrationRequest{}, ErrInvalidRegistration
	}

	req, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.RegistrationRequest{}, err
	}
	if req.ID == "" {
		return entities.RegistrationRequest{}, ErrRegistrationNotFound
	}
	return req, nil
}
