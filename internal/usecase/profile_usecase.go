package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"
)

var (
	ErrInvalidProfileID = errors.New("invalid profile id")
	ErrInvalidRole      = errors.New("invalid role")
	ErrProfileNotFound  = errors.New("profile not found")
)

// IProfileUseCase exposes the admin user-management surface: listing members,
// role changes and the activation toggle.

type IProfileUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	List(ctx context.Context) ([]entities.Profile, error)
	ChangeRole(ctx context.Context, id string, role entities.Role) (entities.Profile, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Profile, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

func (u *ProfileUseCase) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *ProfileUseCase) List(ctx context.Context) ([]entities.Profile, error) {
	return u.repo.List(ctx)
}

func (u *ProfileUseCase) ChangeRole(ctx context.Context, id string, role entities.Role) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileID
	}
	switch role {
	case entities.RoleUser, entities.RoleEditor, entities.RoleAdmin:
	default:
		return entities.Profile{}, ErrInvalidRole
	}

	updated, err := u.repo.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Profile{}, ErrProfileNotFound
		}
		return entities.Profile{}, err
	}
	return updated, nil
}

func (u *ProfileUseCase) SetActive(ctx context.Context, id string, active bool) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidProfileID
	}

	updated, err := u.repo.UpdateActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Profile{}, ErrProfileNotFound
		}
		return entities.Profile{}, err
	}
	return updated, nil
}
