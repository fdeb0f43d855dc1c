package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const minPasswordLen = 8

// SignUpInput carries the self-service registration fields for the
// observatory side. Club membership goes through registration requests
// instead.
type SignUpInput struct {
	Email        string
	Password     string
	FullName     string
	Organization string
}

// IAuthUseCase owns session establishment: profile creation with a bcrypt
// hash and signed-token issuance on success.

type IAuthUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (entities.Profile, string, error)
	SignIn(ctx context.Context, email, password string) (entities.Profile, string, error)
}

type AuthUseCase struct {
	profiles interfaces.IProfileRepository
	tokens   interfaces.ITokenManager
	tokenTTL time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(profiles interfaces.IProfileRepository, tokens interfaces.ITokenManager, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{profiles: profiles, tokens: tokens, tokenTTL: tokenTTL}
}

func (u *AuthUseCase) SignUp(ctx context.Context, in SignUpInput) (entities.Profile, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return entities.Profile{}, "", ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLen {
		return entities.Profile{}, "", ErrWeakPassword
	}

	// Pre-check keeps the common duplicate friendly; the conditional create
	// below still decides the race.
	existing, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		return entities.Profile{}, "", err
	}
	if existing.ID != "" {
		return entities.Profile{}, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Profile{}, "", err
	}

	now := time.Now().UTC()
	p := entities.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(in.FullName),
		Organization: strings.TrimSpace(in.Organization),
		Role:         entities.RoleUser,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.profiles.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Profile{}, "", ErrEmailTaken
		}
		return entities.Profile{}, "", err
	}

	token, err := u.tokens.Issue(created.ID, u.tokenTTL)
	if err != nil {
		return entities.Profile{}, "", err
	}
	return created, token, nil
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.Profile, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return entities.Profile{}, "", ErrInvalidCredentials
	}

	p, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		return entities.Profile{}, "", err
	}
	if p.ID == "" {
		return entities.Profile{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return entities.Profile{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(p.ID, u.tokenTTL)
	if err != nil {
		return entities.Profile{}, "", err
	}
	return p, token, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}
