package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"
	mock_interfaces "github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testTokenTTL = time.Hour

func TestAuthUseCase_SignUp(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, testTokenTTL)
		_, _, err := uc.SignUp(context.Background(), SignUpInput{Email: "not-an-email", Password: "secret123"})
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, testTokenTTL)
		_, _, err := uc.SignUp(context.Background(), SignUpInput{Email: "a@b.es", Password: "short"})
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewAuthUseCase(profiles, nil, testTokenTTL)

		profiles.EXPECT().GetByEmail(gomock.Any(), "a@b.es").Return(entities.Profile{ID: "existing"}, nil)

		_, _, err := uc.SignUp(context.Background(), SignUpInput{Email: "A@B.es", Password: "secret123"})
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("racing create loses politely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewAuthUseCase(profiles, nil, testTokenTTL)

		profiles.EXPECT().GetByEmail(gomock.Any(), "a@b.es").Return(entities.Profile{}, nil)
		profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Profile{}, interfaces.ErrAlreadyExists)

		_, _, err := uc.SignUp(context.Background(), SignUpInput{Email: "a@b.es", Password: "secret123"})
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("success issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		uc := NewAuthUseCase(profiles, tokens, testTokenTTL)

		profiles.EXPECT().GetByEmail(gomock.Any(), "a@b.es").Return(entities.Profile{}, nil)
		profiles.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Profile{})).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) {
				if p.ID == "" || p.Role != entities.RoleUser || !p.Active {
					t.Fatalf("unexpected profile: %+v", p)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("secret123")); err != nil {
					t.Fatalf("stored hash does not match password: %v", err)
				}
				return p, nil
			},
		)
		tokens.EXPECT().Issue(gomock.Any(), testTokenTTL).Return("tok", nil)

		p, tok, err := uc.SignUp(context.Background(), SignUpInput{Email: " A@B.es ", Password: "secret123", FullName: "Ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok != "tok" || p.Email != "a@b.es" {
			t.Fatalf("unexpected result: %+v %q", p, tok)
		}
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := entities.Profile{ID: "p1", Email: "a@b.es", PasswordHash: string(hash)}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewAuthUseCase(profiles, nil, testTokenTTL)

		profiles.EXPECT().GetByEmail(gomock.Any(), "a@b.es").Return(entities.Profile{}, nil)

		_, _, err := uc.SignIn(context.Background(), "a@b.es", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewAuthUseCase(profiles, nil, testTokenTTL)

		profiles.EXPECT().GetByEmail(gomock.Any(), "a@b.es").Return(stored, nil)

		_, _, err := uc.SignIn(context.Background(), "a@b.es", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		uc := NewAuthUseCase(profiles, tokens, testTokenTTL)

		profiles.EXPECT().GetByEmail(gomock.Any(), "a@b.es").Return(stored, nil)
		tokens.EXPECT().Issue("p1", testTokenTTL).Return("tok", nil)

		p, tok, err := uc.SignIn(context.Background(), "A@B.es", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p1" || tok != "tok" {
			t.Fatalf("unexpected result: %+v %q", p, tok)
		}
	})
}
