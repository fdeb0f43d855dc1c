package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	mock_interfaces "github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authedRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{m.Authenticate()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		s, _ := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"profile_id": s.Profile.ID})
	})
	r.GET("/protected", chain...)
	return r
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := authedRouter(NewAuthMiddleware(tokens, profiles))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := authedRouter(NewAuthMiddleware(tokens, profiles))

		tokens.EXPECT().Verify("bad").Return("", errors.New("invalid signature"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("profile no longer exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := authedRouter(NewAuthMiddleware(tokens, profiles))

		tokens.EXPECT().Verify("tok").Return("p1", nil)
		profiles.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Profile{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success stores session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := authedRouter(NewAuthMiddleware(tokens, profiles))

		tokens.EXPECT().Verify("tok").Return("p1", nil)
		profiles.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Profile{ID: "p1", Role: entities.RoleUser, Active: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAuthenticateOptional(t *testing.T) {
	optionalRouter := func(m *AuthMiddleware) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/open", m.AuthenticateOptional(), func(c *gin.Context) {
			s, ok := SessionFrom(c)
			c.JSON(http.StatusOK, gin.H{"signed_in": ok, "profile_id": s.Profile.ID})
		})
		return r
	}

	t.Run("no header passes through anonymously", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := optionalRouter(NewAuthMiddleware(tokens, profiles))

		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); !strings.Contains(got, `"signed_in":false`) {
			t.Fatalf("expected anonymous session, got %s", got)
		}
	})

	t.Run("bad token passes through anonymously", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := optionalRouter(NewAuthMiddleware(tokens, profiles))

		tokens.EXPECT().Verify("bad").Return("", errors.New("invalid signature"))

		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); !strings.Contains(got, `"signed_in":false`) {
			t.Fatalf("expected anonymous session, got %s", got)
		}
	})

	t.Run("valid token populates the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := optionalRouter(NewAuthMiddleware(tokens, profiles))

		tokens.EXPECT().Verify("tok").Return("p1", nil)
		profiles.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Profile{ID: "p1", Role: entities.RoleEditor, Active: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); !strings.Contains(got, `"profile_id":"p1"`) {
			t.Fatalf("expected session for p1, got %s", got)
		}
	})
}

func TestGuards(t *testing.T) {
	run := func(t *testing.T, p entities.Profile, guard gin.HandlerFunc) int {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := authedRouter(NewAuthMiddleware(tokens, profiles), guard)

		tokens.EXPECT().Verify("tok").Return(p.ID, nil)
		profiles.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("deactivated member is blocked", func(t *testing.T) {
		p := entities.Profile{ID: "p1", Role: entities.RoleUser, Active: false}
		if code := run(t, p, RequireActive()); code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})

	t.Run("deactivated admin still passes", func(t *testing.T) {
		p := entities.Profile{ID: "p1", Role: entities.RoleAdmin, Active: false}
		if code := run(t, p, RequireActive()); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})

	t.Run("user is not an editor", func(t *testing.T) {
		p := entities.Profile{ID: "p1", Role: entities.RoleUser, Active: true}
		if code := run(t, p, RequireEditor()); code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})

	t.Run("editor passes the editor guard", func(t *testing.T) {
		p := entities.Profile{ID: "p1", Role: entities.RoleEditor, Active: true}
		if code := run(t, p, RequireEditor()); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})

	t.Run("editor is not an admin", func(t *testing.T) {
		p := entities.Profile{ID: "p1", Role: entities.RoleEditor, Active: true}
		if code := run(t, p, RequireAdmin()); code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})
}
