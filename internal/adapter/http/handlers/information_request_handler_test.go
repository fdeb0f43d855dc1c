package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/handlers/mocks"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/middleware"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sessionFor(p entities.Profile) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.WithSession(c, middleware.Session{
			Profile:      p,
			Capabilities: entities.ResolveCapabilities(&p),
		})
		c.Next()
	}
}

func TestInformationRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	member := entities.Profile{ID: "user-1", Role: entities.RoleUser, Active: true}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInformationRequestUseCase(ctrl)
		h := NewInformationRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/information-requests", sessionFor(member), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/information-requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("requester comes from the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInformationRequestUseCase(ctrl)
		h := NewInformationRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/information-requests", sessionFor(member), h.Create)

		uc.EXPECT().Create(gomock.Any(), "asset-1", "user-1", "nota").Return(entities.InformationRequest{
			ID:          "asset-1#user-1",
			AssetID:     "asset-1",
			RequesterID: "user-1",
			Status:      entities.RequestStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/information-requests", bytes.NewBufferString(`{"asset_id":"asset-1","note":"nota"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "pending" || body["status_message"] == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate pair maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInformationRequestUseCase(ctrl)
		h := NewInformationRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/information-requests", sessionFor(member), h.Create)

		uc.EXPECT().Create(gomock.Any(), "asset-1", "user-1", "").Return(entities.InformationRequest{}, usecase.ErrDuplicateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/information-requests", bytes.NewBufferString(`{"asset_id":"asset-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInformationRequestHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stored := entities.InformationRequest{
		ID:          "asset-1#user-1",
		AssetID:     "asset-1",
		RequesterID: "user-1",
		Status:      entities.RequestStatusApproved,
	}

	t.Run("admin sees the admin surface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInformationRequestUseCase(ctrl)
		h := NewInformationRequestHandler(uc)

		admin := entities.Profile{ID: "admin-1", Role: entities.RoleAdmin, Active: true}
		r := gin.New()
		r.GET("/v1/information-requests/:request_id", sessionFor(admin), h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "asset-1#user-1").Return(stored, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/information-requests/asset-1%23user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		actions, _ := body["actions"].([]any)
		if len(actions) == 0 {
			t.Fatalf("admin surface should offer actions at approved: %s", w.Body.String())
		}
	})

	t.Run("strangers cannot read someone else's request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInformationRequestUseCase(ctrl)
		h := NewInformationRequestHandler(uc)

		other := entities.Profile{ID: "user-2", Role: entities.RoleUser, Active: true}
		r := gin.New()
		r.GET("/v1/information-requests/:request_id", sessionFor(other), h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "asset-1#user-1").Return(stored, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/information-requests/asset-1%23user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestInformationRequestHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	admin := entities.Profile{ID: "admin-1", Role: entities.RoleAdmin, Active: true}

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInformationRequestUseCase(ctrl)
		h := NewInformationRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/information-requests/:request_id/approve", sessionFor(admin), h.Approve)

		uc.EXPECT().Approve(gomock.Any(), "asset-1#user-1").Return(entities.InformationRequest{
			ID:     "asset-1#user-1",
			Status: entities.RequestStatusApproved,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/information-requests/asset-1%23user-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInformationRequestUseCase(ctrl)
		h := NewInformationRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/information-requests/:request_id/share", sessionFor(admin), h.ShareInformation)

		uc.EXPECT().ShareInformation(gomock.Any(), "req-1").Return(entities.InformationRequest{}, entities.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/information-requests/req-1/share", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("lost race maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInformationRequestUseCase(ctrl)
		h := NewInformationRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/information-requests/:request_id/reject", sessionFor(admin), h.Reject)

		uc.EXPECT().Reject(gomock.Any(), "req-1").Return(entities.InformationRequest{}, usecase.ErrRequestStateConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/information-requests/req-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapInformationRequestError(t *testing.T) {
	if got := mapInformationRequestError(usecase.ErrInvalidRequestID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInformationRequestError(usecase.ErrAssetNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInformationRequestError(usecase.ErrRequestNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInformationRequestError(usecase.ErrDuplicateRequest); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInformationRequestError(entities.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInformationRequestError(usecase.ErrRequestStateConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInformationRequestError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
