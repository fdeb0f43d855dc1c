package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/handlers/mocks"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssetHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAssetUseCase(ctrl)
	h := NewAssetHandler(uc)

	r := gin.New()
	r.GET("/v1/assets", h.Search)

	uc.EXPECT().Search(gomock.Any(), entities.AssetFilter{
		Location:   "madrid",
		Purpose:    entities.PurposeSale,
		PriceRange: "100000-500000",
	}).Return([]entities.Asset{{ID: "a1", PriceAmount: 250000}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/assets?location=madrid&purpose=sale&price_range=100000-500000", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "a1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAssetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	member := entities.Profile{ID: "owner-1", Role: entities.RoleUser, Active: true}

	t.Run("owner comes from the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		r := gin.New()
		r.POST("/v1/assets", sessionFor(member), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Asset{})).DoAndReturn(
			func(_ any, a entities.Asset) (entities.Asset, error) {
				if a.OwnerID != "owner-1" {
					t.Fatalf("expected session owner, got %q", a.OwnerID)
				}
				a.ID = "a1"
				return a, nil
			},
		)

		payload := `{"purpose":"sale","category":"residential","country":"España","city":"Madrid","price_amount":250000,"price_currency":"EUR"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/assets", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		r := gin.New()
		r.POST("/v1/assets", sessionFor(member), h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Asset{}, usecase.ErrInvalidAssetInput)

		payload := `{"purpose":"rent","category":"residential","country":"España","city":"Madrid","price_amount":250000,"price_currency":"EUR"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/assets", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAssetHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	member := entities.Profile{ID: "user-2", Role: entities.RoleUser, Active: true}

	t.Run("not owner maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		r := gin.New()
		r.DELETE("/v1/assets/:asset_id", sessionFor(member), h.Delete)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "a1").Return(usecase.ErrNotAssetOwner)

		req := httptest.NewRequest(http.MethodDelete, "/v1/assets/a1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		r := gin.New()
		r.DELETE("/v1/assets/:asset_id", sessionFor(member), h.Delete)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "a1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/assets/a1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
