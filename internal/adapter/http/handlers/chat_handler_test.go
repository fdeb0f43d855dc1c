package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChatHandler_Ask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.Ask)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.Ask)

		uc.EXPECT().Answer(gomock.Any(), "¿hay encuestas abiertas?").Return("Hay 1 encuesta(s) abierta(s).", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"question":"¿hay encuestas abiertas?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["answer"] != "Hay 1 encuesta(s) abierta(s)." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.Ask)

		uc.EXPECT().Answer(gomock.Any(), "kpi").Return("", errors.New("dataset unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"question":"kpi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
