package handlers

import (
	"net/http"

	request "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/request"
	response "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/response"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"
	"github.com/VLP-TECH/real-state-enrique-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)
)

// ChatHandler exposes the observatory assistant.

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	answer, err := h.usecase.Answer(c.Request.Context(), payload.Question)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{Answer: answer})
}
