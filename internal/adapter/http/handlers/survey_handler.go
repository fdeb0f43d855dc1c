package handlers

import (
	"errors"
	"net/http"

	request "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/request"
	response "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/response"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/middleware"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"
	"github.com/VLP-TECH/real-state-enrique-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSurveyPayload = pkg.NewDomainErrorSimple("INVALID_SURVEY_INPUT", "Invalid survey payload", http.StatusBadRequest)
)

// SurveyHandler handles observatory questionnaires. Authoring endpoints are
// editor-gated by the route groups; listing hides drafts from non-editors.

type SurveyHandler struct {
	usecase usecase.ISurveyUseCase
}

func NewSurveyHandler(uc usecase.ISurveyUseCase) *SurveyHandler {
	return &SurveyHandler{usecase: uc}
}

func (h *SurveyHandler) Create(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	var payload request.SurveyCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSurveyPayload.HTTPStatus, errInvalidSurveyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), s.Profile.ID, payload.Title, payload.Description)
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSurvey(created))
}

func (h *SurveyHandler) AddQuestion(c *gin.Context) {
	var payload request.SurveyQuestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSurveyPayload.HTTPStatus, errInvalidSurveyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.AddQuestion(c.Request.Context(), payload.ToEntity(c.Param("survey_id")))
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSurveyQuestion(created))
}

func (h *SurveyHandler) Publish(c *gin.Context) {
	published, err := h.usecase.Publish(c.Request.Context(), c.Param("survey_id"))
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSurvey(published))
}

// List hides drafts unless the caller can author surveys.
func (h *SurveyHandler) List(c *gin.Context) {
	surveys, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if s, ok := middleware.SessionFrom(c); !ok || !s.Capabilities.CanUploadSources {
		visible := make([]entities.Survey, 0, len(surveys))
		for _, sv := range surveys {
			if sv.Status == entities.SurveyStatusPublished {
				visible = append(visible, sv)
			}
		}
		surveys = visible
	}

	c.JSON(http.StatusOK, response.FromSurveys(surveys))
}

func (h *SurveyHandler) GetByID(c *gin.Context) {
	detail, err := h.usecase.Get(c.Request.Context(), c.Param("survey_id"))
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSurveyDetail(detail.Survey, detail.Questions))
}

func (h *SurveyHandler) Respond(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	var payload request.SurveyRespondRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSurveyPayload.HTTPStatus, errInvalidSurveyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Respond(c.Request.Context(), c.Param("survey_id"), s.Profile.ID, payload.Answers)
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSurveyAnswer(created))
}

func (h *SurveyHandler) ListResponses(c *gin.Context) {
	responses, err := h.usecase.ListResponses(c.Request.Context(), c.Param("survey_id"))
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSurveyAnswers(responses))
}

func mapSurveyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSurveyInput), errors.Is(err, usecase.ErrInvalidSurveyAnswers):
		return pkg.NewDomainErrorSimple("INVALID_SURVEY_INPUT", "Invalid survey payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSurveyNotFound):
		return pkg.NewDomainErrorSimple("SURVEY_NOT_FOUND", "Survey not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSurveyNotDraft):
		return pkg.NewDomainErrorSimple("SURVEY_NOT_DRAFT", "Only draft surveys can be modified", http.StatusConflict)
	case errors.Is(err, usecase.ErrSurveyNotPublished):
		return pkg.NewDomainErrorSimple("SURVEY_NOT_PUBLISHED", "This survey is not accepting responses", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyResponded):
		return pkg.NewDomainErrorSimple("ALREADY_RESPONDED", "You already responded to this survey", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
