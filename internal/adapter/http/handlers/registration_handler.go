package handlers

import (
	"errors"
	"net/http"

	request "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/request"
	response "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/response"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"
	"github.com/VLP-TECH/real-state-enrique-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRegistrationPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRATION_INPUT", "Invalid registration payload", http.StatusBadRequest)
)

// RegistrationHandler handles club membership applications: the public form
// plus the admin decision endpoints.

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

func (h *RegistrationHandler) Submit(c *gin.Context) {
	var payload request.RegistrationSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRegistration(created))
}

func (h *RegistrationHandler) List(c *gin.Context) {
	requests, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRegistrations(requests))
}

func (h *RegistrationHandler) Approve(c *gin.Context) {
	// The payload is entirely optional; an absent body means a generated
	// initial password.
	var payload request.RegistrationApproveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
			return
		}
	}

	profile, err := h.usecase.Approve(c.Request.Context(), c.Param("registration_id"), payload.InitialPassword)
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProfile(profile))
}

func (h *RegistrationHandler) Reject(c *gin.Context) {
	rejected, err := h.usecase.Reject(c.Request.Context(), c.Param("registration_id"))
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegistration(rejected))
}

func mapRegistrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRegistration):
		return pkg.NewDomainErrorSimple("INVALID_REGISTRATION_INPUT", "Invalid registration payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationNotPending):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_PENDING", "This registration request was already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrRegistrationStateConflict):
		return pkg.NewDomainErrorSimple("REGISTRATION_STATE_CONFLICT", "The registration status changed concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "A profile with this email already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
