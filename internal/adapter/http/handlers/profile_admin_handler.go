package handlers

import (
	"errors"
	"net/http"

	request "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/request"
	response "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/response"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"
	"github.com/VLP-TECH/real-state-enrique-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
)

// ProfileAdminHandler is the admin user-management surface.

type ProfileAdminHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileAdminHandler(uc usecase.IProfileUseCase) *ProfileAdminHandler {
	return &ProfileAdminHandler{usecase: uc}
}

func (h *ProfileAdminHandler) List(c *gin.Context) {
	profiles, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfiles(profiles))
}

func (h *ProfileAdminHandler) GetByID(c *gin.Context) {
	profile, err := h.usecase.GetByID(c.Request.Context(), c.Param("profile_id"))
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}

func (h *ProfileAdminHandler) ChangeRole(c *gin.Context) {
	var payload request.RoleChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeRole(c.Request.Context(), c.Param("profile_id"), entities.Role(payload.Role))
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(updated))
}

func (h *ProfileAdminHandler) SetActive(c *gin.Context) {
	var payload request.ActiveChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Active == nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetActive(c.Request.Context(), c.Param("profile_id"), *payload.Active)
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(updated))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfileID), errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
