package handlers

import (
	"errors"
	"net/http"

	request "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/request"
	response "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/response"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/middleware"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"
	"github.com/VLP-TECH/real-state-enrique-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid authentication payload", http.StatusBadRequest)
	errMissingSession     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// AuthHandler handles observatory sign-up and sign-in plus the session
// introspection endpoint both SPAs call on load.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	profile, token, err := h.usecase.SignUp(c.Request.Context(), usecase.SignUpInput{
		Email:        payload.Email,
		Password:     payload.Password,
		FullName:     payload.FullName,
		Organization: payload.Organization,
	})
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAuth(profile, token))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	profile, token, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuth(profile, token))
}

// Me returns the authenticated profile with its resolved capabilities.
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(s.Profile))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid authentication payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
