package handlers

import (
	"context"
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
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid information request payload", http.StatusBadRequest)
	errRequestForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "You may only view your own requests", http.StatusForbidden)
)

// InformationRequestHandler drives the NDA-gated information workflow. The
// transition endpoints are admin-only except confirm-nda, which the back
// office calls when the signed document arrives.

type InformationRequestHandler struct {
	usecase usecase.IInformationRequestUseCase
}

func NewInformationRequestHandler(uc usecase.IInformationRequestUseCase) *InformationRequestHandler {
	return &InformationRequestHandler{usecase: uc}
}

func (h *InformationRequestHandler) Create(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	var payload request.InformationRequestCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.AssetID, s.Profile.ID, payload.Note)
	if err != nil {
		appErr := mapInformationRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInformationRequest(created, entities.ViewerRequester))
}

// ListMine renders the requester surface.
func (h *InformationRequestHandler) ListMine(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	requests, err := h.usecase.ListForRequester(c.Request.Context(), s.Profile.ID)
	if err != nil {
		appErr := mapInformationRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInformationRequests(requests, entities.ViewerRequester))
}

// ListAll renders the admin surface.
func (h *InformationRequestHandler) ListAll(c *gin.Context) {
	requests, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapInformationRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInformationRequests(requests, entities.ViewerAdmin))
}

// GetByID serves both surfaces: admins see the admin rendering, requesters
// see their own rows only.
func (h *InformationRequestHandler) GetByID(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapInformationRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if s.Capabilities.IsAdmin {
		c.JSON(http.StatusOK, response.FromInformationRequest(r, entities.ViewerAdmin))
		return
	}
	if r.RequesterID != s.Profile.ID {
		c.JSON(errRequestForbidden.HTTPStatus, errRequestForbidden.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInformationRequest(r, entities.ViewerRequester))
}

func (h *InformationRequestHandler) Approve(c *gin.Context) {
	h.patchStatus(c, h.usecase.Approve)
}

func (h *InformationRequestHandler) Reject(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reject)
}

func (h *InformationRequestHandler) RequestNDA(c *gin.Context) {
	h.patchStatus(c, h.usecase.RequestNDA)
}

func (h *InformationRequestHandler) ConfirmNDA(c *gin.Context) {
	h.patchStatus(c, h.usecase.ConfirmNDA)
}

func (h *InformationRequestHandler) ShareInformation(c *gin.Context) {
	h.patchStatus(c, h.usecase.ShareInformation)
}

func (h *InformationRequestHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.InformationRequest, error),
) {
	updated, err := updater(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapInformationRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInformationRequest(updated, entities.ViewerAdmin))
}

func mapInformationRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidRequesterID), errors.Is(err, usecase.ErrInvalidAssetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid information request payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssetNotFound):
		return pkg.NewDomainErrorSimple("ASSET_NOT_FOUND", "Asset not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Information request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateRequest):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_EXISTS", "A request for this asset already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "The request status does not allow this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestStateConflict):
		return pkg.NewDomainErrorSimple("REQUEST_STATE_CONFLICT", "The request status changed concurrently, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
