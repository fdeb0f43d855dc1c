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
	errInvalidAssetPayload = pkg.NewDomainErrorSimple("INVALID_ASSET_INPUT", "Invalid asset payload", http.StatusBadRequest)
)

// AssetHandler handles the club catalog: listing with filters plus the
// owner-scoped mutations.

type AssetHandler struct {
	usecase usecase.IAssetUseCase
}

func NewAssetHandler(uc usecase.IAssetUseCase) *AssetHandler {
	return &AssetHandler{usecase: uc}
}

func (h *AssetHandler) Search(c *gin.Context) {
	var query request.AssetSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidAssetPayload.HTTPStatus, errInvalidAssetPayload.ToHTTPError())
		return
	}

	assets, err := h.usecase.Search(c.Request.Context(), query.ToFilter())
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssets(assets))
}

func (h *AssetHandler) GetByID(c *gin.Context) {
	asset, err := h.usecase.GetByID(c.Request.Context(), c.Param("asset_id"))
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAsset(asset))
}

// ListMine returns the session owner's listings.
func (h *AssetHandler) ListMine(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	assets, err := h.usecase.ListByOwner(c.Request.Context(), s.Profile.ID)
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssets(assets))
}

func (h *AssetHandler) Create(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	var payload request.AssetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssetPayload.HTTPStatus, errInvalidAssetPayload.ToHTTPError())
		return
	}

	asset, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(s.Profile.ID))
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAsset(asset))
}

func (h *AssetHandler) Update(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	var payload request.AssetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssetPayload.HTTPStatus, errInvalidAssetPayload.ToHTTPError())
		return
	}

	asset := payload.ToEntity(s.Profile.ID)
	asset.ID = c.Param("asset_id")

	updated, err := h.usecase.Update(c.Request.Context(), s.Profile, asset)
	if err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAsset(updated))
}

func (h *AssetHandler) Delete(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), s.Profile, c.Param("asset_id")); err != nil {
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAssetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssetID), errors.Is(err, usecase.ErrInvalidAssetInput), errors.Is(err, usecase.ErrInvalidAssetFilter):
		return pkg.NewDomainErrorSimple("INVALID_ASSET_INPUT", "Invalid asset payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssetNotFound):
		return pkg.NewDomainErrorSimple("ASSET_NOT_FOUND", "Asset not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotAssetOwner):
		return pkg.NewDomainErrorSimple("NOT_ASSET_OWNER", "Only the owner or an admin may modify this asset", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
