package handlers

import (
	"net/http"

	response "github.com/VLP-TECH/real-state-enrique-sub000/internal/adapter/http/dto/response"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase"
	"github.com/VLP-TECH/real-state-enrique-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// KPIHandler serves the open-data catalog backed by the CSV datasets.

type KPIHandler struct {
	usecase usecase.IKPICatalogUseCase
}

func NewKPIHandler(uc usecase.IKPICatalogUseCase) *KPIHandler {
	return &KPIHandler{usecase: uc}
}

// List returns the full catalog, or a filtered view when ?query= is present.
func (h *KPIHandler) List(c *gin.Context) {
	records, err := h.usecase.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromKPIRecords(records))
}
