package handlers

import (
	"net/http"

	response "proposal_relay/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCatalog godoc
// @Summary      Service catalog
// @Description  Line item descriptions with their fixed unit costs, plus service types and zones.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog())
}
