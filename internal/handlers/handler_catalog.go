package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunnytraders/inventory_pro_app/internal/platform/catalog"
)

// catalogHandler serves the static item catalog used by input forms.
type catalogHandler struct {
	catalog *catalog.Catalog
}

func newCatalogHandler(cat *catalog.Catalog) *catalogHandler {
	return &catalogHandler{catalog: cat}
}

// registerCatalogRoutes registers the catalog route.
func registerCatalogRoutes(rg *gin.RouterGroup, cat *catalog.Catalog) {
	h := newCatalogHandler(cat)
	rg.GET("/catalog", h.getCatalog)
}

// getCatalog godoc
// @Summary Get the item catalog
// @Description Retrieves the category/item/unit catalog and the expense type list
// @Tags catalog
// @Produce  json
// @Success 200 {object} catalog.Catalog
// @Router /catalog [get]
func (h *catalogHandler) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
