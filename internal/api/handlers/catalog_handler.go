package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/matching"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/services"
)

type CatalogHandler struct {
	catalog  services.CatalogService
	matching services.MatchingService
}

func NewCatalogHandler(catalog services.CatalogService, matching services.MatchingService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, matching: matching}
}

func (h *CatalogHandler) ListInternships(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListInternships(c.Request.Context()))
}

func (h *CatalogHandler) SearchInternships(c *gin.Context) {
	q := matching.SearchQuery{
		Text:     c.Query("q"),
		Location: c.Query("location"),
		Stipend:  c.Query("stipend"),
	}
	c.JSON(http.StatusOK, h.catalog.SearchInternships(c.Request.Context(), q))
}

func (h *CatalogHandler) GetInternship(c *gin.Context) {
	in, err := h.catalog.GetInternship(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *CatalogHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListProjects(c.Request.Context()))
}

func (h *CatalogHandler) GetProject(c *gin.Context) {
	p, err := h.catalog.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) Roles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": h.matching.Roles()})
}
