package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// CatalogHandler wires the browsing surface to HTTP routes.
type CatalogHandler struct {
	catalog *service.CatalogService

	// homeSample caps random listings when the client gives no limit,
	// sized for the home page teaser.
	homeSample int
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService, homeSample int) *CatalogHandler {
	if homeSample <= 0 {
		homeSample = 6
	}
	return &CatalogHandler{catalog: catalog, homeSample: homeSample}
}

// ListGoals godoc
// @Summary List learning goals
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /goals [get]
func (h *CatalogHandler) ListGoals(c *gin.Context) {
	goals, err := h.catalog.Goals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{"emoji": h.catalog.GoalEmoji()}
	response.JSON(c, http.StatusOK, goals, meta)
}

// ListTeachers godoc
// @Summary List tutor profiles
// @Tags Catalog
// @Produce json
// @Param goal query string false "Filter by goal slug (rating-descending order)"
// @Param sort query string false "Sort mode (rating/random)"
// @Param limit query int false "Cap the result size"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *CatalogHandler) ListTeachers(c *gin.Context) {
	filter := models.TeacherFilter{
		Goal: strings.TrimSpace(c.Query("goal")),
		Sort: strings.TrimSpace(c.Query("sort")),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be a non-negative integer"))
			return
		}
		filter.Limit = limit
	} else if filter.Sort == models.SortRandom {
		filter.Limit = h.homeSample
	}

	teachers, err := h.catalog.ListTeachers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}

// GetTeacher godoc
// @Summary Get one tutor profile with its availability map
// @Tags Catalog
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id} [get]
func (h *CatalogHandler) GetTeacher(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "teacher not found"))
		return
	}

	teacher, err := h.catalog.GetTeacher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	vocabulary := h.catalog.Vocabulary()
	meta := map[string]interface{}{
		"days":  vocabulary.Days,
		"slots": vocabulary.Slots,
	}
	response.JSON(c, http.StatusOK, teacher, meta)
}
