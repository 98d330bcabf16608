package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/police_smart_analytics/internal/models"
	"github.com/shenikar/police_smart_analytics/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         validator.New(),
	}
}

// @Summary Get dashboard view model
// @Description KPIs, per-type bars and the incident table built from the latest snapshot.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, ViewStateToResponse(h.dashboardService.View(), h.dashboardService.Filters()))
}

// @Summary Get filter options
// @Description Facet catalogs for the filter drop-downs. An empty value means "All".
// @Tags Dashboard
// @Produce json
// @Success 200 {array} models.Facet
// @Router /dashboard/options [get]
func (h *Handler) getOptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.Facets())
}

// @Summary Get current filters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} FilterResponse
// @Router /dashboard/filters [get]
func (h *Handler) getFilters(c *gin.Context) {
	c.JSON(http.StatusOK, FilterStateToResponse(h.dashboardService.Filters()))
}

// @Summary Edit one filter facet
// @Description Replaces one facet of the current filter. Data is not reloaded until refresh.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param filter body SetFilterRequest true "Facet edit"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /dashboard/filters [put]
func (h *Handler) setFilter(c *gin.Context) {
	var input SetFilterRequest
	log := h.logger.WithField("method", "setFilter")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := h.dashboardService.SetFilter(input.Field, input.Value)
	c.JSON(http.StatusOK, FilterStateToResponse(filters))
}

// @Summary Refresh dashboard
// @Description Reloads summary and incident list. An optional body replaces the whole filter first.
// @Description A failed fetch keeps the previous data.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param filter body FilterRequest false "Filter to apply"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /dashboard/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	log := h.logger.WithField("method", "refresh")

	if c.Request.ContentLength != 0 {
		var input FilterRequest
		err := c.ShouldBindJSON(&input)
		switch {
		case errors.Is(err, io.EOF):
		case err != nil:
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		default:
			h.dashboardService.ApplyFilters(DTOToFilterState(input))
		}
	}

	filters := h.dashboardService.Filters()
	state := h.dashboardService.Refresh(c.Request.Context(), filters)
	c.JSON(http.StatusOK, ViewStateToResponse(state, filters))
}

// @Summary Seed sample data
// @Description Asks the backend to generate demo records, then refreshes. Seed failures are ignored.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard/seed [post]
func (h *Handler) seed(c *gin.Context) {
	filters := h.dashboardService.Filters()
	state := h.dashboardService.SeedAndRefresh(c.Request.Context(), filters)
	c.JSON(http.StatusOK, ViewStateToResponse(state, filters))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
