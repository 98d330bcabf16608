package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/police_smart_analytics/internal/models"
	"github.com/shenikar/police_smart_analytics/internal/service"
	"github.com/shenikar/police_smart_analytics/internal/view"
	"github.com/sirupsen/logrus"
)

// Handler HTML-страница дашборда и действия кнопок
type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// RegisterRoutes регистрирует страницу и подключает шаблоны к движку
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(Templates())

	router.GET("/", h.page)
	router.POST("/apply", h.apply)
	router.POST("/refresh", h.refresh)
	router.POST("/seed", h.seed)
}

func (h *Handler) page(c *gin.Context) {
	data := view.Build(h.dashboardService.View(), h.dashboardService.Filters())
	c.HTML(http.StatusOK, "dashboard", data)
}

// apply заменяет фильтр значениями формы и обновляет данные
func (h *Handler) apply(c *gin.Context) {
	var form models.FilterState
	if err := c.ShouldBind(&form); err != nil {
		h.logger.WithError(err).WithField("method", "apply").Warn("Failed to bind filter form")
		c.String(http.StatusBadRequest, "invalid filter form")
		return
	}

	h.dashboardService.ApplyFilters(form)
	h.dashboardService.Refresh(c.Request.Context(), form)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) refresh(c *gin.Context) {
	h.dashboardService.Refresh(c.Request.Context(), h.dashboardService.Filters())
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) seed(c *gin.Context) {
	h.dashboardService.SeedAndRefresh(c.Request.Context(), h.dashboardService.Filters())
	c.Redirect(http.StatusSeeOther, "/")
}
