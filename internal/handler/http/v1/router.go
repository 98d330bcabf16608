package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)
		dashboard.GET("/options", h.getOptions)
		dashboard.GET("/filters", h.getFilters)
		dashboard.PUT("/filters", h.setFilter)
		dashboard.POST("/refresh", h.refresh)
		dashboard.POST("/seed", h.seed)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
