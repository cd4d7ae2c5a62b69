package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты подбора бригад
	dispatch := api.Group("/dispatch")
	{
		dispatch.POST("/nearest", h.findNearest)
		dispatch.GET("/stats", h.getStats)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
