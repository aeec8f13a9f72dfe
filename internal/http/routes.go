package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/internal/middleware"
)

// registerSiteRoutes mounts /sites/:site_id/... under api.
func registerSiteRoutes(api *gin.RouterGroup, h *Handler) {
	site := api.Group("/sites/:" + middleware.SiteIDParam)

	recs := site.Group("/recommendations")
	recs.POST("", h.Recommend)
	recs.POST("/mix", h.PackMixed)
	recs.POST("/evaluate", h.Evaluate)

	site.GET("/box-models", h.BoxModels)
	site.DELETE("/box-models/cache", h.InvalidateCatalogCache)
	site.GET("/audit-logs", h.AuditLogs)
}
