package prospect

import "github.com/gin-gonic/gin"

// RegisterRoutes registers prospect routes on an authenticated group.
// Workflow actions (approve, reject, assign) are registered by the
// conversion package on the same group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	prospects := r.Group("/prospects")
	{
		prospects.GET("", handler.ListProspects)
		prospects.POST("", handler.CreateProspect)
		prospects.GET("/stats", handler.GetStats)
		prospects.POST("/import", handler.ImportProspects)
		prospects.GET("/:id", handler.GetProspect)
	}
}
