package conversion

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the workflow actions under /prospects/:id.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	prospects := r.Group("/prospects")
	{
		prospects.POST("/:id/approve", handler.Approve)
		prospects.POST("/:id/reject", handler.Reject)
		prospects.POST("/:id/assign", handler.Assign)
	}
}
