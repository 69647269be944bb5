package auth

import (
	"github.com/gin-gonic/gin"

	"prospectcrm/internal/middleware"
)

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/me", h.GetMe)
		authGroup.PATCH("/me", h.Rename)
	}

	protected.POST("/users", middleware.AdminOnly(), h.CreateUser)
}
