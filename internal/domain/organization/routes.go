package organization

import "github.com/gin-gonic/gin"

// RegisterRoutes registers organization routes on an authenticated group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orgs := r.Group("/organizations")
	{
		orgs.GET("", handler.ListOrganizations)
		orgs.GET("/:id", handler.GetOrganization)
		orgs.GET("/:id/contacts", handler.ListContacts)
	}
}
