package organization

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prospectcrm/internal/pkg/response"
)

// Handler handles organization HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates organization handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List organizations
// @Tags Organizations
// @Produce json
// @Security BearerAuth
// @Param prospect_id query string false "Only the organization converted from this prospect"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Response{data=OrganizationListResponse}
// @Failure 500 {object} response.Response
// @Router /organizations [get]
func (h *Handler) ListOrganizations(c *gin.Context) {
	f := ListFilter{ProspectID: c.Query("prospect_id")}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil {
			f.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil {
			f.Offset = v
		}
	}

	orgs, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list organizations")
		return
	}

	response.Success(c, http.StatusOK, OrganizationListResponse{Organizations: orgs, Total: total})
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Tags Organizations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} response.Response{data=Organization}
// @Failure 404 {object} response.Response
// @Router /organizations/{id} [get]
func (h *Handler) GetOrganization(c *gin.Context) {
	org, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, org)
}

// ListContacts handles GET /api/v1/organizations/:id/contacts
// @Summary List organization contacts
// @Tags Organizations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Organization ID"
// @Success 200 {object} response.Response{data=ContactListResponse}
// @Failure 404 {object} response.Response
// @Router /organizations/{id}/contacts [get]
func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.service.Contacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, ContactListResponse{Contacts: contacts})
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrOrganizationNotFound) {
		response.Error(c, http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load organization")
}
