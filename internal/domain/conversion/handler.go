package conversion

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prospectcrm/internal/domain/auth"
	"prospectcrm/internal/domain/prospect"
	"prospectcrm/internal/middleware"
	"prospectcrm/internal/pkg/response"
	"prospectcrm/internal/pkg/validator"
)

// Handler exposes the workflow actions on prospects.
type Handler struct {
	workflow *Workflow
}

func NewHandler(workflow *Workflow) *Handler {
	return &Handler{workflow: workflow}
}

// Approve handles POST /api/v1/prospects/:id/approve
// @Summary Approve prospect
// @Description Convert the prospect into an organization with a primary contact when contact data exists
// @Tags Prospects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prospect ID"
// @Success 200 {object} response.Response{data=ResultResponse} "success or partial_success"
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response "already converted"
// @Failure 500 {object} response.Response
// @Router /prospects/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	res := h.workflow.Approve(c.Request.Context(), c.Param("id"), actorFrom(c))
	writeResult(c, res)
}

// Reject handles POST /api/v1/prospects/:id/reject
// @Summary Reject prospect
// @Tags Prospects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prospect ID"
// @Success 200 {object} response.Response{data=ResultResponse}
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /prospects/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	res := h.workflow.Reject(c.Request.Context(), c.Param("id"), actorFrom(c))
	writeResult(c, res)
}

// Assign handles POST /api/v1/prospects/:id/assign
// @Summary Assign prospect
// @Description Set the prospect owner; new and pending prospects move to in_progress
// @Tags Prospects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prospect ID"
// @Param request body AssignRequest true "Assignee"
// @Success 200 {object} response.Response{data=ResultResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /prospects/{id}/assign [post]
func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	res := h.workflow.Assign(c.Request.Context(), c.Param("id"), req.UserID, actorFrom(c))
	writeResult(c, res)
}

func actorFrom(c *gin.Context) Actor {
	id, _ := middleware.CurrentUser(c)
	return Actor{UserID: id.UserID, Name: id.Name}
}

func writeResult(c *gin.Context, res *Result) {
	body := NewResultResponse(res)

	switch res.Outcome {
	case OutcomeSuccess, OutcomePartialSuccess:
		response.Success(c, http.StatusOK, body)
	case OutcomeAlreadyConverted:
		response.ErrorWithDetails(c, http.StatusConflict, "ALREADY_CONVERTED", res.Notice.Message, body)
	default:
		switch {
		case errors.Is(res.Err, prospect.ErrProspectNotFound):
			response.ErrorWithDetails(c, http.StatusNotFound, "PROSPECT_NOT_FOUND", res.Notice.Message, body)
		case errors.Is(res.Err, auth.ErrUserNotFound):
			response.ErrorWithDetails(c, http.StatusNotFound, "USER_NOT_FOUND", res.Notice.Message, body)
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, string(res.Err.Kind), res.Notice.Message, body)
		}
	}
}
