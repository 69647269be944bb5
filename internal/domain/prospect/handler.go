package prospect

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prospectcrm/internal/middleware"
	"prospectcrm/internal/pkg/response"
	"prospectcrm/internal/pkg/validator"
)

// Handler handles prospect HTTP requests
type Handler struct {
	service  *Service
	importer *Importer
}

// NewHandler creates prospect handler
func NewHandler(service *Service, importer *Importer) *Handler {
	return &Handler{
		service:  service,
		importer: importer,
	}
}

// CreateProspect handles POST /api/v1/prospects
// @Summary Create prospect
// @Description Manually enter a prospect; it starts in pending status
// @Tags Prospects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProspectRequest true "Prospect data"
// @Success 201 {object} response.Response{data=Prospect}
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /prospects [post]
func (h *Handler) CreateProspect(c *gin.Context) {
	id, _ := middleware.CurrentUser(c)

	var req CreateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req, id.UserID)
	if err != nil {
		if errors.Is(err, ErrCompanyNameMissing) {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create prospect")
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// GetProspect handles GET /api/v1/prospects/:id
// @Summary Get prospect by ID
// @Tags Prospects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prospect ID"
// @Success 200 {object} response.Response{data=Prospect}
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /prospects/{id} [get]
func (h *Handler) GetProspect(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProspectNotFound) {
			response.Error(c, http.StatusNotFound, "PROSPECT_NOT_FOUND", "Prospect not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load prospect")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// ListProspects handles GET /api/v1/prospects
// @Summary List prospects
// @Description List prospects with optional filtering, newest first
// @Tags Prospects
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(new, pending, in_progress, approved, rejected)
// @Param assigned_to query string false "Filter by assignee user ID"
// @Param q query string false "Search company, contact name or email"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Response{data=ProspectListResponse}
// @Failure 500 {object} response.Response
// @Router /prospects [get]
func (h *Handler) ListProspects(c *gin.Context) {
	f := ListFilter{
		AssignedTo: c.Query("assigned_to"),
		Search:     c.Query("q"),
	}
	if s := c.Query("status"); s != "" {
		status := Status(s)
		f.Status = &status
	}
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

	prospects, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list prospects")
		return
	}

	response.Success(c, http.StatusOK, ProspectListResponse{
		Prospects: prospects,
		Total:     total,
	})
}

// GetStats handles GET /api/v1/prospects/stats
// @Summary Get prospect statistics
// @Description Prospect counts by status
// @Tags Prospects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /prospects/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ImportProspects handles POST /api/v1/prospects/import
// @Summary Import prospects
// @Description Bulk import from a CSV or XLSX file sent as multipart field "file"
// @Tags Prospects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} response.Response{data=ImportResult}
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /prospects/import [post]
func (h *Handler) ImportProspects(c *gin.Context) {
	id, _ := middleware.CurrentUser(c)

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "FILE_REQUIRED", "Multipart field \"file\" is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Cannot read uploaded file")
		return
	}
	defer f.Close()

	res, err := h.importer.Import(c.Request.Context(), f, fh.Filename, id.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedFile):
			response.Error(c, http.StatusBadRequest, "UNSUPPORTED_FILE", "Only .csv and .xlsx files are supported")
		case errors.Is(err, ErrEmptyImport), errors.Is(err, ErrMissingCompanyCol):
			response.Error(c, http.StatusBadRequest, "INVALID_IMPORT", err.Error())
		default:
			response.Error(c, http.StatusBadRequest, "IMPORT_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}
