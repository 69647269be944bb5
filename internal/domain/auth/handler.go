package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prospectcrm/internal/middleware"
	"prospectcrm/internal/pkg/response"
	"prospectcrm/internal/pkg/validator"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler with injected service
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login exchanges credentials for a bearer token.
// @Summary		Login
// @Tags		Auth
// @Accept		json
// @Produce		json
// @Param		body	body	LoginRequest	true	"credentials"
// @Success		200	{object}	LoginResponse
// @Failure		401	{object}	response.Response
// @Router		/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// GetMe returns the current user.
// @Summary		Current user
// @Tags		Auth
// @Security	BearerAuth
// @Produce		json
// @Success		200	{object}	User
// @Failure		404	{object}	response.Response
// @Router		/auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	id, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id.UserID)
	if err != nil {
		h.userError(c, err)
		return
	}

	response.Success(c, http.StatusOK, u)
}

// Rename changes the current user's display name.
// @Summary		Rename current user
// @Description	Also refreshes the assignee name cached on the user's prospects.
// @Tags		Auth
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		body	body	RenameRequest	true	"new name"
// @Success		200	{object}	User
// @Failure		422	{object}	response.Response
// @Router		/auth/me [patch]
func (h *Handler) Rename(c *gin.Context) {
	id, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	u, err := h.service.Rename(c.Request.Context(), id.UserID, req.Name)
	if err != nil {
		h.userError(c, err)
		return
	}

	response.Success(c, http.StatusOK, u)
}

// CreateUser adds a CRM user. Admin only.
// @Summary		Create user
// @Tags		Users
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		body	body	CreateUserRequest	true	"user"
// @Success		201	{object}	User
// @Failure		409	{object}	response.Response
// @Router		/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "Email already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create user")
		return
	}

	response.Success(c, http.StatusCreated, u)
}

func (h *Handler) userError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, ErrInvalidName):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
	}
}
