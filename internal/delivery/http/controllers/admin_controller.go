package controllers

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// CreateAdminRequest is the request body for POST /admins.
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate implements Validator.
func (c CreateAdminRequest) Validate() []string {
	var errs []string
	if c.Username == "" {
		errs = append(errs, "username is required")
	}
	if len(c.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	return errs
}

// UpdateAdminRequest is the request body for PATCH /admins/{adminID}.
// All fields optional; omitted fields are unchanged.
type UpdateAdminRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// Validate implements Validator.
func (u UpdateAdminRequest) Validate() []string {
	var errs []string
	if u.Username != nil && *u.Username == "" {
		errs = append(errs, "username cannot be empty")
	}
	if u.Password != nil && len(*u.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	return errs
}

// AdminSuccessResponse is the success response envelope for single-admin endpoints.
type AdminSuccessResponse struct {
	Data  *domain.Admin     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListAdminsResponse is the data payload for GET /admins (200).
type ListAdminsResponse struct {
	Items      []*domain.Admin        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListAdminsSuccessResponse is the success response envelope for GET /admins (200).
type ListAdminsSuccessResponse struct {
	Data  ListAdminsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an admin
// @Description Creates a back-office admin account. Username must be unique. Admin only.
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAdminRequest true "Admin data"
// @Success 201 {object} controllers.AdminSuccessResponse "data contains the created admin"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (username already taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admins [post]
func (c *AdminController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	admin, err := c.Service.Create(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, admin)
}

// GetByID godoc
// @Summary Get an admin by ID
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param adminID path string true "Admin ID (UUID)"
// @Success 200 {object} controllers.AdminSuccessResponse "data contains the admin"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admins/{adminID} [get]
func (c *AdminController) GetByID(w http.ResponseWriter, r *http.Request) {
	adminID := r.PathValue("adminID")
	if adminID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing adminID")
		return
	}
	admin, err := c.Service.GetByID(r.Context(), adminID)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, admin)
}

// List godoc
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.ListAdminsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admins [get]
func (c *AdminController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	admins, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	if admins == nil {
		admins = []*domain.Admin{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListAdminsResponse{Items: admins, Pagination: meta})
}

// Update godoc
// @Summary Update an admin
// @Description Partially updates an admin. Omitted fields are unchanged; password, when set, is re-hashed. Admin only.
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adminID path string true "Admin ID (UUID)"
// @Param body body UpdateAdminRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.AdminSuccessResponse "data contains the updated admin"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (username already taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admins/{adminID} [patch]
func (c *AdminController) Update(w http.ResponseWriter, r *http.Request) {
	adminID := r.PathValue("adminID")
	if adminID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing adminID")
		return
	}
	var req UpdateAdminRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	admin, err := c.Service.Update(r.Context(), adminID, domain.AdminUpdate{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, admin)
}

// Delete godoc
// @Summary Delete an admin
// @Description Deletes an admin account and returns the deleted record. Admin only.
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param adminID path string true "Admin ID (UUID)"
// @Success 200 {object} controllers.AdminSuccessResponse "data contains the deleted admin"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admins/{adminID} [delete]
func (c *AdminController) Delete(w http.ResponseWriter, r *http.Request) {
	adminID := r.PathValue("adminID")
	if adminID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing adminID")
		return
	}
	admin, err := c.Service.Delete(r.Context(), adminID)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, admin)
}
