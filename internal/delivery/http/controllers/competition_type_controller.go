package controllers

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// maxImageUploadBytes caps multipart image uploads at 5 MiB.
const maxImageUploadBytes = 5 << 20

// CreateCompetitionTypeRequest is the request body for POST /competition-types.
type CreateCompetitionTypeRequest struct {
	Description string `json:"description"`
	Rules       string `json:"rules"`
}

// Validate implements Validator.
func (c CreateCompetitionTypeRequest) Validate() []string {
	var errs []string
	if c.Description == "" {
		errs = append(errs, "description is required")
	}
	if c.Rules == "" {
		errs = append(errs, "rules is required")
	}
	return errs
}

// UpdateCompetitionTypeRequest is the request body for PATCH /competition-types/{typeID}.
// All fields optional; omitted fields are unchanged.
type UpdateCompetitionTypeRequest struct {
	Description *string `json:"description"`
	Rules       *string `json:"rules"`
}

// Validate implements Validator.
func (u UpdateCompetitionTypeRequest) Validate() []string {
	var errs []string
	if u.Description != nil && *u.Description == "" {
		errs = append(errs, "description cannot be empty")
	}
	return errs
}

// CompetitionTypeSuccessResponse is the success response envelope for single competition type endpoints.
type CompetitionTypeSuccessResponse struct {
	Data  *domain.CompetitionType `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ListCompetitionTypesResponse is the data payload for GET /competition-types (200).
type ListCompetitionTypesResponse struct {
	Items      []*domain.CompetitionType `json:"items"`
	Pagination helpers.PaginationMeta    `json:"pagination"`
}

// ListCompetitionTypesSuccessResponse is the success response envelope for GET /competition-types (200).
type ListCompetitionTypesSuccessResponse struct {
	Data  ListCompetitionTypesResponse `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

type CompetitionTypeController struct {
	Logger  *slog.Logger
	Service domain.CompetitionTypeService
}

func NewCompetitionTypeController(logger *slog.Logger, svc domain.CompetitionTypeService) *CompetitionTypeController {
	return &CompetitionTypeController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a competition type
// @Tags competition-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCompetitionTypeRequest true "Competition type data"
// @Success 201 {object} controllers.CompetitionTypeSuccessResponse "data contains the created competition type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competition-types [post]
func (c *CompetitionTypeController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompetitionTypeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ct, err := c.Service.Create(r.Context(), req.Description, req.Rules)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ct)
}

// GetByID godoc
// @Summary Get a competition type by ID
// @Tags competition-types
// @Produce json
// @Param typeID path string true "Competition type ID (UUID)"
// @Success 200 {object} controllers.CompetitionTypeSuccessResponse "data contains the competition type"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competition-types/{typeID} [get]
func (c *CompetitionTypeController) GetByID(w http.ResponseWriter, r *http.Request) {
	typeID := r.PathValue("typeID")
	if typeID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing typeID")
		return
	}
	ct, err := c.Service.GetByID(r.Context(), typeID)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ct)
}

// List godoc
// @Summary List competition types
// @Tags competition-types
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.ListCompetitionTypesSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competition-types [get]
func (c *CompetitionTypeController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	types, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	if types == nil {
		types = []*domain.CompetitionType{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListCompetitionTypesResponse{Items: types, Pagination: meta})
}

// Update godoc
// @Summary Update a competition type
// @Description Partially updates a competition type. Omitted fields are unchanged. Admin only.
// @Tags competition-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param typeID path string true "Competition type ID (UUID)"
// @Param body body UpdateCompetitionTypeRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.CompetitionTypeSuccessResponse "data contains the updated competition type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competition-types/{typeID} [patch]
func (c *CompetitionTypeController) Update(w http.ResponseWriter, r *http.Request) {
	typeID := r.PathValue("typeID")
	if typeID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing typeID")
		return
	}
	var req UpdateCompetitionTypeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ct, err := c.Service.Update(r.Context(), typeID, domain.CompetitionTypeUpdate{
		Description: req.Description,
		Rules:       req.Rules,
	})
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ct)
}

// Delete godoc
// @Summary Delete a competition type
// @Description Deletes a competition type and returns the deleted record. Admin only.
// @Tags competition-types
// @Produce json
// @Security BearerAuth
// @Param typeID path string true "Competition type ID (UUID)"
// @Success 200 {object} controllers.CompetitionTypeSuccessResponse "data contains the deleted competition type"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competition-types/{typeID} [delete]
func (c *CompetitionTypeController) Delete(w http.ResponseWriter, r *http.Request) {
	typeID := r.PathValue("typeID")
	if typeID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing typeID")
		return
	}
	ct, err := c.Service.Delete(r.Context(), typeID)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ct)
}

// UploadImage godoc
// @Summary Upload a competition type image
// @Description Accepts a multipart form with an "image" file field (png, jpeg or webp, max 5 MiB), stores it in object storage, and records its public URL. Admin only.
// @Tags competition-types
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param typeID path string true "Competition type ID (UUID)"
// @Param image formData file true "Image file"
// @Success 200 {object} controllers.CompetitionTypeSuccessResponse "data contains the competition type with image_url set"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing file, unsupported type)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competition-types/{typeID}/image [post]
func (c *CompetitionTypeController) UploadImage(w http.ResponseWriter, r *http.Request) {
	typeID := r.PathValue("typeID")
	if typeID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing typeID")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing image file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ct, err := c.Service.UploadImage(r.Context(), typeID, contentType, file)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ct)
}
