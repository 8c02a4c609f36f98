package controllers

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// EnrollRequest is the request body for POST /competitors. The enrolling
// person is taken from the Bearer token; admins may enroll another person by
// setting person_id.
type EnrollRequest struct {
	CompetitionID string `json:"competition_id"`
	PersonID      string `json:"person_id,omitempty"`
}

// Validate implements Validator.
func (e EnrollRequest) Validate() []string {
	var errs []string
	if e.CompetitionID == "" {
		errs = append(errs, "competition_id is required")
	}
	return errs
}

// CompetitorSuccessResponse is the success response envelope for single-competitor endpoints.
type CompetitorSuccessResponse struct {
	Data  *domain.Competitor `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListCompetitorsResponse is the data payload for GET /competitors (200).
type ListCompetitorsResponse struct {
	Items      []*domain.Competitor   `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListCompetitorsSuccessResponse is the success response envelope for GET /competitors (200).
type ListCompetitorsSuccessResponse struct {
	Data  ListCompetitorsResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type CompetitorController struct {
	Logger  *slog.Logger
	Service domain.CompetitorService
}

func NewCompetitorController(logger *slog.Logger, svc domain.CompetitorService) *CompetitorController {
	return &CompetitorController{
		Logger:  logger,
		Service: svc,
	}
}

// Enroll godoc
// @Summary Enroll in a competition
// @Description Enrolls the authenticated person in a competition. Enrollment is accepted only within the window from one calendar month before the competition start up to the start itself, both ends inclusive. The enrollment timestamp is the server clock. Admins may enroll another person via person_id.
// @Tags competitors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EnrollRequest true "Enrollment data"
// @Success 201 {object} controllers.CompetitorSuccessResponse "data contains the enrollment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (enrollment closed)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (competition or person missing)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already enrolled)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitors [post]
func (c *CompetitorController) Enroll(w http.ResponseWriter, r *http.Request) {
	var req EnrollRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	personID := caller.ID
	if caller.Role == domain.RoleAdmin {
		if req.PersonID == "" {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "person_id is required for admin enrollment")
			return
		}
		personID = req.PersonID
	}
	competitor, err := c.Service.Enroll(r.Context(), req.CompetitionID, personID)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, competitor)
}

// GetByID godoc
// @Summary Get an enrollment by ID
// @Tags competitors
// @Produce json
// @Security BearerAuth
// @Param competitorID path string true "Competitor ID (UUID)"
// @Success 200 {object} controllers.CompetitorSuccessResponse "data contains the enrollment"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitors/{competitorID} [get]
func (c *CompetitorController) GetByID(w http.ResponseWriter, r *http.Request) {
	competitorID := r.PathValue("competitorID")
	if competitorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing competitorID")
		return
	}
	competitor, err := c.Service.GetByID(r.Context(), competitorID)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, competitor)
}

// List godoc
// @Summary List enrollments
// @Tags competitors
// @Produce json
// @Security BearerAuth
// @Param person query string false "Filter by person ID"
// @Param competition query string false "Filter by competition ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.ListCompetitorsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitors [get]
func (c *CompetitorController) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.CompetitorFilter{
		PersonID:      r.URL.Query().Get("person"),
		CompetitionID: r.URL.Query().Get("competition"),
	}
	params := helpers.ParsePagination(r)
	competitors, total, err := c.Service.List(r.Context(), filter, params)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	if competitors == nil {
		competitors = []*domain.Competitor{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListCompetitorsResponse{Items: competitors, Pagination: meta})
}

// Withdraw godoc
// @Summary Withdraw an enrollment
// @Description Deletes an enrollment and returns the deleted record. Only the enrolled person or an admin may withdraw it.
// @Tags competitors
// @Produce json
// @Security BearerAuth
// @Param competitorID path string true "Competitor ID (UUID)"
// @Success 200 {object} controllers.CompetitorSuccessResponse "data contains the withdrawn enrollment"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not the enrolled person)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitors/{competitorID} [delete]
func (c *CompetitorController) Withdraw(w http.ResponseWriter, r *http.Request) {
	competitorID := r.PathValue("competitorID")
	if competitorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing competitorID")
		return
	}
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	competitor, err := c.Service.Withdraw(r.Context(), competitorID, caller.ID, caller.Role)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, competitor)
}
