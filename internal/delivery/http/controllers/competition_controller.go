package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// CreateCompetitionRequest is the request body for POST /competitions.
type CreateCompetitionRequest struct {
	CompetitionTypeID string    `json:"competition_type_id"`
	EventID           string    `json:"event_id"`
	Description       string    `json:"description"`
	StartTime         time.Time `json:"start_time"`
	EstimatedEndTime  time.Time `json:"estimated_end_time"`
	Prizes            string    `json:"prizes"`
	RegistrationFee   float64   `json:"registration_fee"`
}

// Validate implements Validator.
func (c CreateCompetitionRequest) Validate() []string {
	var errs []string
	if c.CompetitionTypeID == "" {
		errs = append(errs, "competition_type_id is required")
	}
	if c.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if c.Description == "" {
		errs = append(errs, "description is required")
	}
	if c.StartTime.IsZero() {
		errs = append(errs, "start_time is required")
	}
	if c.EstimatedEndTime.IsZero() {
		errs = append(errs, "estimated_end_time is required")
	}
	if c.RegistrationFee < 0 {
		errs = append(errs, "registration_fee must be non-negative")
	}
	return errs
}

// UpdateCompetitionRequest is the request body for PATCH /competitions/{competitionID}.
// All fields optional; omitted fields are unchanged.
type UpdateCompetitionRequest struct {
	CompetitionTypeID *string    `json:"competition_type_id"`
	EventID           *string    `json:"event_id"`
	Description       *string    `json:"description"`
	StartTime         *time.Time `json:"start_time"`
	EstimatedEndTime  *time.Time `json:"estimated_end_time"`
	Prizes            *string    `json:"prizes"`
	RegistrationFee   *float64   `json:"registration_fee"`
}

// Validate implements Validator.
func (u UpdateCompetitionRequest) Validate() []string {
	var errs []string
	if u.RegistrationFee != nil && *u.RegistrationFee < 0 {
		errs = append(errs, "registration_fee must be non-negative")
	}
	return errs
}

// CompetitionSuccessResponse is the success response envelope for single-competition endpoints.
type CompetitionSuccessResponse struct {
	Data  *domain.Competition `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListCompetitionsResponse is the data payload for GET /competitions (200).
type ListCompetitionsResponse struct {
	Items      []*domain.Competition  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListCompetitionsSuccessResponse is the success response envelope for GET /competitions (200).
type ListCompetitionsSuccessResponse struct {
	Data  ListCompetitionsResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type CompetitionController struct {
	Logger  *slog.Logger
	Service domain.CompetitionService
}

func NewCompetitionController(logger *slog.Logger, svc domain.CompetitionService) *CompetitionController {
	return &CompetitionController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a competition
// @Description Creates a competition inside an event. The window [start_time, estimated_end_time] must lie within the parent event's window, and the event may host at most one competition of a given type.
// @Tags competitions
// @Accept json
// @Produce json
// @Param body body CreateCompetitionRequest true "Competition data"
// @Success 201 {object} controllers.CompetitionSuccessResponse "data contains the created competition"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (window outside event range)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or competition type missing)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event already has this competition type)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitions [post]
func (c *CompetitionController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompetitionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	competition, err := c.Service.Create(r.Context(), &domain.Competition{
		CompetitionTypeID: req.CompetitionTypeID,
		EventID:           req.EventID,
		Description:       req.Description,
		StartTime:         req.StartTime,
		EstimatedEndTime:  req.EstimatedEndTime,
		Prizes:            req.Prizes,
		RegistrationFee:   req.RegistrationFee,
	})
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, competition)
}

// GetByID godoc
// @Summary Get a competition by ID
// @Tags competitions
// @Produce json
// @Param competitionID path string true "Competition ID (UUID)"
// @Success 200 {object} controllers.CompetitionSuccessResponse "data contains the competition"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitions/{competitionID} [get]
func (c *CompetitionController) GetByID(w http.ResponseWriter, r *http.Request) {
	competitionID := r.PathValue("competitionID")
	if competitionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing competitionID")
		return
	}
	competition, err := c.Service.GetByID(r.Context(), competitionID)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, competition)
}

// List godoc
// @Summary List competitions
// @Tags competitions
// @Produce json
// @Param event query string false "Filter by event ID"
// @Param type query string false "Filter by competition type ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.ListCompetitionsSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitions [get]
func (c *CompetitionController) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.CompetitionFilter{
		EventID:           r.URL.Query().Get("event"),
		CompetitionTypeID: r.URL.Query().Get("type"),
	}
	params := helpers.ParsePagination(r)
	competitions, total, err := c.Service.List(r.Context(), filter, params)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	if competitions == nil {
		competitions = []*domain.Competition{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListCompetitionsResponse{Items: competitions, Pagination: meta})
}

// Update godoc
// @Summary Update a competition
// @Description Partially updates a competition. Omitted fields are unchanged; the resulting window is re-validated against the (possibly re-referenced) parent event.
// @Tags competitions
// @Accept json
// @Produce json
// @Param competitionID path string true "Competition ID (UUID)"
// @Param body body UpdateCompetitionRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.CompetitionSuccessResponse "data contains the updated competition"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (window outside event range)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event already has this competition type)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitions/{competitionID} [patch]
func (c *CompetitionController) Update(w http.ResponseWriter, r *http.Request) {
	competitionID := r.PathValue("competitionID")
	if competitionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing competitionID")
		return
	}
	var req UpdateCompetitionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	competition, err := c.Service.Update(r.Context(), competitionID, domain.CompetitionUpdate{
		CompetitionTypeID: req.CompetitionTypeID,
		EventID:           req.EventID,
		Description:       req.Description,
		StartTime:         req.StartTime,
		EstimatedEndTime:  req.EstimatedEndTime,
		Prizes:            req.Prizes,
		RegistrationFee:   req.RegistrationFee,
	})
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, competition)
}

// Delete godoc
// @Summary Delete a competition
// @Description Deletes a competition and returns the deleted record.
// @Tags competitions
// @Produce json
// @Param competitionID path string true "Competition ID (UUID)"
// @Success 200 {object} controllers.CompetitionSuccessResponse "data contains the deleted competition"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /competitions/{competitionID} [delete]
func (c *CompetitionController) Delete(w http.ResponseWriter, r *http.Request) {
	competitionID := r.PathValue("competitionID")
	if competitionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing competitionID")
		return
	}
	competition, err := c.Service.Delete(r.Context(), competitionID)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, competition)
}
