package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// RegisterPersonRequest is the request body for POST /persons.
type RegisterPersonRequest struct {
	DNI       string    `json:"dni"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone"`
	Email     string    `json:"email"`
	Birthdate time.Time `json:"birthdate"`
	Password  string    `json:"password"`
}

// Validate implements Validator.
func (p RegisterPersonRequest) Validate() []string {
	var errs []string
	if p.DNI == "" {
		errs = append(errs, "dni is required")
	}
	if p.FirstName == "" {
		errs = append(errs, "first_name is required")
	}
	if p.LastName == "" {
		errs = append(errs, "last_name is required")
	}
	if p.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(p.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if p.Birthdate.IsZero() {
		errs = append(errs, "birthdate is required")
	}
	if len(p.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	return errs
}

// UpdatePersonRequest is the request body for PATCH /persons/{personID}.
// All fields optional; omitted fields are unchanged.
type UpdatePersonRequest struct {
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email"`
	Birthdate *time.Time `json:"birthdate"`
	Password  *string    `json:"password"`
}

// Validate implements Validator.
func (u UpdatePersonRequest) Validate() []string {
	var errs []string
	if u.Email != nil && !emailRegex.MatchString(*u.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if u.Password != nil && len(*u.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	return errs
}

// PersonSuccessResponse is the success response envelope for single-person endpoints.
type PersonSuccessResponse struct {
	Data  *domain.Person    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListPersonsResponse is the data payload for GET /persons (200).
type ListPersonsResponse struct {
	Items      []*domain.Person       `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListPersonsSuccessResponse is the success response envelope for GET /persons (200).
type ListPersonsSuccessResponse struct {
	Data  ListPersonsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type PersonController struct {
	Logger  *slog.Logger
	Service domain.PersonService
}

func NewPersonController(logger *slog.Logger, svc domain.PersonService) *PersonController {
	return &PersonController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a new person
// @Description Creates a person account. DNI and email must be unique. The password is stored hashed and never returned.
// @Tags persons
// @Accept json
// @Produce json
// @Param body body RegisterPersonRequest true "Person data"
// @Success 201 {object} controllers.PersonSuccessResponse "data contains the created person"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (dni or email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /persons [post]
func (c *PersonController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterPersonRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	person, err := c.Service.Register(r.Context(), &domain.Person{
		DNI:       req.DNI,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Birthdate: req.Birthdate,
	}, req.Password)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, person)
}

// GetByID godoc
// @Summary Get a person by ID
// @Description Returns the person. Only the person themselves or an admin may read the profile.
// @Tags persons
// @Produce json
// @Security BearerAuth
// @Param personID path string true "Person ID (UUID)"
// @Success 200 {object} controllers.PersonSuccessResponse "data contains the person"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /persons/{personID} [get]
func (c *PersonController) GetByID(w http.ResponseWriter, r *http.Request) {
	personID := r.PathValue("personID")
	if personID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing personID")
		return
	}
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	person, err := c.Service.GetByID(r.Context(), personID, caller.ID, caller.Role)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, person)
}

// List godoc
// @Summary List persons
// @Description Returns a paginated list of persons. Admin only.
// @Tags persons
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.ListPersonsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not admin)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /persons [get]
func (c *PersonController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	persons, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	if persons == nil {
		persons = []*domain.Person{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListPersonsResponse{Items: persons, Pagination: meta})
}

// Update godoc
// @Summary Update a person
// @Description Partially updates a person. Omitted fields are unchanged; password, when set, is re-hashed. Only the person themselves or an admin may update.
// @Tags persons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param personID path string true "Person ID (UUID)"
// @Param body body UpdatePersonRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.PersonSuccessResponse "data contains the updated person"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /persons/{personID} [patch]
func (c *PersonController) Update(w http.ResponseWriter, r *http.Request) {
	personID := r.PathValue("personID")
	if personID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing personID")
		return
	}
	var req UpdatePersonRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	person, err := c.Service.Update(r.Context(), personID, domain.PersonUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Birthdate: req.Birthdate,
		Password:  req.Password,
	}, caller.ID, caller.Role)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, person)
}

// Delete godoc
// @Summary Delete a person
// @Description Deletes a person account and returns the deleted record. Only the person themselves or an admin may delete.
// @Tags persons
// @Produce json
// @Security BearerAuth
// @Param personID path string true "Person ID (UUID)"
// @Success 200 {object} controllers.PersonSuccessResponse "data contains the deleted person"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /persons/{personID} [delete]
func (c *PersonController) Delete(w http.ResponseWriter, r *http.Request) {
	personID := r.PathValue("personID")
	if personID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing personID")
		return
	}
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	person, err := c.Service.Delete(r.Context(), personID, caller.ID, caller.Role)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, person)
}
