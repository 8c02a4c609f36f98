package controllers

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// LoginPersonRequest is the request body for POST /auth/person/login.
type LoginPersonRequest struct {
	DNI      string `json:"dni"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginPersonRequest) Validate() []string {
	var errs []string
	if l.DNI == "" {
		errs = append(errs, "dni is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginAdminRequest is the request body for POST /auth/admin/login.
type LoginAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginAdminRequest) Validate() []string {
	var errs []string
	if l.Username == "" {
		errs = append(errs, "username is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the data payload for both login endpoints.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	Profile   any    `json:"profile"`
}

// LoginSuccessResponse is the success response envelope for the login endpoints (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// LoginPerson godoc
// @Summary Log in as a person
// @Description Authenticates a person by dni and password and returns a signed Bearer token valid for two hours.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginPersonRequest true "Person credentials"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains token and profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/person/login [post]
func (c *AuthController) LoginPerson(w http.ResponseWriter, r *http.Request) {
	var req LoginPersonRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, person, err := c.Service.LoginPerson(r.Context(), req.DNI, req.Password)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", Profile: person})
}

// LoginAdmin godoc
// @Summary Log in as an admin
// @Description Authenticates an admin by username and password and returns a signed Bearer token valid for two hours.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginAdminRequest true "Admin credentials"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains token and profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/admin/login [post]
func (c *AuthController) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req LoginAdminRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, admin, err := c.Service.LoginAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", Profile: admin})
}
