package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// RouterDeps carries everything NewRouter needs to mount the API.
type RouterDeps struct {
	Logger *slog.Logger

	Verifier domain.TokenVerifier
	Auth     domain.AuthService

	AuthController            *controllers.AuthController
	EventController           *controllers.EventController
	CompetitionTypeController *controllers.CompetitionTypeController
	CompetitionController     *controllers.CompetitionController
	CompetitorController      *controllers.CompetitorController
	PersonController          *controllers.PersonController
	AdminController           *controllers.AdminController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	adminOnly := middleware.RequireRole(deps.Verifier, deps.Auth, deps.Logger, domain.RoleAdmin)
	anyRole := middleware.RequireRole(deps.Verifier, deps.Auth, deps.Logger)

	// Auth
	mux.HandleFunc("POST /auth/person/login", deps.AuthController.LoginPerson)
	mux.HandleFunc("POST /auth/admin/login", deps.AuthController.LoginAdmin)

	// Events: public read, admin mutations.
	mux.HandleFunc("GET /events", deps.EventController.List)
	mux.HandleFunc("GET /events/{eventID}", deps.EventController.GetByID)
	mux.HandleFunc("POST /events", adminOnly(deps.EventController.Create))
	mux.HandleFunc("PATCH /events/{eventID}", adminOnly(deps.EventController.Update))
	mux.HandleFunc("PUT /events/{eventID}", adminOnly(deps.EventController.Update))
	mux.HandleFunc("DELETE /events/{eventID}", adminOnly(deps.EventController.Delete))

	// Competition types: public read, admin mutations.
	mux.HandleFunc("GET /competition-types", deps.CompetitionTypeController.List)
	mux.HandleFunc("GET /competition-types/{typeID}", deps.CompetitionTypeController.GetByID)
	mux.HandleFunc("POST /competition-types", adminOnly(deps.CompetitionTypeController.Create))
	mux.HandleFunc("PATCH /competition-types/{typeID}", adminOnly(deps.CompetitionTypeController.Update))
	mux.HandleFunc("PUT /competition-types/{typeID}", adminOnly(deps.CompetitionTypeController.Update))
	mux.HandleFunc("DELETE /competition-types/{typeID}", adminOnly(deps.CompetitionTypeController.Delete))
	mux.HandleFunc("POST /competition-types/{typeID}/image", adminOnly(deps.CompetitionTypeController.UploadImage))

	// Competitions: unauthenticated CRUD, cross-entity validation in the service.
	mux.HandleFunc("GET /competitions", deps.CompetitionController.List)
	mux.HandleFunc("GET /competitions/{competitionID}", deps.CompetitionController.GetByID)
	mux.HandleFunc("POST /competitions", deps.CompetitionController.Create)
	mux.HandleFunc("PATCH /competitions/{competitionID}", deps.CompetitionController.Update)
	mux.HandleFunc("PUT /competitions/{competitionID}", deps.CompetitionController.Update)
	mux.HandleFunc("DELETE /competitions/{competitionID}", deps.CompetitionController.Delete)

	// Competitors (enrollments): persons enroll themselves, admins may enroll
	// others; withdrawal is self-or-admin, enforced in the service.
	mux.HandleFunc("GET /competitors", anyRole(deps.CompetitorController.List))
	mux.HandleFunc("GET /competitors/{competitorID}", anyRole(deps.CompetitorController.GetByID))
	mux.HandleFunc("POST /competitors", anyRole(deps.CompetitorController.Enroll))
	mux.HandleFunc("DELETE /competitors/{competitorID}", anyRole(deps.CompetitorController.Withdraw))

	// Persons: public signup, admin listing, self-or-admin detail access.
	mux.HandleFunc("POST /persons", deps.PersonController.Register)
	mux.HandleFunc("GET /persons", adminOnly(deps.PersonController.List))
	mux.HandleFunc("GET /persons/{personID}", anyRole(deps.PersonController.GetByID))
	mux.HandleFunc("PATCH /persons/{personID}", anyRole(deps.PersonController.Update))
	mux.HandleFunc("PUT /persons/{personID}", anyRole(deps.PersonController.Update))
	mux.HandleFunc("DELETE /persons/{personID}", anyRole(deps.PersonController.Delete))

	// Admins: admin-only CRUD.
	mux.HandleFunc("POST /admins", adminOnly(deps.AdminController.Create))
	mux.HandleFunc("GET /admins", adminOnly(deps.AdminController.List))
	mux.HandleFunc("GET /admins/{adminID}", adminOnly(deps.AdminController.GetByID))
	mux.HandleFunc("PATCH /admins/{adminID}", adminOnly(deps.AdminController.Update))
	mux.HandleFunc("PUT /admins/{adminID}", adminOnly(deps.AdminController.Update))
	mux.HandleFunc("DELETE /admins/{adminID}", adminOnly(deps.AdminController.Delete))

	// Liveness
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
