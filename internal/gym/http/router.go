package http

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/aussiebroadwan/gymtrack/internal/gym/metrics"
	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
	"github.com/aussiebroadwan/gymtrack/pkg/slogx"

	_ "github.com/aussiebroadwan/gymtrack/api/gym" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	metrics      *metrics.Metrics
	authn        httpx.Authenticator

	// Limits configures per route rate limiting. The zero value disables it.
	Limits httpx.RateLimits
	// Swagger serves the API docs under /swagger/.
	Swagger bool

	AuthService          *service.AuthService
	UserService          *service.UserService
	PasswordResetService *service.PasswordResetService
	WorkoutService       *service.WorkoutService
	ExerciseSetService   *service.ExerciseSetService
	SetService           *service.SetService
	CatalogService       *service.CatalogService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	auth *service.AuthService,
	corsOrigins []string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		metrics:      m,
		AuthService:  auth,
		authn:        sessionAuthenticator{auth: auth},
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccount()
	r.registerPasswordReset()
	r.registerWorkouts()
	r.registerExerciseSets()
	r.registerSets()
	r.registerCatalog()
	r.registerSystem()

	if r.Swagger {
		r.Mux.Handle("/swagger/", httpSwagger.Handler())
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			gymtrack API
//	@version		0.1.0
//	@description	Workout tracking with email verified accounts and opaque session tokens.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/gymtrack
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from /login. Format: "Bearer {token}" or "Token {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h behind mws. Route metrics wrap the handler innermost so
// the matched pattern is known when they record.
func (r *Router) handle(pattern string, h http.HandlerFunc, mws ...httpx.Middleware) {
	r.Mux.Handle(pattern, httpx.Chain(h, slices.Concat(mws, []httpx.Middleware{r.metrics.Middleware})...))
}

func (r *Router) authenticated(limit httpx.RateLimit) []httpx.Middleware {
	return []httpx.Middleware{
		httpx.AuthnMiddleware(r.authn),
		httpx.RateLimitByUser(limit),
	}
}

func (r *Router) staff(limit httpx.RateLimit) []httpx.Middleware {
	return []httpx.Middleware{
		httpx.AuthnMiddleware(r.authn),
		httpx.RequireStaff,
		httpx.RateLimitByUser(limit),
	}
}

func (r *Router) registerAccount() {
	h := &AccountHandler{Auth: r.AuthService, Users: r.UserService}

	r.handle("POST /register", h.HandleRegister, httpx.RateLimitByIP(r.Limits.Strict))
	r.handle("POST /login", h.HandleLogin,
		httpx.RateLimitByIP(r.Limits.Strict),
		httpx.OptionalAuthn(r.authn),
	)
	r.handle("GET /email-verify", h.HandleVerifyEmail, httpx.RateLimitByIP(r.Limits.Moderate))
	r.handle("GET /logout", h.HandleLogout, r.authenticated(r.Limits.Moderate)...)

	r.handle("GET /me", h.HandleGetMe, r.authenticated(r.Limits.Moderate)...)
	r.handle("PUT /me", h.HandleUpdateMe, r.authenticated(r.Limits.Moderate)...)
	r.handle("PATCH /me", h.HandleUpdateMe, r.authenticated(r.Limits.Moderate)...)
}

func (r *Router) registerPasswordReset() {
	h := &PasswordResetHandler{Reset: r.PasswordResetService}

	r.handle("POST /password-reset", h.HandleRequest, httpx.RateLimitByIP(r.Limits.Strict))
	r.handle("GET /password-reset-confirm/{token}", h.HandleCheck, httpx.RateLimitByIP(r.Limits.Strict))
	r.handle("POST /password-reset-confirm/{token}", h.HandleConfirm, httpx.RateLimitByIP(r.Limits.Strict))
}

func (r *Router) registerWorkouts() {
	h := &WorkoutsHandler{Workouts: r.WorkoutService}
	mws := r.authenticated(r.Limits.Lenient)

	r.handle("GET /workouts", h.HandleList, mws...)
	r.handle("POST /workouts", h.HandleCreate, mws...)
	r.handle("GET /workouts/{id}", h.HandleGet, mws...)
	r.handle("PUT /workouts/{id}", h.HandleUpdate, mws...)
	r.handle("PATCH /workouts/{id}", h.HandleUpdate, mws...)
	r.handle("DELETE /workouts/{id}", h.HandleDelete, mws...)
}

func (r *Router) registerExerciseSets() {
	h := &ExerciseSetsHandler{ExerciseSets: r.ExerciseSetService}
	mws := r.authenticated(r.Limits.Lenient)

	r.handle("GET /exercisesets", h.HandleList, mws...)
	r.handle("POST /exercisesets", h.HandleCreate, mws...)
	r.handle("GET /exercisesets/{id}", h.HandleGet, mws...)
	r.handle("PUT /exercisesets/{id}", h.HandleUpdate, mws...)
	r.handle("PATCH /exercisesets/{id}", h.HandleUpdate, mws...)
	r.handle("DELETE /exercisesets/{id}", h.HandleDelete, mws...)
	r.handle("GET /exercisesets/{id}/total_rest_time", h.HandleTotalRestTime, mws...)
	r.handle("GET /exercisesets/{id}/highest_weight", h.HandleHighestWeight, mws...)
}

func (r *Router) registerSets() {
	h := &SetsHandler{Sets: r.SetService}
	mws := r.authenticated(r.Limits.Lenient)

	r.handle("GET /sets", h.HandleList, mws...)
	r.handle("POST /sets", h.HandleCreate, mws...)
	r.handle("GET /sets/{id}", h.HandleGet, mws...)
	r.handle("PUT /sets/{id}", h.HandleUpdate, mws...)
	r.handle("PATCH /sets/{id}", h.HandleUpdate, mws...)
	r.handle("DELETE /sets/{id}", h.HandleDelete, mws...)
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{Catalog: r.CatalogService}
	read := r.authenticated(r.Limits.Lenient)
	write := r.staff(r.Limits.Moderate)

	r.handle("GET /exercises", h.HandleListExercises, read...)
	r.handle("GET /exercises/{id}", h.HandleGetExercise, read...)
	r.handle("POST /exercises", h.HandleCreateExercise, write...)
	r.handle("DELETE /exercises/{id}", h.HandleDeleteExercise, write...)

	r.handle("GET /musclegroups", h.HandleListMuscleGroups, read...)
	r.handle("GET /musclegroups/{id}", h.HandleGetMuscleGroup, read...)
	r.handle("POST /musclegroups", h.HandleCreateMuscleGroup, write...)
	r.handle("DELETE /musclegroups/{id}", h.HandleDeleteMuscleGroup, write...)
}

func (r *Router) registerSystem() {
	r.handle("GET /livez", LivezHandler(r.startTime, r.buildVersion), httpx.RateLimitByIP(r.Limits.Public))
	r.handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store), httpx.RateLimitByIP(r.Limits.Public))

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
