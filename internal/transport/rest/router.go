package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/reimbursement-workflow/internal/auth"
	"github.com/frahmantamala/reimbursement-workflow/internal/dashboard"
	"github.com/frahmantamala/reimbursement-workflow/internal/policy"
	"github.com/frahmantamala/reimbursement-workflow/internal/request"
	"github.com/frahmantamala/reimbursement-workflow/internal/transport/middleware"
	"github.com/frahmantamala/reimbursement-workflow/internal/transport/swagger"
	"github.com/frahmantamala/reimbursement-workflow/internal/user"
	"github.com/go-chi/chi"
)

type Handlers struct {
	Auth      *auth.Handler
	Dashboard *dashboard.Handler
	Request   *request.Handler
	User      *user.Handler
	Policy    *policy.Handler
}

// RegisterAllRoutes wires the full HTTP surface. Everything is mounted at
// the root with no version prefix.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Post("/login", h.Auth.Login)
	router.Post("/dashboard", h.Dashboard.GetDashboard)

	router.Post("/request", h.Request.CreateRequest)
	router.Put("/request/{req_id}", h.Request.UpdateRequest)
	router.Delete("/request/{req_id}", h.Request.DeleteRequest)

	router.Put("/manager/approve/{req_id}", h.Request.ManagerApprove)
	router.Put("/manager/reject/{req_id}", h.Request.ManagerReject)

	router.Put("/finance/approve/{req_id}", h.Request.FinanceApprove)
	router.Put("/finance/reject/{req_id}", h.Request.FinanceReject)
	router.Put("/finance/pay/{req_id}", h.Request.FinancePay)

	router.Get("/admin/users", h.User.ListUsers)
	router.Post("/admin/user", h.User.CreateUser)
	router.Delete("/admin/user/{emp_id}", h.User.DeleteUser)

	router.Get("/policies", h.Policy.ListPolicies)
	router.Post("/admin/policy", h.Policy.UpsertPolicy)
}
