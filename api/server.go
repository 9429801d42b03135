/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers and capabilities.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     zap request logging (includes the request id)
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for the frontend
  5. identify:   Acting user from the user header (/api only)

AUTHORIZATION:
  Each route names at most one capability via requireCap(). The role to
  capability table in hrms/capability.go is the only place roles are
  compared.

SEE ALSO:
  - handlers.go: Handler implementations
  - middleware.go: identify, requireCap, request logging
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", h.UserHeader},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(h.identify)

		// Session routes
		r.Get("/me", h.Me)
		r.Get("/navigation", h.Navigation)
		r.Get("/navigation/resolve", h.ResolveNavigation)
		r.Get("/notifications", h.ListNotifications)

		r.With(requireCap(hrms.CapViewDashboard)).Get("/dashboard", h.Dashboard)

		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.With(requireCap(hrms.CapViewEmployees)).Get("/", h.ListEmployees)
			r.With(requireCap(hrms.CapManageEmployees)).Post("/", h.CreateEmployee)
			r.With(requireCap(hrms.CapExportEmployees)).Get("/export", h.ExportEmployees)
			r.With(requireCap(hrms.CapViewEmployees)).Get("/{id}", h.GetEmployee)
			r.Get("/{id}/balances", h.GetBalances)
		})

		// Leave routes
		r.Route("/leaves", func(r chi.Router) {
			r.With(requireCap(hrms.CapViewLeaves)).Get("/", h.ListLeaves)
			r.With(requireCap(hrms.CapApplyLeave)).Post("/", h.SubmitLeave)
			r.With(requireCap(hrms.CapViewReports)).Get("/export", h.ExportLeaves)
			r.With(requireCap(hrms.CapReviewLeave)).Post("/{id}/approve", h.ApproveLeave)
			r.With(requireCap(hrms.CapReviewLeave)).Post("/{id}/reject", h.RejectLeave)
		})

		// Department routes
		r.Route("/departments", func(r chi.Router) {
			r.With(requireCap(hrms.CapViewDepartments)).Get("/", h.ListDepartments)
			r.Group(func(r chi.Router) {
				r.Use(requireCap(hrms.CapManageDepartments))
				r.Post("/", h.CreateDepartment)
				r.Put("/{id}", h.UpdateDepartment)
				r.Delete("/{id}", h.DeleteDepartment)
			})
		})

		r.With(requireCap(hrms.CapViewPayroll)).Get("/payroll", h.ListPayroll)
		r.With(requireCap(hrms.CapViewReports)).Get("/reports/summary", h.ReportSummary)

		// Scenario routes
		r.Group(func(r chi.Router) {
			r.Use(requireCap(hrms.CapAdminister))
			r.Get("/scenarios", h.ListScenarios)
			r.Post("/reset", h.Reset)
		})
	})

	return r
}
