/*
handlers.go - HTTP API handlers for the HR dashboard

PURPOSE:
  Exposes the HR domain via REST API. Handles HTTP request/response and
  JSON serialization, and delegates to the hrms, leave and export
  packages. Every read derives its aggregates from a fresh Snapshot.

ENDPOINTS:
  Session:
    GET    /api/me                       Acting user, capabilities, sidebar
    GET    /api/navigation               Sidebar entries for the acting user
    GET    /api/navigation/resolve       Map ?path= to a view

  Employees:
    GET    /api/employees                ?q=&department=
    POST   /api/employees                Add employee
    GET    /api/employees/export         ?format=csv|xlsx plus list filters
    GET    /api/employees/{id}           Employee details
    GET    /api/employees/{id}/balances  Leave balances (self, or viewer)

  Leave:
    GET    /api/leaves                   ?q=&status=
    POST   /api/leaves                   Apply as the acting user
    GET    /api/leaves/export            CSV
    POST   /api/leaves/{id}/approve      Approve + decrement balance
    POST   /api/leaves/{id}/reject       Reject

  Departments:
    GET    /api/departments              ?q=
    POST   /api/departments              Create
    PUT    /api/departments/{id}         Rename / change head
    DELETE /api/departments/{id}         Delete

  Other:
    GET    /api/dashboard                Header stats + pending leave
    GET    /api/payroll                  ?q=
    GET    /api/reports/summary          ?year=
    GET    /api/notifications            Static feed
    GET    /api/scenarios                Available seed scenarios
    POST   /api/reset                    Reload a scenario

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: State container (memory or sqlite)
  - Leaves: Leave lifecycle service running against Store
  - Logger: zap

ERROR HANDLING:
  Errors are returned as JSON with the HTTP status chosen by statusFor:
  - 400: Validation errors, invalid input
  - 401: Unknown acting user
  - 403: Missing capability
  - 404: Resource not found
  - 409: Already reviewed, duplicate, insufficient balance
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - middleware.go: Acting user and capability checks
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NikitaKarmakarP/rolewise-zenith/config"
	"github.com/NikitaKarmakarP/rolewise-zenith/export"
	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/leave"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
)

// recentEmployeeCount is how many users the dashboard lists.
const recentEmployeeCount = 4

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  hrms.Store
	Leaves *leave.Service
	Logger *zap.Logger

	UserHeader string
	DemoUserID string

	// Now is the clock for dashboard and report dates.
	Now func() time.Time
	// NewID generates ids for created employees and departments.
	NewID func() string

	mu              sync.Mutex
	currentScenario string
}

// NewHandler creates a handler over store.
func NewHandler(store hrms.Store, logger *zap.Logger, auth config.AuthConfig) *Handler {
	return &Handler{
		Store:      store,
		Leaves:     leave.NewService(store, logger),
		Logger:     logger,
		UserHeader: auth.UserHeader,
		DemoUserID: auth.DemoUserID,
		Now:        func() time.Time { return time.Now().UTC() },
		NewID:      uuid.NewString,
	}
}

// SetCurrentScenario records which scenario the store was seeded with.
func (h *Handler) SetCurrentScenario(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.currentScenario = id
}

func (h *Handler) scenario() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentScenario
}

// =============================================================================
// SESSION HANDLERS
// =============================================================================

// Me returns the acting user with capabilities and sidebar.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := actingUser(r.Context())
	writeJSON(w, http.StatusOK, MeResponse{
		User:         user,
		Capabilities: user.Role.Capabilities(),
		Navigation:   hrms.NavigationFor(user.Role),
	})
}

// Navigation returns the sidebar entries for the acting user.
func (h *Handler) Navigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, hrms.NavigationFor(actingUser(r.Context()).Role))
}

// ResolveNavigation maps ?path= to a view. Unknown paths resolve to not-found.
func (h *Handler) ResolveNavigation(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "Missing path", hrms.Invalid("path", "is required"))
		return
	}
	view := hrms.ResolveView(path)
	role := actingUser(r.Context()).Role
	writeJSON(w, http.StatusOK, ResolveResponse{
		View:    view,
		Allowed: view.Needs == "" || role.Can(view.Needs),
	})
}

// =============================================================================
// DASHBOARD
// =============================================================================

// Dashboard returns the header stats, pending leave and recent employees.
// Stats are organization-wide counts. The lists follow the same rules as
// their own routes: pending leave is narrowed by visibleLeaves, and recent
// employees and departments need the matching view capability.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := actingUser(r.Context())
	snap, err := h.Store.Load(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to load dashboard", err)
		return
	}

	requests := visibleLeaves(user, hrms.RefreshUserNames(snap.LeaveRequests, snap.Users))
	resp := DashboardResponse{
		Stats:           hrms.ComputeDashboardStats(snap, hrms.DateOf(h.Now())),
		PendingRequests: hrms.FilterLeaveRequests(requests, hrms.LeaveFilter{Status: string(hrms.LeavePending)}),
		RecentEmployees: []hrms.User{},
		Departments:     []DepartmentDTO{},
	}

	if user.Role.Can(hrms.CapViewEmployees) {
		recent := snap.Users
		if len(recent) > recentEmployeeCount {
			recent = recent[:recentEmployeeCount]
		}
		resp.RecentEmployees = append(resp.RecentEmployees, recent...)
	}
	if user.Role.Can(hrms.CapViewDepartments) {
		resp.Departments = toDepartmentDTOs(snap.Departments, snap.Users)
	}

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

func employeeFilter(r *http.Request) hrms.EmployeeFilter {
	q := r.URL.Query()
	return hrms.EmployeeFilter{Query: q.Get("q"), Department: q.Get("department")}
}

// ListEmployees returns employees matching ?q= and ?department=.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Store.Load(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list employees", err)
		return
	}
	writeJSON(w, http.StatusOK, hrms.FilterEmployees(snap.Users, employeeFilter(r)))
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, err := h.Store.Load(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to get employee", err)
		return
	}
	user := hrms.FindUser(snap.Users, id)
	if user == nil {
		h.writeDomainError(w, "Employee not found", &hrms.NotFoundError{Kind: "user", ID: id})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// CreateEmployee adds an employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	u := hrms.User{
		ID:            req.ID,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Role:          req.Role,
		Department:    req.Department,
		Position:      req.Position,
		DateOfJoining: req.DateOfJoining,
		IsActive:      req.IsActive == nil || *req.IsActive,
		ManagerID:     req.ManagerID,
	}
	if u.ID == "" {
		u.ID = h.NewID()
	}

	var created hrms.User
	err := h.Store.Update(r.Context(), func(snap *hrms.Snapshot) error {
		users, err := hrms.AddEmployee(snap.Users, snap.Departments, u)
		if err != nil {
			return err
		}
		snap.Users = users
		created = users[len(users)-1]
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to create employee", err)
		return
	}

	h.Logger.Info("employee created",
		zap.String("user_id", created.ID),
		zap.String("department", created.Department),
		zap.String("role", string(created.Role)),
	)
	writeJSON(w, http.StatusCreated, created)
}

// GetBalances returns an employee's leave balances. Users may always read
// their own; reading others needs the employee view capability.
func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user := actingUser(r.Context())
	if user.ID != id && !user.Role.Can(hrms.CapViewEmployees) {
		writeError(w, http.StatusForbidden, "Forbidden",
			&hrms.CapabilityError{Role: user.Role, Capability: hrms.CapViewEmployees})
		return
	}

	balances, err := h.Leaves.Balances(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "Failed to get balances", err)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

// ExportEmployees downloads the filtered employee list as CSV or XLSX.
func (h *Handler) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, "Unsupported export format",
			hrms.Invalid("format", "must be csv or xlsx"))
		return
	}

	snap, err := h.Store.Load(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to export employees", err)
		return
	}
	users := hrms.FilterEmployees(snap.Users, employeeFilter(r))

	if format == "xlsx" {
		buf, err := export.EmployeesXLSX(users)
		if err != nil {
			h.Logger.Error("employee xlsx export failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to export employees", err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", attachment(export.EmployeesXLSXFilename))
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, buf); err != nil {
			h.Logger.Error("employee xlsx write failed", zap.Error(err))
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(export.EmployeesFilename))
	w.WriteHeader(http.StatusOK)
	if err := export.EmployeesCSV(w, users); err != nil {
		h.Logger.Error("employee csv export failed", zap.Error(err))
	}
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

func leaveFilter(r *http.Request) hrms.LeaveFilter {
	q := r.URL.Query()
	return hrms.LeaveFilter{Query: q.Get("q"), Status: q.Get("status")}
}

// visibleLeaves narrows requests to the acting user's own unless they review leave.
func visibleLeaves(user hrms.User, requests []hrms.LeaveRequest) []hrms.LeaveRequest {
	if user.Role.Can(hrms.CapReviewLeave) {
		return requests
	}
	own := []hrms.LeaveRequest{}
	for _, req := range requests {
		if req.UserID == user.ID {
			own = append(own, req)
		}
	}
	return own
}

// ListLeaves returns leave requests matching ?q= and ?status=.
func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	user := actingUser(r.Context())
	all, err := h.Leaves.List(r.Context(), hrms.LeaveFilter{})
	if err != nil {
		h.writeDomainError(w, "Failed to list leave requests", err)
		return
	}
	visible := visibleLeaves(user, all)
	writeJSON(w, http.StatusOK, LeaveListResponse{
		Requests: hrms.FilterLeaveRequests(visible, leaveFilter(r)),
		Counts:   hrms.CountLeaves(visible),
	})
}

// SubmitLeave applies for leave as the acting user.
func (h *Handler) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := h.Leaves.Submit(r.Context(), leave.SubmitInput{
		UserID:    actingUser(r.Context()).ID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		NumDays:   req.NumDays,
		Reason:    req.Reason,
	})
	if err != nil {
		h.writeDomainError(w, "Failed to submit leave request", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ApproveLeave approves a pending request.
func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	h.reviewLeave(w, r, h.Leaves.Approve)
}

// RejectLeave rejects a pending request.
func (h *Handler) RejectLeave(w http.ResponseWriter, r *http.Request) {
	h.reviewLeave(w, r, h.Leaves.Reject)
}

type reviewFunc func(ctx context.Context, id, reviewerID, comment string) (*hrms.LeaveRequest, error)

func (h *Handler) reviewLeave(w http.ResponseWriter, r *http.Request, review reviewFunc) {
	id := chi.URLParam(r, "id")
	reviewer := actingUser(r.Context())

	var req ReviewLeaveRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	existing, err := h.Leaves.Get(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, "Leave request not found", err)
		return
	}
	if existing.UserID == reviewer.ID {
		writeError(w, http.StatusForbidden, "Cannot review your own leave request",
			fmt.Errorf("user %s reviewing own request %s: %w", reviewer.ID, id, hrms.ErrForbidden))
		return
	}

	reviewed, err := review(r.Context(), id, reviewer.ID, strings.TrimSpace(req.Comment))
	if err != nil {
		h.writeDomainError(w, "Failed to review leave request", err)
		return
	}
	writeJSON(w, http.StatusOK, reviewed)
}

// ExportLeaves downloads the filtered leave list as CSV.
func (h *Handler) ExportLeaves(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Leaves.List(r.Context(), leaveFilter(r))
	if err != nil {
		h.writeDomainError(w, "Failed to export leave requests", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(export.LeaveRequestsFilename))
	w.WriteHeader(http.StatusOK)
	if err := export.LeaveRequestsCSV(w, requests); err != nil {
		h.Logger.Error("leave csv export failed", zap.Error(err))
	}
}

// =============================================================================
// DEPARTMENT HANDLERS
// =============================================================================

func toDepartmentDTOs(departments []hrms.Department, users []hrms.User) []DepartmentDTO {
	counted := hrms.WithEmployeeCounts(departments, users)
	out := make([]DepartmentDTO, len(counted))
	for i, d := range counted {
		out[i] = DepartmentDTO{
			ID:            d.ID,
			Name:          d.Name,
			HeadID:        d.HeadID,
			HeadName:      hrms.HeadName(users, d.HeadID),
			EmployeeCount: d.EmployeeCount,
		}
	}
	return out
}

func departmentDTO(snap hrms.Snapshot, id string) DepartmentDTO {
	for _, d := range toDepartmentDTOs(snap.Departments, snap.Users) {
		if d.ID == id {
			return d
		}
	}
	return DepartmentDTO{}
}

// ListDepartments returns departments matching ?q= with derived counts.
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Store.Load(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list departments", err)
		return
	}
	matched := hrms.FilterDepartments(snap.Departments, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, toDepartmentDTOs(matched, snap.Users))
}

// CreateDepartment adds a department.
func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id := h.NewID()
	var result DepartmentDTO
	err := h.Store.Update(r.Context(), func(snap *hrms.Snapshot) error {
		departments, err := hrms.AddDepartment(snap.Departments, snap.Users,
			hrms.Department{ID: id, Name: req.Name, HeadID: req.HeadID})
		if err != nil {
			return err
		}
		snap.Departments = departments
		result = departmentDTO(*snap, id)
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to create department", err)
		return
	}

	h.Logger.Info("department created", zap.String("department_id", id), zap.String("name", result.Name))
	writeJSON(w, http.StatusCreated, result)
}

// UpdateDepartment renames a department and optionally changes its head.
// Employees of the department follow the new name.
func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var result DepartmentDTO
	err := h.Store.Update(r.Context(), func(snap *hrms.Snapshot) error {
		before := departmentDTO(*snap, id)
		departments, err := hrms.UpdateDepartment(snap.Departments, snap.Users, id, req.Name, req.HeadID)
		if err != nil {
			return err
		}
		snap.Departments = departments
		after := departmentDTO(*snap, id)
		snap.Users = hrms.RenameMembers(snap.Users, before.Name, after.Name)
		result = departmentDTO(*snap, id)
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to update department", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DeleteDepartment removes a department. Its employees keep the old name.
func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.Store.Update(r.Context(), func(snap *hrms.Snapshot) error {
		departments, err := hrms.DeleteDepartment(snap.Departments, id)
		if err != nil {
			return err
		}
		snap.Departments = departments
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to delete department", err)
		return
	}

	h.Logger.Info("department deleted", zap.String("department_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYROLL & REPORTS
// =============================================================================

// ListPayroll returns payroll entries matching ?q= with the summary over all entries.
func (h *Handler) ListPayroll(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Store.Load(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list payroll", err)
		return
	}
	matched := hrms.FilterPayroll(snap.Payroll, r.URL.Query().Get("q"))
	entries := make([]PayrollEntryDTO, len(matched))
	for i, p := range matched {
		entries[i] = PayrollEntryDTO{PayrollEntry: p, NetPay: p.NetPay()}
	}
	writeJSON(w, http.StatusOK, PayrollResponse{
		Entries: entries,
		Summary: hrms.SummarizePayroll(snap.Payroll),
	})
}

// ReportSummary returns organization-wide aggregates for ?year= (default: current).
func (h *Handler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	year := h.Now().Year()
	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 {
			writeError(w, http.StatusBadRequest, "Invalid year", hrms.Invalid("year", "must be a positive integer"))
			return
		}
		year = y
	}

	snap, err := h.Store.Load(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to build report", err)
		return
	}
	writeJSON(w, http.StatusOK, ReportSummaryResponse{
		Year:         year,
		Employees:    len(snap.Users),
		Leaves:       hrms.CountLeaves(snap.LeaveRequests),
		LeaveTypes:   hrms.LeaveTypeBreakdown(snap.LeaveRequests),
		HiresByMonth: hrms.HiresByMonth(snap.Users, year),
		Departments:  toDepartmentDTOs(snap.Departments, snap.Users),
		Payroll:      hrms.SummarizePayroll(snap.Payroll),
	})
}

// ListNotifications returns the notification feed.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Store.Load(r.Context())
	if err != nil {
		h.writeDomainError(w, "Failed to list notifications", err)
		return
	}
	writeJSON(w, http.StatusOK, snap.Notifications)
}

// =============================================================================
// SCENARIOS
// =============================================================================

// ListScenarios returns the available seed scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ScenarioListResponse{
		Scenarios: seed.Scenarios(),
		Current:   h.scenario(),
	})
}

// Reset replaces all state with a scenario. Dev/demo only.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	scenario, err := seed.Lookup(req.Scenario)
	if err != nil {
		h.writeDomainError(w, "Unknown scenario", err)
		return
	}
	if err := h.Store.Reset(r.Context(), scenario.Build()); err != nil {
		h.writeDomainError(w, "Failed to reset", err)
		return
	}
	h.SetCurrentScenario(scenario.ID)

	h.Logger.Warn("state reset",
		zap.String("scenario", scenario.ID),
		zap.String("by", actingUser(r.Context()).ID),
	)
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "reset",
		"scenario": scenario.ID,
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, hrms.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, hrms.ErrForbidden):
		return http.StatusForbidden
	case hrms.IsNotFound(err):
		return http.StatusNotFound
	case hrms.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError writes err with the status statusFor picks. Server
// errors are logged; the details of client errors go to the caller.
func (h *Handler) writeDomainError(w http.ResponseWriter, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error(message, zap.Error(err))
	}
	writeJSON(w, status, ErrorResponse{Error: message, Details: errorDetails(err)})
}

// errorDetails exposes structured fields for the errors callers act on.
func errorDetails(err error) any {
	var (
		ve *hrms.ValidationError
		ib *hrms.InsufficientBalanceError
	)
	switch {
	case errors.As(err, &ve):
		return map[string]string{"field": ve.Field, "message": ve.Message}
	case errors.As(err, &ib):
		return map[string]any{
			"message":   ib.Error(),
			"leaveType": ib.LeaveType,
			"available": ib.Available,
			"requested": ib.Requested,
		}
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func attachment(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
