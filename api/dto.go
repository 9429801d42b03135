/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON shapes that are not plain domain entities: request bodies and the
  composite views (dashboard, reports, payroll) assembled per request.
  Plain entities (hrms.User, hrms.LeaveRequest, hrms.LeaveBalance) are
  served as-is.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Composite response wrappers

VALIDATION:
  Validation is done by the domain functions the handlers call, not in
  DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
)

// =============================================================================
// SESSION
// =============================================================================

// MeResponse describes the acting user and what they may do.
type MeResponse struct {
	User         hrms.User         `json:"user"`
	Capabilities []hrms.Capability `json:"capabilities"`
	Navigation   []hrms.View       `json:"navigation"`
}

// ResolveResponse is a resolved path plus whether the acting user may open it.
type ResolveResponse struct {
	View    hrms.View `json:"view"`
	Allowed bool      `json:"allowed"`
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// CreateEmployeeRequest is the request to add an employee. An empty ID is
// generated; IsActive defaults to true.
type CreateEmployeeRequest struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Role          hrms.Role `json:"role"`
	Department    string    `json:"department"`
	Position      string    `json:"position"`
	DateOfJoining hrms.Date `json:"dateOfJoining"`
	IsActive      *bool     `json:"isActive,omitempty"`
	ManagerID     string    `json:"managerId,omitempty"`
}

// =============================================================================
// LEAVE
// =============================================================================

// SubmitLeaveRequest applies for leave as the acting user.
// NumDays of 0 means the inclusive span of the dates.
type SubmitLeaveRequest struct {
	LeaveType hrms.LeaveType `json:"leaveType"`
	StartDate hrms.Date      `json:"startDate"`
	EndDate   hrms.Date      `json:"endDate"`
	NumDays   int            `json:"numDays,omitempty"`
	Reason    string         `json:"reason"`
}

// ReviewLeaveRequest is the optional body of approve and reject.
type ReviewLeaveRequest struct {
	Comment string `json:"comment"`
}

// LeaveListResponse is a filtered request list plus counts over the whole collection.
type LeaveListResponse struct {
	Requests []hrms.LeaveRequest `json:"requests"`
	Counts   hrms.LeaveCounts    `json:"counts"`
}

// =============================================================================
// DEPARTMENTS
// =============================================================================

// DepartmentDTO is a department with derived fields filled in.
type DepartmentDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	HeadID        string `json:"headId"`
	HeadName      string `json:"headName"`
	EmployeeCount int    `json:"employeeCount"`
}

// DepartmentRequest creates or updates a department. On update an empty
// HeadID keeps the current head.
type DepartmentRequest struct {
	Name   string `json:"name"`
	HeadID string `json:"headId"`
}

// =============================================================================
// DASHBOARD & REPORTS
// =============================================================================

type DashboardResponse struct {
	Stats           hrms.DashboardStats `json:"stats"`
	PendingRequests []hrms.LeaveRequest `json:"pendingRequests"`
	RecentEmployees []hrms.User         `json:"recentEmployees"`
	Departments     []DepartmentDTO     `json:"departments"`
}

type ReportSummaryResponse struct {
	Year         int                   `json:"year"`
	Employees    int                   `json:"totalEmployees"`
	Leaves       hrms.LeaveCounts      `json:"leaves"`
	LeaveTypes   []hrms.LeaveTypeCount `json:"leaveTypes"`
	HiresByMonth []hrms.MonthlyHires   `json:"hiresByMonth"`
	Departments  []DepartmentDTO       `json:"departments"`
	Payroll      hrms.PayrollSummary   `json:"payroll"`
}

// =============================================================================
// PAYROLL
// =============================================================================

// PayrollEntryDTO adds the derived net pay.
type PayrollEntryDTO struct {
	hrms.PayrollEntry
	NetPay decimal.Decimal `json:"netPay"`
}

type PayrollResponse struct {
	Entries []PayrollEntryDTO   `json:"entries"`
	Summary hrms.PayrollSummary `json:"summary"`
}

// =============================================================================
// SCENARIOS
// =============================================================================

type ScenarioListResponse struct {
	Scenarios []seed.Scenario `json:"scenarios"`
	Current   string          `json:"current"`
}

// ResetRequest reloads a scenario. Empty selects the default scenario.
type ResetRequest struct {
	Scenario string `json:"scenario"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
