/*
Package hrms provides the core HR domain model.

PURPOSE:
  Entity shapes shared by every other package: users, leave requests,
  leave balances, departments, payroll entries and notifications. The
  types are pure data. Behavior lives in small pure functions next to them
  (filter.go, stats.go, department.go) and in the leave package.

KEY CONCEPTS IN THIS FILE (types.go):
  - Role: closed set of user roles that drive capabilities
  - LeaveType / LeaveStatus: closed sets for leave requests
  - LeaveBalance: keyed by (UserID, LeaveType), balance + used == total
  - Snapshot: every collection held by a Store, copied on read

REFERENCES:
  UserID, ManagerID and HeadID are lookup keys only. Nothing cascades when
  a referenced entity goes away, so readers must tolerate dangling keys.

SEE ALSO:
  - store.go: Store interface over Snapshot
  - errors.go: Error taxonomy
  - leave/lifecycle.go: Leave request state transitions
*/
package hrms

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ROLES
// =============================================================================

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanHeadDepartment reports whether a user with this role may be a department head.
func (r Role) CanHeadDepartment() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleManager
}

// =============================================================================
// USER
// =============================================================================

type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Role          Role   `json:"role"`
	Department    string `json:"department"`
	Position      string `json:"position"`
	DateOfJoining Date   `json:"dateOfJoining"`
	IsActive      bool   `json:"isActive"`
	ManagerID     string `json:"managerId,omitempty"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// =============================================================================
// LEAVE
// =============================================================================

type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"
	LeaveSick      LeaveType = "sick"
	LeavePersonal  LeaveType = "personal"
	LeaveMaternity LeaveType = "maternity"
	LeavePaternity LeaveType = "paternity"
)

// LeaveTypes lists the closed set in display order.
var LeaveTypes = []LeaveType{LeaveAnnual, LeaveSick, LeavePersonal, LeaveMaternity, LeavePaternity}

func (t LeaveType) Valid() bool {
	for _, lt := range LeaveTypes {
		if t == lt {
			return true
		}
	}
	return false
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) Valid() bool {
	return s == LeavePending || s == LeaveApproved || s == LeaveRejected
}

// Terminal reports whether no further transition is defined out of s.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// LeaveRequest is a worker's petition for time off.
// Created pending; reviewed exactly once into approved or rejected.
type LeaveRequest struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	UserName       string      `json:"userName"`
	LeaveType      LeaveType   `json:"leaveType"`
	StartDate      Date        `json:"startDate"`
	EndDate        Date        `json:"endDate"`
	NumDays        int         `json:"numDays"`
	Reason         string      `json:"reason"`
	Status         LeaveStatus `json:"status"`
	ManagerID      string      `json:"managerId,omitempty"`
	ManagerComment string      `json:"managerComment,omitempty"`
	RequestedAt    time.Time   `json:"requestedAt"`
	ReviewedAt     *time.Time  `json:"reviewedAt,omitempty"`
}

// LeaveBalance is the remaining entitlement of one leave type for one user.
// At most one record exists per (UserID, LeaveType).
type LeaveBalance struct {
	UserID    string    `json:"userId"`
	LeaveType LeaveType `json:"leaveType"`
	Balance   int       `json:"balance"`
	Used      int       `json:"used"`
	Total     int       `json:"total"`
}

// Consistent reports whether balance + used == total and balance is non-negative.
func (b LeaveBalance) Consistent() bool {
	return b.Balance >= 0 && b.Balance+b.Used == b.Total
}

// =============================================================================
// DEPARTMENT
// =============================================================================

// Department is an organizational grouping with one designated head.
// EmployeeCount is derived from users on read and never stored.
type Department struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	HeadID        string `json:"headId"`
	EmployeeCount int    `json:"employeeCount"`
}

// =============================================================================
// PAYROLL
// =============================================================================

type PayrollStatus string

const (
	PayrollProcessed PayrollStatus = "processed"
	PayrollPending   PayrollStatus = "pending"
	PayrollDraft     PayrollStatus = "draft"
)

type PayrollEntry struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Department   string          `json:"department"`
	BasicSalary  decimal.Decimal `json:"basicSalary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	Status       PayrollStatus   `json:"status"`
	Month        string          `json:"month"`
}

// NetPay is basic salary plus allowances minus deductions.
func (p PayrollEntry) NetPay() decimal.Decimal {
	return p.BasicSalary.Add(p.Allowances).Sub(p.Deductions)
}

// =============================================================================
// NOTIFICATIONS
// =============================================================================

type NotificationType string

const (
	NotifyLeave    NotificationType = "leave"
	NotifyPayroll  NotificationType = "payroll"
	NotifyEmployee NotificationType = "employee"
	NotifySystem   NotificationType = "system"
)

type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Read    bool             `json:"read"`
}
