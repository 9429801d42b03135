package hrms

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DERIVED AGGREGATES - Recomputed from the collections on every read
// =============================================================================

type LeaveCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func CountLeaves(requests []LeaveRequest) LeaveCounts {
	c := LeaveCounts{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case LeavePending:
			c.Pending++
		case LeaveApproved:
			c.Approved++
		case LeaveRejected:
			c.Rejected++
		}
	}
	return c
}

type DashboardStats struct {
	TotalEmployees      int `json:"totalEmployees"`
	ActiveEmployees     int `json:"activeEmployees"`
	PendingLeaves       int `json:"pendingLeaves"`
	ApprovedLeavesToday int `json:"approvedLeavesToday"`
	NewHiresThisMonth   int `json:"newHiresThisMonth"`
	DepartmentCount     int `json:"departmentCount"`
}

// ComputeDashboardStats derives the dashboard header numbers as of today.
// A leave counts as approved today when its review timestamp falls on today.
func ComputeDashboardStats(s Snapshot, today Date) DashboardStats {
	stats := DashboardStats{
		TotalEmployees:  len(s.Users),
		DepartmentCount: len(s.Departments),
	}
	for _, u := range s.Users {
		if u.IsActive {
			stats.ActiveEmployees++
		}
		if u.DateOfJoining.SameMonth(today) {
			stats.NewHiresThisMonth++
		}
	}
	for _, r := range s.LeaveRequests {
		switch r.Status {
		case LeavePending:
			stats.PendingLeaves++
		case LeaveApproved:
			if r.ReviewedAt != nil && DateOf(*r.ReviewedAt).Equal(today) {
				stats.ApprovedLeavesToday++
			}
		}
	}
	return stats
}

type PayrollSummary struct {
	TotalPayroll   decimal.Decimal `json:"totalPayroll"`
	TotalEmployees int             `json:"totalEmployees"`
	Processed      int             `json:"processed"`
	Pending        int             `json:"pending"`
	Draft          int             `json:"draft"`
}

func SummarizePayroll(entries []PayrollEntry) PayrollSummary {
	sum := PayrollSummary{TotalPayroll: decimal.Zero, TotalEmployees: len(entries)}
	for _, p := range entries {
		sum.TotalPayroll = sum.TotalPayroll.Add(p.NetPay())
		switch p.Status {
		case PayrollProcessed:
			sum.Processed++
		case PayrollPending:
			sum.Pending++
		case PayrollDraft:
			sum.Draft++
		}
	}
	return sum
}

// =============================================================================
// DENORMALIZED FIELDS - Derive on read
// =============================================================================

// WithEmployeeCounts returns a copy of departments whose EmployeeCount is the
// number of users naming that department.
func WithEmployeeCounts(departments []Department, users []User) []Department {
	counts := make(map[string]int, len(departments))
	for _, u := range users {
		counts[u.Department]++
	}
	out := make([]Department, len(departments))
	for i, d := range departments {
		d.EmployeeCount = counts[d.Name]
		out[i] = d
	}
	return out
}

// RefreshUserNames returns a copy of requests with UserName resynced from
// users. Requests whose user no longer exists keep their stored name.
func RefreshUserNames(requests []LeaveRequest, users []User) []LeaveRequest {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName()
	}
	out := make([]LeaveRequest, len(requests))
	for i, r := range requests {
		if name, ok := names[r.UserID]; ok {
			r.UserName = name
		}
		out[i] = r
	}
	return out
}

// HeadName resolves a department head for display.
func HeadName(users []User, headID string) string {
	if u := FindUser(users, headID); u != nil {
		return u.FullName()
	}
	return "Unassigned"
}

// =============================================================================
// REPORT BREAKDOWNS
// =============================================================================

type LeaveTypeCount struct {
	LeaveType LeaveType `json:"leaveType"`
	Requests  int       `json:"requests"`
	Days      int       `json:"days"`
}

// LeaveTypeBreakdown counts requests and days per leave type, in LeaveTypes order.
func LeaveTypeBreakdown(requests []LeaveRequest) []LeaveTypeCount {
	idx := make(map[LeaveType]int, len(LeaveTypes))
	out := make([]LeaveTypeCount, len(LeaveTypes))
	for i, lt := range LeaveTypes {
		idx[lt] = i
		out[i] = LeaveTypeCount{LeaveType: lt}
	}
	for _, r := range requests {
		i, ok := idx[r.LeaveType]
		if !ok {
			continue
		}
		out[i].Requests++
		out[i].Days += r.NumDays
	}
	return out
}

type MonthlyHires struct {
	Month time.Month `json:"month"`
	Hires int        `json:"hires"`
}

// HiresByMonth counts users joining in each month of year.
func HiresByMonth(users []User, year int) []MonthlyHires {
	out := make([]MonthlyHires, 12)
	for i := range out {
		out[i].Month = time.Month(i + 1)
	}
	for _, u := range users {
		if u.DateOfJoining.Year() == year {
			out[u.DateOfJoining.Month()-1].Hires++
		}
	}
	return out
}
