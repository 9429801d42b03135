/*
seed.go - Demo scenarios for the in-memory stores

PURPOSE:
  Pre-built snapshots that populate a store with a small, realistic
  organization. The server loads one at startup and POST /api/reset
  reloads any of them.

AVAILABLE SCENARIOS:
  demo:  Five departments, eight users, four leave requests (one of each
         terminal state plus two pending), balances for every user,
         December 2024 payroll and a handful of notifications
  empty: Departments only, no people

ADDING NEW SCENARIOS:
  1. Write a builder returning hrms.Snapshot
  2. Append it to the scenarios slice

Every scenario must pass hrms.Snapshot.Validate; seed_test.go checks this.

SEE ALSO:
  - api/handlers.go: Reset handler
  - cmd/server/main.go: store.seed config key
*/
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// DefaultScenario is loaded when no scenario is named.
const DefaultScenario = "demo"

// Scenario is a named initial state.
type Scenario struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	build       func() hrms.Snapshot
}

// Build returns a fresh snapshot. Callers may mutate it freely.
func (s Scenario) Build() hrms.Snapshot { return s.build() }

var scenarios = []Scenario{
	{
		ID:          "demo",
		Name:        "Demo Organization",
		Description: "Eight employees across five departments with pending and reviewed leave",
		build:       Demo,
	},
	{
		ID:          "empty",
		Name:        "Empty Organization",
		Description: "Departments without employees, leave or payroll",
		build:       Empty,
	},
}

// Scenarios lists every available scenario.
func Scenarios() []Scenario {
	return append([]Scenario(nil), scenarios...)
}

// Lookup finds a scenario by id. An empty id selects DefaultScenario.
func Lookup(id string) (Scenario, error) {
	if id == "" {
		id = DefaultScenario
	}
	for _, s := range scenarios {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, &hrms.NotFoundError{Kind: "scenario", ID: id}
}

// =============================================================================
// DEMO
// =============================================================================

func departments() []hrms.Department {
	return []hrms.Department{
		{ID: "d1", Name: "Engineering", HeadID: "3"},
		{ID: "d2", Name: "Human Resources", HeadID: "2"},
		{ID: "d3", Name: "Marketing", HeadID: "6"},
		{ID: "d4", Name: "Sales"},
		{ID: "d5", Name: "Finance", HeadID: "1"},
	}
}

func users() []hrms.User {
	d := hrms.MustParseDate
	return []hrms.User{
		{ID: "1", Email: "sarah.johnson@company.com", FirstName: "Sarah", LastName: "Johnson", Role: hrms.RoleAdmin,
			Department: "Finance", Position: "Chief Operating Officer", DateOfJoining: d("2019-03-15"), IsActive: true},
		{ID: "2", Email: "michael.chen@company.com", FirstName: "Michael", LastName: "Chen", Role: hrms.RoleHR,
			Department: "Human Resources", Position: "HR Director", DateOfJoining: d("2020-01-10"), IsActive: true},
		{ID: "3", Email: "robert.wilson@company.com", FirstName: "Robert", LastName: "Wilson", Role: hrms.RoleManager,
			Department: "Engineering", Position: "Engineering Manager", DateOfJoining: d("2020-06-01"), IsActive: true},
		{ID: "4", Email: "emily.davis@company.com", FirstName: "Emily", LastName: "Davis", Role: hrms.RoleEmployee,
			Department: "Engineering", Position: "Senior Developer", DateOfJoining: d("2021-04-12"), IsActive: true, ManagerID: "3"},
		{ID: "5", Email: "james.taylor@company.com", FirstName: "James", LastName: "Taylor", Role: hrms.RoleEmployee,
			Department: "Marketing", Position: "Marketing Specialist", DateOfJoining: d("2022-02-28"), IsActive: true, ManagerID: "6"},
		{ID: "6", Email: "lisa.anderson@company.com", FirstName: "Lisa", LastName: "Anderson", Role: hrms.RoleManager,
			Department: "Marketing", Position: "Marketing Manager", DateOfJoining: d("2019-11-04"), IsActive: true},
		{ID: "7", Email: "amanda.brown@company.com", FirstName: "Amanda", LastName: "Brown", Role: hrms.RoleEmployee,
			Department: "Sales", Position: "Sales Representative", DateOfJoining: d("2024-12-02"), IsActive: true},
		{ID: "8", Email: "david.martinez@company.com", FirstName: "David", LastName: "Martinez", Role: hrms.RoleEmployee,
			Department: "Engineering", Position: "Software Engineer", DateOfJoining: d("2023-08-21"), IsActive: false, ManagerID: "3"},
	}
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func leaveRequests() []hrms.LeaveRequest {
	d := hrms.MustParseDate
	r2Reviewed := at("2024-12-11T09:30:00Z")
	r4Reviewed := at("2024-12-09T14:00:00Z")
	return []hrms.LeaveRequest{
		{ID: "r1", UserID: "4", UserName: "Emily Davis", LeaveType: hrms.LeaveAnnual,
			StartDate: d("2024-12-23"), EndDate: d("2024-12-27"), NumDays: 5,
			Reason: "Holiday vacation with family", Status: hrms.LeavePending,
			RequestedAt: at("2024-12-10T08:15:00Z")},
		{ID: "r2", UserID: "5", UserName: "James Taylor", LeaveType: hrms.LeavePersonal,
			StartDate: d("2024-12-20"), EndDate: d("2024-12-20"), NumDays: 1,
			Reason: "Personal appointment", Status: hrms.LeaveApproved,
			ManagerID: "6", ManagerComment: "Enjoy your day off.",
			RequestedAt: at("2024-12-09T10:00:00Z"), ReviewedAt: &r2Reviewed},
		{ID: "r3", UserID: "8", UserName: "David Martinez", LeaveType: hrms.LeaveSick,
			StartDate: d("2024-12-16"), EndDate: d("2024-12-17"), NumDays: 2,
			Reason: "Flu recovery", Status: hrms.LeavePending,
			RequestedAt: at("2024-12-15T18:40:00Z")},
		{ID: "r4", UserID: "7", UserName: "Amanda Brown", LeaveType: hrms.LeaveAnnual,
			StartDate: d("2025-01-02"), EndDate: d("2025-01-04"), NumDays: 3,
			Reason: "New year trip", Status: hrms.LeaveRejected,
			ManagerID: "2", ManagerComment: "Not eligible during probation.",
			RequestedAt: at("2024-12-05T11:20:00Z"), ReviewedAt: &r4Reviewed},
	}
}

// Yearly entitlements for the tracked leave types.
var entitlements = []struct {
	leaveType hrms.LeaveType
	total     int
}{
	{hrms.LeaveAnnual, 20},
	{hrms.LeaveSick, 10},
	{hrms.LeavePersonal, 5},
}

// usedDays is leave already taken this year, keyed by user then type.
var usedDays = map[string]map[hrms.LeaveType]int{
	"1": {hrms.LeaveAnnual: 8},
	"2": {hrms.LeaveAnnual: 6, hrms.LeaveSick: 1},
	"3": {hrms.LeaveAnnual: 10, hrms.LeavePersonal: 1},
	"4": {hrms.LeaveAnnual: 5, hrms.LeaveSick: 2, hrms.LeavePersonal: 2},
	"5": {hrms.LeaveAnnual: 4, hrms.LeavePersonal: 1},
	"6": {hrms.LeaveAnnual: 12, hrms.LeaveSick: 3},
	"8": {hrms.LeaveSick: 4},
}

func leaveBalances(us []hrms.User) []hrms.LeaveBalance {
	out := make([]hrms.LeaveBalance, 0, len(us)*len(entitlements))
	for _, u := range us {
		for _, e := range entitlements {
			used := usedDays[u.ID][e.leaveType]
			out = append(out, hrms.LeaveBalance{
				UserID:    u.ID,
				LeaveType: e.leaveType,
				Balance:   e.total - used,
				Used:      used,
				Total:     e.total,
			})
		}
	}
	return out
}

// Payroll derives one December 2024 entry per user. Amounts step up with
// the user's position in the list; status cycles pending, draft, processed.
func Payroll(us []hrms.User) []hrms.PayrollEntry {
	statuses := []hrms.PayrollStatus{hrms.PayrollPending, hrms.PayrollDraft, hrms.PayrollProcessed}
	out := make([]hrms.PayrollEntry, len(us))
	for i, u := range us {
		n := int64(i)
		out[i] = hrms.PayrollEntry{
			ID:           fmt.Sprintf("pay-%s", u.ID),
			EmployeeID:   u.ID,
			EmployeeName: u.FullName(),
			Department:   u.Department,
			BasicSalary:  decimal.NewFromInt(5000 + n*500),
			Allowances:   decimal.NewFromInt(500 + n*50),
			Deductions:   decimal.NewFromInt(300 + n*30),
			Status:       statuses[i%3],
			Month:        "December 2024",
		}
	}
	return out
}

func notifications() []hrms.Notification {
	return []hrms.Notification{
		{ID: "1", Type: hrms.NotifyLeave, Title: "New Leave Request",
			Message: "Emily Davis has requested 5 days of annual leave.", Time: "5 minutes ago"},
		{ID: "2", Type: hrms.NotifyLeave, Title: "Leave Request Pending",
			Message: "James Taylor has requested 1 day of personal leave.", Time: "2 hours ago"},
		{ID: "3", Type: hrms.NotifyPayroll, Title: "Payroll Processed",
			Message: "December 2024 payroll has been successfully processed.", Time: "1 day ago", Read: true},
		{ID: "4", Type: hrms.NotifyEmployee, Title: "New Employee Onboarded",
			Message: "Amanda Brown has been successfully onboarded.", Time: "3 days ago", Read: true},
		{ID: "5", Type: hrms.NotifySystem, Title: "System Update",
			Message: "HRMS has been updated to version 2.5.0 with new features.", Time: "1 week ago", Read: true},
	}
}

// Demo builds the default organization.
func Demo() hrms.Snapshot {
	us := users()
	return hrms.Snapshot{
		Users:         us,
		LeaveRequests: leaveRequests(),
		LeaveBalances: leaveBalances(us),
		Departments:   departments(),
		Payroll:       Payroll(us),
		Notifications: notifications(),
	}
}

// Empty builds an organization with departments only.
func Empty() hrms.Snapshot {
	return hrms.Snapshot{
		Users:         []hrms.User{},
		LeaveRequests: []hrms.LeaveRequest{},
		LeaveBalances: []hrms.LeaveBalance{},
		Departments:   departments(),
		Payroll:       []hrms.PayrollEntry{},
		Notifications: []hrms.Notification{},
	}
}
