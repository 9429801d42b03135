package hrms_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
)

func TestCountLeaves(t *testing.T) {
	c := hrms.CountLeaves(seed.Demo().LeaveRequests)
	assert.Equal(t, hrms.LeaveCounts{Total: 4, Pending: 2, Approved: 1, Rejected: 1}, c)
}

func TestComputeDashboardStats(t *testing.T) {
	snap := seed.Demo()

	// r2 was reviewed on 2024-12-11; Amanda joined 2024-12-02.
	stats := hrms.ComputeDashboardStats(snap, hrms.MustParseDate("2024-12-11"))

	assert.Equal(t, hrms.DashboardStats{
		TotalEmployees:      8,
		ActiveEmployees:     7,
		PendingLeaves:       2,
		ApprovedLeavesToday: 1,
		NewHiresThisMonth:   1,
		DepartmentCount:     5,
	}, stats)

	later := hrms.ComputeDashboardStats(snap, hrms.MustParseDate("2025-01-15"))
	assert.Equal(t, 0, later.ApprovedLeavesToday)
	assert.Equal(t, 0, later.NewHiresThisMonth)
}

func TestSummarizePayroll(t *testing.T) {
	entries := seed.Demo().Payroll

	sum := hrms.SummarizePayroll(entries)

	// net pay of entry i is 5200 + 520*i for i in 0..7
	assert.True(t, decimal.NewFromInt(5200*8+520*28).Equal(sum.TotalPayroll), sum.TotalPayroll.String())
	assert.Equal(t, 8, sum.TotalEmployees)
	assert.Equal(t, 3, sum.Pending)
	assert.Equal(t, 3, sum.Draft)
	assert.Equal(t, 2, sum.Processed)
}

func TestWithEmployeeCounts_DerivedFromUsers(t *testing.T) {
	snap := seed.Demo()

	counted := hrms.WithEmployeeCounts(snap.Departments, snap.Users)
	got := map[string]int{}
	for _, d := range counted {
		got[d.Name] = d.EmployeeCount
	}
	assert.Equal(t, map[string]int{
		"Engineering":     3,
		"Human Resources": 1,
		"Marketing":       2,
		"Sales":           1,
		"Finance":         1,
	}, got)

	// Moving a user changes the count on the next read.
	snap.Users[2].Department = "Sales"
	counted = hrms.WithEmployeeCounts(snap.Departments, snap.Users)
	assert.Equal(t, 2, counted[0].EmployeeCount)
	assert.Equal(t, 2, counted[3].EmployeeCount)
}

func TestRefreshUserNames(t *testing.T) {
	snap := seed.Demo()
	snap.Users[3].LastName = "Davis-Wright"
	snap.LeaveRequests = append(snap.LeaveRequests, hrms.LeaveRequest{ID: "r9", UserID: "gone", UserName: "Former Employee"})

	refreshed := hrms.RefreshUserNames(snap.LeaveRequests, snap.Users)

	assert.Equal(t, "Emily Davis-Wright", refreshed[0].UserName)
	assert.Equal(t, "Former Employee", refreshed[4].UserName)
	assert.Equal(t, "Emily Davis", snap.LeaveRequests[0].UserName, "input untouched")
}

func TestHeadName(t *testing.T) {
	users := seed.Demo().Users
	assert.Equal(t, "Robert Wilson", hrms.HeadName(users, "3"))
	assert.Equal(t, "Unassigned", hrms.HeadName(users, ""))
	assert.Equal(t, "Unassigned", hrms.HeadName(users, "99"))
}

func TestLeaveTypeBreakdown(t *testing.T) {
	breakdown := hrms.LeaveTypeBreakdown(seed.Demo().LeaveRequests)

	assert.Len(t, breakdown, len(hrms.LeaveTypes))
	assert.Equal(t, hrms.LeaveTypeCount{LeaveType: hrms.LeaveAnnual, Requests: 2, Days: 8}, breakdown[0])
	assert.Equal(t, hrms.LeaveTypeCount{LeaveType: hrms.LeaveSick, Requests: 1, Days: 2}, breakdown[1])
	assert.Equal(t, hrms.LeaveTypeCount{LeaveType: hrms.LeavePersonal, Requests: 1, Days: 1}, breakdown[2])
	assert.Zero(t, breakdown[3].Requests)
}

func TestHiresByMonth(t *testing.T) {
	hires := hrms.HiresByMonth(seed.Demo().Users, 2024)

	assert.Len(t, hires, 12)
	assert.Equal(t, time.December, hires[11].Month)
	assert.Equal(t, 1, hires[11].Hires)
	total := 0
	for _, h := range hires {
		total += h.Hires
	}
	assert.Equal(t, 1, total)
}
