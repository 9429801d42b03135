package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaKarmakarP/rolewise-zenith/export"
	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestEmployeesCSV_TwoRows(t *testing.T) {
	// GIVEN: two employees
	// WHEN: exporting
	// THEN: the fixed header then exactly two data lines in column order
	users := seed.Demo().Users[:2]

	var buf bytes.Buffer
	require.NoError(t, export.EmployeesCSV(&buf, users))

	got := lines(buf.String())
	require.Len(t, got, 3)
	assert.Equal(t, "ID,Name,Email,Department,Position,Role,Date of Joining", got[0])
	assert.Equal(t, "1,Sarah Johnson,sarah.johnson@company.com,Finance,Chief Operating Officer,admin,2019-03-15", got[1])
	assert.Equal(t, "2,Michael Chen,michael.chen@company.com,Human Resources,HR Director,hr,2020-01-10", got[2])
}

func TestEmployeesCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.EmployeesCSV(&buf, nil))
	assert.Equal(t, "ID,Name,Email,Department,Position,Role,Date of Joining\n", buf.String())
}

func TestEmployeesCSV_QuotesSpecialCharacters(t *testing.T) {
	users := []hrms.User{{
		ID:            "9",
		FirstName:     "Ana",
		LastName:      `"AJ" Jones`,
		Email:         "aj@company.com",
		Department:    "Sales",
		Position:      "Director, EMEA",
		Role:          hrms.RoleManager,
		DateOfJoining: hrms.MustParseDate("2024-05-01"),
	}}

	var buf bytes.Buffer
	require.NoError(t, export.EmployeesCSV(&buf, users))

	got := lines(buf.String())
	require.Len(t, got, 2)
	assert.Equal(t, `9,"Ana ""AJ"" Jones",aj@company.com,Sales,"Director, EMEA",manager,2024-05-01`, got[1])
}

func TestLeaveRequestsCSV(t *testing.T) {
	requests := seed.Demo().LeaveRequests

	var buf bytes.Buffer
	require.NoError(t, export.LeaveRequestsCSV(&buf, requests))

	got := lines(buf.String())
	require.Len(t, got, 5)
	assert.Equal(t, "ID,Employee,Leave Type,Start Date,End Date,Days,Status,Reason,Requested At", got[0])
	assert.Equal(t, "r1,Emily Davis,annual,2024-12-23,2024-12-27,5,pending,Holiday vacation with family,2024-12-10T08:15:00Z", got[1])
}
