/*
Package export renders collections as downloadable files.

FORMATS:
  - CSV: header row plus one line per record, input order, RFC 4180 quoting
  - XLSX: the same columns on a single named sheet

Both writers take the already-filtered collection; choosing which records
to export is the caller's job.
*/
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// EmployeeColumns is the employee export header.
var EmployeeColumns = []string{"ID", "Name", "Email", "Department", "Position", "Role", "Date of Joining"}

// LeaveRequestColumns is the leave request export header.
var LeaveRequestColumns = []string{"ID", "Employee", "Leave Type", "Start Date", "End Date", "Days", "Status", "Reason", "Requested At"}

// EmployeesFilename is the suggested download name.
const EmployeesFilename = "employees.csv"

// LeaveRequestsFilename is the suggested download name.
const LeaveRequestsFilename = "leave-requests.csv"

func employeeRow(u hrms.User) []string {
	return []string{
		u.ID,
		u.FullName(),
		u.Email,
		u.Department,
		u.Position,
		string(u.Role),
		u.DateOfJoining.String(),
	}
}

func leaveRequestRow(r hrms.LeaveRequest) []string {
	return []string{
		r.ID,
		r.UserName,
		string(r.LeaveType),
		r.StartDate.String(),
		r.EndDate.String(),
		strconv.Itoa(r.NumDays),
		string(r.Status),
		r.Reason,
		r.RequestedAt.UTC().Format(time.RFC3339),
	}
}

// EmployeesCSV writes users as CSV.
func EmployeesCSV(w io.Writer, users []hrms.User) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, employeeRow(u))
	}
	return writeCSV(w, EmployeeColumns, rows)
}

// LeaveRequestsCSV writes requests as CSV.
func LeaveRequestsCSV(w io.Writer, requests []hrms.LeaveRequest) error {
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, leaveRequestRow(r))
	}
	return writeCSV(w, LeaveRequestColumns, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}
