/*
filter.go - Search and categorical filters over small collections

PURPOSE:
  Pure, synchronous filtering. A free-text query matches when it is a
  case-insensitive substring of any searched field; a categorical filter
  matches on equality. Both are ANDed. An empty query or a category of ""
  or "all" matches everything.

SEARCHED FIELDS:
  Employees:      first name, last name, email, position  | department
  Leave requests: requester name, reason                  | status
  Departments:    name
  Payroll:        employee name, department

PROPERTIES:
  - Appending characters to a query never grows the result.
  - Query + category == intersection of each applied alone.
  - Input order is preserved; the input slice is not modified.

Collections stay in the tens of records, so every call rescans the full
collection. No index, no debounce.
*/
package hrms

import "strings"

// CategoryAll is the categorical filter value that matches everything.
const CategoryAll = "all"

type EmployeeFilter struct {
	Query      string
	Department string
}

type LeaveFilter struct {
	Query  string
	Status string
}

// FilterEmployees applies f to users.
func FilterEmployees(users []User, f EmployeeFilter) []User {
	q := strings.ToLower(f.Query)
	out := []User{}
	for _, u := range users {
		if !containsAny(q, u.FirstName, u.LastName, u.Email, u.Position) {
			continue
		}
		if !categoryMatches(f.Department, u.Department) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// FilterLeaveRequests applies f to requests.
func FilterLeaveRequests(requests []LeaveRequest, f LeaveFilter) []LeaveRequest {
	q := strings.ToLower(f.Query)
	out := []LeaveRequest{}
	for _, r := range requests {
		if !containsAny(q, r.UserName, r.Reason) {
			continue
		}
		if !categoryMatches(f.Status, string(r.Status)) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterDepartments matches query against department names.
func FilterDepartments(departments []Department, query string) []Department {
	q := strings.ToLower(query)
	out := []Department{}
	for _, d := range departments {
		if containsAny(q, d.Name) {
			out = append(out, d)
		}
	}
	return out
}

// FilterPayroll matches query against employee name and department.
func FilterPayroll(entries []PayrollEntry, query string) []PayrollEntry {
	q := strings.ToLower(query)
	out := []PayrollEntry{}
	for _, p := range entries {
		if containsAny(q, p.EmployeeName, p.Department) {
			out = append(out, p)
		}
	}
	return out
}

// containsAny expects q already lowercased.
func containsAny(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func categoryMatches(want, got string) bool {
	return want == "" || want == CategoryAll || want == got
}
