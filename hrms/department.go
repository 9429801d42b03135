package hrms

import "strings"

// =============================================================================
// DEPARTMENT LIST OPERATIONS
// =============================================================================
// Each operation returns a new slice and leaves its input untouched.
// Deleting a department does not reassign its employees.

// AddDepartment appends d after validating its name and head.
func AddDepartment(departments []Department, users []User, d Department) ([]Department, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.ID == "" {
		return departments, Invalid("id", "is required")
	}
	if d.Name == "" {
		return departments, Invalid("name", "please enter a department name")
	}
	for _, existing := range departments {
		if existing.ID == d.ID {
			return departments, &DuplicateError{Kind: "department", Key: d.ID}
		}
	}
	if err := checkNameFree(departments, d.Name, ""); err != nil {
		return departments, err
	}
	if err := CheckDepartmentHead(users, d.HeadID); err != nil {
		return departments, err
	}
	d.EmployeeCount = 0

	out := make([]Department, 0, len(departments)+1)
	out = append(out, departments...)
	return append(out, d), nil
}

// UpdateDepartment renames department id and optionally changes its head.
// An empty headID keeps the current head.
func UpdateDepartment(departments []Department, users []User, id, name, headID string) ([]Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return departments, Invalid("name", "please enter a department name")
	}
	i := findDepartment(departments, id)
	if i < 0 {
		return departments, &NotFoundError{Kind: "department", ID: id}
	}
	if err := checkNameFree(departments, name, id); err != nil {
		return departments, err
	}
	if err := CheckDepartmentHead(users, headID); err != nil {
		return departments, err
	}

	out := append([]Department(nil), departments...)
	out[i].Name = name
	if headID != "" {
		out[i].HeadID = headID
	}
	return out, nil
}

// RenameMembers returns users with every Department equal to from set to to.
// Users reference their department by name.
func RenameMembers(users []User, from, to string) []User {
	out := append([]User(nil), users...)
	if from == to {
		return out
	}
	for i := range out {
		if out[i].Department == from {
			out[i].Department = to
		}
	}
	return out
}

// DeleteDepartment removes department id.
func DeleteDepartment(departments []Department, id string) ([]Department, error) {
	i := findDepartment(departments, id)
	if i < 0 {
		return departments, &NotFoundError{Kind: "department", ID: id}
	}
	out := make([]Department, 0, len(departments)-1)
	out = append(out, departments[:i]...)
	return append(out, departments[i+1:]...), nil
}

// CheckDepartmentHead accepts an empty head, or a user allowed to lead.
func CheckDepartmentHead(users []User, headID string) error {
	if headID == "" {
		return nil
	}
	u := FindUser(users, headID)
	if u == nil {
		return &NotFoundError{Kind: "user", ID: headID}
	}
	if !u.Role.CanHeadDepartment() {
		return Invalid("headId", "department head must be a manager, hr or admin")
	}
	return nil
}

// FindDepartmentByName matches case-insensitively.
func FindDepartmentByName(departments []Department, name string) *Department {
	for i := range departments {
		if strings.EqualFold(departments[i].Name, name) {
			d := departments[i]
			return &d
		}
	}
	return nil
}

func findDepartment(departments []Department, id string) int {
	for i := range departments {
		if departments[i].ID == id {
			return i
		}
	}
	return -1
}

func checkNameFree(departments []Department, name, exceptID string) error {
	for _, d := range departments {
		if d.ID != exceptID && strings.EqualFold(d.Name, name) {
			return &DuplicateError{Kind: "department name", Key: name}
		}
	}
	return nil
}
