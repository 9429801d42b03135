package hrms

import (
	"net/mail"
	"strings"
)

// AddEmployee appends u to users after validation. The department must name
// an existing department; the manager, when set, must be an existing user.
func AddEmployee(users []User, departments []Department, u User) ([]User, error) {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.TrimSpace(u.Email)

	switch {
	case u.ID == "":
		return users, Invalid("id", "is required")
	case u.FirstName == "":
		return users, Invalid("firstName", "is required")
	case u.LastName == "":
		return users, Invalid("lastName", "is required")
	case u.Position == "":
		return users, Invalid("position", "is required")
	case !u.Role.Valid():
		return users, Invalid("role", "must be one of admin, hr, manager, employee")
	case u.DateOfJoining.IsZero():
		return users, Invalid("dateOfJoining", "is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return users, Invalid("email", "is not a valid address")
	}
	if FindUser(users, u.ID) != nil {
		return users, &DuplicateError{Kind: "user", Key: u.ID}
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, u.Email) {
			return users, &DuplicateError{Kind: "email", Key: u.Email}
		}
	}
	dept := FindDepartmentByName(departments, u.Department)
	if dept == nil {
		return users, &NotFoundError{Kind: "department", ID: u.Department}
	}
	u.Department = dept.Name
	if u.ManagerID != "" && FindUser(users, u.ManagerID) == nil {
		return users, &NotFoundError{Kind: "user", ID: u.ManagerID}
	}

	out := make([]User, 0, len(users)+1)
	out = append(out, users...)
	return append(out, u), nil
}
