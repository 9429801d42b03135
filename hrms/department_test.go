package hrms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
)

func TestAddDepartment(t *testing.T) {
	snap := seed.Demo()

	out, err := hrms.AddDepartment(snap.Departments, snap.Users,
		hrms.Department{ID: "d6", Name: "  Legal ", HeadID: "2", EmployeeCount: 40})
	require.NoError(t, err)

	assert.Len(t, out, 6)
	assert.Len(t, snap.Departments, 5, "input untouched")
	assert.Equal(t, "Legal", out[5].Name)
	assert.Zero(t, out[5].EmployeeCount, "count is derived, never stored")
}

func TestAddDepartment_Rejects(t *testing.T) {
	snap := seed.Demo()

	tests := []struct {
		name string
		dept hrms.Department
		is   error
	}{
		{"empty name", hrms.Department{ID: "d6", Name: "   "}, hrms.ErrValidation},
		{"duplicate id", hrms.Department{ID: "d1", Name: "Legal"}, hrms.ErrDuplicate},
		{"duplicate name any case", hrms.Department{ID: "d6", Name: "engineering"}, hrms.ErrDuplicate},
		{"unknown head", hrms.Department{ID: "d6", Name: "Legal", HeadID: "99"}, hrms.ErrNotFound},
		{"employee head", hrms.Department{ID: "d6", Name: "Legal", HeadID: "4"}, hrms.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := hrms.AddDepartment(snap.Departments, snap.Users, tt.dept)
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, snap.Departments, out)
		})
	}
}

func TestUpdateDepartment(t *testing.T) {
	snap := seed.Demo()

	out, err := hrms.UpdateDepartment(snap.Departments, snap.Users, "d4", "Sales & Partnerships", "6")
	require.NoError(t, err)
	assert.Equal(t, "Sales & Partnerships", out[3].Name)
	assert.Equal(t, "6", out[3].HeadID)
	assert.Equal(t, "Sales", snap.Departments[3].Name)

	// Empty head keeps the current one; renaming to its own name in another case is allowed.
	out, err = hrms.UpdateDepartment(snap.Departments, snap.Users, "d1", "ENGINEERING", "")
	require.NoError(t, err)
	assert.Equal(t, "3", out[0].HeadID)

	_, err = hrms.UpdateDepartment(snap.Departments, snap.Users, "d1", "Marketing", "")
	assert.ErrorIs(t, err, hrms.ErrDuplicate)

	_, err = hrms.UpdateDepartment(snap.Departments, snap.Users, "d9", "Legal", "")
	assert.ErrorIs(t, err, hrms.ErrNotFound)
}

func TestRenameMembers(t *testing.T) {
	snap := seed.Demo()

	out := hrms.RenameMembers(snap.Users, "Engineering", "R&D")

	counted := hrms.WithEmployeeCounts([]hrms.Department{{ID: "d1", Name: "R&D"}}, out)
	assert.Equal(t, 3, counted[0].EmployeeCount)
	assert.Equal(t, "Engineering", snap.Users[2].Department, "input untouched")
	assert.Equal(t, "Marketing", out[4].Department)
}

func TestDeleteDepartment(t *testing.T) {
	snap := seed.Demo()

	out, err := hrms.DeleteDepartment(snap.Departments, "d3")
	require.NoError(t, err)
	assert.Len(t, out, 4)
	assert.Nil(t, hrms.FindDepartmentByName(out, "Marketing"))
	assert.Len(t, snap.Departments, 5)

	_, err = hrms.DeleteDepartment(out, "d3")
	assert.ErrorIs(t, err, hrms.ErrNotFound)
}
