package hrms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
)

func TestSnapshot_Validate(t *testing.T) {
	assert.NoError(t, seed.Demo().Validate())

	tests := []struct {
		name   string
		mutate func(*hrms.Snapshot)
		is     error
	}{
		{"duplicate user", func(s *hrms.Snapshot) { s.Users = append(s.Users, s.Users[0]) }, hrms.ErrDuplicate},
		{"duplicate request", func(s *hrms.Snapshot) { s.LeaveRequests[1].ID = "r1" }, hrms.ErrDuplicate},
		{"unknown status", func(s *hrms.Snapshot) { s.LeaveRequests[0].Status = "cancelled" }, hrms.ErrValidation},
		{"reversed dates", func(s *hrms.Snapshot) { s.LeaveRequests[0].EndDate = hrms.MustParseDate("2024-12-01") }, hrms.ErrValidation},
		{"duplicate balance key", func(s *hrms.Snapshot) { s.LeaveBalances = append(s.LeaveBalances, s.LeaveBalances[0]) }, hrms.ErrDuplicate},
		{"inconsistent balance", func(s *hrms.Snapshot) { s.LeaveBalances[0].Used++ }, hrms.ErrValidation},
		{"duplicate department name", func(s *hrms.Snapshot) { s.Departments[1].Name = "ENGINEERING" }, hrms.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := seed.Demo()
			tt.mutate(&snap)
			assert.ErrorIs(t, snap.Validate(), tt.is)
		})
	}
}

func TestSnapshot_CloneSharesNothing(t *testing.T) {
	snap := seed.Demo()
	clone := snap.Clone()

	clone.Users[0].FirstName = "Changed"
	clone.LeaveRequests[0].Status = hrms.LeaveApproved
	clone.LeaveBalances[0].Balance = 0

	assert.Equal(t, "Sarah", snap.Users[0].FirstName)
	assert.Equal(t, hrms.LeavePending, snap.LeaveRequests[0].Status)
	assert.Equal(t, 12, snap.LeaveBalances[0].Balance)
}

func TestLookups(t *testing.T) {
	snap := seed.Demo()

	assert.Equal(t, "Emily", hrms.FindUser(snap.Users, "4").FirstName)
	assert.Nil(t, hrms.FindUser(snap.Users, "99"))
	assert.Equal(t, 2, hrms.FindLeaveRequest(snap.LeaveRequests, "r3"))
	assert.Equal(t, -1, hrms.FindLeaveRequest(snap.LeaveRequests, "r9"))
	assert.GreaterOrEqual(t, hrms.FindBalance(snap.LeaveBalances, "4", hrms.LeaveAnnual), 0)
	assert.Equal(t, -1, hrms.FindBalance(snap.LeaveBalances, "4", hrms.LeaveMaternity))
	assert.Len(t, hrms.BalancesFor(snap.LeaveBalances, "4"), 3)
	assert.Empty(t, hrms.BalancesFor(snap.LeaveBalances, "99"))
}
