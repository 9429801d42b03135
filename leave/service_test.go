package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/leave"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
	"github.com/NikitaKarmakarP/rolewise-zenith/store/memory"
)

var now = time.Date(2024, time.December, 12, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*leave.Service, *memory.Store) {
	t.Helper()
	store := memory.New(seed.Demo())
	svc := leave.NewService(store, zap.NewNop())
	svc.Now = func() time.Time { return now }
	svc.NewID = func() string { return "r5" }
	return svc, store
}

func balanceOf(t *testing.T, s hrms.Store, userID string, lt hrms.LeaveType) hrms.LeaveBalance {
	t.Helper()
	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	i := hrms.FindBalance(snap.LeaveBalances, userID, lt)
	require.GreaterOrEqual(t, i, 0)
	return snap.LeaveBalances[i]
}

func TestService_Submit(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, leave.SubmitInput{
		UserID:    "5",
		LeaveType: hrms.LeaveAnnual,
		StartDate: hrms.MustParseDate("2025-02-03"),
		EndDate:   hrms.MustParseDate("2025-02-07"),
		Reason:    "  Ski trip ",
	})
	require.NoError(t, err)

	assert.Equal(t, "r5", created.ID)
	assert.Equal(t, "James Taylor", created.UserName)
	assert.Equal(t, 5, created.NumDays, "defaults to the inclusive span")
	assert.Equal(t, "Ski trip", created.Reason)
	assert.Equal(t, hrms.LeavePending, created.Status)
	assert.Equal(t, now, created.RequestedAt)
	assert.Nil(t, created.ReviewedAt)

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.LeaveRequests, 5)
	assert.Equal(t, 16, balanceOf(t, store, "5", hrms.LeaveAnnual).Balance, "submitting books nothing")
}

func TestService_Submit_WarnsWhenBalanceShort(t *testing.T) {
	// GIVEN: Emily has 3 personal days left
	store := memory.New(seed.Demo())
	core, logs := observer.New(zapcore.WarnLevel)
	svc := leave.NewService(store, zap.New(core))
	svc.Now = func() time.Time { return now }
	svc.NewID = func() string { return "r5" }

	// WHEN: She asks for 4, then for 1
	_, err := svc.Submit(context.Background(), leave.SubmitInput{
		UserID:    "4",
		LeaveType: hrms.LeavePersonal,
		StartDate: hrms.MustParseDate("2024-12-30"),
		EndDate:   hrms.MustParseDate("2025-01-02"),
		Reason:    "Moving house",
	})
	require.NoError(t, err)

	svc.NewID = func() string { return "r6" }
	_, err = svc.Submit(context.Background(), leave.SubmitInput{
		UserID:    "4",
		LeaveType: hrms.LeavePersonal,
		StartDate: hrms.MustParseDate("2025-01-10"),
		EndDate:   hrms.MustParseDate("2025-01-10"),
		Reason:    "Appointment",
	})
	require.NoError(t, err)

	// THEN: Both are stored pending; only the first is flagged
	warnings := logs.FilterMessage("leave request exceeds remaining balance").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "r5", warnings[0].ContextMap()["request_id"])
}

func TestService_Submit_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	valid := leave.SubmitInput{
		UserID:    "4",
		LeaveType: hrms.LeaveSick,
		StartDate: hrms.MustParseDate("2025-01-10"),
		EndDate:   hrms.MustParseDate("2025-01-10"),
		Reason:    "Dentist",
	}

	tests := []struct {
		name   string
		mutate func(*leave.SubmitInput)
		is     error
	}{
		{"unknown type", func(in *leave.SubmitInput) { in.LeaveType = "sabbatical" }, hrms.ErrValidation},
		{"missing start", func(in *leave.SubmitInput) { in.StartDate = hrms.Date{} }, hrms.ErrValidation},
		{"end before start", func(in *leave.SubmitInput) { in.EndDate = hrms.MustParseDate("2025-01-09") }, hrms.ErrValidation},
		{"negative days", func(in *leave.SubmitInput) { in.NumDays = -1 }, hrms.ErrValidation},
		{"blank reason", func(in *leave.SubmitInput) { in.Reason = "  " }, hrms.ErrValidation},
		{"unknown user", func(in *leave.SubmitInput) { in.UserID = "99" }, hrms.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := svc.Submit(ctx, in)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestService_Approve_DecrementsBalance(t *testing.T) {
	// GIVEN: r1, Emily's pending 5-day annual request, 15 days left
	// WHEN: Robert approves it
	// THEN: r1 approved, balance 10 / used 10
	svc, store := newTestService(t)
	ctx := context.Background()

	approved, err := svc.Approve(ctx, "r1", "3", "ok")
	require.NoError(t, err)

	assert.Equal(t, hrms.LeaveApproved, approved.Status)
	assert.Equal(t, "ok", approved.ManagerComment)
	assert.Equal(t, "3", approved.ManagerID)
	require.NotNil(t, approved.ReviewedAt)
	assert.Equal(t, now, *approved.ReviewedAt)

	b := balanceOf(t, store, "4", hrms.LeaveAnnual)
	assert.Equal(t, 10, b.Balance)
	assert.Equal(t, 10, b.Used)
	assert.True(t, b.Consistent())
}

func TestService_SecondReview_AlreadyReviewed(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Approve(ctx, "r1", "3", "ok")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, "r1", "3", "")
	assert.ErrorIs(t, err, hrms.ErrAlreadyReviewed)

	_, err = svc.Approve(ctx, "r1", "3", "again")
	assert.ErrorIs(t, err, hrms.ErrAlreadyReviewed)

	r1, err := svc.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, hrms.LeaveApproved, r1.Status)
	assert.Equal(t, "ok", r1.ManagerComment)
	assert.Equal(t, 10, balanceOf(t, store, "4", hrms.LeaveAnnual).Balance, "booked exactly once")
}

func TestService_Approve_InsufficientBalanceLeavesRequestPending(t *testing.T) {
	// GIVEN: a pending request larger than the remaining balance
	// WHEN: approving it
	// THEN: the whole update rolls back
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, leave.SubmitInput{
		UserID:    "4",
		LeaveType: hrms.LeavePersonal,
		StartDate: hrms.MustParseDate("2025-03-03"),
		EndDate:   hrms.MustParseDate("2025-03-07"),
		Reason:    "Moving house",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, "3", "")
	assert.ErrorIs(t, err, hrms.ErrInsufficientBalance)

	r, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, hrms.LeavePending, r.Status)
	assert.Equal(t, 3, balanceOf(t, store, "4", hrms.LeavePersonal).Balance)
}

func TestService_Approve_UntrackedLeaveType(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, leave.SubmitInput{
		UserID:    "5",
		LeaveType: hrms.LeavePaternity,
		StartDate: hrms.MustParseDate("2025-04-01"),
		EndDate:   hrms.MustParseDate("2025-04-14"),
		Reason:    "Newborn",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID, "6", "Congratulations!")
	require.NoError(t, err)
	assert.Equal(t, hrms.LeaveApproved, approved.Status)

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, -1, hrms.FindBalance(snap.LeaveBalances, "5", hrms.LeavePaternity))
}

func TestService_Reject_LeavesBalance(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	rejected, err := svc.Reject(ctx, "r3", "3", "")
	require.NoError(t, err)
	assert.Equal(t, hrms.LeaveRejected, rejected.Status)
	assert.Equal(t, leave.DefaultRejectComment, rejected.ManagerComment)
	assert.Equal(t, 6, balanceOf(t, store, "8", hrms.LeaveSick).Balance)
}

func TestService_UnknownRequest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Approve(ctx, "r9", "3", "")
	assert.ErrorIs(t, err, hrms.ErrNotFound)
	_, err = svc.Get(ctx, "r9")
	assert.ErrorIs(t, err, hrms.ErrNotFound)
}

func TestService_ListRefreshesNames(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, func(s *hrms.Snapshot) error {
		s.Users[3].LastName = "Davis-Wright"
		return nil
	}))

	list, err := svc.List(ctx, hrms.LeaveFilter{Query: "wright"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r1", list[0].ID)
	assert.Equal(t, "Emily Davis-Wright", list[0].UserName)
}

func TestService_BalancesAndCounts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	balances, err := svc.Balances(ctx, "4")
	require.NoError(t, err)
	assert.Len(t, balances, 3)

	_, err = svc.Balances(ctx, "99")
	assert.ErrorIs(t, err, hrms.ErrNotFound)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Pending)
}

type failingStore struct{ hrms.Store }

func (failingStore) Update(context.Context, func(*hrms.Snapshot) error) error {
	return errors.New("store unavailable")
}

func TestService_StoreFailure(t *testing.T) {
	svc := leave.NewService(failingStore{memory.New(seed.Demo())}, zap.NewNop())

	_, err := svc.Approve(context.Background(), "r1", "3", "")
	assert.EqualError(t, err, "store unavailable")
}
