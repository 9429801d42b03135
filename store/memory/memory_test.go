package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
	"github.com/NikitaKarmakarP/rolewise-zenith/seed"
	"github.com/NikitaKarmakarP/rolewise-zenith/store/memory"
)

func TestStore_LoadReturnsCopy(t *testing.T) {
	store := memory.New(seed.Demo())
	ctx := context.Background()

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	snap.Users[0].FirstName = "Changed"

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sarah", again.Users[0].FirstName)
}

func TestStore_UpdateCommits(t *testing.T) {
	store := memory.New(seed.Demo())
	ctx := context.Background()

	err := store.Update(ctx, func(s *hrms.Snapshot) error {
		s.Departments = s.Departments[:4]
		return nil
	})
	require.NoError(t, err)

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Departments, 4)
}

func TestStore_UpdateRollsBackOnError(t *testing.T) {
	store := memory.New(seed.Demo())
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Update(ctx, func(s *hrms.Snapshot) error {
		s.LeaveRequests[0].Status = hrms.LeaveApproved
		return boom
	})
	assert.ErrorIs(t, err, boom)

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, hrms.LeavePending, snap.LeaveRequests[0].Status)
}

func TestStore_UpdateRejectsInvalidState(t *testing.T) {
	store := memory.New(seed.Demo())
	ctx := context.Background()

	err := store.Update(ctx, func(s *hrms.Snapshot) error {
		s.LeaveBalances[0].Balance = -1
		return nil
	})
	assert.ErrorIs(t, err, hrms.ErrValidation)

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, snap.LeaveBalances[0].Balance)
}

func TestStore_Reset(t *testing.T) {
	store := memory.New(seed.Demo())
	ctx := context.Background()

	require.NoError(t, store.Reset(ctx, seed.Empty()))
	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Len(t, snap.Departments, 5)

	bad := seed.Demo()
	bad.Users = append(bad.Users, bad.Users[0])
	assert.ErrorIs(t, store.Reset(ctx, bad), hrms.ErrDuplicate)
}

func TestStore_CancelledContext(t *testing.T) {
	store := memory.New(seed.Demo())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Update(ctx, func(*hrms.Snapshot) error { return nil }), context.Canceled)
}

func TestStore_ConcurrentUpdatesSerialize(t *testing.T) {
	// GIVEN: 50 goroutines each appending one notification
	// THEN: none is lost
	store := memory.New(seed.Empty())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.Update(ctx, func(s *hrms.Snapshot) error {
				s.Notifications = append(s.Notifications, hrms.Notification{
					ID:   string(rune('A' + i)),
					Type: hrms.NotifySystem,
				})
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Notifications, 50)
}
