/*
store.go - State container interface

PURPOSE:
  The single source of truth for every collection. Consumers get a Store
  injected through their constructor; nothing reads or writes ambient
  global state.

UPDATE CONTRACT:
  Update(ctx, fn) hands fn a private copy of the current Snapshot. fn
  replaces whole collections (the leave reducer returns new slices) and
  the store commits the copy only when fn returns nil. Any error leaves
  the store untouched, so an approval that fails the balance check never
  leaves a half-approved request behind.

  Load returns a copy. Mutating it has no effect on the store.

IMPLEMENTATIONS:
  - store/memory: Mutex-guarded snapshot
  - store/sqlite: In-memory SQLite database, one SQL transaction per Update

SEE ALSO:
  - leave/service.go: Runs reducer + bookkeeping inside one Update
  - seed/seed.go: Initial Snapshot
*/
package hrms

import (
	"context"
	"fmt"
	"strings"
)

// =============================================================================
// SNAPSHOT - Every collection at one point in time
// =============================================================================

type Snapshot struct {
	Users         []User
	LeaveRequests []LeaveRequest
	LeaveBalances []LeaveBalance
	Departments   []Department
	Payroll       []PayrollEntry
	Notifications []Notification
}

// Clone copies every collection so the result shares no backing arrays with s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Users:         append([]User(nil), s.Users...),
		LeaveRequests: append([]LeaveRequest(nil), s.LeaveRequests...),
		LeaveBalances: append([]LeaveBalance(nil), s.LeaveBalances...),
		Departments:   append([]Department(nil), s.Departments...),
		Payroll:       append([]PayrollEntry(nil), s.Payroll...),
		Notifications: append([]Notification(nil), s.Notifications...),
	}
}

// Validate checks the invariants a store must never commit a violation of:
// unique ids per collection, at most one balance per (user, leave type),
// balance + used == total, startDate <= endDate.
func (s Snapshot) Validate() error {
	seen := make(map[string]bool, len(s.Users))
	for _, u := range s.Users {
		if seen[u.ID] {
			return fmt.Errorf("user %q: %w", u.ID, ErrDuplicate)
		}
		seen[u.ID] = true
	}

	seen = make(map[string]bool, len(s.LeaveRequests))
	for _, r := range s.LeaveRequests {
		if seen[r.ID] {
			return fmt.Errorf("leave request %q: %w", r.ID, ErrDuplicate)
		}
		seen[r.ID] = true
		if !r.Status.Valid() {
			return fmt.Errorf("leave request %q: %w", r.ID, Invalid("status", fmt.Sprintf("unknown status %q", r.Status)))
		}
		if r.EndDate.Before(r.StartDate) {
			return fmt.Errorf("leave request %q: %w", r.ID, Invalid("endDate", "before startDate"))
		}
	}

	type balanceKey struct {
		userID    string
		leaveType LeaveType
	}
	keys := make(map[balanceKey]bool, len(s.LeaveBalances))
	for _, b := range s.LeaveBalances {
		k := balanceKey{b.UserID, b.LeaveType}
		if keys[k] {
			return fmt.Errorf("balance %s/%s: %w", b.UserID, b.LeaveType, ErrDuplicate)
		}
		keys[k] = true
		if !b.Consistent() {
			return fmt.Errorf("balance %s/%s: %w", b.UserID, b.LeaveType,
				Invalid("balance", fmt.Sprintf("%d + %d != %d", b.Balance, b.Used, b.Total)))
		}
	}

	seen = make(map[string]bool, len(s.Departments))
	names := make(map[string]bool, len(s.Departments))
	for _, d := range s.Departments {
		if seen[d.ID] {
			return fmt.Errorf("department %q: %w", d.ID, ErrDuplicate)
		}
		seen[d.ID] = true
		name := strings.ToLower(d.Name)
		if names[name] {
			return fmt.Errorf("department name %q: %w", d.Name, ErrDuplicate)
		}
		names[name] = true
	}
	return nil
}

// =============================================================================
// STORE
// =============================================================================

type Store interface {
	// Load returns a copy of the current state.
	Load(ctx context.Context) (Snapshot, error)

	// Update applies fn to a copy of the current state and commits it when fn
	// returns nil. The committed state is validated first.
	Update(ctx context.Context, fn func(*Snapshot) error) error

	// Reset replaces the whole state.
	Reset(ctx context.Context, s Snapshot) error
}

// =============================================================================
// LOOKUPS
// =============================================================================

// FindUser returns the user with id, or nil.
func FindUser(users []User, id string) *User {
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u
		}
	}
	return nil
}

// FindLeaveRequest returns the index of the request with id, or -1.
func FindLeaveRequest(requests []LeaveRequest, id string) int {
	for i := range requests {
		if requests[i].ID == id {
			return i
		}
	}
	return -1
}

// FindBalance returns the index of the (userID, leaveType) balance, or -1.
func FindBalance(balances []LeaveBalance, userID string, leaveType LeaveType) int {
	for i := range balances {
		if balances[i].UserID == userID && balances[i].LeaveType == leaveType {
			return i
		}
	}
	return -1
}

// BalancesFor returns the user's balances in collection order.
func BalancesFor(balances []LeaveBalance, userID string) []LeaveBalance {
	out := []LeaveBalance{}
	for _, b := range balances {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}
