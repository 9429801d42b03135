/*
Package sqlite provides an hrms.Store backed by an in-memory SQLite database.

PURPOSE:
  Same contract as store/memory, but every collection lives in a SQL
  table and every Update runs inside one SQL transaction. The database
  is always opened in memory: state lasts as long as the process.

KEY TABLES:
  users:          Employee records
  leave_requests: Leave lifecycle, reviewed_at NULL while pending
  leave_balances: PRIMARY KEY (user_id, leave_type), CHECK balance + used = total
  departments:    name UNIQUE COLLATE NOCASE
  payroll:        Decimal amounts stored as TEXT
  notifications:  Static feed

Every table carries a pos column so collections load back in the order
they were written.

UPDATE:
  1. BEGIN
  2. Load all tables into a Snapshot (inside the tx)
  3. Run fn, then Snapshot.Validate
  4. Rewrite all tables from the Snapshot
  5. COMMIT (any error above rolls back)

CONCURRENCY:
  One connection (each :memory: connection is its own database) plus a
  sync.RWMutex serializing writers.

USAGE:
  store, err := sqlite.New()
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
  store.Reset(ctx, seed.Demo())

SEE ALSO:
  - hrms/store.go: Store interface and update contract
  - store/memory: In-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// Store implements hrms.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// New opens an empty in-memory database and creates the schema.
func New() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection. All state is lost.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		pos INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role TEXT NOT NULL,
		department TEXT NOT NULL,
		position TEXT NOT NULL,
		date_of_joining TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		manager_id TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS leave_requests (
		pos INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		leave_type TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		num_days INTEGER NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		manager_id TEXT NOT NULL DEFAULT '',
		manager_comment TEXT NOT NULL DEFAULT '',
		requested_at TEXT NOT NULL,
		reviewed_at TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_leave_requests_user
		ON leave_requests(user_id);
	CREATE INDEX IF NOT EXISTS idx_leave_requests_status
		ON leave_requests(status);

	CREATE TABLE IF NOT EXISTS leave_balances (
		pos INTEGER NOT NULL,
		user_id TEXT NOT NULL,
		leave_type TEXT NOT NULL,
		balance INTEGER NOT NULL,
		used INTEGER NOT NULL,
		total INTEGER NOT NULL,
		PRIMARY KEY (user_id, leave_type),
		CHECK (balance >= 0 AND balance + used = total)
	);

	CREATE TABLE IF NOT EXISTS departments (
		pos INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE,
		head_id TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS payroll (
		pos INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		employee_name TEXT NOT NULL,
		department TEXT NOT NULL,
		basic_salary TEXT NOT NULL,
		allowances TEXT NOT NULL,
		deductions TEXT NOT NULL,
		status TEXT NOT NULL,
		month TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		pos INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		time TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// STORE (hrms.Store interface)
// =============================================================================

// Load reads every table.
func (s *Store) Load(ctx context.Context) (hrms.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return loadSnapshot(ctx, s.db)
}

// Update runs fn over the current state inside one SQL transaction.
func (s *Store) Update(ctx context.Context, fn func(*hrms.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	snap, err := loadSnapshot(ctx, sqlTx)
	if err != nil {
		return err
	}
	if err := fn(&snap); err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return err
	}
	if err := writeSnapshot(ctx, sqlTx, snap); err != nil {
		return err
	}
	return sqlTx.Commit()
}

// Reset replaces every table with snap.
func (s *Store) Reset(ctx context.Context, snap hrms.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err := writeSnapshot(ctx, sqlTx, snap); err != nil {
		return err
	}
	return sqlTx.Commit()
}

var _ hrms.Store = (*Store)(nil)

// =============================================================================
// LOAD
// =============================================================================

func loadSnapshot(ctx context.Context, q querier) (hrms.Snapshot, error) {
	var (
		snap hrms.Snapshot
		err  error
	)
	if snap.Users, err = loadUsers(ctx, q); err != nil {
		return snap, err
	}
	if snap.LeaveRequests, err = loadLeaveRequests(ctx, q); err != nil {
		return snap, err
	}
	if snap.LeaveBalances, err = loadLeaveBalances(ctx, q); err != nil {
		return snap, err
	}
	if snap.Departments, err = loadDepartments(ctx, q); err != nil {
		return snap, err
	}
	if snap.Payroll, err = loadPayroll(ctx, q); err != nil {
		return snap, err
	}
	if snap.Notifications, err = loadNotifications(ctx, q); err != nil {
		return snap, err
	}
	return snap, nil
}

func loadUsers(ctx context.Context, q querier) ([]hrms.User, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, email, first_name, last_name, role, department, position,
		       date_of_joining, is_active, manager_id
		FROM users ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []hrms.User{}
	for rows.Next() {
		var (
			u      hrms.User
			joined string
		)
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
			&u.Department, &u.Position, &joined, &u.IsActive, &u.ManagerID); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if u.DateOfJoining, err = parseDate(joined); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func loadLeaveRequests(ctx context.Context, q querier) ([]hrms.LeaveRequest, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, user_id, user_name, leave_type, start_date, end_date, num_days,
		       reason, status, manager_id, manager_comment, requested_at, reviewed_at
		FROM leave_requests ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	requests := []hrms.LeaveRequest{}
	for rows.Next() {
		var (
			r                     hrms.LeaveRequest
			start, end, requested string
			reviewed              sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.UserID, &r.UserName, &r.LeaveType, &start, &end,
			&r.NumDays, &r.Reason, &r.Status, &r.ManagerID, &r.ManagerComment,
			&requested, &reviewed); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		if r.StartDate, err = parseDate(start); err != nil {
			return nil, err
		}
		if r.EndDate, err = parseDate(end); err != nil {
			return nil, err
		}
		if r.RequestedAt, err = parseTime(requested); err != nil {
			return nil, fmt.Errorf("leave request %s requested_at: %w", r.ID, err)
		}
		if reviewed.Valid {
			t, err := parseTime(reviewed.String)
			if err != nil {
				return nil, fmt.Errorf("leave request %s reviewed_at: %w", r.ID, err)
			}
			r.ReviewedAt = &t
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func loadLeaveBalances(ctx context.Context, q querier) ([]hrms.LeaveBalance, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT user_id, leave_type, balance, used, total
		FROM leave_balances ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave balances: %w", err)
	}
	defer rows.Close()

	balances := []hrms.LeaveBalance{}
	for rows.Next() {
		var b hrms.LeaveBalance
		if err := rows.Scan(&b.UserID, &b.LeaveType, &b.Balance, &b.Used, &b.Total); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func loadDepartments(ctx context.Context, q querier) ([]hrms.Department, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, head_id FROM departments ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := []hrms.Department{}
	for rows.Next() {
		var d hrms.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.HeadID); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func loadPayroll(ctx context.Context, q querier) ([]hrms.PayrollEntry, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, employee_id, employee_name, department, basic_salary,
		       allowances, deductions, status, month
		FROM payroll ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll: %w", err)
	}
	defer rows.Close()

	entries := []hrms.PayrollEntry{}
	for rows.Next() {
		var (
			p                              hrms.PayrollEntry
			basic, allowances, deductions string
		)
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.EmployeeName, &p.Department,
			&basic, &allowances, &deductions, &p.Status, &p.Month); err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		if p.BasicSalary, err = decimal.NewFromString(basic); err != nil {
			return nil, fmt.Errorf("payroll %s basic salary: %w", p.ID, err)
		}
		if p.Allowances, err = decimal.NewFromString(allowances); err != nil {
			return nil, fmt.Errorf("payroll %s allowances: %w", p.ID, err)
		}
		if p.Deductions, err = decimal.NewFromString(deductions); err != nil {
			return nil, fmt.Errorf("payroll %s deductions: %w", p.ID, err)
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

func loadNotifications(ctx context.Context, q querier) ([]hrms.Notification, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, type, title, message, time, read
		FROM notifications ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []hrms.Notification{}
	for rows.Next() {
		var n hrms.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.Time, &n.Read); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// =============================================================================
// WRITE
// =============================================================================

var tables = []string{"users", "leave_requests", "leave_balances", "departments", "payroll", "notifications"}

func writeSnapshot(ctx context.Context, q querier, snap hrms.Snapshot) error {
	for _, table := range tables {
		if _, err := q.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, u := range snap.Users {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO users
			(pos, id, email, first_name, last_name, role, department, position,
			 date_of_joining, is_active, manager_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, u.ID, u.Email, u.FirstName, u.LastName, string(u.Role), u.Department,
			u.Position, u.DateOfJoining.String(), u.IsActive, u.ManagerID,
		); err != nil {
			return insertError("user", u.ID, err)
		}
	}

	for i, r := range snap.LeaveRequests {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO leave_requests
			(pos, id, user_id, user_name, leave_type, start_date, end_date, num_days,
			 reason, status, manager_id, manager_comment, requested_at, reviewed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, r.ID, r.UserID, r.UserName, string(r.LeaveType), r.StartDate.String(),
			r.EndDate.String(), r.NumDays, r.Reason, string(r.Status), r.ManagerID,
			r.ManagerComment, r.RequestedAt.UTC().Format(time.RFC3339Nano), formatTime(r.ReviewedAt),
		); err != nil {
			return insertError("leave request", r.ID, err)
		}
	}

	for i, b := range snap.LeaveBalances {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO leave_balances (pos, user_id, leave_type, balance, used, total)
			VALUES (?, ?, ?, ?, ?, ?)`,
			i, b.UserID, string(b.LeaveType), b.Balance, b.Used, b.Total,
		); err != nil {
			return insertError("leave balance", b.UserID+"/"+string(b.LeaveType), err)
		}
	}

	for i, d := range snap.Departments {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO departments (pos, id, name, head_id) VALUES (?, ?, ?, ?)`,
			i, d.ID, d.Name, d.HeadID,
		); err != nil {
			return insertError("department", d.ID, err)
		}
	}

	for i, p := range snap.Payroll {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO payroll
			(pos, id, employee_id, employee_name, department, basic_salary,
			 allowances, deductions, status, month)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, p.ID, p.EmployeeID, p.EmployeeName, p.Department, p.BasicSalary.String(),
			p.Allowances.String(), p.Deductions.String(), string(p.Status), p.Month,
		); err != nil {
			return insertError("payroll entry", p.ID, err)
		}
	}

	for i, n := range snap.Notifications {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO notifications (pos, id, type, title, message, time, read)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, n.ID, string(n.Type), n.Title, n.Message, n.Time, n.Read,
		); err != nil {
			return insertError("notification", n.ID, err)
		}
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func parseDate(s string) (hrms.Date, error) {
	if s == "" {
		return hrms.Date{}, nil
	}
	return hrms.ParseDate(s)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

func formatTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

func insertError(kind, key string, err error) error {
	if isUniqueConstraintError(err) {
		return &hrms.DuplicateError{Kind: kind, Key: key}
	}
	return fmt.Errorf("failed to insert %s %s: %w", kind, key, err)
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
