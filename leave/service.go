package leave

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// =============================================================================
// SERVICE - Runs the reducer against the store
// =============================================================================

// Service owns every leave mutation. Each call is one Store.Update, so the
// request transition and the balance bookkeeping commit together or not at all.
type Service struct {
	store  hrms.Store
	logger *zap.Logger

	// Now is the clock used for requestedAt and reviewedAt.
	Now func() time.Time
	// NewID generates leave request ids.
	NewID func() string
}

func NewService(store hrms.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		Now:    func() time.Time { return time.Now().UTC() },
		NewID:  uuid.NewString,
	}
}

// SubmitInput is an application for leave on behalf of UserID.
type SubmitInput struct {
	UserID    string
	LeaveType hrms.LeaveType
	StartDate hrms.Date
	EndDate   hrms.Date
	NumDays   int // 0 = inclusive span of StartDate..EndDate
	Reason    string
}

func (in SubmitInput) validate() error {
	switch {
	case !in.LeaveType.Valid():
		return hrms.Invalid("leaveType", "must be one of annual, sick, personal, maternity, paternity")
	case in.StartDate.IsZero():
		return hrms.Invalid("startDate", "is required")
	case in.EndDate.IsZero():
		return hrms.Invalid("endDate", "is required")
	case in.EndDate.Before(in.StartDate):
		return hrms.Invalid("endDate", "must not be before startDate")
	case in.NumDays < 0:
		return hrms.Invalid("numDays", "must be positive")
	case strings.TrimSpace(in.Reason) == "":
		return hrms.Invalid("reason", "is required")
	}
	return nil
}

// Submit creates a pending leave request.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*hrms.LeaveRequest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	numDays := in.NumDays
	if numDays == 0 {
		numDays = hrms.InclusiveDays(in.StartDate, in.EndDate)
	}

	var (
		created hrms.LeaveRequest
		covered bool
	)
	err := s.store.Update(ctx, func(snap *hrms.Snapshot) error {
		user := hrms.FindUser(snap.Users, in.UserID)
		if user == nil {
			return &hrms.NotFoundError{Kind: "user", ID: in.UserID}
		}
		created = hrms.LeaveRequest{
			ID:          s.NewID(),
			UserID:      user.ID,
			UserName:    user.FullName(),
			LeaveType:   in.LeaveType,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			NumDays:     numDays,
			Reason:      strings.TrimSpace(in.Reason),
			Status:      hrms.LeavePending,
			RequestedAt: s.Now(),
		}
		snap.LeaveRequests = append(append([]hrms.LeaveRequest(nil), snap.LeaveRequests...), created)
		covered = CanCover(snap.LeaveBalances, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("leave request submitted",
		zap.String("request_id", created.ID),
		zap.String("user_id", created.UserID),
		zap.String("leave_type", string(created.LeaveType)),
		zap.Int("num_days", created.NumDays),
	)
	// Approval will fail unless the balance changes first.
	if !covered {
		s.logger.Warn("leave request exceeds remaining balance",
			zap.String("request_id", created.ID),
			zap.String("user_id", created.UserID),
			zap.String("leave_type", string(created.LeaveType)),
		)
	}
	return &created, nil
}

// Approve approves a pending request and books it against the balance.
func (s *Service) Approve(ctx context.Context, id, reviewerID, comment string) (*hrms.LeaveRequest, error) {
	return s.review(ctx, id, hrms.LeaveApproved, Review{ReviewerID: reviewerID, Comment: comment})
}

// Reject rejects a pending request. Balances are not touched.
func (s *Service) Reject(ctx context.Context, id, reviewerID, comment string) (*hrms.LeaveRequest, error) {
	return s.review(ctx, id, hrms.LeaveRejected, Review{ReviewerID: reviewerID, Comment: comment})
}

func (s *Service) review(ctx context.Context, id string, to hrms.LeaveStatus, r Review) (*hrms.LeaveRequest, error) {
	r.At = s.Now()

	var (
		reviewed hrms.LeaveRequest
		tracked  bool
	)
	err := s.store.Update(ctx, func(snap *hrms.Snapshot) error {
		var (
			requests []hrms.LeaveRequest
			err      error
		)
		if to == hrms.LeaveApproved {
			requests, err = Approve(snap.LeaveRequests, id, r)
		} else {
			requests, err = Reject(snap.LeaveRequests, id, r)
		}
		if err != nil {
			return err
		}
		reviewed = requests[hrms.FindLeaveRequest(requests, id)]

		if to == hrms.LeaveApproved {
			balances, ok, err := ApplyApproval(snap.LeaveBalances, reviewed)
			if err != nil {
				return err
			}
			snap.LeaveBalances = balances
			tracked = ok
		}
		snap.LeaveRequests = requests
		return nil
	})
	if err != nil {
		fields := []zap.Field{zap.String("request_id", id), zap.String("decision", string(to)), zap.Error(err)}
		if hrms.IsClientError(err) {
			s.logger.Info("leave review refused", fields...)
		} else {
			s.logger.Error("leave review failed", fields...)
		}
		return nil, err
	}

	if to == hrms.LeaveApproved && !tracked {
		s.logger.Warn("approved leave type has no balance record",
			zap.String("request_id", reviewed.ID),
			zap.String("leave_type", string(reviewed.LeaveType)),
		)
	}
	s.logger.Info("leave request reviewed",
		zap.String("request_id", reviewed.ID),
		zap.String("decision", string(reviewed.Status)),
		zap.String("reviewer_id", reviewed.ManagerID),
	)
	return &reviewed, nil
}

// List returns requests matching f, with requester names resynced.
func (s *Service) List(ctx context.Context, f hrms.LeaveFilter) ([]hrms.LeaveRequest, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	requests := hrms.RefreshUserNames(snap.LeaveRequests, snap.Users)
	return hrms.FilterLeaveRequests(requests, f), nil
}

// Get returns one request.
func (s *Service) Get(ctx context.Context, id string) (*hrms.LeaveRequest, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := hrms.FindLeaveRequest(snap.LeaveRequests, id)
	if i < 0 {
		return nil, &hrms.NotFoundError{Kind: "leave request", ID: id}
	}
	r := hrms.RefreshUserNames(snap.LeaveRequests[i:i+1], snap.Users)[0]
	return &r, nil
}

// Counts returns status counts over the whole collection.
func (s *Service) Counts(ctx context.Context) (hrms.LeaveCounts, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return hrms.LeaveCounts{}, err
	}
	return hrms.CountLeaves(snap.LeaveRequests), nil
}

// Balances returns the user's leave balances.
func (s *Service) Balances(ctx context.Context, userID string) ([]hrms.LeaveBalance, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if hrms.FindUser(snap.Users, userID) == nil {
		return nil, &hrms.NotFoundError{Kind: "user", ID: userID}
	}
	return hrms.BalancesFor(snap.LeaveBalances, userID), nil
}
