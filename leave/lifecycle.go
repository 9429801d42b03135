/*
Package leave implements the leave-request lifecycle and balance bookkeeping.

PURPOSE:
  Pure state-transition functions over the leave-request collection, plus
  a Service that runs them against an injected hrms.Store.

STATE MACHINE:
  ┌─────────┐  Approve   ┌──────────┐
  │ pending │ ─────────▶ │ approved │  (terminal)
  │         │            └──────────┘
  │         │  Reject    ┌──────────┐
  │         │ ─────────▶ │ rejected │  (terminal)
  └─────────┘            └──────────┘

  Nothing leaves a terminal state. Reviewing a request that is not pending
  returns ErrAlreadyReviewed; reviewing an unknown id returns ErrNotFound.
  Either way the input collection comes back unchanged.

IMMUTABLE UPDATES:
  Approve and Reject never write into the slice they are given. On
  success they return a fresh slice of the same length in which only the
  reviewed element differs, so observers that compare by identity see
  every application.

SEE ALSO:
  - balance.go: Decrement on approval
  - service.go: Atomic reducer + bookkeeping via hrms.Store
*/
package leave

import (
	"time"

	"github.com/NikitaKarmakarP/rolewise-zenith/hrms"
)

// Default reviewer comments when none is supplied.
const (
	DefaultApproveComment = "Request approved."
	DefaultRejectComment  = "Request declined."
)

// Review is one reviewer decision's metadata.
type Review struct {
	ReviewerID string
	Comment    string
	At         time.Time
}

// Approve moves request id from pending to approved.
func Approve(requests []hrms.LeaveRequest, id string, r Review) ([]hrms.LeaveRequest, error) {
	return transition(requests, id, hrms.LeaveApproved, r, DefaultApproveComment)
}

// Reject moves request id from pending to rejected.
func Reject(requests []hrms.LeaveRequest, id string, r Review) ([]hrms.LeaveRequest, error) {
	return transition(requests, id, hrms.LeaveRejected, r, DefaultRejectComment)
}

func transition(
	requests []hrms.LeaveRequest,
	id string,
	to hrms.LeaveStatus,
	r Review,
	defaultComment string,
) ([]hrms.LeaveRequest, error) {
	i := hrms.FindLeaveRequest(requests, id)
	if i < 0 {
		return requests, &hrms.RequestError{ID: id, Err: hrms.ErrNotFound}
	}
	current := requests[i]
	if current.Status.Terminal() {
		return requests, &hrms.RequestError{ID: id, Status: current.Status, Err: hrms.ErrAlreadyReviewed}
	}

	comment := r.Comment
	if comment == "" {
		comment = defaultComment
	}
	at := r.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	current.Status = to
	current.ManagerComment = comment
	if r.ReviewerID != "" {
		current.ManagerID = r.ReviewerID
	}
	current.ReviewedAt = &at

	out := make([]hrms.LeaveRequest, len(requests))
	copy(out, requests)
	out[i] = current
	return out, nil
}
