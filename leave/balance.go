package leave

import "github.com/NikitaKarmakarP/rolewise-zenith/hrms"

// ApplyApproval books an approved request against its (user, leave type)
// balance: balance -= NumDays, used += NumDays, in a new slice.
//
// A pair with no balance record is an untracked leave type; the balances are
// returned unchanged with tracked == false. A balance smaller than NumDays
// yields *hrms.InsufficientBalanceError and the input unchanged.
func ApplyApproval(balances []hrms.LeaveBalance, req hrms.LeaveRequest) (out []hrms.LeaveBalance, tracked bool, err error) {
	i := hrms.FindBalance(balances, req.UserID, req.LeaveType)
	if i < 0 {
		return balances, false, nil
	}
	b := balances[i]
	if b.Balance < req.NumDays {
		return balances, true, &hrms.InsufficientBalanceError{
			UserID:    req.UserID,
			LeaveType: req.LeaveType,
			Available: b.Balance,
			Requested: req.NumDays,
		}
	}

	b.Balance -= req.NumDays
	b.Used += req.NumDays

	out = make([]hrms.LeaveBalance, len(balances))
	copy(out, balances)
	out[i] = b
	return out, true, nil
}

// CanCover reports whether the request fits the user's remaining balance.
// Untracked leave types always fit.
func CanCover(balances []hrms.LeaveBalance, req hrms.LeaveRequest) bool {
	i := hrms.FindBalance(balances, req.UserID, req.LeaveType)
	return i < 0 || balances[i].Balance >= req.NumDays
}
