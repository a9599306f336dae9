package model

// WithdrawalStatistics is derived from the request list on every call,
// never maintained incrementally. Cancelled requests count toward the
// total but stay out of the three headline counters.
type WithdrawalStatistics struct {
	TotalWithdrawals     int   `json:"totalWithdrawals"`
	PendingWithdrawals   int   `json:"pendingWithdrawals"`
	ApprovedWithdrawals  int   `json:"approvedWithdrawals"`
	RejectedWithdrawals  int   `json:"rejectedWithdrawals"`
	CancelledWithdrawals int   `json:"cancelledWithdrawals"`
	TotalWithdrawnAmount int64 `json:"totalWithdrawnAmount"`
	PendingAmount        int64 `json:"pendingAmount"`
}

// Aggregate folds the request list into statistics. TotalWithdrawnAmount
// sums net amounts, not gross: commission is deducted on approval.
func Aggregate(requests []Withdrawal) WithdrawalStatistics {
	var s WithdrawalStatistics
	for _, w := range requests {
		s.TotalWithdrawals++
		switch w.Status {
		case WithdrawalStatusPending:
			s.PendingWithdrawals++
			s.PendingAmount += w.Amount
		case WithdrawalStatusApproved:
			s.ApprovedWithdrawals++
			if w.NetAmount != nil {
				s.TotalWithdrawnAmount += *w.NetAmount
			}
		case WithdrawalStatusRejected:
			s.RejectedWithdrawals++
		case WithdrawalStatusCancelled:
			s.CancelledWithdrawals++
		}
	}
	return s
}
