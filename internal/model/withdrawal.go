package model

import "time"

const (
	WithdrawalStatusPending   = "PENDING"
	WithdrawalStatusApproved  = "APPROVED"
	WithdrawalStatusRejected  = "REJECTED"
	WithdrawalStatusCancelled = "CANCELLED"
)

// Withdrawal is a request by a seller to pay out part of the wallet
// balance to one of their bank accounts. NetAmount is the amount after
// commission, fixed by the ledger side at approval time; Reason holds
// the cancellation or rejection reason.
type Withdrawal struct {
	ID            int64      `json:"id"`
	OwnerID       int64      `json:"ownerId"`
	BankAccountID int64      `json:"bankAccountId"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"status"`
	NetAmount     *int64     `json:"netAmount,omitempty"`
	Reason        *string    `json:"reason,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
}

type WithdrawalInput struct {
	Amount        int64 `json:"amount"`
	BankAccountID int64 `json:"bankAccountId"`
}

type WithdrawalList struct {
	Items      []Withdrawal `json:"items"`
	TotalCount int          `json:"totalCount"`
}

// ValidationResult is the outcome of the speculative pre-check: every
// failed precondition is listed so the UI can show them all at once.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func KnownWithdrawalStatus(s string) bool {
	switch s {
	case WithdrawalStatusPending, WithdrawalStatusApproved,
		WithdrawalStatusRejected, WithdrawalStatusCancelled:
		return true
	}
	return false
}
