package model

import (
	"strings"
	"time"
)

// BankAccount is a payout destination registered by a seller.
// AccountNumber is stored raw and must be masked for display.
type BankAccount struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"ownerId"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	HolderName    string    `json:"holderName"`
	IsDefault     bool      `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BankAccountInput struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	HolderName    string `json:"holderName"`
}

type BankAccountOutput struct {
	ID            int64     `json:"id"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber,omitempty"`
	MaskedNumber  string    `json:"maskedNumber"`
	HolderName    string    `json:"holderName"`
	IsDefault     bool      `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Output renders the account for its owner: the raw number is included
// next to the masked one. For anyone else use MaskedOutput.
func (a BankAccount) Output() BankAccountOutput {
	return BankAccountOutput{
		ID:            a.ID,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		MaskedNumber:  MaskAccountNumber(a.AccountNumber),
		HolderName:    a.HolderName,
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
	}
}

func (a BankAccount) MaskedOutput() BankAccountOutput {
	o := a.Output()
	o.AccountNumber = ""
	return o
}

// MaskAccountNumber keeps the first 2 and last 4 characters and replaces
// the interior with '*'. Numbers of 4 characters or fewer are returned
// unchanged: there is nothing left to hide behind.
func MaskAccountNumber(s string) string {
	if len(s) <= 4 {
		return s
	}
	interior := len(s) - 6
	if interior <= 0 {
		// first 2 and last 4 already cover the whole string
		return s
	}
	return s[:2] + strings.Repeat("*", interior) + s[len(s)-4:]
}
