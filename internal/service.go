package internal

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voyagio/sellerwallet/internal/model"
)

// MinWithdrawalAmount is the smallest request accepted, in smallest
// currency units.
const MinWithdrawalAmount = 1000

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Reasons reported by the withdrawal precondition checks. All failing
// checks are reported together so the seller can fix everything at once.
const (
	ReasonBelowMinimum     = "amount is below the minimum withdrawal of 1000"
	ReasonUnknownAccount   = "bank account does not exist or belongs to another seller"
	ReasonNotEnoughBalance = "amount exceeds the available balance"
	ReasonPendingExists    = "another withdrawal request is still pending"
)

type IService interface {
	GetBalance(context.Context, int64) (int64, error)

	CreateBankAccount(context.Context, int64, model.BankAccountInput) (model.BankAccount, error)
	ListBankAccounts(context.Context, int64) ([]model.BankAccountOutput, error)
	SetDefaultBankAccount(ctx context.Context, ownerID, accountID int64) error
	DeleteBankAccount(ctx context.Context, ownerID, accountID int64) error

	ValidateWithdrawal(ctx context.Context, ownerID, amount, accountID int64) (model.ValidationResult, error)
	CanCreateWithdrawal(context.Context, int64) (bool, error)
	CreateWithdrawal(ctx context.Context, ownerID, amount, accountID int64) (model.Withdrawal, error)
	CancelWithdrawal(ctx context.Context, ownerID, requestID int64, reason string) (model.Withdrawal, error)
	DecideWithdrawal(ctx context.Context, requestID int64, approve bool, netAmount int64, reason string) (model.Withdrawal, error)
	ListWithdrawals(ctx context.Context, ownerID int64, status string, page, pageSize int) (model.WithdrawalList, error)
	ListPendingWithdrawals(context.Context) ([]model.Withdrawal, error)

	GetStatistics(ctx context.Context, ownerID int64, from, to *time.Time) (model.WithdrawalStatistics, error)
}

func NewService(repository IRepository, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: repository, logger: logger}
}

type Service struct {
	Repository IRepository
	logger     *zap.SugaredLogger
}

func (s Service) GetBalance(ctx context.Context, ownerID int64) (int64, error) {
	return s.Repository.GetBalance(ctx, ownerID)
}

func (s Service) CreateBankAccount(ctx context.Context, ownerID int64, in model.BankAccountInput) (model.BankAccount, error) {
	var reasons []string
	if strings.TrimSpace(in.BankName) == "" {
		reasons = append(reasons, "bank name is required")
	}
	if strings.TrimSpace(in.AccountNumber) == "" {
		reasons = append(reasons, "account number is required")
	}
	if strings.TrimSpace(in.HolderName) == "" {
		reasons = append(reasons, "account holder name is required")
	}
	if len(reasons) > 0 {
		return model.BankAccount{}, NewValidationError(reasons...)
	}

	return s.Repository.CreateBankAccount(ctx, ownerID, in)
}

func (s Service) ListBankAccounts(ctx context.Context, ownerID int64) ([]model.BankAccountOutput, error) {
	accounts, err := s.Repository.ListBankAccounts(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	outputs := make([]model.BankAccountOutput, 0, len(accounts))
	for _, a := range accounts {
		outputs = append(outputs, a.Output())
	}
	return outputs, nil
}

func (s Service) SetDefaultBankAccount(ctx context.Context, ownerID, accountID int64) error {
	return s.Repository.SetDefaultBankAccount(ctx, ownerID, accountID)
}

func (s Service) DeleteBankAccount(ctx context.Context, ownerID, accountID int64) error {
	return s.Repository.DeleteBankAccount(ctx, ownerID, accountID)
}

// RunWithdrawalChecks is the pure precondition pipeline. It accumulates
// every failed check in order instead of stopping at the first, and
// mutates nothing, so it is safe to run speculatively.
func RunWithdrawalChecks(amount int64, accountOwned bool, balance int64, pendingCount int) []string {
	var reasons []string

	if amount < MinWithdrawalAmount {
		reasons = append(reasons, ReasonBelowMinimum)
	}
	if !accountOwned {
		reasons = append(reasons, ReasonUnknownAccount)
	}
	if balance < amount {
		reasons = append(reasons, ReasonNotEnoughBalance)
	}
	if pendingCount > 0 {
		reasons = append(reasons, ReasonPendingExists)
	}

	return reasons
}

func (s Service) withdrawalChecks(ctx context.Context, ownerID, amount, accountID int64) ([]string, error) {
	owned := true
	_, err := s.Repository.GetBankAccount(ctx, ownerID, accountID)
	if errors.Is(err, ErrNotFound) {
		owned = false
	} else if err != nil {
		return nil, err
	}

	balance, err := s.Repository.GetBalance(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pending, err := s.Repository.CountPendingWithdrawals(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return RunWithdrawalChecks(amount, owned, balance, pending), nil
}

func (s Service) ValidateWithdrawal(ctx context.Context, ownerID, amount, accountID int64) (model.ValidationResult, error) {
	reasons, err := s.withdrawalChecks(ctx, ownerID, amount, accountID)
	if err != nil {
		return model.ValidationResult{}, err
	}

	return model.ValidationResult{Valid: len(reasons) == 0, Errors: reasons}, nil
}

// CanCreateWithdrawal reads the same pending counter CreateWithdrawal
// re-checks inside its transaction, so the UI cannot be told "yes" from
// a source the mutation would disagree with.
func (s Service) CanCreateWithdrawal(ctx context.Context, ownerID int64) (bool, error) {
	pending, err := s.Repository.CountPendingWithdrawals(ctx, ownerID)
	if err != nil {
		return false, err
	}

	return pending == 0, nil
}

// CreateWithdrawal trusts nothing from the caller: the precondition
// pipeline runs again here, and the repository re-checks balance and the
// pending guard once more under the wallet lock at commit time.
func (s Service) CreateWithdrawal(ctx context.Context, ownerID, amount, accountID int64) (model.Withdrawal, error) {
	reasons, err := s.withdrawalChecks(ctx, ownerID, amount, accountID)
	if err != nil {
		return model.Withdrawal{}, err
	}
	if len(reasons) > 0 {
		return model.Withdrawal{}, NewValidationError(reasons...)
	}

	w, err := s.Repository.CreateWithdrawal(ctx, ownerID, accountID, amount)
	if errors.Is(err, ErrPendingExists) {
		// lost the race to a concurrent create
		return model.Withdrawal{}, NewValidationError(ReasonPendingExists)
	}
	if err != nil {
		return model.Withdrawal{}, err
	}

	s.logger.Infow("withdrawal requested", "owner", ownerID, "request", w.ID, "amount", amount)
	return w, nil
}

func (s Service) CancelWithdrawal(ctx context.Context, ownerID, requestID int64, reason string) (model.Withdrawal, error) {
	if strings.TrimSpace(reason) == "" {
		return model.Withdrawal{}, ErrReasonRequired
	}

	return s.Repository.CancelWithdrawal(ctx, ownerID, requestID, reason)
}

// DecideWithdrawal is called on behalf of the administrative actor. The
// net amount comes from the ledger side; it is stored, never computed here.
func (s Service) DecideWithdrawal(ctx context.Context, requestID int64, approve bool, netAmount int64, reason string) (model.Withdrawal, error) {
	if approve && netAmount <= 0 {
		return model.Withdrawal{}, ErrNetAmountRequired
	}
	if !approve && strings.TrimSpace(reason) == "" {
		return model.Withdrawal{}, ErrReasonRequired
	}

	w, err := s.Repository.DecideWithdrawal(ctx, requestID, approve, netAmount, reason)
	if err != nil {
		return model.Withdrawal{}, err
	}

	s.logger.Infow("withdrawal decided", "request", w.ID, "status", w.Status)
	return w, nil
}

func (s Service) ListWithdrawals(ctx context.Context, ownerID int64, status string, page, pageSize int) (model.WithdrawalList, error) {
	if status != "" {
		status = strings.ToUpper(status)
		if !model.KnownWithdrawalStatus(status) {
			return model.WithdrawalList{}, ErrUnknownStatus
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	items, total, err := s.Repository.ListWithdrawals(ctx, ownerID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return model.WithdrawalList{}, err
	}

	return model.WithdrawalList{Items: items, TotalCount: total}, nil
}

func (s Service) ListPendingWithdrawals(ctx context.Context) ([]model.Withdrawal, error) {
	return s.Repository.ListPendingWithdrawals(ctx)
}

// GetStatistics refolds the authoritative request list on every call;
// nothing is cached, so observed status changes are always reflected.
func (s Service) GetStatistics(ctx context.Context, ownerID int64, from, to *time.Time) (model.WithdrawalStatistics, error) {
	requests, err := s.Repository.ListWithdrawalsBetween(ctx, ownerID, from, to)
	if err != nil {
		return model.WithdrawalStatistics{}, err
	}

	return model.Aggregate(requests), nil
}
