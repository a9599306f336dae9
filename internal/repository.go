package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/voyagio/sellerwallet/internal/model"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const (
	accountFields    = "id, owner_id, bank_name, account_number, holder_name, is_default, created_at"
	withdrawalFields = "id, owner_id, bank_account_id, amount, status, net_amount, reason, created_at, decided_at"

	pgUniqueViolation = "23505"
)

type IRepository interface {
	GetBalance(context.Context, int64) (int64, error)

	CreateBankAccount(context.Context, int64, model.BankAccountInput) (model.BankAccount, error)
	GetBankAccount(ctx context.Context, ownerID, accountID int64) (model.BankAccount, error)
	ListBankAccounts(context.Context, int64) ([]model.BankAccount, error)
	SetDefaultBankAccount(ctx context.Context, ownerID, accountID int64) error
	DeleteBankAccount(ctx context.Context, ownerID, accountID int64) error

	CountPendingWithdrawals(context.Context, int64) (int, error)
	CreateWithdrawal(ctx context.Context, ownerID, accountID, amount int64) (model.Withdrawal, error)
	CancelWithdrawal(ctx context.Context, ownerID, requestID int64, reason string) (model.Withdrawal, error)
	DecideWithdrawal(ctx context.Context, requestID int64, approve bool, netAmount int64, reason string) (model.Withdrawal, error)
	ListWithdrawals(ctx context.Context, ownerID int64, status string, limit, offset int) ([]model.Withdrawal, int, error)
	ListPendingWithdrawals(context.Context) ([]model.Withdrawal, error)
	ListWithdrawalsBetween(ctx context.Context, ownerID int64, from, to *time.Time) ([]model.Withdrawal, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	err = db.PingContext(context.Background())
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(embedMigrations)
	err = goose.SetDialect("postgres")
	if err != nil {
		return nil, err
	}
	err = goose.Up(db, "migrations")
	if err != nil {
		return nil, err
	}
	logger.Info("migrations applied")

	return &Repository{Conn: db, Logger: logger}, nil
}

// GetBalance reads the wallet snapshot maintained by the revenue ledger.
// A missing wallet row means the seller has not earned anything yet.
func (r Repository) GetBalance(ctx context.Context, ownerID int64) (int64, error) {
	var balance int64

	row := r.Conn.QueryRowContext(ctx, "SELECT balance FROM wallets WHERE owner_id = $1", ownerID)
	err := row.Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return balance, nil
}

// CreateBankAccount inserts the account; the first account a seller
// registers becomes the default in the same statement.
func (r Repository) CreateBankAccount(ctx context.Context, ownerID int64, in model.BankAccountInput) (model.BankAccount, error) {
	a := model.BankAccount{
		OwnerID:       ownerID,
		BankName:      in.BankName,
		AccountNumber: in.AccountNumber,
		HolderName:    in.HolderName,
	}

	row := r.Conn.QueryRowContext(ctx, `INSERT INTO bank_accounts (owner_id, bank_name, account_number, holder_name, is_default)
		VALUES ($1, $2, $3, $4, NOT EXISTS (SELECT 1 FROM bank_accounts WHERE owner_id = $1))
		RETURNING id, is_default, created_at`, ownerID, in.BankName, in.AccountNumber, in.HolderName)
	err := row.Scan(&a.ID, &a.IsDefault, &a.CreatedAt)
	if err != nil {
		return model.BankAccount{}, err
	}

	return a, nil
}

func (r Repository) GetBankAccount(ctx context.Context, ownerID, accountID int64) (model.BankAccount, error) {
	var a model.BankAccount

	row := r.Conn.QueryRowContext(ctx, "SELECT "+accountFields+" FROM bank_accounts WHERE id = $1 AND owner_id = $2", accountID, ownerID)
	err := row.Scan(&a.ID, &a.OwnerID, &a.BankName, &a.AccountNumber, &a.HolderName, &a.IsDefault, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.BankAccount{}, ErrNotFound
	}
	if err != nil {
		return model.BankAccount{}, err
	}

	return a, nil
}

func (r Repository) ListBankAccounts(ctx context.Context, ownerID int64) ([]model.BankAccount, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+accountFields+" FROM bank_accounts WHERE owner_id = $1 ORDER BY is_default DESC, created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.BankAccount
	for rows.Next() {
		var a model.BankAccount
		err = rows.Scan(&a.ID, &a.OwnerID, &a.BankName, &a.AccountNumber, &a.HolderName, &a.IsDefault, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

// SetDefaultBankAccount clears the previous default and marks the target
// inside one transaction; a reader never sees two defaults.
func (r Repository) SetDefaultBankAccount(ctx context.Context, ownerID, accountID int64) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, "UPDATE bank_accounts SET is_default = FALSE WHERE owner_id = $1 AND is_default", ownerID)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, "UPDATE bank_accounts SET is_default = TRUE WHERE id = $1 AND owner_id = $2", accountID, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// DeleteBankAccount refuses to drop an account a pending withdrawal pays
// into. When the default account goes away and others remain, the newest
// one is promoted so the seller keeps exactly one default.
func (r Repository) DeleteBankAccount(ctx context.Context, ownerID, accountID int64) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var wasDefault bool
	row := tx.QueryRowContext(ctx, "SELECT is_default FROM bank_accounts WHERE id = $1 AND owner_id = $2 FOR UPDATE", accountID, ownerID)
	err = row.Scan(&wasDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var inUse bool
	row = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM withdrawal_requests WHERE bank_account_id = $1 AND status = $2)", accountID, model.WithdrawalStatusPending)
	err = row.Scan(&inUse)
	if err != nil {
		return err
	}
	if inUse {
		return ErrAccountInUse
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM bank_accounts WHERE id = $1", accountID)
	if err != nil {
		return err
	}

	if wasDefault {
		_, err = tx.ExecContext(ctx, `UPDATE bank_accounts SET is_default = TRUE
			WHERE id = (SELECT id FROM bank_accounts WHERE owner_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1)`, ownerID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r Repository) CountPendingWithdrawals(ctx context.Context, ownerID int64) (int, error) {
	var count int

	row := r.Conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM withdrawal_requests WHERE owner_id = $1 AND status = $2", ownerID, model.WithdrawalStatusPending)
	err := row.Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CreateWithdrawal re-checks every precondition under the wallet row lock:
// the balance snapshot the caller validated against may already be stale.
// The partial unique index on pending requests backstops the guard.
func (r Repository) CreateWithdrawal(ctx context.Context, ownerID, accountID, amount int64) (model.Withdrawal, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return model.Withdrawal{}, err
	}
	defer tx.Rollback()

	var balance int64
	row := tx.QueryRowContext(ctx, "SELECT balance FROM wallets WHERE owner_id = $1 FOR UPDATE", ownerID)
	err = row.Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Withdrawal{}, ErrInsufficientBalance
	}
	if err != nil {
		return model.Withdrawal{}, err
	}
	if balance < amount {
		return model.Withdrawal{}, ErrInsufficientBalance
	}

	var owned bool
	row = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM bank_accounts WHERE id = $1 AND owner_id = $2)", accountID, ownerID)
	err = row.Scan(&owned)
	if err != nil {
		return model.Withdrawal{}, err
	}
	if !owned {
		return model.Withdrawal{}, ErrNotFound
	}

	var pending int
	row = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM withdrawal_requests WHERE owner_id = $1 AND status = $2", ownerID, model.WithdrawalStatusPending)
	err = row.Scan(&pending)
	if err != nil {
		return model.Withdrawal{}, err
	}
	if pending > 0 {
		return model.Withdrawal{}, ErrPendingExists
	}

	w := model.Withdrawal{
		OwnerID:       ownerID,
		BankAccountID: accountID,
		Amount:        amount,
		Status:        model.WithdrawalStatusPending,
	}
	row = tx.QueryRowContext(ctx, `INSERT INTO withdrawal_requests (owner_id, bank_account_id, amount, status)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at`, ownerID, accountID, amount, model.WithdrawalStatusPending)
	err = row.Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return model.Withdrawal{}, ErrPendingExists
		}
		return model.Withdrawal{}, err
	}

	err = tx.Commit()
	if err != nil {
		return model.Withdrawal{}, err
	}
	return w, nil
}

func (r Repository) CancelWithdrawal(ctx context.Context, ownerID, requestID int64, reason string) (model.Withdrawal, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return model.Withdrawal{}, err
	}
	defer tx.Rollback()

	w, err := scanWithdrawal(tx.QueryRowContext(ctx, "SELECT "+withdrawalFields+" FROM withdrawal_requests WHERE id = $1 AND owner_id = $2 FOR UPDATE", requestID, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Withdrawal{}, ErrNotFound
	}
	if err != nil {
		return model.Withdrawal{}, err
	}

	if w.Status != model.WithdrawalStatusPending {
		return model.Withdrawal{}, ErrInvalidState
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx, "UPDATE withdrawal_requests SET status = $1, reason = $2, decided_at = $3 WHERE id = $4",
		model.WithdrawalStatusCancelled, reason, now, requestID)
	if err != nil {
		return model.Withdrawal{}, err
	}

	err = tx.Commit()
	if err != nil {
		return model.Withdrawal{}, err
	}

	w.Status = model.WithdrawalStatusCancelled
	w.Reason = &reason
	w.DecidedAt = &now
	return w, nil
}

// DecideWithdrawal is the administrative ingress. Approval stores the net
// amount computed by the ledger side and debits the wallet in the same
// transaction; rejection leaves the balance untouched.
func (r Repository) DecideWithdrawal(ctx context.Context, requestID int64, approve bool, netAmount int64, reason string) (model.Withdrawal, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return model.Withdrawal{}, err
	}
	defer tx.Rollback()

	w, err := scanWithdrawal(tx.QueryRowContext(ctx, "SELECT "+withdrawalFields+" FROM withdrawal_requests WHERE id = $1 FOR UPDATE", requestID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Withdrawal{}, ErrNotFound
	}
	if err != nil {
		return model.Withdrawal{}, err
	}

	if w.Status != model.WithdrawalStatusPending {
		return model.Withdrawal{}, ErrInvalidState
	}

	now := time.Now()
	if approve {
		_, err = tx.ExecContext(ctx, "UPDATE withdrawal_requests SET status = $1, net_amount = $2, decided_at = $3 WHERE id = $4",
			model.WithdrawalStatusApproved, netAmount, now, requestID)
		if err != nil {
			return model.Withdrawal{}, err
		}

		res, err := tx.ExecContext(ctx, "UPDATE wallets SET balance = balance - $1 WHERE owner_id = $2 AND balance >= $1", w.Amount, w.OwnerID)
		if err != nil {
			return model.Withdrawal{}, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return model.Withdrawal{}, err
		}
		if affected == 0 {
			return model.Withdrawal{}, ErrInsufficientBalance
		}

		w.Status = model.WithdrawalStatusApproved
		w.NetAmount = &netAmount
	} else {
		_, err = tx.ExecContext(ctx, "UPDATE withdrawal_requests SET status = $1, reason = $2, decided_at = $3 WHERE id = $4",
			model.WithdrawalStatusRejected, reason, now, requestID)
		if err != nil {
			return model.Withdrawal{}, err
		}

		w.Status = model.WithdrawalStatusRejected
		w.Reason = &reason
	}

	err = tx.Commit()
	if err != nil {
		return model.Withdrawal{}, err
	}

	w.DecidedAt = &now
	return w, nil
}

func (r Repository) ListWithdrawals(ctx context.Context, ownerID int64, status string, limit, offset int) ([]model.Withdrawal, int, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+withdrawalFields+` FROM withdrawal_requests
		WHERE owner_id = $1 AND ($2 = '' OR status = $2) ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`,
		ownerID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	withdrawals, err := collectWithdrawals(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	row := r.Conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM withdrawal_requests WHERE owner_id = $1 AND ($2 = '' OR status = $2)", ownerID, status)
	err = row.Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return withdrawals, total, nil
}

func (r Repository) ListPendingWithdrawals(ctx context.Context) ([]model.Withdrawal, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+withdrawalFields+" FROM withdrawal_requests WHERE status = $1 ORDER BY created_at ASC", model.WithdrawalStatusPending)
	if err != nil {
		return nil, err
	}

	return collectWithdrawals(rows)
}

func (r Repository) ListWithdrawalsBetween(ctx context.Context, ownerID int64, from, to *time.Time) ([]model.Withdrawal, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+withdrawalFields+` FROM withdrawal_requests
		WHERE owner_id = $1
		AND ($2::timestamptz IS NULL OR created_at >= $2)
		AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at DESC`, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	return collectWithdrawals(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWithdrawal(row rowScanner) (model.Withdrawal, error) {
	var (
		w         model.Withdrawal
		netAmount sql.NullInt64
		reason    sql.NullString
		decidedAt sql.NullTime
	)

	err := row.Scan(&w.ID, &w.OwnerID, &w.BankAccountID, &w.Amount, &w.Status, &netAmount, &reason, &w.CreatedAt, &decidedAt)
	if err != nil {
		return model.Withdrawal{}, err
	}

	if netAmount.Valid {
		w.NetAmount = &netAmount.Int64
	}
	if reason.Valid {
		w.Reason = &reason.String
	}
	if decidedAt.Valid {
		w.DecidedAt = &decidedAt.Time
	}
	return w, nil
}

func collectWithdrawals(rows *sql.Rows) ([]model.Withdrawal, error) {
	defer rows.Close()

	var withdrawals []model.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}

		withdrawals = append(withdrawals, w)
	}

	return withdrawals, rows.Err()
}
