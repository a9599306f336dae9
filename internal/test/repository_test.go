package test

import (
	"context"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/voyagio/sellerwallet/internal"
	"github.com/voyagio/sellerwallet/internal/model"
)

var _ = Describe("Repository", func() {
	var (
		repo internal.Repository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())
		mock = m

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})

	withdrawalColumns := []string{"id", "owner_id", "bank_account_id", "amount", "status", "net_amount", "reason", "created_at", "decided_at"}

	Context("Wallet", func() {
		It("GetBalance without error", func() {
			mock.ExpectQuery("SELECT balance FROM wallets").
				WithArgs(int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(2000000))

			balance, err := repo.GetBalance(context.Background(), 7)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(balance).To(Equal(int64(2000000)))
		})
		It("GetBalance treats a missing wallet as zero", func() {
			mock.ExpectQuery("SELECT balance FROM wallets").
				WithArgs(int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"balance"}))

			balance, err := repo.GetBalance(context.Background(), 7)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(balance).To(Equal(int64(0)))
		})
	})

	Context("Bank account registry", func() {
		It("CreateBankAccount forces the first account to default", func() {
			mock.ExpectQuery("INSERT INTO bank_accounts").
				WithArgs(int64(7), "Vietcombank", "0123456789", "Nguyen Thi Lan").
				WillReturnRows(sqlmock.NewRows([]string{"id", "is_default", "created_at"}).AddRow(3, true, time.Now()))

			a, err := repo.CreateBankAccount(context.Background(), 7, model.BankAccountInput{
				BankName:      "Vietcombank",
				AccountNumber: "0123456789",
				HolderName:    "Nguyen Thi Lan",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(a.ID).To(Equal(int64(3)))
			Expect(a.IsDefault).To(BeTrue())
		})
		It("SetDefaultBankAccount clears then sets inside one transaction", func() {
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE bank_accounts SET is_default = FALSE").
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("UPDATE bank_accounts SET is_default = TRUE").
				WithArgs(int64(3), int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := repo.SetDefaultBankAccount(context.Background(), 7, 3)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("SetDefaultBankAccount with error not found", func() {
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE bank_accounts SET is_default = FALSE").
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("UPDATE bank_accounts SET is_default = TRUE").
				WithArgs(int64(99), int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			err := repo.SetDefaultBankAccount(context.Background(), 7, 99)
			Expect(err).Should(Equal(internal.ErrNotFound))
		})
		It("DeleteBankAccount with error account in use", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT is_default FROM bank_accounts").
				WithArgs(int64(3), int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"is_default"}).AddRow(false))
			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(int64(3), model.WithdrawalStatusPending).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			mock.ExpectRollback()

			err := repo.DeleteBankAccount(context.Background(), 7, 3)
			Expect(err).Should(Equal(internal.ErrAccountInUse))
		})
		It("DeleteBankAccount promotes the newest account after removing the default", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT is_default FROM bank_accounts").
				WithArgs(int64(3), int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"is_default"}).AddRow(true))
			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(int64(3), model.WithdrawalStatusPending).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			mock.ExpectExec("DELETE FROM bank_accounts").
				WithArgs(int64(3)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("UPDATE bank_accounts SET is_default = TRUE").
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := repo.DeleteBankAccount(context.Background(), 7, 3)
			Expect(err).ShouldNot(HaveOccurred())
		})
	})

	Context("Request engine", func() {
		It("CreateWithdrawal without error", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT balance FROM wallets").
				WithArgs(int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(2000000))
			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(int64(3), int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			mock.ExpectQuery("SELECT COUNT").
				WithArgs(int64(7), model.WithdrawalStatusPending).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			mock.ExpectQuery("INSERT INTO withdrawal_requests").
				WithArgs(int64(7), int64(3), int64(500000), model.WithdrawalStatusPending).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))
			mock.ExpectCommit()

			w, err := repo.CreateWithdrawal(context.Background(), 7, 3, 500000)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(w.ID).To(Equal(int64(11)))
			Expect(w.Status).To(Equal(model.WithdrawalStatusPending))
		})
		It("CreateWithdrawal fails at commit time when the balance dropped", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT balance FROM wallets").
				WithArgs(int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(100))
			mock.ExpectRollback()

			_, err := repo.CreateWithdrawal(context.Background(), 7, 3, 500000)
			Expect(err).Should(Equal(internal.ErrInsufficientBalance))
		})
		It("CreateWithdrawal with an in-flight request for the owner", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT balance FROM wallets").
				WithArgs(int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(2000000))
			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(int64(3), int64(7)).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			mock.ExpectQuery("SELECT COUNT").
				WithArgs(int64(7), model.WithdrawalStatusPending).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			mock.ExpectRollback()

			_, err := repo.CreateWithdrawal(context.Background(), 7, 3, 500000)
			Expect(err).Should(Equal(internal.ErrPendingExists))
		})
		It("CancelWithdrawal without error", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT id, owner_id, bank_account_id").
				WithArgs(int64(11), int64(7)).
				WillReturnRows(sqlmock.NewRows(withdrawalColumns).
					AddRow(11, 7, 3, 500000, model.WithdrawalStatusPending, nil, nil, time.Now(), nil))
			mock.ExpectExec("UPDATE withdrawal_requests SET status").
				WithArgs(model.WithdrawalStatusCancelled, "changed my mind", sqlmock.AnyArg(), int64(11)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			w, err := repo.CancelWithdrawal(context.Background(), 7, 11, "changed my mind")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(w.Status).To(Equal(model.WithdrawalStatusCancelled))
			Expect(w.DecidedAt).NotTo(BeNil())
		})
		It("CancelWithdrawal with error invalid state", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT id, owner_id, bank_account_id").
				WithArgs(int64(11), int64(7)).
				WillReturnRows(sqlmock.NewRows(withdrawalColumns).
					AddRow(11, 7, 3, 500000, model.WithdrawalStatusCancelled, nil, "changed my mind", time.Now(), time.Now()))
			mock.ExpectRollback()

			_, err := repo.CancelWithdrawal(context.Background(), 7, 11, "again")
			Expect(err).Should(Equal(internal.ErrInvalidState))
		})
		It("DecideWithdrawal approves and debits the wallet in one transaction", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT id, owner_id, bank_account_id").
				WithArgs(int64(11)).
				WillReturnRows(sqlmock.NewRows(withdrawalColumns).
					AddRow(11, 7, 3, 500000, model.WithdrawalStatusPending, nil, nil, time.Now(), nil))
			mock.ExpectExec("UPDATE withdrawal_requests SET status").
				WithArgs(model.WithdrawalStatusApproved, int64(475000), sqlmock.AnyArg(), int64(11)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("UPDATE wallets SET balance = balance -").
				WithArgs(int64(500000), int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			w, err := repo.DecideWithdrawal(context.Background(), 11, true, 475000, "")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(w.Status).To(Equal(model.WithdrawalStatusApproved))
			Expect(*w.NetAmount).To(Equal(int64(475000)))
		})
		It("DecideWithdrawal approval losing the balance race", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT id, owner_id, bank_account_id").
				WithArgs(int64(11)).
				WillReturnRows(sqlmock.NewRows(withdrawalColumns).
					AddRow(11, 7, 3, 500000, model.WithdrawalStatusPending, nil, nil, time.Now(), nil))
			mock.ExpectExec("UPDATE withdrawal_requests SET status").
				WithArgs(model.WithdrawalStatusApproved, int64(475000), sqlmock.AnyArg(), int64(11)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("UPDATE wallets SET balance = balance -").
				WithArgs(int64(500000), int64(7)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			_, err := repo.DecideWithdrawal(context.Background(), 11, true, 475000, "")
			Expect(err).Should(Equal(internal.ErrInsufficientBalance))
		})
		It("ListWithdrawals returns a page and the full count", func() {
			mock.ExpectQuery("SELECT id, owner_id, bank_account_id").
				WithArgs(int64(7), "", 20, 0).
				WillReturnRows(sqlmock.NewRows(withdrawalColumns).
					AddRow(12, 7, 3, 200000, model.WithdrawalStatusPending, nil, nil, time.Now(), nil).
					AddRow(11, 7, 3, 500000, model.WithdrawalStatusCancelled, nil, "changed my mind", time.Now(), time.Now()))
			mock.ExpectQuery("SELECT COUNT").
				WithArgs(int64(7), "").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

			items, total, err := repo.ListWithdrawals(context.Background(), 7, "", 20, 0)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(items).To(HaveLen(2))
			Expect(total).To(Equal(42))
			Expect(*items[1].Reason).To(Equal("changed my mind"))
		})
	})
})
