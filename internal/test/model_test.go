package test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/voyagio/sellerwallet/internal"
	"github.com/voyagio/sellerwallet/internal/model"
)

var _ = Describe("Model", func() {
	Context("MaskAccountNumber", func() {
		It("masks the interior of a long number", func() {
			Expect(model.MaskAccountNumber("0123456789")).To(Equal("01****6789"))
		})
		It("returns short numbers unchanged", func() {
			Expect(model.MaskAccountNumber("12")).To(Equal("12"))
			Expect(model.MaskAccountNumber("1234")).To(Equal("1234"))
		})
		It("returns numbers fully covered by head and tail unchanged", func() {
			Expect(model.MaskAccountNumber("12345")).To(Equal("12345"))
			Expect(model.MaskAccountNumber("123456")).To(Equal("123456"))
		})
		It("masks a single interior character", func() {
			Expect(model.MaskAccountNumber("1234567")).To(Equal("12*4567"))
		})
		It("strips the raw number from the non-owner view", func() {
			a := model.BankAccount{AccountNumber: "0123456789"}
			Expect(a.MaskedOutput().AccountNumber).To(BeEmpty())
			Expect(a.MaskedOutput().MaskedNumber).To(Equal("01****6789"))
		})
	})

	Context("Aggregate", func() {
		net := func(v int64) *int64 { return &v }

		requests := []model.Withdrawal{
			{Status: model.WithdrawalStatusPending, Amount: 5000},
			{Status: model.WithdrawalStatusApproved, Amount: 10000, NetAmount: net(9500)},
			{Status: model.WithdrawalStatusApproved, Amount: 20000, NetAmount: net(19000)},
			{Status: model.WithdrawalStatusRejected, Amount: 3000},
			{Status: model.WithdrawalStatusCancelled, Amount: 7000},
		}

		It("counts per status with cancelled outside the headline counters", func() {
			s := model.Aggregate(requests)
			Expect(s.TotalWithdrawals).To(Equal(5))
			Expect(s.PendingWithdrawals).To(Equal(1))
			Expect(s.ApprovedWithdrawals).To(Equal(2))
			Expect(s.RejectedWithdrawals).To(Equal(1))
			Expect(s.CancelledWithdrawals).To(Equal(1))
		})
		It("keeps the counter invariant", func() {
			s := model.Aggregate(requests)
			Expect(s.PendingWithdrawals + s.ApprovedWithdrawals + s.RejectedWithdrawals + s.CancelledWithdrawals).
				To(Equal(s.TotalWithdrawals))
		})
		It("sums net amounts for approved and gross amounts for pending", func() {
			s := model.Aggregate(requests)
			Expect(s.TotalWithdrawnAmount).To(Equal(int64(28500)))
			Expect(s.PendingAmount).To(Equal(int64(5000)))
		})
		It("folds an empty list to zeroes", func() {
			Expect(model.Aggregate(nil)).To(Equal(model.WithdrawalStatistics{}))
		})
	})

	Context("RunWithdrawalChecks", func() {
		It("passes a clean request", func() {
			Expect(internal.RunWithdrawalChecks(500000, true, 2000000, 0)).To(BeEmpty())
		})
		It("accumulates every failed check in order", func() {
			reasons := internal.RunWithdrawalChecks(500, false, 100, 1)
			Expect(reasons).To(Equal([]string{
				internal.ReasonBelowMinimum,
				internal.ReasonUnknownAccount,
				internal.ReasonNotEnoughBalance,
				internal.ReasonPendingExists,
			}))
		})
		It("accepts exactly the minimum amount", func() {
			Expect(internal.RunWithdrawalChecks(1000, true, 1000, 0)).To(BeEmpty())
		})
		It("rejects a balance one unit short", func() {
			reasons := internal.RunWithdrawalChecks(1000, true, 999, 0)
			Expect(reasons).To(Equal([]string{internal.ReasonNotEnoughBalance}))
		})
	})
})
