package core_test

import (
	"context"
	"errors"
	"time"
	"transactread/internal/core"
	"transactread/internal/core/fake"
	"transactread/internal/openai"
	"transactread/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("GenerateSummary", func() {
	var (
		fakeRepo       *fake.Repository
		fakeSummarizer *fake.Summarizer
		ctx            context.Context

		service     *core.TransactRead
		transaction repository.Transaction

		result core.SummaryResult
		err    error

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeSummarizer = new(fake.Summarizer)
		ctx = context.Background()

		service = core.NewTransactRead(zap.NewNop().Sugar(), fakeRepo, new(fake.JWTIssuer), new(fake.Explorer), fakeSummarizer, core.Settings{
			MaxWalletsPerUser: 10,
			TokenExpiration:   168 * time.Hour,
		})

		to := "0x2222222222222222222222222222222222222222"
		transaction = repository.Transaction{
			ID:        "t1",
			Hash:      "0xaaa",
			From:      "0x1111111111111111111111111111111111111111",
			To:        &to,
			Value:     "1500000000000000000",
			Timestamp: time.Unix(1700000000, 0).UTC(),
			GasUsed:   "21000",
			GasPrice:  "20000000000",
			Category:  "Send",
			WalletID:  "w1",
		}
		fakeRepo.GetTransactionByIDReturns(transaction, nil)
		fakeRepo.GetWalletByIDReturns(repository.Wallet{ID: "w1", UserID: "user-1"}, nil)

		fakeErr = errors.New("fake error")
	})

	JustBeforeEach(func() {
		result, err = service.GenerateSummary(ctx, "user-1", "t1")
	})

	When("the model responds", func() {
		BeforeEach(func() {
			fakeSummarizer.SummarizeReturns("You sent 1.5 ETH.", nil)
		})

		It("persists and returns the model summary", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Summary).To(Equal("You sent 1.5 ETH."))
			Expect(result.Degraded).To(BeFalse())

			Expect(fakeSummarizer.SummarizeCallCount()).To(Equal(1))
			_, details := fakeSummarizer.SummarizeArgsForCall(0)
			Expect(details.Hash).To(Equal("0xaaa"))
			Expect(details.Category).To(Equal("Send"))

			Expect(fakeRepo.SetTransactionSummaryCallCount()).To(Equal(1))
			_, id, summary := fakeRepo.SetTransactionSummaryArgsForCall(0)
			Expect(id).To(Equal("t1"))
			Expect(summary).To(Equal("You sent 1.5 ETH."))
		})
	})

	When("the provider quota is exhausted", func() {
		BeforeEach(func() {
			fakeSummarizer.SummarizeReturns("", openai.ErrQuotaExceeded)
		})

		It("persists a fallback summary and marks the result degraded", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Degraded).To(BeTrue())
			Expect(result.Summary).To(Equal("Transaction: Send - 1.500000 ETH to 0x2222...2222"))

			Expect(fakeRepo.SetTransactionSummaryCallCount()).To(Equal(1))
			_, _, summary := fakeRepo.SetTransactionSummaryArgsForCall(0)
			Expect(summary).To(Equal(result.Summary))
		})
	})

	When("the transaction has no recipient", func() {
		BeforeEach(func() {
			transaction.To = nil
			fakeRepo.GetTransactionByIDReturns(transaction, nil)
			fakeSummarizer.SummarizeReturns("", openai.ErrQuotaExceeded)
		})

		It("marks the fallback as a contract creation", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Summary).To(Equal("Transaction: Send - 1.500000 ETH (contract creation)"))
		})
	})

	When("the summarizer fails for another reason", func() {
		BeforeEach(func() {
			fakeSummarizer.SummarizeReturns("", fakeErr)
		})

		It("returns summary failed and persists nothing", func() {
			Expect(err).To(MatchError(core.ErrSummaryFailed))
			Expect(fakeRepo.SetTransactionSummaryCallCount()).To(Equal(0))
		})
	})

	When("the transaction does not exist", func() {
		BeforeEach(func() {
			fakeRepo.GetTransactionByIDReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
		})

		It("returns transaction not found", func() {
			Expect(err).To(MatchError(core.ErrTransactionNotFound))
			Expect(fakeSummarizer.SummarizeCallCount()).To(Equal(0))
		})
	})

	When("the transaction belongs to another user's wallet", func() {
		BeforeEach(func() {
			fakeRepo.GetWalletByIDReturns(repository.Wallet{ID: "w1", UserID: "someone-else"}, nil)
		})

		It("returns transaction not found", func() {
			Expect(err).To(MatchError(core.ErrTransactionNotFound))
			Expect(fakeSummarizer.SummarizeCallCount()).To(Equal(0))
		})
	})

	When("persisting the summary fails", func() {
		BeforeEach(func() {
			fakeSummarizer.SummarizeReturns("You sent 1.5 ETH.", nil)
			fakeRepo.SetTransactionSummaryReturns(fakeErr)
		})

		It("returns the storage error", func() {
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
