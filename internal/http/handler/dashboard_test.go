package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"transactread/internal/auth"
	"transactread/internal/core"
	"transactread/internal/http/handler"
	"transactread/internal/http/handler/fake"
	"transactread/internal/http/handler/middleware"
	"transactread/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("DashboardHandler", func() {
	var (
		fakeService   *fake.DashboardService
		fakeValidator *fake.RequestValidator
		dashboard     *handler.DashboardHandler

		recorder *httptest.ResponseRecorder
		request  *http.Request

		fakeErr error
	)

	authedRequest := func(method, target, userID string) *http.Request {
		req := httptest.NewRequest(method, target, strings.NewReader("{}"))
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
		return req.WithContext(ctx)
	}

	responseBody := func() map[string]any {
		var body map[string]any
		Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
		return body
	}

	BeforeEach(func() {
		fakeService = new(fake.DashboardService)
		fakeValidator = new(fake.RequestValidator)
		dashboard = handler.NewDashboardHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)

		recorder = httptest.NewRecorder()
		fakeErr = errors.New("fake error")
	})

	Describe("HandleWalletLogin", func() {
		BeforeEach(func() {
			request = httptest.NewRequest(http.MethodPost, "/auth/wallet-challenge-login", strings.NewReader("{}"))

			fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, object any) error {
				login, ok := object.(*payload.WalletLoginRequest)
				Expect(ok).To(BeTrue())
				*login = payload.WalletLoginRequest{
					Address:   "0x1111111111111111111111111111111111111111",
					Message:   "challenge text",
					Signature: "0xsig",
					Timestamp: 1700000000000,
				}
				return nil
			}
		})

		JustBeforeEach(func() {
			dashboard.HandleWalletLogin(recorder, request)
		})

		When("authentication succeeds", func() {
			BeforeEach(func() {
				fakeService.AuthenticateWalletReturns(core.AuthSession{
					Token: "signed.token",
					User:  core.UserRecord{ID: "0x1111111111111111111111111111111111111111"},
				}, nil)
			})

			It("should return the session", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				body := responseBody()
				Expect(body["token"]).To(Equal("signed.token"))

				Expect(fakeService.AuthenticateWalletCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateWalletArgsForCall(0)
				Expect(msg.Address).To(Equal("0x1111111111111111111111111111111111111111"))
				Expect(msg.Timestamp).To(Equal(int64(1700000000000)))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should reject with 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateWalletCallCount()).To(Equal(0))
			})
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, object any) error {
					login, ok := object.(*payload.WalletLoginRequest)
					Expect(ok).To(BeTrue())
					*login = payload.WalletLoginRequest{Address: "0x1"}
					return nil
				}
			})

			It("should reject with 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateWalletCallCount()).To(Equal(0))
			})
		})

		When("the challenge has expired", func() {
			BeforeEach(func() {
				fakeService.AuthenticateWalletReturns(core.AuthSession{}, auth.ErrChallengeExpired)
			})

			It("should reject with 400 and the reason", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(responseBody()["error"]).To(ContainSubstring("expired"))
			})
		})

		When("the signature does not match the address", func() {
			BeforeEach(func() {
				fakeService.AuthenticateWalletReturns(core.AuthSession{}, auth.ErrAddressMismatch)
			})

			It("should reject with 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateWalletReturns(core.AuthSession{}, fakeErr)
			})

			It("should respond with 500 and a generic reason", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				Expect(responseBody()["error"]).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleAddWallet", func() {
		BeforeEach(func() {
			request = authedRequest(http.MethodPost, "/wallets", "user-1")

			fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, object any) error {
				add, ok := object.(*payload.AddWalletRequest)
				Expect(ok).To(BeTrue())
				*add = payload.AddWalletRequest{
					Address: "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
					Label:   "Main",
				}
				return nil
			}
		})

		JustBeforeEach(func() {
			dashboard.HandleAddWallet(recorder, request)
		})

		When("the wallet is registered", func() {
			BeforeEach(func() {
				fakeService.AddWalletReturns(core.WalletRecord{
					ID:      "w1",
					Address: "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
					Label:   "Main",
					UserID:  "user-1",
				}, nil)
			})

			It("should respond with 201 and the wallet", func() {
				Expect(recorder.Code).To(Equal(http.StatusCreated))
				Expect(responseBody()["id"]).To(Equal("w1"))

				_, userID, address, label := fakeService.AddWalletArgsForCall(0)
				Expect(userID).To(Equal("user-1"))
				Expect(address).To(Equal("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"))
				Expect(label).To(Equal("Main"))
			})
		})

		When("the wallet limit is reached", func() {
			BeforeEach(func() {
				fakeService.AddWalletReturns(core.WalletRecord{}, core.ErrWalletLimitReached)
			})

			It("should reject with 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(responseBody()["error"]).To(ContainSubstring("limit"))
			})
		})

		When("the address is already registered", func() {
			BeforeEach(func() {
				fakeService.AddWalletReturns(core.WalletRecord{}, core.ErrWalletExists)
			})

			It("should reject with 400", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleListWallets", func() {
		BeforeEach(func() {
			request = authedRequest(http.MethodGet, "/wallets", "user-1")
		})

		It("should return the user's wallets", func() {
			fakeService.ListWalletsReturns([]core.WalletRecord{{ID: "w1"}, {ID: "w2"}}, nil)

			dashboard.HandleListWallets(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			wallets, ok := responseBody()["wallets"].([]any)
			Expect(ok).To(BeTrue())
			Expect(wallets).To(HaveLen(2))

			_, userID := fakeService.ListWalletsArgsForCall(0)
			Expect(userID).To(Equal("user-1"))
		})
	})

	Describe("HandleWalletTransactions", func() {
		BeforeEach(func() {
			request = authedRequest(http.MethodGet, "/wallets/w1/transactions", "user-1")
			request.SetPathValue("id", "w1")
		})

		JustBeforeEach(func() {
			dashboard.HandleWalletTransactions(recorder, request)
		})

		When("the wallet is owned by the caller", func() {
			BeforeEach(func() {
				fakeService.WalletTransactionsReturns([]core.TransactionRecord{{ID: "t1"}}, nil)
			})

			It("should return the transactions", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				_, userID, walletID := fakeService.WalletTransactionsArgsForCall(0)
				Expect(userID).To(Equal("user-1"))
				Expect(walletID).To(Equal("w1"))
			})
		})

		When("the wallet does not exist for the caller", func() {
			BeforeEach(func() {
				fakeService.WalletTransactionsReturns(nil, core.ErrWalletNotFound)
			})

			It("should respond with 404", func() {
				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetTransaction", func() {
		BeforeEach(func() {
			request = authedRequest(http.MethodGet, "/transactions/t1", "user-1")
			request.SetPathValue("id", "t1")
		})

		It("should return the transaction", func() {
			fakeService.GetTransactionReturns(core.TransactionRecord{ID: "t1", Hash: "0xaaa"}, nil)

			dashboard.HandleGetTransaction(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(responseBody()["hash"]).To(Equal("0xaaa"))
		})

		It("should respond with 404 when missing", func() {
			fakeService.GetTransactionReturns(core.TransactionRecord{}, core.ErrTransactionNotFound)

			dashboard.HandleGetTransaction(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("HandleSyncTransactions", func() {
		BeforeEach(func() {
			request = authedRequest(http.MethodPost, "/transactions/sync/w1", "user-1")
			request.SetPathValue("walletId", "w1")
		})

		JustBeforeEach(func() {
			dashboard.HandleSyncTransactions(recorder, request)
		})

		When("the sync succeeds", func() {
			BeforeEach(func() {
				fakeService.SyncWalletReturns(core.SyncResult{Synced: 3, Total: 5}, nil)
			})

			It("should report the sync result", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				body := responseBody()
				Expect(body["message"]).To(Equal("Transactions synced successfully"))

				data, ok := body["data"].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(data["synced"]).To(BeEquivalentTo(3))
				Expect(data["total"]).To(BeEquivalentTo(5))

				_, userID, walletID := fakeService.SyncWalletArgsForCall(0)
				Expect(userID).To(Equal("user-1"))
				Expect(walletID).To(Equal("w1"))
			})
		})

		When("the explorer is unavailable", func() {
			BeforeEach(func() {
				fakeService.SyncWalletReturns(core.SyncResult{}, core.ErrUpstreamUnavailable)
			})

			It("should respond with 502", func() {
				Expect(recorder.Code).To(Equal(http.StatusBadGateway))
				Expect(responseBody()["error"]).To(Equal("block explorer unavailable"))
			})
		})
	})

	Describe("HandleGenerateSummary", func() {
		BeforeEach(func() {
			request = authedRequest(http.MethodPost, "/transactions/t1/generate-summary", "user-1")
			request.SetPathValue("id", "t1")
		})

		JustBeforeEach(func() {
			dashboard.HandleGenerateSummary(recorder, request)
		})

		When("the summary is AI generated", func() {
			BeforeEach(func() {
				fakeService.GenerateSummaryReturns(core.SummaryResult{Summary: "You sent 1.5 ETH."}, nil)
			})

			It("should return the summary", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				body := responseBody()
				Expect(body["message"]).To(Equal("Summary generated successfully"))
				Expect(body["summary"]).To(Equal("You sent 1.5 ETH."))
				Expect(body["degraded"]).To(BeFalse())
			})
		})

		When("the summary is a quota fallback", func() {
			BeforeEach(func() {
				fakeService.GenerateSummaryReturns(core.SummaryResult{
					Summary:  "Transaction: Send - 1.500000 ETH to 0x2222...2222",
					Degraded: true,
				}, nil)
			})

			It("should flag the degraded result", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))

				body := responseBody()
				Expect(body["message"]).To(Equal("AI summary unavailable due to API quota. Generated basic summary instead."))
				Expect(body["degraded"]).To(BeTrue())
			})
		})

		When("summary generation fails", func() {
			BeforeEach(func() {
				fakeService.GenerateSummaryReturns(core.SummaryResult{}, core.ErrSummaryFailed)
			})

			It("should respond with 500", func() {
				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
				Expect(responseBody()["error"]).To(Equal("summary generation failed"))
			})
		})
	})

	Describe("HandleClearTransactions", func() {
		BeforeEach(func() {
			request = authedRequest(http.MethodDelete, "/transactions/wallet/w1", "user-1")
			request.SetPathValue("walletId", "w1")
		})

		It("should report how many transactions were deleted", func() {
			fakeService.ClearWalletTransactionsReturns(int64(4), nil)

			dashboard.HandleClearTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			body := responseBody()
			Expect(body["message"]).To(Equal("Transactions cleared successfully"))
			Expect(body["deletedCount"]).To(BeEquivalentTo(4))
		})

		It("should respond with 404 for a wallet the caller does not own", func() {
			fakeService.ClearWalletTransactionsReturns(0, core.ErrWalletNotFound)

			dashboard.HandleClearTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})

var _ = Describe("route patterns", func() {
	It("registers method qualified patterns", func() {
		Expect(handler.WalletLogin).To(Equal("POST /auth/wallet-challenge-login"))
		Expect(handler.SyncTransactions).To(Equal("POST /transactions/sync/{walletId}"))
		Expect(handler.GenerateSummary).To(Equal("POST /transactions/{id}/generate-summary"))
	})
})

var _ = Describe("payload validation", func() {
	It("rejects a malformed wallet address", func() {
		req := payload.AddWalletRequest{Address: "not-an-address"}
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("accepts a well formed wallet address", func() {
		req := payload.AddWalletRequest{Address: "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"}
		Expect(req.Validate()).To(Succeed())
	})

	It("requires every login challenge field", func() {
		req := payload.WalletLoginRequest{Address: "0x1"}
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("decodes a login challenge payload", func() {
		body := `{"address":"0x1","message":"m","signature":"0xsig","timestamp":1700000000000}`
		req := httptest.NewRequest(http.MethodPost, "/auth/wallet-challenge-login", strings.NewReader(body))

		var login payload.WalletLoginRequest
		Expect(payload.Decoder{}.DecodeJSONPayload(req, &login)).To(Succeed())
		Expect(login.Signature).To(Equal("0xsig"))
		Expect(login.Timestamp).To(Equal(int64(1700000000000)))
	})

	It("rejects unknown payload fields", func() {
		body := `{"address":"0x1","bogus":true}`
		req := httptest.NewRequest(http.MethodPost, "/wallets", strings.NewReader(body))

		var add payload.AddWalletRequest
		Expect(payload.Decoder{}.DecodeJSONPayload(req, &add)).To(HaveOccurred())
	})
})
