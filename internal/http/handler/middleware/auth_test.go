package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"transactread/internal/http/handler/middleware"
	"transactread/internal/http/handler/middleware/fake"
	tokenIssuer "transactread/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		fakeValidator *fake.TokenValidator
		authMW        *middleware.AuthMiddleware

		recorder *httptest.ResponseRecorder
		request  *http.Request

		nextCalled bool
		nextUserID string
		nextMethod string
	)

	BeforeEach(func() {
		fakeValidator = new(fake.TokenValidator)
		authMW = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeValidator)

		recorder = httptest.NewRecorder()
		request = httptest.NewRequest(http.MethodGet, "/wallets", nil)

		nextCalled = false
		nextUserID = ""
		nextMethod = ""
	})

	JustBeforeEach(func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			nextUserID, _ = r.Context().Value(middleware.UserIDKey).(string)
			nextMethod, _ = r.Context().Value(middleware.AuthMethodKey).(string)
			w.WriteHeader(http.StatusOK)
		})
		authMW.RequireAuth(next).ServeHTTP(recorder, request)
	})

	When("a valid bearer token is presented", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "Bearer valid.token")
			fakeValidator.ValidateReturns(jwt.MapClaims{
				"sub":         "0xabc0000000000000000000000000000000000001",
				"auth_method": tokenIssuer.AuthMethodWallet,
			}, nil)
		})

		It("should pass the identity to the next handler", func() {
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
			Expect(nextUserID).To(Equal("0xabc0000000000000000000000000000000000001"))
			Expect(nextMethod).To(Equal(tokenIssuer.AuthMethodWallet))

			Expect(fakeValidator.ValidateCallCount()).To(Equal(1))
			Expect(fakeValidator.ValidateArgsForCall(0)).To(Equal("valid.token"))
		})
	})

	When("the authorization header is absent", func() {
		It("should reject with 401", func() {
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
			Expect(fakeValidator.ValidateCallCount()).To(Equal(0))
		})
	})

	When("the header does not follow the bearer scheme", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})

		It("should reject with 401", func() {
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the token fails validation", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "Bearer bad.token")
			fakeValidator.ValidateReturns(nil, errors.New("token is not valid"))
		})

		It("should reject with 401", func() {
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})

	When("the token carries no subject", func() {
		BeforeEach(func() {
			request.Header.Set("Authorization", "Bearer odd.token")
			fakeValidator.ValidateReturns(jwt.MapClaims{"auth_method": tokenIssuer.AuthMethodWallet}, nil)
		})

		It("should reject with 401", func() {
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(nextCalled).To(BeFalse())
		})
	})
})

var _ = Describe("RequestIDMiddleware", func() {
	It("attaches a request id to the context and response header", func() {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/wallets", nil)

		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
		})

		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(recorder, request)

		Expect(seen).NotTo(BeEmpty())
		Expect(recorder.Header().Get("X-Request-Id")).To(Equal(seen))
	})
})
