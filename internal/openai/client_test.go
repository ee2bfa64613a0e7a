package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
	"transactread/internal/openai"
	"transactread/internal/openai/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var _ = Describe("Client", func() {
	var (
		fakeHTTP *fake.HTTPClient
		client   *openai.Client
		ctx      context.Context

		details openai.TransactionDetails

		summary string
		err     error
	)

	BeforeEach(func() {
		fakeHTTP = new(fake.HTTPClient)
		client = openai.NewClient(fakeHTTP, "https://api.openai.com/v1/chat/completions", "test-key", "gpt-3.5-turbo", 30*time.Second)
		ctx = context.Background()

		to := "0x2222222222222222222222222222222222222222"
		details = openai.TransactionDetails{
			Hash:     "0xaaa",
			From:     "0x1111111111111111111111111111111111111111",
			To:       &to,
			Value:    "1000000000000000000",
			Category: "Send",
			GasUsed:  "21000",
			GasPrice: "20000000000",
		}
	})

	JustBeforeEach(func() {
		summary, err = client.Summarize(ctx, details)
	})

	When("the model responds", func() {
		BeforeEach(func() {
			fakeHTTP.DoReturns(jsonResponse(http.StatusOK, `{
				"choices": [
					{"message": {"role": "assistant", "content": "This transaction sends 1 ETH."}}
				]
			}`), nil)
		})

		It("should return the model's summary", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(summary).To(Equal("This transaction sends 1 ETH."))
		})

		It("sends a chat completion request with the transaction embedded", func() {
			Expect(fakeHTTP.DoCallCount()).To(Equal(1))
			req := fakeHTTP.DoArgsForCall(0)

			Expect(req.Method).To(Equal(http.MethodPost))
			Expect(req.Header.Get("Authorization")).To(Equal("Bearer test-key"))
			Expect(req.Header.Get("Content-Type")).To(Equal("application/json"))

			body, readErr := io.ReadAll(req.Body)
			Expect(readErr).NotTo(HaveOccurred())

			var sent map[string]any
			Expect(json.Unmarshal(body, &sent)).To(Succeed())
			Expect(sent["model"]).To(Equal("gpt-3.5-turbo"))
			Expect(sent["max_tokens"]).To(BeEquivalentTo(100))
			Expect(sent["temperature"]).To(BeEquivalentTo(0.7))

			messages, ok := sent["messages"].([]any)
			Expect(ok).To(BeTrue())
			Expect(messages).To(HaveLen(2))

			user, ok := messages[1].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(user["content"]).To(ContainSubstring("0xaaa"))
		})
	})

	When("the provider rejects with too many requests", func() {
		BeforeEach(func() {
			fakeHTTP.DoReturns(jsonResponse(http.StatusTooManyRequests, `{
				"error": {"message": "Rate limit reached", "type": "requests"}
			}`), nil)
		})

		It("should return quota exceeded", func() {
			Expect(err).To(MatchError(openai.ErrQuotaExceeded))
		})
	})

	When("the provider rejects with insufficient quota", func() {
		BeforeEach(func() {
			fakeHTTP.DoReturns(jsonResponse(http.StatusForbidden, `{
				"error": {"message": "You exceeded your current quota", "type": "insufficient_quota", "code": "insufficient_quota"}
			}`), nil)
		})

		It("should return quota exceeded", func() {
			Expect(err).To(MatchError(openai.ErrQuotaExceeded))
		})
	})

	When("the provider rejects with an unrelated error", func() {
		BeforeEach(func() {
			fakeHTTP.DoReturns(jsonResponse(http.StatusBadRequest, `{
				"error": {"message": "Invalid model", "type": "invalid_request_error"}
			}`), nil)
		})

		It("should return a client error", func() {
			Expect(err).To(MatchError(openai.ErrClient))
			Expect(err).NotTo(MatchError(openai.ErrQuotaExceeded))
		})
	})

	When("the response carries no choices", func() {
		BeforeEach(func() {
			fakeHTTP.DoReturns(jsonResponse(http.StatusOK, `{"choices": []}`), nil)
		})

		It("should return a client error", func() {
			Expect(err).To(MatchError(openai.ErrClient))
		})
	})
})
