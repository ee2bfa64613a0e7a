package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"transactread/internal/auth"
	"transactread/internal/core"
	"transactread/internal/http/handler/middleware"
	"transactread/internal/http/payload"

	"go.uber.org/zap"
)

var (
	WalletLogin        = "POST /auth/wallet-challenge-login"
	AddWallet          = "POST /wallets"
	ListWallets        = "GET /wallets"
	WalletTransactions = "GET /wallets/{id}/transactions"
	GetTransaction     = "GET /transactions/{id}"
	SyncTransactions   = "POST /transactions/sync/{walletId}"
	GenerateSummary    = "POST /transactions/{id}/generate-summary"
	ClearTransactions  = "DELETE /transactions/wallet/{walletId}"
)

type DashboardHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          DashboardService
}

func NewDashboardHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service DashboardService) *DashboardHandler {
	return &DashboardHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          service,
	}
}

func (h *DashboardHandler) HandleWalletLogin(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var loginRequest payload.WalletLoginRequest
	err := h.requestValidator.DecodeJSONPayload(r, &loginRequest)
	if err == nil {
		err = loginRequest.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", WalletLogin,
			"request_id", requestID)
		return
	}

	session, err := h.service.AuthenticateWallet(r.Context(), loginRequest.ToMessage())
	if err != nil {
		status, reason := walletLoginError(err)
		h.respond(w, Response{
			Message: "Login failed",
			Error:   reason,
		}, status, requestID)
		h.logs.Errorw("wallet authentication failed",
			"error", err,
			"handler", WalletLogin,
			"request_id", requestID)
		return
	}

	h.respond(w, map[string]any{
		"token": session.Token,
		"user":  session.User,
	}, http.StatusOK, requestID)
}

func (h *DashboardHandler) HandleAddWallet(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	userID := userIDFrom(r)

	var addRequest payload.AddWalletRequest
	err := h.requestValidator.DecodeJSONPayload(r, &addRequest)
	if err == nil {
		err = addRequest.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not add wallet",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddWallet,
			"request_id", requestID)
		return
	}

	wallet, err := h.service.AddWallet(r.Context(), userID, addRequest.Address, addRequest.Label)
	if err != nil {
		h.respondError(w, r, err, "Could not add wallet", AddWallet)
		return
	}

	h.respond(w, wallet, http.StatusCreated, requestID)
}

func (h *DashboardHandler) HandleListWallets(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	wallets, err := h.service.ListWallets(r.Context(), userIDFrom(r))
	if err != nil {
		h.respondError(w, r, err, "Could not retrieve wallets", ListWallets)
		return
	}

	h.respond(w, map[string][]core.WalletRecord{
		"wallets": wallets,
	}, http.StatusOK, requestID)
}

func (h *DashboardHandler) HandleWalletTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	transactions, err := h.service.WalletTransactions(r.Context(), userIDFrom(r), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err, "Could not retrieve transactions", WalletTransactions)
		return
	}

	h.respond(w, map[string][]core.TransactionRecord{
		"transactions": transactions,
	}, http.StatusOK, requestID)
}

func (h *DashboardHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	transaction, err := h.service.GetTransaction(r.Context(), userIDFrom(r), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err, "Could not retrieve transaction", GetTransaction)
		return
	}

	h.respond(w, transaction, http.StatusOK, requestID)
}

func (h *DashboardHandler) HandleSyncTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	result, err := h.service.SyncWallet(r.Context(), userIDFrom(r), r.PathValue("walletId"))
	if err != nil {
		h.respondError(w, r, err, "Could not sync transactions", SyncTransactions)
		return
	}

	h.respond(w, Response{
		Message: "Transactions synced successfully",
		Data:    result,
	}, http.StatusOK, requestID)
}

func (h *DashboardHandler) HandleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	result, err := h.service.GenerateSummary(r.Context(), userIDFrom(r), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err, "Could not generate summary", GenerateSummary)
		return
	}

	message := "Summary generated successfully"
	if result.Degraded {
		message = "AI summary unavailable due to API quota. Generated basic summary instead."
	}

	h.respond(w, map[string]any{
		"message":  message,
		"summary":  result.Summary,
		"degraded": result.Degraded,
	}, http.StatusOK, requestID)
}

func (h *DashboardHandler) HandleClearTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	deleted, err := h.service.ClearWalletTransactions(r.Context(), userIDFrom(r), r.PathValue("walletId"))
	if err != nil {
		h.respondError(w, r, err, "Could not clear transactions", ClearTransactions)
		return
	}

	h.respond(w, map[string]any{
		"message":      "Transactions cleared successfully",
		"deletedCount": deleted,
	}, http.StatusOK, requestID)
}

// respondError maps service sentinels to status codes. Client-input problems
// echo the reason; everything else hides detail behind a generic message and
// goes to the logs.
func (h *DashboardHandler) respondError(w http.ResponseWriter, r *http.Request, err error, message, route string) {
	requestID := requestIDFrom(r)

	status := http.StatusInternalServerError
	reason := "unexpected error occurred"

	switch {
	case errors.Is(err, core.ErrWalletNotFound), errors.Is(err, core.ErrTransactionNotFound):
		status = http.StatusNotFound
		reason = err.Error()
	case errors.Is(err, core.ErrInvalidWalletAddress),
		errors.Is(err, core.ErrWalletExists),
		errors.Is(err, core.ErrWalletLimitReached):
		status = http.StatusBadRequest
		reason = err.Error()
	case errors.Is(err, core.ErrUpstreamUnavailable):
		status = http.StatusBadGateway
		reason = "block explorer unavailable"
	case errors.Is(err, core.ErrSummaryFailed):
		status = http.StatusInternalServerError
		reason = "summary generation failed"
	}

	h.respond(w, Response{
		Message: message,
		Error:   reason,
	}, status, requestID)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestID)
}

// walletLoginError maps challenge-validation sentinels to 400 responses with
// a coarse reason. The reasons differentiate checks for developer debugging;
// none of them leaks signer material.
func walletLoginError(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrMissingField),
		errors.Is(err, auth.ErrInvalidAddress),
		errors.Is(err, auth.ErrMessageMismatch),
		errors.Is(err, auth.ErrChallengeExpired),
		errors.Is(err, auth.ErrInvalidSignature),
		errors.Is(err, auth.ErrAddressMismatch):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "unexpected error occurred"
	}
}

func (h *DashboardHandler) respond(w http.ResponseWriter, resp any, code int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestID)
	}
}

func requestIDFrom(r *http.Request) string {
	requestID, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestID
}

func userIDFrom(r *http.Request) string {
	userID, _ := r.Context().Value(middleware.UserIDKey).(string)
	return userID
}
