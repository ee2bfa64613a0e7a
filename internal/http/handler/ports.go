package handler

import (
	"context"
	"net/http"
	"transactread/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name DashboardService . DashboardService
type DashboardService interface {
	AuthenticateWallet(ctx context.Context, msg core.WalletAuthMessage) (core.AuthSession, error)
	AddWallet(ctx context.Context, userID, address, label string) (core.WalletRecord, error)
	ListWallets(ctx context.Context, userID string) ([]core.WalletRecord, error)
	WalletTransactions(ctx context.Context, userID, walletID string) ([]core.TransactionRecord, error)
	GetTransaction(ctx context.Context, userID, transactionID string) (core.TransactionRecord, error)
	SyncWallet(ctx context.Context, userID, walletID string) (core.SyncResult, error)
	GenerateSummary(ctx context.Context, userID, transactionID string) (core.SummaryResult, error)
	ClearWalletTransactions(ctx context.Context, userID, walletID string) (int64, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
