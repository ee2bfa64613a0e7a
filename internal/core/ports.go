package core

import (
	"context"
	"transactread/internal/etherscan"
	"transactread/internal/openai"
	"transactread/internal/repository"
	tokenIssuer "transactread/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	CreateUser(ctx context.Context, user repository.User) error
	GetWalletByID(ctx context.Context, id string) (repository.Wallet, error)
	GetWalletByAddress(ctx context.Context, address string) (repository.Wallet, error)
	GetWalletsByUser(ctx context.Context, userID string) ([]repository.Wallet, error)
	CountWalletsByUser(ctx context.Context, userID string) (int64, error)
	CreateWallet(ctx context.Context, wallet repository.Wallet) error
	TransactionExists(ctx context.Context, hash string) (bool, error)
	CreateTransaction(ctx context.Context, transaction repository.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (repository.Transaction, error)
	GetTransactionsByWallet(ctx context.Context, walletID string) ([]repository.Transaction, error)
	SetTransactionSummary(ctx context.Context, id string, summary string) error
	DeleteTransactionsByWallet(ctx context.Context, walletID string) (int64, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Explorer . Explorer
type Explorer interface {
	ListTransactions(ctx context.Context, address string) ([]etherscan.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Summarizer . Summarizer
type Summarizer interface {
	Summarize(ctx context.Context, tx openai.TransactionDetails) (string, error)
}
