package core

import (
	"context"
	"errors"
	"fmt"
	"time"
	"transactread/internal/auth"
	"transactread/internal/repository"
	tokenIssuer "transactread/pkg/jwt"

	"go.uber.org/zap"
)

var ErrWalletNotFound error = errors.New("wallet not found")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrInvalidWalletAddress error = errors.New("invalid wallet address")
var ErrWalletExists error = errors.New("wallet address already registered")
var ErrWalletLimitReached error = errors.New("wallet limit reached")
var ErrUpstreamUnavailable error = errors.New("block explorer unavailable")
var ErrSummaryFailed error = errors.New("summary generation failed")

// Settings are the policy knobs of the dashboard, injected from config.
type Settings struct {
	MaxWalletsPerUser int
	TokenExpiration   time.Duration
}

// TransactRead is the dashboard service: wallet-signature authentication,
// wallet registration, transaction sync/categorization and summary
// enrichment.
type TransactRead struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	explorer   Explorer
	summarizer Summarizer
	settings   Settings
}

func NewTransactRead(
	logger *zap.SugaredLogger,
	repo Repository,
	jwt JWTIssuer,
	explorer Explorer,
	summarizer Summarizer,
	settings Settings,
) *TransactRead {
	return &TransactRead{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		explorer:   explorer,
		summarizer: summarizer,
		settings:   settings,
	}
}

// AuthenticateWallet validates a signed challenge, upserts the wallet user
// and issues a bearer token carrying the wallet auth-method claim. Validation
// failures pass through as the auth package sentinels.
func (t *TransactRead) AuthenticateWallet(ctx context.Context, msg WalletAuthMessage) (AuthSession, error) {
	address, err := auth.ValidateChallenge(auth.Challenge{
		Address:   msg.Address,
		Message:   msg.Message,
		Signature: msg.Signature,
		Timestamp: msg.Timestamp,
	})
	if err != nil {
		return AuthSession{}, fmt.Errorf("validate challenge: %w", err)
	}

	user, err := t.repo.GetUserByID(ctx, address)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return AuthSession{}, fmt.Errorf("get user: %w", err)
		}

		user = repository.User{
			ID:        address,
			Email:     placeholderEmail(address),
			CreatedAt: time.Now().UTC(),
		}
		if err := t.repo.CreateUser(ctx, user); err != nil {
			return AuthSession{}, fmt.Errorf("create user: %w", err)
		}

		t.logs.Infow("wallet user created", "address", address)
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Subject:    user.ID,
		Email:      user.Email,
		AuthMethod: tokenIssuer.AuthMethodWallet,
		Expiration: t.settings.TokenExpiration,
	}
	token := t.jwtIssuer.Generate(tokenInfo)
	signed, err := t.jwtIssuer.Sign(token)
	if err != nil {
		return AuthSession{}, fmt.Errorf("signing token: %w", err)
	}

	return AuthSession{
		Token: signed,
		User:  UserRecord{ID: user.ID, Email: user.Email},
	}, nil
}

// placeholderEmail synthesizes a unique email for wallet-only users; the
// users table requires one.
func placeholderEmail(address string) string {
	return fmt.Sprintf("%s@wallet.transactread.io", address)
}
