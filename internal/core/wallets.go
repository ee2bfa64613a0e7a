package core

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"transactread/internal/repository"

	"github.com/google/uuid"
)

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// AddWallet registers an address for a user. Addresses are unique
// system-wide; a user holds at most the configured number of wallets.
func (t *TransactRead) AddWallet(ctx context.Context, userID, address, label string) (WalletRecord, error) {
	if !addressPattern.MatchString(address) {
		return WalletRecord{}, ErrInvalidWalletAddress
	}

	count, err := t.repo.CountWalletsByUser(ctx, userID)
	if err != nil {
		return WalletRecord{}, fmt.Errorf("count wallets: %w", err)
	}
	if count >= int64(t.settings.MaxWalletsPerUser) {
		return WalletRecord{}, ErrWalletLimitReached
	}

	_, err = t.repo.GetWalletByAddress(ctx, address)
	if err == nil {
		return WalletRecord{}, ErrWalletExists
	}
	if !errors.Is(err, repository.ErrWalletNotFound) {
		return WalletRecord{}, fmt.Errorf("get wallet by address: %w", err)
	}

	if label == "" {
		label = fmt.Sprintf("Wallet %d", count+1)
	}

	wallet := repository.Wallet{
		ID:        uuid.NewString(),
		Address:   address,
		Label:     label,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.repo.CreateWallet(ctx, wallet); err != nil {
		// Unique index closes the check-then-insert race.
		if errors.Is(err, repository.ErrDuplicateWallet) {
			return WalletRecord{}, ErrWalletExists
		}
		return WalletRecord{}, fmt.Errorf("create wallet: %w", err)
	}

	t.logs.Infow("wallet registered", "user", userID, "address", address)

	return walletToRecord(wallet), nil
}

func (t *TransactRead) ListWallets(ctx context.Context, userID string) ([]WalletRecord, error) {
	wallets, err := t.repo.GetWalletsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallets by user: %w", err)
	}

	records := make([]WalletRecord, len(wallets))
	for i, wallet := range wallets {
		records[i] = walletToRecord(wallet)
	}
	return records, nil
}

func (t *TransactRead) WalletTransactions(ctx context.Context, userID, walletID string) ([]TransactionRecord, error) {
	wallet, err := t.ownedWallet(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	transactions, err := t.repo.GetTransactionsByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, fmt.Errorf("get transactions by wallet: %w", err)
	}

	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = transactionToRecord(tx)
	}
	return records, nil
}

func (t *TransactRead) GetTransaction(ctx context.Context, userID, transactionID string) (TransactionRecord, error) {
	tx, err := t.ownedTransaction(ctx, userID, transactionID)
	if err != nil {
		return TransactionRecord{}, err
	}

	return transactionToRecord(tx), nil
}

// ClearWalletTransactions deletes every transaction of an owned wallet and
// reports how many went away.
func (t *TransactRead) ClearWalletTransactions(ctx context.Context, userID, walletID string) (int64, error) {
	wallet, err := t.ownedWallet(ctx, userID, walletID)
	if err != nil {
		return 0, err
	}

	deleted, err := t.repo.DeleteTransactionsByWallet(ctx, wallet.ID)
	if err != nil {
		return 0, fmt.Errorf("delete transactions by wallet: %w", err)
	}

	t.logs.Infow("wallet transactions cleared", "wallet", wallet.ID, "deleted", deleted)

	return deleted, nil
}

func walletToRecord(wallet repository.Wallet) WalletRecord {
	return WalletRecord{
		ID:        wallet.ID,
		Address:   wallet.Address,
		Label:     wallet.Label,
		UserID:    wallet.UserID,
		CreatedAt: wallet.CreatedAt,
	}
}

func transactionToRecord(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:        tx.ID,
		Hash:      tx.Hash,
		From:      tx.From,
		To:        tx.To,
		Value:     tx.Value,
		Method:    tx.Method,
		Timestamp: tx.Timestamp,
		GasUsed:   tx.GasUsed,
		GasPrice:  tx.GasPrice,
		Category:  Category(tx.Category),
		Summary:   tx.Summary,
		WalletID:  tx.WalletID,
	}
}
