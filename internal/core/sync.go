package core

import (
	"context"
	"errors"
	"fmt"
	"transactread/internal/etherscan"
	"transactread/internal/repository"

	"github.com/google/uuid"
)

// SyncWallet pulls the wallet's transaction history from the block explorer
// and persists every not-yet-seen hash with its category. Already-seen hashes
// are skipped, so repeated syncs of an unchanged history are no-ops. Records
// created before a mid-loop failure stay persisted; there is no cross-record
// rollback.
func (t *TransactRead) SyncWallet(ctx context.Context, userID, walletID string) (SyncResult, error) {
	wallet, err := t.ownedWallet(ctx, userID, walletID)
	if err != nil {
		return SyncResult{}, err
	}

	fetched, err := t.explorer.ListTransactions(ctx, wallet.Address)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}

	t.logs.Infow("transactions fetched from explorer", "wallet", wallet.Address, "count", len(fetched))

	synced := 0
	for _, tx := range fetched {
		exists, err := t.repo.TransactionExists(ctx, tx.Hash)
		if err != nil {
			return SyncResult{Synced: synced, Total: len(fetched)}, fmt.Errorf("transaction exists: %w", err)
		}
		if exists {
			continue
		}

		record := fetchedToRecord(tx, wallet)
		if err := t.repo.CreateTransaction(ctx, record); err != nil {
			// A concurrent sync won the insert race for this hash.
			if errors.Is(err, repository.ErrDuplicateTransaction) {
				continue
			}
			return SyncResult{Synced: synced, Total: len(fetched)}, fmt.Errorf("create transaction: %w", err)
		}
		synced++
	}

	t.logs.Infow("wallet synced", "wallet", wallet.Address, "new", synced, "total", len(fetched))

	return SyncResult{Synced: synced, Total: len(fetched)}, nil
}

func fetchedToRecord(tx etherscan.Transaction, wallet repository.Wallet) repository.Transaction {
	return repository.Transaction{
		ID:        uuid.NewString(),
		Hash:      tx.Hash,
		From:      tx.From,
		To:        toPtr(tx.To),
		Value:     tx.Value,
		Method:    methodPtr(tx.Method),
		Timestamp: tx.Timestamp,
		GasUsed:   tx.GasUsed,
		GasPrice:  tx.GasPrice,
		Category:  string(Categorize(tx, wallet.Address)),
		WalletID:  wallet.ID,
	}
}

// ownedWallet loads a wallet and enforces ownership. A wallet that exists
// but belongs to someone else is reported as not found.
func (t *TransactRead) ownedWallet(ctx context.Context, userID, walletID string) (repository.Wallet, error) {
	wallet, err := t.repo.GetWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return repository.Wallet{}, ErrWalletNotFound
		}
		return repository.Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	if wallet.UserID != userID {
		return repository.Wallet{}, ErrWalletNotFound
	}
	return wallet, nil
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func methodPtr(method string) *string {
	if method == "" || method == nullSelector {
		return nil
	}
	return &method
}
