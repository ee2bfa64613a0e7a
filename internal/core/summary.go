package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"
	"transactread/internal/openai"
	"transactread/internal/repository"
)

// GenerateSummary asks the language model to describe one transaction and
// persists the result. A quota/rate-limit rejection is a normal condition,
// not an outage: a deterministic fallback summary built from the
// transaction's own fields is persisted and returned with Degraded set. Any
// other client failure propagates as ErrSummaryFailed with nothing persisted,
// leaving the transaction eligible for retry.
func (t *TransactRead) GenerateSummary(ctx context.Context, userID, transactionID string) (SummaryResult, error) {
	tx, err := t.ownedTransaction(ctx, userID, transactionID)
	if err != nil {
		return SummaryResult{}, err
	}

	summary, err := t.summarizer.Summarize(ctx, transactionDetails(tx))
	degraded := false
	if err != nil {
		if !errors.Is(err, openai.ErrQuotaExceeded) {
			return SummaryResult{}, fmt.Errorf("%w: %s", ErrSummaryFailed, err)
		}

		summary = fallbackSummary(tx)
		degraded = true
		t.logs.Infow("summary quota exceeded, using fallback",
			"transaction", tx.ID,
			"summary", summary)
	}

	if err := t.repo.SetTransactionSummary(ctx, tx.ID, summary); err != nil {
		return SummaryResult{}, fmt.Errorf("set transaction summary: %w", err)
	}

	return SummaryResult{Summary: summary, Degraded: degraded}, nil
}

func (t *TransactRead) ownedTransaction(ctx context.Context, userID, transactionID string) (repository.Transaction, error) {
	tx, err := t.repo.GetTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return repository.Transaction{}, ErrTransactionNotFound
		}
		return repository.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}

	wallet, err := t.repo.GetWalletByID(ctx, tx.WalletID)
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("get owning wallet: %w", err)
	}
	if wallet.UserID != userID {
		return repository.Transaction{}, ErrTransactionNotFound
	}

	return tx, nil
}

func transactionDetails(tx repository.Transaction) openai.TransactionDetails {
	return openai.TransactionDetails{
		Hash:      tx.Hash,
		From:      tx.From,
		To:        tx.To,
		Value:     tx.Value,
		Method:    tx.Method,
		Category:  tx.Category,
		Timestamp: tx.Timestamp.Format(time.RFC3339),
		GasUsed:   tx.GasUsed,
		GasPrice:  tx.GasPrice,
	}
}

// fallbackSummary builds a summary from the transaction's own fields, used
// when the provider rejects on quota.
func fallbackSummary(tx repository.Transaction) string {
	if tx.To == nil {
		return fmt.Sprintf("Transaction: %s - %s ETH (contract creation)", tx.Category, formatEther(tx.Value))
	}
	return fmt.Sprintf("Transaction: %s - %s ETH to %s", tx.Category, formatEther(tx.Value), truncateAddress(*tx.To))
}

// formatEther renders a wei-denominated integer string as ETH with six
// decimals.
func formatEther(wei string) string {
	n, ok := new(big.Int).SetString(wei, 10)
	if !ok {
		return wei
	}
	f := new(big.Float).SetInt(n)
	f.Quo(f, big.NewFloat(1e18))
	return f.Text('f', 6)
}

func truncateAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}
