package repository

import (
	"context"
	"errors"
	"fmt"
	"transactread/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrWalletNotFound error = errors.New("wallet not found")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrDuplicateWallet error = errors.New("wallet already registered")
var ErrDuplicateTransaction error = errors.New("transaction already recorded")

type DashboardRepository struct {
	db Storage
}

func NewDashboardRepository(db Storage) *DashboardRepository {
	return &DashboardRepository{
		db: db,
	}
}

func (r *DashboardRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Wallet{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *DashboardRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *DashboardRepository) CreateUser(ctx context.Context, user User) error {
	if err := r.db.CreateOne(ctx, &user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *DashboardRepository) GetWalletByID(ctx context.Context, id string) (Wallet, error) {
	var wallet Wallet

	err := r.db.GetOneBy(ctx, "id", id, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by id: %w", err)
	}

	return wallet, nil
}

func (r *DashboardRepository) GetWalletByAddress(ctx context.Context, address string) (Wallet, error) {
	var wallet Wallet

	err := r.db.GetOneBy(ctx, "address", address, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by address: %w", err)
	}

	return wallet, nil
}

func (r *DashboardRepository) GetWalletsByUser(ctx context.Context, userID string) ([]Wallet, error) {
	wallets := []Wallet{}
	err := r.db.ListBy(ctx, "user_id", userID, "created_at asc", &wallets)
	if err != nil {
		return nil, fmt.Errorf("get wallets by user: %w", err)
	}

	return wallets, nil
}

func (r *DashboardRepository) CountWalletsByUser(ctx context.Context, userID string) (int64, error) {
	count, err := r.db.CountBy(ctx, "user_id", userID, &Wallet{})
	if err != nil {
		return 0, fmt.Errorf("count wallets by user: %w", err)
	}

	return count, nil
}

func (r *DashboardRepository) CreateWallet(ctx context.Context, wallet Wallet) error {
	err := r.db.CreateOne(ctx, &wallet)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateWallet
		}
		return fmt.Errorf("create wallet: %w", err)
	}

	return nil
}

func (r *DashboardRepository) TransactionExists(ctx context.Context, hash string) (bool, error) {
	exists, err := r.db.ExistsBy(ctx, "hash", hash, &Transaction{})
	if err != nil {
		return false, fmt.Errorf("transaction exists: %w", err)
	}

	return exists, nil
}

// CreateTransaction inserts a synced transaction. Losing a hash-uniqueness
// race surfaces as ErrDuplicateTransaction, which sync treats as "already
// exists" to stay idempotent.
func (r *DashboardRepository) CreateTransaction(ctx context.Context, transaction Transaction) error {
	err := r.db.CreateOne(ctx, &transaction)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("create transaction: %w", err)
	}

	return nil
}

func (r *DashboardRepository) GetTransactionByID(ctx context.Context, id string) (Transaction, error) {
	var transaction Transaction

	err := r.db.GetOneBy(ctx, "id", id, &transaction)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}

	return transaction, nil
}

func (r *DashboardRepository) GetTransactionsByWallet(ctx context.Context, walletID string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.ListBy(ctx, "wallet_id", walletID, "timestamp desc", &transactions)
	if err != nil {
		return nil, fmt.Errorf("get transactions by wallet: %w", err)
	}

	return transactions, nil
}

func (r *DashboardRepository) SetTransactionSummary(ctx context.Context, id string, summary string) error {
	err := r.db.UpdateOneBy(ctx, "id", id, &Transaction{}, map[string]any{"summary": summary})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("set transaction summary: %w", err)
	}

	return nil
}

func (r *DashboardRepository) DeleteTransactionsByWallet(ctx context.Context, walletID string) (int64, error) {
	deleted, err := r.db.DeleteAllBy(ctx, "wallet_id", walletID, &Transaction{})
	if err != nil {
		return 0, fmt.Errorf("delete transactions by wallet: %w", err)
	}

	return deleted, nil
}
