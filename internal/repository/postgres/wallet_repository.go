package postgres

import (
	"context"
	"errors"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WalletRepository = (*WalletRepositoryImpl)(nil)

// WalletRepositoryImpl is the PostgreSQL implementation of WalletRepository
type WalletRepositoryImpl struct {
	*TransactionManager
}

func NewWalletRepository(pool *pgxpool.Pool) repository.WalletRepository {
	return &WalletRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetByUser retrieves the wallet for (user, type)
func (r *WalletRepositoryImpl) GetByUser(ctx context.Context, userID int64, walletType model.WalletType, tx ...pgx.Tx) (*model.Wallet, error) {
	query := `
        SELECT id, user_id, wallet_type, balance, version, created_at, updated_at
        FROM wallets WHERE user_id = $1 AND wallet_type = $2`

	wallet := &model.Wallet{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID, walletType).
		Scan(&wallet.ID, &wallet.UserID, &wallet.Type, &wallet.Balance, &wallet.Version, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, wrapStorageErr("failed to get wallet", err)
	}
	return wallet, nil
}

// Ensure creates the wallet for (user, type) if missing and returns it
func (r *WalletRepositoryImpl) Ensure(ctx context.Context, userID int64, walletType model.WalletType, tx pgx.Tx) (*model.Wallet, error) {
	// The no-op DO UPDATE makes the row come back on both branches.
	query := `
        INSERT INTO wallets (user_id, wallet_type)
        VALUES ($1, $2)
        ON CONFLICT (user_id, wallet_type) DO UPDATE SET wallet_type = EXCLUDED.wallet_type
        RETURNING id, user_id, wallet_type, balance, version, created_at, updated_at`

	wallet := &model.Wallet{}
	err := tx.QueryRow(ctx, query, userID, walletType).
		Scan(&wallet.ID, &wallet.UserID, &wallet.Type, &wallet.Balance, &wallet.Version, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		return nil, wrapStorageErr("failed to ensure wallet", err)
	}
	return wallet, nil
}

// Debit subtracts amount in a single guarded statement. The balance >= amount
// guard is what serializes concurrent debits on the same row: exactly the
// attempts that fit the balance succeed, the rest see zero rows.
func (r *WalletRepositoryImpl) Debit(ctx context.Context, walletID int64, amount decimal.Decimal, tx pgx.Tx) (decimal.Decimal, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $2, version = version + 1, updated_at = NOW()
        WHERE id = $1 AND balance >= $2
        RETURNING balance`

	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, walletID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, r.classifyDebitMiss(ctx, walletID, tx)
		}
		return decimal.Zero, wrapStorageErr("failed to debit wallet", err)
	}
	return balance, nil
}

// classifyDebitMiss distinguishes a missing wallet from an uncovered debit.
func (r *WalletRepositoryImpl) classifyDebitMiss(ctx context.Context, walletID int64, tx pgx.Tx) error {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM wallets WHERE id = $1`, walletID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrWalletNotFound
		}
		return wrapStorageErr("failed to check wallet", err)
	}
	return model.ErrInsufficientFunds
}

// Credit adds amount, returning the new balance
func (r *WalletRepositoryImpl) Credit(ctx context.Context, walletID int64, amount decimal.Decimal, tx pgx.Tx) (decimal.Decimal, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $2, version = version + 1, updated_at = NOW()
        WHERE id = $1
        RETURNING balance`

	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, walletID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrWalletNotFound
		}
		return decimal.Zero, wrapStorageErr("failed to credit wallet", err)
	}
	return balance, nil
}
