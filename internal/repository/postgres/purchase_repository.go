package postgres

import (
	"context"
	"errors"
	"time"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.PurchaseRepository = (*PurchaseRepositoryImpl)(nil)

// PurchaseRepositoryImpl is the PostgreSQL implementation of PurchaseRepository
type PurchaseRepositoryImpl struct {
	*TransactionManager
}

func NewPurchaseRepository(pool *pgxpool.Pool) repository.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const purchaseColumns = `id, user_id, wheel_id, quantity, credits_consumed, method, external_ref, status, created_at, updated_at`

func scanPurchase(row pgx.Row) (*model.Purchase, error) {
	p := &model.Purchase{}
	err := row.Scan(&p.ID, &p.UserID, &p.WheelID, &p.Quantity, &p.CreditsConsumed, &p.Method, &p.ExternalRef, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Insert creates a new purchase record
func (r *PurchaseRepositoryImpl) Insert(ctx context.Context, p *model.Purchase, tx pgx.Tx) error {
	query := `
        INSERT INTO purchases (user_id, wheel_id, quantity, method, external_ref, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, p.UserID, p.WheelID, p.Quantity, p.Method, p.ExternalRef, p.Status).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrPurchaseMismatch
		}
		return wrapStorageErr("failed to insert purchase", err)
	}
	return nil
}

// GetByID retrieves a purchase by primary key
func (r *PurchaseRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`

	executor := r.getExecutor(tx...)
	p, err := scanPurchase(executor.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPurchaseNotFound
		}
		return nil, wrapStorageErr("failed to get purchase", err)
	}
	return p, nil
}

// GetByExternalRef retrieves a purchase by its external payment reference
func (r *PurchaseRepositoryImpl) GetByExternalRef(ctx context.Context, ref string, tx ...pgx.Tx) (*model.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE external_ref = $1`

	executor := r.getExecutor(tx...)
	p, err := scanPurchase(executor.QueryRow(ctx, query, ref))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPurchaseNotFound
		}
		return nil, wrapStorageErr("failed to get purchase by reference", err)
	}
	return p, nil
}

// TransitionFromPending advances a PENDING purchase to target. The status
// guard makes the transition idempotent under duplicate webhook delivery:
// a replay finds zero PENDING rows and reports false instead of re-applying.
func (r *PurchaseRepositoryImpl) TransitionFromPending(ctx context.Context, id int64, target model.PurchaseStatus, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE purchases
        SET status = $2, updated_at = NOW()
        WHERE id = $1 AND status = $3`

	result, err := tx.Exec(ctx, query, id, target, model.StatusPending)
	if err != nil {
		return false, wrapStorageErr("failed to transition purchase", err)
	}
	return result.RowsAffected() == 1, nil
}

// ConsumeCredit advances the monotonic credits_consumed counter. The guard
// (usable status, credits remaining) is what makes two racing spins on the
// last credit resolve to exactly one winner.
func (r *PurchaseRepositoryImpl) ConsumeCredit(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE purchases
        SET credits_consumed = credits_consumed + 1, updated_at = NOW()
        WHERE id = $1
          AND status IN ($2, $3)
          AND credits_consumed < quantity`

	result, err := tx.Exec(ctx, query, id, model.StatusPaid, model.StatusWalletSettled)
	if err != nil {
		return false, wrapStorageErr("failed to consume credit", err)
	}
	return result.RowsAffected() == 1, nil
}

// ListByUser retrieves paginated purchases for a user
func (r *PurchaseRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Purchase, error) {
	query := `
        SELECT ` + purchaseColumns + `
        FROM purchases WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, wrapStorageErr("failed to query purchases", err)
	}
	defer rows.Close()

	var purchases []*model.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, wrapStorageErr("failed to scan purchase", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// ListStalePending retrieves PENDING purchases created before the cutoff
func (r *PurchaseRepositoryImpl) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*model.Purchase, error) {
	query := `
        SELECT ` + purchaseColumns + `
        FROM purchases
        WHERE status = 'pending' AND created_at < $1
        ORDER BY created_at
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, wrapStorageErr("failed to query stale purchases", err)
	}
	defer rows.Close()

	var purchases []*model.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, wrapStorageErr("failed to scan purchase", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// LockPendingForExpiry locks a purchase row for expiry if it is still pending
func (r *PurchaseRepositoryImpl) LockPendingForExpiry(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `SELECT id FROM purchases WHERE id = $1 AND status = 'pending' FOR UPDATE SKIP LOCKED`

	var lockedID int64
	err := tx.QueryRow(ctx, query, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, wrapStorageErr("failed to lock purchase for expiry", err)
	}
	return true, nil
}
