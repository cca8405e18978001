package postgres

import (
	"context"
	"time"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.SpinRepository = (*SpinRepositoryImpl)(nil)

// SpinRepositoryImpl is the PostgreSQL implementation of SpinRepository
type SpinRepositoryImpl struct {
	*TransactionManager
}

func NewSpinRepository(pool *pgxpool.Pool) repository.SpinRepository {
	return &SpinRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Insert creates a new spin record
func (r *SpinRepositoryImpl) Insert(ctx context.Context, s *model.Spin, tx pgx.Tx) error {
	query := `
        INSERT INTO spins (user_id, wheel_id, purchase_id, prize_tier_id, payout)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, s.UserID, s.WheelID, s.PurchaseID, s.PrizeTierID, s.Payout).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return wrapStorageErr("failed to insert spin", err)
	}
	return nil
}

// EligibilityCounts computes both eligibility inputs in one statement so they
// come from a single snapshot; two independent queries could observe a spin
// committed between them and tear the view.
func (r *SpinRepositoryImpl) EligibilityCounts(ctx context.Context, userID, wheelID int64, periodStart time.Time, tx ...pgx.Tx) (int, int, error) {
	query := `
        SELECT
            COALESCE((SELECT SUM(p.quantity - p.credits_consumed)
                      FROM purchases p
                      WHERE p.user_id = $1 AND p.wheel_id = $2 AND p.status IN ($3, $4)), 0),
            (SELECT COUNT(*)
             FROM spins s
             WHERE s.user_id = $1 AND s.wheel_id = $2 AND s.purchase_id IS NULL AND s.created_at >= $5)`

	var paidRemaining, freeTaken int
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID, wheelID, model.StatusPaid, model.StatusWalletSettled, periodStart).
		Scan(&paidRemaining, &freeTaken)
	if err != nil {
		return 0, 0, wrapStorageErr("failed to compute eligibility counts", err)
	}
	return paidRemaining, freeTaken, nil
}

// AcquireFreeSpinLock serializes free-spin execution per (user, wheel). The
// advisory lock is transaction-scoped and held in Postgres, so it is safe
// across service instances; the count-then-insert pair behind it cannot race.
func (r *SpinRepositoryImpl) AcquireFreeSpinLock(ctx context.Context, userID, wheelID int64, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, int32(userID), int32(wheelID))
	if err != nil {
		return wrapStorageErr("failed to acquire free spin lock", err)
	}
	return nil
}

// ListByUser retrieves paginated spins for a user
func (r *SpinRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Spin, error) {
	query := `
        SELECT id, user_id, wheel_id, purchase_id, prize_tier_id, payout, created_at
        FROM spins WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, wrapStorageErr("failed to query spins", err)
	}
	defer rows.Close()

	var spins []*model.Spin
	for rows.Next() {
		s := &model.Spin{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.WheelID, &s.PurchaseID, &s.PrizeTierID, &s.Payout, &s.CreatedAt); err != nil {
			return nil, wrapStorageErr("failed to scan spin", err)
		}
		spins = append(spins, s)
	}
	return spins, nil
}
