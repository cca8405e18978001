package postgres

import (
	"context"
	"errors"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WheelRepository = (*WheelRepositoryImpl)(nil)

// WheelRepositoryImpl is the PostgreSQL implementation of WheelRepository
type WheelRepositoryImpl struct {
	*TransactionManager
}

func NewWheelRepository(pool *pgxpool.Pool) repository.WheelRepository {
	return &WheelRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetWheel retrieves a wheel row without its tiers
func (r *WheelRepositoryImpl) GetWheel(ctx context.Context, wheelID int64, tx ...pgx.Tx) (*model.SpinWheel, error) {
	query := `
        SELECT id, name, ticket_price, active, free_spins_per_day, created_at, updated_at
        FROM spin_wheels WHERE id = $1`

	wheel := &model.SpinWheel{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, wheelID).
		Scan(&wheel.ID, &wheel.Name, &wheel.TicketPrice, &wheel.Active, &wheel.FreeSpinsPerDay, &wheel.CreatedAt, &wheel.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWheelNotFound
		}
		return nil, wrapStorageErr("failed to get wheel", err)
	}
	return wheel, nil
}

// GetTiers retrieves the ordered prize tiers for a wheel
func (r *WheelRepositoryImpl) GetTiers(ctx context.Context, wheelID int64, tx ...pgx.Tx) ([]model.PrizeTier, error) {
	query := `
        SELECT id, wheel_id, label, weight, payout, sort_order
        FROM prize_tiers WHERE wheel_id = $1
        ORDER BY sort_order, id`

	executor := r.getExecutor(tx...)
	rows, err := executor.Query(ctx, query, wheelID)
	if err != nil {
		return nil, wrapStorageErr("failed to query prize tiers", err)
	}
	defer rows.Close()

	var tiers []model.PrizeTier
	for rows.Next() {
		var t model.PrizeTier
		if err := rows.Scan(&t.ID, &t.WheelID, &t.Label, &t.Weight, &t.Payout, &t.SortOrder); err != nil {
			return nil, wrapStorageErr("failed to scan prize tier", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}

// ListActive retrieves all active wheels with tiers populated
func (r *WheelRepositoryImpl) ListActive(ctx context.Context) ([]*model.SpinWheel, error) {
	query := `
        SELECT id, name, ticket_price, active, free_spins_per_day, created_at, updated_at
        FROM spin_wheels WHERE active
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapStorageErr("failed to query wheels", err)
	}
	defer rows.Close()

	var wheels []*model.SpinWheel
	for rows.Next() {
		wheel := &model.SpinWheel{}
		if err := rows.Scan(&wheel.ID, &wheel.Name, &wheel.TicketPrice, &wheel.Active, &wheel.FreeSpinsPerDay, &wheel.CreatedAt, &wheel.UpdatedAt); err != nil {
			return nil, wrapStorageErr("failed to scan wheel", err)
		}
		wheels = append(wheels, wheel)
	}
	rows.Close()

	for _, wheel := range wheels {
		tiers, err := r.GetTiers(ctx, wheel.ID)
		if err != nil {
			return nil, err
		}
		wheel.Tiers = tiers
	}
	return wheels, nil
}
