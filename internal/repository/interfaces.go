package repository

import (
	"context"
	"time"

	"spinwheel-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// WalletRepository defines the ledger operations on per-user balances.
// Debit and Credit are single guarded statements so concurrent mutations on
// the same wallet serialize on the row without read-then-write races.
type WalletRepository interface {
	// GetByUser retrieves the wallet for (user, type)
	GetByUser(ctx context.Context, userID int64, walletType model.WalletType, tx ...pgx.Tx) (*model.Wallet, error)

	// Ensure creates the wallet for (user, type) if missing and returns it (must be in transaction)
	Ensure(ctx context.Context, userID int64, walletType model.WalletType, tx pgx.Tx) (*model.Wallet, error)

	// Debit atomically subtracts amount if the balance covers it, returning the new balance
	Debit(ctx context.Context, walletID int64, amount decimal.Decimal, tx pgx.Tx) (decimal.Decimal, error)

	// Credit atomically adds amount, returning the new balance
	Credit(ctx context.Context, walletID int64, amount decimal.Decimal, tx pgx.Tx) (decimal.Decimal, error)
}

// WheelRepository reads spin wheel configuration. Wheels are mutated only by
// the external admin workflow; the core treats them as read-only.
type WheelRepository interface {
	// GetWheel retrieves a wheel row without its tiers
	GetWheel(ctx context.Context, wheelID int64, tx ...pgx.Tx) (*model.SpinWheel, error)

	// GetTiers retrieves the ordered prize tiers for a wheel
	GetTiers(ctx context.Context, wheelID int64, tx ...pgx.Tx) ([]model.PrizeTier, error)

	// ListActive retrieves all active wheels with tiers populated
	ListActive(ctx context.Context) ([]*model.SpinWheel, error)
}

// PurchaseRepository defines operations on the purchase lifecycle.
type PurchaseRepository interface {
	// Insert creates a new purchase record
	Insert(ctx context.Context, p *model.Purchase, tx pgx.Tx) error

	// GetByID retrieves a purchase by primary key
	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Purchase, error)

	// GetByExternalRef retrieves a purchase by its external payment reference
	GetByExternalRef(ctx context.Context, ref string, tx ...pgx.Tx) (*model.Purchase, error)

	// TransitionFromPending advances a PENDING purchase to target; false when
	// the purchase was not in PENDING (already terminal or missing)
	TransitionFromPending(ctx context.Context, id int64, target model.PurchaseStatus, tx pgx.Tx) (bool, error)

	// ConsumeCredit increments credits_consumed if the purchase is usable and
	// has credits remaining; false when the guard fails
	ConsumeCredit(ctx context.Context, id int64, tx pgx.Tx) (bool, error)

	// ListByUser retrieves paginated purchases for a user
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Purchase, error)

	// ListStalePending retrieves PENDING purchases created before the cutoff
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*model.Purchase, error)

	// LockPendingForExpiry locks a purchase row for expiry if it is still pending
	LockPendingForExpiry(ctx context.Context, id int64, tx pgx.Tx) (bool, error)
}

// SpinRepository defines operations on the spin log and derived eligibility counts.
type SpinRepository interface {
	// Insert creates a new spin record
	Insert(ctx context.Context, s *model.Spin, tx pgx.Tx) error

	// EligibilityCounts returns (paid spins remaining, free spins taken since
	// the period start) for (user, wheel) from one statement, so both counts
	// come from a single consistent snapshot
	EligibilityCounts(ctx context.Context, userID, wheelID int64, periodStart time.Time, tx ...pgx.Tx) (paidRemaining, freeTaken int, err error)

	// AcquireFreeSpinLock serializes free-spin execution per (user, wheel)
	// for the duration of the transaction
	AcquireFreeSpinLock(ctx context.Context, userID, wheelID int64, tx pgx.Tx) error

	// ListByUser retrieves paginated spins for a user
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Spin, error)
}
