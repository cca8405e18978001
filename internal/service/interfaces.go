package service

import (
	"context"

	"spinwheel-service/internal/model"

	"github.com/shopspring/decimal"
)

// WalletService is the ledger contract: atomic debit/credit against a
// per-user balance that never goes negative.
type WalletService interface {
	Balance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	Credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// PurchaseService owns the purchase state machine.
type PurchaseService interface {
	Create(ctx context.Context, userID int64, req *model.PurchaseRequest) (*model.PurchaseResponse, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Purchase, error)
}

// ReconcileService applies verified provider confirmations to pending purchases.
type ReconcileService interface {
	Reconcile(ctx context.Context, reference string, outcome model.WebhookOutcome) error
}

// EligibilityService derives how many spins a user may take right now.
// Snapshots are always computed fresh, never cached.
type EligibilityService interface {
	ForWheel(ctx context.Context, userID int64, wheel *model.SpinWheel) (*model.EligibilitySnapshot, error)
	ForUser(ctx context.Context, userID int64) ([]model.EligibilitySnapshot, error)
}

// SpinService executes spins, consuming at most one credit per spin.
type SpinService interface {
	Spin(ctx context.Context, userID int64, req *model.SpinRequest) (*model.SpinResponse, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Spin, error)
}

// WheelService exposes the read-only wheel catalog.
type WheelService interface {
	Catalog(ctx context.Context) (*model.WheelListResponse, error)
}

// ExpiryService fails pending purchases that outlived the confirmation TTL.
type ExpiryService interface {
	ExpireStalePending(ctx context.Context) error
}
