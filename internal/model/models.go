package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Type      WalletType      `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SpinWheel is read-mostly configuration owned by the admin workflow.
// TicketPrice <= 0 means the wheel is free to spin.
type SpinWheel struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	TicketPrice     decimal.Decimal `json:"ticket_price"`
	Active          bool            `json:"active"`
	FreeSpinsPerDay int             `json:"free_spins_per_day"`
	Tiers           []PrizeTier     `json:"tiers,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (w *SpinWheel) Free() bool {
	return w.TicketPrice.LessThanOrEqual(decimal.Zero)
}

type PrizeTier struct {
	ID        int64           `json:"id"`
	WheelID   int64           `json:"wheel_id"`
	Label     string          `json:"label"`
	Weight    int             `json:"weight"`
	Payout    decimal.Decimal `json:"payout"`
	SortOrder int             `json:"sort_order"`
}

type Purchase struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	WheelID          int64          `json:"wheel_id"`
	Quantity         int            `json:"quantity"`
	CreditsConsumed  int            `json:"credits_consumed"`
	Method           PaymentMethod  `json:"method"`
	ExternalRef      *string        `json:"external_ref,omitempty"`
	Status           PurchaseStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CreditsRemaining is the number of spins still owed on this purchase.
func (p *Purchase) CreditsRemaining() int {
	return p.Quantity - p.CreditsConsumed
}

// Spin is the immutable record of one executed spin. PurchaseID is nil for
// free spins; it is a weak back-reference for consumption accounting only.
type Spin struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	WheelID     int64           `json:"wheel_id"`
	PurchaseID  *int64          `json:"purchase_id,omitempty"`
	PrizeTierID int64           `json:"prize_tier_id"`
	Payout      decimal.Decimal `json:"payout"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EligibilitySnapshot is derived on demand and never persisted.
type EligibilitySnapshot struct {
	WheelID             int64 `json:"wheel_id"`
	FreeSpinsRemaining  int   `json:"free_spins_remaining"`
	PaidSpinsRemaining  int   `json:"paid_spins_remaining"`
	IsEligible          bool  `json:"is_eligible"`
}

// Principal is the resolved authenticated identity supplied by the upstream
// auth layer. The core never inspects credentials.
type Principal struct {
	UserID int64
	Role   string
}

type PurchaseRequest struct {
	WheelID       int64  `json:"wheel_id" binding:"required" example:"1"`
	Quantity      int    `json:"quantity" binding:"required,min=1" example:"1"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=wallet provider" example:"wallet" enums:"wallet,provider"`
}

type PurchaseResponse struct {
	PurchaseID  int64  `json:"purchase_id" example:"42"`
	Status      string `json:"status" example:"wallet_settled"`
	Balance     string `json:"balance,omitempty" example:"4000.00"`
	CheckoutRef string `json:"checkout_ref,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type SpinRequest struct {
	WheelID    int64  `json:"wheel_id" binding:"required" example:"1"`
	PurchaseID *int64 `json:"purchase_id,omitempty" example:"42"`
}

type SpinResponse struct {
	Prize   string `json:"prize" example:"10x multiplier"`
	Payout  string `json:"payout" example:"250.00"`
	Balance string `json:"balance" example:"4250.00"`
}

type WebhookRequest struct {
	Reference string `json:"reference" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Outcome   string `json:"outcome" binding:"required,oneof=confirmed declined" example:"confirmed" enums:"confirmed,declined"`
}

type EligibilityResponse struct {
	Wheels []EligibilitySnapshot `json:"wheels"`
}

type BalanceResponse struct {
	UserID  int64  `json:"user_id" example:"1"`
	Balance string `json:"balance" example:"5000.00"`
}

type PurchaseListResponse struct {
	Purchases []*Purchase `json:"purchases"`
	Total     int         `json:"total"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}

type SpinListResponse struct {
	Spins  []*Spin `json:"spins"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

type WheelTierView struct {
	ID     int64   `json:"id"`
	Label  string  `json:"label"`
	Payout string  `json:"payout"`
	Chance float64 `json:"chance"`
}

type WheelView struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	TicketPrice     string          `json:"ticket_price"`
	FreeSpinsPerDay int             `json:"free_spins_per_day"`
	Tiers           []WheelTierView `json:"tiers"`
}

type WheelListResponse struct {
	Wheels []WheelView `json:"wheels"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}
