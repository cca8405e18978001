// Package payment holds the outbound boundary to the external payment
// provider. Only initiation lives here; confirmation arrives through the
// webhook endpoint after signature verification upstream.
package payment

import (
	"context"
	"fmt"

	"spinwheel-service/internal/config"

	"github.com/shopspring/decimal"
)

type InitiateRequest struct {
	PurchaseID int64
	Reference  string
	Amount     decimal.Decimal
	Currency   string
}

type Initiation struct {
	Reference   string
	CheckoutURL string
}

// Provider initiates an external payment for a pending purchase.
type Provider interface {
	Name() string
	Initiate(ctx context.Context, req InitiateRequest) (*Initiation, error)
}

// SandboxProvider fabricates checkout references against a configured base
// URL. It stands in for the real provider client in dev and tests.
type SandboxProvider struct {
	name        string
	checkoutURL string
}

var _ Provider = (*SandboxProvider)(nil)

func NewSandboxProvider(cfg config.PaymentConfig) *SandboxProvider {
	return &SandboxProvider{
		name:        cfg.ProviderName,
		checkoutURL: cfg.CheckoutURL,
	}
}

func (p *SandboxProvider) Name() string {
	return p.name
}

func (p *SandboxProvider) Initiate(_ context.Context, req InitiateRequest) (*Initiation, error) {
	return &Initiation{
		Reference:   req.Reference,
		CheckoutURL: fmt.Sprintf("%s?ref=%s&amount=%s&currency=%s", p.checkoutURL, req.Reference, req.Amount.StringFixed(2), req.Currency),
	}, nil
}
