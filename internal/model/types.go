package model

// PurchaseStatus is the purchase state machine. WALLET_SETTLED is the
// immediate terminal-success state for wallet-paid purchases; external
// purchases start PENDING and are advanced only by reconciliation.
type PurchaseStatus string

const (
	StatusPending       PurchaseStatus = "pending"
	StatusPaid          PurchaseStatus = "paid"
	StatusFailed        PurchaseStatus = "failed"
	StatusWalletSettled PurchaseStatus = "wallet_settled"
)

func (s PurchaseStatus) String() string {
	return string(s)
}

// Usable reports whether spins may be taken against a purchase in this state.
func (s PurchaseStatus) Usable() bool {
	return s == StatusPaid || s == StatusWalletSettled
}

// Terminal reports whether no further transition may leave this state.
func (s PurchaseStatus) Terminal() bool {
	return s != StatusPending
}

// CanTransition reports whether s -> target is a legal transition.
// Only PENDING may move, and only to PAID or FAILED.
func (s PurchaseStatus) CanTransition(target PurchaseStatus) bool {
	return s == StatusPending && (target == StatusPaid || target == StatusFailed)
}

// PaymentMethod distinguishes wallet-settled purchases from external providers.
type PaymentMethod string

const (
	MethodWallet   PaymentMethod = "wallet"
	MethodProvider PaymentMethod = "provider"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case string(MethodWallet):
		return MethodWallet, nil
	case string(MethodProvider):
		return MethodProvider, nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// WebhookOutcome is the verified outcome delivered by the payment provider.
type WebhookOutcome string

const (
	OutcomeConfirmed WebhookOutcome = "confirmed"
	OutcomeDeclined  WebhookOutcome = "declined"
)

func ParseWebhookOutcome(s string) (WebhookOutcome, error) {
	switch s {
	case string(OutcomeConfirmed):
		return OutcomeConfirmed, nil
	case string(OutcomeDeclined):
		return OutcomeDeclined, nil
	default:
		return "", ErrInvalidOutcome
	}
}

func (o WebhookOutcome) String() string {
	return string(o)
}

// TargetStatus maps a webhook outcome to the purchase state it drives.
func (o WebhookOutcome) TargetStatus() PurchaseStatus {
	if o == OutcomeConfirmed {
		return StatusPaid
	}
	return StatusFailed
}

// WalletType tags the currency-like balance a wallet holds.
type WalletType string

const (
	WalletCredits WalletType = "credits"
)
