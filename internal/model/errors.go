package model

import "errors"

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrPaymentDeclined        = errors.New("payment declined")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrWheelUnavailable       = errors.New("wheel unavailable")
	ErrNotEligible            = errors.New("not eligible")
	ErrCreditExhausted        = errors.New("credit exhausted")
	ErrPurchaseMismatch       = errors.New("purchase mismatch")
	ErrStorageUnavailable     = errors.New("storage unavailable")

	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrInvalidOutcome  = errors.New("invalid webhook outcome")

	ErrWalletNotFound   = errors.New("wallet not found")
	ErrWheelNotFound    = errors.New("wheel not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrNoPrizeTiers     = errors.New("wheel has no drawable prize tiers")
)
