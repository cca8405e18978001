package service

import (
	"context"
	"fmt"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type WalletServiceImpl struct {
	walletRepo repository.WalletRepository
	dbManager  repository.DBManager
	logger     zerolog.Logger
}

func NewWalletService(
	walletRepo repository.WalletRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		dbManager:  dbManager,
		logger:     logger,
	}
}

func (s *WalletServiceImpl) Balance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	wallet, err := s.walletRepo.GetByUser(ctx, userID, model.WalletCredits)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	return &model.BalanceResponse{
		UserID:  userID,
		Balance: wallet.Balance.StringFixed(2),
	}, nil
}

// Credit adds amount to the user's wallet, creating it on first use.
// Zero is a valid credit; negative amounts are rejected.
func (s *WalletServiceImpl) Credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: credit amount must not be negative", model.ErrInvalidAmount)
	}

	var balance decimal.Decimal
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		wallet, err := s.walletRepo.Ensure(ctx, userID, model.WalletCredits, tx)
		if err != nil {
			return fmt.Errorf("ensure wallet: %w", err)
		}

		balance, err = s.walletRepo.Credit(ctx, wallet.ID, amount, tx)
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.logger.Info().Int64("user_id", userID).
		Str("amount", amount.StringFixed(2)).
		Str("new_balance", balance.StringFixed(2)).
		Msg("wallet credited")
	return balance, nil
}

// Debit subtracts amount from the user's wallet; fails with
// InsufficientFunds when the balance does not cover it.
func (s *WalletServiceImpl) Debit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: debit amount must be positive", model.ErrInvalidAmount)
	}

	var balance decimal.Decimal
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		wallet, err := s.walletRepo.GetByUser(ctx, userID, model.WalletCredits, tx)
		if err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}

		balance, err = s.walletRepo.Debit(ctx, wallet.ID, amount, tx)
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.logger.Info().Int64("user_id", userID).
		Str("amount", amount.StringFixed(2)).
		Str("new_balance", balance.StringFixed(2)).
		Msg("wallet debited")
	return balance, nil
}
