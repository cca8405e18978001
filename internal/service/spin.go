package service

import (
	"context"
	"fmt"
	"time"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type SpinServiceImpl struct {
	walletRepo   repository.WalletRepository
	wheelRepo    repository.WheelRepository
	purchaseRepo repository.PurchaseRepository
	spinRepo     repository.SpinRepository
	dbManager    repository.DBManager
	selector     *PrizeSelector
	logger       zerolog.Logger
	now          func() time.Time
}

func NewSpinService(
	walletRepo repository.WalletRepository,
	wheelRepo repository.WheelRepository,
	purchaseRepo repository.PurchaseRepository,
	spinRepo repository.SpinRepository,
	dbManager repository.DBManager,
	selector *PrizeSelector,
	logger zerolog.Logger,
) SpinService {
	return &SpinServiceImpl{
		walletRepo:   walletRepo,
		wheelRepo:    wheelRepo,
		purchaseRepo: purchaseRepo,
		spinRepo:     spinRepo,
		dbManager:    dbManager,
		selector:     selector,
		logger:       logger,
		now:          time.Now,
	}
}

// Spin executes one spin inside a single transaction: credit reservation,
// prize draw, spin insert, and payout credit commit together or not at all.
// A paid spin reserves its credit through the guarded credits_consumed
// increment; a free spin serializes on a per-(user, wheel) advisory lock.
func (s *SpinServiceImpl) Spin(ctx context.Context, userID int64, req *model.SpinRequest) (*model.SpinResponse, error) {
	var result *model.SpinResponse

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Re-validate inside the transaction: the wheel may have been
		// deactivated between the client's eligibility check and now.
		wheel, err := s.wheelRepo.GetWheel(ctx, req.WheelID, tx)
		if err != nil {
			return fmt.Errorf("get wheel: %w", err)
		}
		if !wheel.Active {
			return fmt.Errorf("%w: wheel %d is not active", model.ErrWheelUnavailable, wheel.ID)
		}

		if req.PurchaseID != nil {
			if err := s.reservePaidCredit(ctx, userID, wheel.ID, *req.PurchaseID, tx); err != nil {
				return err
			}
		} else {
			if err := s.reserveFreeSpin(ctx, userID, wheel, tx); err != nil {
				return err
			}
		}

		tiers, err := s.wheelRepo.GetTiers(ctx, wheel.ID, tx)
		if err != nil {
			return fmt.Errorf("get tiers: %w", err)
		}
		tier, err := s.selector.Select(tiers)
		if err != nil {
			return err
		}

		spin := &model.Spin{
			UserID:      userID,
			WheelID:     wheel.ID,
			PurchaseID:  req.PurchaseID,
			PrizeTierID: tier.ID,
			Payout:      tier.Payout,
		}
		if err := s.spinRepo.Insert(ctx, spin, tx); err != nil {
			return fmt.Errorf("insert spin: %w", err)
		}

		wallet, err := s.walletRepo.Ensure(ctx, userID, model.WalletCredits, tx)
		if err != nil {
			return fmt.Errorf("ensure wallet: %w", err)
		}
		balance := wallet.Balance
		if tier.Payout.IsPositive() {
			balance, err = s.walletRepo.Credit(ctx, wallet.ID, tier.Payout, tx)
			if err != nil {
				return fmt.Errorf("credit payout: %w", err)
			}
		}

		s.logger.Info().Int64("user_id", userID).
			Int64("wheel_id", wheel.ID).
			Int64("spin_id", spin.ID).
			Int64("prize_tier_id", tier.ID).
			Str("payout", tier.Payout.StringFixed(2)).
			Msg("spin executed")

		result = &model.SpinResponse{
			Prize:   tier.Label,
			Payout:  tier.Payout.StringFixed(2),
			Balance: balance.StringFixed(2),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// reservePaidCredit validates the purchase and claims one credit on it.
func (s *SpinServiceImpl) reservePaidCredit(ctx context.Context, userID, wheelID, purchaseID int64, tx pgx.Tx) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, purchaseID, tx)
	if err != nil {
		return fmt.Errorf("get purchase: %w", err)
	}
	if purchase.UserID != userID || purchase.WheelID != wheelID {
		return fmt.Errorf("%w: purchase %d does not belong to user %d on wheel %d",
			model.ErrPurchaseMismatch, purchaseID, userID, wheelID)
	}
	if !purchase.Status.Usable() {
		return fmt.Errorf("%w: purchase %d is %s", model.ErrNotEligible, purchaseID, purchase.Status)
	}
	if purchase.CreditsRemaining() <= 0 {
		return fmt.Errorf("%w: purchase %d has no credits remaining", model.ErrNotEligible, purchaseID)
	}

	consumed, err := s.purchaseRepo.ConsumeCredit(ctx, purchaseID, tx)
	if err != nil {
		return fmt.Errorf("consume credit: %w", err)
	}
	if !consumed {
		// The purchase looked usable a moment ago; a concurrent spin took
		// the last credit first. Expected under load, not an error case.
		s.logger.Debug().Int64("user_id", userID).
			Int64("purchase_id", purchaseID).
			Msg("lost race for last credit")
		return fmt.Errorf("%w: purchase %d", model.ErrCreditExhausted, purchaseID)
	}
	return nil
}

// reserveFreeSpin claims one unit of the per-day free allotment.
func (s *SpinServiceImpl) reserveFreeSpin(ctx context.Context, userID int64, wheel *model.SpinWheel, tx pgx.Tx) error {
	if wheel.FreeSpinsPerDay <= 0 {
		return fmt.Errorf("%w: wheel %d has no free spins", model.ErrNotEligible, wheel.ID)
	}

	if err := s.spinRepo.AcquireFreeSpinLock(ctx, userID, wheel.ID, tx); err != nil {
		return err
	}

	_, freeTaken, err := s.spinRepo.EligibilityCounts(ctx, userID, wheel.ID, freeSpinPeriodStart(s.now()), tx)
	if err != nil {
		return fmt.Errorf("eligibility counts: %w", err)
	}
	if freeTaken >= wheel.FreeSpinsPerDay {
		return fmt.Errorf("%w: free spins used for today on wheel %d", model.ErrNotEligible, wheel.ID)
	}
	return nil
}

func (s *SpinServiceImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Spin, error) {
	spins, err := s.spinRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list spins: %w", err)
	}
	return spins, nil
}
