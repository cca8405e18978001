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

type ExpiryServiceImpl struct {
	purchaseRepo repository.PurchaseRepository
	dbManager    repository.DBManager
	pendingTTL   time.Duration
	logger       zerolog.Logger
	now          func() time.Time
}

func NewExpiryService(
	purchaseRepo repository.PurchaseRepository,
	dbManager repository.DBManager,
	pendingTTL time.Duration,
	logger zerolog.Logger,
) ExpiryService {
	return &ExpiryServiceImpl{
		purchaseRepo: purchaseRepo,
		dbManager:    dbManager,
		pendingTTL:   pendingTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// ExpireStalePending fails purchases that have sat in PENDING beyond the
// confirmation TTL. Eligibility already ignores PENDING purchases, so this
// is housekeeping, not correctness: it stops the provider's abandoned
// checkouts from accumulating forever.
func (s *ExpiryServiceImpl) ExpireStalePending(ctx context.Context) error {
	cutoff := s.now().Add(-s.pendingTTL)

	purchases, err := s.purchaseRepo.ListStalePending(ctx, cutoff, 50)
	if err != nil {
		return fmt.Errorf("list stale purchases: %w", err)
	}
	if len(purchases) == 0 {
		s.logger.Debug().Msg("no stale pending purchases to expire")
		return nil
	}

	var expiredCount int
	for _, purchase := range purchases {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var expired bool
		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			// Lock the row to avoid duplicate work when multiple instances run
			locked, err := s.purchaseRepo.LockPendingForExpiry(ctx, purchase.ID, tx)
			if err != nil {
				return fmt.Errorf("lock purchase for expiry: %w", err)
			}
			if !locked {
				s.logger.Debug().Int64("purchase_id", purchase.ID).
					Msg("purchase already claimed or reconciled")
				return nil
			}

			expired, err = s.purchaseRepo.TransitionFromPending(ctx, purchase.ID, model.StatusFailed, tx)
			if err != nil {
				return fmt.Errorf("transition purchase: %w", err)
			}
			return nil
		})
		if err != nil {
			s.logger.Error().Err(err).Int64("purchase_id", purchase.ID).
				Msg("failed to expire purchase")
			continue
		}
		if expired {
			s.logger.Info().Int64("purchase_id", purchase.ID).
				Int64("user_id", purchase.UserID).
				Time("created_at", purchase.CreatedAt).
				Msg("stale pending purchase expired")
			expiredCount++
		}
	}

	s.logger.Info().
		Int("candidates", len(purchases)).
		Int("expired", expiredCount).
		Msg("pending purchase expiry completed")
	return nil
}
