package service

import (
	"context"
	"fmt"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type ReconcileServiceImpl struct {
	purchaseRepo repository.PurchaseRepository
	dbManager    repository.DBManager
	logger       zerolog.Logger
}

func NewReconcileService(
	purchaseRepo repository.PurchaseRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) ReconcileService {
	return &ReconcileServiceImpl{
		purchaseRepo: purchaseRepo,
		dbManager:    dbManager,
		logger:       logger,
	}
}

// Reconcile applies a verified provider outcome to a pending purchase.
// Replays are acknowledged as successful no-ops: external providers retry
// deliveries, and an error response would make them retry forever. Only an
// unknown reference is an error.
func (s *ReconcileServiceImpl) Reconcile(ctx context.Context, reference string, outcome model.WebhookOutcome) error {
	target := outcome.TargetStatus()

	purchase, err := s.purchaseRepo.GetByExternalRef(ctx, reference)
	if err != nil {
		return fmt.Errorf("get purchase by reference: %w", err)
	}

	var applied bool
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		applied, err = s.purchaseRepo.TransitionFromPending(ctx, purchase.ID, target, tx)
		if err != nil {
			return fmt.Errorf("transition purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if applied {
		s.logger.Info().Int64("purchase_id", purchase.ID).
			Str("reference", reference).
			Str("outcome", outcome.String()).
			Str("status", target.String()).
			Msg("purchase reconciled")
		return nil
	}

	// Zero rows means the purchase left PENDING before this delivery: either
	// a duplicate of the same event or a conflicting one arriving late.
	current, err := s.purchaseRepo.GetByID(ctx, purchase.ID)
	if err != nil {
		return fmt.Errorf("get purchase after no-op reconcile: %w", err)
	}

	if current.Status == target {
		s.logger.Info().Int64("purchase_id", purchase.ID).
			Str("reference", reference).
			Str("outcome", outcome.String()).
			Msg("duplicate reconciliation acknowledged")
	} else {
		s.logger.Warn().Int64("purchase_id", purchase.ID).
			Str("reference", reference).
			Str("outcome", outcome.String()).
			Str("current_status", current.Status.String()).
			Msg("conflicting reconciliation ignored")
	}
	return nil
}
