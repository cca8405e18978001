package service

import (
	"context"
	"errors"
	"fmt"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/payment"
	"spinwheel-service/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type PurchaseServiceImpl struct {
	walletRepo   repository.WalletRepository
	wheelRepo    repository.WheelRepository
	purchaseRepo repository.PurchaseRepository
	dbManager    repository.DBManager
	provider     payment.Provider
	currency     string
	logger       zerolog.Logger
}

func NewPurchaseService(
	walletRepo repository.WalletRepository,
	wheelRepo repository.WheelRepository,
	purchaseRepo repository.PurchaseRepository,
	dbManager repository.DBManager,
	provider payment.Provider,
	currency string,
	logger zerolog.Logger,
) PurchaseService {
	return &PurchaseServiceImpl{
		walletRepo:   walletRepo,
		wheelRepo:    wheelRepo,
		purchaseRepo: purchaseRepo,
		dbManager:    dbManager,
		provider:     provider,
		currency:     currency,
		logger:       logger,
	}
}

// Create routes a purchase through the wallet or the external provider.
// Wallet purchases settle synchronously: the debit and the purchase insert
// commit together or not at all. Provider purchases start PENDING with no
// funds movement and are advanced only by reconciliation.
func (s *PurchaseServiceImpl) Create(ctx context.Context, userID int64, req *model.PurchaseRequest) (*model.PurchaseResponse, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", model.ErrInvalidQuantity)
	}

	method, err := model.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	wheel, err := s.wheelRepo.GetWheel(ctx, req.WheelID)
	if err != nil {
		return nil, fmt.Errorf("get wheel: %w", err)
	}
	if !wheel.Active {
		return nil, fmt.Errorf("%w: wheel %d is not active", model.ErrWheelUnavailable, wheel.ID)
	}
	if wheel.Free() {
		return nil, fmt.Errorf("%w: wheel %d has no paid spins", model.ErrWheelUnavailable, wheel.ID)
	}

	total := wheel.TicketPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))

	if method == model.MethodWallet {
		return s.createWalletPurchase(ctx, userID, wheel, req.Quantity, total)
	}
	return s.createProviderPurchase(ctx, userID, wheel, req.Quantity, total)
}

func (s *PurchaseServiceImpl) createWalletPurchase(ctx context.Context, userID int64, wheel *model.SpinWheel, quantity int, total decimal.Decimal) (*model.PurchaseResponse, error) {
	var (
		purchase *model.Purchase
		balance  decimal.Decimal
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		wallet, err := s.walletRepo.GetByUser(ctx, userID, model.WalletCredits, tx)
		if err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}

		balance, err = s.walletRepo.Debit(ctx, wallet.ID, total, tx)
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}

		purchase = &model.Purchase{
			UserID:   userID,
			WheelID:  wheel.ID,
			Quantity: quantity,
			Method:   model.MethodWallet,
			Status:   model.StatusWalletSettled,
		}
		if err := s.purchaseRepo.Insert(ctx, purchase, tx); err != nil {
			return fmt.Errorf("insert purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInsufficientFunds) {
			return nil, fmt.Errorf("%w: insufficient wallet balance", model.ErrPaymentDeclined)
		}
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).
		Int64("wheel_id", wheel.ID).
		Int64("purchase_id", purchase.ID).
		Int("quantity", quantity).
		Str("total", total.StringFixed(2)).
		Str("new_balance", balance.StringFixed(2)).
		Msg("wallet purchase settled")

	return &model.PurchaseResponse{
		PurchaseID: purchase.ID,
		Status:     purchase.Status.String(),
		Balance:    balance.StringFixed(2),
	}, nil
}

func (s *PurchaseServiceImpl) createProviderPurchase(ctx context.Context, userID int64, wheel *model.SpinWheel, quantity int, total decimal.Decimal) (*model.PurchaseResponse, error) {
	ref := uuid.New().String()
	purchase := &model.Purchase{
		UserID:      userID,
		WheelID:     wheel.ID,
		Quantity:    quantity,
		Method:      model.MethodProvider,
		ExternalRef: &ref,
		Status:      model.StatusPending,
	}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		return s.purchaseRepo.Insert(ctx, purchase, tx)
	})
	if err != nil {
		return nil, fmt.Errorf("insert purchase: %w", err)
	}

	initiation, err := s.provider.Initiate(ctx, payment.InitiateRequest{
		PurchaseID: purchase.ID,
		Reference:  ref,
		Amount:     total,
		Currency:   s.currency,
	})
	if err != nil {
		// The purchase cannot be confirmed without an initiated payment;
		// fail it through the ordinary state machine.
		s.failAfterInitiation(ctx, purchase.ID)
		return nil, fmt.Errorf("%w: provider initiation failed: %v", model.ErrPaymentDeclined, err)
	}

	s.logger.Info().Int64("user_id", userID).
		Int64("wheel_id", wheel.ID).
		Int64("purchase_id", purchase.ID).
		Int("quantity", quantity).
		Str("total", total.StringFixed(2)).
		Str("reference", ref).
		Str("provider", s.provider.Name()).
		Msg("external purchase pending")

	return &model.PurchaseResponse{
		PurchaseID:  purchase.ID,
		Status:      purchase.Status.String(),
		CheckoutRef: initiation.CheckoutURL,
	}, nil
}

func (s *PurchaseServiceImpl) failAfterInitiation(ctx context.Context, purchaseID int64) {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		_, err := s.purchaseRepo.TransitionFromPending(ctx, purchaseID, model.StatusFailed, tx)
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("purchase_id", purchaseID).
			Msg("failed to mark purchase failed after initiation error")
	}
}

func (s *PurchaseServiceImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Purchase, error) {
	purchases, err := s.purchaseRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}
