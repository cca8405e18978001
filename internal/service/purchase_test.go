package service

import (
	"context"
	"errors"
	"testing"

	"spinwheel-service/internal/config"
	"spinwheel-service/internal/model"
	"spinwheel-service/internal/payment"
	mocks "spinwheel-service/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sandboxProvider() payment.Provider {
	return payment.NewSandboxProvider(config.PaymentConfig{
		ProviderName: "sandbox",
		CheckoutURL:  "https://sandbox.pay.example.com/checkout",
		Currency:     "IDR",
	})
}

type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }
func (failingProvider) Initiate(context.Context, payment.InitiateRequest) (*payment.Initiation, error) {
	return nil, errors.New("provider down")
}

func activeWheel() *model.SpinWheel {
	return &model.SpinWheel{
		ID:          1,
		Name:        "Daily Wheel",
		TicketPrice: decimal.NewFromInt(1000),
		Active:      true,
	}
}

func TestCreatePurchase_Wallet_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1)).Return(activeWheel(), nil)
	mockWalletRepo.On("GetByUser", ctx, int64(1), model.WalletCredits, mock.Anything).Return(&model.Wallet{
		ID:      7,
		UserID:  1,
		Balance: decimal.NewFromInt(5000),
	}, nil)
	mockWalletRepo.On("Debit", ctx, int64(7), decimal.NewFromInt(1000), mock.Anything).Return(decimal.NewFromInt(4000), nil)
	mockPurchaseRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Purchase) bool {
		return p.UserID == 1 &&
			p.WheelID == 1 &&
			p.Quantity == 1 &&
			p.Method == model.MethodWallet &&
			p.Status == model.StatusWalletSettled
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Purchase).ID = 42
	}).Return(nil)

	service := NewPurchaseService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockDBManager, sandboxProvider(), "IDR", logger)

	resp, err := service.Create(ctx, 1, &model.PurchaseRequest{
		WheelID:       1,
		Quantity:      1,
		PaymentMethod: "wallet",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.PurchaseID)
	assert.Equal(t, "wallet_settled", resp.Status)
	assert.Equal(t, "4000.00", resp.Balance)
}

func TestCreatePurchase_Wallet_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1)).Return(activeWheel(), nil)
	mockWalletRepo.On("GetByUser", ctx, int64(1), model.WalletCredits, mock.Anything).Return(&model.Wallet{
		ID:      7,
		UserID:  1,
		Balance: decimal.NewFromInt(500),
	}, nil)
	mockWalletRepo.On("Debit", ctx, int64(7), decimal.NewFromInt(2000), mock.Anything).Return(decimal.Zero, model.ErrInsufficientFunds)

	service := NewPurchaseService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockDBManager, sandboxProvider(), "IDR", logger)

	resp, err := service.Create(ctx, 1, &model.PurchaseRequest{
		WheelID:       1,
		Quantity:      2,
		PaymentMethod: "wallet",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrPaymentDeclined)
}

func TestCreatePurchase_InactiveWheel(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	wheel := activeWheel()
	wheel.Active = false
	mockWheelRepo.On("GetWheel", ctx, int64(1)).Return(wheel, nil)

	service := NewPurchaseService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockDBManager, sandboxProvider(), "IDR", logger)

	resp, err := service.Create(ctx, 1, &model.PurchaseRequest{
		WheelID:       1,
		Quantity:      1,
		PaymentMethod: "wallet",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrWheelUnavailable)
}

func TestCreatePurchase_FreeWheel_NoPaidSpins(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	wheel := activeWheel()
	wheel.TicketPrice = decimal.Zero
	mockWheelRepo.On("GetWheel", ctx, int64(1)).Return(wheel, nil)

	service := NewPurchaseService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockDBManager, sandboxProvider(), "IDR", logger)

	resp, err := service.Create(ctx, 1, &model.PurchaseRequest{
		WheelID:       1,
		Quantity:      1,
		PaymentMethod: "wallet",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrWheelUnavailable)
}

func TestCreatePurchase_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	service := NewPurchaseService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockDBManager, sandboxProvider(), "IDR", logger)

	resp, err := service.Create(ctx, 1, &model.PurchaseRequest{
		WheelID:       1,
		Quantity:      0,
		PaymentMethod: "wallet",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
}

func TestCreatePurchase_InvalidMethod(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	service := NewPurchaseService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockDBManager, sandboxProvider(), "IDR", logger)

	resp, err := service.Create(ctx, 1, &model.PurchaseRequest{
		WheelID:       1,
		Quantity:      1,
		PaymentMethod: "cash",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInvalidMethod)
}

func TestCreatePurchase_Provider_Pending(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1)).Return(activeWheel(), nil)
	mockPurchaseRepo.On("Insert", ctx, mock.MatchedBy(func(p *model.Purchase) bool {
		return p.Method == model.MethodProvider &&
			p.Status == model.StatusPending &&
			p.ExternalRef != nil &&
			p.Quantity == 3
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Purchase).ID = 43
	}).Return(nil)

	service := NewPurchaseService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockDBManager, sandboxProvider(), "IDR", logger)

	resp, err := service.Create(ctx, 1, &model.PurchaseRequest{
		WheelID:       1,
		Quantity:      3,
		PaymentMethod: "provider",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(43), resp.PurchaseID)
	assert.Equal(t, "pending", resp.Status)
	assert.Contains(t, resp.CheckoutRef, "amount=3000.00")
	assert.Empty(t, resp.Balance)
}

func TestCreatePurchase_Provider_InitiationFailure(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1)).Return(activeWheel(), nil)
	mockPurchaseRepo.On("Insert", ctx, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Purchase).ID = 44
	}).Return(nil)
	mockPurchaseRepo.On("TransitionFromPending", ctx, int64(44), model.StatusFailed, mock.Anything).Return(true, nil)

	service := NewPurchaseService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockDBManager, failingProvider{}, "IDR", logger)

	resp, err := service.Create(ctx, 1, &model.PurchaseRequest{
		WheelID:       1,
		Quantity:      1,
		PaymentMethod: "provider",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrPaymentDeclined)
}
