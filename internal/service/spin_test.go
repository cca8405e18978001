package service

import (
	"context"
	"testing"

	"spinwheel-service/internal/model"
	mocks "spinwheel-service/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func spinWheelWithFreeSpins(free int) *model.SpinWheel {
	return &model.SpinWheel{
		ID:              1,
		Name:            "Daily Wheel",
		TicketPrice:     decimal.NewFromInt(1000),
		Active:          true,
		FreeSpinsPerDay: free,
	}
}

func singleTier() []model.PrizeTier {
	return []model.PrizeTier{
		{ID: 11, WheelID: 1, Label: "250 credits", Weight: 100, Payout: decimal.NewFromInt(250)},
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestSpin_PaidCredit_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(spinWheelWithFreeSpins(0), nil)
	mockPurchaseRepo.On("GetByID", ctx, int64(42), mock.Anything).Return(&model.Purchase{
		ID:              42,
		UserID:          1,
		WheelID:         1,
		Quantity:        3,
		CreditsConsumed: 1,
		Status:          model.StatusPaid,
	}, nil)
	mockPurchaseRepo.On("ConsumeCredit", ctx, int64(42), mock.Anything).Return(true, nil)
	mockWheelRepo.On("GetTiers", ctx, int64(1), mock.Anything).Return(singleTier(), nil)
	mockSpinRepo.On("Insert", ctx, mock.MatchedBy(func(spin *model.Spin) bool {
		return spin.UserID == 1 &&
			spin.WheelID == 1 &&
			spin.PurchaseID != nil && *spin.PurchaseID == 42 &&
			spin.PrizeTierID == 11
	}), mock.Anything).Return(nil)
	mockWalletRepo.On("Ensure", ctx, int64(1), model.WalletCredits, mock.Anything).Return(&model.Wallet{
		ID:      7,
		UserID:  1,
		Balance: decimal.NewFromInt(4000),
	}, nil)
	mockWalletRepo.On("Credit", ctx, int64(7), decimal.NewFromInt(250), mock.Anything).Return(decimal.NewFromInt(4250), nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1, PurchaseID: int64Ptr(42)})

	require.NoError(t, err)
	assert.Equal(t, "250 credits", resp.Prize)
	assert.Equal(t, "250.00", resp.Payout)
	assert.Equal(t, "4250.00", resp.Balance)
}

func TestSpin_ZeroPayout_SkipsCredit(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(spinWheelWithFreeSpins(0), nil)
	mockPurchaseRepo.On("GetByID", ctx, int64(42), mock.Anything).Return(&model.Purchase{
		ID:       42,
		UserID:   1,
		WheelID:  1,
		Quantity: 1,
		Status:   model.StatusWalletSettled,
	}, nil)
	mockPurchaseRepo.On("ConsumeCredit", ctx, int64(42), mock.Anything).Return(true, nil)
	mockWheelRepo.On("GetTiers", ctx, int64(1), mock.Anything).Return([]model.PrizeTier{
		{ID: 12, WheelID: 1, Label: "Better luck next time", Weight: 100, Payout: decimal.Zero},
	}, nil)
	mockSpinRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)
	mockWalletRepo.On("Ensure", ctx, int64(1), model.WalletCredits, mock.Anything).Return(&model.Wallet{
		ID:      7,
		UserID:  1,
		Balance: decimal.NewFromInt(4000),
	}, nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1, PurchaseID: int64Ptr(42)})

	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.Payout)
	assert.Equal(t, "4000.00", resp.Balance)
	mockWalletRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSpin_PurchaseMismatch(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(spinWheelWithFreeSpins(0), nil)
	mockPurchaseRepo.On("GetByID", ctx, int64(42), mock.Anything).Return(&model.Purchase{
		ID:       42,
		UserID:   2, // belongs to someone else
		WheelID:  1,
		Quantity: 1,
		Status:   model.StatusPaid,
	}, nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1, PurchaseID: int64Ptr(42)})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrPurchaseMismatch)
}

func TestSpin_PendingPurchase_NotEligible(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(spinWheelWithFreeSpins(0), nil)
	mockPurchaseRepo.On("GetByID", ctx, int64(42), mock.Anything).Return(&model.Purchase{
		ID:       42,
		UserID:   1,
		WheelID:  1,
		Quantity: 1,
		Status:   model.StatusPending,
	}, nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1, PurchaseID: int64Ptr(42)})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrNotEligible)
	mockPurchaseRepo.AssertNotCalled(t, "ConsumeCredit", mock.Anything, mock.Anything, mock.Anything)
}

func TestSpin_LostRaceForLastCredit(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(spinWheelWithFreeSpins(0), nil)
	mockPurchaseRepo.On("GetByID", ctx, int64(42), mock.Anything).Return(&model.Purchase{
		ID:              42,
		UserID:          1,
		WheelID:         1,
		Quantity:        3,
		CreditsConsumed: 2,
		Status:          model.StatusPaid,
	}, nil)
	// A concurrent spin takes the last credit between the read and the
	// guarded increment.
	mockPurchaseRepo.On("ConsumeCredit", ctx, int64(42), mock.Anything).Return(false, nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1, PurchaseID: int64Ptr(42)})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrCreditExhausted)
	mockSpinRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSpin_Free_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(spinWheelWithFreeSpins(1), nil)
	mockSpinRepo.On("AcquireFreeSpinLock", ctx, int64(1), int64(1), mock.Anything).Return(nil)
	mockSpinRepo.On("EligibilityCounts", ctx, int64(1), int64(1), mock.Anything, mock.Anything).Return(0, 0, nil)
	mockWheelRepo.On("GetTiers", ctx, int64(1), mock.Anything).Return(singleTier(), nil)
	mockSpinRepo.On("Insert", ctx, mock.MatchedBy(func(spin *model.Spin) bool {
		return spin.PurchaseID == nil && spin.WheelID == 1
	}), mock.Anything).Return(nil)
	mockWalletRepo.On("Ensure", ctx, int64(1), model.WalletCredits, mock.Anything).Return(&model.Wallet{
		ID:      7,
		UserID:  1,
		Balance: decimal.Zero,
	}, nil)
	mockWalletRepo.On("Credit", ctx, int64(7), decimal.NewFromInt(250), mock.Anything).Return(decimal.NewFromInt(250), nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1})

	require.NoError(t, err)
	assert.Equal(t, "250.00", resp.Payout)
}

func TestSpin_Free_AllotmentExhausted(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(spinWheelWithFreeSpins(1), nil)
	mockSpinRepo.On("AcquireFreeSpinLock", ctx, int64(1), int64(1), mock.Anything).Return(nil)
	mockSpinRepo.On("EligibilityCounts", ctx, int64(1), int64(1), mock.Anything, mock.Anything).Return(0, 1, nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrNotEligible)
}

func TestSpin_Free_NoFreeAllotmentConfigured(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(spinWheelWithFreeSpins(0), nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrNotEligible)
	mockSpinRepo.AssertNotCalled(t, "AcquireFreeSpinLock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSpin_InactiveWheel(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWheelRepo := mocks.NewWheelRepository(t)
	mockPurchaseRepo := mocks.NewPurchaseRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	wheel := spinWheelWithFreeSpins(1)
	wheel.Active = false
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	mockWheelRepo.On("GetWheel", ctx, int64(1), mock.Anything).Return(wheel, nil)

	service := NewSpinService(mockWalletRepo, mockWheelRepo, mockPurchaseRepo, mockSpinRepo, mockDBManager, NewPrizeSelector(NewSeededSource(1)), logger)

	resp, err := service.Spin(ctx, 1, &model.SpinRequest{WheelID: 1})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrWheelUnavailable)
}
