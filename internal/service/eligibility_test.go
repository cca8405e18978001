package service

import (
	"context"
	"testing"
	"time"

	"spinwheel-service/internal/model"
	mocks "spinwheel-service/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFreeSpinPeriodStart(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	now := time.Date(2025, 6, 15, 3, 30, 0, 0, loc) // 2025-06-14 20:30 UTC

	start := freeSpinPeriodStart(now)

	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), start)
}

func TestEligibility_ForWheel(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWheelRepo := mocks.NewWheelRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)

	wheel := spinWheelWithFreeSpins(1)
	mockSpinRepo.On("EligibilityCounts", ctx, int64(1), int64(1), mock.Anything).Return(4, 0, nil)

	service := NewEligibilityService(mockWheelRepo, mockSpinRepo, logger)

	snap, err := service.ForWheel(ctx, 1, wheel)

	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.WheelID)
	assert.Equal(t, 4, snap.PaidSpinsRemaining)
	assert.Equal(t, 1, snap.FreeSpinsRemaining)
	assert.True(t, snap.IsEligible)
}

func TestEligibility_ForWheel_NothingRemaining(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWheelRepo := mocks.NewWheelRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)

	wheel := spinWheelWithFreeSpins(1)
	mockSpinRepo.On("EligibilityCounts", ctx, int64(1), int64(1), mock.Anything).Return(0, 1, nil)

	service := NewEligibilityService(mockWheelRepo, mockSpinRepo, logger)

	snap, err := service.ForWheel(ctx, 1, wheel)

	require.NoError(t, err)
	assert.Equal(t, 0, snap.PaidSpinsRemaining)
	assert.Equal(t, 0, snap.FreeSpinsRemaining)
	assert.False(t, snap.IsEligible)
}

func TestEligibility_ForWheel_FreeRemainingClampedAtZero(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWheelRepo := mocks.NewWheelRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)

	// The allotment was lowered after spins were taken.
	wheel := spinWheelWithFreeSpins(1)
	mockSpinRepo.On("EligibilityCounts", ctx, int64(1), int64(1), mock.Anything).Return(0, 3, nil)

	service := NewEligibilityService(mockWheelRepo, mockSpinRepo, logger)

	snap, err := service.ForWheel(ctx, 1, wheel)

	require.NoError(t, err)
	assert.Equal(t, 0, snap.FreeSpinsRemaining)
	assert.False(t, snap.IsEligible)
}

func TestEligibility_ForUser(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWheelRepo := mocks.NewWheelRepository(t)
	mockSpinRepo := mocks.NewSpinRepository(t)

	wheels := []*model.SpinWheel{
		{ID: 1, Name: "Daily Wheel", TicketPrice: decimal.NewFromInt(1000), Active: true, FreeSpinsPerDay: 1},
		{ID: 2, Name: "Mega Wheel", TicketPrice: decimal.NewFromInt(5000), Active: true},
	}
	mockWheelRepo.On("ListActive", ctx).Return(wheels, nil)
	mockSpinRepo.On("EligibilityCounts", ctx, int64(1), int64(1), mock.Anything).Return(0, 0, nil)
	mockSpinRepo.On("EligibilityCounts", ctx, int64(1), int64(2), mock.Anything).Return(2, 0, nil)

	service := NewEligibilityService(mockWheelRepo, mockSpinRepo, logger)

	snapshots, err := service.ForUser(ctx, 1)

	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, 1, snapshots[0].FreeSpinsRemaining)
	assert.True(t, snapshots[0].IsEligible)
	assert.Equal(t, 2, snapshots[1].PaidSpinsRemaining)
	assert.Equal(t, 0, snapshots[1].FreeSpinsRemaining)
	assert.True(t, snapshots[1].IsEligible)
}
