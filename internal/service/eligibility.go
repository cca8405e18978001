package service

import (
	"context"
	"fmt"
	"time"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/rs/zerolog"
)

type EligibilityServiceImpl struct {
	wheelRepo repository.WheelRepository
	spinRepo  repository.SpinRepository
	logger    zerolog.Logger
	now       func() time.Time
}

func NewEligibilityService(
	wheelRepo repository.WheelRepository,
	spinRepo repository.SpinRepository,
	logger zerolog.Logger,
) EligibilityService {
	return &EligibilityServiceImpl{
		wheelRepo: wheelRepo,
		spinRepo:  spinRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// freeSpinPeriodStart is the UTC day boundary for the free-spin allotment.
func freeSpinPeriodStart(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}

// ForWheel computes a fresh snapshot for one wheel. Both counts come from a
// single statement in the repository, so the view cannot be torn by a
// concurrent spin or reconciliation.
func (s *EligibilityServiceImpl) ForWheel(ctx context.Context, userID int64, wheel *model.SpinWheel) (*model.EligibilitySnapshot, error) {
	paidRemaining, freeTaken, err := s.spinRepo.EligibilityCounts(ctx, userID, wheel.ID, freeSpinPeriodStart(s.now()))
	if err != nil {
		return nil, fmt.Errorf("eligibility counts: %w", err)
	}

	freeRemaining := wheel.FreeSpinsPerDay - freeTaken
	if freeRemaining < 0 {
		freeRemaining = 0
	}

	return &model.EligibilitySnapshot{
		WheelID:            wheel.ID,
		FreeSpinsRemaining: freeRemaining,
		PaidSpinsRemaining: paidRemaining,
		IsEligible:         freeRemaining > 0 || paidRemaining > 0,
	}, nil
}

// ForUser computes snapshots for every active wheel.
func (s *EligibilityServiceImpl) ForUser(ctx context.Context, userID int64) ([]model.EligibilitySnapshot, error) {
	wheels, err := s.wheelRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wheels: %w", err)
	}

	snapshots := make([]model.EligibilitySnapshot, 0, len(wheels))
	for _, wheel := range wheels {
		snap, err := s.ForWheel(ctx, userID, wheel)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snap)
	}
	return snapshots, nil
}
