package service

import (
	"context"
	"fmt"
	"math"

	"spinwheel-service/internal/model"
	"spinwheel-service/internal/repository"

	"github.com/rs/zerolog"
)

type WheelServiceImpl struct {
	wheelRepo repository.WheelRepository
	logger    zerolog.Logger
}

func NewWheelService(wheelRepo repository.WheelRepository, logger zerolog.Logger) WheelService {
	return &WheelServiceImpl{
		wheelRepo: wheelRepo,
		logger:    logger,
	}
}

// Catalog returns the active wheels with display chances derived from the
// configured weights.
func (s *WheelServiceImpl) Catalog(ctx context.Context) (*model.WheelListResponse, error) {
	wheels, err := s.wheelRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wheels: %w", err)
	}

	views := make([]model.WheelView, 0, len(wheels))
	for _, wheel := range wheels {
		totalWeight := 0
		for _, t := range wheel.Tiers {
			if t.Weight > 0 {
				totalWeight += t.Weight
			}
		}

		tiers := make([]model.WheelTierView, 0, len(wheel.Tiers))
		for _, t := range wheel.Tiers {
			chance := 0.0
			if totalWeight > 0 && t.Weight > 0 {
				chance = roundTo(float64(t.Weight)/float64(totalWeight)*100, 2)
			}
			tiers = append(tiers, model.WheelTierView{
				ID:     t.ID,
				Label:  t.Label,
				Payout: t.Payout.StringFixed(2),
				Chance: chance,
			})
		}

		views = append(views, model.WheelView{
			ID:              wheel.ID,
			Name:            wheel.Name,
			TicketPrice:     wheel.TicketPrice.StringFixed(2),
			FreeSpinsPerDay: wheel.FreeSpinsPerDay,
			Tiers:           tiers,
		})
	}

	return &model.WheelListResponse{Wheels: views}, nil
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
