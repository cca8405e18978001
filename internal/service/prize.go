package service

import (
	"math/rand"
	"sync"
	"time"

	"spinwheel-service/internal/model"
)

// RandSource yields uniform values in [0, n). Injected so tests can seed it.
type RandSource interface {
	Int63n(n int64) int64
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63n(n)
}

// NewSeededSource returns a deterministic, goroutine-safe source.
func NewSeededSource(seed int64) RandSource {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// PrizeSelector draws a weighted-random tier from a wheel's configured
// tiers. It holds no per-wheel state, so draws are re-entrant.
type PrizeSelector struct {
	src RandSource
}

func NewPrizeSelector(src RandSource) *PrizeSelector {
	return &PrizeSelector{src: src}
}

func NewDefaultPrizeSelector() *PrizeSelector {
	return NewPrizeSelector(NewSeededSource(time.Now().UnixNano()))
}

// Select draws one tier proportionally to its weight. Zero-weight tiers are
// unreachable; a wheel whose weights sum to zero has nothing to draw.
func (s *PrizeSelector) Select(tiers []model.PrizeTier) (*model.PrizeTier, error) {
	var total int64
	for i := range tiers {
		if tiers[i].Weight > 0 {
			total += int64(tiers[i].Weight)
		}
	}
	if total == 0 {
		return nil, model.ErrNoPrizeTiers
	}

	draw := s.src.Int63n(total)
	for i := range tiers {
		if tiers[i].Weight <= 0 {
			continue
		}
		draw -= int64(tiers[i].Weight)
		if draw < 0 {
			return &tiers[i], nil
		}
	}
	// Unreachable: the draw is strictly below the summed weights.
	return &tiers[len(tiers)-1], nil
}
