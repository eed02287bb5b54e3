package tracking

import (
	"context"
	"sync"
	"time"

	"logistics/internal/entities"
)

// LatestPosition хранит последнюю присланную устройством позицию.
// staleAfter <= 0 отключает устаревание.
type LatestPosition struct {
	mu         sync.RWMutex
	location   entities.Location
	receivedAt time.Time
	set        bool
	staleAfter time.Duration
	now        func() time.Time
}

func NewLatestPosition(staleAfter time.Duration) *LatestPosition {
	return NewLatestPositionWithClock(staleAfter, time.Now)
}

func NewLatestPositionWithClock(staleAfter time.Duration, now func() time.Time) *LatestPosition {
	return &LatestPosition{
		staleAfter: staleAfter,
		now:        now,
	}
}

func (p *LatestPosition) Set(location entities.Location) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.location = location
	p.receivedAt = p.now()
	p.set = true
}

func (p *LatestPosition) Position(_ context.Context) (entities.Location, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.set {
		return entities.Location{}, ErrNoPosition
	}
	if p.staleAfter > 0 && p.now().Sub(p.receivedAt) > p.staleAfter {
		return entities.Location{}, ErrNoPosition
	}
	return p.location, nil
}
