package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"logistics/pkg/background"
	"logistics/pkg/logger"
)

const DefaultInterval = 5 * time.Second

// Broadcaster раз в interval пишет позицию водителя во все его активные заказы.
type Broadcaster struct {
	driverID string
	source   PositionSource
	bookings BookingService
	log      serviceLogger
	interval time.Duration

	mu     sync.Mutex
	worker *background.Worker
}

func NewBroadcaster(
	driverID string,
	source PositionSource,
	bookings BookingService,
	log serviceLogger,
	interval time.Duration,
) *Broadcaster {
	return &Broadcaster{
		driverID: driverID,
		source:   source,
		bookings: bookings,
		log:      log.With(logger.NewField("driver", driverID)),
		interval: interval,
	}
}

// Start делает первый тик синхронно и запускает периодическую рассылку.
// Цикл живет до отмены ctx или вызова Stop.
func (b *Broadcaster) Start(ctx context.Context) error {
	if b.interval <= 0 {
		return ErrInvalidInterval
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.worker != nil {
		return ErrAlreadyStarted
	}

	worker, err := background.New(ctx, b.log, []background.Task{&broadcastTask{b: b}})
	if err != nil {
		return fmt.Errorf("start broadcaster: %w", err)
	}
	b.worker = worker
	return nil
}

// Stop останавливает цикл и ждет завершения текущего тика. Повторный вызов безопасен.
func (b *Broadcaster) Stop() {
	b.mu.Lock()
	worker := b.worker
	b.mu.Unlock()

	if worker != nil {
		worker.Stop()
	}
}

// Broadcast один тик рассылки. Ошибки не возвращаются: тик либо пропускается, либо логируется.
func (b *Broadcaster) Broadcast(ctx context.Context) {
	location, err := b.source.Position(ctx)
	if err != nil {
		b.log.Debug("position unavailable, tick skipped", logger.NewField("error", err))
		return
	}

	bookings, err := b.bookings.ListActiveForDriver(ctx, b.driverID)
	if err != nil {
		b.log.Warn("list active bookings", logger.NewField("error", err))
		return
	}

	for _, booking := range bookings {
		err := b.bookings.UpdateDriverLocation(ctx, booking.ID, b.driverID, location)
		if err != nil {
			b.log.Warn("write driver location",
				logger.NewField("booking", booking.ID),
				logger.NewField("error", err),
			)
		}
	}
}

type broadcastTask struct {
	b *Broadcaster
}

func (t *broadcastTask) TTL() time.Duration {
	return t.b.interval
}

func (t *broadcastTask) Do(ctx context.Context) error {
	t.b.Broadcast(ctx)
	return nil
}

func (t *broadcastTask) Info() string {
	return "driver location broadcast"
}
