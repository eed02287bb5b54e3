package booking_history

import (
	"context"
	"fmt"
	"strings"

	"logistics/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Record сохраняет событие смены статуса. Повторная доставка события не ошибка.
func (s *Service) Record(ctx context.Context, change entities.BookingStatusChange) (bool, error) {
	if strings.TrimSpace(change.BookingID) == "" {
		return false, fmt.Errorf("booking id: %w", ErrInvalidEvent)
	}
	if !change.Status.IsValid() {
		return false, fmt.Errorf("status %q: %w", change.Status, ErrInvalidEvent)
	}
	if change.OccurredAt.IsZero() {
		return false, fmt.Errorf("occurred at: %w", ErrInvalidEvent)
	}
	if change.Status != entities.BookingPending && change.DriverID == "" {
		return false, fmt.Errorf("driver id for %s: %w", change.Status, ErrInvalidEvent)
	}

	inserted, err := s.repository.Append(ctx, change)
	if err != nil {
		return false, fmt.Errorf("append history: %w", err)
	}
	return inserted, nil
}

func (s *Service) History(ctx context.Context, bookingID string) ([]entities.BookingStatusChange, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, ErrInvalidBookingID
	}

	changes, err := s.repository.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return changes, nil
}
