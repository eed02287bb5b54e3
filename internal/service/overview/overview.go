package overview

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Service struct {
	accounts AccountCounter
	bookings BookingCounter
}

func New(accounts AccountCounter, bookings BookingCounter) *Service {
	return &Service{
		accounts: accounts,
		bookings: bookings,
	}
}

// Overview собирает сводку для админки. Отсутствующие роли и статусы приходят нулями.
func (s *Service) Overview(ctx context.Context) (*entities.Overview, error) {
	roles, err := s.accounts.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}

	statuses, err := s.BookingsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	result := &entities.Overview{
		AccountsByRole: map[entities.AccountRole]int64{
			entities.RoleUser:   roles[entities.RoleUser],
			entities.RoleDriver: roles[entities.RoleDriver],
			entities.RoleAdmin:  roles[entities.RoleAdmin],
		},
		BookingsByStatus: statuses,
	}
	for _, count := range statuses {
		result.TotalBookings += count
	}
	return result, nil
}

// BookingsByStatus всегда содержит все статусы жизненного цикла.
func (s *Service) BookingsByStatus(ctx context.Context) (map[entities.BookingStatus]int64, error) {
	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	result := make(map[entities.BookingStatus]int64, len(entities.BookingStatuses()))
	for _, status := range entities.BookingStatuses() {
		result[status] = counts[status]
	}
	return result, nil
}
