package booking_history

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/booking_history"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, change entities.BookingStatusChange) (bool, error) {
	query := `INSERT INTO booking_status_history (booking_id, status, driver_id, occurred_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (booking_id, status) DO NOTHING`

	tag, err := r.querier.Exec(ctx, query, change.BookingID, change.Status.String(), change.DriverID, change.OccurredAt)
	if err != nil {
		return false, r.wrap("append", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByBooking(ctx context.Context, bookingID string) ([]entities.BookingStatusChange, error) {
	query := `SELECT booking_id, status, driver_id, occurred_at
		FROM booking_status_history
		WHERE booking_id = $1
		ORDER BY occurred_at, recorded_at`

	rows, err := r.querier.Query(ctx, query, bookingID)
	if err != nil {
		return nil, r.wrap("listbybooking", err)
	}
	defer rows.Close()

	changes := make([]entities.BookingStatusChange, 0, 5)
	for rows.Next() {
		var (
			status     string
			change     entities.BookingStatusChange
			occurredAt time.Time
		)
		if err := rows.Scan(&change.BookingID, &status, &change.DriverID, &occurredAt); err != nil {
			return nil, r.wrap("listbybooking", err)
		}
		change.Status = entities.BookingStatus(status)
		change.OccurredAt = occurredAt.UTC()
		changes = append(changes, change)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("listbybooking", err)
	}
	return changes, nil
}

func (r *Repository) wrap(op string, err error) error {
	if classified := repository.ClassifyStoreError(err, booking_history.ErrStoreUnavailable, booking_history.ErrStorePermission); classified != nil {
		return fmt.Errorf("booking history repository %s: %w", op, classified)
	}
	return fmt.Errorf("unexpected booking history repository %s error: %w", op, err)
}
