package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/booking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookingColumns = []string{
	"booking_id",
	"user_id",
	"pickup",
	"dropoff",
	"vehicle_type",
	"cost::text",
	"trip_time",
	"scheduled_time",
	"driver_id",
	"status",
	"driver_latitude",
	"driver_longitude",
	"created_at",
	"updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, b entities.Booking) error {
	query := `INSERT INTO bookings (
			booking_id, user_id, pickup, dropoff, vehicle_type, cost, trip_time,
			scheduled_time, driver_id, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.querier.Exec(
		ctx,
		query,
		b.ID,
		b.UserID,
		b.Pickup,
		b.Dropoff,
		b.VehicleType.String(),
		b.Cost.StringFixed(2),
		b.TripTime,
		b.ScheduledTime,
		b.DriverID,
		b.Status.String(),
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return booking.ErrBookingExists
		}
		return r.wrap("create", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	query, args, err := qb.
		Select(bookingColumns...).
		From("bookings").
		Where(sq.Eq{"booking_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository getbyid error: %w", err)
	}

	var model BookingDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, r.wrap("getbyid", err)
	}

	return ToDomain(&model)
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Booking, error) {
	return r.list(ctx, "listall", nil)
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	return r.list(ctx, "listbystatus", sq.Eq{"status": status.String()})
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	return r.list(ctx, "listbyuser", sq.Eq{"user_id": userID})
}

func (r *Repository) ListByDriver(ctx context.Context, driverID string) ([]entities.Booking, error) {
	return r.list(ctx, "listbydriver", sq.Eq{"driver_id": driverID})
}

func (r *Repository) list(ctx context.Context, op string, where sq.Sqlizer) ([]entities.Booking, error) {
	builder := qb.
		Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at", "booking_id")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, r.wrap(op, err)
	}
	defer rows.Close()

	models := make([]BookingDB, 0, 8)
	for rows.Next() {
		var model BookingDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, r.wrap(op, err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(op, err)
	}

	return ToDomainList(models)
}

// UpdateFields одним UPDATE ... WHERE, поэтому guard проверяется атомарно с записью.
func (r *Repository) UpdateFields(
	ctx context.Context,
	id string,
	modify entities.BookingModify,
	guard *entities.BookingGuard,
) (*entities.Booking, error) {
	builder := qb.Update("bookings")

	// опционные поля
	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.DriverID != nil {
		builder = builder.Set("driver_id", *modify.DriverID)
	}
	if modify.DriverLocation != nil {
		builder = builder.
			Set("driver_latitude", modify.DriverLocation.Latitude).
			Set("driver_longitude", modify.DriverLocation.Longitude)
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	where := sq.And{sq.Eq{"booking_id": id}}
	if guard != nil {
		if len(guard.Statuses) > 0 {
			where = append(where, sq.Eq{"status": statusStrings(guard.Statuses)})
		}
		if guard.DriverID != nil {
			where = append(where, sq.Eq{"driver_id": *guard.DriverID})
		}
	}

	query, args, err := builder.
		Where(where).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	var model BookingDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(model.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missedUpdate(ctx, id, guard)
		}
		return nil, r.wrap("update", err)
	}

	return ToDomain(&model)
}

// CountByStatus для админского обзора и метрик.
func (r *Repository) CountByStatus(ctx context.Context) (map[entities.BookingStatus]int64, error) {
	rows, err := r.querier.Query(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, r.wrap("countbystatus", err)
	}
	defer rows.Close()

	counts := make(map[entities.BookingStatus]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, r.wrap("countbystatus", err)
		}
		counts[entities.BookingStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("countbystatus", err)
	}
	return counts, nil
}

// missedUpdate различает отсутствующий заказ и невыполненный guard.
func (r *Repository) missedUpdate(ctx context.Context, id string, guard *entities.BookingGuard) error {
	if guard == nil {
		return booking.ErrBookingNotFound
	}

	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_id = $1)`, id).Scan(&exists)
	if err != nil {
		return r.wrap("update", err)
	}
	if !exists {
		return booking.ErrBookingNotFound
	}
	return booking.ErrBookingConflict
}

func (r *Repository) wrap(op string, err error) error {
	if classified := repository.ClassifyStoreError(err, booking.ErrStoreUnavailable, booking.ErrStorePermission); classified != nil {
		return fmt.Errorf("booking repository %s: %w", op, classified)
	}
	return fmt.Errorf("unexpected booking repository %s error: %w", op, err)
}
