package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type Service struct {
	repository Repository
	estimator  Estimator
	publisher  EventPublisher
	log        serviceLogger
	now        func() time.Time
	newID      func() string
}

func New(
	repository Repository,
	estimator Estimator,
	publisher EventPublisher,
	log serviceLogger,
) *Service {
	return &Service{
		repository: repository,
		estimator:  estimator,
		publisher:  publisher,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// CreateBooking считает оценку и сохраняет заказ в статусе pending.
// Без успешной оценки заказ не создается.
func (s *Service) CreateBooking(ctx context.Context, userID string, request entities.BookingRequest) (*entities.Booking, error) {
	if !isValidID(userID) {
		return nil, fmt.Errorf("user id: %w", ErrMissingRequiredFields)
	}
	if strings.TrimSpace(request.Pickup) == "" || strings.TrimSpace(request.Dropoff) == "" {
		return nil, fmt.Errorf("pickup and dropoff: %w", ErrMissingRequiredFields)
	}
	if request.ScheduledTime.IsZero() {
		return nil, ErrInvalidScheduledTime
	}

	vehicleType := request.VehicleType
	if vehicleType == "" {
		vehicleType = entities.DefaultVehicleType
	}
	if !vehicleType.IsValid() {
		return nil, ErrInvalidVehicleType
	}

	estimate, err := s.estimator.Estimate(ctx, request.Pickup, request.Dropoff, vehicleType)
	if err != nil {
		return nil, fmt.Errorf("estimate booking: %w", err)
	}

	now := s.now()
	booking := entities.Booking{
		ID:            s.newID(),
		UserID:        userID,
		Pickup:        request.Pickup,
		Dropoff:       request.Dropoff,
		VehicleType:   vehicleType,
		Cost:          estimate.Cost,
		TripTime:      estimate.TripTimeMinutes,
		ScheduledTime: request.ScheduledTime.UTC(),
		Status:        entities.BookingPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repository.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.publish(ctx, booking)
	return &booking, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*entities.Booking, error) {
	if !isValidID(id) {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *Service) ListPending(ctx context.Context) ([]entities.Booking, error) {
	bookings, err := s.repository.ListByStatus(ctx, entities.BookingPending)
	if err != nil {
		return nil, fmt.Errorf("list pending bookings: %w", err)
	}
	return bookings, nil
}

// ListAll все заказы, только для админа.
func (s *Service) ListAll(ctx context.Context) ([]entities.Booking, error) {
	bookings, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	return bookings, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	bookings, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return bookings, nil
}

func (s *Service) ListByDriver(ctx context.Context, driverID string) ([]entities.Booking, error) {
	bookings, err := s.repository.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list driver bookings: %w", err)
	}
	return bookings, nil
}

// ListActiveForDriver заказы водителя в статусах между accepted и delivered.
func (s *Service) ListActiveForDriver(ctx context.Context, driverID string) ([]entities.Booking, error) {
	bookings, err := s.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	active := make([]entities.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status.IsDriverActive() {
			active = append(active, b)
		}
	}
	return active, nil
}

// AcceptBooking назначает водителя на pending заказ. Из конкурирующих вызовов
// успешен ровно один, остальные получают ErrAlreadyAccepted.
func (s *Service) AcceptBooking(ctx context.Context, bookingID, driverID string) (*entities.Booking, error) {
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}
	if !isValidID(driverID) {
		return nil, fmt.Errorf("driver id: %w", ErrMissingRequiredFields)
	}

	current, err := s.repository.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if current.Status != entities.BookingPending {
		return nil, ErrAlreadyAccepted
	}

	accepted := entities.BookingAccepted
	modify := entities.BookingModify{
		Status:   &accepted,
		DriverID: &driverID,
	}
	guard := &entities.BookingGuard{
		Statuses: []entities.BookingStatus{entities.BookingPending},
	}

	updated, err := s.repository.UpdateFields(ctx, bookingID, modify, guard)
	if err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return nil, ErrAlreadyAccepted
		}
		return nil, fmt.Errorf("accept booking: %w", err)
	}

	s.publish(ctx, *updated)
	return updated, nil
}

// UpdateStatus двигает заказ на следующий статус. Запись условная по текущему
// статусу и водителю, поэтому параллельные запросы не могут перескочить или откатить статус.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, driverID string, next entities.BookingStatus) (*entities.Booking, error) {
	if !isValidID(bookingID) {
		return nil, ErrInvalidBookingID
	}
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.repository.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err := checkDriverTransition(current, driverID, next); err != nil {
		return nil, fmt.Errorf("%s -> %s: %w", current.Status, next, err)
	}

	modify := entities.BookingModify{Status: &next}
	guard := &entities.BookingGuard{
		Statuses: []entities.BookingStatus{current.Status},
		DriverID: &driverID,
	}

	updated, err := s.repository.UpdateFields(ctx, bookingID, modify, guard)
	if err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return nil, fmt.Errorf("status changed concurrently: %w", ErrInvalidTransition)
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.publish(ctx, *updated)
	return updated, nil
}

// UpdateDriverLocation перезаписывает позицию водителя на активном заказе.
func (s *Service) UpdateDriverLocation(ctx context.Context, bookingID, driverID string, location entities.Location) error {
	if !isValidID(bookingID) {
		return ErrInvalidBookingID
	}
	if !isValidLocation(location) {
		return ErrInvalidLocation
	}

	current, err := s.repository.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if current.DriverID != driverID {
		return ErrNotAssignedDriver
	}
	if !current.Status.IsDriverActive() {
		return ErrBookingInactive
	}

	modify := entities.BookingModify{DriverLocation: &location}
	guard := &entities.BookingGuard{
		Statuses: entities.ActiveDriverStatuses(),
		DriverID: &driverID,
	}

	if _, err := s.repository.UpdateFields(ctx, bookingID, modify, guard); err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return ErrBookingInactive
		}
		return fmt.Errorf("update driver location: %w", err)
	}
	return nil
}

// publish не влияет на результат операции: запись в хранилище уже сделана.
func (s *Service) publish(ctx context.Context, booking entities.Booking) {
	if s.publisher == nil {
		return
	}

	change := entities.BookingStatusChange{
		BookingID:  booking.ID,
		Status:     booking.Status,
		DriverID:   booking.DriverID,
		OccurredAt: s.now(),
	}
	if err := s.publisher.PublishStatusChange(ctx, change); err != nil {
		s.log.Warn("publish booking status change",
			logger.NewField("booking_id", booking.ID),
			logger.NewField("status", booking.Status.String()),
			logger.NewField("error", err),
		)
	}
}
