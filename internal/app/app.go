package app

import (
	"time"

	"logistics/internal/handlers/rest/account_register_post"
	"logistics/internal/handlers/rest/account_signin_post"
	"logistics/internal/handlers/rest/admin_accounts_get"
	"logistics/internal/handlers/rest/admin_overview_get"
	"logistics/internal/handlers/rest/booking_accept_post"
	"logistics/internal/handlers/rest/booking_get"
	"logistics/internal/handlers/rest/booking_history_get"
	"logistics/internal/handlers/rest/booking_location_put"
	"logistics/internal/handlers/rest/booking_post"
	"logistics/internal/handlers/rest/booking_status_put"
	"logistics/internal/handlers/rest/bookings_get"
	"logistics/internal/handlers/rest/bookings_pending_get"
	"logistics/internal/handlers/rest/estimate_post"
	"logistics/internal/handlers/ws/booking_tracking"
	"logistics/internal/handlers/ws/driver_location"
	"logistics/internal/pkg/auth"
	bookingService "logistics/internal/service/booking"
	historyService "logistics/internal/service/booking_history"
	overviewService "logistics/internal/service/overview"
	"logistics/pkg/background"
)

type (
	BookingStatsInterval time.Duration
)

type Application struct {
	ServiceAccount    ServiceAccount
	ServiceBooking    ServiceBooking
	ServiceEstimator  ServiceEstimator
	ServiceHistory    ServiceHistory
	ServiceOverview   ServiceOverview
	Tokens            *auth.Tokens
	BackgroundWorkers *background.Worker
}

type ServiceAccount interface {
	account_register_post.Service
	account_signin_post.Service
	admin_accounts_get.Service
}

type ServiceBooking interface {
	booking_post.Service
	booking_get.Service
	bookings_get.Service
	bookings_pending_get.Service
	booking_accept_post.Service
	booking_status_put.Service
	booking_location_put.Service
	driver_location.BookingService
	booking_tracking.BookingService
}

type ServiceEstimator interface {
	estimate_post.Service
}

type ServiceHistory interface {
	booking_history_get.HistoryService
}

type ServiceOverview interface {
	admin_overview_get.Service
}

// BookingStore одно из хранилищ заказов: postgres или mongo, по STORAGE_BACKEND.
type BookingStore interface {
	bookingService.Repository
	overviewService.BookingCounter
}

type KafkaWorkerApp struct {
	HistoryService *historyService.Service
}
