//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"logistics/internal/gateway/http/nominatim"
	"logistics/internal/gateway/http/osrm"
	"logistics/internal/gateway/kafka/booking_events"
	"logistics/internal/handlers/tasks/booking_stats"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/factory/vehicle_rate"
	"logistics/internal/pkg/kafka"
	accountRepo "logistics/internal/repository/account"
	historyRepo "logistics/internal/repository/booking_history"
	accountService "logistics/internal/service/account"
	bookingService "logistics/internal/service/booking"
	historyService "logistics/internal/service/booking_history"
	estimatorService "logistics/internal/service/estimator"
	overviewService "logistics/internal/service/overview"
	"logistics/pkg/logger"
	"logistics/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	collection *mongo.Collection,
	redisClient *goredis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBookingStatsInterval,

		provideAccountRepository,
		provideHistoryRepository,
		provideBookingRepository,

		provideHTTPClient,
		provideGeocoder,
		provideRouter,
		provideGeocodeCache,
		vehicle_rate.New,
		provideEventPublisher,
		provideTokens,
		providePasswords,

		provideServiceEstimator,
		provideServiceBooking,
		provideServiceAccount,
		provideServiceHistory,
		provideServiceOverview,

		provideBookingStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAccount), new(*accountService.Service)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Service)),
		wire.Bind(new(ServiceEstimator), new(*estimatorService.Service)),
		wire.Bind(new(ServiceHistory), new(*historyService.Service)),
		wire.Bind(new(ServiceOverview), new(*overviewService.Service)),

		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(accountService.TxManager), new(*tx.Manager)),
		wire.Bind(new(accountService.PasswordHasher), new(*auth.Passwords)),
		wire.Bind(new(accountService.TokenIssuer), new(*auth.Tokens)),
		wire.Bind(new(historyService.Repository), new(*historyRepo.Repository)),
		wire.Bind(new(overviewService.AccountCounter), new(*accountRepo.Repository)),

		wire.Bind(new(estimatorService.Geocoder), new(*nominatim.Gateway)),
		wire.Bind(new(estimatorService.Router), new(*osrm.Gateway)),
		wire.Bind(new(estimatorService.RateFactory), new(*vehicle_rate.RateFactory)),
		wire.Bind(new(bookingService.Estimator), new(*estimatorService.Service)),
		wire.Bind(new(bookingService.EventPublisher), new(*booking_events.Gateway)),

		wire.Bind(new(booking_stats.Service), new(*overviewService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-booking-status-changed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideHistoryRepository,
		provideServiceHistory,

		wire.Bind(new(historyService.Repository), new(*historyRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
