package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"logistics/internal/gateway/http/executor"
	"logistics/internal/gateway/http/nominatim"
	"logistics/internal/gateway/http/osrm"
	"logistics/internal/gateway/kafka/booking_events"
	"logistics/internal/handlers/tasks/booking_stats"
	"logistics/internal/pkg/auth"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/geocache"
	"logistics/internal/pkg/kafka"
	accountRepo "logistics/internal/repository/account"
	bookingRepo "logistics/internal/repository/booking"
	historyRepo "logistics/internal/repository/booking_history"
	bookingMongoRepo "logistics/internal/repository/booking_mongo"
	accountService "logistics/internal/service/account"
	bookingService "logistics/internal/service/booking"
	historyService "logistics/internal/service/booking_history"
	estimatorService "logistics/internal/service/estimator"
	overviewService "logistics/internal/service/overview"
	"logistics/pkg/background"
	"logistics/pkg/logger"
	"logistics/pkg/querier"
	"logistics/pkg/retrier"
	"logistics/pkg/tx"
)

const (
	gatewayInitialInterval = 200 * time.Millisecond
	gatewayMaxInterval     = 2 * time.Second
	gatewayRandomization   = 0.5
	gatewayMultiplier      = 2
	gatewayMaxRetries      = 3
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

// provideBookingRepository collection == nil если выбран postgres.
func provideBookingRepository(cfg *config.Config, querier *querier.Querier, collection *mongo.Collection) BookingStore {
	if cfg.Storage.Backend == config.StorageBackendMongo {
		return bookingMongoRepo.New(collection)
	}
	return bookingRepo.New(querier)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Geocoding.RequestTimeout}
}

func gatewayRetry(cfg *config.Config) retrier.Config {
	return retrier.Config{
		InitialInterval: gatewayInitialInterval,
		MaxInterval:     gatewayMaxInterval,
		MaxElapsedTime:  cfg.Geocoding.RequestTimeout,
		Randomization:   gatewayRandomization,
		Multiplier:      gatewayMultiplier,
		MaxRetries:      gatewayMaxRetries,
	}
}

func provideGeocoder(cfg *config.Config, client *http.Client) *nominatim.Gateway {
	exec := executor.New(client, executor.Config{
		Service: nominatim.ServiceName,
		Retry:   gatewayRetry(cfg),
	})
	return nominatim.New(cfg.Geocoding.NominatimURL, cfg.Geocoding.UserAgent, exec)
}

func provideRouter(cfg *config.Config, client *http.Client) *osrm.Gateway {
	exec := executor.New(client, executor.Config{
		Service: osrm.ServiceName,
		Retry:   gatewayRetry(cfg),
	})
	return osrm.New(cfg.Geocoding.OSRMURL, exec)
}

// provideGeocodeCache redisClient == nil если кэш в памяти процесса.
func provideGeocodeCache(cfg *config.Config, redisClient *goredis.Client) estimatorService.Cache {
	if cfg.Geocoding.CacheBackend == config.CacheBackendRedis {
		return geocache.NewRedis(redisClient)
	}
	return geocache.NewMemory()
}

func provideServiceEstimator(
	geocoder estimatorService.Geocoder,
	router estimatorService.Router,
	cache estimatorService.Cache,
	rates estimatorService.RateFactory,
	log logger.Logger,
) *estimatorService.Service {
	return estimatorService.New(geocoder, router, cache, rates, log)
}

func provideEventPublisher(producer *kafka.Producer) *booking_events.Gateway {
	return booking_events.New(producer)
}

func provideServiceBooking(
	repository BookingStore,
	estimator bookingService.Estimator,
	publisher bookingService.EventPublisher,
	log logger.Logger,
) *bookingService.Service {
	return bookingService.New(repository, estimator, publisher, log)
}

func provideTokens(cfg *config.Config) *auth.Tokens {
	return auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func providePasswords() *auth.Passwords {
	return auth.NewPasswords(auth.DefaultPasswordCost)
}

func provideServiceAccount(
	repository accountService.Repository,
	txManager accountService.TxManager,
	passwords accountService.PasswordHasher,
	tokens accountService.TokenIssuer,
) *accountService.Service {
	return accountService.New(repository, txManager, passwords, tokens)
}

func provideServiceHistory(repository historyService.Repository) *historyService.Service {
	return historyService.New(repository)
}

func provideServiceOverview(accounts overviewService.AccountCounter, bookings BookingStore) *overviewService.Service {
	return overviewService.New(accounts, bookings)
}

func provideBookingStatsInterval(cfg *config.Config) BookingStatsInterval {
	return BookingStatsInterval(cfg.Tasks.BookingStatsInterval)
}

func provideBookingStatsTask(
	log logger.Logger,
	service booking_stats.Service,
	interval BookingStatsInterval,
) *booking_stats.BookingStats {
	return booking_stats.NewBookingStats(log, service, time.Duration(interval))
}

func provideTaskList(
	bookingStatsTask *booking_stats.BookingStats,
) []background.Task {
	return []background.Task{
		bookingStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
