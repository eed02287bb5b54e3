package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	application "logistics/internal/app"
	"logistics/internal/entities"
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
	"logistics/internal/handlers/rest/healthcheck_head"
	"logistics/internal/handlers/rest/ping_get"
	"logistics/internal/handlers/ws/booking_tracking"
	"logistics/internal/handlers/ws/driver_location"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/dotenv"
	"logistics/internal/pkg/kafka"
	metrics_system "logistics/internal/pkg/metrics"
	"logistics/internal/pkg/middlewares/auth"
	"logistics/internal/pkg/middlewares/graceful_shutdown"
	"logistics/internal/pkg/middlewares/metrics"
	"logistics/internal/pkg/middlewares/rate_limiter"
	"logistics/internal/pkg/middlewares/timeout"
	"logistics/internal/pkg/mongodb"
	"logistics/internal/pkg/postgres"
	"logistics/internal/pkg/redis"
	"logistics/internal/repository/booking_mongo"
	"logistics/pkg/logger"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting logistics application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx наследуются от context.Background() намеренно, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	probes := []healthcheck_head.Probe{pool.Ping}

	var collection *mongo.Collection
	if cfg.Storage.Backend == config.StorageBackendMongo {
		var closeMongo func()
		collection, closeMongo, err = mongodb.NewCollection(ctx, log, &cfg.Mongo)
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		defer closeMongo()

		if err := booking_mongo.EnsureIndexes(ctx, collection); err != nil {
			return fmt.Errorf("mongo indexes: %w", err)
		}
		probes = append(probes, func(ctx context.Context) error {
			return collection.Database().Client().Ping(ctx, readpref.Primary())
		})
	}

	var redisClient *goredis.Client
	if cfg.Geocoding.CacheBackend == config.CacheBackendRedis {
		redisClient, err = redis.NewClient(ctx, log, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				runLog.Error("failed to close redis client", logger.NewField("error", err))
			}
		}()
		probes = append(probes, func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, splitBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, collection, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.BackgroundWorkers.Stop()

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg, probes),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
			logger.NewField("storage", cfg.Storage.Backend),
			logger.NewField("geocode_cache", cfg.Geocoding.CacheBackend),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	// websocket соединения не отслеживаются server.Shutdown, их закрывает отмена ongoingCtx
	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
	probes []healthcheck_head.Probe,
) http.Handler {
	limiter := token_bucket.NewBuckets(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS), nil)

	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, limiter, cfg.Server.TrustProxyHeader))

	// websocket маршруты без timeout middleware, соединение живет до закрытия сокета
	ws := router.PathPrefix("/ws").Subrouter()
	ws.Use(auth.Middleware(log, app.Tokens))
	ws.Handle("/driver/location", withRoles(log,
		driver_location.New(log, app.ServiceBooking, cfg.Tracking.BroadcastInterval, cfg.Tracking.PositionStaleAfter),
		entities.RoleDriver,
	)).Methods("GET")
	ws.Handle("/booking/{id}/tracking", booking_tracking.New(log, app.ServiceBooking, cfg.Tracking.ViewerPollInterval)).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))

	api.Handle("/metrics", promhttp.Handler())
	api.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, probes...)).Methods("HEAD")
	api.Handle("/ping", ping_get.New(log)).Methods("GET")

	api.Handle("/account/register", account_register_post.New(log, app.ServiceAccount)).Methods("POST")
	api.Handle("/account/signin", account_signin_post.New(log, app.ServiceAccount)).Methods("POST")

	authed := api.NewRoute().Subrouter()
	authed.Use(auth.Middleware(log, app.Tokens))

	authed.Handle("/estimate", estimate_post.New(log, app.ServiceEstimator)).Methods("POST")

	authed.Handle("/booking", withRoles(log,
		booking_post.New(log, app.ServiceBooking),
		entities.RoleUser,
	)).Methods("POST")
	authed.Handle("/booking/{id}", booking_get.New(log, app.ServiceBooking)).Methods("GET")
	authed.Handle("/booking/{id}/history", booking_history_get.New(log, app.ServiceBooking, app.ServiceHistory)).Methods("GET")
	authed.Handle("/booking/{id}/accept", withRoles(log,
		booking_accept_post.New(log, app.ServiceBooking),
		entities.RoleDriver,
	)).Methods("POST")
	authed.Handle("/booking/{id}/status", withRoles(log,
		booking_status_put.New(log, app.ServiceBooking),
		entities.RoleDriver,
	)).Methods("PUT")
	authed.Handle("/booking/{id}/location", withRoles(log,
		booking_location_put.New(log, app.ServiceBooking),
		entities.RoleDriver,
	)).Methods("PUT")

	authed.Handle("/bookings", withRoles(log,
		bookings_get.New(log, app.ServiceBooking),
		entities.RoleUser, entities.RoleDriver, entities.RoleAdmin,
	)).Methods("GET")
	authed.Handle("/bookings/pending", withRoles(log,
		bookings_pending_get.New(log, app.ServiceBooking),
		entities.RoleDriver,
	)).Methods("GET")

	authed.Handle("/admin/overview", withRoles(log,
		admin_overview_get.New(log, app.ServiceOverview),
		entities.RoleAdmin,
	)).Methods("GET")
	authed.Handle("/admin/accounts", withRoles(log,
		admin_accounts_get.New(log, app.ServiceAccount),
		entities.RoleAdmin,
	)).Methods("GET")

	return router
}

func withRoles(log logger.Logger, handler http.Handler, roles ...entities.AccountRole) http.Handler {
	return auth.RequireRoles(log, roles...)(handler)
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

func splitBrokers(raw string) []string {
	brokers := strings.Split(raw, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}
