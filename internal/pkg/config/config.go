package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMongo    = "mongo"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

const (
	defaultNominatimURL       = "https://nominatim.openstreetmap.org"
	defaultOSRMURL            = "https://router.project-osrm.org"
	defaultGeocodingUserAgent = "logistics-booking/1.0"
	defaultGeocodingTimeout   = 10 * time.Second
	defaultTokenTTL           = 24 * time.Hour
	defaultTrackingInterval   = 5 * time.Second
	defaultPositionStaleAfter = 30 * time.Second
	defaultBookingStatsTTL    = time.Minute
)

type (
	Tasks struct {
		BookingStatsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity
		TrustProxyHeader bool          // ключ лимитера из X-Forwarded-For, только за своим балансировщиком
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Storage struct {
		Backend string
	}

	Mongo struct {
		URI        string
		Database   string
		Collection string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Geocoding struct {
		NominatimURL   string
		OSRMURL        string
		UserAgent      string
		RequestTimeout time.Duration
		CacheBackend   string
	}

	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}

	Tracking struct {
		BroadcastInterval  time.Duration
		ViewerPollInterval time.Duration
		PositionStaleAfter time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		BookingStatusChanged BookingStatusChanged
	}

	BookingStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		Storage   Storage
		Mongo     Mongo
		Redis     Redis
		Geocoding Geocoding
		Auth      Auth
		Tracking  Tracking
		Kafka     Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	bookingStatsInterval, err := osGetEnvDuration("BACKGROUND_BOOKING_STATS_INTERVAL", defaultBookingStatsTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_BOOKING_STATUS_CHANGED_PROCESS_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trustProxyHeader, err := osGetBool("MIDDLEWARE_RATE_LIMIT_TRUST_PROXY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocodingTimeout, err := osGetEnvDuration("GEOCODING_REQUEST_TIMEOUT", defaultGeocodingTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("AUTH_TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	broadcastInterval, err := osGetEnvDuration("TRACKING_BROADCAST_INTERVAL", defaultTrackingInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	viewerPollInterval, err := osGetEnvDuration("TRACKING_VIEWER_POLL_INTERVAL", defaultTrackingInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	positionStaleAfter, err := osGetEnvDuration("TRACKING_POSITION_STALE_AFTER", defaultPositionStaleAfter)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			BookingStatsInterval: bookingStatsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			TrustProxyHeader: trustProxyHeader,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Storage: Storage{
			Backend: osGetString("STORAGE_BACKEND", StorageBackendPostgres),
		},
		Mongo: Mongo{
			URI:        os.Getenv("MONGO_URI"),
			Database:   osGetString("MONGO_DATABASE", "logistics"),
			Collection: osGetString("MONGO_BOOKINGS_COLLECTION", "bookings"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Geocoding: Geocoding{
			NominatimURL:   osGetString("GEOCODING_NOMINATIM_URL", defaultNominatimURL),
			OSRMURL:        osGetString("GEOCODING_OSRM_URL", defaultOSRMURL),
			UserAgent:      osGetString("GEOCODING_USER_AGENT", defaultGeocodingUserAgent),
			RequestTimeout: geocodingTimeout,
			CacheBackend:   osGetString("GEOCODE_CACHE_BACKEND", CacheBackendMemory),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		Tracking: Tracking{
			BroadcastInterval:  broadcastInterval,
			ViewerPollInterval: viewerPollInterval,
			PositionStaleAfter: positionStaleAfter,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				BookingStatusChanged: BookingStatusChanged{
					ProcessTimeout: statusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	// postgres нужен всегда: аккаунты и история статусов живут только там
	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	switch cfg.Storage.Backend {
	case StorageBackendPostgres:
	case StorageBackendMongo:
		if cfg.Mongo.URI == "" {
			return errors.New("MONGO_URI is required when STORAGE_BACKEND=mongo")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageBackendPostgres, StorageBackendMongo, cfg.Storage.Backend)
	}

	switch cfg.Geocoding.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if cfg.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required when GEOCODE_CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("GEOCODE_CACHE_BACKEND must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, cfg.Geocoding.CacheBackend)
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive")
	}

	if cfg.Tracking.BroadcastInterval <= 0 || cfg.Tracking.ViewerPollInterval <= 0 {
		return errors.New("TRACKING_BROADCAST_INTERVAL and TRACKING_VIEWER_POLL_INTERVAL must be positive")
	}

	if cfg.Tasks.BookingStatsInterval <= 0 {
		return errors.New("BACKGROUND_BOOKING_STATS_INTERVAL must be positive")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.BookingStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_BOOKING_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetString(s, fallback string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return fallback
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
