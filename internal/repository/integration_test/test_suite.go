package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/postgres"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/querier"
	"logistics/pkg/tx"
)

var (
	querierInstance *querier.Querier
	txManager       *tx.Manager
	querierOnce     sync.Once
)

func setup() {
	// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}

	ctx := context.Background()

	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			log.Printf("failed to sync logger: %v", err)
		}
	}()

	connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
	if err != nil {
		panic(err)
	}

	if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
		panic(err)
	}

	querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	txManager = tx.New(connPool)
}

func GetQuerier() *querier.Querier {
	querierOnce.Do(setup)
	return querierInstance
}

func GetTxManager() *tx.Manager {
	querierOnce.Do(setup)
	return txManager
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE booking_status_history, bookings, accounts;
	`)
	require.NoError(t, err)
}
