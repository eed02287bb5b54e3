//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_accounts_get_test
package admin_accounts_get

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListAccounts(ctx context.Context, role entities.AccountRole) ([]entities.Account, error)
}
