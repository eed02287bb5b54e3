//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_register_post_test
package account_register_post

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
	Register(ctx context.Context, email, password string, role entities.AccountRole) (*entities.Session, error)
}
