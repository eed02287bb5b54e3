//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_signin_post_test
package account_signin_post

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
	SignIn(ctx context.Context, email, password string) (*entities.Session, error)
}
