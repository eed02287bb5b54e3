//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, account entities.Account) error
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
	ListByRole(ctx context.Context, role entities.AccountRole) ([]entities.Account, error)
	CountByRole(ctx context.Context) (map[entities.AccountRole]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}

type TokenIssuer interface {
	Issue(account entities.Account) (string, time.Time, error)
}
