//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=overview_test
package overview

import (
	"context"

	"logistics/internal/entities"
)

type AccountCounter interface {
	CountByRole(ctx context.Context) (map[entities.AccountRole]int64, error)
}

type BookingCounter interface {
	CountByStatus(ctx context.Context) (map[entities.BookingStatus]int64, error)
}
