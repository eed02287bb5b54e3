//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_stats_test
package booking_stats

import (
	"context"

	"logistics/internal/entities"
)

type Service interface {
	Overview(ctx context.Context) (*entities.Overview, error)
}
