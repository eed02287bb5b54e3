//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_events_test
package booking_events

import "context"

type producer interface {
	Send(ctx context.Context, key string, value []byte) error
}
