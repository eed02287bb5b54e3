//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=executor_test
package executor

import (
	"context"
	"net/http"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
