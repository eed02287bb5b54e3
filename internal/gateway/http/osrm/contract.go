//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=osrm_test
package osrm

import (
	"context"
	"net/http"
)

type executor interface {
	Get(ctx context.Context, method string, url string, headers http.Header, decode func(status int, body []byte) error) error
}
