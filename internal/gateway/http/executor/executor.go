package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const maxBodyBytes = 1 << 20

// StatusError ответ на который стоит повторить запрос (429, 5xx).
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

type Config struct {
	Service string
	Retry   retrierconfig.Config
}

// Executor выполняет GET к внешнему API с ретраями и метриками.
type Executor struct {
	client  Doer
	retrier retrier
	service string
}

func New(client Doer, config Config) *Executor {
	retry := config.Retry
	retry.ShouldRetry = IsRetryable
	retry.Notify = func(_ error, wait time.Duration) {
		GatewayRetryWait.WithLabelValues(config.Service).Observe(wait.Seconds())
	}

	return &Executor{
		client:  client,
		retrier: backoff_adapter.New(retry),
		service: config.Service,
	}
}

// Get вызывает decode для любого ответа кроме 429 и 5xx. Тело ограничено по размеру.
func (e *Executor) Get(
	ctx context.Context,
	method string,
	url string,
	headers http.Header,
	decode func(status int, body []byte) error,
) error {
	var attempt uint64
	start := time.Now()
	code := "error"

	err := e.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		for key, values := range headers {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}

		resp, err := e.client.Do(req)
		if err != nil {
			code = "error"
			return err
		}
		defer resp.Body.Close()

		code = strconv.Itoa(resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return &StatusError{Code: resp.StatusCode}
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		return decode(resp.StatusCode, body)
	})

	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(e.service, method, code).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(e.service, method, code).Inc()
	}

	return err
}

// PermanentError ошибка разбора ответа, повтор не поможет.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// IsRetryable ретраим транспортные ошибки и StatusError, все прочее отдаем сразу.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var permanent *PermanentError
	return !errors.As(err, &permanent)
}
