package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware перестает принимать новые запросы когда сервер уходит на остановку.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Connection", "close")
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = w.Write([]byte(`{"message":"service is shutting down, retry the request"}`))
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
