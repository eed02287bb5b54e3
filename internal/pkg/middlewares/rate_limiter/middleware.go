package rate_limiter

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"logistics/pkg/logger"
)

// Middleware ключ лимита хост из RemoteAddr. trustProxyHeader включается только
// за своим балансировщиком: X-Forwarded-For задает клиент.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter, trustProxyHeader bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientKey(r, trustProxyHeader)
			if rlimiter.AllowKey(client) {
				RateLimitPassedTotal.Inc()
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			route := mux.CurrentRoute(r)
			if route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("client", client),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"message":"rate limit exceeded, try again in a second"}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}

// clientKey первый адрес из X-Forwarded-For если заголовку доверяем, иначе хост из RemoteAddr.
func clientKey(r *http.Request, trustProxyHeader bool) string {
	if trustProxyHeader {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
