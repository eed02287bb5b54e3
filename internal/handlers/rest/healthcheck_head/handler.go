package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Probe проверка зависимости, например ping хранилища заказов.
type Probe func(ctx context.Context) error

type Handler struct {
	isShuttingDown *atomic.Bool
	probes         []Probe
}

func New(isShuttingDown *atomic.Bool, probes ...Probe) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		probes:         probes,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	for _, probe := range h.probes {
		if err := probe(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
