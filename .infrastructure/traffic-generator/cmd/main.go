package main

import (
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	probesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_probe_requests_total",
		Help: "Запросы к logistics сервису по пути и статусу",
	}, []string{"path", "status"})

	probeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_probe_duration_seconds",
		Help:    "Длительность запроса к logistics сервису",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 1},
	}, []string{"path"})
)

var paths = []string{"/ping", "/healthcheck"}

func probe(client *http.Client, target, path string) {
	method := http.MethodGet
	if path == "/healthcheck" {
		method = http.MethodHead
	}

	req, err := http.NewRequest(method, target+path, http.NoBody)
	if err != nil {
		return
	}

	start := time.Now()
	resp, err := client.Do(req)
	probeDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		probesTotal.WithLabelValues(path, "error").Inc()
		return
	}
	_ = resp.Body.Close()
	probesTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	target := os.Getenv("TARGET_URL")
	if target == "" {
		target = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil) //nolint:errcheck,gosec // служебный порт метрик

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		probe(client, target, paths[rand.Intn(len(paths))]) //nolint:gosec // не криптография
		time.Sleep(time.Duration(200+rand.Intn(800)) * time.Millisecond) //nolint:gosec // не криптография
	}
}
