package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"logistics/internal/entities"
	httpexecutor "logistics/internal/gateway/http/executor"
	"logistics/internal/service/estimator"
)

const ServiceName = "osrm"

const codeOK = "Ok"

type Gateway struct {
	baseURL  string
	executor executor
}

func New(baseURL string, executor executor) *Gateway {
	return &Gateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		executor: executor,
	}
}

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// DrivingDistance расстояние в метрах по первому маршруту.
func (g *Gateway) DrivingDistance(ctx context.Context, from, to entities.Location) (float64, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%s;%s?overview=false", g.baseURL, coordinate(from), coordinate(to))

	var distance float64
	err := g.executor.Get(ctx, "route", endpoint, nil, func(status int, body []byte) error {
		var resp routeResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &httpexecutor.PermanentError{Err: fmt.Errorf("%w: decode osrm response (status %d): %v", estimator.ErrNetwork, status, err)}
		}

		// OSRM отвечает 400 с code NoRoute/NoSegment когда маршрута нет
		if resp.Code != codeOK || len(resp.Routes) == 0 {
			if status == http.StatusOK || status == http.StatusBadRequest {
				return &httpexecutor.PermanentError{Err: fmt.Errorf("%w: %s %s", estimator.ErrNoRoute, resp.Code, resp.Message)}
			}
			return &httpexecutor.PermanentError{Err: fmt.Errorf("%w: osrm status %d", estimator.ErrNetwork, status)}
		}

		distance = resp.Routes[0].Distance
		return nil
	})
	if err != nil {
		if errors.Is(err, estimator.ErrNoRoute) || errors.Is(err, estimator.ErrNetwork) {
			return 0, fmt.Errorf("route: %w", err)
		}
		return 0, fmt.Errorf("route: %w: %v", estimator.ErrNetwork, err)
	}

	return distance, nil
}

// OSRM ждет долготу первой
func coordinate(loc entities.Location) string {
	return strconv.FormatFloat(loc.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(loc.Latitude, 'f', -1, 64)
}
