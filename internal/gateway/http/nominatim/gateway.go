package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"logistics/internal/entities"
	httpexecutor "logistics/internal/gateway/http/executor"
	"logistics/internal/service/estimator"
)

const ServiceName = "nominatim"

type Gateway struct {
	baseURL   string
	userAgent string
	executor  executor
}

func New(baseURL, userAgent string, executor executor) *Gateway {
	return &Gateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		executor:  executor,
	}
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup ищет адрес и берет первый результат.
func (g *Gateway) Lookup(ctx context.Context, address string) (*entities.Location, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	headers := http.Header{}
	headers.Set("User-Agent", g.userAgent)
	headers.Set("Accept", "application/json")

	var location *entities.Location
	err := g.executor.Get(ctx, "search", g.baseURL+"/search?"+query.Encode(), headers, func(status int, body []byte) error {
		if status != http.StatusOK {
			return &httpexecutor.PermanentError{Err: fmt.Errorf("%w: nominatim status %d", estimator.ErrNetwork, status)}
		}

		var places []place
		if err := json.Unmarshal(body, &places); err != nil {
			return &httpexecutor.PermanentError{Err: fmt.Errorf("%w: decode nominatim response: %v", estimator.ErrNetwork, err)}
		}
		if len(places) == 0 {
			return &httpexecutor.PermanentError{Err: estimator.ErrAddressNotFound}
		}

		parsed, err := toLocation(places[0])
		if err != nil {
			return &httpexecutor.PermanentError{Err: fmt.Errorf("%w: %v", estimator.ErrNetwork, err)}
		}
		location = parsed
		return nil
	})
	if err != nil {
		if errors.Is(err, estimator.ErrAddressNotFound) || errors.Is(err, estimator.ErrNetwork) {
			return nil, fmt.Errorf("geocode %q: %w", address, err)
		}
		return nil, fmt.Errorf("geocode %q: %w: %v", address, estimator.ErrNetwork, err)
	}

	return location, nil
}

func toLocation(p place) (*entities.Location, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lat %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lon %q: %w", p.Lon, err)
	}
	return &entities.Location{Latitude: lat, Longitude: lon}, nil
}
