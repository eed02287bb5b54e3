package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"logistics/internal/entities"
)

const keyPrefix = "geocode:"

// Redis общий кэш для нескольких инстансов сервиса. Ключи без expiry.
type Redis struct {
	client redisClient
}

func NewRedis(client redisClient) *Redis {
	return &Redis{client: client}
}

type cachedLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (r *Redis) Get(ctx context.Context, address string) (*entities.Location, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+address).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var cached cachedLocation
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("decode cached location: %w", err)
	}

	return &entities.Location{Latitude: cached.Lat, Longitude: cached.Lon}, true, nil
}

func (r *Redis) Set(ctx context.Context, address string, location entities.Location) error {
	raw, err := json.Marshal(cachedLocation{Lat: location.Latitude, Lon: location.Longitude})
	if err != nil {
		return fmt.Errorf("encode location: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+address, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
