package estimator

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

const averageSpeedKmh = 50.0

var demandMultiplier = decimal.RequireFromString("1.2")

type Service struct {
	geocoder Geocoder
	router   Router
	cache    Cache
	rates    RateFactory
	log      serviceLogger
}

func New(geocoder Geocoder, router Router, cache Cache, rates RateFactory, log serviceLogger) *Service {
	return &Service{
		geocoder: geocoder,
		router:   router,
		cache:    cache,
		rates:    rates,
		log:      log,
	}
}

// Estimate считает стоимость и время поездки. Единственный побочный эффект - запись в кэш.
func (s *Service) Estimate(
	ctx context.Context,
	pickup, dropoff string,
	vehicleType entities.VehicleType,
) (*entities.Estimate, error) {
	if strings.TrimSpace(pickup) == "" || strings.TrimSpace(dropoff) == "" {
		return nil, ErrMissingAddress
	}

	from, err := s.resolve(ctx, pickup)
	if err != nil {
		return nil, fmt.Errorf("resolve pickup: %w", err)
	}
	to, err := s.resolve(ctx, dropoff)
	if err != nil {
		return nil, fmt.Errorf("resolve dropoff: %w", err)
	}

	meters, err := s.router.DrivingDistance(ctx, *from, *to)
	if err != nil {
		return nil, fmt.Errorf("driving distance: %w", err)
	}

	return calculate(meters/1000, s.rates.RatePerKm(vehicleType)), nil
}

func calculate(distanceKm float64, ratePerKm decimal.Decimal) *entities.Estimate {
	baseCost := decimal.NewFromFloat(distanceKm).Mul(ratePerKm)

	return &entities.Estimate{
		Cost:            baseCost.Mul(demandMultiplier).Round(2),
		TripTimeMinutes: int(math.Round(distanceKm / averageSpeedKmh * 60)),
		DistanceKm:      distanceKm,
	}
}

// resolve: ошибка кэша считается промахом, оценка от нее не падает
func (s *Service) resolve(ctx context.Context, address string) (*entities.Location, error) {
	cached, ok, err := s.cache.Get(ctx, address)
	if err != nil {
		s.log.Warn("geocode cache get",
			logger.NewField("address", address),
			logger.NewField("error", err),
		)
	}
	if ok {
		return cached, nil
	}

	location, err := s.geocoder.Lookup(ctx, address)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, address, *location); err != nil {
		s.log.Warn("geocode cache set",
			logger.NewField("address", address),
			logger.NewField("error", err),
		)
	}
	return location, nil
}
