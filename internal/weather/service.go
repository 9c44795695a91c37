// README: Trip-level weather forecasts and their prompt summary.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wayfarer/internal/prefs"
)

// Forecast is one day of destination weather.
type Forecast struct {
	Date                string  `json:"date"`
	Condition           string  `json:"condition"`
	TempMinC            float64 `json:"temp_min_c"`
	TempMaxC            float64 `json:"temp_max_c"`
	PrecipitationMM     float64 `json:"precipitation_mm"`
	PrecipitationChance int     `json:"precipitation_chance"`
	WindSpeedKmh        float64 `json:"wind_speed_kmh"`
	Sunrise             string  `json:"sunrise"`
	Sunset              string  `json:"sunset"`
}

var ErrIncompleteTrip = errors.New("weather: trip needs a city and a full date range")

// Forecaster is the client surface the service needs.
type Forecaster interface {
	Geocode(ctx context.Context, place string) (lat, lon float64, err error)
	DailyForecast(ctx context.Context, lat, lon float64, startDate, endDate string) ([]Forecast, error)
}

type Service struct {
	client Forecaster
}

func NewService(client Forecaster) *Service {
	return &Service{client: client}
}

// TripForecast returns day-level forecasts for the whole trip. It refuses
// to call out with a partial destination or malformed dates.
func (s *Service) TripForecast(ctx context.Context, p prefs.TripPreferences) ([]Forecast, error) {
	if p.City == "" || !isISODate(p.StartDate) || !isISODate(p.EndDate) {
		return nil, ErrIncompleteTrip
	}
	place := p.City
	if p.Country != "" {
		place = p.City + ", " + p.Country
	}
	lat, lon, err := s.client.Geocode(ctx, place)
	if err != nil {
		return nil, err
	}
	return s.client.DailyForecast(ctx, lat, lon, p.StartDate, p.EndDate)
}

// Summary renders forecasts as a single pipe-separated line for transport
// in API responses.
func Summary(forecasts []Forecast) string {
	if len(forecasts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(forecasts))
	for _, f := range forecasts {
		parts = append(parts, fmt.Sprintf("%s: %s, %.0f°C to %.0f°C",
			f.Date, f.Condition, f.TempMinC, f.TempMaxC))
	}
	return strings.Join(parts, " | ")
}

func isISODate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			if r != '-' {
				return false
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
