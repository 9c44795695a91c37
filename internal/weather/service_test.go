// README: Tests for the trip forecast service.
package weather

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wayfarer/internal/prefs"
)

type stubForecaster struct {
	place     string
	forecasts []Forecast
	err       error
}

func (s *stubForecaster) Geocode(ctx context.Context, place string) (float64, float64, error) {
	s.place = place
	if s.err != nil {
		return 0, 0, s.err
	}
	return 43.65, -79.38, nil
}

func (s *stubForecaster) DailyForecast(ctx context.Context, lat, lon float64, start, end string) ([]Forecast, error) {
	return s.forecasts, s.err
}

func TestTripForecast_RequiresCompleteTrip(t *testing.T) {
	svc := NewService(&stubForecaster{})
	tests := []struct {
		name string
		p    prefs.TripPreferences
	}{
		{"no city", prefs.TripPreferences{StartDate: "2026-03-15", EndDate: "2026-03-17"}},
		{"no dates", prefs.TripPreferences{City: "Toronto"}},
		{"malformed date", prefs.TripPreferences{City: "Toronto", StartDate: "March 15", EndDate: "2026-03-17"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.TripForecast(context.Background(), tt.p); !errors.Is(err, ErrIncompleteTrip) {
				t.Fatalf("err = %v, want ErrIncompleteTrip", err)
			}
		})
	}
}

func TestTripForecast_GeocodesCityAndCountry(t *testing.T) {
	stub := &stubForecaster{forecasts: []Forecast{{Date: "2026-03-15"}}}
	svc := NewService(stub)
	p := prefs.TripPreferences{City: "Toronto", Country: "Canada", StartDate: "2026-03-15", EndDate: "2026-03-17"}
	got, err := svc.TripForecast(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if stub.place != "Toronto, Canada" {
		t.Fatalf("geocoded %q, want %q", stub.place, "Toronto, Canada")
	}
	if len(got) != 1 {
		t.Fatalf("got %d forecasts, want 1", len(got))
	}
}

func TestSummary(t *testing.T) {
	got := Summary([]Forecast{
		{Date: "2026-03-15", Condition: "Partly cloudy", TempMinC: -2, TempMaxC: 5},
		{Date: "2026-03-16", Condition: "Slight rain", TempMinC: 1, TempMaxC: 8},
	})
	want := "2026-03-15: Partly cloudy, -2°C to 5°C | 2026-03-16: Slight rain, 1°C to 8°C"
	if got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
	if Summary(nil) != "" {
		t.Fatal("empty forecast list should render empty summary")
	}
}

func TestConditionText(t *testing.T) {
	if conditionText(0) != "Clear sky" {
		t.Fatalf("code 0 = %q", conditionText(0))
	}
	if conditionText(95) != "Thunderstorm" {
		t.Fatalf("code 95 = %q", conditionText(95))
	}
	if !strings.Contains(conditionText(42), "42") {
		t.Fatal("unknown code should mention the code number")
	}
}
