// README: Tests for enrichment fan-out and generation wiring.
package itinerary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wayfarer/internal/llm"
	"wayfarer/internal/maps"
	"wayfarer/internal/prefs"
	"wayfarer/internal/venue"
	"wayfarer/internal/weather"
)

type stubWeather struct {
	forecasts []weather.Forecast
	err       error
	panics    bool
}

func (s *stubWeather) TripForecast(ctx context.Context, p prefs.TripPreferences) ([]weather.Forecast, error) {
	if s.panics {
		panic("forecast backend exploded")
	}
	return s.forecasts, s.err
}

type stubVenues struct{ venues []venue.Venue }

func (s *stubVenues) CatalogForCity(ctx context.Context, city string) []venue.Venue {
	return s.venues
}

type stubBooking struct{ links map[string]string }

func (s *stubBooking) Links(p prefs.TripPreferences) map[string]string { return s.links }

type stubGateway struct {
	lastMessages []llm.Message
	reply        string
	err          error
}

func (s *stubGateway) Invoke(ctx context.Context, messages []llm.Message, temperature float32, maxTokens int) (string, error) {
	s.lastMessages = llm.CloneTranscript(messages)
	return s.reply, s.err
}

func testTrip() prefs.TripPreferences {
	return prefs.TripPreferences{
		City: "Toronto", Country: "Canada",
		StartDate: "2026-03-15", EndDate: "2026-03-17", DurationDays: 3,
		Pace: prefs.PaceModerate,
	}
}

func TestEnrich_AllBranchesLand(t *testing.T) {
	o := NewOrchestrator(
		&stubWeather{forecasts: []weather.Forecast{{Date: "2026-03-15", Condition: "Clear sky"}}},
		&stubVenues{venues: []venue.Venue{{ID: "cn_tower", Name: "CN Tower"}}},
		&stubBooking{links: map[string]string{"airbnb": "https://www.airbnb.ca/"}},
		nil, &stubGateway{}, 0.7, 4096,
	)
	enr := o.Enrich(context.Background(), testTrip())
	if len(enr.Forecasts) != 1 || enr.WeatherSummary == "" {
		t.Fatalf("weather branch missing: %+v", enr)
	}
	if len(enr.Venues) != 1 || enr.Venues[0].ID != "cn_tower" {
		t.Fatalf("venue branch missing: %+v", enr.Venues)
	}
	if enr.BookingLinks["airbnb"] == "" {
		t.Fatalf("booking branch missing: %+v", enr.BookingLinks)
	}
}

func TestEnrich_FailSoft(t *testing.T) {
	tests := []struct {
		name    string
		weather WeatherForecaster
	}{
		{"weather error", &stubWeather{err: errors.New("api down")}},
		{"weather panic", &stubWeather{panics: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrchestrator(tt.weather,
				&stubVenues{venues: []venue.Venue{{ID: "rom"}}},
				&stubBooking{}, nil, &stubGateway{}, 0.7, 4096,
			)
			enr := o.Enrich(context.Background(), testTrip())
			if len(enr.Forecasts) != 0 || enr.WeatherSummary != "" {
				t.Fatalf("failed weather branch left data: %+v", enr)
			}
			if len(enr.Venues) != 1 {
				t.Fatal("venue branch must survive a failed sibling")
			}
		})
	}
}

func TestEnrich_EmptyVenuesFallBack(t *testing.T) {
	o := NewOrchestrator(&stubWeather{}, &stubVenues{}, &stubBooking{}, nil, &stubGateway{}, 0.7, 4096)
	enr := o.Enrich(context.Background(), testTrip())
	if len(enr.Venues) != len(venue.FallbackVenues) {
		t.Fatalf("got %d venues, want fallback catalog", len(enr.Venues))
	}
}

func TestGenerate_PromptShape(t *testing.T) {
	gw := &stubGateway{reply: "Day 1 — 2026-03-15"}
	o := NewOrchestrator(&stubWeather{}, &stubVenues{}, &stubBooking{}, nil, gw, 0.7, 4096)
	transcript := []llm.Message{
		{Role: llm.RoleSystem, Content: "intake instructions"},
		{Role: llm.RoleUser, Content: "Toronto, March 15 to 17, moderate pace"},
		{Role: llm.RoleAssistant, Content: "Want me to generate your itinerary?"},
	}
	enr := Enrichment{Venues: venue.FallbackVenues}

	out, err := o.Generate(context.Background(), transcript, testTrip(), enr)
	if err != nil {
		t.Fatal(err)
	}
	if out == "" {
		t.Fatal("empty itinerary")
	}

	msgs := gw.lastMessages
	if msgs[0].Role != llm.RoleSystem || !strings.Contains(msgs[0].Content, venueListStart) {
		t.Fatalf("first message is not the generation system prompt: %+v", msgs[0])
	}
	if strings.Contains(msgs[0].Content, "intake instructions") {
		t.Fatal("intake system prompt leaked into generation")
	}
	for _, m := range msgs[1:] {
		if m.Role == llm.RoleSystem {
			t.Fatal("transcript system messages must be replaced, not replayed")
		}
	}
	last := msgs[len(msgs)-1]
	if last.Role != llm.RoleUser || !strings.Contains(last.Content, "Toronto, Canada") {
		t.Fatalf("missing generation request turn: %+v", last)
	}
}

func TestGenerate_PropagatesGatewayError(t *testing.T) {
	gw := &stubGateway{err: llm.ErrGenerationUnavailable}
	o := NewOrchestrator(&stubWeather{}, &stubVenues{}, &stubBooking{}, nil, gw, 0.7, 4096)
	_, err := o.Generate(context.Background(), nil, testTrip(), Enrichment{Venues: venue.FallbackVenues})
	if !errors.Is(err, llm.ErrGenerationUnavailable) {
		t.Fatalf("err = %v", err)
	}
}

type stubRouter struct {
	names []string
}

func (s *stubRouter) ItineraryLegs(ctx context.Context, names []string, city, country string) []maps.Leg {
	s.names = names
	legs := make([]maps.Leg, 0, len(names)-1)
	for i := 0; i < len(names)-1; i++ {
		legs = append(legs, maps.Leg{Leg: i + 1, Origin: names[i], Destination: names[i+1]})
	}
	return legs
}

func TestRouteLegs(t *testing.T) {
	router := &stubRouter{}
	o := NewOrchestrator(&stubWeather{}, &stubVenues{}, &stubBooking{}, router, &stubGateway{}, 0.7, 4096)

	single := "Morning: Views — CN Tower (Source: cn_tower, https://www.cntower.ca/)"
	if legs := o.RouteLegs(context.Background(), single, testTrip()); legs != nil {
		t.Fatalf("single venue routed: %v", legs)
	}

	two := single + "\nLunch: Market stroll — St. Lawrence Market (Source: st_lawrence_market, https://www.stlawrencemarket.com/)"
	legs := o.RouteLegs(context.Background(), two, testTrip())
	if len(legs) != 1 {
		t.Fatalf("got %d legs, want 1", len(legs))
	}
	if router.names[0] != "CN Tower" || router.names[1] != "St. Lawrence Market" {
		t.Fatalf("router saw %v", router.names)
	}
}
