// README: Itinerary orchestration: parallel enrichment, generation, routing.
package itinerary

import (
	"context"
	"log"
	"regexp"
	"sync"

	"wayfarer/internal/llm"
	"wayfarer/internal/maps"
	"wayfarer/internal/prefs"
	"wayfarer/internal/venue"
	"wayfarer/internal/weather"
)

// Collaborator surfaces, kept small so tests can stub each branch.
type (
	WeatherForecaster interface {
		TripForecast(ctx context.Context, p prefs.TripPreferences) ([]weather.Forecast, error)
	}
	VenueCataloger interface {
		CatalogForCity(ctx context.Context, city string) []venue.Venue
	}
	BookingLinker interface {
		Links(p prefs.TripPreferences) map[string]string
	}
	Router interface {
		ItineraryLegs(ctx context.Context, names []string, city, country string) []maps.Leg
	}
	Generator interface {
		Invoke(ctx context.Context, messages []llm.Message, temperature float32, maxTokens int) (string, error)
	}
)

// Enrichment collects the context gathered before generation. Any branch
// may be empty; generation proceeds with whatever arrived.
type Enrichment struct {
	Forecasts      []weather.Forecast
	WeatherSummary string
	Venues         []venue.Venue
	BookingLinks   map[string]string
}

type Orchestrator struct {
	weather     WeatherForecaster
	venues      VenueCataloger
	booking     BookingLinker
	routes      Router
	gateway     Generator
	temperature float32
	maxTokens   int
}

func NewOrchestrator(w WeatherForecaster, v VenueCataloger, b BookingLinker, r Router, g Generator, temperature float32, maxTokens int) *Orchestrator {
	return &Orchestrator{
		weather:     w,
		venues:      v,
		booking:     b,
		routes:      r,
		gateway:     g,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Enrich fans out to the weather, venue and booking branches in parallel
// and joins all three. Every branch fails soft: an error or panic in one
// never blocks the others, and the venue branch always lands on at least
// the fallback catalog.
func (o *Orchestrator) Enrich(ctx context.Context, p prefs.TripPreferences) Enrichment {
	var (
		wg  sync.WaitGroup
		enr Enrichment
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		defer recoverBranch("weather")
		if o.weather == nil {
			return
		}
		forecasts, err := o.weather.TripForecast(ctx, p)
		if err != nil {
			log.Printf("itinerary: weather enrichment skipped: %v", err)
			return
		}
		enr.Forecasts = forecasts
		enr.WeatherSummary = weather.Summary(forecasts)
	}()
	go func() {
		defer wg.Done()
		defer recoverBranch("venues")
		if o.venues == nil {
			enr.Venues = venue.FallbackVenues
			return
		}
		enr.Venues = o.venues.CatalogForCity(ctx, p.City)
	}()
	go func() {
		defer wg.Done()
		defer recoverBranch("booking")
		if o.booking == nil {
			return
		}
		enr.BookingLinks = o.booking.Links(p)
	}()
	wg.Wait()

	if len(enr.Venues) == 0 {
		enr.Venues = venue.FallbackVenues
	}
	return enr
}

// Generate asks the gateway for a grounded itinerary. The system prompt
// carries the enrichment; the user side of the conversation is replayed
// so the model keeps any nuance the extractor missed.
func (o *Orchestrator) Generate(ctx context.Context, transcript []llm.Message, p prefs.TripPreferences, enr Enrichment) (string, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: BuildSystemPrompt(p, enr.Venues, enr.Forecasts)},
	}
	for _, m := range transcript {
		if m.Role == llm.RoleSystem {
			continue
		}
		messages = append(messages, m)
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: GenerationRequest(p)})

	return o.gateway.Invoke(ctx, messages, o.temperature, o.maxTokens)
}

// RouteLegs extracts the venues actually used by the generated itinerary
// and routes between them in order of first appearance.
func (o *Orchestrator) RouteLegs(ctx context.Context, itineraryText string, p prefs.TripPreferences) []maps.Leg {
	if o.routes == nil {
		return nil
	}
	names := ExtractVenueNames(itineraryText)
	if len(names) < 2 {
		return nil
	}
	return o.routes.ItineraryLegs(ctx, names, p.City, p.Country)
}

var venueNameRe = regexp.MustCompile(`—\s*(.+?)\s*\(Source:`)

// ExtractVenueNames pulls venue names out of generated itinerary lines,
// deduplicated in order of first appearance.
func ExtractVenueNames(text string) []string {
	seen := map[string]bool{}
	var names []string
	for _, m := range venueNameRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func recoverBranch(name string) {
	if r := recover(); r != nil {
		log.Printf("itinerary: %s enrichment panicked: %v", name, r)
	}
}
