// README: Transit routing between consecutive itinerary venues.
package maps

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"googlemaps.github.io/maps"
)

const travelMode = "transit"

// Leg describes one hop between consecutive itinerary venues.
type Leg struct {
	Leg         int    `json:"leg"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Distance    string `json:"distance,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Mode        string `json:"mode"`
	MapsLink    string `json:"maps_link"`
}

type RouteService struct {
	client *maps.Client
}

// NewRouteService builds a routing service. An empty API key yields a
// keyless service that still produces Google Maps direction links.
func NewRouteService(apiKey string) (*RouteService, error) {
	if apiKey == "" {
		return &RouteService{}, nil
	}
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	return &RouteService{client: c}, nil
}

// Available reports whether the Directions API is usable.
func (s *RouteService) Available() bool {
	return s != nil && s.client != nil
}

// ItineraryLegs routes between consecutive venue names in order. Fewer
// than two distinct venues means there is nothing to route. Failed legs
// keep their keyless link so the response never loses a hop.
func (s *RouteService) ItineraryLegs(ctx context.Context, names []string, city, country string) []Leg {
	if s == nil || len(names) < 2 {
		return nil
	}
	legs := make([]Leg, 0, len(names)-1)
	for i := 0; i < len(names)-1; i++ {
		origin := venueAddress(names[i], city, country)
		dest := venueAddress(names[i+1], city, country)
		leg := Leg{
			Leg:         i + 1,
			Origin:      names[i],
			Destination: names[i+1],
			Mode:        travelMode,
			MapsLink:    DirectionsLink(origin, dest, travelMode),
		}
		if s.client != nil {
			if dist, dur, err := s.transitLeg(ctx, origin, dest); err != nil {
				log.Printf("maps: leg %s -> %s failed: %v", names[i], names[i+1], err)
			} else {
				leg.Distance = dist
				leg.Duration = dur
			}
		}
		legs = append(legs, leg)
	}
	return legs
}

func (s *RouteService) transitLeg(ctx context.Context, origin, dest string) (distance, duration string, err error) {
	routes, _, err := s.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: dest,
		Mode:        maps.TravelModeTransit,
	})
	if err != nil {
		return "", "", err
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return "", "", fmt.Errorf("no route found")
	}
	leg := routes[0].Legs[0]
	return leg.Distance.HumanReadable, leg.Duration.String(), nil
}

// DirectionsLink builds a keyless Google Maps directions URL.
func DirectionsLink(origin, dest, mode string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", origin)
	q.Set("destination", dest)
	q.Set("travelmode", mode)
	return "https://www.google.com/maps/dir/?" + q.Encode()
}

func venueAddress(name, city, country string) string {
	addr := name
	if city != "" {
		addr += ", " + city
	}
	if country != "" {
		addr += ", " + country
	}
	return addr
}
