// README: Venue catalog selection and prompt formatting.
package venue

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

const descriptionLimit = 200

// Lister is the read surface the service needs from a store.
type Lister interface {
	ByCity(ctx context.Context, city string, limit int) ([]Venue, error)
}

type Service struct {
	store Lister
}

func NewService(store Lister) *Service {
	return &Service{store: store}
}

// CatalogForCity returns the grounded venue catalog for a destination.
// Database failures and empty results both fall back to the static
// catalog so generation always has citable venues.
func (s *Service) CatalogForCity(ctx context.Context, city string) []Venue {
	if s.store != nil && city != "" {
		venues, err := s.store.ByCity(ctx, city, defaultLimit)
		if err != nil {
			log.Printf("venue: lookup for %q failed, using fallback catalog: %v", city, err)
		} else if len(venues) > 0 {
			return sortedByID(venues)
		}
	}
	return sortedByID(FallbackVenues)
}

// KnownIDs returns the set of citable venue IDs in a catalog.
func KnownIDs(venues []Venue) map[string]bool {
	ids := make(map[string]bool, len(venues))
	for _, v := range venues {
		ids[v.ID] = true
	}
	return ids
}

// FormatForPrompt renders the catalog as one line per venue for inclusion
// in the generation prompt. Output is deterministic for a given catalog.
func FormatForPrompt(venues []Venue) string {
	var sb strings.Builder
	for _, v := range sortedByID(venues) {
		desc := v.Description
		// Truncate on rune boundaries so a multibyte character in a
		// scraped description is never split.
		if r := []rune(desc); len(r) > descriptionLimit {
			desc = string(r[:descriptionLimit])
		}
		fmt.Fprintf(&sb, "[venue_id: %s] %s [%s] — %s | URL: %s | %s\n",
			v.ID, v.Name, v.Category, v.Address, v.SourceURL, desc)
	}
	return sb.String()
}

func sortedByID(venues []Venue) []Venue {
	out := make([]Venue, len(venues))
	copy(out, venues)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
