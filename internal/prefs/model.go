// README: Structured trip preferences and the canonical pace/interest tables.
package prefs

import (
	"time"
)

type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PacePacked   Pace = "packed"
)

type BookingIntent string

const (
	BookingNone           BookingIntent = "none"
	BookingAccommodation  BookingIntent = "accommodation"
	BookingTransportation BookingIntent = "transportation"
	BookingBoth           BookingIntent = "both"
)

const dateLayout = "2006-01-02"

// TripPreferences is the structured record extracted from a conversation
// transcript. Every field is optional; zero values mean "not mentioned".
// A fresh record is built each turn and never persisted.
type TripPreferences struct {
	City               string        `json:"city,omitempty"`
	Country            string        `json:"country,omitempty"`
	StartDate          string        `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate            string        `json:"end_date,omitempty"`   // YYYY-MM-DD
	DurationDays       int           `json:"duration_days,omitempty"`
	Budget             float64       `json:"budget,omitempty"`
	BudgetCurrency     string        `json:"budget_currency,omitempty"`
	Interests          []string      `json:"interests,omitempty"`
	Pace               Pace          `json:"pace,omitempty"`
	LocationPreference string        `json:"location_preference,omitempty"`
	BookingIntent      BookingIntent `json:"booking_intent,omitempty"`
	SourceLocation     string        `json:"source_location,omitempty"`
}

// PaceSynonyms maps loose phrasing onto the three canonical pace values.
var PaceSynonyms = map[string]Pace{
	"relax": PaceRelaxed, "relaxed": PaceRelaxed, "relaxing": PaceRelaxed,
	"chill": PaceRelaxed, "chilled": PaceRelaxed, "slow": PaceRelaxed,
	"lazy": PaceRelaxed, "leisurely": PaceRelaxed, "easy": PaceRelaxed,
	"easygoing": PaceRelaxed, "casual": PaceRelaxed, "laidback": PaceRelaxed,

	"moderate": PaceModerate, "medium": PaceModerate, "balanced": PaceModerate,
	"normal": PaceModerate, "average": PaceModerate, "steady": PaceModerate,

	"packed": PacePacked, "fast": PacePacked, "rush": PacePacked,
	"rushed": PacePacked, "busy": PacePacked, "intense": PacePacked,
	"active": PacePacked, "hectic": PacePacked, "jampacked": PacePacked,
	"nonstop": PacePacked,
}

// The five canonical interest categories. The extractor only ever emits
// these names.
const (
	CategoryFood          = "Food and Beverage"
	CategoryEntertainment = "Entertainment"
	CategoryCulture       = "Culture and History"
	CategorySport         = "Sport"
	CategoryNature        = "Natural Place"
)

// InterestKeywords maps activity phrases onto categories. Matching is
// case-insensitive substring, first category found wins for a given phrase.
var InterestKeywords = []struct {
	Keyword  string
	Category string
}{
	// Food and Beverage
	{"street food", CategoryFood}, {"food tour", CategoryFood},
	{"local food", CategoryFood}, {"food", CategoryFood},
	{"restaurant", CategoryFood}, {"dining", CategoryFood},
	{"cuisine", CategoryFood}, {"culinary", CategoryFood},
	{"foodie", CategoryFood}, {"coffee", CategoryFood},
	{"cafe", CategoryFood}, {"bakery", CategoryFood},
	{"brewery", CategoryFood}, {"distillery", CategoryFood},
	{"winery", CategoryFood}, {"wine", CategoryFood},
	{"beer", CategoryFood}, {"cocktail", CategoryFood},
	{"brunch", CategoryFood}, {"breakfast", CategoryFood},
	{"dessert", CategoryFood}, {"tasting", CategoryFood},

	// Entertainment
	{"entertainment", CategoryEntertainment}, {"shopping", CategoryEntertainment},
	{"casino", CategoryEntertainment}, {"spa", CategoryEntertainment},
	{"nightlife", CategoryEntertainment}, {"nightclub", CategoryEntertainment},
	{"club", CategoryEntertainment}, {"karaoke", CategoryEntertainment},
	{"cinema", CategoryEntertainment}, {"movie", CategoryEntertainment},
	{"theatre", CategoryEntertainment}, {"theater", CategoryEntertainment},
	{"concert", CategoryEntertainment}, {"live music", CategoryEntertainment},
	{"festival", CategoryEntertainment}, {"amusement park", CategoryEntertainment},
	{"theme park", CategoryEntertainment}, {"bowling", CategoryEntertainment},
	{"escape room", CategoryEntertainment}, {"zoo", CategoryEntertainment},
	{"aquarium", CategoryEntertainment}, {"mall", CategoryEntertainment},
	{"market", CategoryEntertainment}, {"arcade", CategoryEntertainment},
	{"pub", CategoryEntertainment}, {"bar", CategoryEntertainment},

	// Culture and History
	{"culture", CategoryCulture}, {"cultural", CategoryCulture},
	{"history", CategoryCulture}, {"historic", CategoryCulture},
	{"historical", CategoryCulture}, {"museum", CategoryCulture},
	{"library", CategoryCulture}, {"church", CategoryCulture},
	{"cathedral", CategoryCulture}, {"temple", CategoryCulture},
	{"mosque", CategoryCulture}, {"old town", CategoryCulture},
	{"old quarter", CategoryCulture}, {"fortress", CategoryCulture},
	{"castle", CategoryCulture}, {"palace", CategoryCulture},
	{"monument", CategoryCulture}, {"heritage", CategoryCulture},
	{"ruins", CategoryCulture}, {"archaeology", CategoryCulture},
	{"art gallery", CategoryCulture}, {"gallery", CategoryCulture},
	{"art", CategoryCulture}, {"architecture", CategoryCulture},
	{"landmark", CategoryCulture}, {"memorial", CategoryCulture},
	{"sightseeing", CategoryCulture},

	// Sport
	{"sport", CategorySport}, {"soccer", CategorySport},
	{"football", CategorySport}, {"basketball", CategorySport},
	{"baseball", CategorySport}, {"hockey", CategorySport},
	{"tennis", CategorySport}, {"golf", CategorySport},
	{"stadium", CategorySport}, {"arena", CategorySport},
	{"skiing", CategorySport}, {"snowboarding", CategorySport},
	{"skating", CategorySport}, {"cycling", CategorySport},
	{"biking", CategorySport}, {"running", CategorySport},
	{"marathon", CategorySport}, {"swimming", CategorySport},
	{"kayaking", CategorySport}, {"climbing", CategorySport},

	// Natural Place
	{"national park", CategoryNature}, {"nature", CategoryNature},
	{"park", CategoryNature}, {"beach", CategoryNature},
	{"ocean", CategoryNature}, {"lake", CategoryNature},
	{"river", CategoryNature}, {"fishing", CategoryNature},
	{"diving", CategoryNature}, {"snorkeling", CategoryNature},
	{"trekking", CategoryNature}, {"hiking", CategoryNature},
	{"hike", CategoryNature}, {"trail", CategoryNature},
	{"mountain", CategoryNature}, {"forest", CategoryNature},
	{"waterfall", CategoryNature}, {"garden", CategoryNature},
	{"botanical", CategoryNature}, {"wildlife", CategoryNature},
	{"camping", CategoryNature}, {"outdoor", CategoryNature},
	{"scenic", CategoryNature}, {"island", CategoryNature},
	{"waterfront", CategoryNature}, {"countryside", CategoryNature},
}

// NormalizePace maps a raw pace word onto a canonical value. Unknown words
// return the empty pace rather than a guess.
func NormalizePace(raw string) Pace {
	if p, ok := PaceSynonyms[normalizeKey(raw)]; ok {
		return p
	}
	return ""
}

func normalizeKey(raw string) string {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == '-' || r == ' ':
			// drop separators so "laid-back" and "jam packed" normalize
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// DeriveDateFields fills in whichever of start/end/duration is missing when
// the other two are present. Duration is inclusive of both endpoints:
// 2026-02-28 to 2026-03-02 is 3 days.
func (p *TripPreferences) DeriveDateFields() {
	start, startOK := parseDate(p.StartDate)
	end, endOK := parseDate(p.EndDate)

	switch {
	case startOK && endOK && p.DurationDays == 0:
		d := int(end.Sub(start).Hours()/24) + 1
		if d > 0 {
			p.DurationDays = d
		}
	case startOK && p.DurationDays > 0 && !endOK:
		p.EndDate = start.AddDate(0, 0, p.DurationDays-1).Format(dateLayout)
	case endOK && p.DurationDays > 0 && !startOK:
		p.StartDate = end.AddDate(0, 0, -(p.DurationDays - 1)).Format(dateLayout)
	}
}

// DatesConsistent reports whether the three date fields, where present,
// agree with the inclusive-duration invariant.
func (p *TripPreferences) DatesConsistent() bool {
	start, startOK := parseDate(p.StartDate)
	end, endOK := parseDate(p.EndDate)
	if startOK && endOK {
		if end.Before(start) {
			return false
		}
		if p.DurationDays != 0 && p.DurationDays != int(end.Sub(start).Hours()/24)+1 {
			return false
		}
	}
	return true
}

// HasInterest reports whether a canonical category is already captured.
func (p *TripPreferences) HasInterest(category string) bool {
	for _, c := range p.Interests {
		if c == category {
			return true
		}
	}
	return false
}

func parseDate(s string) (time.Time, bool) {
	if len(s) != len(dateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
