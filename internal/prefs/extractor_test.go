// README: Tests for transcript preference extraction.
package prefs

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"wayfarer/internal/llm"
)

func userMsg(content string) llm.Message {
	return llm.Message{Role: llm.RoleUser, Content: content}
}

func TestExtract_ISODateRange(t *testing.T) {
	p := Extract([]llm.Message{
		userMsg("I want to visit Toronto from 2026-02-28 to 2026-03-02"),
	})
	if p.StartDate != "2026-02-28" || p.EndDate != "2026-03-02" {
		t.Fatalf("got dates %s..%s", p.StartDate, p.EndDate)
	}
	if p.DurationDays != 3 {
		t.Fatalf("duration = %d, want 3 (inclusive of both endpoints)", p.DurationDays)
	}
}

func TestExtract_MonthNameRanges(t *testing.T) {
	year := time.Now().Year()
	tests := []struct {
		name  string
		input string
		start string
		end   string
	}{
		{
			name:  "single month with year",
			input: "Thinking March 15-17, 2026",
			start: "2026-03-15",
			end:   "2026-03-17",
		},
		{
			name:  "single month defaults to current year",
			input: "sometime July 3 to 6 would be great",
			start: fmt.Sprintf("%d-07-03", year),
			end:   fmt.Sprintf("%d-07-06", year),
		},
		{
			name:  "range spanning two months",
			input: "from June 28 to July 2, 2026",
			start: "2026-06-28",
			end:   "2026-07-02",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract([]llm.Message{userMsg(tt.input)})
			if p.StartDate != tt.start || p.EndDate != tt.end {
				t.Fatalf("got %s..%s, want %s..%s", p.StartDate, p.EndDate, tt.start, tt.end)
			}
		})
	}
}

func TestExtract_BudgetLastMentionWins(t *testing.T) {
	p := Extract([]llm.Message{
		userMsg("I have about $1,500 to spend"),
		userMsg("actually let's say 2000 dollars"),
	})
	if p.Budget != 2000 {
		t.Fatalf("budget = %v, want 2000", p.Budget)
	}
	if p.BudgetCurrency != "CAD" {
		t.Fatalf("currency = %q, want CAD", p.BudgetCurrency)
	}
}

func TestExtract_CityAndCountry(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		city    string
		country string
	}{
		{"comma country", "Planning a trip to Toronto, Canada", "Toronto", "Canada"},
		{"in country", "I'm visiting Kyoto in Japan", "Kyoto", "Japan"},
		{"city only", "We are going to Montreal for a few days", "Montreal", ""},
		{"month is not a city", "traveling to Toronto in March", "Toronto", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract([]llm.Message{userMsg(tt.input)})
			if p.City != tt.city || p.Country != tt.country {
				t.Fatalf("got %q/%q, want %q/%q", p.City, p.Country, tt.city, tt.country)
			}
		})
	}
}

func TestExtract_BareLeadingCity(t *testing.T) {
	p := Extract([]llm.Message{userMsg("Toronto, March 15-17 2026, moderate pace")})
	if p.City != "Toronto" {
		t.Fatalf("city = %q, want Toronto", p.City)
	}
	if p.Country != "" {
		t.Fatalf("country = %q, a month must not be read as a country", p.Country)
	}
	if p.StartDate != "2026-03-15" || p.EndDate != "2026-03-17" || p.DurationDays != 3 {
		t.Fatalf("dates = %s..%s (%d days)", p.StartDate, p.EndDate, p.DurationDays)
	}
	if p.Pace != PaceModerate {
		t.Fatalf("pace = %q, want moderate", p.Pace)
	}
}

func TestExtract_TravelVerbOutranksLooseMention(t *testing.T) {
	p := Extract([]llm.Message{
		userMsg("I'm interested in Museums but we're visiting Toronto"),
	})
	if p.City != "Toronto" {
		t.Fatalf("city = %q, travel verb must beat an earlier loose capitalized word", p.City)
	}
}

func TestExtract_NoFabricatedDefaults(t *testing.T) {
	p := Extract([]llm.Message{userMsg("hi, I'd like some help planning")})
	if p.City != "" || p.Country != "" || p.Pace != "" || p.StartDate != "" {
		t.Fatalf("extractor invented fields: %+v", p)
	}
}

func TestExtract_InterestsGrowMonotonically(t *testing.T) {
	first := Extract([]llm.Message{
		userMsg("I love museums"),
	})
	second := Extract([]llm.Message{
		userMsg("I love museums"),
		userMsg("oh, and good food too"),
	})
	if !reflect.DeepEqual(first.Interests, []string{CategoryCulture}) {
		t.Fatalf("first interests = %v", first.Interests)
	}
	want := []string{CategoryCulture, CategoryFood}
	if !reflect.DeepEqual(second.Interests, want) {
		t.Fatalf("second interests = %v, want %v", second.Interests, want)
	}
}

func TestExtract_Pace(t *testing.T) {
	tests := []struct {
		input string
		want  Pace
	}{
		{"keep it laid-back please", PaceRelaxed},
		{"a balanced schedule works", PaceModerate},
		{"we want a jam-packed few days", PacePacked},
		{"something busy and active", PacePacked},
	}
	for _, tt := range tests {
		p := Extract([]llm.Message{userMsg(tt.input)})
		if p.Pace != tt.want {
			t.Errorf("%q: pace = %q, want %q", tt.input, p.Pace, tt.want)
		}
	}
}

func TestExtract_BookingIntent(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		intent BookingIntent
		source string
	}{
		{"none", "just the itinerary please", BookingNone, ""},
		{"accommodation", "can you find an airbnb too", BookingAccommodation, ""},
		{"transportation with source", "I need flights from Ottawa", BookingTransportation, "Ottawa"},
		{"both", "a hotel and flights from Vancouver", BookingBoth, "Vancouver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract([]llm.Message{userMsg(tt.input)})
			if p.BookingIntent != tt.intent {
				t.Fatalf("intent = %q, want %q", p.BookingIntent, tt.intent)
			}
			if p.SourceLocation != tt.source {
				t.Fatalf("source = %q, want %q", p.SourceLocation, tt.source)
			}
		})
	}
}

func TestExtract_AssistantMessagesIgnored(t *testing.T) {
	p := Extract([]llm.Message{
		{Role: llm.RoleAssistant, Content: "How about visiting Paris?"},
		userMsg("not sure yet"),
	})
	if p.City != "" {
		t.Fatalf("city = %q, assistant suggestions must not be extracted", p.City)
	}
}
