// README: Generation prompt construction for grounded itineraries.
package itinerary

import (
	"fmt"
	"strings"

	"wayfarer/internal/prefs"
	"wayfarer/internal/venue"
	"wayfarer/internal/weather"
)

const (
	venueListStart = "VENUE LIST — START"
	venueListEnd   = "VENUE LIST — END"
)

// paceActivities maps a pace to its activity slots per day. Meals are
// always Lunch and Dinner on top of these.
var paceActivities = map[prefs.Pace][]string{
	prefs.PaceRelaxed:  {"Morning", "Afternoon"},
	prefs.PaceModerate: {"Morning", "Afternoon", "Evening"},
	prefs.PacePacked:   {"Early Morning", "Morning", "Afternoon", "Evening"},
}

// EffectivePace returns the pace used for generation. An unstated pace
// defaults to moderate here, at the last possible moment.
func EffectivePace(p prefs.Pace) prefs.Pace {
	if _, ok := paceActivities[p]; !ok {
		return prefs.PaceModerate
	}
	return p
}

// BuildSystemPrompt renders the full generation instruction: trip facts,
// day structure for the pace, weather context and the closed-world venue
// catalog every line must cite from.
func BuildSystemPrompt(p prefs.TripPreferences, venues []venue.Venue, forecasts []weather.Forecast) string {
	pace := EffectivePace(p.Pace)
	slots := paceActivities[pace]

	var sb strings.Builder
	sb.WriteString("You are a meticulous travel itinerary writer. Create a detailed day-by-day itinerary using ONLY the venues listed below.\n\n")

	sb.WriteString("TRIP DETAILS:\n")
	fmt.Fprintf(&sb, "- Destination: %s\n", destination(p))
	if p.StartDate != "" && p.EndDate != "" {
		fmt.Fprintf(&sb, "- Dates: %s to %s (%d days)\n", p.StartDate, p.EndDate, p.DurationDays)
	}
	fmt.Fprintf(&sb, "- Pace: %s\n", pace)
	if p.Budget > 0 {
		fmt.Fprintf(&sb, "- Budget: $%.2f %s total\n", p.Budget, p.BudgetCurrency)
	}
	if len(p.Interests) > 0 {
		fmt.Fprintf(&sb, "- Interests: %s\n", strings.Join(p.Interests, ", "))
	}
	sb.WriteString("\n")

	if len(forecasts) > 0 {
		sb.WriteString("WEATHER CONTEXT:\n")
		for _, f := range forecasts {
			fmt.Fprintf(&sb, "%s: %s, %.0f°C to %.0f°C, precipitation %d%%",
				f.Date, f.Condition, f.TempMinC, f.TempMaxC, f.PrecipitationChance)
			if f.PrecipitationChance > 50 {
				sb.WriteString(" [HIGH RAIN - prioritize indoor venues]")
			}
			if f.TempMaxC < 5 {
				sb.WriteString(" [COLD - mention warm clothing]")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("DAY STRUCTURE:\n")
	fmt.Fprintf(&sb, "- Each day has exactly %d activities in these slots: %s.\n",
		len(slots), strings.Join(slots, ", "))
	sb.WriteString("- Each day has exactly 2 meals: Lunch and Dinner, at Food and Beverage venues where possible.\n")
	sb.WriteString("- Header each day as: Day N — [date]\n")
	sb.WriteString("- Write each line as: <Slot>: <activity> — <venue name> (Source: <venue_id>, <url>)\n\n")

	sb.WriteString("RULES:\n")
	sb.WriteString("- Use ONLY venues from the list below. Never invent a venue, address or URL.\n")
	sb.WriteString("- Every activity and meal line MUST end with its (Source: venue_id, url) citation, copied exactly from the list.\n")
	sb.WriteString("- Do not repeat a venue across the trip unless the list is too small to avoid it.\n")
	sb.WriteString("- Respect the weather context: prefer indoor venues on high-rain days.\n")
	if p.Budget > 0 {
		sb.WriteString("- Finish with an estimated budget breakdown that stays within the stated total.\n")
	} else {
		sb.WriteString("- Finish with a rough estimated budget for the trip.\n")
	}
	sb.WriteString("\n")

	sb.WriteString(venueListStart + "\n")
	sb.WriteString(venue.FormatForPrompt(venues))
	sb.WriteString(venueListEnd + "\n")

	return sb.String()
}

// GenerationRequest is the final user turn asking for the itinerary.
func GenerationRequest(p prefs.TripPreferences) string {
	return fmt.Sprintf("Please generate my %s itinerary now, following every rule above.", destination(p))
}

func destination(p prefs.TripPreferences) string {
	switch {
	case p.City != "" && p.Country != "":
		return p.City + ", " + p.Country
	case p.City != "":
		return p.City
	default:
		return "Toronto, Canada"
	}
}
