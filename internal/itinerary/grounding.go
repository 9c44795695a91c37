// README: Post-generation grounding checks on itinerary citations.
package itinerary

import (
	"regexp"
	"strings"
)

// activityLabels are the line prefixes that require a citation.
var activityLabels = []string{
	"Early Morning", "Morning", "Lunch", "Afternoon", "Evening", "Dinner",
}

var citationRe = regexp.MustCompile(`\(Source:\s*(\w+),\s*(https?://[^)]+)\)`)

// GroundingReport is the advisory result of validating an itinerary
// against the venue catalog it was generated from.
type GroundingReport struct {
	Valid           bool     `json:"valid"`
	UncitedLines    []string `json:"uncited_lines,omitempty"`
	UnknownVenueIDs []string `json:"unknown_venue_ids,omitempty"`
}

// ValidateGrounding checks that every activity and meal line carries a
// citation and that every cited venue ID exists in the catalog. It is a
// pure function of its inputs: validating twice yields identical reports.
func ValidateGrounding(text string, knownIDs map[string]bool) GroundingReport {
	report := GroundingReport{Valid: true}
	seenUnknown := map[string]bool{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isActivityLine(trimmed) && !citationRe.MatchString(trimmed) {
			report.Valid = false
			report.UncitedLines = append(report.UncitedLines, trimmed)
		}
	}

	for _, m := range citationRe.FindAllStringSubmatch(text, -1) {
		id := m[1]
		if !knownIDs[id] && !seenUnknown[id] {
			seenUnknown[id] = true
			report.Valid = false
			report.UnknownVenueIDs = append(report.UnknownVenueIDs, id)
		}
	}
	return report
}

func isActivityLine(line string) bool {
	for _, label := range activityLabels {
		if strings.HasPrefix(line, label+":") {
			return true
		}
	}
	return false
}
