// README: Regex-based preference extraction over the user side of a transcript.
package prefs

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"wayfarer/internal/llm"
)

var (
	isoRangeRe = regexp.MustCompile(
		`(\d{4})-(\d{2})-(\d{2})\s*(?:to|–|-)\s*(\d{4})-(\d{2})-(\d{2})`)
	twoMonthRangeRe = regexp.MustCompile(
		`(?i)([A-Za-z]+)\s+(\d{1,2})(?:\s*,?\s*(\d{4}))?\s*(?:to|–|-)\s*([A-Za-z]+)\s+(\d{1,2})(?:\s*,?\s*(\d{4}))?`)
	singleMonthRangeRe = regexp.MustCompile(
		`(?i)([A-Za-z]+)\s+(\d{1,2})\s*(?:to|–|-)\s*(\d{1,2})(?:\s*,?\s*(\d{4}))?`)

	budgetRe = regexp.MustCompile(
		`(?i)\$\s*([\d,]+(?:\.\d{1,2})?)|([\d,]+(?:\.\d{1,2})?)\s*(?:CAD|dollars?|bucks)`)

	paceRe = regexp.MustCompile(
		`(?i)\b(relaxed|relaxing|relax|chill|easy|laid.?back|leisurely|moderate|medium|balanced|normal|packed|fast|rushed|rush|busy|intense|active|jam.?packed|hectic)\b`)

	countryAfterCityRe = regexp.MustCompile(
		`^(?:,\s*|\s+in\s+)([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`)
	sourceLocationRe = regexp.MustCompile(
		`(?:from|From)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`)
)

// cityPatterns is tried in priority order: an explicit travel verb beats a
// possessive "X trip", which beats a bare leading "City," mention, which
// beats loose "in X" / "to X" phrasing. The first non-stop-word capture of
// the highest-priority pattern wins, regardless of position in the text.
var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:(?i:visiting|visit|trip to|travel(?:ing|ling)? to|going to|go to|fly(?:ing)? to|heading to))\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`),
	regexp.MustCompile(`([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)\s+trip\b`),
	regexp.MustCompile(`(?m:^)\s*([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)\s*,`),
	regexp.MustCompile(`\bin\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`),
	regexp.MustCompile(`\bto\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`),
}

var monthNumbers = map[string]int{
	"january": 1, "jan": 1, "february": 2, "feb": 2, "march": 3, "mar": 3,
	"april": 4, "apr": 4, "may": 5, "june": 6, "jun": 6, "july": 7, "jul": 7,
	"august": 8, "aug": 8, "september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10, "november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

// Words a naive capitalized-word city match must never capture.
var cityStopWords = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"relaxed": true, "moderate": true, "packed": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true, "weekend": true,
	"canada": true, "usa": true, "america": true, "france": true,
	"england": true, "italy": true, "spain": true, "japan": true,
	"germany": true, "mexico": true,
}

// Extract scans every user message in the transcript and returns the
// structured preferences it can find. Fields the user never mentioned
// stay zero: the extractor never invents a destination or a pace.
func Extract(messages []llm.Message) TripPreferences {
	var sb strings.Builder
	for _, m := range messages {
		if m.Role != llm.RoleUser {
			continue
		}
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	text := sb.String()

	p := TripPreferences{BudgetCurrency: "CAD", BookingIntent: BookingNone}
	extractDates(text, &p)
	extractBudget(text, &p)
	extractPace(text, &p)
	extractDestination(text, &p)
	extractInterests(text, &p)
	extractBookingIntent(text, &p)
	p.DeriveDateFields()
	return p
}

// extractDates applies the three date patterns in order of specificity.
// The first pattern that matches wins.
func extractDates(text string, p *TripPreferences) {
	if m := isoRangeRe.FindStringSubmatch(text); m != nil {
		p.StartDate = fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
		p.EndDate = fmt.Sprintf("%s-%s-%s", m[4], m[5], m[6])
		return
	}
	year := time.Now().Year()
	if m := twoMonthRangeRe.FindStringSubmatch(text); m != nil {
		m1, ok1 := monthNumbers[strings.ToLower(m[1])]
		m2, ok2 := monthNumbers[strings.ToLower(m[4])]
		if ok1 && ok2 {
			y1, y2 := year, year
			if m[3] != "" {
				y1, _ = strconv.Atoi(m[3])
				y2 = y1
			}
			if m[6] != "" {
				y2, _ = strconv.Atoi(m[6])
				if m[3] == "" {
					y1 = y2
				}
			}
			d1, _ := strconv.Atoi(m[2])
			d2, _ := strconv.Atoi(m[5])
			p.StartDate = fmt.Sprintf("%04d-%02d-%02d", y1, m1, d1)
			p.EndDate = fmt.Sprintf("%04d-%02d-%02d", y2, m2, d2)
			return
		}
	}
	if m := singleMonthRangeRe.FindStringSubmatch(text); m != nil {
		mo, ok := monthNumbers[strings.ToLower(m[1])]
		if !ok {
			return
		}
		y := year
		if m[4] != "" {
			y, _ = strconv.Atoi(m[4])
		}
		d1, _ := strconv.Atoi(m[2])
		d2, _ := strconv.Atoi(m[3])
		p.StartDate = fmt.Sprintf("%04d-%02d-%02d", y, mo, d1)
		p.EndDate = fmt.Sprintf("%04d-%02d-%02d", y, mo, d2)
	}
}

// extractBudget keeps the last monetary amount mentioned, so corrections
// like "actually make it $2000" override earlier figures.
func extractBudget(text string, p *TripPreferences) {
	matches := budgetRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return
	}
	m := matches[len(matches)-1]
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	raw = strings.ReplaceAll(raw, ",", "")
	if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
		p.Budget = v
	}
}

func extractPace(text string, p *TripPreferences) {
	if m := paceRe.FindStringSubmatch(text); m != nil {
		p.Pace = NormalizePace(m[1])
	}
}

func extractDestination(text string, p *TripPreferences) {
	for _, re := range cityPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			candidate := text[m[2]:m[3]]
			if cityStopWords[strings.ToLower(candidate)] {
				continue
			}
			p.City = candidate
			// A country may trail the city: "Toronto, Canada" or "Kyoto in Japan".
			rest := text[m[3]:]
			if cm := countryAfterCityRe.FindStringSubmatch(rest); cm != nil {
				if !cityStopWords[strings.ToLower(cm[1])] || isCountry(cm[1]) {
					p.Country = cm[1]
				}
			}
			return
		}
	}
}

func isCountry(word string) bool {
	switch strings.ToLower(word) {
	case "canada", "usa", "america", "france", "england", "italy", "spain",
		"japan", "germany", "mexico":
		return true
	}
	return false
}

// extractInterests unions every keyword hit into the canonical categories.
// Interests only ever grow across turns since the full transcript is rescanned.
func extractInterests(text string, p *TripPreferences) {
	lower := strings.ToLower(text)
	seen := map[string]bool{}
	for _, c := range p.Interests {
		seen[c] = true
	}
	for _, kw := range InterestKeywords {
		if seen[kw.Category] {
			continue
		}
		if strings.Contains(lower, kw.Keyword) {
			seen[kw.Category] = true
		}
	}
	if len(seen) == 0 {
		return
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	p.Interests = cats
}

func extractBookingIntent(text string, p *TripPreferences) {
	lower := strings.ToLower(text)
	stay := strings.Contains(lower, "airbnb") || strings.Contains(lower, "accommodation") ||
		strings.Contains(lower, "hotel") || strings.Contains(lower, "place to stay") ||
		strings.Contains(lower, "somewhere to stay")
	travel := strings.Contains(lower, "flight") || strings.Contains(lower, "bus ") ||
		strings.Contains(lower, "bus.") || strings.Contains(lower, "transportation") ||
		strings.Contains(lower, "how to get there") || strings.Contains(lower, "getting there")
	switch {
	case stay && travel:
		p.BookingIntent = BookingBoth
	case stay:
		p.BookingIntent = BookingAccommodation
	case travel:
		p.BookingIntent = BookingTransportation
	}
	if travel {
		if m := sourceLocationRe.FindStringSubmatch(text); m != nil {
			if !cityStopWords[strings.ToLower(m[1])] {
				p.SourceLocation = m[1]
			}
		}
	}
}
