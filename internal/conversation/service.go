// README: Conversation turn engine: greeting, intake, confirmation, itinerary.
package conversation

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/internal/itinerary"
	"wayfarer/internal/llm"
	"wayfarer/internal/maps"
	"wayfarer/internal/prefs"
	"wayfarer/internal/venue"
)

type Phase string

const (
	PhaseGreeting  Phase = "greeting"
	PhaseIntake    Phase = "intake"
	PhaseConfirmed Phase = "confirmed"
	PhaseItinerary Phase = "itinerary"
)

// Enrichment is the side data attached to an itinerary turn.
type Enrichment struct {
	WeatherSummary string                     `json:"weather_summary,omitempty"`
	BookingLinks   map[string]string          `json:"booking_links,omitempty"`
	RouteLegs      []maps.Leg                 `json:"route_legs,omitempty"`
	Grounding      *itinerary.GroundingReport `json:"grounding,omitempty"`
}

// TurnResult is everything one conversation turn produces.
type TurnResult struct {
	Transcript    []llm.Message `json:"messages"`
	AssistantText string        `json:"assistant_message"`
	Phase         Phase         `json:"phase"`
	StillNeed     []string      `json:"still_need,omitempty"`
	Enrichment    *Enrichment   `json:"enrichment,omitempty"`
}

// Planner is the itinerary orchestration surface the conversation needs.
type Planner interface {
	Enrich(ctx context.Context, p prefs.TripPreferences) itinerary.Enrichment
	Generate(ctx context.Context, transcript []llm.Message, p prefs.TripPreferences, enr itinerary.Enrichment) (string, error)
	RouteLegs(ctx context.Context, itineraryText string, p prefs.TripPreferences) []maps.Leg
}

// Generator is the chat surface carrying intake turns.
type Generator interface {
	Invoke(ctx context.Context, messages []llm.Message, temperature float32, maxTokens int) (string, error)
}

type Service struct {
	gateway     Generator
	planner     Planner
	temperature float32
	maxTokens   int
}

func NewService(gateway Generator, planner Planner, temperature float32, maxTokens int) *Service {
	return &Service{
		gateway:     gateway,
		planner:     planner,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Turn advances the conversation by one exchange. The transcript is the
// caller's full prior history; the returned transcript includes this
// turn's user and assistant messages.
func (s *Service) Turn(ctx context.Context, transcript []llm.Message, userInput string) (TurnResult, error) {
	userInput = strings.TrimSpace(userInput)
	transcript = llm.CloneTranscript(transcript)

	// A brand-new conversation always opens with the greeting, even if the
	// client sent input alongside the empty transcript.
	if len(transcript) == 0 {
		return s.greet(), nil
	}

	confirmed := lastAssistantConfirmed(transcript) && affirmativeRe.MatchString(userInput)
	transcript = append(transcript, llm.Message{Role: llm.RoleUser, Content: userInput})

	if confirmed {
		return s.generateItinerary(ctx, transcript)
	}
	return s.intake(ctx, transcript)
}

// greet seeds the transcript with the intake system prompt and the fixed
// welcome message, so later turns carry the prompt instead of re-injecting it.
func (s *Service) greet() TurnResult {
	return TurnResult{
		Transcript: []llm.Message{
			{Role: llm.RoleSystem, Content: intakeSystemPrompt},
			{Role: llm.RoleAssistant, Content: greetingText},
		},
		AssistantText: greetingText,
		Phase:         PhaseGreeting,
		StillNeed:     append([]string(nil), greetingStillNeed...),
	}
}

func (s *Service) intake(ctx context.Context, transcript []llm.Message) (TurnResult, error) {
	// Recovery path for clients that dropped the seeded system prompt:
	// re-inject it, and persist it so the next turn does not have to.
	if len(transcript) == 0 || transcript[0].Role != llm.RoleSystem {
		transcript = append([]llm.Message{{Role: llm.RoleSystem, Content: intakeSystemPrompt}}, transcript...)
	}

	reply, err := s.gateway.Invoke(ctx, transcript, s.temperature, s.maxTokens)
	if err != nil {
		return TurnResult{}, fmt.Errorf("intake turn: %w", err)
	}

	visible, stillNeed, found := parseStillNeed(reply)
	if !found {
		stillNeed = missingRequiredFields(transcript)
	}

	phase := PhaseIntake
	if strings.Contains(strings.ToLower(visible), confirmationMarker) {
		phase = PhaseConfirmed
		stillNeed = nil
	}

	transcript = append(transcript, llm.Message{Role: llm.RoleAssistant, Content: visible})
	return TurnResult{
		Transcript:    transcript,
		AssistantText: visible,
		Phase:         phase,
		StillNeed:     stillNeed,
	}, nil
}

func (s *Service) generateItinerary(ctx context.Context, transcript []llm.Message) (TurnResult, error) {
	p := prefs.Extract(transcript)

	enr := s.planner.Enrich(ctx, p)
	text, err := s.planner.Generate(ctx, transcript, p, enr)
	if err != nil {
		return TurnResult{}, fmt.Errorf("itinerary turn: %w", err)
	}

	report := itinerary.ValidateGrounding(text, venue.KnownIDs(enr.Venues))
	legs := s.planner.RouteLegs(ctx, text, p)

	transcript = append(transcript, llm.Message{Role: llm.RoleAssistant, Content: text})
	return TurnResult{
		Transcript:    transcript,
		AssistantText: text,
		Phase:         PhaseItinerary,
		Enrichment: &Enrichment{
			WeatherSummary: enr.WeatherSummary,
			BookingLinks:   enr.BookingLinks,
			RouteLegs:      legs,
			Grounding:      &report,
		},
	}, nil
}

// lastAssistantConfirmed reports whether the most recent assistant turn
// asked the confirmation question. Both halves of the gate must hold
// before generation runs.
func lastAssistantConfirmed(transcript []llm.Message) bool {
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Role == llm.RoleAssistant {
			return strings.Contains(strings.ToLower(transcript[i].Content), confirmationMarker)
		}
	}
	return false
}

// parseStillNeed pulls the trailing "Still need:" line out of an intake
// reply. The line is bookkeeping for the client, not conversation text,
// so it is stripped from the visible reply.
func parseStillNeed(reply string) (visible string, stillNeed []string, found bool) {
	matches := stillNeedRe.FindAllStringSubmatchIndex(reply, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(reply), nil, false
	}
	last := matches[len(matches)-1]
	content := strings.TrimSpace(reply[last[2]:last[3]])
	visible = strings.TrimSpace(reply[:last[0]] + reply[last[1]:])

	switch strings.ToLower(content) {
	case "", "none", "nothing", "n/a":
		return visible, nil, true
	}
	for _, part := range strings.Split(content, ",") {
		if part = strings.TrimSpace(part); part != "" {
			stillNeed = append(stillNeed, part)
		}
	}
	return visible, stillNeed, true
}

// missingRequiredFields is the extractor-based fallback when the model
// forgot its "Still need:" line.
func missingRequiredFields(transcript []llm.Message) []string {
	p := prefs.Extract(transcript)
	var missing []string
	if p.City == "" {
		missing = append(missing, "city")
	}
	if p.Country == "" {
		missing = append(missing, "country")
	}
	if p.StartDate == "" || p.EndDate == "" {
		missing = append(missing, "travel dates")
	}
	if p.Pace == "" {
		missing = append(missing, "pace")
	}
	return missing
}
