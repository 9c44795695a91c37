// README: Intake prompt, greeting, and confirmation patterns.
package conversation

import "regexp"

// greetingText opens every new conversation before any model call.
const greetingText = "Hey there! Welcome to the Trip Planner! I'd love to help you put together a great travel itinerary. To get started, could you tell me a bit about your trip? Things like where you're planning to visit (city and country), when you're traveling, what kinds of activities you enjoy, and whether you'd like a relaxed, moderate, or packed schedule?"

// greetingStillNeed lists the required fields a brand-new conversation
// is missing.
var greetingStillNeed = []string{"city", "country", "travel dates", "pace"}

// confirmationMarker must appear in the assistant's confirmation question.
// The itinerary gate checks for it case-insensitively.
const confirmationMarker = "generate your itinerary"

const intakeSystemPrompt = `You are a friendly travel planning assistant gathering trip details through natural conversation.

REQUIRED FIELDS you must collect before the trip can be planned:
- city (the destination city)
- country (the destination country)
- travel dates (start and end, or a start date and a length)
- pace (relaxed, moderate, or packed)

OPTIONAL FIELDS worth asking about once the required ones are covered:
- interests and activities (food, museums, sports, nature, nightlife)
- total budget
- whether they want help booking accommodation or transportation, and if transportation, where they are traveling from

CONVERSATION RULES:
- Be warm and conversational. Ask about at most two missing things per reply.
- Never invent details the traveler has not given you. If something is unclear, ask.
- Acknowledge corrections: the traveler's latest statement always wins.
- When every required field is collected, ask exactly one confirmation question of the form: "Great! I have everything I need. Want me to generate your itinerary for [city]?" Do not produce the itinerary yourself.

After EVERY reply, append a final line of the form:
Still need: <comma-separated required fields still missing, or "none">`

var (
	// affirmativeRe accepts the short yes-like replies that confirm
	// itinerary generation. Anything else stays in intake.
	affirmativeRe = regexp.MustCompile(`(?i)^\s*(yes\s*,?\s*please|yes|yeah|yep|yup|sure|go\s*ahead|please\s*do|let'?s?\s*do\s*it|let'?s?\s*go|absolutely|ok|okay|sounds\s*good|generate\s*it|generate|do\s*it|for\s*sure|definitely|of\s*course|yes\s*,?\s*generate\s*it|please)[.!]?\s*$`)

	// stillNeedRe captures the machine-readable tail line of an intake reply.
	stillNeedRe = regexp.MustCompile(`(?im)^\s*still need:\s*(.*)\s*$`)
)
