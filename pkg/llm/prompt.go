package llm

import (
	"fmt"
	"strings"
)

const itinerarySystemPrompt = `You are TravelGPT, an expert AI travel planner.
You must respond with valid JSON only, with no markdown formatting, no code blocks, and no extra text.
Your response must be a single JSON object with this exact structure:
{"days": [{"day": 1, "summary": "..."}, {"day": 2, "summary": "..."}, ...]}

Each summary should be a concise paragraph describing the day's activities, attractions, and recommendations.
Do not include any text before or after the JSON object.`

const regenerateDaySystemPrompt = `You are TravelGPT, an expert AI travel planner.
You must respond with valid JSON only, with no markdown formatting, no code blocks, and no extra text.
Your response must be a single JSON object with this exact structure:
{"day": <number>, "summary": "..."}

The summary should be a concise paragraph describing the day's activities, attractions, and recommendations.
Do not include any text before or after the JSON object.`

func buildItineraryPrompt(destination string, days int, prefs string) string {
	var b strings.Builder
	b.WriteString(itinerarySystemPrompt)
	fmt.Fprintf(&b, "\n\nPlan a %d-day trip to %s.", days, destination)
	if p := strings.TrimSpace(prefs); p != "" {
		fmt.Fprintf(&b, " User preferences: %s.", p)
	}
	return b.String()
}

func buildItineraryRetryPrompt(destination string, days int, prefs string) string {
	p := strings.TrimSpace(prefs)
	if p == "" {
		p = "none"
	}
	return fmt.Sprintf(
		"%s\n\nPlan a %d-day trip to %s. "+
			`CRITICAL: Respond with ONLY valid JSON, no markdown, no code blocks. `+
			`Format: {"days": [{"day": 1, "summary": "..."}, ...]}. `+
			"Preferences: %s.",
		itinerarySystemPrompt, days, destination, p)
}

func buildDayPrompt(destination string, dayNum, totalDays int, prefs string) string {
	var b strings.Builder
	b.WriteString(regenerateDaySystemPrompt)
	fmt.Fprintf(&b, "\n\nRegenerate the itinerary for Day %d of a %d-day trip to %s.", dayNum, totalDays, destination)
	if p := strings.TrimSpace(prefs); p != "" {
		fmt.Fprintf(&b, " User preferences: %s.", p)
	}
	return b.String()
}
