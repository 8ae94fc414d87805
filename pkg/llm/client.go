package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// Client is the contract for the generative itinerary backend.
// Both provider implementations (OpenAI, Gemini) share the same prompt
// construction, parsing and validation; only the completion transport differs.
type Client interface {
	// GenerateItinerary asks the backend for a full multi-day itinerary.
	// The returned day count may differ from the requested one; callers are
	// responsible for deciding what to do with a partial result.
	GenerateItinerary(ctx context.Context, destination string, days int, prefs string) (*Itinerary, error)

	// RegenerateDay asks the backend for a fresh summary of a single day.
	// The returned Day is always the requested dayNum, regardless of what
	// the model reported.
	RegenerateDay(ctx context.Context, destination string, dayNum, totalDays int, prefs string) (*DayEntry, error)
}

// DayEntry is one day of generated itinerary content.
type DayEntry struct {
	Day     int    `json:"day"`
	Summary string `json:"summary"`
}

// Itinerary is the backend's structured output for a full trip. It is
// transient: validated here, then projected into persisted day rows.
type Itinerary struct {
	Days []DayEntry `json:"days"`
}

// ErrGenerationFailed is the umbrella sentinel for every way the backend can
// let us down. Callers that only care about "did it work" match on this;
// callers that care why can unwrap to *Error.
var ErrGenerationFailed = errors.New("itinerary generation failed")

type FailureKind int

const (
	// KindTransport covers API errors: timeouts, auth failures, rate limits.
	KindTransport FailureKind = iota
	// KindParse means the response text was not valid JSON.
	KindParse
	// KindSchema means the JSON was valid but did not match the contract.
	KindSchema
)

func (k FailureKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// Error is a generation failure tagged with what went wrong. Every failure
// branch of the client produces one of these; raw provider errors never
// escape unwrapped.
type Error struct {
	Kind FailureKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation %s failure: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("generation %s failure: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return ErrGenerationFailed }

// completionFn is the transport seam between the shared generation flow and a
// concrete provider. Tests substitute a scripted function here.
type completionFn func(ctx context.Context, prompt string) (string, error)

// generator implements the Client flow on top of an arbitrary completion
// transport.
type generator struct {
	complete completionFn
}

func (g *generator) GenerateItinerary(ctx context.Context, destination string, days int, prefs string) (*Itinerary, error) {
	content, err := g.complete(ctx, buildItineraryPrompt(destination, days, prefs))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Msg: "itinerary request", Err: err}
	}

	itinerary, verr := parseItinerary(content, days)
	if verr == nil {
		return itinerary, nil
	}
	if verr.Kind != KindParse {
		return nil, verr
	}

	// The model wrapped the JSON in prose or fences. One retry with an
	// intensified instruction, same parameters.
	log.Printf("itinerary response was not valid JSON, retrying with strict prompt: %s", verr.Msg)
	content, err = g.complete(ctx, buildItineraryRetryPrompt(destination, days, prefs))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Msg: "itinerary retry request", Err: err}
	}
	itinerary, verr = parseItineraryLoose(content, days)
	if verr != nil {
		return nil, verr
	}
	return itinerary, nil
}

func (g *generator) RegenerateDay(ctx context.Context, destination string, dayNum, totalDays int, prefs string) (*DayEntry, error) {
	content, err := g.complete(ctx, buildDayPrompt(destination, dayNum, totalDays, prefs))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Msg: "day regeneration request", Err: err}
	}

	entry, verr := parseDayEntry(content)
	if verr != nil {
		// No retry for single-day regeneration.
		return nil, verr
	}

	if entry.Day != dayNum {
		log.Printf("warning: requested day %d, model returned day %d; keeping requested number", dayNum, entry.Day)
		entry.Day = dayNum
	}
	return entry, nil
}

// NewClient builds a generative backend client for the configured provider.
func NewClient(provider, apiKey, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case "openai", "":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
