package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCompletion returns canned responses in order and records the
// prompts it was called with.
func scriptedCompletion(responses ...any) (*[]string, completionFn) {
	prompts := &[]string{}
	i := 0
	return prompts, func(ctx context.Context, prompt string) (string, error) {
		*prompts = append(*prompts, prompt)
		if i >= len(responses) {
			return "", errors.New("unexpected extra completion call")
		}
		r := responses[i]
		i++
		if err, ok := r.(error); ok {
			return "", err
		}
		return r.(string), nil
	}
}

func TestGenerateItinerarySuccess(t *testing.T) {
	prompts, complete := scriptedCompletion(
		`{"days":[{"day":1,"summary":"Louvre"},{"day":2,"summary":"Montmartre"},{"day":3,"summary":"Versailles"}]}`,
	)
	g := &generator{complete: complete}

	it, err := g.GenerateItinerary(context.Background(), "Paris", 3, "vegetarian")
	require.NoError(t, err)
	require.Len(t, it.Days, 3)
	assert.Equal(t, DayEntry{Day: 1, Summary: "Louvre"}, it.Days[0])
	assert.Equal(t, DayEntry{Day: 3, Summary: "Versailles"}, it.Days[2])

	require.Len(t, *prompts, 1)
	assert.Contains(t, (*prompts)[0], "Plan a 3-day trip to Paris.")
	assert.Contains(t, (*prompts)[0], "User preferences: vegetarian.")
}

func TestGenerateItineraryOmitsBlankPreferences(t *testing.T) {
	prompts, complete := scriptedCompletion(`{"days":[{"day":1,"summary":"x"}]}`)
	g := &generator{complete: complete}

	_, err := g.GenerateItinerary(context.Background(), "Rome", 1, "   ")
	require.NoError(t, err)
	assert.NotContains(t, (*prompts)[0], "preferences")
}

func TestGenerateItineraryRetriesOnceOnParseFailure(t *testing.T) {
	prompts, complete := scriptedCompletion(
		"Sure! Here is your itinerary: day one...",
		`{"days":[{"day":1,"summary":"Beach"},{"day":2,"summary":"Old town"}]}`,
	)
	g := &generator{complete: complete}

	it, err := g.GenerateItinerary(context.Background(), "Lisbon", 2, "")
	require.NoError(t, err)
	require.Len(t, it.Days, 2)

	require.Len(t, *prompts, 2)
	assert.Contains(t, (*prompts)[1], "CRITICAL: Respond with ONLY valid JSON")
	assert.Contains(t, (*prompts)[1], "Preferences: none.")
}

func TestGenerateItineraryFailsWhenRetryAlsoMalformed(t *testing.T) {
	tests := []struct {
		name  string
		retry string
		kind  FailureKind
	}{
		{"retry not json", "still not json", KindParse},
		{"retry missing days list", `{"itinerary":[]}`, KindSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts, complete := scriptedCompletion("not json", tt.retry)
			g := &generator{complete: complete}

			_, err := g.GenerateItinerary(context.Background(), "Oslo", 2, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrGenerationFailed))

			var gerr *Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tt.kind, gerr.Kind)
			assert.Len(t, *prompts, 2)
		})
	}
}

func TestGenerateItinerarySchemaFailureDoesNotRetry(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing days key", `{"plan":"nice trip"}`},
		{"day entry missing summary", `{"days":[{"day":1,"summary":"ok"},{"day":2}]}`},
		{"day entry missing day", `{"days":[{"summary":"ok"}]}`},
		{"top level array", `[{"day":1,"summary":"ok"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts, complete := scriptedCompletion(tt.response)
			g := &generator{complete: complete}

			_, err := g.GenerateItinerary(context.Background(), "Kyoto", 2, "")
			require.Error(t, err)

			var gerr *Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, KindSchema, gerr.Kind)
			// A single malformed day fails the batch without a retry.
			assert.Len(t, *prompts, 1)
		})
	}
}

func TestGenerateItineraryCountMismatchIsNotFatal(t *testing.T) {
	_, complete := scriptedCompletion(`{"days":[{"day":1,"summary":"a"},{"day":2,"summary":"b"}]}`)
	g := &generator{complete: complete}

	it, err := g.GenerateItinerary(context.Background(), "Berlin", 5, "")
	require.NoError(t, err)
	// Passed through as received, no padding or truncation.
	assert.Len(t, it.Days, 2)
}

func TestGenerateItineraryTransportError(t *testing.T) {
	_, complete := scriptedCompletion(errors.New("429 rate limited"))
	g := &generator{complete: complete}

	_, err := g.GenerateItinerary(context.Background(), "Paris", 3, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindTransport, gerr.Kind)
	// The raw provider error stays wrapped inside.
	assert.Contains(t, gerr.Error(), "429")
}

func TestRegenerateDaySuccess(t *testing.T) {
	prompts, complete := scriptedCompletion(`{"day":2,"summary":"Market morning, museum afternoon"}`)
	g := &generator{complete: complete}

	entry, err := g.RegenerateDay(context.Background(), "Paris", 2, 3, "vegetarian")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Day)
	assert.Equal(t, "Market morning, museum afternoon", entry.Summary)

	require.Len(t, *prompts, 1)
	assert.Contains(t, (*prompts)[0], "Regenerate the itinerary for Day 2 of a 3-day trip to Paris.")
}

func TestRegenerateDayOverwritesMismatchedDayNumber(t *testing.T) {
	_, complete := scriptedCompletion(`{"day":5,"summary":"X"}`)
	g := &generator{complete: complete}

	entry, err := g.RegenerateDay(context.Background(), "Paris", 2, 3, "")
	require.NoError(t, err)
	// The requested value always wins over the model-reported one.
	assert.Equal(t, 2, entry.Day)
	assert.Equal(t, "X", entry.Summary)
}

func TestRegenerateDayDoesNotRetry(t *testing.T) {
	tests := []struct {
		name     string
		response any
		kind     FailureKind
	}{
		{"not json", "day two: go to the beach", KindParse},
		{"missing summary", `{"day":2}`, KindSchema},
		{"missing day", `{"summary":"x"}`, KindSchema},
		{"transport error", errors.New("timeout"), KindTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts, complete := scriptedCompletion(tt.response)
			g := &generator{complete: complete}

			_, err := g.RegenerateDay(context.Background(), "Paris", 2, 3, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrGenerationFailed))

			var gerr *Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tt.kind, gerr.Kind)
			assert.Len(t, *prompts, 1)
		})
	}
}

func TestNewClientRejectsUnknownProvider(t *testing.T) {
	_, err := NewClient("anthropic", "key", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported llm provider")
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"code fences",
			"```json\n{\"day\":1,\"summary\":\"x\"}\n```",
			`{"day":1,"summary":"x"}`,
		},
		{
			"leading prose",
			`Here is the itinerary: {"days":[{"day":1,"summary":"x"}]}`,
			`{"days":[{"day":1,"summary":"x"}]}`,
		},
		{
			"braces inside strings",
			`{"day":1,"summary":"visit the {old} town"} trailing`,
			`{"day":1,"summary":"visit the {old} town"}`,
		},
		{
			"already clean",
			`{"day":1,"summary":"x"}`,
			`{"day":1,"summary":"x"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.in))
		})
	}
}
