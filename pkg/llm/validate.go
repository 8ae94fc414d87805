package llm

import (
	"encoding/json"
	"log"
)

// Raw shapes use pointers so that key presence can be distinguished from
// zero values: {"day": 0} and a missing "day" are different contract
// violations to the caller.
type rawDay struct {
	Day     *int    `json:"day"`
	Summary *string `json:"summary"`
}

type rawItinerary struct {
	Days *[]rawDay `json:"days"`
}

// parseItinerary enforces the full-itinerary contract: a JSON object with a
// "days" array whose every element carries both "day" and "summary". One
// malformed element fails the whole batch. A day count that differs from the
// requested count is only warned about; the result is passed through as
// received, never truncated or padded.
func parseItinerary(content string, requested int) (*Itinerary, *Error) {
	data := []byte(content)
	if !json.Valid(data) {
		return nil, &Error{Kind: KindParse, Msg: "response is not valid JSON"}
	}

	var raw rawItinerary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Kind: KindSchema, Msg: "response is not a JSON object", Err: err}
	}
	if raw.Days == nil {
		return nil, &Error{Kind: KindSchema, Msg: `response missing "days" list`}
	}

	out := &Itinerary{Days: make([]DayEntry, 0, len(*raw.Days))}
	for _, d := range *raw.Days {
		if d.Day == nil || d.Summary == nil {
			return nil, &Error{Kind: KindSchema, Msg: `day entry missing "day" or "summary"`}
		}
		out.Days = append(out.Days, DayEntry{Day: *d.Day, Summary: *d.Summary})
	}

	if len(out.Days) != requested {
		log.Printf("warning: requested %d days, model returned %d; passing result through", requested, len(out.Days))
	}
	return out, nil
}

// parseItineraryLoose is the retry-path contract: the response must parse and
// contain a "days" list, but individual entries are taken as-is. Missing
// fields decode to zero values rather than failing the batch.
func parseItineraryLoose(content string, requested int) (*Itinerary, *Error) {
	data := []byte(content)
	if !json.Valid(data) {
		return nil, &Error{Kind: KindParse, Msg: "retry response is not valid JSON"}
	}

	var out Itinerary
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &Error{Kind: KindSchema, Msg: "retry response is not a JSON object", Err: err}
	}
	if out.Days == nil {
		return nil, &Error{Kind: KindSchema, Msg: `retry response missing "days" list`}
	}

	if len(out.Days) != requested {
		log.Printf("warning: requested %d days, model returned %d; passing result through", requested, len(out.Days))
	}
	return &out, nil
}

// parseDayEntry enforces the single-day contract: a JSON object with both
// "day" and "summary". No other checks.
func parseDayEntry(content string) (*DayEntry, *Error) {
	data := []byte(content)
	if !json.Valid(data) {
		return nil, &Error{Kind: KindParse, Msg: "response is not valid JSON"}
	}

	var raw rawDay
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Kind: KindSchema, Msg: "response is not a JSON object", Err: err}
	}
	if raw.Day == nil || raw.Summary == nil {
		return nil, &Error{Kind: KindSchema, Msg: `response missing "day" or "summary"`}
	}
	return &DayEntry{Day: *raw.Day, Summary: *raw.Summary}, nil
}
