package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient generates itineraries through Google's Gemini models. It asks
// for application/json output, but still strips markdown fences before
// parsing since free-tier models occasionally wrap the payload anyway.
type GeminiClient struct {
	generator
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &GeminiClient{
		client: client,
		model:  model,
	}
	c.generator.complete = c.completion
	return c, nil
}

func (c *GeminiClient) completion(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(defaultTemperature)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return cleanJSONResponse(content), nil
}

func (c *GeminiClient) Close() error { return c.client.Close() }

// cleanJSONResponse strips markdown code fences and any prose around the
// first JSON object in the response.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return response
	}
	return response[start : end+1]
}

// findMatchingBrace returns the index of the brace closing the object opened
// at start, skipping braces inside string literals.
func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
