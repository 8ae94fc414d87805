package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIModel = openai.GPT4oMini
	// Balanced between creativity and consistency.
	defaultTemperature = 0.7
)

// OpenAIClient generates itineraries through the OpenAI chat-completion API.
type OpenAIClient struct {
	generator
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = defaultOpenAIModel
	}
	c := &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
	c.generator.complete = c.completion
	return c
}

func (c *OpenAIClient) completion(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: defaultTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
