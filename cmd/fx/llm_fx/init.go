package llm_fx

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"voyager/pkg/llm"
)

var Module = fx.Provide(provideLLMClient)

// The generative backend client is constructed once and injected, never a
// package-level singleton, so orchestration can be tested with a fake.
func provideLLMClient() (llm.Client, error) {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY environment variable must be set")
	}
	return llm.NewClient(os.Getenv("LLM_PROVIDER"), apiKey, os.Getenv("LLM_MODEL"))
}
