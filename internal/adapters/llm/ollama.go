// Package llm holds the language-model backends: a local Ollama server and
// the Gemini API.
package llm

import (
	"context"
	"errors"
	"time"

	"travel_planner/internal/adapters/apiclient"
)

const (
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama3:latest"
)

var ErrEmptyResponse = errors.New("llm: empty response")

type Ollama struct {
	api   *apiclient.Client
	model string
}

func NewOllama(baseURL, model string, timeout time.Duration) *Ollama {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Ollama{api: apiclient.New("ollama", baseURL, timeout, nil), model: model}
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (o *Ollama) Model() string { return o.model }

func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	var resp ollamaResponse
	if err := o.api.PostJSON(ctx, "generate", "/api/generate", ollamaRequest{Model: o.model, Prompt: prompt}, &resp); err != nil {
		return "", err
	}
	if resp.Response == "" {
		return "", ErrEmptyResponse
	}
	return resp.Response, nil
}
