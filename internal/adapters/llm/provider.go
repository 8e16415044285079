package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel_planner/internal/domain"
)

type Config struct {
	Provider  string // ollama (default) | gemini
	OllamaURL string
	Model     string
	GeminiKey string
	Timeout   time.Duration
}

// New returns the backend named by cfg.Provider.
func New(ctx context.Context, cfg Config) (domain.LanguageModel, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "ollama":
		return NewOllama(cfg.OllamaURL, cfg.Model, cfg.Timeout), nil
	case "gemini":
		return NewGemini(ctx, cfg.GeminiKey, cfg.Model, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
