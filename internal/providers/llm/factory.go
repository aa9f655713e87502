package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/cuebot/internal/config"
	"github.com/sandevgo/cuebot/internal/core"
	"github.com/sandevgo/cuebot/pkg/log"
)

// NewReasoner creates the appropriate reasoning provider based on
// configuration.
func NewReasoner(ctx context.Context, cfg *config.ReasonerConfig) (core.Reasoner, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting reasoning provider")

	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.Model), nil
	case "openrouter":
		return NewOpenRouter(cfg.OpenRouterAPIKey, cfg.Model), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.Model), nil
	case "custom":
		return NewCustomOpenAI(cfg.CustomBaseURL, cfg.CustomAPIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown reasoner provider: %s", cfg.Provider)
	}
}
