package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/cuebot/pkg/log"
)

type ReasonerConfig struct {
	Provider string `env:"REASONER_PROVIDER" envDefault:"openrouter"`
	Model    string `env:"REASONER_MODEL" envDefault:"openai/gpt-4o-mini"`

	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`

	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey  string `env:"OLLAMA_API_KEY"`

	CustomBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomAPIKey  string `env:"CUSTOM_OPENAI_API_KEY"`
}

func NewReasonerConfig(ctx context.Context) *ReasonerConfig {
	c := &ReasonerConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Reasoner config")
	}
	return c
}
