package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/cuebot/pkg/log"
)

// AnalysisConfig tunes the conversation-analysis loop. Defaults keep the
// reasoning-call volume at a small constant multiple of speech segments per
// minute regardless of how fast segments arrive.
type AnalysisConfig struct {
	TickInterval    time.Duration `env:"ANALYSIS_TICK_INTERVAL" envDefault:"1500ms"`
	CoalesceDelay   time.Duration `env:"ANALYSIS_COALESCE_DELAY" envDefault:"500ms"`
	MinCallInterval time.Duration `env:"ANALYSIS_MIN_CALL_INTERVAL" envDefault:"1s"`
	CallTimeout     time.Duration `env:"ANALYSIS_CALL_TIMEOUT" envDefault:"8s"`

	MaxSuggestions int           `env:"ANALYSIS_MAX_SUGGESTIONS" envDefault:"5"`
	CacheTTL       time.Duration `env:"ANALYSIS_CACHE_TTL" envDefault:"30s"`
	CacheCapacity  int           `env:"ANALYSIS_CACHE_CAPACITY" envDefault:"10"`

	FingerprintSegments    int `env:"ANALYSIS_FINGERPRINT_SEGMENTS" envDefault:"3"`
	FingerprintSuggestions int `env:"ANALYSIS_FINGERPRINT_SUGGESTIONS" envDefault:"2"`

	PromptTokenBudget int `env:"ANALYSIS_PROMPT_TOKEN_BUDGET" envDefault:"1200"`
}

func NewAnalysisConfig(ctx context.Context) *AnalysisConfig {
	c := &AnalysisConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Analysis config")
	}
	return c
}
