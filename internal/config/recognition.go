package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/cuebot/pkg/log"
)

// RecognitionConfig points at the browser-automation service that performs
// the reverse image search when the keyword is spoken.
type RecognitionConfig struct {
	Enabled     bool   `env:"ENABLE_RECOGNITION" envDefault:"true"`
	BaseURL     string `env:"RECOGNITION_BASE_URL" envDefault:"http://127.0.0.1:8000"`
	Keyword     string `env:"RECOGNITION_KEYWORD" envDefault:"recognize"`
	ImagePath   string `env:"RECOGNITION_IMAGE_PATH"`
	WaitSeconds int    `env:"RECOGNITION_WAIT_SECONDS" envDefault:"10"`
}

func NewRecognitionConfig(ctx context.Context) *RecognitionConfig {
	c := &RecognitionConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Recognition config")
	}
	return c
}
