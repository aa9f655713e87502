package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/cuebot/pkg/log"
)

type STTConfig struct {
	URL            string        `env:"STT_WS_URL" envDefault:"ws://127.0.0.1:8765/stream"`
	ReconnectDelay time.Duration `env:"STT_RECONNECT_DELAY" envDefault:"2s"`
}

func NewSTTConfig(ctx context.Context) *STTConfig {
	c := &STTConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse STT config")
	}
	return c
}
