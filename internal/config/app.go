package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/cuebot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"CUEBOT_RUNTIME_PATH" envDefault:".cuebot"`

	// Surfaces for consumers of the live transcript and suggestions
	EnableHTTP bool   `env:"ENABLE_HTTP" envDefault:"true"`
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:"127.0.0.1:8787"`
	EnableMCP  bool   `env:"ENABLE_MCP" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "cuebot.db")
}
