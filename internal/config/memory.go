package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/docbot/pkg/log"
)

type MemoryConfig struct {
	MaxTurns int `env:"MAX_MEMORY_TURNS" envDefault:"5"`
}

func NewMemoryConfig(ctx context.Context) *MemoryConfig {
	c := &MemoryConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Memory config")
	}
	return c
}
