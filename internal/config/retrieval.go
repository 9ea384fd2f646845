package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/docbot/pkg/log"
)

// RetrievalConfig controls chunking and search. Chunk sizes are characters,
// matching the window the splitter advances over.
type RetrievalConfig struct {
	ChunkSize        int `env:"CHUNK_SIZE" envDefault:"1000"`
	ChunkOverlap     int `env:"CHUNK_OVERLAP" envDefault:"200"`
	TopK             int `env:"TOP_K" envDefault:"5"`
	MaxContextChunks int `env:"MAX_CONTEXT_CHUNKS" envDefault:"3"`
}

func NewRetrievalConfig(ctx context.Context) *RetrievalConfig {
	c := &RetrievalConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Retrieval config")
	}
	return c
}
