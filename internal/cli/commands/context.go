// Package commands implements the clrs subcommands.
package commands

import (
	"context"

	"github.com/katalvlaran/clrs/internal/cli/config"
	"github.com/katalvlaran/clrs/internal/cli/output"
)

type configKey struct{}

type rendererKey struct{}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom returns the configuration stored in ctx, or the defaults.
func ConfigFrom(ctx context.Context) *config.Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return c
		}
	}
	return config.Default()
}

// WithRenderer stores r in ctx.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// rendererFrom returns the renderer stored in ctx, or fallback.
func rendererFrom(ctx context.Context, fallback *output.Renderer) *output.Renderer {
	if ctx != nil {
		if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
			return r
		}
	}
	return fallback
}
