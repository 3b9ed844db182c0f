// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"testing"

	"tagcloud/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated default config for tests and applies any
// provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithFontRange sets the font bounds on the test config.
func WithFontRange(minFont, maxFont, defaultFont int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cloud.MinFont = minFont
		cfg.Cloud.MaxFont = maxFont
		cfg.Cloud.DefaultFont = defaultFont
	}
}

// WithSeparators sets the separator character set on the test config.
func WithSeparators(chars string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cloud.Separators = chars
	}
}
