package config

import "tagcloud/internal/tokenizer"

const (
	defaultMinFont     = 11
	defaultMaxFont     = 48
	defaultDefaultFont = 11
	defaultCount       = 100
	defaultStylesheet  = "tagcloud.css"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Cloud: Cloud{
			Separators:   tokenizer.DefaultSet,
			MinFont:      defaultMinFont,
			MaxFont:      defaultMaxFont,
			DefaultFont:  defaultDefaultFont,
			DefaultCount: defaultCount,
		},
		Output: Output{
			Stylesheet: defaultStylesheet,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
