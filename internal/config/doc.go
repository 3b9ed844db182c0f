// Package config loads, validates, and materializes tagcloud configuration.
//
// Configuration lives in a TOML file resolved from an explicit path, then
// ~/.config/tagcloud/config.toml, then a project-local tagcloud.toml, with
// repository defaults filling anything unset. Load returns a fully
// normalized and validated Config; callers never see partially expanded
// values.
package config
