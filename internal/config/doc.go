// Package config loads and validates zmatch configuration.
//
// Configuration lives in a TOML file (default ~/.config/zmatch/config.toml,
// with a project-local zmatch.toml fallback). Load applies defaults, expands
// ~ in path fields, and validates the result, so the rest of the program can
// treat a *Config as always usable.
package config
