// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// credential loader. It is populated by merging defaults, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Loader holds the credential discovery and mirroring settings.
	Loader Loader `envPrefix:"CREDLOADER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"CREDLOADER_LOG_"`

	// Keys are the credential keys to print after loading. Populated from
	// positional command-line arguments only.
	Keys []string
}

// Loader holds the settings passed to the credential store.
type Loader struct {
	// CredentialFile is an explicit credential file path. When empty the
	// built-in search locations are tried in order.
	// Env: CREDLOADER_CREDENTIAL_FILE
	CredentialFile string `env:"CREDENTIAL_FILE"`

	// EnvFile is the KEY=VALUE file rewritten on every successful load.
	// Env: CREDLOADER_ENV_FILE
	EnvFile string `env:"ENV_FILE"`

	// PlatformMarker is the environment variable whose presence marks a
	// managed hosting platform (e.g. "REPL_ID").
	// Env: CREDLOADER_PLATFORM_MARKER
	PlatformMarker string `env:"PLATFORM_MARKER"`

	// DatabaseURLKey is the credential key whose platform-provided value is
	// preserved in the env file on a managed platform.
	// Env: CREDLOADER_DATABASE_URL_KEY
	DatabaseURLKey string `env:"DATABASE_URL_KEY"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Env: CREDLOADER_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args (without the program name)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}

// defaultConfig returns the built-in defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Loader: Loader{
			EnvFile:        ".env",
			PlatformMarker: "REPL_ID",
			DatabaseURLKey: "DATABASE_URL",
		},
		Log: Log{
			Level: "info",
		},
	}
}
