package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLoaderConfigs indicates invalid credential loader settings
	// (for example, an empty env file path or database URL key).
	ErrInvalidLoaderConfigs = errors.New("invalid loader configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
