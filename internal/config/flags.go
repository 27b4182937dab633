package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses command-line flags from args (without the program name).
// Remaining positional arguments become [StructuredConfig.Keys].
//
// Flags:
//
//	-c/-credentials credential file path (skips discovery)
//	-env-file env file path to rewrite
//	-platform-marker managed platform environment variable
//	-database-url-key key protected on a managed platform
//	-log-level log level (debug, info, warn, error)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var credentialFile string
	var envFile string
	var platformMarker string
	var databaseURLKey string
	var logLevel string

	fs := flag.NewFlagSet("credloader", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&credentialFile, "c", "", "Credential file path")
	fs.StringVar(&credentialFile, "credentials", "", "Credential file path (alias)")
	fs.StringVar(&envFile, "env-file", "", "Env file to rewrite")
	fs.StringVar(&platformMarker, "platform-marker", "", "Managed platform marker variable")
	fs.StringVar(&databaseURLKey, "database-url-key", "", "Database URL key preserved on a managed platform")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Loader: Loader{
			CredentialFile: credentialFile,
			EnvFile:        envFile,
			PlatformMarker: platformMarker,
			DatabaseURLKey: databaseURLKey,
		},
		Log: Log{
			Level: logLevel,
		},
		Keys: fs.Args(),
	}, nil
}
