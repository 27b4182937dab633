package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-cred-loader/internal/config"
	"github.com/MKhiriev/go-cred-loader/internal/credentials"
	"github.com/MKhiriev/go-cred-loader/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(os.Stderr)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("credloader", logger.DefaultLevel).Fatal().Err(err).Msg("error getting configs")
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.NewLogger("credloader", logger.DefaultLevel).Fatal().Err(err).Msg("error parsing log level")
	}

	log := logger.NewLogger("credloader", level)
	log.Debug().Any("config", cfg).Msg("received configs")

	store := newStore(cfg, log)
	run(os.Stdout, store, cfg)
}

func newStore(cfg *config.StructuredConfig, log *logger.Logger) *credentials.Store {
	return credentials.NewStore(
		credentials.WithLogger(log.WithComponent("credentials")),
		credentials.WithEnvFilePath(cfg.Loader.EnvFile),
		credentials.WithPlatformMarker(cfg.Loader.PlatformMarker),
		credentials.WithDatabaseURLKey(cfg.Loader.DatabaseURLKey),
	)
}

// run loads the credentials and prints KEY=value for every requested key.
// A failed load leaves an empty mapping, so lookups fall back to the
// environment.
func run(w io.Writer, store *credentials.Store, cfg *config.StructuredConfig) {
	creds := store.LoadCredentials(cfg.Loader.CredentialFile)

	for _, key := range cfg.Keys {
		fmt.Fprintf(w, "%s=%s\n", key, store.Get(creds, key, ""))
	}
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
