// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"github.com/MKhiriev/go-cred-loader/internal/clock"
	"github.com/MKhiriev/go-cred-loader/internal/logger"
	"github.com/spf13/afero"
)

// Defaults applied by [NewStore].
const (
	// DefaultEnvFilePath is the env file rewritten on every successful load,
	// relative to the working directory.
	DefaultEnvFilePath = ".env"
	// DefaultPlatformMarker is the variable whose presence marks a managed
	// hosting platform (Replit).
	DefaultPlatformMarker = "REPL_ID"
	// DefaultDatabaseURLKey is the key protected from being clobbered by a
	// stale credential file on a managed platform.
	DefaultDatabaseURLKey = "DATABASE_URL"
)

// Store locates, loads and mirrors credential files.
//
// A Store holds no loaded state; every [Store.Load] reads the file anew.
// It is not safe for concurrent use because it mutates the env file and the
// [Environment] without locking.
type Store struct {
	fs             afero.Fs
	env            Environment
	clock          clock.Clock
	logger         *logger.Logger
	envFilePath    string
	searchPaths    []string
	platformMarker string
	databaseURLKey string
}

// Option configures a [Store].
type Option func(*Store)

// WithFs sets the filesystem used for lookups, reads and the env file.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) { s.fs = fs }
}

// WithEnvironment sets the environment credentials are mirrored into.
func WithEnvironment(env Environment) Option {
	return func(s *Store) { s.env = env }
}

// WithClock sets the clock used for the env file timestamp.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithEnvFilePath sets the env file location.
func WithEnvFilePath(path string) Option {
	return func(s *Store) { s.envFilePath = path }
}

// WithSearchPaths replaces the candidate list used by [Store.Locate].
func WithSearchPaths(paths []string) Option {
	return func(s *Store) { s.searchPaths = paths }
}

// WithPlatformMarker sets the environment variable that marks a managed
// hosting platform.
func WithPlatformMarker(name string) Option {
	return func(s *Store) { s.platformMarker = name }
}

// WithDatabaseURLKey sets the key subject to the managed-platform override.
func WithDatabaseURLKey(key string) Option {
	return func(s *Store) { s.databaseURLKey = key }
}

// NewStore builds a Store bound to the host filesystem, the process
// environment and the system clock unless overridden by opts.
func NewStore(opts ...Option) *Store {
	s := &Store{
		fs:             afero.NewOsFs(),
		env:            NewOSEnvironment(),
		clock:          clock.System{},
		logger:         logger.Nop(),
		envFilePath:    DefaultEnvFilePath,
		searchPaths:    DefaultSearchPaths(),
		platformMarker: DefaultPlatformMarker,
		databaseURLKey: DefaultDatabaseURLKey,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// exists reports whether path exists. Stat failures other than "not exist"
// count as absent.
func (s *Store) exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}
