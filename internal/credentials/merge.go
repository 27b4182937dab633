package credentials

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-cred-loader/internal/envfile"
	"github.com/spf13/afero"
)

const envFilePerm os.FileMode = 0o644

// Merge mirrors creds into the env file and the environment. New keys are
// appended to the env file in lexical order.
//
// Errors are logged and otherwise ignored.
func (s *Store) Merge(creds Credentials) {
	s.merge(creds, creds.Keys())
}

// merge rewrites the env file from its current contents plus every truthy
// credential in order, then sets the same credentials in the environment.
//
// On a managed platform the database URL already present in the environment
// is kept in the env file instead of the credential value. The environment
// itself is always overwritten with the credential value.
func (s *Store) merge(creds Credentials, order []string) {
	if err := s.writeEnvFile(creds, order); err != nil {
		s.logger.Error().Err(err).Str("path", s.envFilePath).Msg("error writing credentials to env file")
	} else {
		s.logger.Info().Str("path", s.envFilePath).Msg("credentials written to env file")
	}

	failed := 0
	for _, key := range order {
		value := creds[key]
		if key == "" || !truthy(value) {
			continue
		}
		if err := s.env.Set(key, stringify(value)); err != nil {
			failed++
			s.logger.Error().Err(err).Str("key", key).Msg("error updating environment variable")
		}
	}

	if failed == 0 {
		s.logger.Info().Msg("environment variables updated with JSON credentials")
	}
}

func (s *Store) writeEnvFile(creds Credentials, order []string) error {
	merged, err := s.readEnvFile()
	if err != nil {
		return err
	}

	for _, key := range order {
		value := creds[key]
		if key == "" || !truthy(value) {
			continue
		}

		if key == s.databaseURLKey {
			if current, ok := s.managedDatabaseURL(); ok {
				s.logger.Info().Str("key", key).Msg("preserving platform database URL")
				merged.Set(key, current)
				continue
			}
		}

		merged.Set(key, stringify(value))
	}

	var buf bytes.Buffer
	if err = envfile.Render(&buf, merged, s.clock.Now()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}

	if err = afero.WriteFile(s.fs, s.envFilePath, buf.Bytes(), envFilePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}

	return nil
}

// readEnvFile returns the current env file contents, or an empty set if the
// file does not exist.
func (s *Store) readEnvFile() (*envfile.Values, error) {
	if !s.exists(s.envFilePath) {
		return envfile.New(), nil
	}

	f, err := s.fs.Open(s.envFilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	defer f.Close()

	values, err := envfile.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}

	return values, nil
}

// managedDatabaseURL returns the environment's database URL when running on
// the managed platform and that URL points at PostgreSQL.
func (s *Store) managedDatabaseURL() (string, bool) {
	if marker, ok := s.env.Lookup(s.platformMarker); !ok || marker == "" {
		return "", false
	}

	current, ok := s.env.Lookup(s.databaseURLKey)
	if !ok || !strings.Contains(current, "postgresql") {
		return "", false
	}

	return current, true
}
