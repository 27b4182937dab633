package credentials

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// Reason classifies the outcome of [Store.Load].
type Reason int

const (
	// ReasonNone means the file was loaded.
	ReasonNone Reason = iota
	// ReasonNotFound means no candidate path exists.
	ReasonNotFound
	// ReasonMissing means the resolved path does not exist.
	ReasonMissing
	// ReasonParse means the file is not a valid JSON object.
	ReasonParse
	// ReasonIO means the file could not be read.
	ReasonIO
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNotFound:
		return "not_found"
	case ReasonMissing:
		return "missing"
	case ReasonParse:
		return "parse"
	case ReasonIO:
		return "io"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// LoadResult carries either the loaded credentials or the failure that
// prevented loading.
type LoadResult struct {
	// Path is the resolved credential file path, empty if none was found.
	Path string
	// Credentials holds the decoded file. Nil on failure.
	Credentials Credentials
	// Err is nil on success, otherwise wraps one of ErrNotFound,
	// ErrFileMissing, ErrParse or ErrRead.
	Err error
}

// OK reports whether the credentials were loaded.
func (r LoadResult) OK() bool {
	return r.Err == nil
}

// Reason classifies r.Err.
func (r LoadResult) Reason() Reason {
	switch {
	case r.Err == nil:
		return ReasonNone
	case errors.Is(r.Err, ErrNotFound):
		return ReasonNotFound
	case errors.Is(r.Err, ErrFileMissing):
		return ReasonMissing
	case errors.Is(r.Err, ErrParse):
		return ReasonParse
	default:
		return ReasonIO
	}
}

// OrEmpty returns the loaded credentials, or an empty non-nil mapping when
// loading failed.
func (r LoadResult) OrEmpty() Credentials {
	if r.Err != nil || r.Credentials == nil {
		return Credentials{}
	}
	return r.Credentials
}

// Load resolves the credential file via [Store.Locate], decodes it and, on
// success, merges it into the env file and the environment before
// returning. An empty path triggers discovery.
//
// Load never fails loudly: every failure is logged and reported through the
// returned LoadResult. A failing merge does not affect the result.
func (s *Store) Load(path string) LoadResult {
	resolved, ok := s.Locate(path)
	if !ok {
		return LoadResult{Err: ErrNotFound}
	}

	result := LoadResult{Path: resolved}

	if !s.exists(resolved) {
		s.logger.Warn().Str("path", resolved).Msg("credential file not found")
		result.Err = fmt.Errorf("%w: %s", ErrFileMissing, resolved)
		return result
	}

	data, err := afero.ReadFile(s.fs, resolved)
	if err != nil {
		s.logger.Error().Err(err).Str("path", resolved).Msg("error loading credential file")
		result.Err = fmt.Errorf("%w %s: %w", ErrRead, resolved, err)
		return result
	}

	creds, order, err := decodeObject(data)
	if err != nil {
		s.logger.Error().Err(err).Str("path", resolved).Msg("error parsing JSON credential file")
		result.Err = fmt.Errorf("%w %s: %w", ErrParse, resolved, err)
		return result
	}

	s.logger.Info().Str("path", resolved).Int("keys", len(creds)).Msg("credentials loaded")

	s.merge(creds, order)

	result.Credentials = creds
	return result
}

// LoadCredentials is Load collapsed to a mapping: any failure yields an
// empty mapping.
func (s *Store) LoadCredentials(path string) Credentials {
	return s.Load(path).OrEmpty()
}
