package credentials

import (
	"os"
	"path/filepath"
	"strings"
)

// searchPaths is the candidate list in priority order, most local first.
var searchPaths = []string{
	"./credential.json",
	"./credentials.json",
	"./sap_login/credential.json",
	"C:/tmp/sap_login/credential.json",
	"/tmp/sap_login/credential.json",
	"C:/credential.json",
	"C:/credentials.json",
	"~/credential.json",
	"~/credentials.json",
}

// DefaultSearchPaths returns the candidate credential file locations with the
// home directory expanded.
func DefaultSearchPaths() []string {
	paths := make([]string, len(searchPaths))
	for i, p := range searchPaths {
		paths[i] = expandHome(p)
	}
	return paths
}

// expandHome replaces a leading "~/" with the user's home directory. The path
// is returned unchanged if the home directory cannot be determined.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}

	return filepath.Join(home, p[2:])
}

// FindFirst returns the first candidate for which exists reports true.
func FindFirst(candidates []string, exists func(string) bool) (string, bool) {
	for _, path := range candidates {
		if exists(path) {
			return path, true
		}
	}

	return "", false
}

// Locate resolves the credential file path.
//
// A non-empty explicitPath is returned as-is without an existence check.
// Otherwise the configured search paths are tried in order and the first
// existing one is returned. ok is false when none exists.
func (s *Store) Locate(explicitPath string) (path string, ok bool) {
	if explicitPath != "" {
		return explicitPath, true
	}

	path, ok = FindFirst(s.searchPaths, s.exists)
	if ok {
		s.logger.Info().Str("path", path).Msg("found credential file")
		return path, true
	}

	s.logger.Warn().Msg("credential file not found in any of these locations:")
	for _, candidate := range s.searchPaths {
		s.logger.Warn().Str("path", candidate).Msg("tried")
	}

	return "", false
}
