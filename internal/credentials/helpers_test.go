package credentials

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-cred-loader/internal/clock"
	"github.com/MKhiriev/go-cred-loader/internal/envfile"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

const testEnvFile = ".env"

// newTestStore builds a Store over an in-memory filesystem and environment.
// opts are applied after the test defaults.
func newTestStore(t *testing.T, opts ...Option) (*Store, afero.Fs, *MapEnvironment) {
	t.Helper()

	fs := afero.NewMemMapFs()
	env := NewMapEnvironment()

	base := []Option{
		WithFs(fs),
		WithEnvironment(env),
		WithClock(clock.Fixed(testNow)),
		WithEnvFilePath(testEnvFile),
		WithSearchPaths(searchPaths),
	}

	return NewStore(append(base, opts...)...), fs, env
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

// readEnvFile parses the env file written to fs.
func readEnvFile(t *testing.T, fs afero.Fs) *envfile.Values {
	t.Helper()
	f, err := fs.Open(testEnvFile)
	require.NoError(t, err)
	defer f.Close()

	values, err := envfile.Parse(f)
	require.NoError(t, err)
	return values
}

func envFileExists(t *testing.T, fs afero.Fs) bool {
	t.Helper()
	ok, err := afero.Exists(fs, testEnvFile)
	require.NoError(t, err)
	return ok
}
