package credentials

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// OSEnvironment is the [Environment] backed by the running process.
type OSEnvironment struct{}

// NewOSEnvironment returns the process-backed [Environment].
func NewOSEnvironment() Environment {
	return OSEnvironment{}
}

func (OSEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnvironment) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("error setting environment variable %q: %w", key, err)
	}

	return nil
}

// MapEnvironment is an in-memory [Environment]. It is not safe for
// concurrent use.
type MapEnvironment struct {
	values map[string]string
}

// NewMapEnvironment returns a MapEnvironment seeded from KEY=VALUE pairs in
// the format of os.Environ.
func NewMapEnvironment(environ ...string) *MapEnvironment {
	return &MapEnvironment{values: env.ToMap(environ)}
}

// SnapshotOSEnvironment copies the current process environment into a new
// MapEnvironment.
func SnapshotOSEnvironment() *MapEnvironment {
	return NewMapEnvironment(os.Environ()...)
}

func (m *MapEnvironment) Lookup(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

func (m *MapEnvironment) Set(key, value string) error {
	m.values[key] = value
	return nil
}

// Map returns a copy of the stored values.
func (m *MapEnvironment) Map() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
