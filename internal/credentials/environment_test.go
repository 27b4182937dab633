package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSEnvironment_LookupAndSet(t *testing.T) {
	t.Setenv("CREDLOADER_TEST_VAR", "before")

	env := NewOSEnvironment()

	got, ok := env.Lookup("CREDLOADER_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "before", got)

	require.NoError(t, env.Set("CREDLOADER_TEST_VAR", "after"))
	got, ok = env.Lookup("CREDLOADER_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "after", got)
}

func TestOSEnvironment_LookupUnset(t *testing.T) {
	_, ok := NewOSEnvironment().Lookup("CREDLOADER_SURELY_UNSET_VARIABLE")
	assert.False(t, ok)
}

func TestMapEnvironment_SeededFromEnviron(t *testing.T) {
	env := NewMapEnvironment("A=1", "DSN=postgresql://u:p@h/db?x=y", "EMPTY=")

	assert.Equal(t, map[string]string{
		"A":     "1",
		"DSN":   "postgresql://u:p@h/db?x=y",
		"EMPTY": "",
	}, env.Map())

	got, ok := env.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestMapEnvironment_SetAndMapCopy(t *testing.T) {
	env := NewMapEnvironment()
	require.NoError(t, env.Set("K", "v"))

	snapshot := env.Map()
	snapshot["K"] = "mutated"

	got, _ := env.Lookup("K")
	assert.Equal(t, "v", got)
}

func TestSnapshotOSEnvironment_IsDetached(t *testing.T) {
	t.Setenv("CREDLOADER_SNAPSHOT_VAR", "host")

	env := SnapshotOSEnvironment()
	got, ok := env.Lookup("CREDLOADER_SNAPSHOT_VAR")
	require.True(t, ok)
	assert.Equal(t, "host", got)

	require.NoError(t, env.Set("CREDLOADER_SNAPSHOT_VAR", "changed"))
	host, _ := NewOSEnvironment().Lookup("CREDLOADER_SNAPSHOT_VAR")
	assert.Equal(t, "host", host)
}
