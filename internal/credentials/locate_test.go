package credentials

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── FindFirst ─────────────────────────────────────────────────────────────────

func TestFindFirst_ReturnsEarliestExisting(t *testing.T) {
	existing := map[string]bool{"c": true, "b": true}
	exists := func(p string) bool { return existing[p] }

	got, ok := FindFirst([]string{"a", "b", "c"}, exists)
	require.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestFindFirst_NoneExist(t *testing.T) {
	got, ok := FindFirst([]string{"a", "b"}, func(string) bool { return false })
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestFindFirst_EmptyCandidates(t *testing.T) {
	_, ok := FindFirst(nil, func(string) bool { return true })
	assert.False(t, ok)
}

// TestFindFirst_StopsAtFirstMatch verifies that later candidates are not
// probed once a match is found.
func TestFindFirst_StopsAtFirstMatch(t *testing.T) {
	var probed []string
	exists := func(p string) bool {
		probed = append(probed, p)
		return p == "a"
	}

	_, ok := FindFirst([]string{"a", "b", "c"}, exists)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, probed)
}

// ── DefaultSearchPaths ────────────────────────────────────────────────────────

func TestDefaultSearchPaths_OrderAndHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := []string{
		"./credential.json",
		"./credentials.json",
		"./sap_login/credential.json",
		"C:/tmp/sap_login/credential.json",
		"/tmp/sap_login/credential.json",
		"C:/credential.json",
		"C:/credentials.json",
		filepath.Join(home, "credential.json"),
		filepath.Join(home, "credentials.json"),
	}

	assert.Equal(t, want, DefaultSearchPaths())
}

func TestExpandHome_LeavesOtherPathsAlone(t *testing.T) {
	assert.Equal(t, "./credential.json", expandHome("./credential.json"))
	assert.Equal(t, "/tmp/~/x", expandHome("/tmp/~/x"))
}

// ── Locate ────────────────────────────────────────────────────────────────────

// TestLocate_ExplicitPathNotChecked verifies that an explicit path is
// returned even if it does not exist.
func TestLocate_ExplicitPathNotChecked(t *testing.T) {
	s, _, _ := newTestStore(t)

	got, ok := s.Locate("/does/not/exist.json")
	require.True(t, ok)
	assert.Equal(t, "/does/not/exist.json", got)
}

func TestLocate_PicksHighestPriority(t *testing.T) {
	s, fs, _ := newTestStore(t)
	writeFile(t, fs, "/tmp/sap_login/credential.json", `{}`)
	writeFile(t, fs, "./sap_login/credential.json", `{}`)
	writeFile(t, fs, "C:/credentials.json", `{}`)

	got, ok := s.Locate("")
	require.True(t, ok)
	assert.Equal(t, "./sap_login/credential.json", got)
}

func TestLocate_LocalBeatsAlternateName(t *testing.T) {
	s, fs, _ := newTestStore(t)
	writeFile(t, fs, "./credentials.json", `{}`)
	writeFile(t, fs, "./credential.json", `{}`)

	got, ok := s.Locate("")
	require.True(t, ok)
	assert.Equal(t, "./credential.json", got)
}

func TestLocate_NoneFound(t *testing.T) {
	s, _, _ := newTestStore(t)

	got, ok := s.Locate("")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestLocate_CustomSearchPaths(t *testing.T) {
	s, fs, _ := newTestStore(t, WithSearchPaths([]string{"/etc/app/creds.json", "/opt/creds.json"}))
	writeFile(t, fs, "/opt/creds.json", `{}`)

	got, ok := s.Locate("")
	require.True(t, ok)
	assert.Equal(t, "/opt/creds.json", got)
}
