package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSnapshotFile(t *testing.T, dir, name string, snap *Snapshot) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, snap.Serialize(f))
}

func TestLoadSession(t *testing.T) {
	dir := t.TempDir()

	first := Capture(testState())
	l := testState()
	pushNil(l)
	second := Capture(l)
	writeSnapshotFile(t, dir, "first.bin", first)
	writeSnapshotFile(t, dir, "second.bin", second)

	manifest := `
snapshots = ["first.bin", "second.bin"]

[session]
name = "repro"
engine = "lua_shared"
`
	path := filepath.Join(dir, "session.toml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	s, err := LoadSessionFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "repro", s.Session.Name)
	require.Equal(t, "lua_shared", s.Session.Engine)

	// Snapshot paths resolve relative to the manifest.
	require.Equal(t, filepath.Join(dir, "first.bin"), s.Snapshots[0])
	require.Equal(t, filepath.Join(dir, "second.bin"), s.Snapshots[1])

	snaps, err := s.LoadSnapshots()
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	require.Equal(t, first.ID, snaps[0].ID)
	require.Equal(t, second.ID, snaps[1].ID)
	require.Equal(t, first.Slots, snaps[0].Slots)
}

func TestLoadSessionMissingFile(t *testing.T) {
	_, err := LoadSessionFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadSnapshotsMissingSnapshot(t *testing.T) {
	s := &Session{Snapshots: []string{filepath.Join(t.TempDir(), "gone.bin")}}
	_, err := s.LoadSnapshots()
	require.Error(t, err)
}
