package dump

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// Session is a TOML manifest grouping the snapshot files captured during
// one debugging run of an embedded module:
//
//	snapshots = ["before.bin", "after.bin"]
//
//	[session]
//	name = "gm_construct repro"
//	engine = "lua_shared"
type Session struct {
	Session   SessionDetails `toml:""`
	Snapshots []string       `toml:",omitempty"`
}

type SessionDetails struct {
	Name   string `toml:",omitempty"`
	Engine string `toml:",omitempty"`
}

func parseSession(f io.Reader) (*Session, error) {
	var out Session
	_, err := toml.NewDecoder(f).Decode(&out)
	return &out, err
}

// LoadSessionFromFile reads a session manifest, resolving snapshot paths
// relative to the manifest's own directory.
func LoadSessionFromFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := parseSession(f)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	for i, snap := range s.Snapshots {
		s.Snapshots[i] = filepath.Clean(filepath.Join(dir, snap))
	}
	return s, nil
}

// LoadSnapshots opens and decodes every snapshot file the session names,
// in manifest order.
func (s *Session) LoadSnapshots() ([]*Snapshot, error) {
	snaps := make([]*Snapshot, 0, len(s.Snapshots))
	for _, path := range s.Snapshots {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		snap := &Snapshot{}
		err = snap.Deserialize(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Str("id", snap.ID).Int("slots", len(snap.Slots)).Msg("loaded snapshot")
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
