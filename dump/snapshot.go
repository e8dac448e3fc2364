package dump

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dgryski/go-farm"
	"github.com/google/uuid"
	msgpack "github.com/shamaton/msgpack/v2"

	"github.com/gmodkit/glua/cstr"
	"github.com/gmodkit/glua/lua"
)

// Slot is one stack position as observed during a capture. Value holds the
// already-rendered text, so a Snapshot stays meaningful after the engine
// state it came from is gone.
type Slot struct {
	Index    int
	Type     lua.Type
	TypeName string
	Value    string
}

// Snapshot is a materialized reading of an engine's value stack, suitable
// for serializing to disk and inspecting offline.
type Snapshot struct {
	ID    string
	Taken time.Time
	Slots []Slot
}

// Capture walks l's stack the same way Stack does and records each slot.
// The stack is only read, never mutated.
func Capture(l lua.State) *Snapshot {
	top := l.GetTop()
	s := &Snapshot{
		ID:    uuid.NewString(),
		Taken: time.Now().UTC(),
		Slots: make([]Slot, 0, top),
	}
	for i := 1; i <= top; i++ {
		s.Slots = append(s.Slots, Slot{
			Index:    i,
			Type:     l.Type(i),
			TypeName: cstr.MustGoString(l.TypeName(i)),
			Value:    slotValue(l, i),
		})
	}
	return s
}

// Render returns the snapshot in the same line-per-slot form Stack
// produces.
func (s *Snapshot) Render() string {
	var b strings.Builder
	for _, slot := range s.Slots {
		fmt.Fprintf(&b, "[%d] '%s' = %s\n", slot.Index, slot.TypeName, slot.Value)
	}
	return b.String()
}

// Serialize writes the snapshot to w as msgpack.
func (s *Snapshot) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, s)
}

// Deserialize reads a msgpack snapshot from r into s.
func (s *Snapshot) Deserialize(r io.Reader) error {
	return msgpack.UnmarshalRead(r, s)
}

// Fingerprint hashes the slot contents, ignoring ID and capture time, so
// identical stack states fingerprint identically and repeated captures can
// be deduplicated.
func (s *Snapshot) Fingerprint() (uint64, error) {
	var buf bytes.Buffer
	if err := msgpack.MarshalWrite(&buf, s.Slots); err != nil {
		return 0, err
	}
	return farm.Hash64(buf.Bytes()), nil
}
