package lua

import "github.com/gmodkit/glua/cstr"

// CFunc is a function callable from the engine. It receives the calling
// State and returns how many values it left on the stack.
type CFunc func(State) int32

// Reg is one row of an engine registration table: a native-encoded name
// paired with the function to register under it. The zero Reg is the
// sentinel terminating a table.
type Reg struct {
	Name cstr.Str
	Func CFunc
}

// RegEntry names a function for NewRegistry. Names must be NUL-free.
type RegEntry struct {
	Name string
	Func CFunc
}

// NewRegistry assembles a registration table from entries, preserving
// their order and appending the NUL sentinel row the engine's register
// call scans for. The returned slice therefore holds len(entries)+1 rows.
func NewRegistry(entries ...RegEntry) []Reg {
	regs := make([]Reg, 0, len(entries)+1)
	for _, e := range entries {
		regs = append(regs, Reg{Name: cstr.Literal(e.Name), Func: e.Func})
	}
	return append(regs, Reg{})
}
