// Package dump renders the value stack of an engine State into a
// human-readable form, for debugging embedded scripts. The core entry
// point is Stack; Capture produces a structured Snapshot that can be
// serialized and inspected offline.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/gmodkit/glua/cstr"
	"github.com/gmodkit/glua/lua"
)

// Stack returns the current state of l's value stack without affecting it,
// one line per slot in ascending index order:
//
//	[1] 'number' = 5000
//	[2] 'string' = hello
//	[3] 'table' = 0x213542
//	[4] 'function' = 0x138252
//	[5] 'nil' = nil
//
// An empty stack yields an empty string. The only error is a formatting
// failure while building the output.
func Stack(l lua.State) (string, error) {
	var b strings.Builder
	if err := WriteStack(&b, l); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteStack is Stack writing to w instead of returning a string.
func WriteStack(w io.Writer, l lua.State) error {
	top := l.GetTop()
	for i := 1; i <= top; i++ {
		name := cstr.MustGoString(l.TypeName(i))
		if _, err := fmt.Fprintf(w, "[%d] '%s' = %s\n", i, name, slotValue(l, i)); err != nil {
			return err
		}
	}
	return nil
}

// slotValue renders the value at idx, dispatching on the slot's type tag.
// The tag is authoritative; the engine-reported type name is display text
// only and never consulted here.
func slotValue(l lua.State, idx int) string {
	switch l.Type(idx) {
	case lua.TypeNumber:
		return fmt.Sprintf("%v", l.ToNumber(idx))
	case lua.TypeString:
		return cstr.MustGoString(l.ToString(idx))
	case lua.TypeBoolean:
		if l.ToBoolean(idx) {
			return "true"
		}
		return "false"
	case lua.TypeNil:
		return "nil"
	case lua.TypeNone:
		return "none"
	default:
		// Tables, functions, userdata, threads, and anything the engine
		// grows later: show the raw address.
		return fmt.Sprintf("0x%x", l.ToPointer(idx))
	}
}
