package lua

import "github.com/gmodkit/glua/cstr"

// State is one execution context of the embedded engine, exposing the
// read-only stack accessors this module needs. Implementations wrap the
// engine's C ABI (cgo, purego, whatever the host links against); none of
// the methods may mutate the stack.
//
// Stack indices are 1-based, 1 being the oldest-pushed value and GetTop
// the newest. A State is bound to a single engine execution context and is
// not safe for concurrent use; the host serializes access to it.
type State interface {
	// GetTop returns the index of the topmost stack slot, i.e. the number
	// of values currently on the stack.
	GetTop() int

	// Type returns the tag of the slot at idx, TypeNone if no value was
	// ever pushed there.
	Type(idx int) Type

	// TypeName returns the engine's diagnostic name for the slot's type as
	// a native string handle, valid at least until the next engine call.
	TypeName(idx int) cstr.Str

	// ToNumber returns the slot's numeric value; only meaningful when the
	// tag is TypeNumber.
	ToNumber(idx int) Number

	// ToBoolean reports the engine's boolean predicate for the slot.
	ToBoolean(idx int) bool

	// ToPointer returns the raw address backing the slot, for opaque types
	// (tables, functions, userdata, threads).
	ToPointer(idx int) uintptr

	// ToString returns the slot's string as a borrowed native handle; only
	// meaningful when the tag is TypeString. The handle stays valid while
	// the value remains on the stack.
	ToString(idx int) cstr.Str
}
