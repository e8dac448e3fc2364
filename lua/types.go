// Package lua declares the contract this module consumes from a native
// Lua-style engine: the scalar types crossing the boundary, the closed
// type-tag enumeration, the read-only stack accessor surface, and the
// registration-table shape. It contains no engine logic of its own; the
// embedding host supplies an implementation wrapping its actual bindings.
package lua

// Scalar types as the engine's C ABI defines them.
type (
	Number  = float64
	Integer = int64
)

// Type is the tag discriminating what a stack slot currently holds. The
// values match the engine's own enumeration, with None below Nil for
// queries past any value ever pushed.
type Type int

const (
	TypeNone Type = iota - 1
	TypeNil
	TypeBoolean
	TypeLightUserdata
	TypeNumber
	TypeString
	TypeTable
	TypeFunction
	TypeUserdata
	TypeThread
)

// String returns a Go-side name for the tag, for logs and errors. Display
// text shown to users comes from the engine's TypeName accessor instead.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeNil:
		return "nil"
	case TypeBoolean:
		return "boolean"
	case TypeLightUserdata:
		return "lightuserdata"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeTable:
		return "table"
	case TypeFunction:
		return "function"
	case TypeUserdata:
		return "userdata"
	case TypeThread:
		return "thread"
	default:
		return "unknown"
	}
}
