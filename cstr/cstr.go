// Package cstr converts between Go strings and the NUL-terminated byte
// strings the native engine traffics in.
//
// Every conversion comes in a fallible and an infallible flavor. The
// infallible ones (MustNew, MustGoString) are thin wrappers that panic on
// the fallible result; they exist for call sites where the input is already
// known to be well formed and a failure means a programming error, not bad
// data. The fallible ones are for untrusted input.
package cstr

import (
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// Str is a native string handle: a pointer to a NUL-terminated byte run.
// The handle is borrowed or owned depending on who produced it; this
// package never takes ownership of a handle it is given, and buffers it
// allocates belong to the caller (the Go GC keeps them live while the
// handle is reachable).
type Str *byte

var (
	// ErrEmbeddedNull is returned when a Go string holds an interior NUL
	// byte, which the native representation cannot encode.
	ErrEmbeddedNull = fmt.Errorf("cstr: string contains embedded null byte")

	// ErrInvalidEncoding is returned when native bytes do not form valid
	// UTF-8 text.
	ErrInvalidEncoding = fmt.Errorf("cstr: native string is not valid UTF-8")
)

// Literal builds a native handle from s by appending a terminating NUL.
// It always succeeds and performs no validation: if s holds an interior
// NUL the native side will see a truncated string. Meant for string
// constants the caller already knows are NUL-free; runtime values should
// go through New or MustNew.
func Literal(s string) Str {
	return Str(unsafe.StringData(s + "\x00"))
}

// New copies s into an owned NUL-terminated buffer and returns a handle to
// it. Returns ErrEmbeddedNull if s contains an interior NUL byte; no
// partial buffer escapes on failure.
func New(s string) (Str, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, fmt.Errorf("%w (at byte %d)", ErrEmbeddedNull, i)
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return Str(&buf[0]), nil
}

// MustNew is New for inputs the caller has already validated. It panics on
// an interior NUL instead of returning an error.
func MustNew(s string) Str {
	p, err := New(s)
	if err != nil {
		panic(err)
	}
	return p
}

// GoString reads the bytes at p up to the terminating NUL and decodes them
// as UTF-8, returning a host-owned copy. Returns ErrInvalidEncoding if the
// bytes are not valid text.
//
// The read is inherently unsafe: p must be non-nil and must point to memory
// that is live and NUL-terminated for the duration of the call. That is the
// caller's contract to uphold; a nil handle panics, anything else violated
// is undefined behavior on the native side.
func GoString(p Str) (string, error) {
	if p == nil {
		panic("cstr: GoString on nil handle")
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	b := unsafe.Slice((*byte)(p), n)
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w (%d bytes)", ErrInvalidEncoding, n)
	}
	return string(b), nil
}

// MustGoString is GoString for handles known to hold valid text, panicking
// on malformed bytes instead of returning an error.
func MustGoString(p Str) string {
	s, err := GoString(p)
	if err != nil {
		panic(err)
	}
	return s
}
