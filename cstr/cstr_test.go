package cstr

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"hi",
		"Hello world!",
		"unicode: héllo 世界",
		strings.Repeat("x", 4096),
	} {
		p, err := New(s)
		require.NoError(t, err)
		got, err := GoString(p)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestNewEmbeddedNull(t *testing.T) {
	p, err := New("bad\x00string")
	require.ErrorIs(t, err, ErrEmbeddedNull)
	require.Nil(t, p)

	require.Panics(t, func() { MustNew("also\x00bad") })
}

func TestLiteral(t *testing.T) {
	p := Literal("Hello world!")
	require.Equal(t, byte('H'), *p)
	require.Equal(t, "Hello world!", MustGoString(p))
}

func TestLiteralEmpty(t *testing.T) {
	p := Literal("")
	require.Equal(t, byte(0), *p)
	require.Equal(t, "", MustGoString(p))
}

func TestGoStringInvalidEncoding(t *testing.T) {
	buf := []byte{0xff, 0xfe, 0xfd, 0}
	p := Str(&buf[0])

	_, err := GoString(p)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	require.Panics(t, func() { MustGoString(p) })
}

func TestGoStringNilHandle(t *testing.T) {
	require.Panics(t, func() { GoString(nil) })
}

func TestGoStringStopsAtNull(t *testing.T) {
	buf := []byte{'a', 'b', 0, 'c', 'd', 0}
	got, err := GoString(Str(&buf[0]))
	require.NoError(t, err)
	require.Equal(t, "ab", got)
}

func TestOwnedBufferIsACopy(t *testing.T) {
	s := "mutate me"
	p := MustNew(s)
	b := unsafe.Slice((*byte)(p), len(s))
	b[0] = 'M'
	require.Equal(t, "mutate me", s)
	require.Equal(t, "Mutate me", MustGoString(p))
}
