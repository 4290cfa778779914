package radixt

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Key is a convenience byte-string builder for Map and Set keys. Every
// Map/Set method also accepts a plain []byte, so Key is never required —
// it exists to make it easy to derive a good, order-preserving byte key
// from a typed value.
//
// Integer encoding policy
// -----------------------
// Every integer constructor produces an 8-byte big-endian representation
// and adds an offset of 1<<63 before encoding, so that lexicographic
// byte comparison of the resulting Keys matches numeric ordering of the
// original values regardless of signedness or source width:
// KeyFromInt32(x) and KeyFromInt64(x) produce identical Keys for the
// same numeric x, and negative values sort before zero and positive
// ones. The offset addition wraps for unsigned values of 1<<63 and
// above (KeyFromUint64, and KeyFromUint where uint is 64 bits wide), so
// those values sort before zero; order is preserved only below 1<<63.
type Key []byte

// KeyFromBytes returns a copy of b as a Key. A nil b yields an empty
// (zero-length) Key, not nil.
func KeyFromBytes(b []byte) Key {
	if b == nil {
		return []byte{}
	}
	kb := make([]byte, len(b))
	copy(kb, b)
	return Key(kb)
}

// KeyFromString returns a Key produced from s after normalizing it to
// Unicode NFC. The resulting Key holds the UTF-8 encoding of the
// normalized string.
func KeyFromString(s string) Key {
	return KeyFromBytes([]byte(norm.NFC.String(s)))
}

const keyOffset = uint64(1) << 63

type keySignedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type keyUnsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// keyFromOffsetUint64 is the single encoding path every integer
// constructor below funnels through: shift by keyOffset, write
// big-endian, copy into a Key.
func keyFromOffsetUint64(u uint64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u+keyOffset)
	return KeyFromBytes(b[:])
}

func keyFromSigned[T keySignedInt](i T) Key {
	return keyFromOffsetUint64(uint64(int64(i)))
}

func keyFromUnsigned[T keyUnsignedInt](u T) Key {
	return keyFromOffsetUint64(uint64(u))
}

// KeyFromInt converts i to an order-preserving 8-byte Key.
func KeyFromInt(i int) Key { return keyFromSigned(i) }

// KeyFromInt64 converts i to an order-preserving 8-byte Key.
func KeyFromInt64(i int64) Key { return keyFromSigned(i) }

// KeyFromInt32 converts i to an order-preserving 8-byte Key.
func KeyFromInt32(i int32) Key { return keyFromSigned(i) }

// KeyFromInt16 converts i to an order-preserving 8-byte Key.
func KeyFromInt16(i int16) Key { return keyFromSigned(i) }

// KeyFromInt8 converts i to an order-preserving 8-byte Key.
func KeyFromInt8(i int8) Key { return keyFromSigned(i) }

// KeyFromUint converts u to an order-preserving 8-byte Key.
func KeyFromUint(u uint) Key { return keyFromUnsigned(u) }

// KeyFromUint64 converts u to an order-preserving 8-byte Key.
func KeyFromUint64(u uint64) Key { return keyFromUnsigned(u) }

// KeyFromUint32 converts u to an order-preserving 8-byte Key.
func KeyFromUint32(u uint32) Key { return keyFromUnsigned(u) }

// KeyFromUint16 converts u to an order-preserving 8-byte Key.
func KeyFromUint16(u uint16) Key { return keyFromUnsigned(u) }

// KeyFromUint8 converts u to an order-preserving 8-byte Key.
func KeyFromUint8(u uint8) Key { return keyFromUnsigned(u) }

// KeyFromByte is an alias for KeyFromUint8.
func KeyFromByte(b byte) Key { return keyFromUnsigned(b) }

// KeyFromRune converts r to its UTF-8 encoding as a Key.
func KeyFromRune(r rune) Key {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return KeyFromBytes(buf[:n])
}

// Bytes returns a copy of k as a plain byte slice.
func (k Key) Bytes() []byte {
	if k == nil {
		return nil
	}
	b := make([]byte, len(k))
	copy(b, k)
	return b
}

// Clone returns an independent copy of k. If k is nil, Clone returns nil.
func (k Key) Clone() Key {
	if k == nil {
		return nil
	}
	kb := make([]byte, len(k))
	copy(kb, k)
	return Key(kb)
}

// String renders k as uppercase hex byte pairs, separated by commas and
// surrounded by brackets, e.g. "[01,AB,00]".
func (k Key) String() string {
	if len(k) == 0 {
		return "[]"
	}
	pairs := make([]string, len(k))
	for i, b := range k {
		pairs[i] = strings.ToUpper(hex.EncodeToString([]byte{b}))
	}
	return "[" + strings.Join(pairs, ",") + "]"
}

// Equal reports whether k and other hold the same bytes.
func (k Key) Equal(other Key) bool {
	return bytes.Equal(k, other)
}

// LessThan reports whether k sorts before other in raw byte
// lexicographic order — the same order every Map/Set view uses.
func (k Key) LessThan(other Key) bool {
	return bytes.Compare(k, other) < 0
}

// IsEmpty reports whether k is empty or nil.
func (k Key) IsEmpty() bool { return len(k) == 0 }
