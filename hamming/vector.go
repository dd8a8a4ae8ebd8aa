package hamming

import (
	"encoding/binary"
	"math/bits"
	"strings"
)

// wordBits is the capacity of one backing word.
const wordBits = 64

// Vector is a fixed-length bit vector packed into 64-bit words.
// Equality, hashing, and distance all read the bit contents, never the
// identity of the backing storage.
//
// Invariant: bits beyond Len() in the last word are always zero, so
// packed representations of equal vectors are byte-identical.
//
// Assignment copies the slice header, not the bits: two Vectors may
// share storage after v2 := v1. Use Clone before mutating when the
// original must survive.
type Vector struct {
	words []uint64
	bits  int
}

// NewVector returns an all-zero vector of the given length.
// Lengths <= 0 yield the empty vector.
func NewVector(bitLen int) Vector {
	if bitLen <= 0 {
		return Vector{}
	}

	return Vector{
		words: make([]uint64, (bitLen+wordBits-1)/wordBits),
		bits:  bitLen,
	}
}

// VectorFromBools packs a bool slice, index 0 first.
func VectorFromBools(bs []bool) Vector {
	v := NewVector(len(bs))
	for i, b := range bs {
		if b {
			v.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}

	return v
}

// ParseVector parses a compact literal such as "0110", index 0 first.
// Returns ErrBadVector for an empty string or any rune outside {0, 1}.
func ParseVector(s string) (Vector, error) {
	if len(s) == 0 {
		return Vector{}, ErrBadVector
	}

	v := NewVector(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v.words[i/wordBits] |= 1 << (i % wordBits)
		case '0':
			// already zero
		default:
			return Vector{}, ErrBadVector
		}
	}

	return v, nil
}

// Len returns the number of bits.
func (v Vector) Len() int { return v.bits }

// Bit reports whether bit i is set. Panics when i is outside [0, Len()),
// matching slice-index discipline for programmer errors.
func (v Vector) Bit(i int) bool {
	if i < 0 || i >= v.bits {
		panic("hamming: bit index out of range")
	}

	return v.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// Flip inverts bit i in place. Panics when i is outside [0, Len()).
func (v *Vector) Flip(i int) {
	if i < 0 || i >= v.bits {
		panic("hamming: bit index out of range")
	}
	v.words[i/wordBits] ^= 1 << (i % wordBits)
}

// Set forces bit i to the given value in place.
// Panics when i is outside [0, Len()).
func (v *Vector) Set(i int, bit bool) {
	if i < 0 || i >= v.bits {
		panic("hamming: bit index out of range")
	}
	if bit {
		v.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		v.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// Clone returns a deep copy with private storage.
func (v Vector) Clone() Vector {
	out := Vector{
		words: make([]uint64, len(v.words)),
		bits:  v.bits,
	}
	copy(out.words, v.words)

	return out
}

// Equal reports structural equality: same length, same bits.
func (v Vector) Equal(u Vector) bool {
	if v.bits != u.bits {
		return false
	}
	for i, w := range v.words {
		if w != u.words[i] {
			return false
		}
	}

	return true
}

// OnesCount returns the number of set bits.
func (v Vector) OnesCount() int {
	n := 0
	for _, w := range v.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// String renders the compact literal form, index 0 first: "0110".
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.bits)
	for i := 0; i < v.bits; i++ {
		if v.words[i/wordBits]&(1<<(i%wordBits)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// appendKey appends the packed little-endian words to dst and returns
// the extended slice. Thanks to the trailing-zero invariant the result
// is a canonical map key for the bit contents.
func (v Vector) appendKey(dst []byte) []byte {
	for _, w := range v.words {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}

	return dst
}

// copyFrom overwrites v's bits with u's, reusing v's storage when the
// lengths already match.
func (v *Vector) copyFrom(u Vector) {
	if len(v.words) != len(u.words) {
		v.words = make([]uint64, len(u.words))
	}
	copy(v.words, u.words)
	v.bits = u.bits
}

// Distance returns the Hamming distance between a and b: the number of
// bit positions at which they differ.
//
// Returns ErrLengthMismatch when the lengths differ.
//
// Complexity: O(L/64).
func Distance(a, b Vector) (int, error) {
	if a.bits != b.bits {
		return 0, ErrLengthMismatch
	}

	d := 0
	for i, w := range a.words {
		d += bits.OnesCount64(w ^ b.words[i])
	}

	return d, nil
}
