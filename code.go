package huffcodec

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeBits is the longest possible Code, in bits.  A maximally skewed tree
// over the full alphabet has a deepest leaf at depth AlphabetSize-1.
const MaxCodeBits = AlphabetSize - 1

const maxCodeBytes = (MaxCodeBits + 7) / 8

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to one of its leaves.  Bit 0 is the step taken from the root; a 0 bit
// means "left" and a 1 bit means "right".
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i lives at
	// Bits[i/8], in bit position i%8.
	Bits [maxCodeBytes]byte
}

// MakeCode is a convenience function that constructs a Code from a sequence
// of 0 and 1 bits, first bit first.
func MakeCode(bits ...uint8) Code {
	var hc Code
	for _, bit := range bits {
		assert.Assertf(hc.Push(bit), "code longer than %d bits", MaxCodeBits)
	}
	return hc
}

// Len returns the number of valid bits.
func (hc *Code) Len() int {
	return int(hc.Size)
}

// IsFull returns true iff no more bits can be pushed.
func (hc *Code) IsFull() bool {
	return int(hc.Size) == MaxCodeBits
}

// Bit returns the i'th bit.
func (hc *Code) Bit(i int) uint8 {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return (hc.Bits[i/8] >> (i % 8)) & 1
}

// Push appends a bit.  It returns false if the Code is already MaxCodeBits
// long.
func (hc *Code) Push(bit uint8) bool {
	if hc.IsFull() {
		return false
	}
	i := int(hc.Size)
	hc.Bits[i/8] |= (bit & 1) << (i % 8)
	hc.Size++
	return true
}

// Pop removes and returns the last bit.  It returns false if the Code is
// empty.
func (hc *Code) Pop() (uint8, bool) {
	if hc.Size == 0 {
		return 0, false
	}
	hc.Size--
	i := int(hc.Size)
	bit := (hc.Bits[i/8] >> (i % 8)) & 1
	hc.Bits[i/8] &^= 1 << (i % 8)
	return bit, true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.WriteByte('"')
	for i := 0; i < int(hc.Size); i++ {
		buf.WriteByte('0' + hc.Bit(i))
	}
	buf.WriteByte('"')
	return buf.String()
}

var _ fmt.Stringer = Code{}
