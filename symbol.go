package huffcodec

import (
	"math"
)

// Symbol represents one byte of input.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)

// AlphabetSize is the number of distinct Symbols.
const AlphabetSize = int(MaxSymbol) + 1
