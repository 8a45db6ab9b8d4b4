package huffcodec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder holds a Huffman tree and the Code for each of its Symbols.
type Encoder struct {
	root       *Node
	codes      *CodeTable
	numSymbols int
	minSize    byte
	maxSize    byte
}

// Init initializes this Encoder from a Histogram.  Every Symbol with a
// nonzero count receives a Code.
//
// Init does not apply Histogram.Floor; callers that need at least two leaves
// must floor the Histogram first.
//
func (e *Encoder) Init(h *Histogram) error {
	root := BuildTree(h)
	codes, err := BuildCodes(root)
	if err != nil {
		return fmt.Errorf("failed to construct Huffman codes: %w", err)
	}

	var numSymbols int
	var minSize, maxSize byte
	for symbol, freq := range h {
		if freq == 0 {
			continue
		}
		size := codes[symbol].Size
		if numSymbols == 0 {
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
		numSymbols++
	}
	assert.Assertf(numSymbols == CountLeaves(root), "histogram has %d symbols, tree has %d leaves", numSymbols, CountLeaves(root))

	*e = Encoder{
		root:       root,
		codes:      codes,
		numSymbols: numSymbols,
		minSize:    minSize,
		maxSize:    maxSize,
	}
	return nil
}

// Encode returns the Code for a Symbol.  Symbols that were absent from the
// Histogram have a zero-length Code.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// NumSymbols is the number of Symbols with a Code, i.e. the number of leaves.
func (e Encoder) NumSymbols() int {
	return e.numSymbols
}

// TreeSize is the length in bytes of DumpTree's output.
func (e Encoder) TreeSize() int {
	return TreeSize(e.numSymbols)
}

// Tree returns the root of the Huffman tree.
func (e Encoder) Tree() *Node {
	return e.root
}

// DumpTree returns the serialized Huffman tree.
func (e Encoder) DumpTree() []byte {
	return DumpTree(e.root)
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.
func (e Encoder) SizeBySymbol() []byte {
	out := make([]byte, AlphabetSize)
	for symbol := range out {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a Code are omitted.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	if e.codes != nil {
		for symbol := range e.codes {
			hc := e.codes[symbol]
			if hc.Size != 0 {
				fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
			}
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
