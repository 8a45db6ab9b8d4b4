package huffcodec

import (
	"io"
)

// Histogram holds the number of occurrences of each Symbol.
type Histogram [AlphabetSize]uint64

// Floor raises the counts of Symbol 0 and MaxSymbol to at least 1, so that a
// tree built from this Histogram always has at least two leaves.
func (h *Histogram) Floor() {
	if h[0] == 0 {
		h[0] = 1
	}
	if h[MaxSymbol] == 0 {
		h[MaxSymbol] = 1
	}
}

// Add counts every byte in p.
func (h *Histogram) Add(p []byte) {
	for _, ch := range p {
		h[ch]++
	}
}

// Count reads r to EOF, counting every byte.  It returns the number of bytes
// read.
func (h *Histogram) Count(r io.Reader) (int64, error) {
	var buf [BlockSize]byte
	var total int64
	for {
		n, err := readFull(r, buf[:])
		h.Add(buf[:n])
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n < len(buf) {
			return total, nil
		}
	}
}

// NumSymbols returns the number of Symbols with a nonzero count.
func (h *Histogram) NumSymbols() int {
	var count int
	for _, freq := range h {
		if freq != 0 {
			count++
		}
	}
	return count
}

// TreeSize returns the length in bytes of the dump of a tree built from
// this Histogram.
func (h *Histogram) TreeSize() int {
	return TreeSize(h.NumSymbols())
}
