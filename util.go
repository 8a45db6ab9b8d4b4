package huffcodec

import (
	"errors"
	"io"
)

// bytesForBits returns the number of bytes needed to hold n bits.
func bytesForBits(n uint32) uint32 {
	return (n + 7) / 8
}

// readFull is io.ReadFull, except that a short read at end of input is not
// an error: the caller inspects the count instead.
func readFull(r io.Reader, p []byte) (int, error) {
	n, err := io.ReadFull(r, p)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	return n, err
}
