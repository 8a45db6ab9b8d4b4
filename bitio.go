package huffcodec

import (
	"io"
)

// BlockSize is the size in bytes of the buffers used for block I/O.
const BlockSize = 4096

const blockBits = BlockSize * 8

// BitWriter packs Codes into a byte stream, LSB-first within each byte.
//
// Codes written back to back are packed contiguously: the BitWriter keeps a
// partially filled block between calls.  Call Flush once at the end of the
// stream.  A BitWriter is not safe for concurrent use.
//
type BitWriter struct {
	w     io.Writer
	block [BlockSize]byte
	pos   uint32
	n     int64
}

// NewBitWriter constructs a BitWriter that writes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: w}
}

// WriteCode appends the bits of hc to the stream, first bit first.  Each
// time the block fills up, it is written to the underlying writer.
func (bw *BitWriter) WriteCode(hc *Code) error {
	for i := 0; i < int(hc.Size); i++ {
		bit := (hc.Bits[i/8] >> (i % 8)) & 1
		bw.block[bw.pos/8] |= bit << (bw.pos % 8)
		bw.pos++

		if bw.pos == blockBits {
			if err := bw.writeBlock(BlockSize); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush writes out the bytes of the partially filled block.  Unused high
// bits of the final byte are zero.
func (bw *BitWriter) Flush() error {
	return bw.writeBlock(bytesForBits(bw.pos))
}

// BytesWritten returns the number of bytes written to the underlying writer.
func (bw *BitWriter) BytesWritten() int64 {
	return bw.n
}

func (bw *BitWriter) writeBlock(size uint32) error {
	if size != 0 {
		n, err := bw.w.Write(bw.block[:size])
		bw.n += int64(n)
		if err != nil {
			return err
		}
	}
	bw.block = [BlockSize]byte{}
	bw.pos = 0
	return nil
}

// BitReader unpacks a byte stream into bits, LSB-first within each byte.
//
// The "more" result of ReadBit is advisory: it is computed one step ahead by
// trying to refill the block as soon as the current one is used up.  The
// caller's own length accounting decides when to stop.  A BitReader is not
// safe for concurrent use.
//
type BitReader struct {
	r     io.Reader
	block [BlockSize]byte
	pos   uint32
	cap   uint32
	n     int64
}

// NewBitReader constructs a BitReader that reads from r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: r}
}

// ReadBit returns the next bit of the stream.
//
// If err is nil, bit is valid and must be consumed.  more reports whether
// the stream is known to have bits beyond this one.  If no bit could be read
// at all, err is io.EOF.
//
func (br *BitReader) ReadBit() (bit uint8, more bool, err error) {
	if br.cap == 0 {
		if err := br.refill(); err != nil {
			return 0, false, err
		}
		if br.cap == 0 {
			return 0, false, io.EOF
		}
	}

	bit = (br.block[br.pos/8] >> (br.pos % 8)) & 1
	br.pos++

	if br.pos == br.cap {
		if err := br.refill(); err != nil {
			return bit, false, err
		}
	}
	return bit, br.cap > 0, nil
}

// BytesRead returns the number of bytes read from the underlying reader.
func (br *BitReader) BytesRead() int64 {
	return br.n
}

func (br *BitReader) refill() error {
	n, err := readFull(br.r, br.block[:])
	br.n += int64(n)
	br.cap = uint32(n) * 8
	br.pos = 0
	return err
}
