package huffcodec

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
)

// Magic identifies a huffcodec stream.
const Magic uint32 = 0xBEEFD00D

// HeaderSize is the encoded size of a Header, in bytes.
const HeaderSize = 4 + 2 + 2 + 8

// Header is the fixed-layout record at the start of every compressed stream.
// Fields are encoded in order, little-endian, with no padding.
type Header struct {
	// Magic must equal the Magic constant.
	Magic uint32

	// Permissions holds the permission bits of the original file.
	Permissions uint16

	// TreeSize is the length in bytes of the tree dump that follows.
	TreeSize uint16

	// FileSize is the length in bytes of the uncompressed data.
	FileSize uint64
}

// MarshalBinary encodes the Header.
func (h Header) MarshalBinary() ([]byte, error) {
	out := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(out[0:4], h.Magic)
	binary.LittleEndian.PutUint16(out[4:6], h.Permissions)
	binary.LittleEndian.PutUint16(out[6:8], h.TreeSize)
	binary.LittleEndian.PutUint64(out[8:16], h.FileSize)
	return out, nil
}

// UnmarshalBinary decodes and validates a Header.
func (h *Header) UnmarshalBinary(raw []byte) error {
	// A stream too short for a header but long enough for the magic number
	// is reported as a format mismatch when the magic is wrong.
	if len(raw) >= 4 {
		if magic := binary.LittleEndian.Uint32(raw[0:4]); magic != Magic {
			return fmt.Errorf("%w: bad magic %#08x, expected %#08x", ErrFormatMismatch, magic, Magic)
		}
	}
	if len(raw) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncatedInput, HeaderSize, len(raw))
	}

	magic := binary.LittleEndian.Uint32(raw[0:4])

	treeSize := binary.LittleEndian.Uint16(raw[6:8])
	if int(treeSize) > MaxTreeSize {
		return fmt.Errorf("%w: tree size %d exceeds maximum %d", ErrFormatMismatch, treeSize, MaxTreeSize)
	}

	*h = Header{
		Magic:       magic,
		Permissions: binary.LittleEndian.Uint16(raw[4:6]),
		TreeSize:    treeSize,
		FileSize:    binary.LittleEndian.Uint64(raw[8:16]),
	}
	return nil
}

// WriteTo writes the encoded Header to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	raw, _ := h.MarshalBinary()
	n, err := w.Write(raw)
	return int64(n), err
}

// ReadHeader reads and validates a Header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var raw [HeaderSize]byte
	n, err := readFull(r, raw[:])
	if err != nil {
		return Header{}, err
	}

	var h Header
	if err := h.UnmarshalBinary(raw[:n]); err != nil {
		return Header{}, err
	}
	return h, nil
}

var (
	_ encoding.BinaryMarshaler   = Header{}
	_ encoding.BinaryUnmarshaler = (*Header)(nil)
	_ io.WriterTo                = Header{}
)
