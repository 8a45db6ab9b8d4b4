package huffcodec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Stats counts the bytes that crossed the codec's reader and writer.
// Compress reads its input twice; BytesRead counts it once.
type Stats struct {
	BytesRead    int64
	BytesWritten int64
}

// SpaceSaving returns the percentage of space saved by compression, given
// the compressed and uncompressed sizes.
func SpaceSaving(compressed, uncompressed int64) float64 {
	if uncompressed == 0 {
		return 0
	}
	return 100.0 * (1.0 - float64(compressed)/float64(uncompressed))
}

// Compress reads the rest of r from its current offset, rewinds it to that
// offset, and writes the compressed stream to w.  perm is recorded in the
// Header as the original permission bits.
func Compress(w io.Writer, r io.ReadSeeker, perm uint16) (stats Stats, err error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return stats, fmt.Errorf("failed to locate input offset: %w", err)
	}

	var hist Histogram
	hist.Floor()
	fileSize, err := hist.Count(r)
	stats.BytesRead += fileSize
	if err != nil {
		return stats, fmt.Errorf("failed to read input: %w", err)
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return stats, fmt.Errorf("failed to rewind input: %w", err)
	}

	var e Encoder
	if err = e.Init(&hist); err != nil {
		return stats, err
	}

	h := Header{
		Magic:       Magic,
		Permissions: perm,
		TreeSize:    uint16(hist.TreeSize()),
		FileSize:    uint64(fileSize),
	}
	n, err := h.WriteTo(w)
	stats.BytesWritten += n
	if err != nil {
		return stats, fmt.Errorf("failed to write header: %w", err)
	}

	dump := e.DumpTree()
	m, err := w.Write(dump)
	stats.BytesWritten += int64(m)
	if err != nil {
		return stats, fmt.Errorf("failed to write tree: %w", err)
	}

	bw := NewBitWriter(w)
	defer func() { stats.BytesWritten += bw.BytesWritten() }()

	var buf [BlockSize]byte
	for {
		k, err := readFull(r, buf[:])
		if err != nil {
			return stats, fmt.Errorf("failed to read input: %w", err)
		}
		for _, ch := range buf[:k] {
			hc := e.Encode(Symbol(ch))
			assert.Assertf(hc.Size != 0, "symbol %d has no code; input changed between passes", ch)
			if err := bw.WriteCode(&hc); err != nil {
				return stats, fmt.Errorf("failed to write codes: %w", err)
			}
		}
		if k < len(buf) {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush codes: %w", err)
	}
	return stats, nil
}

// Decompress reads a compressed stream from r and writes the original data
// to w.
//
// Decoding stops once Header.FileSize bytes have been produced.  If r runs
// out first, the bytes decoded so far are written and the returned error
// wraps ErrTruncatedInput.
//
func Decompress(w io.Writer, r io.Reader) (Header, Stats, error) {
	var stats Stats

	h, err := ReadHeader(r)
	if err != nil {
		return h, stats, err
	}
	stats.BytesRead += HeaderSize

	dump := make([]byte, h.TreeSize)
	n, err := readFull(r, dump)
	stats.BytesRead += int64(n)
	if err != nil {
		return h, stats, fmt.Errorf("failed to read tree: %w", err)
	}
	if n < len(dump) {
		return h, stats, fmt.Errorf("%w: tree needs %d bytes, got %d", ErrTruncatedInput, len(dump), n)
	}

	var d Decoder
	if err := d.Init(dump); err != nil {
		return h, stats, err
	}

	bw := bufio.NewWriterSize(w, BlockSize)
	br := NewBitReader(r)

	var written uint64
	var decodeErr error
	for written < h.FileSize {
		bit, _, err := br.ReadBit()
		if errors.Is(err, io.EOF) {
			decodeErr = fmt.Errorf("%w: decoded %d of %d bytes", ErrTruncatedInput, written, h.FileSize)
			break
		}
		if err != nil {
			decodeErr = fmt.Errorf("failed to read payload: %w", err)
			break
		}
		if symbol, ok := d.Next(bit); ok {
			if err := bw.WriteByte(byte(symbol)); err != nil {
				decodeErr = fmt.Errorf("failed to write output: %w", err)
				break
			}
			written++
		}
	}
	stats.BytesRead += br.BytesRead()

	flushErr := bw.Flush()
	stats.BytesWritten = int64(written) - int64(bw.Buffered())
	if decodeErr != nil {
		return h, stats, decodeErr
	}
	if flushErr != nil {
		return h, stats, fmt.Errorf("failed to write output: %w", flushErr)
	}
	return h, stats, nil
}

// EncodeBytes compresses data in memory.
func EncodeBytes(data []byte, perm uint16) ([]byte, error) {
	var out bytes.Buffer
	if _, err := Compress(&out, bytes.NewReader(data), perm); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeBytes decompresses data in memory.
func DecodeBytes(data []byte) ([]byte, Header, error) {
	var out bytes.Buffer
	h, _, err := Decompress(&out, bytes.NewReader(data))
	return out.Bytes(), h, err
}
