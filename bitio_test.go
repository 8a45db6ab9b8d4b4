package huffcodec

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"
)

func TestBitWriter(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	for _, hc := range []Code{MakeCode(1), MakeCode(0, 1), MakeCode(1), MakeCode(0, 0, 0, 0, 1)} {
		if err := bw.WriteCode(&hc); err != nil {
			t.Fatalf("WriteCode failed: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written before Flush, got %d bytes", buf.Len())
	}
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	// bits 1 0 1 1 0 0 0 0 | 1
	expect := []byte{0x0d, 0x01}
	if !bytes.Equal(expect, buf.Bytes()) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, buf.Bytes())
	}
	if bw.BytesWritten() != 2 {
		t.Errorf("expected 2 bytes written, got %d", bw.BytesWritten())
	}
}

func TestBitWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %d bytes", buf.Len())
	}
}

func TestBitWriter_BlockBoundary(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	one := MakeCode(1)
	for i := 0; i < blockBits+3; i++ {
		if err := bw.WriteCode(&one); err != nil {
			t.Fatalf("WriteCode failed: %v", err)
		}
	}
	if buf.Len() != BlockSize {
		t.Errorf("expected one full block before Flush, got %d bytes", buf.Len())
	}
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	out := buf.Bytes()
	if len(out) != BlockSize+1 {
		t.Fatalf("expected %d bytes, got %d", BlockSize+1, len(out))
	}
	for i := 0; i < BlockSize; i++ {
		if out[i] != 0xff {
			t.Fatalf("byte %d: expected 0xff, got %#02x", i, out[i])
		}
	}
	if out[BlockSize] != 0x07 {
		t.Errorf("expected final byte 0x07, got %#02x", out[BlockSize])
	}
}

func TestBitReader(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0xa5}))

	expect := []uint8{1, 0, 1, 0, 0, 1, 0, 1}
	for i, expectBit := range expect {
		bit, more, err := br.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit #%d failed: %v", i, err)
		}
		if bit != expectBit {
			t.Errorf("bit %d: expected %d, got %d", i, expectBit, bit)
		}
		if expectMore := i < len(expect)-1; more != expectMore {
			t.Errorf("bit %d: expected more=%v, got %v", i, expectMore, more)
		}
	}

	if _, more, err := br.ReadBit(); !errors.Is(err, io.EOF) || more {
		t.Errorf("expected io.EOF after last bit, got more=%v err=%v", more, err)
	}
	if br.BytesRead() != 1 {
		t.Errorf("expected 1 byte read, got %d", br.BytesRead())
	}
}

func TestBitReader_Empty(t *testing.T) {
	br := NewBitReader(bytes.NewReader(nil))
	if _, _, err := br.ReadBit(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

type failingReader struct{}

var errBroken = errors.New("broken")

func (failingReader) Read(p []byte) (int, error) {
	return 0, errBroken
}

func TestBitReader_Error(t *testing.T) {
	br := NewBitReader(failingReader{})
	if _, _, err := br.ReadBit(); !errors.Is(err, errBroken) {
		t.Errorf("expected errBroken, got %v", err)
	}
}

func TestBitIO_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var bits []uint8
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	for len(bits) < 3*blockBits {
		var hc Code
		for n := rng.Intn(MaxCodeBits) + 1; n > 0; n-- {
			bit := uint8(rng.Intn(2))
			hc.Push(bit)
			bits = append(bits, bit)
		}
		if err := bw.WriteCode(&hc); err != nil {
			t.Fatalf("WriteCode failed: %v", err)
		}
	}
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if expect := (len(bits) + 7) / 8; buf.Len() != expect {
		t.Errorf("expected %d bytes, got %d", expect, buf.Len())
	}

	br := NewBitReader(&buf)
	for i, expectBit := range bits {
		bit, _, err := br.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit #%d failed: %v", i, err)
		}
		if bit != expectBit {
			t.Fatalf("bit %d: expected %d, got %d", i, expectBit, bit)
		}
	}
}
