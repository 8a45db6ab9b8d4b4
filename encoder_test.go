package huffcodec

import (
	"bytes"
	"strings"
	"testing"
)

func makeTestEncoder() Encoder {
	var h Histogram
	copy(h[:], []uint64{5, 9, 12, 13, 16, 45})
	var e Encoder
	if err := e.Init(&h); err != nil {
		panic(err)
	}
	return e
}

func TestEncoder(t *testing.T) {
	e := makeTestEncoder()

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
	if e.NumSymbols() != 6 || e.TreeSize() != 17 {
		t.Errorf("expected 6 symbols and tree size 17, got %d and %d", e.NumSymbols(), e.TreeSize())
	}
}

func TestEncoder_DumpTree(t *testing.T) {
	e := makeTestEncoder()

	expectTree := []byte{
		'L', 5,
		'L', 2, 'L', 3, 'I',
		'L', 0, 'L', 1, 'I', 'L', 4, 'I',
		'I',
		'I',
	}
	actualTree := e.DumpTree()
	if !bytes.Equal(expectTree, actualTree) {
		t.Errorf("wrong tree:\n\texpect: %v\n\tactual: %v", expectTree, actualTree)
	}
	if len(actualTree) != e.TreeSize() {
		t.Errorf("expected TreeSize %d to match dump length %d", e.TreeSize(), len(actualTree))
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder()

	if hc := e.Encode(5); hc.String() != `"0"` {
		t.Errorf("expected code \"0\" for symbol 5, got %s", hc)
	}
	if hc := e.Encode('x'); hc.Size != 0 {
		t.Errorf("expected no code for an absent symbol, got %s", hc)
	}

	hc := e.Encode(5)
	hc.Push(1)
	if actual := e.Encode(5); actual.String() != `"0"` {
		t.Errorf("expected the encoder's code for symbol 5 to stay \"0\", got %s", actual)
	}
}
