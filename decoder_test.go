package huffcodec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestDecoder() Decoder {
	var d Decoder
	err := d.Init(makeTestEncoder().DumpTree())
	if err != nil {
		panic(err)
	}
	return d
}

func TestDecoder_Next(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		bits string
		sym  Symbol
	}

	testData := [...]testRow{
		{bits: "0", sym: 5},
		{bits: "100", sym: 2},
		{bits: "101", sym: 3},
		{bits: "1100", sym: 0},
		{bits: "1101", sym: 1},
		{bits: "111", sym: 4},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			for i := 0; i < len(row.bits); i++ {
				sym, ok := d.Next(row.bits[i] - '0')
				last := i == len(row.bits)-1
				require.Equal(t, last, ok, "bit %d", i)
				if last {
					require.Equal(t, row.sym, sym)
				}
			}
		})
	}
}

func TestDecoder_Reset(t *testing.T) {
	d := makeTestDecoder()

	_, ok := d.Next(1)
	require.False(t, ok)
	d.Reset()

	sym, ok := d.Next(0)
	require.True(t, ok)
	require.Equal(t, Symbol(5), sym)
}

func TestDecoder_SingleLeaf(t *testing.T) {
	var d Decoder
	require.NoError(t, d.Init([]byte("Lq")))
	for _, bit := range []uint8{0, 1, 0} {
		sym, ok := d.Next(bit)
		require.True(t, ok)
		require.Equal(t, Symbol('q'), sym)
	}
}

func TestDecoder_InitError(t *testing.T) {
	var d Decoder
	err := d.Init([]byte("II"))
	require.True(t, errors.Is(err, ErrStackEmpty), "got %v", err)
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tDecode(\"0\") = 5\n",
		"\tDecode(\"100\") = 2\n",
		"\tDecode(\"101\") = 3\n",
		"\tDecode(\"1100\") = 0\n",
		"\tDecode(\"1101\") = 1\n",
		"\tDecode(\"111\") = 4\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	require.Equal(t, expectDump, buf.String())
}
