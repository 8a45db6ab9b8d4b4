// Command encode compresses a file with Huffman coding.
package main

import (
	"os"

	"github.com/chronos-tachyon/huffcodec/internal/cli"
)

func main() {
	os.Exit(cli.RunEncode("encode", os.Args[1:], cli.OSEnv()))
}
