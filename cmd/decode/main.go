// Command decode reverses encode.
package main

import (
	"os"

	"github.com/chronos-tachyon/huffcodec/internal/cli"
)

func main() {
	os.Exit(cli.RunDecode("decode", os.Args[1:], cli.OSEnv()))
}
