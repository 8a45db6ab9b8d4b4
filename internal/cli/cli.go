// Package cli holds the file handling and option parsing shared by the
// encode and decode commands.
package cli

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/huffcodec/internal/logger"
)

// defaultPerm is recorded for inputs that have no permission bits of their
// own, such as pipes.
const defaultPerm = 0600

// Options holds the parsed command line.
type Options struct {
	Help    bool
	Verbose bool
	Input   string
	Output  string
}

// Env is the process environment a command runs in.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OSEnv returns the Env of the current process.
func OSEnv() Env {
	return Env{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// ParseOptions parses "-h -v -i infile -o outfile".
func ParseOptions(prog string, args []string, stderr io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.Help, "h", false, "Program usage and help.")
	fs.BoolVar(&opts.Verbose, "v", false, "Print statistics to stderr.")
	fs.StringVar(&opts.Input, "i", "", "Input file (default stdin).")
	fs.StringVar(&opts.Output, "o", "", "Output file (default stdout).")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 0 {
		return opts, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	return opts, nil
}

// PrintUsage writes the help text for a command.
func PrintUsage(w io.Writer, prog, synopsis, inputHelp, outputHelp string) {
	fmt.Fprintf(w, "SYNOPSIS\n  %s\n\n", synopsis)
	fmt.Fprintf(w, "USAGE\n  %s [-h] [-v] [-i infile] [-o outfile]\n\n", prog)
	fmt.Fprintf(w, "OPTIONS\n")
	fmt.Fprintf(w, "  -%-14s Program usage and help.\n", "h")
	fmt.Fprintf(w, "  -%-14s Print statistics to stderr.\n", "v")
	fmt.Fprintf(w, "  -%-14s %s\n", "i infile", inputHelp)
	fmt.Fprintf(w, "  -%-14s %s\n", "o outfile", outputHelp)
}

// OpenInput opens the named file for reading, or returns stdin if name is
// empty.  The returned close function is a no-op for stdin.
func OpenInput(name string, stdin io.Reader) (io.Reader, func() error, error) {
	if name == "" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, describeOpenError(name, err)
	}
	return f, f.Close, nil
}

// CreateOutput creates or truncates the named file, or returns stdout if
// name is empty.  The returned close function is a no-op for stdout.
func CreateOutput(name string, stdout io.Writer) (io.Writer, func() error, error) {
	if name == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultPerm)
	if err != nil {
		return nil, nil, describeOpenError(name, err)
	}
	return f, f.Close, nil
}

func describeOpenError(name string, err error) error {
	switch {
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("file %s cannot be accessed: %w", name, err)
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("file %s does not exist: %w", name, err)
	default:
		return fmt.Errorf("could not open file %s: %w", name, err)
	}
}

// Seekable returns r as an io.ReadSeeker.  Regular files are used as-is;
// anything else is read fully into memory.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	switch v := r.(type) {
	case *os.File:
		if isRegular(v) {
			return v, nil
		}
	case io.ReadSeeker:
		return v, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Permissions returns the permission bits of r if it is a regular file.
func Permissions(r io.Reader) uint16 {
	f, ok := r.(*os.File)
	if !ok {
		return defaultPerm
	}
	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return defaultPerm
	}
	return uint16(fi.Mode().Perm())
}

// ApplyPermissions sets the permission bits of w if it is a regular file.
func ApplyPermissions(w io.Writer, perm uint16) error {
	f, ok := w.(*os.File)
	if !ok || !isRegular(f) {
		return nil
	}
	return f.Chmod(os.FileMode(perm) & os.ModePerm)
}

func isRegular(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode().IsRegular()
}

// exitCode logs err, if any, and maps it to a process exit status.
func exitCode(log logger.Logger, err error) int {
	if err == nil {
		return 0
	}
	log.Errorf("%v", err)
	return 1
}
