package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/chronos-tachyon/huffcodec"
	"github.com/chronos-tachyon/huffcodec/internal/logger"
)

// RunEncode implements the encode command and returns its exit status.
func RunEncode(prog string, args []string, env Env) int {
	log := logger.New(env.Stderr, prog)
	opts, err := ParseOptions(prog, args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) || opts.Help {
		PrintUsage(env.Stdout, prog, "An encoder for Huffman compression.",
			"Specify input file to compress.", "Specify output file for compressed file.")
		return 0
	}
	if err != nil {
		return exitCode(log, err)
	}
	return exitCode(log, encode(opts, env, log))
}

func encode(opts Options, env Env, log logger.Logger) (err error) {
	in, closeIn, err := OpenInput(opts.Input, env.Stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := CreateOutput(opts.Output, env.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	perm := Permissions(in)
	rs, err := Seekable(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := ApplyPermissions(out, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	stats, err := huffcodec.Compress(out, rs, perm)
	if err != nil {
		return err
	}

	if opts.Verbose {
		log.Infof("Uncompressed file size: %d bytes", stats.BytesRead)
		log.Infof("Compressed file size: %d bytes", stats.BytesWritten)
		log.Infof("Space saving: %.2f%%", huffcodec.SpaceSaving(stats.BytesWritten, stats.BytesRead))
	}
	return nil
}

// RunDecode implements the decode command and returns its exit status.
func RunDecode(prog string, args []string, env Env) int {
	log := logger.New(env.Stderr, prog)
	opts, err := ParseOptions(prog, args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) || opts.Help {
		PrintUsage(env.Stdout, prog, "A decoder for Huffman compression.",
			"Specify input file to decompress.", "Specify output file for decompressed file.")
		return 0
	}
	if err != nil {
		return exitCode(log, err)
	}
	return exitCode(log, decode(opts, env, log))
}

func decode(opts Options, env Env, log logger.Logger) (err error) {
	in, closeIn, err := OpenInput(opts.Input, env.Stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := CreateOutput(opts.Output, env.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	h, stats, err := huffcodec.Decompress(out, in)
	if h.Magic == huffcodec.Magic {
		if perr := ApplyPermissions(out, h.Permissions); perr != nil && err == nil {
			err = fmt.Errorf("failed to set permissions: %w", perr)
		}
	}
	if err != nil {
		return err
	}

	if opts.Verbose {
		log.Infof("Compressed file size: %d bytes", stats.BytesRead)
		log.Infof("Decompressed file size: %d bytes", stats.BytesWritten)
		log.Infof("Space saving: %.2f%%", huffcodec.SpaceSaving(stats.BytesRead, stats.BytesWritten))
	}
	return nil
}
