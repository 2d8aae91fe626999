package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fstream/pkg/fstream"
)

func cmdCopy(out io.Writer, errOut io.Writer, cfg Config, args []string) int {
	if hasHelpFlag(args) {
		printCopyHelp(out)

		return 0
	}

	flagSet := flag.NewFlagSet("copy", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	appendDst := flagSet.Bool("append", false, "Append to the destination instead of truncating")
	chunk := flagSet.Int("chunk", 0, "Bytes shuttled per read/write step")

	if err := flagSet.Parse(args); err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if flagSet.NArg() != 2 {
		fprintln(errOut, "error: copy requires a source and a destination")

		return 1
	}

	if flagSet.Changed("chunk") && *chunk <= 0 {
		fprintln(errOut, "error: --chunk must be positive")

		return 1
	}

	srcName, dstName := flagSet.Arg(0), flagSet.Arg(1)

	sr := fstream.Open(resolve(cfg, srcName), fstream.ModeRead)
	if sr.IsErr() {
		fprintln(errOut, "error:", fmt.Errorf("open %s: %w", srcName, sr.Err()))

		return 1
	}

	src := sr.Value()
	defer src.Close()

	dstMode := fstream.ModeWrite
	if *appendDst {
		dstMode = fstream.ModeAppend
	}

	dr := fstream.Open(resolve(cfg, dstName), dstMode)
	if dr.IsErr() {
		fprintln(errOut, "error:", fmt.Errorf("open %s: %w", dstName, dr.Err()))

		return 1
	}

	dst := dr.Value()
	defer dst.Close()

	size := *chunk
	if size == 0 {
		size = int(src.BlockSize())
		if size <= 0 {
			size = 4096
		}
	}

	buf := make([]byte, size)
	total := 0

	for {
		r := src.Read(buf)
		if r.IsErr() {
			fprintln(errOut, "error:", fmt.Errorf("read %s: %w", srcName, r.Err()))

			return 1
		}

		if r.Value() == 0 {
			break
		}

		if w := dst.Write(buf[:r.Value()]); w.IsErr() {
			fprintln(errOut, "error:", fmt.Errorf("write %s: %w", dstName, w.Err()))

			return 1
		}

		total += r.Value()
	}

	if cfg.SyncOnClose {
		if r := dst.Sync(); r.IsErr() {
			fprintln(errOut, "error:", fmt.Errorf("sync %s: %w", dstName, r.Err()))

			return 1
		}
	}

	// Close explicitly: a failed flush here means lost bytes, and the
	// deferred close is then a no-op.
	if r := dst.Close(); r.IsErr() {
		fprintln(errOut, "error:", fmt.Errorf("close %s: %w", dstName, r.Err()))

		return 1
	}

	fprintf(out, "copied %d bytes\n", total)

	return 0
}

func printCopyHelp(out io.Writer) {
	fprintln(out, "Usage: fcat copy <src> <dst> [--append] [--chunk=N]")
	fprintln(out, "")
	fprintln(out, "Copy src to dst through a pair of buffered streams.")
	fprintln(out, "")
	fprintln(out, "Options:")
	fprintln(out, "  --append     Append to dst instead of truncating it")
	fprintln(out, "  --chunk=N    Bytes shuttled per step [default: src block size]")
	fprintln(out, "")
	fprintln(out, "With sync_on_close set in config, dst is synced to disk before")
	fprintln(out, "it is closed.")
}
