package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fstream/pkg/fstream"
)

func cmdLines(out io.Writer, errOut io.Writer, cfg Config, args []string) int {
	if hasHelpFlag(args) {
		printLinesHelp(out)

		return 0
	}

	flagSet := flag.NewFlagSet("lines", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	// The config default applies unless the flag is given explicitly,
	// including --numbers=false to switch numbering off per invocation.
	numbers := flagSet.Bool("numbers", cfg.NumberLines, "Prefix each line with its number")

	if err := flagSet.Parse(args); err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if flagSet.NArg() != 1 {
		fprintln(errOut, "error: lines requires exactly one file")

		return 1
	}

	name := flagSet.Arg(0)

	sr := fstream.Open(resolve(cfg, name), fstream.ModeRead)
	if sr.IsErr() {
		fprintln(errOut, "error:", fmt.Errorf("open %s: %w", name, sr.Err()))

		return 1
	}

	stream := sr.Value()
	defer stream.Close()

	n := 0

	for r := range stream.Lines() {
		if r.IsErr() {
			fprintln(errOut, "error:", fmt.Errorf("read %s: %w", name, r.Err()))

			return 1
		}

		n++

		if *numbers {
			fprintf(out, "%6d\t%s\n", n, r.Value())
		} else {
			fprintln(out, r.Value())
		}
	}

	return 0
}

func printLinesHelp(out io.Writer) {
	fprintln(out, "Usage: fcat lines <file> [--numbers]")
	fprintln(out, "")
	fprintln(out, "Print a file line by line. Line terminators (LF or CRLF) are")
	fprintln(out, "stripped; a lone CR is kept as line content.")
	fprintln(out, "")
	fprintln(out, "Options:")
	fprintln(out, "  --numbers    Prefix each line with its number")
	fprintln(out, "               [default: config number_lines]")
}
