package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fstream/pkg/fstream"
)

const defaultHeadLines = 10

func cmdHead(out io.Writer, errOut io.Writer, cfg Config, args []string) int {
	if hasHelpFlag(args) {
		printHeadHelp(out)

		return 0
	}

	flagSet := flag.NewFlagSet("head", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	count := flagSet.IntP("lines", "n", defaultHeadLines, "Number of lines to print")

	if err := flagSet.Parse(args); err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if flagSet.NArg() != 1 {
		fprintln(errOut, "error: head requires exactly one file")

		return 1
	}

	if *count < 0 {
		fprintln(errOut, "error: --lines must be non-negative")

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

	var line []byte

	for range *count {
		r := stream.ReadLine(&line)
		if r.IsErr() {
			fprintln(errOut, "error:", fmt.Errorf("read %s: %w", name, r.Err()))

			return 1
		}

		if !r.Value() {
			break
		}

		fprintln(out, string(line))
	}

	return 0
}

func printHeadHelp(out io.Writer) {
	fprintln(out, "Usage: fcat head <file> [-n K]")
	fprintln(out, "")
	fprintln(out, "Print the first K lines of a file.")
	fprintln(out, "")
	fprintln(out, "Options:")
	fprintln(out, "  -n, --lines=K    Number of lines to print [default: 10]")
}
