package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/fstream/pkg/fstream"
)

func cmdCat(out io.Writer, errOut io.Writer, cfg Config, args []string) int {
	if hasHelpFlag(args) {
		printCatHelp(out)

		return 0
	}

	flagSet := flag.NewFlagSet("cat", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	count := flagSet.Int("bytes", -1, "Print at most N bytes")

	if err := flagSet.Parse(args); err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if flagSet.NArg() != 1 {
		fprintln(errOut, "error: cat requires exactly one file")

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

	r := stream.ReadString(*count)
	if r.IsErr() {
		fprintln(errOut, "error:", fmt.Errorf("read %s: %w", name, r.Err()))

		return 1
	}

	_, _ = io.WriteString(out, r.Value())

	return 0
}

func printCatHelp(out io.Writer) {
	fprintln(out, "Usage: fcat cat <file> [--bytes=N]")
	fprintln(out, "")
	fprintln(out, "Print a file's contents through a buffered stream.")
	fprintln(out, "")
	fprintln(out, "Options:")
	fprintln(out, "  --bytes=N    Print at most N bytes [default: whole file]")
}
