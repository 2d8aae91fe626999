package cli

import (
	"fmt"
	"io"

	"github.com/calvinalkan/fstream/pkg/fstream"
)

func cmdStat(out io.Writer, errOut io.Writer, cfg Config, args []string) int {
	if hasHelpFlag(args) {
		printStatHelp(out)

		return 0
	}

	if len(args) != 1 {
		fprintln(errOut, "error: stat requires exactly one file")

		return 1
	}

	name := args[0]
	path := resolve(cfg, name)

	sr := fstream.Open(path, fstream.ModeRead)
	if sr.IsErr() {
		fprintln(errOut, "error:", fmt.Errorf("open %s: %w", name, sr.Err()))

		return 1
	}

	stream := sr.Value()
	defer stream.Close()

	// The buffer capacity is the block size when the platform reports
	// one, 4096 otherwise; mirror that resolution here.
	capacity := stream.BlockSize()
	if capacity <= 0 {
		capacity = 4096
	}

	fprintln(out, "path="+path)
	fprintf(out, "size=%d\n", stream.Size())
	fprintf(out, "block_size=%d\n", stream.BlockSize())
	fprintf(out, "buffer_capacity=%d\n", capacity)
	fprintf(out, "mode=%s\n", stream.Mode())
	fprintf(out, "can_read=%v\n", stream.CanRead())
	fprintf(out, "can_write=%v\n", stream.CanWrite())

	return 0
}

func printStatHelp(out io.Writer) {
	fprintln(out, "Usage: fcat stat <file>")
	fprintln(out, "")
	fprintln(out, "Open a file read-only and show the stream's metadata: the size")
	fprintln(out, "and block size snapshots and the mode surface.")
}
