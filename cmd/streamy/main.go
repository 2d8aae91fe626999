// streamy is an interactive inspector for buffered file streams.
//
// Usage:
//
//	streamy [file [mode]]    Optionally open a file on startup
//
// mode is read (default), write, or append.
//
// Commands (in REPL):
//
//	open <path> [mode]    Open a file (closes the current stream)
//	read <n>              Read up to n bytes
//	readall               Read everything left in the file
//	bytes <n>             Read up to n bytes, shown as hex
//	line                  Read one line
//	lines [k]             Read up to k lines (default: all)
//	intocap <n>           Fill a fresh buffer of capacity n
//	write <text...>       Buffer text for writing
//	flush                 Hand buffered writes to the OS
//	seek <off> [whence]   Reposition (whence: start|current|end)
//	tell                  Show the OS-level position
//	sync                  Flush, then sync to hardware
//	stat                  Show stream metadata
//	close                 Close the current stream
//	help                  Show this help
//	exit / quit / q       Exit
//
// Stream errors print their kind and never exit the REPL.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/fstream/internal/cli"
	"github.com/calvinalkan/fstream/pkg/fstream"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	cfg, err := cli.LoadConfig(cli.LoadConfigInput{Env: env})
	if err != nil {
		return err
	}

	repl := &REPL{history: historyPath(cfg)}

	if len(os.Args) > 1 {
		mode := fstream.ModeRead

		if len(os.Args) > 2 {
			mode, err = parseMode(os.Args[2])
			if err != nil {
				return err
			}
		}

		path := os.Args[1]

		r := fstream.Open(path, mode)
		if r.IsErr() {
			return fmt.Errorf("opening %s: %w", path, r.Err())
		}

		repl.stream = r.Value()
		repl.path = path
	}

	return repl.Run()
}

// historyPath picks the prompt history location: config history_file if
// set, otherwise ~/.streamy_history.
func historyPath(cfg cli.Config) string {
	if cfg.HistoryFile != "" {
		return cfg.HistoryFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".streamy_history")
}

func parseMode(s string) (fstream.Mode, error) {
	switch s {
	case "read", "r":
		return fstream.ModeRead, nil
	case "write", "w":
		return fstream.ModeWrite, nil
	case "append", "a":
		return fstream.ModeAppend, nil
	default:
		return 0, fmt.Errorf("invalid mode %q (want read, write, or append)", s)
	}
}

func parseWhence(s string) (int, error) {
	switch s {
	case "start":
		return io.SeekStart, nil
	case "current":
		return io.SeekCurrent, nil
	case "end":
		return io.SeekEnd, nil
	default:
		return 0, fmt.Errorf("invalid whence %q (want start, current, or end)", s)
	}
}

// REPL is the interactive command loop around at most one open stream.
type REPL struct {
	stream  *fstream.Stream
	path    string
	liner   *liner.State
	history string
	lineBuf []byte
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if r.history != "" {
		if f, err := os.Open(r.history); err == nil {
			r.liner.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Println("streamy - buffered stream inspector")

	if r.stream != nil {
		fmt.Printf("open: %s (%s, %d bytes)\n", r.path, r.stream.Mode(), r.stream.Size())
	}

	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt(r.prompt())
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")

			r.cmdClose(true)
			r.saveHistory()

			return nil

		case "help", "?":
			r.printHelp()

		case "open":
			r.cmdOpen(args)

		case "read":
			r.cmdRead(args)

		case "readall":
			r.cmdReadAll()

		case "bytes":
			r.cmdBytes(args)

		case "line":
			r.cmdLine()

		case "lines":
			r.cmdLines(args)

		case "intocap":
			r.cmdIntoCap(args)

		case "write":
			r.cmdWrite(args)

		case "flush":
			r.cmdFlush()

		case "seek":
			r.cmdSeek(args)

		case "tell":
			r.cmdTell()

		case "sync":
			r.cmdSync()

		case "stat":
			r.cmdStat()

		case "close":
			r.cmdClose(false)

		case "clear", "cls":
			fmt.Print("\033[H\033[2J")

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.cmdClose(true)
	r.saveHistory()

	return nil
}

// prompt shows which file is open and in which mode.
func (r *REPL) prompt() string {
	if r.stream == nil {
		return "streamy> "
	}

	return fmt.Sprintf("streamy %s(%s)> ", filepath.Base(r.path), r.stream.Mode())
}

// saveHistory persists command history to disk.
func (r *REPL) saveHistory() {
	if r.history == "" {
		return
	}

	if f, err := os.Create(r.history); err == nil {
		r.liner.WriteHistory(f)
		f.Close()
	}
}

// completer provides tab completion for commands.
func (r *REPL) completer(line string) []string {
	commands := []string{
		"open", "read", "readall", "bytes",
		"line", "lines", "intocap",
		"write", "flush", "sync",
		"seek", "tell", "stat",
		"close", "clear", "cls",
		"help", "exit", "quit", "q",
	}

	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  open <path> [mode]    Open a file (mode: read|write|append)")
	fmt.Println("  read <n>              Read up to n bytes")
	fmt.Println("  readall               Read everything left in the file")
	fmt.Println("  bytes <n>             Read up to n bytes, shown as hex")
	fmt.Println("  line                  Read one line")
	fmt.Println("  lines [k]             Read up to k lines (default: all)")
	fmt.Println("  intocap <n>           Fill a fresh buffer of capacity n")
	fmt.Println("  write <text...>       Buffer text for writing")
	fmt.Println("  flush                 Hand buffered writes to the OS")
	fmt.Println("  seek <off> [whence]   Reposition (whence: start|current|end)")
	fmt.Println("  tell                  Show the OS-level position")
	fmt.Println("  sync                  Flush, then sync to hardware")
	fmt.Println("  stat                  Show stream metadata")
	fmt.Println("  close                 Close the current stream")
	fmt.Println("  help                  Show this help")
	fmt.Println("  exit / quit / q       Exit")
	fmt.Println()
	fmt.Println("Wrong-mode operations report a bad handle error; the stream stays usable.")
}

// requireStream reports whether a stream is open, complaining if not.
func (r *REPL) requireStream() bool {
	if r.stream == nil {
		fmt.Println("no stream open (use 'open <path> [mode]')")

		return false
	}

	return true
}

func (r *REPL) printErr(op string, err error) {
	fmt.Printf("error: %s: %v\n", op, err)
}

func (r *REPL) cmdOpen(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Println("usage: open <path> [mode]")

		return
	}

	mode := fstream.ModeRead

	if len(args) == 2 {
		m, err := parseMode(args[1])
		if err != nil {
			fmt.Println("error:", err)

			return
		}

		mode = m
	}

	if r.stream != nil {
		if cr := r.stream.Close(); cr.IsErr() {
			fmt.Printf("warning: closing %s: %v\n", r.path, cr.Err())
		}

		r.stream = nil
		r.path = ""
	}

	or := fstream.Open(args[0], mode)
	if or.IsErr() {
		r.printErr("open", or.Err())

		return
	}

	r.stream = or.Value()
	r.path = args[0]

	fmt.Printf("opened %s (%s, %d bytes)\n", r.path, mode, r.stream.Size())
}

func (r *REPL) cmdRead(args []string) {
	if !r.requireStream() {
		return
	}

	if len(args) != 1 {
		fmt.Println("usage: read <n>")

		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Println("error: count must be a non-negative integer")

		return
	}

	buf := make([]byte, n)

	rr := r.stream.Read(buf)
	if rr.IsErr() {
		r.printErr("read", rr.Err())

		return
	}

	fmt.Printf("%d bytes: %q\n", rr.Value(), buf[:rr.Value()])
}

func (r *REPL) cmdReadAll() {
	if !r.requireStream() {
		return
	}

	rr := r.stream.ReadString(-1)
	if rr.IsErr() {
		r.printErr("readall", rr.Err())

		return
	}

	fmt.Println(rr.Value())
	fmt.Printf("(%d bytes)\n", len(rr.Value()))
}

func (r *REPL) cmdBytes(args []string) {
	if !r.requireStream() {
		return
	}

	if len(args) != 1 {
		fmt.Println("usage: bytes <n>")

		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Println("error: count must be a non-negative integer")

		return
	}

	rr := r.stream.ReadBytes(n)
	if rr.IsErr() {
		r.printErr("bytes", rr.Err())

		return
	}

	fmt.Printf("%d bytes: % x\n", len(rr.Value()), rr.Value())
}

func (r *REPL) cmdLine() {
	if !r.requireStream() {
		return
	}

	rr := r.stream.ReadLine(&r.lineBuf)
	if rr.IsErr() {
		r.printErr("line", rr.Err())

		return
	}

	if !rr.Value() {
		fmt.Println("EOF")

		return
	}

	fmt.Printf("%q\n", r.lineBuf)
}

func (r *REPL) cmdLines(args []string) {
	if !r.requireStream() {
		return
	}

	limit := -1

	if len(args) > 0 {
		k, err := strconv.Atoi(args[0])
		if err != nil || k < 1 {
			fmt.Println("error: limit must be a positive integer")

			return
		}

		limit = k
	}

	n := 0

	// Breaking out early leaves the stream positioned after the last
	// yielded line, so a later 'line' picks up where this left off.
	for res := range r.stream.Lines() {
		if res.IsErr() {
			r.printErr("lines", res.Err())

			return
		}

		n++
		fmt.Printf("%6d\t%s\n", n, res.Value())

		if limit > 0 && n >= limit {
			break
		}
	}

	if n == 0 {
		fmt.Println("EOF")
	}
}

func (r *REPL) cmdIntoCap(args []string) {
	if !r.requireStream() {
		return
	}

	if len(args) != 1 {
		fmt.Println("usage: intocap <n>")

		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Println("error: capacity must be a non-negative integer")

		return
	}

	buf := make([]byte, 0, n)

	rr := r.stream.ReadIntoCapacity(&buf)
	if rr.IsErr() {
		r.printErr("intocap", rr.Err())

		return
	}

	fmt.Printf("appended %d bytes: %q (len=%d cap=%d)\n", rr.Value(), buf, len(buf), cap(buf))
}

func (r *REPL) cmdWrite(args []string) {
	if !r.requireStream() {
		return
	}

	if len(args) == 0 {
		fmt.Println("usage: write <text...>")

		return
	}

	text := strings.Join(args, " ")

	wr := r.stream.WriteString(text)
	if wr.IsErr() {
		r.printErr("write", wr.Err())

		return
	}

	fmt.Printf("buffered %d bytes\n", len(text))
}

func (r *REPL) cmdFlush() {
	if !r.requireStream() {
		return
	}

	if fr := r.stream.Flush(); fr.IsErr() {
		r.printErr("flush", fr.Err())

		return
	}

	fmt.Println("flushed")
}

func (r *REPL) cmdSeek(args []string) {
	if !r.requireStream() {
		return
	}

	if len(args) < 1 || len(args) > 2 {
		fmt.Println("usage: seek <off> [whence]")

		return
	}

	off, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("error: offset must be an integer")

		return
	}

	whence := io.SeekStart

	if len(args) == 2 {
		w, whenceErr := parseWhence(args[1])
		if whenceErr != nil {
			fmt.Println("error:", whenceErr)

			return
		}

		whence = w
	}

	sr := r.stream.Seek(off, whence)
	if sr.IsErr() {
		r.printErr("seek", sr.Err())

		return
	}

	fmt.Printf("position %d\n", sr.Value())
}

func (r *REPL) cmdTell() {
	if !r.requireStream() {
		return
	}

	tr := r.stream.Tell()
	if tr.IsErr() {
		r.printErr("tell", tr.Err())

		return
	}

	fmt.Printf("position %d (OS-level)\n", tr.Value())
}

func (r *REPL) cmdSync() {
	if !r.requireStream() {
		return
	}

	if sr := r.stream.Sync(); sr.IsErr() {
		r.printErr("sync", sr.Err())

		return
	}

	fmt.Println("synced")
}

func (r *REPL) cmdStat() {
	if !r.requireStream() {
		return
	}

	fmt.Printf("path=%s\n", r.path)
	fmt.Printf("mode=%s\n", r.stream.Mode())
	fmt.Printf("size=%d\n", r.stream.Size())
	fmt.Printf("block_size=%d\n", r.stream.BlockSize())
	fmt.Printf("can_read=%v\n", r.stream.CanRead())
	fmt.Printf("can_write=%v\n", r.stream.CanWrite())
}

// cmdClose closes the current stream. quiet suppresses the "no stream"
// complaint on exit.
func (r *REPL) cmdClose(quiet bool) {
	if r.stream == nil {
		if !quiet {
			fmt.Println("no stream open")
		}

		return
	}

	cr := r.stream.Close()

	// The stream is spent either way; a close error means pending writes
	// were lost.
	r.stream = nil

	if cr.IsErr() {
		r.printErr("close", cr.Err())
		fmt.Printf("closed %s (with error)\n", r.path)
	} else {
		fmt.Printf("closed %s\n", r.path)
	}

	r.path = ""
}
