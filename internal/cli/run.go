// Package cli implements the fcat command line interface: argument
// parsing, config resolution, and the subcommands that drive buffered
// streams over real files.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const (
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) < 2 {
		printUsage(out)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut, "")
		printGlobalFlags(errOut)

		return 1
	}

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: flags.workDir,
		ConfigPath:      flags.configPath,
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if len(flags.remaining) == 0 {
		fprintln(errOut, "error:", ErrNoCommand)
		fprintln(errOut, "")
		printUsage(errOut)

		return 1
	}

	cmd := flags.remaining[0]
	rest := flags.remaining[1:]

	if cmd == "-h" || cmd == helpFlag {
		printUsage(out)

		return 0
	}

	switch cmd {
	case "cat":
		return cmdCat(out, errOut, cfg, rest)
	case "lines":
		return cmdLines(out, errOut, cfg, rest)
	case "head":
		return cmdHead(out, errOut, cfg, rest)
	case "copy":
		return cmdCopy(out, errOut, cfg, rest)
	case "range":
		return cmdRange(out, errOut, cfg, rest)
	case "stat":
		return cmdStat(out, errOut, cfg, rest)
	case "config":
		return cmdConfig(out, errOut, cfg, rest)
	default:
		fprintln(errOut, "error: unknown command:", cmd)
		fprintln(errOut, "")
		printUsage(errOut)

		return 1
	}
}

type globalFlags struct {
	workDir    string
	configPath string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args
// consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", ErrFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", ErrUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

// resolve makes a file argument absolute against the effective working
// directory.
func resolve(cfg Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(cfg.EffectiveCwd, path)
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == helpFlag {
			return true
		}
	}

	return false
}

func printGlobalFlags(w io.Writer) {
	fprintln(w, `Global flags:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file
  -h, --help         Show this help`)
}

func printUsage(w io.Writer) {
	fprintln(w, `fcat - buffered file stream tool

Usage: fcat [options] <command> [args]`)
	fprintln(w, "")
	printGlobalFlags(w)
	fprintln(w, `
Commands:
  cat <file> [--bytes=N]          Print a file
  lines <file> [--numbers]        Print a file line by line
  head <file> [-n K]              Print the first K lines
  copy <src> <dst> [flags]        Copy a file through buffered streams
  range <file> --from=N [flags]   Print a byte range
  stat <file>                     Show stream metadata
  config                          Show resolved configuration
  config init                     Write a default .fcat.json`)
}
