package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// defaultConfigJSON is the template written by `fcat config init`. It is
// JSONC, so the comments survive loading.
const defaultConfigJSON = `{
    // Prefix 'fcat lines' output with line numbers.
    "number_lines": false,

    // Sync the destination to disk before 'fcat copy' closes it.
    "sync_on_close": false,

    // Prompt history location for streamy.
    // Empty means $HOME/.streamy_history.
    "history_file": ""
}
`

func cmdConfig(out io.Writer, errOut io.Writer, cfg Config, args []string) int {
	if hasHelpFlag(args) {
		printConfigHelp(out)

		return 0
	}

	if len(args) > 0 && args[0] == "init" {
		return cmdConfigInit(out, errOut, cfg)
	}

	if len(args) > 0 {
		fprintln(errOut, "error: unknown config subcommand:", args[0])

		return 1
	}

	fprintln(out, "effective_cwd="+cfg.EffectiveCwd)
	fprintf(out, "number_lines=%v\n", cfg.NumberLines)
	fprintf(out, "sync_on_close=%v\n", cfg.SyncOnClose)
	fprintf(out, "history_file=%s\n", cfg.HistoryFile)

	fprintln(out, "")
	fprintln(out, "# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		fprintln(out, "(defaults only)")

		return 0
	}

	if cfg.Sources.Global != "" {
		fprintln(out, "global_config="+cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		fprintln(out, "project_config="+cfg.Sources.Project)
	}

	return 0
}

func cmdConfigInit(out io.Writer, errOut io.Writer, cfg Config) int {
	path := filepath.Join(cfg.EffectiveCwd, ConfigFileName)

	if _, err := os.Stat(path); err == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", ErrConfigFileExists, path))

		return 1
	}

	if err := atomic.WriteFile(path, strings.NewReader(defaultConfigJSON)); err != nil {
		fprintln(errOut, "error:", fmt.Errorf("writing %s: %w", path, err))

		return 1
	}

	fprintln(out, "wrote", path)

	return 0
}

func printConfigHelp(out io.Writer) {
	fprintln(out, "Usage: fcat config [init]")
	fprintln(out, "")
	fprintln(out, "Without arguments, show the effective configuration and which")
	fprintln(out, "files it was loaded from. With 'init', write a default")
	fprintln(out, ".fcat.json into the working directory.")
}
