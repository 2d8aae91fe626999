package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calvinalkan/fstream/internal/cli"
)

func Test_Config_Defaults_When_No_Files(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("config")

	cli.AssertContains(t, stdout, "number_lines=false")
	cli.AssertContains(t, stdout, "sync_on_close=false")
	cli.AssertContains(t, stdout, "(defaults only)")
}

func Test_Project_Config_When_Present(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	path := c.WriteFile(".fcat.json", `{"number_lines": true}`)

	stdout := c.MustRun("config")

	cli.AssertContains(t, stdout, "number_lines=true")
	cli.AssertContains(t, stdout, "sync_on_close=false")
	cli.AssertContains(t, stdout, "project_config="+path)
}

func Test_Project_Config_Allows_Comments_And_Trailing_Commas(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".fcat.json", `{
		// numbering on by default
		"number_lines": true,
	}`)

	stdout := c.MustRun("config")

	cli.AssertContains(t, stdout, "number_lines=true")
}

func Test_Global_Config_When_XDG_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	xdg := t.TempDir()
	c.Env["XDG_CONFIG_HOME"] = xdg

	globalPath := filepath.Join(xdg, "fcat", "config.json")
	if err := os.MkdirAll(filepath.Dir(globalPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(globalPath, []byte(`{"sync_on_close": true}`), 0o644); err != nil {
		t.Fatalf("write global config: %v", err)
	}

	stdout := c.MustRun("config")

	cli.AssertContains(t, stdout, "sync_on_close=true")
	cli.AssertContains(t, stdout, "global_config="+globalPath)
}

func Test_Project_Config_Overrides_Global(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	xdg := t.TempDir()
	c.Env["XDG_CONFIG_HOME"] = xdg

	globalPath := filepath.Join(xdg, "fcat", "config.json")
	if err := os.MkdirAll(filepath.Dir(globalPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(globalPath, []byte(`{"number_lines": true}`), 0o644); err != nil {
		t.Fatalf("write global config: %v", err)
	}

	// An explicit false in the project file must win over the global
	// true; absence would have let the global value through.
	c.WriteFile(".fcat.json", `{"number_lines": false}`)

	stdout := c.MustRun("config")

	cli.AssertContains(t, stdout, "number_lines=false")
}

func Test_Explicit_Config_When_Missing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--config", "nope.json", "config")

	cli.AssertContains(t, stderr, "config file not found")
	cli.AssertContains(t, stderr, "nope.json")
}

func Test_Explicit_Config_When_Present(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("custom.json", `{"number_lines": true}`)

	stdout := c.MustRun("--config", "custom.json", "config")

	cli.AssertContains(t, stdout, "number_lines=true")
	cli.AssertContains(t, stdout, "custom.json")
}

func Test_Malformed_Config_When_Loaded(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".fcat.json", `{"number_lines": `)

	stderr := c.MustFail("config")

	cli.AssertContains(t, stderr, "invalid config file")
}

func Test_History_File_When_Configured(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".fcat.json", `{"history_file": "/tmp/custom_history"}`)

	stdout := c.MustRun("config")

	cli.AssertContains(t, stdout, "history_file=/tmp/custom_history")
}
