package cli_test

import (
	"strings"
	"testing"

	"github.com/calvinalkan/fstream/internal/cli"
)

func Test_Copy_Copies_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("src.txt", "some sample content\nwith two lines\n")

	stdout := c.MustRun("copy", "src.txt", "dst.txt")

	cli.AssertContains(t, stdout, "copied 35 bytes")

	if got, want := c.ReadFile("dst.txt"), c.ReadFile("src.txt"); got != want {
		t.Errorf("dst=%q, want=%q", got, want)
	}
}

func Test_Copy_Truncates_Destination_When_Exists(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("src.txt", "new")
	c.WriteFile("dst.txt", "much longer old content")

	c.MustRun("copy", "src.txt", "dst.txt")

	if got, want := c.ReadFile("dst.txt"), "new"; got != want {
		t.Errorf("dst=%q, want=%q", got, want)
	}
}

func Test_Copy_Appends_When_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("src.txt", "-tail")
	c.WriteFile("dst.txt", "head")

	c.MustRun("copy", "--append", "src.txt", "dst.txt")

	if got, want := c.ReadFile("dst.txt"), "head-tail"; got != want {
		t.Errorf("dst=%q, want=%q", got, want)
	}
}

func Test_Copy_Honors_Chunk_Flag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	// A chunk that does not divide the length forces a short final step.
	content := strings.Repeat("0123456789", 10) + "x"
	c.WriteFile("src.bin", content)

	c.MustRun("copy", "--chunk=7", "src.bin", "dst.bin")

	if got, want := c.ReadFile("dst.bin"), content; got != want {
		t.Errorf("dst=%q, want=%q", got, want)
	}
}

func Test_Copy_Rejects_Bad_Chunk(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("src.txt", "data")

	stderr := c.MustFail("copy", "--chunk=0", "src.txt", "dst.txt")

	cli.AssertContains(t, stderr, "--chunk must be positive")
}

func Test_Copy_Fails_When_Source_Missing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("copy", "missing.txt", "dst.txt")

	cli.AssertContains(t, stderr, "open missing.txt")
	cli.AssertContains(t, stderr, "not found")
}

func Test_Copy_Syncs_When_Config_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".fcat.json", `{"sync_on_close": true}`)
	c.WriteFile("src.txt", "durable bytes")

	stdout := c.MustRun("copy", "src.txt", "dst.txt")

	cli.AssertContains(t, stdout, "copied 13 bytes")

	if got, want := c.ReadFile("dst.txt"), "durable bytes"; got != want {
		t.Errorf("dst=%q, want=%q", got, want)
	}
}

func Test_Copy_Requires_Two_Files(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("src.txt", "data")

	stderr := c.MustFail("copy", "src.txt")

	cli.AssertContains(t, stderr, "requires a source and a destination")
}
