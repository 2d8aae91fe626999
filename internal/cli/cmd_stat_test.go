package cli_test

import (
	"testing"

	"github.com/calvinalkan/fstream/internal/cli"
)

func Test_Stat_Reports_Metadata_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	path := c.WriteFile("a.txt", "12345")

	stdout := c.MustRun("stat", "a.txt")

	cli.AssertContains(t, stdout, "path="+path)
	cli.AssertContains(t, stdout, "size=5")
	cli.AssertContains(t, stdout, "block_size=")
	cli.AssertContains(t, stdout, "buffer_capacity=")
	cli.AssertContains(t, stdout, "mode=read")
	cli.AssertContains(t, stdout, "can_read=true")
	cli.AssertContains(t, stdout, "can_write=false")
}

func Test_Stat_Fails_When_File_Missing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("stat", "missing.txt")

	cli.AssertContains(t, stderr, "not found")
}

func Test_Stat_Requires_Exactly_One_File(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("stat")

	cli.AssertContains(t, stderr, "requires exactly one file")
}
