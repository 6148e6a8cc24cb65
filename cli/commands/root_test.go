package commands

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiresSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{
		"init", "add", "update", "delete", "find",
		"get", "columns", "query", "docs", "version",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommandRejectsUnknownSubcommand(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"bogus"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	require.Error(t, cmd.Execute())
}
