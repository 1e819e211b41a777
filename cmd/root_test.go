package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// execute runs the root command with args against an empty config dir.
func execute(t *testing.T, args ...string) (string, int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TABLERO_THEME_FILE", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	code := Execute()
	return out.String(), code
}

func TestRoutesCommand(t *testing.T) {
	out, code := execute(t, "routes", "--quiet")

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, []string{"/", "/kanban"}, strings.Fields(out))
}

func TestRoutesCommand_NotFound(t *testing.T) {
	out, code := execute(t, "routes", "/missing")

	assert.Equal(t, cli.ExitNotFound, code)
	assert.Equal(t, 1, strings.Count(out, "/missing"), "error is printed once")
}

func TestRoutesCommand_ConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key_mappings: ["), 0o644))

	_, code := execute(t, "routes", "--config", path)
	assert.Equal(t, cli.ExitError, code)
}

func TestUnknownFlag(t *testing.T) {
	_, code := execute(t, "routes", "--bogus")
	assert.Equal(t, cli.ExitUsage, code)
}

// resetFlags puts every flag back to its default, since rootCmd is shared
// between tests.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}
