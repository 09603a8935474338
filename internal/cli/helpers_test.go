package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/wastecalc/internal/cli"
	"github.com/rshade/wastecalc/internal/config"
)

// setupCLITest isolates the config directory and environment, and resets the
// global config around the test.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLang, "")
	t.Setenv(config.EnvShareMethod, "none")
	t.Setenv(config.EnvStrictWeight, "")
	t.Setenv("LANG", "")
	t.Setenv("NO_COLOR", "1")

	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	require.NotNil(t, cmd)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
