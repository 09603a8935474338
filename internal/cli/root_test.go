package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/wastecalc/internal/cli"
)

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd("1.2.3")

	assert.Equal(t, "wastecalc", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("lang"))

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"calc", "about", "config"})
}

func TestRoot_RequiresTerminal(t *testing.T) {
	setupCLITest(t)

	// go test never runs with a terminal on stdout.
	_, err := execute(t)
	require.ErrorIs(t, err, cli.ErrNotInteractive)
}

func TestRoot_InvalidLang(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "--lang", "!!", "about")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --lang")
}

func TestRoot_Debug(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "--debug", "calc", "--category", "organic", "--weight", "1", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Price: 5000.0")
}

func TestAbout(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "english",
			args: []string{"about", "--plain"},
			want: []string{"Waste Price Calculator", "Copyright 2024"},
		},
		{
			name: "indonesian",
			args: []string{"--lang", "id_ID.UTF-8", "about", "--plain"},
			want: []string{"Kalkulator Harga Sampah", "Hak cipta 2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}
