package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlasm/pkg/config"
	"github.com/pseudomuto/sqlasm/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestApp_ConfigFlag(t *testing.T) {
	initial := &config.Config{Dialect: "standard"}

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: mysql\nlayout: pretty\n"), consts.ModeFile))

	tests := []struct {
		name     string
		args     []string
		expected string
		err      string
	}{
		{name: "keeps provided config", args: []string{"sqlasm"}, expected: "standard"},
		{name: "loads explicit config", args: []string{"sqlasm", "--config", path}, expected: "mysql"},
		{name: "missing config", args: []string{"sqlasm", "-c", filepath.Join(t.TempDir(), "nope.yaml")}, err: "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvConfigFile, "")
			require.NoError(t, os.Unsetenv(config.EnvConfigFile))
			withConfig(t, initial)

			var seen *config.Config
			app := newApp("v0.0.0", nil)
			app.Action = func(context.Context, *cli.Command) error {
				seen = currentConfig
				return nil
			}

			err := app.Run(context.Background(), tt.args)
			if tt.err != "" {
				require.ErrorContains(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, seen.Dialect)
		})
	}
}
