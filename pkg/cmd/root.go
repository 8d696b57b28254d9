package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/config"
	"github.com/pseudomuto/sqlasm/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

// currentConfig is the configuration commands render with. It starts as the
// config provided by the config module and is replaced when --config is given.
var currentConfig *config.Config

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the sqlasm CLI application once the fx app starts.
//
// Global Flags:
//   - --config, -c: the config file (defaults to sqlasm.yaml, env SQLASM_CONFIG)
//
// When --config is not given the config loaded by the config module is used,
// which is nil outside of a configured project. Commands then fall back to the
// standard dialect and the compact layout.
//
// Errors are logged and turn into a non-zero exit code.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	currentConfig = p.Config
	app := newApp(p.Version.Version, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(version string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "sqlasm",
		Usage: "Assemble SQL statements from builder recipes",
		Description: `sqlasm renders recipe files (chains of SQL builder calls) into SQL text
for a target dialect, in a compact or pretty layout.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlasm config file",
				Sources: cli.EnvVars(config.EnvConfigFile),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before:   loadConfig,
		Commands: commands,
	}
}

// loadConfig replaces the current config when --config was given explicitly.
func loadConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if !cmd.IsSet("config") {
		return ctx, nil
	}

	cfg, err := config.LoadConfigFile(cmd.String("config"))
	if err != nil {
		return ctx, errors.Wrap(err, "failed to load config")
	}

	currentConfig = cfg
	return ctx, nil
}
