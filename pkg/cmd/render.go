package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/builder"
	"github.com/pseudomuto/sqlasm/pkg/consts"
	"github.com/pseudomuto/sqlasm/pkg/recipe"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// render creates a CLI command that renders recipe files into SQL.
//
// The path may name a single recipe or a directory, in which case every
// *.sqlr file below it is rendered. Files are rendered concurrently but
// output is always written in lexical path order.
//
// Flags:
//   - --dialect, -d: target dialect, overriding the configured one
//   - --pretty, -p: use the pretty layout
//   - --write, -w: write <name>.sql beside each recipe instead of stdout
//   - --check: fail when a statement uses clauses the dialect does not support
//
// Examples:
//
//	sqlasm render queries/users.sqlr
//	sqlasm render --dialect pg --pretty -w queries/
func render() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render recipe files to SQL",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dialect",
				Aliases: []string{"d"},
				Usage:   "the target dialect (overrides the config)",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:    "pretty",
				Aliases: []string{"p"},
				Usage:   "Render one clause per line",
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write <name>.sql beside each recipe instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Fail when a statement uses clauses the dialect does not support",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			opts, err := renderOptionsFrom(cmd)
			if err != nil {
				return err
			}

			return renderPath(ctx, cmd.Args().First(), opts, cmd.Writer)
		},
	}
}

func renderPath(ctx context.Context, path string, opts renderOptions, w io.Writer) error {
	files, err := findRecipes(path)
	if err != nil {
		return err
	}

	outputs := make([][]byte, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			out, err := renderFile(file, opts)
			if err != nil {
				return errors.Wrapf(err, "failed to render file: %s", file)
			}

			if opts.write {
				if err := os.WriteFile(outputPath(file), out, consts.ModeFile); err != nil {
					return errors.Wrapf(err, "failed to write rendered SQL for: %s", file)
				}
				return nil
			}

			outputs[i] = out
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	written := false
	for _, out := range outputs {
		if len(out) == 0 {
			continue
		}
		if written {
			out = append([]byte("\n"), out...)
		}
		if _, err := w.Write(out); err != nil {
			return errors.Wrap(err, "failed to write rendered SQL to output")
		}
		written = true
	}

	return nil
}

// renderFile parses, evaluates and renders a single recipe.
func renderFile(path string, opts renderOptions) ([]byte, error) {
	r, err := recipe.ParseFile(path)
	if err != nil {
		return nil, err
	}

	stmts, err := recipe.NewEvaluator(builder.For(opts.dialect)).Eval(r)
	if err != nil {
		return nil, err
	}

	if opts.check {
		if err := recipe.Check(stmts...); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := recipe.Render(&buf, opts.formatter, stmts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
