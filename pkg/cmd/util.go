package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/config"
	"github.com/pseudomuto/sqlasm/pkg/consts"
	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/urfave/cli/v3"
)

type renderOptions struct {
	dialect   dialect.Dialect
	formatter format.Formatter
	check     bool
	write     bool
}

// renderOptionsFrom merges the command flags over the current config.
func renderOptionsFrom(cmd *cli.Command) (renderOptions, error) {
	cfg := currentConfig
	if cmd.Bool("pretty") {
		pretty := config.Config{IndentSize: consts.DefaultIndentSize}
		if cfg != nil {
			pretty = *cfg
		}
		pretty.Layout = format.LayoutPretty
		cfg = &pretty
	}

	d, err := cfg.GetDialect()
	if cmd.IsSet("dialect") {
		d, err = cfg.LookupDialect(cmd.String("dialect"))
	}
	if err != nil {
		return renderOptions{}, err
	}

	return renderOptions{
		dialect:   d,
		formatter: cfg.GetFormatter(),
		check:     cmd.Bool("check"),
		write:     cmd.Bool("write"),
	}, nil
}

// findRecipes returns path itself when it is a file, or every recipe below it
// in lexical order when it is a directory.
func findRecipes(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.RecipeExt) {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no recipe files found in directory: %s", path)
	}

	return files, nil
}

// outputPath maps users.sqlr to users.sql.
func outputPath(recipePath string) string {
	return strings.TrimSuffix(recipePath, filepath.Ext(recipePath)) + consts.OutputExt
}
