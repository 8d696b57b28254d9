package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialects creates a CLI command printing the capability table of every known
// dialect: the canonical ones followed by those declared in the config.
//
// Example output:
//
//	FEATURE            mysql  postgresql  sqlite  standard
//	with               yes    yes         yes     yes
//	limit_offset       yes    yes         yes     -
//	...
func dialects() *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the features supported by each dialect",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			known, err := knownDialects()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.Writer, 0, 0, 2, ' ', 0)

			header := []string{"FEATURE"}
			for _, d := range known {
				header = append(header, d.Name())
			}
			fmt.Fprintln(tw, strings.Join(header, "\t"))

			for _, f := range dialect.Features() {
				row := []string{f.String()}
				for _, d := range known {
					row = append(row, supportMark(d.Supports(f)))
				}
				fmt.Fprintln(tw, strings.Join(row, "\t"))
			}

			return errors.Wrap(tw.Flush(), "failed to write dialect table")
		},
	}
}

func knownDialects() ([]dialect.Dialect, error) {
	var known []dialect.Dialect
	for _, name := range dialect.Names() {
		d, err := dialect.Lookup(name)
		if err != nil {
			return nil, err
		}
		known = append(known, d)
	}

	if currentConfig != nil {
		for _, custom := range currentConfig.Dialects {
			d, err := currentConfig.LookupDialect(custom.Name)
			if err != nil {
				return nil, err
			}
			known = append(known, d)
		}
	}

	return known, nil
}

func supportMark(ok bool) string {
	if ok {
		return "yes"
	}
	return "-"
}
