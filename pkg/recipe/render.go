package recipe

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/builder"
	"github.com/pseudomuto/sqlasm/pkg/format"
)

// Render writes the statements laid out by f, separated by a blank line. Every
// statement is terminated with a semicolon and empty statements are skipped.
// Nothing is written when every statement is empty.
func Render(w io.Writer, f format.Formatter, stmts ...builder.Statement) error {
	parts := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		sql := strings.TrimSpace(stmt.Render(f))
		if sql == "" {
			continue
		}
		if !strings.HasSuffix(sql, ";") {
			sql += ";"
		}
		parts = append(parts, sql)
	}

	if len(parts) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, strings.Join(parts, "\n\n")+"\n"); err != nil {
		return errors.Wrap(err, "failed to write statements")
	}
	return nil
}

// Check runs Check on every statement that supports it and returns the first
// failure.
func Check(stmts ...builder.Statement) error {
	for i, stmt := range stmts {
		checker, ok := stmt.(interface{ Check() error })
		if !ok {
			continue
		}
		if err := checker.Check(); err != nil {
			return errors.Wrapf(err, "statement %d", i+1)
		}
	}
	return nil
}
