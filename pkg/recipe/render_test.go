package recipe_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/builder"
	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	. "github.com/pseudomuto/sqlasm/pkg/recipe"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(
		&buf,
		format.Compact,
		builder.NewSelect().Select("1"),
		builder.NewSelect(),
		builder.Raw("COMMIT;"),
	))
	require.Equal(t, "SELECT 1;\n\nCOMMIT;\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, format.Compact, builder.NewSelect()))
	require.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, format.Compact, builder.NewSelect().Select("1"))
	require.EqualError(t, err, "failed to write statements: disk full")
}

func TestCheck(t *testing.T) {
	ok := builder.NewSelect().Select("1")
	bad := builder.For(dialect.Standard).NewSelect().Select("1").Limit("1")

	require.NoError(t, Check(ok, builder.Raw("SELECT 2")))

	err := Check(ok, bad)
	require.ErrorIs(t, err, builder.ErrUnsupportedClause)
	require.ErrorContains(t, err, "statement 2")
}

func TestRenderGoldenFiles(t *testing.T) {
	files, err := filepath.Glob("testdata/*.sqlr")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".sqlr")

		t.Run(name, func(t *testing.T) {
			r, err := ParseFile(file)
			require.NoError(t, err)

			stmts, err := NewEvaluator(builder.For(dialect.PostgreSQL)).Eval(r)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Render(&buf, format.Pretty, stmts...))
			golden.Assert(t, buf.String(), name+".sql")
		})
	}
}
