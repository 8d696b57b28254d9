package format_test

import (
	"testing"

	. "github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Canonical(t *testing.T) {
	require.Equal(t, ", ", Compact.ItemSeparator)
	require.Empty(t, Compact.LineBreak)
	require.Empty(t, Compact.Indent)
	require.Equal(t, " ", Compact.Space)

	require.Equal(t, ",\n", Pretty.ItemSeparator)
	require.Equal(t, "\n", Pretty.LineBreak)
	require.Equal(t, "  ", Pretty.Indent)
	require.Equal(t, " ", Pretty.Space)
}

func TestFormatter_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, Compact, New(Defaults))
	})

	t.Run("zero options keep keywords upper case", func(t *testing.T) {
		f := New(FormatterOptions{Layout: LayoutCompact})
		require.False(t, f.LowercaseKeywords)
		require.Equal(t, "SELECT", f.Keyword("select"))
	})

	t.Run("lowercase keywords", func(t *testing.T) {
		f := New(FormatterOptions{Layout: LayoutCompact, LowercaseKeywords: true})
		require.Equal(t, "select", f.Keyword("SELECT"))
		require.Equal(t, "order by", f.Keyword("ORDER BY"))
	})

	t.Run("custom indent", func(t *testing.T) {
		f := New(FormatterOptions{Layout: LayoutPretty, IndentSize: 4})
		require.Equal(t, "    ", f.Indent)
		require.Equal(t, "\n", f.LineBreak)
		require.Equal(t, "SELECT", f.Keyword("select"))
	})

	t.Run("indent ignored in compact layout", func(t *testing.T) {
		f := New(FormatterOptions{Layout: LayoutCompact, IndentSize: 4})
		require.Empty(t, f.Indent)
	})

	t.Run("unknown layout falls back to compact", func(t *testing.T) {
		f := New(FormatterOptions{Layout: "fancy"})
		require.Equal(t, Compact, f)
	})
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		expected Formatter
	}{
		{name: "empty", layout: "", expected: Compact},
		{name: "compact", layout: "compact", expected: Compact},
		{name: "pretty", layout: "pretty", expected: Pretty},
		{name: "mixed case with spaces", layout: "  Pretty ", expected: Pretty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseLayout(tt.layout)
			require.NoError(t, err)
			require.Equal(t, tt.expected, f)
		})
	}

	_, err := ParseLayout("fancy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown layout")
}

func TestFormatter_Helpers(t *testing.T) {
	t.Run("break", func(t *testing.T) {
		require.Equal(t, " ", Compact.Break())
		require.Equal(t, "\n", Pretty.Break())
	})

	t.Run("list", func(t *testing.T) {
		items := []string{"id", "login"}
		require.Equal(t, "id, login", Compact.List(items))
		require.Equal(t, "id,\n  login", Pretty.List(items))
		require.Empty(t, Compact.List(nil))
	})

	t.Run("nested", func(t *testing.T) {
		require.Equal(t, Compact, Compact.Nested())

		nested := Pretty.Nested()
		require.Equal(t, "\n  ", nested.LineBreak)
		require.Equal(t, ",\n  ", nested.ItemSeparator)
		require.Equal(t, Pretty.Indent, nested.Indent)
		require.True(t, nested.IsPretty())
		require.False(t, Compact.IsPretty())
	})
}
