package format

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// LayoutCompact renders every statement on a single line.
	LayoutCompact = "compact"

	// LayoutPretty renders one clause per line with indented items.
	LayoutPretty = "pretty"
)

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// Layout is either LayoutCompact or LayoutPretty
		Layout string
		// IndentSize specifies the number of spaces for each indent level (pretty layout only)
		IndentSize int
		// LowercaseKeywords renders SQL keywords in lower case. The zero value
		// keeps them upper case.
		LowercaseKeywords bool
	}

	// Formatter holds the layout primitives shared by every statement renderer.
	//
	// A Formatter is a plain value. Renderers never mutate it, so the same
	// statement rendered twice with the same Formatter yields identical text.
	Formatter struct {
		// ItemSeparator joins the items of a list clause (SELECT columns, GROUP BY, ...)
		ItemSeparator string
		// LineBreak is emitted between clauses; empty in the compact layout
		LineBreak string
		// Indent prefixes list items and conditions
		Indent string
		// Space separates a keyword from its argument
		Space string
		// LowercaseKeywords renders keywords in lower case
		LowercaseKeywords bool
	}
)

var (
	// Compact is the canonical single-line formatter.
	Compact = Formatter{
		ItemSeparator: ", ",
		Space:         " ",
	}

	// Pretty is the canonical multi-line formatter.
	Pretty = Formatter{
		ItemSeparator: ",\n",
		LineBreak:     "\n",
		Indent:        "  ",
		Space:         " ",
	}

	// Defaults are the options used when none are configured.
	Defaults = FormatterOptions{
		Layout:     LayoutCompact,
		IndentSize: 2,
	}
)

// New creates a Formatter from the given options. Unknown layouts fall back to
// the compact layout; use ParseLayout to validate user input first.
func New(options FormatterOptions) Formatter {
	f, err := ParseLayout(options.Layout)
	if err != nil {
		f = Compact
	}

	if f.LineBreak != "" && options.IndentSize > 0 {
		f.Indent = strings.Repeat(" ", options.IndentSize)
	}

	f.LowercaseKeywords = options.LowercaseKeywords
	return f
}

// ParseLayout returns the canonical formatter for the named layout. The empty
// name selects the compact layout.
func ParseLayout(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LayoutCompact:
		return Compact, nil
	case LayoutPretty:
		return Pretty, nil
	default:
		return Formatter{}, errors.Errorf("unknown layout: %q", name)
	}
}

// IsPretty reports whether the formatter produces multi-line output.
func (f Formatter) IsPretty() bool {
	return f.LineBreak != ""
}

// Break returns the separator emitted after every clause fragment: the line
// break when there is one, the space otherwise.
func (f Formatter) Break() string {
	if f.LineBreak != "" {
		return f.LineBreak
	}
	return f.Space
}

// Keyword formats a keyword according to the formatter options
func (f Formatter) Keyword(kw string) string {
	if f.LowercaseKeywords {
		return strings.ToLower(kw)
	}
	return strings.ToUpper(kw)
}

// List joins clause items with the item separator, indenting every item after
// the first. The caller is responsible for indenting the first item.
func (f Formatter) List(items []string) string {
	return strings.Join(items, f.ItemSeparator+f.Indent)
}

// Nested returns the formatter used for operands embedded in parentheses (CTE
// bodies). Every line break gains one indent level; the compact layout is
// returned unchanged.
func (f Formatter) Nested() Formatter {
	if f.LineBreak == "" {
		return f
	}

	nested := f
	nested.LineBreak = f.LineBreak + f.Indent
	nested.ItemSeparator = strings.ReplaceAll(f.ItemSeparator, "\n", "\n"+f.Indent)
	return nested
}
