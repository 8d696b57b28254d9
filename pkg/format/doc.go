// Package format provides the layout primitives used to render SQL statements.
//
// A Formatter is a small value holding four strings (item separator, line
// break, indent and space) plus the keyword case. Every statement renderer in
// the builder package receives a Formatter and derives all of its whitespace
// from it, so the same statement can be rendered on a single line or as an
// indented multi-line block without any change to the statement itself.
//
// Key features:
//   - Two canonical layouts: Compact and Pretty
//   - Configurable indent size and keyword casing through FormatterOptions
//   - Derived helpers (Break, List, Nested) shared by every clause renderer
//   - Pure values: rendering never mutates a Formatter
//
// Usage:
//
//	// Canonical layouts
//	sql := stmt.Render(format.Compact)
//	sql = stmt.Render(format.Pretty)
//
//	// Custom options
//	f := format.New(format.FormatterOptions{
//		Layout:            format.LayoutPretty,
//		IndentSize:        4,
//		LowercaseKeywords: true,
//	})
//
//	// Validating user input
//	f, err := format.ParseLayout("pretty")
//
// The compact layout of a SELECT reads:
//
//	SELECT id, login FROM users WHERE id = $1 AND active = true
//
// while the pretty layout of the same statement reads:
//
//	SELECT
//	  id,
//	  login
//	FROM
//	  users
//	WHERE
//	  id = $1
//	  AND active = true
package format
