package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Parens wraps text in parentheses. Empty text stays empty so that empty
// operands never render as "()".
//
// Examples:
//   - "SELECT 1" -> "(SELECT 1)"
//   - "" -> ""
func Parens(text string) string {
	if text == "" {
		return ""
	}
	return "(" + text + ")"
}

// ParensUnlessPresent wraps text in parentheses unless it already contains an
// opening parenthesis anywhere. This is a convenience for key-style clauses, not
// a SQL parser: "id, (login)" is left untouched even though the result is not a
// valid column list.
//
// Examples:
//   - "id" -> "(id)"
//   - "(id, login)" -> "(id, login)"
//   - "" -> ""
func ParensUnlessPresent(text string) string {
	if strings.Contains(text, "(") {
		return text
	}
	return Parens(text)
}

// JoinNonEmpty joins the non-empty parts with sep.
//
// Examples:
//   - (" ", "a", "", "b") -> "a b"
//   - (" ", "", "") -> ""
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// PascalCase converts snake_case and camelCase names to PascalCase, which is how
// exported Go methods are spelled.
//
// Examples:
//   - "where_clause" -> "WhereClause"
//   - "innerJoin" -> "InnerJoin"
//   - "Select" -> "Select"
func PascalCase(name string) string {
	// Casers are stateful and must not be shared between goroutines.
	caser := cases.Title(language.Und, cases.NoLower)
	parts := strings.Split(strings.TrimSpace(name), "_")
	for i, part := range parts {
		parts[i] = caser.String(part)
	}
	return strings.Join(parts, "")
}
