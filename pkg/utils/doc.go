// Package utils provides small text helpers shared by the builder and recipe
// packages.
//
// # Parentheses
//
// Parens and ParensUnlessPresent wrap clause fragments:
//
//	utils.Parens("SELECT 1")            // (SELECT 1)
//	utils.Parens("")                    // "" (empty operands never become "()")
//	utils.ParensUnlessPresent("id")     // (id)
//	utils.ParensUnlessPresent("(id)")   // (id)
//
// ParensUnlessPresent only looks for a "(" anywhere in the text; it is a
// convenience for PRIMARY KEY style clauses, not a parser.
//
// # Joining
//
// JoinNonEmpty drops empty parts before joining:
//
//	utils.JoinNonEmpty(" ", "a", "", "b") // a b
//
// # Naming
//
// PascalCase turns recipe method names into Go method names:
//
//	utils.PascalCase("where_clause") // WhereClause
//	utils.PascalCase("innerJoin")    // InnerJoin
package utils
