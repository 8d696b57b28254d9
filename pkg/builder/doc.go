// Package builder assembles SQL text from chained clause calls.
//
// Every statement kind (Select, Insert, Update, Delete, CreateTable, AlterTable,
// CreateIndex, DropTable, DropIndex, Values, Transaction) is a mutable builder
// whose methods return the receiver. Fragments are never parsed: the builder
// only decides where each fragment goes.
//
// # Clause order
//
// Each statement kind renders its clauses in a fixed order, so the call order
// does not matter:
//
//	builder.NewSelect().From("users").Select("id").String()
//	// SELECT id FROM users
//
// # Accumulation rules
//
//   - List clauses (SELECT columns, FROM, GROUP BY, ...) accumulate and skip
//     values they already hold.
//   - Single slots (LIMIT, UPDATE target, ...) keep the last value; an empty
//     value clears them.
//   - WHERE and HAVING conditions are joined with AND or OR and skip conditions
//     they already hold.
//
// All input is trimmed first, and whitespace-only input is ignored.
//
// # Raw text
//
// Raw adds text ahead of the statement; RawBefore and RawAfter splice text next
// to a clause, even one holding nothing:
//
//	builder.NewSelect().
//		Select("id").
//		From("users").
//		RawBefore(builder.SelectWhere, "/* tenant filter */").
//		String()
//	// SELECT id FROM users /* tenant filter */
//
// # Composition
//
// Statements embed other statements as common table expressions (With), set
// operation operands (Union, Intersect, Except) and INSERT sources
// (Insert.Select). Embedding copies the operand, so later changes to it do not
// leak into the parent.
//
// # Layout and dialects
//
// Render lays a statement out with a format.Formatter; String and Pretty use
// the canonical compact and pretty formatters. Statements created from a
// Factory are bound to a dialect.Dialect: clauses the dialect lacks are left
// out of the output and reported by Check.
package builder
