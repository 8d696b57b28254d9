// Package dialect describes the SQL flavors the builder package can target.
//
// A Dialect is a capability table: a name plus one switch per optional
// Feature (WITH, LIMIT/OFFSET, RETURNING, partitioning, transaction
// commands, ...). Four canonical dialects are provided:
//
//   - Standard: clauses from the SQL standard (WITH, set operations, START TRANSACTION)
//   - PostgreSQL
//   - SQLite
//   - MySQL
//
// Builders bound to a dialect leave unsupported clauses out of their
// rendering pipeline, and report them through Check:
//
//	stmt := builder.For(dialect.PostgreSQL).NewSelect().
//		Select("id").
//		From("users").
//		Limit("10")
//
// Custom dialects are derived from a canonical one:
//
//	noReturning := dialect.Custom("pg-legacy", dialect.PostgreSQL, map[dialect.Feature]bool{
//		dialect.FeatureReturning: false,
//	})
package dialect
