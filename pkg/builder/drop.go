package builder

import (
	"slices"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
)

// DropTableClause identifies a clause of a DROP TABLE statement.
type DropTableClause int

const (
	DropTableDropTable DropTableClause = iota
)

func (c DropTableClause) String() string {
	return clauseName([]string{"DropTable"}, int(c))
}

// DropIndexClause identifies a clause of a DROP INDEX statement.
type DropIndexClause int

const (
	DropIndexDropIndex DropIndexClause = iota
)

func (c DropIndexClause) String() string {
	return clauseName([]string{"DropIndex"}, int(c))
}

// dropTarget holds the names of a DROP statement. Names accumulate; dialects
// without FeatureMultiDropNames only render the last one.
type dropTarget struct {
	names    []string
	ifExists bool
}

func (t *dropTarget) push(names string, ifExists bool) {
	t.names = pushUnique(t.names, names)
	t.ifExists = t.ifExists || ifExists
}

func (t dropTarget) clone() dropTarget {
	return dropTarget{names: slices.Clone(t.names), ifExists: t.ifExists}
}

func (t dropTarget) render(f format.Formatter, d dialect.Dialect, keyword string) string {
	if len(t.names) == 0 {
		return ""
	}

	if t.ifExists {
		keyword += " IF EXISTS"
	}

	names := t.names[len(t.names)-1]
	if d.Supports(dialect.FeatureMultiDropNames) {
		names = f.List(t.names)
	}
	return f.Keyword(keyword) + f.Space + names + f.Break()
}

// DropTable builds a DROP TABLE statement.
//
// Example:
//
//	builder.For(dialect.PostgreSQL).NewDropTable().
//		DropTableIfExists("users").
//		DropTable("orders")
//	// DROP TABLE IF EXISTS users, orders
type DropTable struct {
	base[DropTableClause]

	target dropTarget
}

// DropTable adds table names.
func (d *DropTable) DropTable(names string) *DropTable {
	d.target.push(names, false)
	return d
}

// DropTableIfExists adds table names and IF EXISTS.
func (d *DropTable) DropTableIfExists(names string) *DropTable {
	d.target.push(names, true)
	return d
}

// Raw adds text emitted ahead of every clause.
func (d *DropTable) Raw(text string) *DropTable {
	d.addRaw(text)
	return d
}

// RawBefore adds text emitted right before the given clause.
func (d *DropTable) RawBefore(c DropTableClause, text string) *DropTable {
	d.frags.addBefore(c, text)
	return d
}

// RawAfter adds text emitted right after the given clause.
func (d *DropTable) RawAfter(c DropTableClause, text string) *DropTable {
	d.frags.addAfter(c, text)
	return d
}

// Clone returns an independent copy of the statement.
func (d *DropTable) Clone() *DropTable {
	return &DropTable{base: d.cloneBase(), target: d.target.clone()}
}

func (d *DropTable) cloneStatement() Statement {
	return d.Clone()
}

// Check always succeeds: every dialect accepts DROP TABLE.
func (d *DropTable) Check() error {
	return d.check("DROP TABLE", d.steps())
}

// Render implements Statement.
func (d *DropTable) Render(f format.Formatter) string {
	return d.concat(f, d.steps()...)
}

// String renders the statement on a single line.
func (d *DropTable) String() string {
	return d.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (d *DropTable) Pretty() string {
	return d.Render(format.Pretty)
}

func (d *DropTable) steps() []step[DropTableClause] {
	return []step[DropTableClause]{
		{
			clause: DropTableDropTable,
			render: func(f format.Formatter) string { return d.target.render(f, d.dialect, "DROP TABLE") },
		},
	}
}

// DropIndex builds a DROP INDEX statement. Dialects without index support
// render nothing but raw text.
type DropIndex struct {
	base[DropIndexClause]

	target dropTarget
}

// DropIndex adds index names.
func (d *DropIndex) DropIndex(names string) *DropIndex {
	d.target.push(names, false)
	return d
}

// DropIndexIfExists adds index names and IF EXISTS.
func (d *DropIndex) DropIndexIfExists(names string) *DropIndex {
	d.target.push(names, true)
	return d
}

// Raw adds text emitted ahead of every clause.
func (d *DropIndex) Raw(text string) *DropIndex {
	d.addRaw(text)
	return d
}

// RawBefore adds text emitted right before the given clause.
func (d *DropIndex) RawBefore(c DropIndexClause, text string) *DropIndex {
	d.frags.addBefore(c, text)
	return d
}

// RawAfter adds text emitted right after the given clause.
func (d *DropIndex) RawAfter(c DropIndexClause, text string) *DropIndex {
	d.frags.addAfter(c, text)
	return d
}

// Clone returns an independent copy of the statement.
func (d *DropIndex) Clone() *DropIndex {
	return &DropIndex{base: d.cloneBase(), target: d.target.clone()}
}

func (d *DropIndex) cloneStatement() Statement {
	return d.Clone()
}

// Check reports a DROP INDEX bound to a dialect without index support.
func (d *DropIndex) Check() error {
	return d.check("DROP INDEX", d.steps())
}

// Render implements Statement.
func (d *DropIndex) Render(f format.Formatter) string {
	return d.concat(f, d.steps()...)
}

// String renders the statement on a single line.
func (d *DropIndex) String() string {
	return d.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (d *DropIndex) Pretty() string {
	return d.Render(format.Pretty)
}

func (d *DropIndex) steps() []step[DropIndexClause] {
	return []step[DropIndexClause]{
		{
			clause:  DropIndexDropIndex,
			feature: dialect.FeatureIndex,
			set:     len(d.target.names) > 0,
			render:  func(f format.Formatter) string { return d.target.render(f, d.dialect, "DROP INDEX") },
		},
	}
}
