package builder

import (
	"slices"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
)

// DeleteClause identifies a clause of a DELETE statement.
type DeleteClause int

const (
	DeleteWith DeleteClause = iota
	DeleteDeleteFrom
	DeletePartition
	DeleteUsing
	DeleteJoin
	DeleteWhere
	DeleteOrderBy
	DeleteLimit
	DeleteReturning
)

var deleteClauseNames = []string{
	"With", "DeleteFrom", "Partition", "Using", "Join", "Where", "OrderBy", "Limit", "Returning",
}

func (c DeleteClause) String() string {
	return clauseName(deleteClauseNames, int(c))
}

// Delete builds a DELETE statement.
type Delete struct {
	base[DeleteClause]

	with      []cte
	table     string
	partition []string
	using     []string
	joins     []join
	where     conditions
	orderBy   []string
	limit     string
	returning []string
}

// DeleteFrom sets the target table. The last call wins.
func (d *Delete) DeleteFrom(table string) *Delete {
	d.table = setSlot(table)
	return d
}

// Partition adds target partitions.
func (d *Delete) Partition(names string) *Delete {
	d.partition = pushUnique(d.partition, names)
	return d
}

// Using adds a table reference to DELETE ... USING.
func (d *Delete) Using(tables string) *Delete {
	d.using = pushUnique(d.using, tables)
	return d
}

// Join adds a complete join clause.
func (d *Delete) Join(clause string) *Delete {
	d.joins = pushJoin(d.joins, "", clause)
	return d
}

// InnerJoin adds an INNER JOIN.
func (d *Delete) InnerJoin(table string) *Delete {
	d.joins = pushJoin(d.joins, "INNER JOIN", table)
	return d
}

// LeftJoin adds a LEFT JOIN.
func (d *Delete) LeftJoin(table string) *Delete {
	d.joins = pushJoin(d.joins, "LEFT JOIN", table)
	return d
}

// Where adds a condition joined with AND.
func (d *Delete) Where(cond string) *Delete {
	d.where = d.where.push(opAnd, cond)
	return d
}

// WhereAnd is an alias of Where.
func (d *Delete) WhereAnd(cond string) *Delete {
	return d.Where(cond)
}

// WhereOr adds a condition joined with OR.
func (d *Delete) WhereOr(cond string) *Delete {
	d.where = d.where.push(opOr, cond)
	return d
}

// OrderBy adds ordering expressions.
func (d *Delete) OrderBy(exprs string) *Delete {
	d.orderBy = pushUnique(d.orderBy, exprs)
	return d
}

// Limit sets the LIMIT value. An empty value clears it.
func (d *Delete) Limit(n string) *Delete {
	d.limit = setSlot(n)
	return d
}

// Returning adds RETURNING expressions.
func (d *Delete) Returning(exprs string) *Delete {
	d.returning = pushUnique(d.returning, exprs)
	return d
}

// With adds a common table expression. The statement is copied.
func (d *Delete) With(name string, stmt Statement) *Delete {
	d.with = pushCTE(d.with, name, stmt)
	return d
}

// Raw adds text emitted ahead of every clause.
func (d *Delete) Raw(text string) *Delete {
	d.addRaw(text)
	return d
}

// RawBefore adds text emitted right before the given clause.
func (d *Delete) RawBefore(c DeleteClause, text string) *Delete {
	d.frags.addBefore(c, text)
	return d
}

// RawAfter adds text emitted right after the given clause.
func (d *Delete) RawAfter(c DeleteClause, text string) *Delete {
	d.frags.addAfter(c, text)
	return d
}

// Clone returns an independent copy of the statement.
func (d *Delete) Clone() *Delete {
	c := *d
	c.base = d.cloneBase()
	c.with = slices.Clone(d.with)
	c.partition = slices.Clone(d.partition)
	c.using = slices.Clone(d.using)
	c.joins = slices.Clone(d.joins)
	c.where = slices.Clone(d.where)
	c.orderBy = slices.Clone(d.orderBy)
	c.returning = slices.Clone(d.returning)
	return &c
}

func (d *Delete) cloneStatement() Statement {
	return d.Clone()
}

// Check reports clauses the bound dialect does not accept.
func (d *Delete) Check() error {
	return d.check("DELETE", d.steps())
}

// Render implements Statement.
func (d *Delete) Render(f format.Formatter) string {
	return d.concat(f, d.steps()...)
}

// String renders the statement on a single line.
func (d *Delete) String() string {
	return d.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (d *Delete) Pretty() string {
	return d.Render(format.Pretty)
}

func (d *Delete) steps() []step[DeleteClause] {
	return []step[DeleteClause]{
		{
			clause:  DeleteWith,
			feature: dialect.FeatureWith,
			set:     len(d.with) > 0,
			render:  func(f format.Formatter) string { return renderWith(f, d.with) },
		},
		{
			clause: DeleteDeleteFrom,
			render: func(f format.Formatter) string { return slotClause(f, "DELETE FROM", d.table) },
		},
		{
			clause:  DeletePartition,
			feature: dialect.FeaturePartition,
			set:     len(d.partition) > 0,
			render:  func(f format.Formatter) string { return inlineClause(f, "PARTITION", d.partition) },
		},
		{
			clause:  DeleteUsing,
			feature: dialect.FeatureDeleteUsing,
			set:     len(d.using) > 0,
			render:  func(f format.Formatter) string { return listClause(f, "USING", d.using) },
		},
		{
			clause:  DeleteJoin,
			feature: dialect.FeatureJoinInMutation,
			set:     len(d.joins) > 0,
			render:  func(f format.Formatter) string { return renderJoins(f, d.joins) },
		},
		{
			clause: DeleteWhere,
			render: func(f format.Formatter) string { return d.where.render(f, "WHERE") },
		},
		{
			clause:  DeleteOrderBy,
			feature: dialect.FeatureOrderLimitInMutation,
			set:     len(d.orderBy) > 0,
			render:  func(f format.Formatter) string { return listClause(f, "ORDER BY", d.orderBy) },
		},
		{
			clause:  DeleteLimit,
			feature: dialect.FeatureOrderLimitInMutation,
			set:     d.limit != "",
			render:  func(f format.Formatter) string { return slotClause(f, "LIMIT", d.limit) },
		},
		{
			clause:  DeleteReturning,
			feature: dialect.FeatureReturning,
			set:     len(d.returning) > 0,
			render:  func(f format.Formatter) string { return listClause(f, "RETURNING", d.returning) },
		},
	}
}
