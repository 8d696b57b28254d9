package builder

import (
	"slices"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
)

// UpdateClause identifies a clause of an UPDATE statement.
type UpdateClause int

const (
	UpdateWith UpdateClause = iota
	// UpdateUpdate covers UPDATE and UPDATE OR.
	UpdateUpdate
	UpdateJoin
	UpdateSet
	UpdateFrom
	UpdateWhere
	UpdateOrderBy
	UpdateLimit
	UpdateReturning
)

var updateClauseNames = []string{
	"With", "Update", "Join", "Set", "From", "Where", "OrderBy", "Limit", "Returning",
}

func (c UpdateClause) String() string {
	return clauseName(updateClauseNames, int(c))
}

// Update builds an UPDATE statement. The target table is a single slot: the
// last Update or UpdateOr call wins.
type Update struct {
	base[UpdateClause]

	with         []cte
	tableKeyword string
	tableFeature dialect.Feature
	table        string
	joins        []join
	set          []string
	from         []string
	where        conditions
	orderBy      []string
	limit        string
	returning    []string
}

// Update sets the target table.
func (u *Update) Update(table string) *Update {
	return u.setTable("UPDATE", dialect.FeatureAlways, table)
}

// UpdateOr sets an UPDATE OR target, e.g. "IGNORE users".
func (u *Update) UpdateOr(expr string) *Update {
	return u.setTable("UPDATE OR", dialect.FeatureInsertOr, expr)
}

func (u *Update) setTable(keyword string, feature dialect.Feature, value string) *Update {
	u.tableKeyword = keyword
	u.tableFeature = feature
	u.table = setSlot(value)
	return u
}

// Join adds a complete join clause.
func (u *Update) Join(clause string) *Update {
	u.joins = pushJoin(u.joins, "", clause)
	return u
}

// InnerJoin adds an INNER JOIN.
func (u *Update) InnerJoin(table string) *Update {
	u.joins = pushJoin(u.joins, "INNER JOIN", table)
	return u
}

// LeftJoin adds a LEFT JOIN.
func (u *Update) LeftJoin(table string) *Update {
	u.joins = pushJoin(u.joins, "LEFT JOIN", table)
	return u
}

// RightJoin adds a RIGHT JOIN.
func (u *Update) RightJoin(table string) *Update {
	u.joins = pushJoin(u.joins, "RIGHT JOIN", table)
	return u
}

// CrossJoin adds a CROSS JOIN.
func (u *Update) CrossJoin(table string) *Update {
	u.joins = pushJoin(u.joins, "CROSS JOIN", table)
	return u
}

// Set adds assignments, e.g. "name = 'Foo'".
func (u *Update) Set(assignments string) *Update {
	u.set = pushUnique(u.set, assignments)
	return u
}

// From adds a table reference to UPDATE ... FROM.
func (u *Update) From(tables string) *Update {
	u.from = pushUnique(u.from, tables)
	return u
}

// Where adds a condition joined with AND.
func (u *Update) Where(cond string) *Update {
	u.where = u.where.push(opAnd, cond)
	return u
}

// WhereAnd is an alias of Where.
func (u *Update) WhereAnd(cond string) *Update {
	return u.Where(cond)
}

// WhereOr adds a condition joined with OR.
func (u *Update) WhereOr(cond string) *Update {
	u.where = u.where.push(opOr, cond)
	return u
}

// OrderBy adds ordering expressions.
func (u *Update) OrderBy(exprs string) *Update {
	u.orderBy = pushUnique(u.orderBy, exprs)
	return u
}

// Limit sets the LIMIT value. An empty value clears it.
func (u *Update) Limit(n string) *Update {
	u.limit = setSlot(n)
	return u
}

// Returning adds RETURNING expressions.
func (u *Update) Returning(exprs string) *Update {
	u.returning = pushUnique(u.returning, exprs)
	return u
}

// With adds a common table expression. The statement is copied.
func (u *Update) With(name string, stmt Statement) *Update {
	u.with = pushCTE(u.with, name, stmt)
	return u
}

// Raw adds text emitted ahead of every clause.
func (u *Update) Raw(text string) *Update {
	u.addRaw(text)
	return u
}

// RawBefore adds text emitted right before the given clause.
func (u *Update) RawBefore(c UpdateClause, text string) *Update {
	u.frags.addBefore(c, text)
	return u
}

// RawAfter adds text emitted right after the given clause.
func (u *Update) RawAfter(c UpdateClause, text string) *Update {
	u.frags.addAfter(c, text)
	return u
}

// Clone returns an independent copy of the statement.
func (u *Update) Clone() *Update {
	c := *u
	c.base = u.cloneBase()
	c.with = slices.Clone(u.with)
	c.joins = slices.Clone(u.joins)
	c.set = slices.Clone(u.set)
	c.from = slices.Clone(u.from)
	c.where = slices.Clone(u.where)
	c.orderBy = slices.Clone(u.orderBy)
	c.returning = slices.Clone(u.returning)
	return &c
}

func (u *Update) cloneStatement() Statement {
	return u.Clone()
}

// Check reports clauses the bound dialect does not accept.
func (u *Update) Check() error {
	return u.check("UPDATE", u.steps())
}

// Render implements Statement.
func (u *Update) Render(f format.Formatter) string {
	return u.concat(f, u.steps()...)
}

// String renders the statement on a single line.
func (u *Update) String() string {
	return u.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (u *Update) Pretty() string {
	return u.Render(format.Pretty)
}

func (u *Update) steps() []step[UpdateClause] {
	return []step[UpdateClause]{
		{
			clause:  UpdateWith,
			feature: dialect.FeatureWith,
			set:     len(u.with) > 0,
			render:  func(f format.Formatter) string { return renderWith(f, u.with) },
		},
		{
			clause:  UpdateUpdate,
			feature: u.tableFeature,
			set:     u.table != "",
			render:  func(f format.Formatter) string { return slotClause(f, u.tableKeyword, u.table) },
		},
		{
			clause:  UpdateJoin,
			feature: dialect.FeatureJoinInMutation,
			set:     len(u.joins) > 0,
			render:  func(f format.Formatter) string { return renderJoins(f, u.joins) },
		},
		{
			clause: UpdateSet,
			render: func(f format.Formatter) string { return listClause(f, "SET", u.set) },
		},
		{
			clause:  UpdateFrom,
			feature: dialect.FeatureUpdateFrom,
			set:     len(u.from) > 0,
			render:  func(f format.Formatter) string { return listClause(f, "FROM", u.from) },
		},
		{
			clause: UpdateWhere,
			render: func(f format.Formatter) string { return u.where.render(f, "WHERE") },
		},
		{
			clause:  UpdateOrderBy,
			feature: dialect.FeatureOrderLimitInMutation,
			set:     len(u.orderBy) > 0,
			render:  func(f format.Formatter) string { return listClause(f, "ORDER BY", u.orderBy) },
		},
		{
			clause:  UpdateLimit,
			feature: dialect.FeatureOrderLimitInMutation,
			set:     u.limit != "",
			render:  func(f format.Formatter) string { return slotClause(f, "LIMIT", u.limit) },
		},
		{
			clause:  UpdateReturning,
			feature: dialect.FeatureReturning,
			set:     len(u.returning) > 0,
			render:  func(f format.Formatter) string { return listClause(f, "RETURNING", u.returning) },
		},
	}
}
