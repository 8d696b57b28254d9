package builder

import (
	"slices"
	"strings"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/pseudomuto/sqlasm/pkg/utils"
)

// SelectClause identifies a clause of a SELECT statement for raw text injection.
type SelectClause int

const (
	SelectWith SelectClause = iota
	SelectSelect
	SelectFrom
	SelectJoin
	SelectWhere
	SelectGroupBy
	SelectHaving
	SelectWindow
	SelectOrderBy
	SelectLimit
	SelectOffset
	// SelectSetOperations covers UNION, INTERSECT and EXCEPT. Raw text injected
	// before it lands in front of the first operator.
	SelectSetOperations
)

var selectClauseNames = []string{
	"With", "Select", "From", "Join", "Where", "GroupBy", "Having", "Window",
	"OrderBy", "Limit", "Offset", "SetOperations",
}

func (c SelectClause) String() string {
	return clauseName(selectClauseNames, int(c))
}

type setOpKind int

const (
	setUnion setOpKind = iota
	setIntersect
	setExcept
)

func (k setOpKind) keyword() string {
	switch k {
	case setUnion:
		return "UNION"
	case setIntersect:
		return "INTERSECT"
	case setExcept:
		return "EXCEPT"
	default:
		panic("builder: unknown set operation")
	}
}

type setOperation struct {
	kind setOpKind
	stmt Statement
}

// Select builds a SELECT statement.
//
// Clauses render in a fixed order whatever the call order:
//
//	WITH, SELECT, FROM, JOIN, WHERE, GROUP BY, HAVING, WINDOW, ORDER BY, LIMIT,
//	OFFSET, then set operations
//
// List clauses (Select, From, GroupBy, ...) accumulate and ignore duplicates,
// Limit and Offset keep the last value.
//
// Example:
//
//	sql := builder.NewSelect().
//		Select("id, login").
//		From("users").
//		Where("active = true").
//		String()
//	// SELECT id, login FROM users WHERE active = true
type Select struct {
	base[SelectClause]

	with    []cte
	columns []string
	from    []string
	joins   []join
	where   conditions
	groupBy []string
	having  conditions
	window  []string
	orderBy []string
	limit   string
	offset  string
	setOps  []setOperation
}

// Select adds projected columns.
func (s *Select) Select(columns string) *Select {
	s.columns = pushUnique(s.columns, columns)
	return s
}

// From adds a table reference.
func (s *Select) From(tables string) *Select {
	s.from = pushUnique(s.from, tables)
	return s
}

// Join adds a complete join clause, e.g. "LEFT JOIN orders ON ...".
func (s *Select) Join(clause string) *Select {
	s.joins = pushJoin(s.joins, "", clause)
	return s
}

// InnerJoin adds an INNER JOIN.
func (s *Select) InnerJoin(table string) *Select {
	s.joins = pushJoin(s.joins, "INNER JOIN", table)
	return s
}

// LeftJoin adds a LEFT JOIN.
func (s *Select) LeftJoin(table string) *Select {
	s.joins = pushJoin(s.joins, "LEFT JOIN", table)
	return s
}

// RightJoin adds a RIGHT JOIN.
func (s *Select) RightJoin(table string) *Select {
	s.joins = pushJoin(s.joins, "RIGHT JOIN", table)
	return s
}

// CrossJoin adds a CROSS JOIN.
func (s *Select) CrossJoin(table string) *Select {
	s.joins = pushJoin(s.joins, "CROSS JOIN", table)
	return s
}

// Where adds a condition joined with AND.
func (s *Select) Where(cond string) *Select {
	s.where = s.where.push(opAnd, cond)
	return s
}

// WhereAnd is an alias of Where.
func (s *Select) WhereAnd(cond string) *Select {
	return s.Where(cond)
}

// WhereOr adds a condition joined with OR.
func (s *Select) WhereOr(cond string) *Select {
	s.where = s.where.push(opOr, cond)
	return s
}

// GroupBy adds grouping expressions.
func (s *Select) GroupBy(exprs string) *Select {
	s.groupBy = pushUnique(s.groupBy, exprs)
	return s
}

// Having adds a HAVING condition joined with AND.
func (s *Select) Having(cond string) *Select {
	s.having = s.having.push(opAnd, cond)
	return s
}

// HavingOr adds a HAVING condition joined with OR.
func (s *Select) HavingOr(cond string) *Select {
	s.having = s.having.push(opOr, cond)
	return s
}

// Window adds a named window definition, e.g. "w AS (PARTITION BY dept)".
func (s *Select) Window(def string) *Select {
	s.window = pushUnique(s.window, def)
	return s
}

// OrderBy adds ordering expressions.
func (s *Select) OrderBy(exprs string) *Select {
	s.orderBy = pushUnique(s.orderBy, exprs)
	return s
}

// Limit sets the LIMIT value. An empty value clears it.
func (s *Select) Limit(n string) *Select {
	s.limit = setSlot(n)
	return s
}

// Offset sets the OFFSET value. An empty value clears it.
func (s *Select) Offset(n string) *Select {
	s.offset = setSlot(n)
	return s
}

// With adds a common table expression. The statement is copied.
func (s *Select) With(name string, stmt Statement) *Select {
	s.with = pushCTE(s.with, name, stmt)
	return s
}

// Union combines the statement with stmt using UNION. The statement is copied.
func (s *Select) Union(stmt Statement) *Select {
	return s.pushSetOp(setUnion, stmt)
}

// Intersect combines the statement with stmt using INTERSECT.
func (s *Select) Intersect(stmt Statement) *Select {
	return s.pushSetOp(setIntersect, stmt)
}

// Except combines the statement with stmt using EXCEPT.
func (s *Select) Except(stmt Statement) *Select {
	return s.pushSetOp(setExcept, stmt)
}

func (s *Select) pushSetOp(kind setOpKind, stmt Statement) *Select {
	if stmt = embed(stmt); stmt != nil {
		s.setOps = append(s.setOps, setOperation{kind: kind, stmt: stmt})
	}
	return s
}

// Raw adds text emitted ahead of every clause.
func (s *Select) Raw(text string) *Select {
	s.addRaw(text)
	return s
}

// RawBefore adds text emitted right before the given clause.
func (s *Select) RawBefore(c SelectClause, text string) *Select {
	s.frags.addBefore(c, text)
	return s
}

// RawAfter adds text emitted right after the given clause.
func (s *Select) RawAfter(c SelectClause, text string) *Select {
	s.frags.addAfter(c, text)
	return s
}

// Clone returns an independent copy of the statement.
func (s *Select) Clone() *Select {
	return &Select{
		base:    s.cloneBase(),
		with:    slices.Clone(s.with),
		columns: slices.Clone(s.columns),
		from:    slices.Clone(s.from),
		joins:   slices.Clone(s.joins),
		where:   slices.Clone(s.where),
		groupBy: slices.Clone(s.groupBy),
		having:  slices.Clone(s.having),
		window:  slices.Clone(s.window),
		orderBy: slices.Clone(s.orderBy),
		limit:   s.limit,
		offset:  s.offset,
		setOps:  slices.Clone(s.setOps),
	}
}

func (s *Select) cloneStatement() Statement {
	return s.Clone()
}

// Check reports clauses the bound dialect does not accept.
func (s *Select) Check() error {
	return s.check("SELECT", s.steps())
}

// Render implements Statement.
func (s *Select) Render(f format.Formatter) string {
	return s.concat(f, s.steps()...)
}

// String renders the statement on a single line.
func (s *Select) String() string {
	return s.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (s *Select) Pretty() string {
	return s.Render(format.Pretty)
}

func (s *Select) steps() []step[SelectClause] {
	return []step[SelectClause]{
		{
			clause:  SelectWith,
			feature: dialect.FeatureWith,
			set:     len(s.with) > 0,
			render:  func(f format.Formatter) string { return renderWith(f, s.with) },
		},
		{
			clause: SelectSelect,
			render: func(f format.Formatter) string { return listClause(f, "SELECT", s.columns) },
		},
		{
			clause: SelectFrom,
			render: func(f format.Formatter) string { return listClause(f, "FROM", s.from) },
		},
		{
			clause: SelectJoin,
			render: func(f format.Formatter) string { return renderJoins(f, s.joins) },
		},
		{
			clause: SelectWhere,
			render: func(f format.Formatter) string { return s.where.render(f, "WHERE") },
		},
		{
			clause: SelectGroupBy,
			render: func(f format.Formatter) string { return listClause(f, "GROUP BY", s.groupBy) },
		},
		{
			clause: SelectHaving,
			render: func(f format.Formatter) string { return s.having.render(f, "HAVING") },
		},
		{
			clause: SelectWindow,
			render: func(f format.Formatter) string { return listClause(f, "WINDOW", s.window) },
		},
		{
			clause: SelectOrderBy,
			render: func(f format.Formatter) string { return listClause(f, "ORDER BY", s.orderBy) },
		},
		{
			clause:  SelectLimit,
			feature: dialect.FeatureLimitOffset,
			set:     s.limit != "",
			render:  func(f format.Formatter) string { return slotClause(f, "LIMIT", s.limit) },
		},
		{
			clause:  SelectOffset,
			feature: dialect.FeatureLimitOffset,
			set:     s.offset != "",
			render:  func(f format.Formatter) string { return slotClause(f, "OFFSET", s.offset) },
		},
		{
			clause:  SelectSetOperations,
			feature: dialect.FeatureSetOperations,
			set:     len(s.setOps) > 0,
			combine: func(f format.Formatter, prior, before string) string {
				return renderSetOperations(f, prior, before, s.setOps)
			},
		},
	}
}

// renderSetOperations folds the operands into the text rendered so far, left to
// right: every operation wraps the accumulated text in one more pair of
// parentheses.
func renderSetOperations(f format.Formatter, prior, before string, ops []setOperation) string {
	acc := strings.TrimRight(prior, " \t\r\n")
	applied := false
	for _, op := range ops {
		right := op.stmt.Render(f)
		if right == "" {
			continue
		}

		keyword := f.Keyword(op.kind.keyword())
		if !applied {
			keyword = before + keyword
			applied = true
		}
		acc = utils.JoinNonEmpty(f.Break(), utils.Parens(acc), keyword, utils.Parens(right))
	}

	if !applied {
		return prior + before
	}
	return acc + f.Break()
}
