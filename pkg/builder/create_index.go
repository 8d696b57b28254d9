package builder

import (
	"slices"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/pseudomuto/sqlasm/pkg/utils"
)

// CreateIndexClause identifies a clause of a CREATE INDEX statement.
type CreateIndexClause int

const (
	CreateIndexCreateIndex CreateIndexClause = iota
	CreateIndexOn
	CreateIndexUsing
	CreateIndexColumn
	CreateIndexInclude
	CreateIndexWhere
)

var createIndexClauseNames = []string{
	"CreateIndex", "On", "Using", "Column", "Include", "Where",
}

func (c CreateIndexClause) String() string {
	return clauseName(createIndexClauseNames, int(c))
}

// CreateIndex builds a CREATE INDEX statement. Dialects without index support
// render none of its clauses.
//
// Example:
//
//	builder.For(dialect.PostgreSQL).NewCreateIndex().
//		CreateIndex("users_login_idx").
//		Unique().
//		On("users").
//		Column("login")
//	// CREATE UNIQUE INDEX users_login_idx ON users (login)
type CreateIndex struct {
	base[CreateIndexClause]

	created      bool
	name         string
	ifNotExists  bool
	unique       bool
	concurrently bool
	on           string
	using        string
	columns      []string
	include      []string
	where        conditions
}

// CreateIndex sets the index name. The name may be empty where the dialect
// generates one.
func (c *CreateIndex) CreateIndex(name string) *CreateIndex {
	c.created = true
	c.name = setSlot(name)
	c.ifNotExists = false
	return c
}

// CreateIndexIfNotExists sets the index name and adds IF NOT EXISTS.
func (c *CreateIndex) CreateIndexIfNotExists(name string) *CreateIndex {
	c.CreateIndex(name)
	c.ifNotExists = true
	return c
}

// Unique marks the index as UNIQUE.
func (c *CreateIndex) Unique() *CreateIndex {
	c.unique = true
	return c
}

// Concurrently adds CONCURRENTLY where the dialect supports it.
func (c *CreateIndex) Concurrently() *CreateIndex {
	c.concurrently = true
	return c
}

// On sets the indexed table.
func (c *CreateIndex) On(table string) *CreateIndex {
	c.on = setSlot(table)
	return c
}

// Using sets the index method, e.g. "btree".
func (c *CreateIndex) Using(method string) *CreateIndex {
	c.using = setSlot(method)
	return c
}

// Column adds indexed columns or expressions.
func (c *CreateIndex) Column(exprs string) *CreateIndex {
	c.columns = pushUnique(c.columns, exprs)
	return c
}

// Include adds covering columns.
func (c *CreateIndex) Include(columns string) *CreateIndex {
	c.include = pushUnique(c.include, columns)
	return c
}

// Where adds a partial index condition joined with AND.
func (c *CreateIndex) Where(cond string) *CreateIndex {
	c.where = c.where.push(opAnd, cond)
	return c
}

// WhereAnd is an alias of Where.
func (c *CreateIndex) WhereAnd(cond string) *CreateIndex {
	return c.Where(cond)
}

// WhereOr adds a partial index condition joined with OR.
func (c *CreateIndex) WhereOr(cond string) *CreateIndex {
	c.where = c.where.push(opOr, cond)
	return c
}

// Raw adds text emitted ahead of every clause.
func (c *CreateIndex) Raw(text string) *CreateIndex {
	c.addRaw(text)
	return c
}

// RawBefore adds text emitted right before the given clause.
func (c *CreateIndex) RawBefore(clause CreateIndexClause, text string) *CreateIndex {
	c.frags.addBefore(clause, text)
	return c
}

// RawAfter adds text emitted right after the given clause.
func (c *CreateIndex) RawAfter(clause CreateIndexClause, text string) *CreateIndex {
	c.frags.addAfter(clause, text)
	return c
}

// Clone returns an independent copy of the statement.
func (c *CreateIndex) Clone() *CreateIndex {
	out := *c
	out.base = c.cloneBase()
	out.columns = slices.Clone(c.columns)
	out.include = slices.Clone(c.include)
	out.where = slices.Clone(c.where)
	return &out
}

func (c *CreateIndex) cloneStatement() Statement {
	return c.Clone()
}

// Check reports clauses the bound dialect does not accept, including a
// dropped CONCURRENTLY.
func (c *CreateIndex) Check() error {
	var extra []string
	if c.concurrently && c.dialect.Supports(dialect.FeatureIndex) && !c.dialect.Supports(dialect.FeatureConcurrently) {
		extra = append(extra, "Concurrently")
	}
	return c.check("CREATE INDEX", c.steps(), extra...)
}

// Render implements Statement.
func (c *CreateIndex) Render(f format.Formatter) string {
	return c.concat(f, c.steps()...)
}

// String renders the statement on a single line.
func (c *CreateIndex) String() string {
	return c.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (c *CreateIndex) Pretty() string {
	return c.Render(format.Pretty)
}

func (c *CreateIndex) steps() []step[CreateIndexClause] {
	// every step requires index support first
	gate := func(feature dialect.Feature) dialect.Feature {
		if !c.dialect.Supports(dialect.FeatureIndex) {
			return dialect.FeatureIndex
		}
		return feature
	}

	return []step[CreateIndexClause]{
		{
			clause:  CreateIndexCreateIndex,
			feature: dialect.FeatureIndex,
			set:     c.created,
			render:  c.renderHeader,
		},
		{
			clause:  CreateIndexOn,
			feature: dialect.FeatureIndex,
			set:     c.on != "",
			render:  func(f format.Formatter) string { return slotClause(f, "ON", c.on) },
		},
		{
			clause:  CreateIndexUsing,
			feature: gate(dialect.FeatureIndexUsing),
			set:     c.using != "",
			render:  func(f format.Formatter) string { return slotClause(f, "USING", c.using) },
		},
		{
			clause:  CreateIndexColumn,
			feature: dialect.FeatureIndex,
			set:     len(c.columns) > 0,
			render: func(f format.Formatter) string {
				if len(c.columns) == 0 {
					return ""
				}
				return inlineList(f, c.columns) + f.Break()
			},
		},
		{
			clause:  CreateIndexInclude,
			feature: gate(dialect.FeatureIndexUsing),
			set:     len(c.include) > 0,
			render:  func(f format.Formatter) string { return inlineClause(f, "INCLUDE", c.include) },
		},
		{
			clause:  CreateIndexWhere,
			feature: dialect.FeatureIndex,
			set:     len(c.where) > 0,
			render:  func(f format.Formatter) string { return c.where.render(f, "WHERE") },
		},
	}
}

func (c *CreateIndex) renderHeader(f format.Formatter) string {
	if !c.created {
		return ""
	}

	parts := []string{f.Keyword("CREATE")}
	if c.unique {
		parts = append(parts, f.Keyword("UNIQUE"))
	}
	parts = append(parts, f.Keyword("INDEX"))
	if c.concurrently && c.dialect.Supports(dialect.FeatureConcurrently) {
		parts = append(parts, f.Keyword("CONCURRENTLY"))
	}
	if c.ifNotExists {
		parts = append(parts, f.Keyword("IF NOT EXISTS"))
	}
	parts = append(parts, c.name)

	return utils.JoinNonEmpty(f.Space, parts...) + f.Break()
}
