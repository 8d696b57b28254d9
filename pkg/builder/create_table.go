package builder

import (
	"slices"
	"strings"

	"github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/pseudomuto/sqlasm/pkg/utils"
)

// CreateTableClause identifies a clause of a CREATE TABLE statement.
//
// Raw text attached to the definition clauses (Column, PrimaryKey, ForeignKey,
// Constraint) is rendered inside the parentheses, in front of the clause's first
// definition or after its last one. It becomes a definition of its own only
// when the clause has none.
type CreateTableClause int

const (
	CreateTableCreateTable CreateTableClause = iota
	CreateTableColumn
	CreateTablePrimaryKey
	CreateTableForeignKey
	CreateTableConstraint
)

var createTableClauseNames = []string{
	"CreateTable", "Column", "PrimaryKey", "ForeignKey", "Constraint",
}

func (c CreateTableClause) String() string {
	return clauseName(createTableClauseNames, int(c))
}

// CreateTable builds a CREATE TABLE statement.
//
// Example:
//
//	builder.NewCreateTable().
//		CreateTable("users").
//		Column("id SERIAL").
//		Column("login TEXT NOT NULL").
//		PrimaryKey("id")
//	// CREATE TABLE users (id SERIAL, login TEXT NOT NULL, PRIMARY KEY (id))
type CreateTable struct {
	base[CreateTableClause]

	name        string
	ifNotExists bool
	columns     []string
	primaryKey  string
	foreignKeys []string
	constraints []string
}

// CreateTable sets the table name.
func (c *CreateTable) CreateTable(name string) *CreateTable {
	c.name = setSlot(name)
	c.ifNotExists = false
	return c
}

// CreateTableIfNotExists sets the table name and adds IF NOT EXISTS.
func (c *CreateTable) CreateTableIfNotExists(name string) *CreateTable {
	c.name = setSlot(name)
	c.ifNotExists = true
	return c
}

// Column adds a column definition, e.g. "login TEXT NOT NULL".
func (c *CreateTable) Column(def string) *CreateTable {
	c.columns = pushUnique(c.columns, def)
	return c
}

// PrimaryKey sets the primary key columns. The text is wrapped in parentheses
// unless it already contains one, so "id" and "(id)" are equivalent.
func (c *CreateTable) PrimaryKey(columns string) *CreateTable {
	c.primaryKey = setSlot(columns)
	return c
}

// ForeignKey adds a foreign key, e.g. "(user_id) REFERENCES users (id)". The
// parenthesis rule of PrimaryKey applies.
func (c *CreateTable) ForeignKey(def string) *CreateTable {
	c.foreignKeys = pushUnique(c.foreignKeys, def)
	return c
}

// Constraint adds a named constraint, e.g. "login_unique UNIQUE (login)".
func (c *CreateTable) Constraint(def string) *CreateTable {
	c.constraints = pushUnique(c.constraints, def)
	return c
}

// Raw adds text emitted ahead of every clause.
func (c *CreateTable) Raw(text string) *CreateTable {
	c.addRaw(text)
	return c
}

// RawBefore adds text emitted right before the given clause.
func (c *CreateTable) RawBefore(clause CreateTableClause, text string) *CreateTable {
	c.frags.addBefore(clause, text)
	return c
}

// RawAfter adds text emitted right after the given clause.
func (c *CreateTable) RawAfter(clause CreateTableClause, text string) *CreateTable {
	c.frags.addAfter(clause, text)
	return c
}

// Clone returns an independent copy of the statement.
func (c *CreateTable) Clone() *CreateTable {
	out := *c
	out.base = c.cloneBase()
	out.columns = slices.Clone(c.columns)
	out.foreignKeys = slices.Clone(c.foreignKeys)
	out.constraints = slices.Clone(c.constraints)
	return &out
}

func (c *CreateTable) cloneStatement() Statement {
	return c.Clone()
}

// Check always succeeds: every dialect accepts CREATE TABLE.
func (c *CreateTable) Check() error {
	return c.check("CREATE TABLE", c.steps())
}

// Render implements Statement.
func (c *CreateTable) Render(f format.Formatter) string {
	return c.concat(f, c.steps()...)
}

// String renders the statement on a single line.
func (c *CreateTable) String() string {
	return c.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (c *CreateTable) Pretty() string {
	return c.Render(format.Pretty)
}

func (c *CreateTable) steps() []step[CreateTableClause] {
	return []step[CreateTableClause]{
		{clause: CreateTableCreateTable, render: c.renderTable},
	}
}

func (c *CreateTable) renderTable(f format.Formatter) string {
	var defs []string
	add := func(clause CreateTableClause, items ...string) {
		before := strings.Join(c.frags.before[clause], f.Space)
		after := strings.Join(c.frags.after[clause], f.Space)
		if len(items) == 0 {
			if raw := utils.JoinNonEmpty(f.Space, before, after); raw != "" {
				defs = append(defs, raw)
			}
			return
		}

		items = slices.Clone(items)
		items[0] = utils.JoinNonEmpty(f.Space, before, items[0])
		items[len(items)-1] = utils.JoinNonEmpty(f.Space, items[len(items)-1], after)
		defs = append(defs, items...)
	}

	add(CreateTableColumn, c.columns...)
	var pk []string
	if c.primaryKey != "" {
		pk = append(pk, f.Keyword("PRIMARY KEY")+f.Space+utils.ParensUnlessPresent(c.primaryKey))
	}
	add(CreateTablePrimaryKey, pk...)

	fks := make([]string, 0, len(c.foreignKeys))
	for _, fk := range c.foreignKeys {
		fks = append(fks, f.Keyword("FOREIGN KEY")+f.Space+utils.ParensUnlessPresent(fk))
	}
	add(CreateTableForeignKey, fks...)

	constraints := make([]string, 0, len(c.constraints))
	for _, con := range c.constraints {
		constraints = append(constraints, f.Keyword("CONSTRAINT")+f.Space+con)
	}
	add(CreateTableConstraint, constraints...)

	if c.name == "" && len(defs) == 0 {
		return ""
	}

	keyword := "CREATE TABLE"
	if c.ifNotExists {
		keyword = "CREATE TABLE IF NOT EXISTS"
	}

	header := utils.JoinNonEmpty(f.Space, f.Keyword(keyword), c.name)
	if len(defs) == 0 {
		return header + f.Break()
	}
	return header + f.Space + "(" + f.LineBreak + f.Indent + f.List(defs) + f.LineBreak + ")" + f.Break()
}
