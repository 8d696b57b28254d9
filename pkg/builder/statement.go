package builder

import (
	"strings"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
)

// Statement is implemented by every builder in this package. A Statement can be
// rendered on its own or embedded into another statement (CTE, set operation
// operand, INSERT ... SELECT source).
//
// The set of implementations is closed: embedding copies the operand, which
// requires knowing how to clone it.
type Statement interface {
	// Render returns the SQL text laid out by f.
	Render(f format.Formatter) string
	// String renders the statement with format.Compact.
	String() string

	cloneStatement() Statement
}

// Raw is a literal statement. It renders its trimmed text whatever the
// formatter, which makes it handy for embedding hand-written SQL:
//
//	builder.NewSelect().
//		With("ids", builder.Raw("SELECT id FROM archived")).
//		Select("*").
//		From("ids")
type Raw string

// Render implements Statement.
func (r Raw) Render(format.Formatter) string {
	return strings.TrimSpace(string(r))
}

// String implements Statement.
func (r Raw) String() string {
	return r.Render(format.Compact)
}

func (r Raw) cloneStatement() Statement {
	return r
}

// embed copies a statement for storage inside another one. Operands that
// render empty are skipped later, at render time.
func embed(stmt Statement) Statement {
	if stmt == nil {
		return nil
	}
	return stmt.cloneStatement()
}

// Factory creates statements bound to a dialect.
//
// Example:
//
//	pg := builder.For(dialect.PostgreSQL)
//	sql := pg.NewSelect().Select("id").From("users").Limit("10").String()
//	// SELECT id FROM users LIMIT 10
type Factory struct {
	dialect dialect.Dialect
}

// For returns a Factory for the given dialect.
func For(d dialect.Dialect) Factory {
	return Factory{dialect: d}
}

// Dialect returns the dialect statements are bound to.
func (f Factory) Dialect() dialect.Dialect {
	return f.dialect
}

// NewSelect creates an empty SELECT statement.
func (f Factory) NewSelect() *Select {
	return &Select{base: base[SelectClause]{dialect: f.dialect}}
}

// NewInsert creates an empty INSERT statement.
func (f Factory) NewInsert() *Insert {
	return &Insert{base: base[InsertClause]{dialect: f.dialect}}
}

// NewUpdate creates an empty UPDATE statement.
func (f Factory) NewUpdate() *Update {
	return &Update{base: base[UpdateClause]{dialect: f.dialect}}
}

// NewDelete creates an empty DELETE statement.
func (f Factory) NewDelete() *Delete {
	return &Delete{base: base[DeleteClause]{dialect: f.dialect}}
}

// NewCreateTable creates an empty CREATE TABLE statement.
func (f Factory) NewCreateTable() *CreateTable {
	return &CreateTable{base: base[CreateTableClause]{dialect: f.dialect}}
}

// NewAlterTable creates an empty ALTER TABLE statement.
func (f Factory) NewAlterTable() *AlterTable {
	return &AlterTable{base: base[AlterTableClause]{dialect: f.dialect}}
}

// NewCreateIndex creates an empty CREATE INDEX statement.
func (f Factory) NewCreateIndex() *CreateIndex {
	return &CreateIndex{base: base[CreateIndexClause]{dialect: f.dialect}}
}

// NewDropTable creates an empty DROP TABLE statement.
func (f Factory) NewDropTable() *DropTable {
	return &DropTable{base: base[DropTableClause]{dialect: f.dialect}}
}

// NewDropIndex creates an empty DROP INDEX statement.
func (f Factory) NewDropIndex() *DropIndex {
	return &DropIndex{base: base[DropIndexClause]{dialect: f.dialect}}
}

// NewValues creates an empty VALUES statement.
func (f Factory) NewValues() *Values {
	return &Values{base: base[ValuesClause]{dialect: f.dialect}}
}

// NewTransaction creates an empty transaction script.
func (f Factory) NewTransaction() *Transaction {
	return &Transaction{base: base[TransactionClause]{dialect: f.dialect}}
}

var standard = For(dialect.Standard)

// NewSelect creates an empty SELECT statement for the standard dialect.
func NewSelect() *Select { return standard.NewSelect() }

// NewInsert creates an empty INSERT statement for the standard dialect.
func NewInsert() *Insert { return standard.NewInsert() }

// NewUpdate creates an empty UPDATE statement for the standard dialect.
func NewUpdate() *Update { return standard.NewUpdate() }

// NewDelete creates an empty DELETE statement for the standard dialect.
func NewDelete() *Delete { return standard.NewDelete() }

// NewCreateTable creates an empty CREATE TABLE statement for the standard dialect.
func NewCreateTable() *CreateTable { return standard.NewCreateTable() }

// NewAlterTable creates an empty ALTER TABLE statement for the standard dialect.
func NewAlterTable() *AlterTable { return standard.NewAlterTable() }

// NewCreateIndex creates an empty CREATE INDEX statement for the standard
// dialect. The standard dialect has no index statements, so the result only
// renders raw text; use For with a dialect that supports indexes.
func NewCreateIndex() *CreateIndex { return standard.NewCreateIndex() }

// NewDropTable creates an empty DROP TABLE statement for the standard dialect.
func NewDropTable() *DropTable { return standard.NewDropTable() }

// NewDropIndex creates an empty DROP INDEX statement for the standard dialect.
// See NewCreateIndex.
func NewDropIndex() *DropIndex { return standard.NewDropIndex() }

// NewValues creates an empty VALUES statement for the standard dialect.
func NewValues() *Values { return standard.NewValues() }

// NewTransaction creates an empty transaction script for the standard dialect.
func NewTransaction() *Transaction { return standard.NewTransaction() }
