package builder

import (
	"slices"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
)

// InsertClause identifies a clause of an INSERT statement.
type InsertClause int

const (
	InsertWith InsertClause = iota
	// InsertInto covers INSERT INTO, INSERT OR and REPLACE INTO.
	InsertInto
	InsertPartition
	InsertOverriding
	InsertValues
	InsertSelect
	InsertDefaultValues
	InsertOnConflict
	InsertOnDuplicateKeyUpdate
	InsertReturning
)

var insertClauseNames = []string{
	"With", "InsertInto", "Partition", "Overriding", "Values", "Select",
	"DefaultValues", "OnConflict", "OnDuplicateKeyUpdate", "Returning",
}

func (c InsertClause) String() string {
	return clauseName(insertClauseNames, int(c))
}

// Insert builds an INSERT statement.
//
// InsertInto, InsertOr and ReplaceInto share one slot: the last call wins. So do
// Select calls; Values rows accumulate.
//
// Example:
//
//	builder.NewInsert().
//		InsertInto("users (login, name)").
//		Values("('foo', 'Foo')").
//		Values("('bar', 'Bar')")
//	// INSERT INTO users (login, name) VALUES ('foo', 'Foo'), ('bar', 'Bar')
type Insert struct {
	base[InsertClause]

	with          []cte
	intoKeyword   string
	intoFeature   dialect.Feature
	into          string
	partition     []string
	overriding    string
	values        []string
	sel           Statement
	defaultValues bool
	onConflict    string
	onDuplicate   []string
	returning     []string
}

// InsertInto sets the target table and optional column list, e.g.
// "users (login, name)".
func (i *Insert) InsertInto(target string) *Insert {
	return i.setInto("INSERT INTO", dialect.FeatureAlways, target)
}

// InsertOr sets an INSERT OR target, e.g. "REPLACE INTO users (login)".
func (i *Insert) InsertOr(expr string) *Insert {
	return i.setInto("INSERT OR", dialect.FeatureInsertOr, expr)
}

// ReplaceInto sets a REPLACE INTO target.
func (i *Insert) ReplaceInto(target string) *Insert {
	return i.setInto("REPLACE INTO", dialect.FeatureInsertOr, target)
}

func (i *Insert) setInto(keyword string, feature dialect.Feature, value string) *Insert {
	i.intoKeyword = keyword
	i.intoFeature = feature
	i.into = setSlot(value)
	return i
}

// Partition adds target partitions.
func (i *Insert) Partition(names string) *Insert {
	i.partition = pushUnique(i.partition, names)
	return i
}

// Overriding sets the OVERRIDING option, e.g. "SYSTEM VALUE".
func (i *Insert) Overriding(option string) *Insert {
	i.overriding = setSlot(option)
	return i
}

// Values adds a row, e.g. "('foo', 'Foo')".
func (i *Insert) Values(row string) *Insert {
	i.values = pushUnique(i.values, row)
	return i
}

// Select sets the query providing the inserted rows. The query is copied; a
// nil query clears the slot.
func (i *Insert) Select(query *Select) *Insert {
	if query == nil {
		i.sel = nil
		return i
	}
	i.sel = embed(query)
	return i
}

// DefaultValues adds DEFAULT VALUES. Repeated calls have no further effect.
func (i *Insert) DefaultValues() *Insert {
	i.defaultValues = true
	return i
}

// OnConflict sets the conflict action, e.g. "(login) DO NOTHING".
func (i *Insert) OnConflict(action string) *Insert {
	i.onConflict = setSlot(action)
	return i
}

// OnDuplicateKeyUpdate adds assignments for ON DUPLICATE KEY UPDATE.
func (i *Insert) OnDuplicateKeyUpdate(assignments string) *Insert {
	i.onDuplicate = pushUnique(i.onDuplicate, assignments)
	return i
}

// Returning adds RETURNING expressions.
func (i *Insert) Returning(exprs string) *Insert {
	i.returning = pushUnique(i.returning, exprs)
	return i
}

// With adds a common table expression. The statement is copied.
func (i *Insert) With(name string, stmt Statement) *Insert {
	i.with = pushCTE(i.with, name, stmt)
	return i
}

// Raw adds text emitted ahead of every clause.
func (i *Insert) Raw(text string) *Insert {
	i.addRaw(text)
	return i
}

// RawBefore adds text emitted right before the given clause.
func (i *Insert) RawBefore(c InsertClause, text string) *Insert {
	i.frags.addBefore(c, text)
	return i
}

// RawAfter adds text emitted right after the given clause.
func (i *Insert) RawAfter(c InsertClause, text string) *Insert {
	i.frags.addAfter(c, text)
	return i
}

// Clone returns an independent copy of the statement.
func (i *Insert) Clone() *Insert {
	c := *i
	c.base = i.cloneBase()
	c.with = slices.Clone(i.with)
	c.partition = slices.Clone(i.partition)
	c.values = slices.Clone(i.values)
	c.onDuplicate = slices.Clone(i.onDuplicate)
	c.returning = slices.Clone(i.returning)
	return &c
}

func (i *Insert) cloneStatement() Statement {
	return i.Clone()
}

// Check reports clauses the bound dialect does not accept.
func (i *Insert) Check() error {
	return i.check("INSERT", i.steps())
}

// Render implements Statement.
func (i *Insert) Render(f format.Formatter) string {
	return i.concat(f, i.steps()...)
}

// String renders the statement on a single line.
func (i *Insert) String() string {
	return i.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (i *Insert) Pretty() string {
	return i.Render(format.Pretty)
}

func (i *Insert) steps() []step[InsertClause] {
	return []step[InsertClause]{
		{
			clause:  InsertWith,
			feature: dialect.FeatureWith,
			set:     len(i.with) > 0,
			render:  func(f format.Formatter) string { return renderWith(f, i.with) },
		},
		{
			clause:  InsertInto,
			feature: i.intoFeature,
			set:     i.into != "",
			render:  func(f format.Formatter) string { return slotClause(f, i.intoKeyword, i.into) },
		},
		{
			clause:  InsertPartition,
			feature: dialect.FeaturePartition,
			set:     len(i.partition) > 0,
			render:  func(f format.Formatter) string { return inlineClause(f, "PARTITION", i.partition) },
		},
		{
			clause:  InsertOverriding,
			feature: dialect.FeatureOverriding,
			set:     i.overriding != "",
			render:  func(f format.Formatter) string { return slotClause(f, "OVERRIDING", i.overriding) },
		},
		{
			clause: InsertValues,
			render: func(f format.Formatter) string { return listClause(f, "VALUES", i.values) },
		},
		{
			clause: InsertSelect,
			render: func(f format.Formatter) string {
				if i.sel == nil {
					return ""
				}
				if sql := i.sel.Render(f); sql != "" {
					return sql + f.Break()
				}
				return ""
			},
		},
		{
			clause: InsertDefaultValues,
			render: func(f format.Formatter) string { return flagClause(f, "DEFAULT VALUES", i.defaultValues) },
		},
		{
			clause:  InsertOnConflict,
			feature: dialect.FeatureOnConflict,
			set:     i.onConflict != "",
			render:  func(f format.Formatter) string { return slotClause(f, "ON CONFLICT", i.onConflict) },
		},
		{
			clause:  InsertOnDuplicateKeyUpdate,
			feature: dialect.FeatureOnDuplicateKey,
			set:     len(i.onDuplicate) > 0,
			render: func(f format.Formatter) string {
				return listClause(f, "ON DUPLICATE KEY UPDATE", i.onDuplicate)
			},
		},
		{
			clause:  InsertReturning,
			feature: dialect.FeatureReturning,
			set:     len(i.returning) > 0,
			render:  func(f format.Formatter) string { return listClause(f, "RETURNING", i.returning) },
		},
	}
}
