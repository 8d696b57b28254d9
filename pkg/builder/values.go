package builder

import (
	"slices"

	"github.com/pseudomuto/sqlasm/pkg/format"
)

// ValuesClause identifies a clause of a VALUES statement.
type ValuesClause int

const (
	ValuesValues ValuesClause = iota
)

func (c ValuesClause) String() string {
	return clauseName([]string{"Values"}, int(c))
}

// Values builds a standalone VALUES list.
//
//	builder.NewValues().Values("(1, 'one')").Values("(2, 'two')")
//	// VALUES (1, 'one'), (2, 'two')
type Values struct {
	base[ValuesClause]

	rows []string
}

// Values adds a row.
func (v *Values) Values(row string) *Values {
	v.rows = pushUnique(v.rows, row)
	return v
}

// Raw adds text emitted ahead of every clause.
func (v *Values) Raw(text string) *Values {
	v.addRaw(text)
	return v
}

// RawBefore adds text emitted right before the given clause.
func (v *Values) RawBefore(c ValuesClause, text string) *Values {
	v.frags.addBefore(c, text)
	return v
}

// RawAfter adds text emitted right after the given clause.
func (v *Values) RawAfter(c ValuesClause, text string) *Values {
	v.frags.addAfter(c, text)
	return v
}

// Clone returns an independent copy of the statement.
func (v *Values) Clone() *Values {
	return &Values{base: v.cloneBase(), rows: slices.Clone(v.rows)}
}

func (v *Values) cloneStatement() Statement {
	return v.Clone()
}

// Check always succeeds.
func (v *Values) Check() error {
	return v.check("VALUES", v.steps())
}

// Render implements Statement.
func (v *Values) Render(f format.Formatter) string {
	return v.concat(f, v.steps()...)
}

// String renders the statement on a single line.
func (v *Values) String() string {
	return v.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (v *Values) Pretty() string {
	return v.Render(format.Pretty)
}

func (v *Values) steps() []step[ValuesClause] {
	return []step[ValuesClause]{
		{
			clause: ValuesValues,
			render: func(f format.Formatter) string { return listClause(f, "VALUES", v.rows) },
		},
	}
}
