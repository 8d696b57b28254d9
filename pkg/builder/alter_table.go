package builder

import (
	"slices"
	"strings"

	"github.com/pseudomuto/sqlasm/pkg/format"
)

// AlterTableClause identifies a clause of an ALTER TABLE statement.
type AlterTableClause int

const (
	AlterTableTable AlterTableClause = iota
	AlterTableActions
)

var alterTableClauseNames = []string{"AlterTable", "Actions"}

func (c AlterTableClause) String() string {
	return clauseName(alterTableClauseNames, int(c))
}

type alterAction struct {
	keyword string
	text    string
}

// AlterTable builds an ALTER TABLE statement. Actions render in call order;
// repeating an action has no effect.
//
// Example:
//
//	builder.NewAlterTable().
//		AlterTable("users").
//		Add("COLUMN age INT").
//		Drop("COLUMN legacy")
//	// ALTER TABLE users ADD COLUMN age INT, DROP COLUMN legacy
type AlterTable struct {
	base[AlterTableClause]

	table   string
	actions []alterAction
}

// AlterTable sets the table name.
func (a *AlterTable) AlterTable(table string) *AlterTable {
	a.table = setSlot(table)
	return a
}

// Add adds an ADD action, e.g. "COLUMN age INT".
func (a *AlterTable) Add(def string) *AlterTable {
	return a.push("ADD", def)
}

// Drop adds a DROP action.
func (a *AlterTable) Drop(def string) *AlterTable {
	return a.push("DROP", def)
}

// Alter adds an ALTER action, e.g. "COLUMN age SET NOT NULL".
func (a *AlterTable) Alter(def string) *AlterTable {
	return a.push("ALTER", def)
}

// Rename adds a RENAME action, e.g. "TO accounts".
func (a *AlterTable) Rename(def string) *AlterTable {
	return a.push("RENAME", def)
}

func (a *AlterTable) push(keyword, text string) *AlterTable {
	text = strings.TrimSpace(text)
	if text == "" {
		return a
	}
	entry := alterAction{keyword: keyword, text: text}
	if !slices.Contains(a.actions, entry) {
		a.actions = append(a.actions, entry)
	}
	return a
}

// Raw adds text emitted ahead of every clause.
func (a *AlterTable) Raw(text string) *AlterTable {
	a.addRaw(text)
	return a
}

// RawBefore adds text emitted right before the given clause.
func (a *AlterTable) RawBefore(c AlterTableClause, text string) *AlterTable {
	a.frags.addBefore(c, text)
	return a
}

// RawAfter adds text emitted right after the given clause.
func (a *AlterTable) RawAfter(c AlterTableClause, text string) *AlterTable {
	a.frags.addAfter(c, text)
	return a
}

// Clone returns an independent copy of the statement.
func (a *AlterTable) Clone() *AlterTable {
	return &AlterTable{
		base:    a.cloneBase(),
		table:   a.table,
		actions: slices.Clone(a.actions),
	}
}

func (a *AlterTable) cloneStatement() Statement {
	return a.Clone()
}

// Check always succeeds: every dialect accepts ALTER TABLE.
func (a *AlterTable) Check() error {
	return a.check("ALTER TABLE", a.steps())
}

// Render implements Statement.
func (a *AlterTable) Render(f format.Formatter) string {
	return a.concat(f, a.steps()...)
}

// String renders the statement on a single line.
func (a *AlterTable) String() string {
	return a.Render(format.Compact)
}

// Pretty renders the statement with format.Pretty.
func (a *AlterTable) Pretty() string {
	return a.Render(format.Pretty)
}

func (a *AlterTable) steps() []step[AlterTableClause] {
	return []step[AlterTableClause]{
		{
			clause: AlterTableTable,
			render: func(f format.Formatter) string { return slotClause(f, "ALTER TABLE", a.table) },
		},
		{
			clause: AlterTableActions,
			render: func(f format.Formatter) string {
				if len(a.actions) == 0 {
					return ""
				}
				items := make([]string, len(a.actions))
				for i, act := range a.actions {
					items[i] = f.Keyword(act.keyword) + f.Space + act.text
				}
				return f.Indent + f.List(items) + f.Break()
			},
		},
	}
}
