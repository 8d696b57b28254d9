package builder

import (
	"slices"
	"strings"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
)

// TransactionClause identifies a part of a transaction script.
type TransactionClause int

const (
	TransactionBegin TransactionClause = iota
	TransactionStart
	TransactionSet
	// TransactionCommands covers the savepoint, rollback and embedded
	// statements, rendered in call order.
	TransactionCommands
	TransactionCommit
	TransactionEnd
)

var transactionClauseNames = []string{
	"Begin", "StartTransaction", "SetTransaction", "Commands", "Commit", "End",
}

func (c TransactionClause) String() string {
	return clauseName(transactionClauseNames, int(c))
}

// txCommand is one command of a script. A command without a keyword wraps an
// embedded statement.
type txCommand struct {
	keyword string
	arg     string
	stmt    Statement
}

func (c txCommand) render(f format.Formatter) string {
	if c.stmt != nil {
		sql := c.stmt.Render(f)
		if sql == "" {
			return ""
		}
		return strings.TrimSuffix(sql, ";") + ";" + f.Break()
	}

	text := f.Keyword(c.keyword)
	if c.arg != "" {
		text += f.Space + c.arg
	}
	return text + ";" + f.Break()
}

// txSlot is a single command: set once called, even with an empty argument.
type txSlot struct {
	set bool
	arg string
}

func (s txSlot) render(f format.Formatter, keyword string) string {
	if !s.set {
		return ""
	}
	return txCommand{keyword: keyword, arg: s.arg}.render(f)
}

// Transaction builds a script of transaction commands. Every command is
// terminated by a semicolon.
//
// Begin, StartTransaction, SetTransaction, Commit and End are single slots
// rendered in that order around the remaining commands, which keep their call
// order and may repeat:
//
//	builder.NewTransaction().
//		StartTransaction("").
//		Savepoint("a").
//		Rollback("TO SAVEPOINT a").
//		Commit("")
//	// START TRANSACTION; SAVEPOINT a; ROLLBACK TO SAVEPOINT a; COMMIT;
type Transaction struct {
	base[TransactionClause]

	begin    txSlot
	start    txSlot
	setTx    txSlot
	commands []txCommand
	commit   txSlot
	end      txSlot
}

// Begin sets the BEGIN command, e.g. Begin("") or Begin("IMMEDIATE").
func (t *Transaction) Begin(arg string) *Transaction {
	t.begin = txSlot{set: true, arg: setSlot(arg)}
	return t
}

// StartTransaction sets the START TRANSACTION command with optional modes.
func (t *Transaction) StartTransaction(modes string) *Transaction {
	t.start = txSlot{set: true, arg: setSlot(modes)}
	return t
}

// SetTransaction sets the SET TRANSACTION command, e.g. "ISOLATION LEVEL
// SERIALIZABLE".
func (t *Transaction) SetTransaction(modes string) *Transaction {
	t.setTx = txSlot{set: true, arg: setSlot(modes)}
	return t
}

// Savepoint adds a SAVEPOINT command.
func (t *Transaction) Savepoint(name string) *Transaction {
	return t.push("SAVEPOINT", name)
}

// ReleaseSavepoint adds a RELEASE SAVEPOINT command.
func (t *Transaction) ReleaseSavepoint(name string) *Transaction {
	return t.push("RELEASE SAVEPOINT", name)
}

// Rollback adds a ROLLBACK command, e.g. Rollback("TO SAVEPOINT a").
func (t *Transaction) Rollback(arg string) *Transaction {
	return t.push("ROLLBACK", arg)
}

// Statement adds a statement to the script. The statement is copied.
func (t *Transaction) Statement(stmt Statement) *Transaction {
	if stmt = embed(stmt); stmt != nil {
		t.commands = append(t.commands, txCommand{stmt: stmt})
	}
	return t
}

func (t *Transaction) push(keyword, arg string) *Transaction {
	t.commands = append(t.commands, txCommand{keyword: keyword, arg: strings.TrimSpace(arg)})
	return t
}

// Commit sets the COMMIT command.
func (t *Transaction) Commit(arg string) *Transaction {
	t.commit = txSlot{set: true, arg: setSlot(arg)}
	return t
}

// End sets the END command.
func (t *Transaction) End(arg string) *Transaction {
	t.end = txSlot{set: true, arg: setSlot(arg)}
	return t
}

// Raw adds text emitted ahead of every command.
func (t *Transaction) Raw(text string) *Transaction {
	t.addRaw(text)
	return t
}

// RawBefore adds text emitted right before the given part.
func (t *Transaction) RawBefore(c TransactionClause, text string) *Transaction {
	t.frags.addBefore(c, text)
	return t
}

// RawAfter adds text emitted right after the given part.
func (t *Transaction) RawAfter(c TransactionClause, text string) *Transaction {
	t.frags.addAfter(c, text)
	return t
}

// Clone returns an independent copy of the script.
func (t *Transaction) Clone() *Transaction {
	out := *t
	out.base = t.cloneBase()
	out.commands = slices.Clone(t.commands)
	return &out
}

func (t *Transaction) cloneStatement() Statement {
	return t.Clone()
}

// Check reports commands the bound dialect does not accept.
func (t *Transaction) Check() error {
	return t.check("TRANSACTION", t.steps())
}

// Render implements Statement.
func (t *Transaction) Render(f format.Formatter) string {
	return t.concat(f, t.steps()...)
}

// String renders the script on a single line.
func (t *Transaction) String() string {
	return t.Render(format.Compact)
}

// Pretty renders the script one command per line.
func (t *Transaction) Pretty() string {
	return t.Render(format.Pretty)
}

func (t *Transaction) steps() []step[TransactionClause] {
	return []step[TransactionClause]{
		{
			clause:  TransactionBegin,
			feature: dialect.FeatureBeginEnd,
			set:     t.begin.set,
			render:  func(f format.Formatter) string { return t.begin.render(f, "BEGIN") },
		},
		{
			clause:  TransactionStart,
			feature: dialect.FeatureStartTransaction,
			set:     t.start.set,
			render:  func(f format.Formatter) string { return t.start.render(f, "START TRANSACTION") },
		},
		{
			clause:  TransactionSet,
			feature: dialect.FeatureStartTransaction,
			set:     t.setTx.set,
			render:  func(f format.Formatter) string { return t.setTx.render(f, "SET TRANSACTION") },
		},
		{
			clause: TransactionCommands,
			render: func(f format.Formatter) string {
				var sb strings.Builder
				for _, c := range t.commands {
					sb.WriteString(c.render(f))
				}
				return sb.String()
			},
		},
		{
			clause: TransactionCommit,
			render: func(f format.Formatter) string { return t.commit.render(f, "COMMIT") },
		},
		{
			clause:  TransactionEnd,
			feature: dialect.FeatureBeginEnd,
			set:     t.end.set,
			render:  func(f format.Formatter) string { return t.end.render(f, "END") },
		},
	}
}
