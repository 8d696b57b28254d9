package builder

import (
	"maps"
	"slices"
	"strings"

	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/pseudomuto/sqlasm/pkg/utils"
)

// clause is implemented by the clause identity enumerations of every statement
// kind. Identities are only compared for equality; rendering order lives in each
// statement's pipeline.
type clause interface {
	comparable
	String() string
}

// setSlot normalizes a single-slot value. Whitespace-only input clears the slot.
func setSlot(value string) string {
	return strings.TrimSpace(value)
}

// pushUnique appends the trimmed value unless it is empty or already present.
func pushUnique(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || slices.Contains(list, value) {
		return list
	}
	return append(list, value)
}

type logicalOp int

const (
	opAnd logicalOp = iota
	opOr
)

func (o logicalOp) keyword() string {
	switch o {
	case opAnd:
		return "AND"
	case opOr:
		return "OR"
	default:
		panic("builder: unknown logical operator")
	}
}

type (
	condition struct {
		op   logicalOp
		text string
	}

	// conditions backs WHERE and HAVING. The operator of the first entry is
	// never rendered.
	conditions []condition
)

// push appends a condition. A condition whose text is already present is
// ignored whatever its operator; the first entry always counts as AND.
func (c conditions) push(op logicalOp, value string) conditions {
	value = strings.TrimSpace(value)
	if value == "" {
		return c
	}
	if len(c) == 0 {
		return append(c, condition{op: opAnd, text: value})
	}
	for _, existing := range c {
		if existing.text == value {
			return c
		}
	}
	return append(c, condition{op: op, text: value})
}

func (c conditions) render(f format.Formatter, keyword string) string {
	if len(c) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(f.Keyword(keyword))
	sb.WriteString(f.Break())
	sb.WriteString(f.Indent)
	sb.WriteString(c[0].text)
	for _, cond := range c[1:] {
		sb.WriteString(f.Break())
		sb.WriteString(f.Indent)
		sb.WriteString(f.Keyword(cond.op.keyword()))
		sb.WriteString(f.Space)
		sb.WriteString(cond.text)
	}
	sb.WriteString(f.Break())
	return sb.String()
}

// join is a JOIN entry. An empty kind means the caller supplied the whole clause.
type join struct {
	kind string
	text string
}

func pushJoin(list []join, kind, value string) []join {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	entry := join{kind: kind, text: value}
	if slices.Contains(list, entry) {
		return list
	}
	return append(list, entry)
}

func renderJoins(f format.Formatter, joins []join) string {
	var sb strings.Builder
	for _, j := range joins {
		if j.kind != "" {
			sb.WriteString(f.Keyword(j.kind))
			sb.WriteString(f.Space)
		}
		sb.WriteString(j.text)
		sb.WriteString(f.Break())
	}
	return sb.String()
}

// listClause renders "KEYWORD items" for accumulating clauses.
func listClause(f format.Formatter, keyword string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return f.Keyword(keyword) + f.Break() + f.Indent + f.List(items) + f.Break()
}

// slotClause renders "KEYWORD value" for single-slot clauses.
func slotClause(f format.Formatter, keyword, value string) string {
	if value == "" {
		return ""
	}
	return f.Keyword(keyword) + f.Space + value + f.Break()
}

// flagClause renders a keyword-only clause such as DEFAULT VALUES.
func flagClause(f format.Formatter, keyword string, set bool) string {
	if !set {
		return ""
	}
	return f.Keyword(keyword) + f.Break()
}

// inlineList renders items inside parentheses on a single line, whatever the layout.
func inlineList(f format.Formatter, items []string) string {
	return utils.Parens(strings.Join(items, ","+f.Space))
}

// inlineClause renders "KEYWORD (items)" on a single line.
func inlineClause(f format.Formatter, keyword string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return f.Keyword(keyword) + f.Space + inlineList(f, items) + f.Break()
}

// lines renders raw fragments, each followed by the clause break.
func lines(f format.Formatter, fragments []string) string {
	var sb strings.Builder
	for _, frag := range fragments {
		sb.WriteString(frag)
		sb.WriteString(f.Break())
	}
	return sb.String()
}

// rawFragments holds caller supplied text spliced before and after clauses.
// Fragments may repeat.
type rawFragments[C clause] struct {
	before map[C][]string
	after  map[C][]string
}

func (r *rawFragments[C]) addBefore(c C, text string) {
	if text = strings.TrimSpace(text); text == "" {
		return
	}
	if r.before == nil {
		r.before = make(map[C][]string)
	}
	r.before[c] = append(r.before[c], text)
}

func (r *rawFragments[C]) addAfter(c C, text string) {
	if text = strings.TrimSpace(text); text == "" {
		return
	}
	if r.after == nil {
		r.after = make(map[C][]string)
	}
	r.after[c] = append(r.after[c], text)
}

func (r rawFragments[C]) has(c C) bool {
	return len(r.before[c]) > 0 || len(r.after[c]) > 0
}

func (r rawFragments[C]) clone() rawFragments[C] {
	return rawFragments[C]{
		before: cloneFragments(r.before),
		after:  cloneFragments(r.after),
	}
}

func cloneFragments[C clause](m map[C][]string) map[C][]string {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		out[k] = slices.Clone(v)
	}
	return out
}

// base is the state every statement kind carries besides its own slots: the
// bound dialect, leading raw text and the raw fragments keyed by clause.
type base[C clause] struct {
	dialect dialect.Dialect
	raw     []string
	frags   rawFragments[C]
}

func (b *base[C]) addRaw(text string) {
	b.raw = pushUnique(b.raw, text)
}

func (b base[C]) cloneBase() base[C] {
	return base[C]{
		dialect: b.dialect,
		raw:     slices.Clone(b.raw),
		frags:   b.frags.clone(),
	}
}

// clauseName backs the String methods of the clause enumerations. Out of range
// values have no name.
func clauseName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// Dialect returns the dialect the statement is bound to.
func (b base[C]) Dialect() dialect.Dialect {
	return b.dialect
}
