package builder

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
)

// ErrUnsupportedClause is wrapped by the errors returned from Check when a
// statement holds clauses its dialect does not accept.
var ErrUnsupportedClause = errors.New("unsupported clause")

// step is one entry of a statement's rendering pipeline.
type step[C clause] struct {
	clause C
	// feature gates the step; steps the dialect lacks are skipped entirely
	feature dialect.Feature
	// set reports whether the clause holds content (used by Check)
	set bool
	// render produces the clause's own fragment
	render func(format.Formatter) string
	// combine, when present, replaces the whole output rendered so far
	// (set operations). before is the clause's rendered raw_before text.
	combine func(f format.Formatter, prior, before string) string
}

// concat walks the pipeline once: raw text first, then for every step the
// clause's raw_before text, its own fragment and its raw_after text. Raw text is
// emitted even when the clause itself is empty.
func (b base[C]) concat(f format.Formatter, steps ...step[C]) string {
	var sb strings.Builder
	sb.WriteString(lines(f, b.raw))

	for _, s := range steps {
		if !b.dialect.Supports(s.feature) {
			continue
		}

		before := lines(f, b.frags.before[s.clause])
		after := lines(f, b.frags.after[s.clause])

		if s.combine != nil {
			prior := sb.String()
			sb.Reset()
			sb.WriteString(s.combine(f, prior, before))
		} else {
			sb.WriteString(before)
			if s.render != nil {
				sb.WriteString(s.render(f))
			}
		}
		sb.WriteString(after)
	}

	return strings.TrimRight(sb.String(), " \t\r\n")
}

// check reports the clauses holding content (or raw fragments) that the bound
// dialect does not accept. extra names clause modifiers that live inside a
// supported step but were dropped.
func (b base[C]) check(kind string, steps []step[C], extra ...string) error {
	var unsupported []string
	for _, s := range steps {
		if b.dialect.Supports(s.feature) {
			continue
		}
		if s.set || b.frags.has(s.clause) {
			unsupported = append(unsupported, s.clause.String())
		}
	}
	unsupported = append(unsupported, extra...)

	if len(unsupported) == 0 {
		return nil
	}

	return errors.Wrapf(
		ErrUnsupportedClause,
		"%s: %s not supported by the %s dialect",
		kind,
		strings.Join(unsupported, ", "),
		b.dialect.Name(),
	)
}
