package builder

import (
	"strings"

	"github.com/pseudomuto/sqlasm/pkg/format"
)

// cte is a named common table expression.
type cte struct {
	name string
	stmt Statement
}

// pushCTE stores a copy of stmt under name. A name that is already present
// keeps its position and takes the new body.
func pushCTE(list []cte, name string, stmt Statement) []cte {
	name = strings.TrimSpace(name)
	if name == "" || stmt == nil {
		return list
	}

	entry := cte{name: name, stmt: embed(stmt)}
	for i := range list {
		if list[i].name == name {
			list[i] = entry
			return list
		}
	}
	return append(list, entry)
}

func renderWith(f format.Formatter, ctes []cte) string {
	nested := f.Nested()
	entries := make([]string, 0, len(ctes))
	for _, c := range ctes {
		body := c.stmt.Render(nested)
		if body == "" {
			continue
		}

		entries = append(entries, c.name+f.Space+f.Keyword("AS")+f.Space+
			"("+nested.LineBreak+body+f.LineBreak+")")
	}

	if len(entries) == 0 {
		return ""
	}
	return f.Keyword("WITH") + f.Space + strings.Join(entries, ","+f.Break()) + f.Break()
}
