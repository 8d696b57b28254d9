package recipe

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// recipeLexer tokenizes recipe files. Strings are Go double-quoted or raw
	// (backtick) literals.
	recipeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `(?:#|--)[^\r\n]*`},
		{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"|` + "`[^`]*`"},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[().,;]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[Recipe](
		participle.Lexer(recipeLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
)

type (
	// Recipe is a parsed recipe file: a list of statement chains.
	Recipe struct {
		Chains []*Chain `parser:"(@@ ';'?)*"`
	}

	// Chain is a statement kind followed by builder calls, e.g.
	//
	//	Select.select("id").from("users")
	//
	// A chain without calls is a bare name; as an argument it names a clause.
	Chain struct {
		Pos lexer.Position

		Head  string  `parser:"@Ident"`
		Calls []*Call `parser:"('.' @@)*"`
	}

	// Call is a single builder method call.
	Call struct {
		Pos lexer.Position

		Name string `parser:"@Ident '('"`
		Args []*Arg `parser:"(@@ (',' @@)*)? ')'"`
	}

	// Arg is a call argument: a string literal or a nested chain.
	Arg struct {
		Pos lexer.Position

		String *string `parser:"  @String"`
		Chain  *Chain  `parser:"| @@"`
	}
)

// Parse parses a recipe from r. The name is used in error positions.
func Parse(name string, r io.Reader) (*Recipe, error) {
	recipe, err := parser.Parse(name, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse recipe")
	}

	return recipe, nil
}

// ParseString parses a recipe held in memory.
//
// Example:
//
//	r, err := recipe.ParseString(`
//		-- active users
//		Select.select("id, login").from("users").where_clause("active = true");
//	`)
func ParseString(src string) (*Recipe, error) {
	return Parse("", strings.NewReader(src))
}

// ParseFile parses the recipe file at path.
func ParseFile(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open recipe %s", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(path, f)
}
