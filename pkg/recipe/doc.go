// Package recipe reads builder call chains from text so statements can be kept
// in files and rendered by the sqlasm CLI.
//
// A recipe is a list of chains separated by optional semicolons. Each chain
// names a statement kind followed by builder method calls:
//
//	# users that logged in recently
//	Select
//		.select("id, login")
//		.from("users")
//		.where_clause("last_seen > now() - interval '7 days'")
//		.order_by("login");
//
//	Select.select("login").from("users")
//		.union(Select.select("login").from("addresses"))
//
// Method names may be written in snake_case, camelCase or PascalCase. Arguments
// are Go string literals (double-quoted or raw backtick strings), nested chains
// for statement operands, or bare clause names for RawBefore and RawAfter:
//
//	Select.select("id").from("users").raw_before(Where, "/* tenant */")
//
// Comments start with # or -- and run to the end of the line.
//
// Typical use:
//
//	r, err := recipe.ParseFile("queries/users.sqlr")
//	if err != nil {
//		return err
//	}
//
//	stmts, err := recipe.NewEvaluator(builder.For(dialect.PostgreSQL)).Eval(r)
//	if err != nil {
//		return err
//	}
//
//	return recipe.Render(os.Stdout, format.Pretty, stmts...)
package recipe
