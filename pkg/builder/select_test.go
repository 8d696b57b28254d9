package builder_test

import (
	"testing"

	. "github.com/pseudomuto/sqlasm/pkg/builder"
	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	pg := For(dialect.PostgreSQL)

	tests := []struct {
		name     string
		stmt     *Select
		expected string
	}{
		{
			name:     "columns and table",
			stmt:     NewSelect().Select("id, login").From("users"),
			expected: "SELECT id, login FROM users",
		},
		{
			name:     "where only",
			stmt:     NewSelect().Where("id = $1").Where("active = true"),
			expected: "WHERE id = $1 AND active = true",
		},
		{
			name:     "duplicate group by",
			stmt:     NewSelect().GroupBy("status").GroupBy("status"),
			expected: "GROUP BY status",
		},
		{
			name: "every clause in reverse call order",
			stmt: pg.NewSelect().
				Offset("20").
				Limit("10").
				OrderBy("id").
				Window("w AS (PARTITION BY dept)").
				Having("count(*) > 1").
				GroupBy("dept").
				Where("active").
				Join("JOIN teams t ON t.id = u.team_id").
				From("users u").
				Select("dept, count(*)"),
			expected: "SELECT dept, count(*) FROM users u JOIN teams t ON t.id = u.team_id WHERE active " +
				"GROUP BY dept HAVING count(*) > 1 WINDOW w AS (PARTITION BY dept) ORDER BY id LIMIT 10 OFFSET 20",
		},
		{
			name: "join kinds keep call order",
			stmt: NewSelect().
				Select("*").
				From("users u").
				LeftJoin("orders o ON o.user_id = u.id").
				InnerJoin("teams t ON t.id = u.team_id").
				RightJoin("roles r ON r.id = u.role_id").
				CrossJoin("settings"),
			expected: "SELECT * FROM users u LEFT JOIN orders o ON o.user_id = u.id INNER JOIN teams t ON t.id = u.team_id " +
				"RIGHT JOIN roles r ON r.id = u.role_id CROSS JOIN settings",
		},
		{
			name:     "and or conditions",
			stmt:     NewSelect().Where("a = 1").WhereOr("b = 2").WhereAnd("c = 3"),
			expected: "WHERE a = 1 OR b = 2 AND c = 3",
		},
		{
			name:     "first condition ignores its operator",
			stmt:     NewSelect().WhereOr("a").Where("b"),
			expected: "WHERE a AND b",
		},
		{
			name:     "having",
			stmt:     NewSelect().Select("dept").From("users").GroupBy("dept").Having("count(*) > 1").HavingOr("dept = 'ops'"),
			expected: "SELECT dept FROM users GROUP BY dept HAVING count(*) > 1 OR dept = 'ops'",
		},
		{
			name:     "limit keeps the last value",
			stmt:     pg.NewSelect().Select("id").From("users").Limit("10").Limit(" 5 "),
			expected: "SELECT id FROM users LIMIT 5",
		},
		{
			name:     "empty limit clears the slot",
			stmt:     pg.NewSelect().Select("id").From("users").Limit("10").Limit(""),
			expected: "SELECT id FROM users",
		},
		{
			name:     "whitespace only input is ignored",
			stmt:     NewSelect().Select("   ").From("users").Where("\t"),
			expected: "FROM users",
		},
		{
			name:     "empty statement",
			stmt:     NewSelect(),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.String())
		})
	}
}

func TestSelect_With(t *testing.T) {
	t.Run("single cte", func(t *testing.T) {
		stmt := NewSelect().
			With("active_users", NewSelect().Select("id").From("users").Where("active")).
			Select("*").
			From("active_users")

		require.Equal(t, "WITH active_users AS (SELECT id FROM users WHERE active) SELECT * FROM active_users", stmt.String())
	})

	t.Run("several ctes", func(t *testing.T) {
		stmt := NewSelect().
			With("a", Raw("SELECT 1")).
			With("b", Raw("SELECT 2")).
			Select("*").
			From("a, b")

		require.Equal(t, "WITH a AS (SELECT 1), b AS (SELECT 2) SELECT * FROM a, b", stmt.String())
	})

	t.Run("pretty layout indents each body once", func(t *testing.T) {
		stmt := NewSelect().
			With("a", Raw("SELECT 1")).
			With("b", NewSelect().Select("id").From("t").Where("x")).
			Select("*").
			From("a, b")

		expected := "WITH a AS (\n" +
			"  SELECT 1\n" +
			"),\n" +
			"b AS (\n" +
			"  SELECT\n" +
			"    id\n" +
			"  FROM\n" +
			"    t\n" +
			"  WHERE\n" +
			"    x\n" +
			")\n" +
			"SELECT\n" +
			"  *\n" +
			"FROM\n" +
			"  a, b"
		require.Equal(t, expected, stmt.Pretty())
	})

	t.Run("repeated name replaces the body in place", func(t *testing.T) {
		stmt := NewSelect().
			With("a", Raw("SELECT 1")).
			With("b", Raw("SELECT 2")).
			With(" a ", Raw("SELECT 3")).
			Select("*")

		require.Equal(t, "WITH a AS (SELECT 3), b AS (SELECT 2) SELECT *", stmt.String())
	})

	t.Run("empty operands are dropped", func(t *testing.T) {
		stmt := NewSelect().
			With("a", Raw("   ")).
			With("b", NewSelect()).
			With("", Raw("SELECT 1")).
			With("c", nil).
			Select("1")

		require.Equal(t, "SELECT 1", stmt.String())
	})

	t.Run("operand is copied", func(t *testing.T) {
		inner := NewSelect().Select("id").From("users")
		outer := NewSelect().With("u", inner).Select("*").From("u")
		before := outer.String()

		inner.Where("banned = false")
		require.Equal(t, before, outer.String())
	})
}

func TestSelect_SetOperations(t *testing.T) {
	users := func() *Select { return NewSelect().Select("login").From("users") }
	addresses := func() *Select { return NewSelect().Select("login").From("addresses") }
	banned := func() *Select { return NewSelect().Select("login").From("banned") }

	tests := []struct {
		name     string
		stmt     *Select
		expected string
	}{
		{
			name:     "union",
			stmt:     users().Union(addresses()),
			expected: "(SELECT login FROM users) UNION (SELECT login FROM addresses)",
		},
		{
			name:     "intersect",
			stmt:     users().Intersect(addresses()),
			expected: "(SELECT login FROM users) INTERSECT (SELECT login FROM addresses)",
		},
		{
			name:     "operations accumulate in call order",
			stmt:     users().Union(addresses()).Except(banned()),
			expected: "((SELECT login FROM users) UNION (SELECT login FROM addresses)) EXCEPT (SELECT login FROM banned)",
		},
		{
			name:     "except then union",
			stmt:     users().Except(banned()).Union(addresses()),
			expected: "((SELECT login FROM users) EXCEPT (SELECT login FROM banned)) UNION (SELECT login FROM addresses)",
		},
		{
			name:     "empty operand is dropped",
			stmt:     users().Union(NewSelect()).Union(nil),
			expected: "SELECT login FROM users",
		},
		{
			name:     "raw text operand",
			stmt:     users().Union(Raw("SELECT 'root'")),
			expected: "(SELECT login FROM users) UNION (SELECT 'root')",
		},
		{
			name:     "raw before lands in front of the operator",
			stmt:     users().Union(addresses()).RawBefore(SelectSetOperations, "/* merge */"),
			expected: "(SELECT login FROM users) /* merge */ UNION (SELECT login FROM addresses)",
		},
		{
			name:     "raw after follows the last operand",
			stmt:     users().Union(addresses()).RawAfter(SelectSetOperations, "-- done"),
			expected: "(SELECT login FROM users) UNION (SELECT login FROM addresses) -- done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.String())
		})
	}

	t.Run("operand is copied", func(t *testing.T) {
		right := addresses()
		stmt := users().Union(right)
		right.Where("active")

		require.Equal(t, "(SELECT login FROM users) UNION (SELECT login FROM addresses)", stmt.String())
	})
}

func TestSelect_Dialect(t *testing.T) {
	t.Run("unsupported clauses are skipped", func(t *testing.T) {
		stmt := NewSelect().
			Select("id").
			From("users").
			Limit("10").
			RawBefore(SelectLimit, "/* page */")

		require.Equal(t, "SELECT id FROM users", stmt.String())
		require.Equal(t, dialect.Standard, stmt.Dialect())

		err := stmt.Check()
		require.ErrorIs(t, err, ErrUnsupportedClause)
		require.EqualError(t, err, "SELECT: Limit not supported by the standard dialect: unsupported clause")
	})

	t.Run("supported clauses pass the check", func(t *testing.T) {
		stmt := For(dialect.MySQL).NewSelect().Select("id").From("users").Limit("10").Offset("5")
		require.NoError(t, stmt.Check())
		require.Equal(t, "SELECT id FROM users LIMIT 10 OFFSET 5", stmt.String())
	})

	t.Run("custom dialect", func(t *testing.T) {
		legacy := dialect.Custom("legacy", dialect.Standard, map[dialect.Feature]bool{
			dialect.FeatureSetOperations: false,
		})

		stmt := For(legacy).NewSelect().Select("1").Union(Raw("SELECT 2"))
		require.Equal(t, "SELECT 1", stmt.String())
		require.EqualError(t, stmt.Check(), "SELECT: SetOperations not supported by the legacy dialect: unsupported clause")
	})
}

func TestSelect_Keywords(t *testing.T) {
	f := format.New(format.FormatterOptions{Layout: format.LayoutCompact})
	stmt := NewSelect().Select("id").From("users").Where("a").WhereOr("b").OrderBy("id")

	require.Equal(t, "select id from users where a or b order by id", stmt.Render(f))
}

func TestSelectClause_String(t *testing.T) {
	require.Equal(t, "With", SelectWith.String())
	require.Equal(t, "Where", SelectWhere.String())
	require.Equal(t, "SetOperations", SelectSetOperations.String())
	require.Empty(t, SelectClause(99).String())
	require.Empty(t, SelectClause(-1).String())
}

// A repeated condition is matched on its text alone. Adding it again with a
// different join operator is a no-op even though the operator differs, so
// Where("a").WhereOr("a") keeps a single entry instead of rendering "a OR a".
func TestSelect_DuplicateConditionIgnoresOperator(t *testing.T) {
	tests := []struct {
		name     string
		stmt     *Select
		expected string
	}{
		{
			name:     "or after and",
			stmt:     NewSelect().Where("a").WhereOr("a"),
			expected: "WHERE a",
		},
		{
			name:     "and after or",
			stmt:     NewSelect().Where("a").WhereOr("b").WhereAnd("b"),
			expected: "WHERE a OR b",
		},
		{
			name:     "having",
			stmt:     NewSelect().Having("n > 1").HavingOr(" n > 1 "),
			expected: "HAVING n > 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.String())
		})
	}
}
