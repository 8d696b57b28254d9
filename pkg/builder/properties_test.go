package builder_test

import (
	"sync"
	"testing"

	. "github.com/pseudomuto/sqlasm/pkg/builder"
	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestRender_Idempotent(t *testing.T) {
	stmts := []Statement{
		NewSelect().With("a", Raw("SELECT 1")).Select("*").From("a").Union(Raw("SELECT 2")),
		For(dialect.PostgreSQL).NewInsert().InsertInto("t").Values("(1)").Returning("id"),
		NewTransaction().StartTransaction("").Savepoint("a").Commit(""),
		NewCreateTable().CreateTable("t").Column("id INT").PrimaryKey("id"),
	}

	for _, stmt := range stmts {
		for _, f := range []format.Formatter{format.Compact, format.Pretty} {
			require.Equal(t, stmt.Render(f), stmt.Render(f))
		}
	}
}

func TestRender_TrimNormalization(t *testing.T) {
	pg := For(dialect.PostgreSQL)

	tests := []struct {
		name    string
		padded  Statement
		trimmed Statement
	}{
		{
			name:    "list",
			padded:  NewSelect().Select(" id ").From("\tusers\n"),
			trimmed: NewSelect().Select("id").From("users"),
		},
		{
			name:    "single slot",
			padded:  pg.NewSelect().Select("id").Limit("  10 "),
			trimmed: pg.NewSelect().Select("id").Limit("10"),
		},
		{
			name:    "condition",
			padded:  NewSelect().Where(" a ").WhereOr(" b "),
			trimmed: NewSelect().Where("a").WhereOr("b"),
		},
		{
			name:    "raw",
			padded:  NewSelect().Select("1").RawBefore(SelectFrom, "  /* c */ ").Raw(" -- x "),
			trimmed: NewSelect().Select("1").RawBefore(SelectFrom, "/* c */").Raw("-- x"),
		},
		{
			name:    "transaction command",
			padded:  NewTransaction().Savepoint(" a ").Commit("  "),
			trimmed: NewTransaction().Savepoint("a").Commit(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.trimmed.String(), tt.padded.String())
			require.Equal(t, tt.trimmed.Render(format.Pretty), tt.padded.Render(format.Pretty))
		})
	}
}

func TestRender_DuplicateSuppression(t *testing.T) {
	require.Equal(t,
		NewSelect().Select("a").From("t").OrderBy("a").String(),
		NewSelect().Select("a").Select("a").From("t").From(" t ").OrderBy("a").OrderBy("a").String(),
	)

	// raw text ahead of the statement is deduplicated, raw fragments are not
	require.Equal(t, "x SELECT 1", NewSelect().Raw("x").Raw("x").Select("1").String())
	require.Equal(t, "SELECT 1 /* a */ /* a */",
		NewSelect().Select("1").RawAfter(SelectSelect, "/* a */").RawAfter(SelectSelect, "/* a */").String())
}

func TestRender_ClauseOrderInvariance(t *testing.T) {
	pg := For(dialect.PostgreSQL)

	a := pg.NewDelete().DeleteFrom("users").Using("orders").Where("x").Returning("id")
	b := pg.NewDelete().Returning("id").Where("x").Using("orders").DeleteFrom("users")
	require.Equal(t, a.String(), b.String())
	require.Equal(t, a.Pretty(), b.Pretty())

	c := NewSelect().Having("n > 1").GroupBy("k").From("t").Select("k, count(*) AS n")
	d := NewSelect().Select("k, count(*) AS n").From("t").GroupBy("k").Having("n > 1")
	require.Equal(t, d.String(), c.String())
}

func TestClone_Independence(t *testing.T) {
	pg := For(dialect.PostgreSQL)

	t.Run("select", func(t *testing.T) {
		b := NewSelect().Select("id").From("users").Where("a").With("x", Raw("SELECT 1")).Union(Raw("SELECT 2"))
		before := b.String()

		b.Clone().Select("login").From("orders").Where("b").With("y", Raw("SELECT 3")).Union(Raw("SELECT 4")).
			RawBefore(SelectWhere, "/* c */").Raw("-- x")
		require.Equal(t, before, b.String())
	})

	t.Run("insert", func(t *testing.T) {
		b := pg.NewInsert().InsertInto("t").Values("(1)").Returning("id")
		before := b.String()

		b.Clone().InsertInto("u").Values("(2)").Returning("x").DefaultValues().RawAfter(InsertValues, "-- x")
		require.Equal(t, before, b.String())
	})

	t.Run("update", func(t *testing.T) {
		b := NewUpdate().Update("t").Set("a = 1").Where("id = 1")
		before := b.String()

		b.Clone().Update("u").Set("b = 2").WhereOr("id = 2")
		require.Equal(t, before, b.String())
	})

	t.Run("delete", func(t *testing.T) {
		b := NewDelete().DeleteFrom("t").Where("id = 1")
		before := b.String()

		b.Clone().DeleteFrom("u").Where("id = 2")
		require.Equal(t, before, b.String())
	})

	t.Run("ddl", func(t *testing.T) {
		table := NewCreateTable().CreateTable("t").Column("id INT")
		alter := NewAlterTable().AlterTable("t").Add("COLUMN a INT")
		index := pg.NewCreateIndex().CreateIndex("i").On("t").Column("a")
		drop := pg.NewDropTable().DropTable("t")
		dropIdx := pg.NewDropIndex().DropIndex("i")
		values := NewValues().Values("(1)")

		before := []string{table.String(), alter.String(), index.String(), drop.String(), dropIdx.String(), values.String()}

		table.Clone().Column("b INT").PrimaryKey("id").ForeignKey("(b) REFERENCES u (id)")
		alter.Clone().Drop("COLUMN a")
		index.Clone().Column("b").Include("c").Where("a > 0").Unique()
		drop.Clone().DropTable("u")
		dropIdx.Clone().DropIndex("j")
		values.Clone().Values("(2)")

		after := []string{table.String(), alter.String(), index.String(), drop.String(), dropIdx.String(), values.String()}
		require.Equal(t, before, after)
	})

	t.Run("transaction", func(t *testing.T) {
		b := NewTransaction().StartTransaction("").Savepoint("a").Commit("")
		before := b.String()

		b.Clone().Savepoint("b").Rollback("").Statement(Raw("SELECT 1"))
		require.Equal(t, before, b.String())
	})
}

func TestRender_RawAtEmptyClause(t *testing.T) {
	require.Equal(t, "/* c */", NewSelect().RawBefore(SelectWhere, "/* c */").String())
	require.Equal(t, "UPDATE t /* c */", NewUpdate().Update("t").RawAfter(UpdateWhere, "/* c */").String())
	require.Equal(t, "-- only raw", NewDelete().Raw("-- only raw").String())
}

func TestRender_CrossGoroutineHandoff(t *testing.T) {
	stmt := For(dialect.PostgreSQL).NewSelect().
		With("a", NewSelect().Select("id").From("users")).
		Select("*").
		From("a").
		Limit("10").
		Union(Raw("SELECT 1"))
	expected := stmt.Pretty()

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = stmt.Clone().Pretty()
		}()
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, expected, got)
	}
}
