package dialect

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Feature identifies a clause or command that only some dialects accept.
type Feature int

const (
	// FeatureAlways marks clauses every dialect accepts.
	FeatureAlways Feature = iota
	// FeatureWith enables WITH (common table expressions).
	FeatureWith
	// FeatureLimitOffset enables LIMIT and OFFSET on SELECT.
	FeatureLimitOffset
	// FeatureSetOperations enables UNION, INTERSECT and EXCEPT.
	FeatureSetOperations
	// FeatureReturning enables RETURNING on INSERT, UPDATE and DELETE.
	FeatureReturning
	// FeaturePartition enables PARTITION on INSERT and DELETE.
	FeaturePartition
	// FeatureBeginEnd enables the BEGIN and END transaction commands.
	FeatureBeginEnd
	// FeatureStartTransaction enables START TRANSACTION and SET TRANSACTION.
	FeatureStartTransaction
	// FeatureMultiDropNames allows several names in DROP TABLE / DROP INDEX.
	FeatureMultiDropNames
	// FeatureIndex enables CREATE INDEX and DROP INDEX.
	FeatureIndex
	// FeatureOnConflict enables INSERT ... ON CONFLICT.
	FeatureOnConflict
	// FeatureInsertOr enables INSERT OR <action> and REPLACE INTO.
	FeatureInsertOr
	// FeatureOverriding enables INSERT ... OVERRIDING.
	FeatureOverriding
	// FeatureOnDuplicateKey enables INSERT ... ON DUPLICATE KEY UPDATE.
	FeatureOnDuplicateKey
	// FeatureUpdateFrom enables UPDATE ... FROM.
	FeatureUpdateFrom
	// FeatureDeleteUsing enables DELETE ... USING.
	FeatureDeleteUsing
	// FeatureJoinInMutation enables JOIN in UPDATE and DELETE.
	FeatureJoinInMutation
	// FeatureOrderLimitInMutation enables ORDER BY and LIMIT in UPDATE and DELETE.
	FeatureOrderLimitInMutation
	// FeatureConcurrently enables CREATE INDEX CONCURRENTLY.
	FeatureConcurrently
	// FeatureIndexUsing enables CREATE INDEX ... USING and INCLUDE.
	FeatureIndexUsing

	featureCount
)

var featureNames = [featureCount]string{
	FeatureAlways:               "always",
	FeatureWith:                 "with",
	FeatureLimitOffset:          "limit_offset",
	FeatureSetOperations:        "set_operations",
	FeatureReturning:            "returning",
	FeaturePartition:            "partition",
	FeatureBeginEnd:             "begin_end",
	FeatureStartTransaction:     "start_transaction",
	FeatureMultiDropNames:       "multi_drop_names",
	FeatureIndex:                "index",
	FeatureOnConflict:           "on_conflict",
	FeatureInsertOr:             "insert_or",
	FeatureOverriding:           "overriding",
	FeatureOnDuplicateKey:       "on_duplicate_key",
	FeatureUpdateFrom:           "update_from",
	FeatureDeleteUsing:          "delete_using",
	FeatureJoinInMutation:       "join_in_mutation",
	FeatureOrderLimitInMutation: "order_limit_in_mutation",
	FeatureConcurrently:         "concurrently",
	FeatureIndexUsing:           "index_using",
}

// String returns the snake_case name used in configuration files.
func (f Feature) String() string {
	if f < 0 || f >= featureCount {
		return ""
	}
	return featureNames[f]
}

// Features returns every optional feature in declaration order (FeatureAlways
// excluded).
func Features() []Feature {
	features := make([]Feature, 0, featureCount-1)
	for f := FeatureAlways + 1; f < featureCount; f++ {
		features = append(features, f)
	}
	return features
}

// ParseFeature resolves a feature by its configuration name.
func ParseFeature(name string) (Feature, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f := FeatureAlways + 1; f < featureCount; f++ {
		if featureNames[f] == name {
			return f, nil
		}
	}
	return FeatureAlways, errors.Errorf("unknown dialect feature: %q", name)
}

// Dialect is a capability table describing which clauses a SQL flavor accepts.
//
// Dialects are plain values: the builder package copies them into every
// statement and never mutates them. The concatenation engine is dialect
// agnostic; a dialect only decides which clause steps are part of a
// statement's rendering pipeline.
type Dialect struct {
	name     string
	features [featureCount]bool
}

var (
	// Standard accepts only the clauses of the SQL standard.
	Standard = newDialect("standard",
		FeatureWith,
		FeatureSetOperations,
		FeatureStartTransaction,
	)

	// PostgreSQL is the PostgreSQL flavor.
	PostgreSQL = newDialect("postgresql",
		FeatureWith,
		FeatureLimitOffset,
		FeatureSetOperations,
		FeatureReturning,
		FeatureBeginEnd,
		FeatureStartTransaction,
		FeatureMultiDropNames,
		FeatureIndex,
		FeatureOnConflict,
		FeatureOverriding,
		FeatureUpdateFrom,
		FeatureDeleteUsing,
		FeatureConcurrently,
		FeatureIndexUsing,
	)

	// SQLite is the SQLite flavor.
	SQLite = newDialect("sqlite",
		FeatureWith,
		FeatureLimitOffset,
		FeatureSetOperations,
		FeatureReturning,
		FeatureBeginEnd,
		FeatureIndex,
		FeatureOnConflict,
		FeatureInsertOr,
		FeatureUpdateFrom,
	)

	// MySQL is the MySQL flavor.
	MySQL = newDialect("mysql",
		FeatureWith,
		FeatureLimitOffset,
		FeatureSetOperations,
		FeaturePartition,
		FeatureBeginEnd,
		FeatureStartTransaction,
		FeatureMultiDropNames,
		FeatureOnDuplicateKey,
		FeatureJoinInMutation,
		FeatureOrderLimitInMutation,
	)

	aliases = map[string]Dialect{
		"":           Standard,
		"standard":   Standard,
		"ansi":       Standard,
		"postgresql": PostgreSQL,
		"postgres":   PostgreSQL,
		"pg":         PostgreSQL,
		"sqlite":     SQLite,
		"sqlite3":    SQLite,
		"mysql":      MySQL,
		"mariadb":    MySQL,
	}
)

func newDialect(name string, features ...Feature) Dialect {
	d := Dialect{name: name}
	d.features[FeatureAlways] = true
	for _, f := range features {
		d.features[f] = true
	}
	return d
}

// Lookup resolves one of the canonical dialects by name or alias.
func Lookup(name string) (Dialect, error) {
	d, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Dialect{}, errors.Errorf("unknown dialect: %q", name)
	}
	return d, nil
}

// Names returns the names of the canonical dialects, sorted.
func Names() []string {
	names := []string{Standard.name, PostgreSQL.name, SQLite.name, MySQL.name}
	sort.Strings(names)
	return names
}

// Custom derives a named dialect from base, switching the given features on or
// off.
func Custom(name string, base Dialect, overrides map[Feature]bool) Dialect {
	d := base
	d.name = name
	for f, on := range overrides {
		if f > FeatureAlways && f < featureCount {
			d.features[f] = on
		}
	}
	return d
}

// Name returns the dialect name.
func (d Dialect) Name() string {
	if d.name == "" {
		return Standard.name
	}
	return d.name
}

// Supports reports whether the dialect accepts the given feature.
// FeatureAlways is supported by every dialect, including the zero value.
func (d Dialect) Supports(f Feature) bool {
	if f == FeatureAlways {
		return true
	}
	if f < 0 || f >= featureCount {
		return false
	}
	return d.features[f]
}

// String implements fmt.Stringer.
func (d Dialect) String() string {
	return d.Name()
}
