package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlasm/pkg/config"
	"github.com/pseudomuto/sqlasm/pkg/consts"
	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sqlasm.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("defaults", func(t *testing.T) {
		for _, src := range []string{"", "other_key: value", "layout: \"\"\nindent_size: -1"} {
			cfg, err := LoadConfig(strings.NewReader(src))
			require.NoError(t, err)
			require.Equal(t, consts.DefaultDialect, cfg.Dialect)
			require.Equal(t, consts.DefaultLayout, cfg.Layout)
			require.Equal(t, consts.DefaultIndentSize, cfg.IndentSize)
			require.False(t, cfg.LowercaseKeywords)
			require.Empty(t, cfg.Dialects)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name     string
			src      string
			expected string
		}{
			{name: "invalid yaml", src: "invalid: yaml: [", expected: "failed to unmarshal config"},
			{name: "unknown layout", src: "layout: wide", expected: `invalid config: unknown layout: "wide"`},
			{name: "unknown dialect", src: "dialect: oracle", expected: `invalid config: unknown dialect: "oracle"`},
			{
				name:     "unknown base",
				src:      "dialects:\n  - name: x\n    base: oracle",
				expected: `invalid config: dialect x: unknown dialect: "oracle"`,
			},
			{
				name:     "unknown feature",
				src:      "dialects:\n  - name: x\n    features:\n      merge: true",
				expected: `invalid config: dialect x: unknown dialect feature: "merge"`,
			},
			{
				name:     "unnamed dialect",
				src:      "dialects:\n  - base: pg",
				expected: "invalid config: custom dialect is missing a name",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg, err := LoadConfig(strings.NewReader(tt.src))
				require.Nil(t, cfg)
				require.ErrorContains(t, err, tt.expected)
			})
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), consts.ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("error", func(t *testing.T) {
		cfg, err := LoadConfigFile("nonexistent.yaml")
		require.Nil(t, cfg)
		require.ErrorContains(t, err, "failed to open file")
	})
}

func TestLoadDefault(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

		cfg, err := LoadDefault()
		require.NoError(t, err)
		require.Nil(t, cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))
		t.Setenv(EnvConfigFile, path)

		cfg, err := LoadDefault()
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})
}

func TestConfig_GetFormatter(t *testing.T) {
	var cfg *Config
	require.Equal(t, format.Compact, cfg.GetFormatter())

	cfg = &Config{Layout: "pretty", IndentSize: 2}
	require.Equal(t, format.Pretty, cfg.GetFormatter())

	cfg = &Config{Layout: "compact", IndentSize: 4, LowercaseKeywords: true}
	f := cfg.GetFormatter()
	require.False(t, f.IsPretty())
	require.True(t, f.LowercaseKeywords)
}

func TestConfig_GetDialect(t *testing.T) {
	var cfg *Config
	d, err := cfg.GetDialect()
	require.NoError(t, err)
	require.Equal(t, dialect.Standard, d)

	cfg = &Config{Dialect: "mariadb"}
	d, err = cfg.GetDialect()
	require.NoError(t, err)
	require.Equal(t, dialect.MySQL, d)

	cfg = &Config{
		Dialect:  "pg",
		Dialects: []Dialect{{Name: "pg", Base: "sqlite"}},
	}
	d, err = cfg.GetDialect()
	require.NoError(t, err)
	require.Equal(t, "pg", d.Name())
	require.True(t, d.Supports(dialect.FeatureInsertOr))
}

func validateTestConfig(t *testing.T, cfg *Config) {
	t.Helper()
	require.NotNil(t, cfg)
	require.Equal(t, "legacy", cfg.Dialect)
	require.Equal(t, "pretty", cfg.Layout)
	require.Equal(t, 4, cfg.IndentSize)
	require.True(t, cfg.LowercaseKeywords)

	f := cfg.GetFormatter()
	require.True(t, f.IsPretty())
	require.Equal(t, "    ", f.Indent)
	require.True(t, f.LowercaseKeywords)

	d, err := cfg.GetDialect()
	require.NoError(t, err)
	require.Equal(t, "legacy", d.Name())
	require.False(t, d.Supports(dialect.FeatureReturning))
	require.True(t, d.Supports(dialect.FeatureOnDuplicateKey))
	require.True(t, d.Supports(dialect.FeatureOnConflict))
}
