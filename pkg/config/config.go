package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/consts"
	"github.com/pseudomuto/sqlasm/pkg/dialect"
	"github.com/pseudomuto/sqlasm/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Dialect describes a custom capability table derived from one of the
	// canonical dialects.
	Dialect struct {
		// Name is how the dialect is referenced from the dialect setting and the
		// --dialect flag
		Name string `yaml:"name"`

		// Base names the canonical dialect the table starts from
		Base string `yaml:"base,omitempty"`

		// Features switches individual features on or off, keyed by their
		// configuration name (e.g. returning, on_conflict)
		Features map[string]bool `yaml:"features,omitempty"`
	}

	// Config represents the sqlasm project configuration.
	Config struct {
		// Dialect selects the dialect statements are built for. It may name a
		// canonical dialect, an alias or one of Dialects.
		Dialect string `yaml:"dialect"`

		// Layout is either compact or pretty
		Layout string `yaml:"layout"`

		// IndentSize is the number of spaces per indent level in the pretty layout
		IndentSize int `yaml:"indent_size"`

		// LowercaseKeywords renders SQL keywords in lower case
		LowercaseKeywords bool `yaml:"lowercase_keywords"`

		// Dialects declares custom capability tables
		Dialects []Dialect `yaml:"dialects,omitempty"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// Missing settings take their defaults from the consts package. The layout and
// every custom dialect are validated so mistakes surface when the file is
// loaded rather than at render time.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	dialect: pg
//	layout: pretty
//	`))
//	if err != nil {
//		panic(err)
//	}
//
//	d, _ := cfg.GetDialect()
//	fmt.Println(d.Name()) // postgresql
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to unmarshal config")
		}
	}

	if cfg.Dialect == "" {
		cfg.Dialect = consts.DefaultDialect
	}
	if cfg.Layout == "" {
		cfg.Layout = consts.DefaultLayout
	}
	if cfg.IndentSize <= 0 {
		cfg.IndentSize = consts.DefaultIndentSize
	}

	if _, err := format.ParseLayout(cfg.Layout); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	for _, custom := range cfg.Dialects {
		if _, err := custom.build(); err != nil {
			return nil, errors.Wrap(err, "invalid config")
		}
	}
	if _, err := cfg.GetDialect(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("sqlasm.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// GetFormatter builds the formatter described by the layout settings. A nil
// config yields the default formatter.
func (c *Config) GetFormatter() format.Formatter {
	if c == nil {
		return format.New(format.Defaults)
	}

	return format.New(format.FormatterOptions{
		Layout:            c.Layout,
		IndentSize:        c.IndentSize,
		LowercaseKeywords: c.LowercaseKeywords,
	})
}

// GetDialect resolves the configured dialect. Custom dialects take precedence
// over the canonical names. A nil config yields the default dialect.
func (c *Config) GetDialect() (dialect.Dialect, error) {
	if c == nil {
		return dialect.Lookup(consts.DefaultDialect)
	}

	return c.LookupDialect(c.Dialect)
}

// LookupDialect resolves name against the custom dialects first and the
// canonical dialects second.
func (c *Config) LookupDialect(name string) (dialect.Dialect, error) {
	if c != nil {
		for _, custom := range c.Dialects {
			if custom.Name == name {
				return custom.build()
			}
		}
	}

	return dialect.Lookup(name)
}

func (d Dialect) build() (dialect.Dialect, error) {
	if d.Name == "" {
		return dialect.Dialect{}, errors.New("custom dialect is missing a name")
	}

	base, err := dialect.Lookup(d.Base)
	if err != nil {
		return dialect.Dialect{}, errors.Wrapf(err, "dialect %s", d.Name)
	}

	overrides := make(map[dialect.Feature]bool, len(d.Features))
	for name, on := range d.Features {
		f, err := dialect.ParseFeature(name)
		if err != nil {
			return dialect.Dialect{}, errors.Wrapf(err, "dialect %s", d.Name)
		}
		overrides[f] = on
	}

	return dialect.Custom(d.Name, base, overrides), nil
}
