package config

import (
	"os"

	"github.com/pseudomuto/sqlasm/pkg/consts"
	"go.uber.org/fx"
)

// EnvConfigFile names the environment variable that overrides the config path.
const EnvConfigFile = "SQLASM_CONFIG"

var Module = fx.Module("config", fx.Provide(
	// Loads sqlasm.yaml (or $SQLASM_CONFIG) when present. A missing file yields a
	// nil config so sqlasm works outside of a configured project.
	func() (*Config, error) {
		return LoadDefault()
	},
))

// LoadDefault loads the file named by $SQLASM_CONFIG, falling back to
// sqlasm.yaml in the working directory. It returns a nil config when the file
// does not exist.
func LoadDefault() (*Config, error) {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		path = consts.ConfigFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	return LoadConfigFile(path)
}
