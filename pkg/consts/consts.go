package consts

import "os"

const (
	// ConfigFile is the configuration file looked up in the working directory
	ConfigFile = "sqlasm.yaml"

	// RecipeExt is the file extension of recipe files
	RecipeExt = ".sqlr"

	// OutputExt is the file extension of rendered recipes
	OutputExt = ".sql"

	// DefaultDialect is used when no dialect is configured
	DefaultDialect = "standard"

	// DefaultLayout is used when no layout is configured
	DefaultLayout = "compact"

	// DefaultIndentSize is the number of spaces per indent level in the pretty layout
	DefaultIndentSize = 2

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)
)
