// Package cmd provides CLI commands for the sqlasm tool.
//
// This package implements the command-line interface for sqlasm, which turns
// recipe files (chains of SQL builder calls, see package recipe) into SQL text.
//
// # Available Commands
//
//   - render: render a recipe file, or every *.sqlr file under a directory
//   - dialects: print the feature table of each known dialect
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are registered
// with fx through the "commands" value group and run by Run when the fx
// application starts.
//
// # Global Options
//
//   - --config, -c: the config file (defaults to sqlasm.yaml, env SQLASM_CONFIG)
//   - --help, -h: display command help
//   - --version: display version information
//
// # Example Usage
//
//	sqlasm render queries/users.sqlr                  # compact SQL on stdout
//	sqlasm render --pretty --dialect pg queries/       # every recipe, pretty layout
//	sqlasm render -w --check queries/                  # write .sql files, reject unsupported clauses
//	sqlasm dialects                                    # feature table
package cmd
