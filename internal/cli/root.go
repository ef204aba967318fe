// Package cli implements the command-line interface for hu01cat, a thin
// demonstration shell around the hu01 decoder. It owns no decoding logic
// of its own.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// Root defines global CLI flags.
type Root struct{}

// CmdVersion prints build metadata.
type CmdVersion struct{}

// Execute runs the version command.
func (c *CmdVersion) Execute(args []string) error {
	fmt.Println("hu01cat (development build)")
	return nil
}

// Run parses arguments and executes the selected command.
func Run(args []string) error {
	var root Root

	parser := flags.NewParser(&root, flags.Default)
	parser.Name = filepath.Base(os.Args[0])

	prog := parser.Name
	if _, err := parser.AddCommand(
		"cat",
		"Decode one or more HU01 files to stdout",
		fmt.Sprintf(
			`Decode HU01 compressed files and write the recovered plaintext.

Examples:
  %s cat message.hu01
  %s cat message.hu01 --out message.txt`,
			prog, prog,
		),
		&CmdCat{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"batch",
		"Decode every file listed in a YAML batch config",
		fmt.Sprintf(
			`Run multiple decode jobs from a config file.

Examples:
  %s batch ./hu01cat.yaml`,
			prog,
		),
		&CmdBatch{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"version",
		"Print build metadata",
		fmt.Sprintf(`Show build information.

Examples:
  %s version`, prog),
		&CmdVersion{},
	); err != nil {
		return err
	}

	_, err := parser.ParseArgs(args)
	if err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	return nil
}
