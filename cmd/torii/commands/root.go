package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/torii-format/torii/ast"
	"github.com/torii-format/torii/document"
	"github.com/torii-format/torii/parser"
	"github.com/torii-format/torii/text"
)

const usageText = `torii - TOML toolchain

Usage:
  torii check [file...]                 Parse and report diagnostics
  torii get <path> [file]               Print the value at a dotted path
  torii convert [-O json|yaml] [file]   Convert a document to JSON or YAML

Files default to stdin when omitted.

Examples:
  torii check config.toml
  torii get servers.alpha.ports[0] config.toml
  torii convert -O yaml config.toml < config.toml`

// Root returns the root command for torii.
func Root() *cli.Command {
	return cli.NewCommand("torii").
		WithSynopsis("torii - TOML toolchain").
		WithDescription(usageText).
		WithSubs(
			CheckCommand(),
			GetCommand(),
			ConvertCommand(),
		)
}

// loaded is one read, parsed, and evaluated input.
type loaded struct {
	name      string
	source    string
	lineIndex *text.LineIndex
	parsed    parser.Parsed[*ast.Root]
	table     *document.Table
	semErrors []document.Error
}

// load reads a file, or stdin for "-" or the empty name.
func load(name string) (*loaded, error) {
	var (
		data []byte
		err  error
	)
	if name == "" || name == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	source := string(data)
	ix := text.NewLineIndex(source)
	parsed := parser.Parse(source)
	table, semErrors := document.FromRoot(parsed.Tree(), ix)
	return &loaded{
		name:      name,
		source:    source,
		lineIndex: ix,
		parsed:    parsed,
		table:     table,
		semErrors: semErrors,
	}, nil
}

// argFile returns the optional trailing file argument.
func argFile(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: too many arguments", cli.ErrUsage)
	}
}
