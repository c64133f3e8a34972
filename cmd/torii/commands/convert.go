package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/torii-format/torii/document"
)

type convertConfig struct {
	*cli.Command
	Output string `cli:"name=O desc='output format: json or yaml'"`
}

// ConvertCommand returns the convert subcommand.
func ConvertCommand() *cli.Command {
	cfg := &convertConfig{Output: "json"}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "convert").
		WithSynopsis("convert [-O json|yaml] [file] - Convert a document").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *convertConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	name, err := argFile(args)
	if err != nil {
		return err
	}

	l, err := load(name)
	if err != nil {
		return err
	}
	if errs := l.parsed.Errors(); len(errs) > 0 {
		return fmt.Errorf("%s: %d syntax error(s); run `torii check` for details", l.name, len(errs))
	}

	var out []byte
	switch cfg.Output {
	case "json", "":
		out, err = document.ToJSON(l.table)
	case "yaml":
		out, err = document.ToYAML(l.table)
	default:
		return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, cfg.Output)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, string(out))
	return nil
}
