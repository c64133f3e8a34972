package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/torii-format/torii/diagnostic"
)

type checkConfig struct {
	*cli.Command
	Quiet bool `cli:"name=quiet aliases=q desc='suppress diagnostics, exit status only'"`
}

// CheckCommand returns the check subcommand.
func CheckCommand() *cli.Command {
	cfg := &checkConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "check").
		WithSynopsis("check [file...] - Parse and report diagnostics").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *checkConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	failed := 0
	for _, name := range args {
		l, err := load(name)
		if err != nil {
			return err
		}
		ds := diagnostic.FromSyntaxErrors(l.parsed.Errors())
		ds = append(ds, diagnostic.FromDocumentErrors(l.semErrors)...)
		if cfg.Quiet {
			diagnostic.Sort(ds)
			failed += len(ds)
			continue
		}
		printer := diagnostic.NewPrinter(cc.Out, l.name)
		failed += printer.PrintAll(ds)
	}
	if failed > 0 {
		return fmt.Errorf("%d error(s)", failed)
	}
	return nil
}
