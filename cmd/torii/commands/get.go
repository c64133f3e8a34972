package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/torii-format/torii/accessor"
	"github.com/torii-format/torii/document"
)

type getConfig struct {
	*cli.Command
	Raw bool `cli:"name=raw aliases=r desc='print scalar strings without quoting'"`
}

// GetCommand returns the get subcommand.
func GetCommand() *cli.Command {
	cfg := &getConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get <path> [file] - Print the value at a dotted path").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: usage: torii get <path> [file]", cli.ErrUsage)
	}
	path := args[0]
	name, err := argFile(args[1:])
	if err != nil {
		return err
	}

	l, err := load(name)
	if err != nil {
		return err
	}

	v, err := accessor.GetPath(l.table, path)
	if err != nil {
		return err
	}

	if cfg.Raw {
		if s, ok := v.(*document.String); ok {
			fmt.Fprintln(cc.Out, s.Value)
			return nil
		}
	}
	out, err := document.ToJSON(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, string(out))
	return nil
}
