package main

import (
	"context"

	"github.com/scott-cotton/cli"
	"github.com/torii-format/torii/cmd/torii/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
