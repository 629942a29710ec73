package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a hot-seat match in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play many matches unattended and report seat statistics"`
	Config   ConfigCmd        `cmd:"" help:"Work with match configuration files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("vegas"),
		kong.Description("Vegas dice game engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
