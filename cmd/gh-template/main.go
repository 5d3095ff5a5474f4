package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/kxue43/gh-template/version"
)

var logger = log.New(os.Stderr, "gh-template: ", 0)

func main() {
	var cli CLI

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx := kong.Parse(
		&cli,
		kong.Name("gh-template"),
		kong.Description("Create a GitHub repository from a template repository."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
		kong.BindTo(sigCtx, (*context.Context)(nil)),
		kong.Bind(logger),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
