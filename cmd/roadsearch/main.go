package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/roadsearch/internal/cli"
)

var version = "dev"

func main() {
	// Ctrl+C cancels the running search or replay
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, version)
	stop()

	os.Exit(code)
}
