package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"task-manager/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	root := cli.NewRootCommand(app, setupFor(getEnvironment()))

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
