package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/matzehuels/archviz/internal/cli"
	"github.com/matzehuels/archviz/pkg/buildinfo"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		os.Exit(1)
	}
}

// run executes the root command. fang prints errors and styles help output.
func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	return fang.Execute(ctx, c.RootCommand(), fang.WithVersion(buildinfo.Version))
}
