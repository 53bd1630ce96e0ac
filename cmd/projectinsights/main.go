package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/projectinsights/internal/cli"
	"github.com/rshade/projectinsights/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return exitCode(root.ExecuteContext(ctx))
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
