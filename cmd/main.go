package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/invisible-hand/handsetup/internal/interfaces/cli"
)

// Version is overridden by ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx, Version)
}
