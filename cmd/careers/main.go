package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/club-careers/cmd/careers/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
