// Package main starts the portfolio command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	portfoliocmd "github.com/louisbranch/portfolio/internal/cmd/portfolio"
	"github.com/louisbranch/portfolio/internal/platform/cmd"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := portfoliocmd.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(cmd.ExitCode(os.Stderr, err))
}
