// Package main starts the user admin web process.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	useradmincmd "github.com/louisbranch/useradmin/internal/cmd/useradmin"
	"github.com/louisbranch/useradmin/internal/platform/config"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		logrus.Fatalf("load env: %v", err)
	}
	cfg, err := useradmincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logrus.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := useradmincmd.Run(ctx, cfg); err != nil {
		logrus.Fatalf("failed to serve: %v", err)
	}
}
