package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/codeshack/internal/buildinfo"
	"github.com/dmitrijs2005/codeshack/internal/client/cli"
	"github.com/dmitrijs2005/codeshack/internal/client/config"
	"github.com/dmitrijs2005/codeshack/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// After the first interrupt a second Ctrl-C kills the process as usual.
		<-ctx.Done()
		stop()
	}()

	logger := logging.New(os.Stderr, cfg.LogLevel)
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
