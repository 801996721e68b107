package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/cli"
	"github.com/dmitrijs2005/gophtodo/internal/config"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := cli.NewApp(cfg, logger)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "session ended with error", "err", err)
		os.Exit(1)
	}

}
