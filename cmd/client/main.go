package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mani62/Blog-Backend/internal/adapter"
	"github.com/mani62/Blog-Backend/internal/client"
	"github.com/mani62/Blog-Backend/internal/config"
	"github.com/mani62/Blog-Backend/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.NewClientLogger("blog-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("blog-client", cfg.LogLevel)

	if len(args) > 0 && args[0] == "version" {
		printBuildInfo()
		return
	}

	api, err := adapter.NewHTTPBlogClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
