package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zones/communication/server"
	"zones/config"
	"zones/experiments"
	"zones/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: zones <command> [flags]

commands:
  serve       run the HTTP server
  experiment  play the configured matchups and write CSV results
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	flags := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	configPath := flags.String("config", "", "Path to the YAML config file")
	flags.Parse(os.Args[2:])

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	setupLogging(cfg.Log)

	var err error
	switch os.Args[1] {
	case "serve":
		err = serve(cfg.Server)
	case "experiment":
		_, dir, runErr := experiments.Run(cfg.Experiment)
		if runErr == nil {
			log.Info().Msgf("results written to %s", dir)
		}
		err = runErr
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", os.Args[1])
	}
}

func setupLogging(cfg config.Log) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func serve(cfg config.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.NewServer(
		server.WithSearcher(searcher.NewSearcher(searcher.WithGoroutines(cfg.Goroutines), searcher.WithMetrics())),
		server.WithMaxTurns(cfg.MaxTurns),
	)
	return s.ListenAndServe(ctx, cfg.Addr, cfg.ReadTimeout, cfg.WriteTimeout)
}
