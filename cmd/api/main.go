package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/autocomplete/internal/api"
	"github.com/kumarlokesh/autocomplete/internal/autocomplete"
	"github.com/kumarlokesh/autocomplete/internal/config"
	"github.com/kumarlokesh/autocomplete/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfgPath := *configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.GetConfigPath()
		if err != nil {
			log.Warn().Err(err).Msg("Using default configuration")
			cfgPath = ""
		}
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	level := cfg.Log.Level
	if cfg.Server.Debug {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level, Pretty: cfg.Log.Pretty})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	svc := autocomplete.New(
		autocomplete.WithLogger(logger),
		autocomplete.WithSorted(cfg.Suggest.Sorted),
		autocomplete.WithMaxResults(cfg.Suggest.MaxResults),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Vocabulary.Path != "" {
		if _, err := svc.LoadFile(ctx, cfg.Vocabulary.Path); err != nil {
			logger.Fatal().Err(err).Msg("Failed to load vocabulary")
		}
	}
	if len(cfg.Vocabulary.Words) > 0 {
		added := svc.Add(cfg.Vocabulary.Words...)
		logger.Info().Int("added", added).Msg("Added configured words")
	}

	server := api.NewServer(cfg.Server.Addr(), svc, api.WithLogger(logger))

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr()).Int("words", svc.Len()).Msg("Starting server")
		serverErrors <- server.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Fatal().Err(err).Msg("Server error")
		}
		return
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}
	logger.Info().Msg("Server exiting")
}
