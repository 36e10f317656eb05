package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/nnaakkaaii/minimax2048/internal/config"
	"github.com/nnaakkaaii/minimax2048/internal/domain"
	"github.com/nnaakkaaii/minimax2048/internal/logging"
	"github.com/nnaakkaaii/minimax2048/internal/usecase"
)

func main() {
	depth := flag.Int("depth", 0, "search depth (default from config)")
	seed := flag.Uint64("seed", 0, "random seed for sampled tiles (0 = config or random)")
	logLevel := flag.String("log-level", "", "log level (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *seed != 0 {
		cfg.AutoPlay.Seed = *seed
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	rng := rand.New(rand.NewSource(cfg.ResolveSeed()))
	solver := domain.NewSolver(rng, domain.WithDepth(cfg.Search.Depth), domain.WithLogger(logger))
	if err := usecase.Analyze(os.Stdin, os.Stdout, solver); err != nil {
		logger.Error().Err(err).Msg("analyzer failed")
		os.Exit(1)
	}
}
