package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nnaakkaaii/minimax2048/internal/config"
	"github.com/nnaakkaaii/minimax2048/internal/logging"
	"github.com/nnaakkaaii/minimax2048/internal/usecase"
)

func main() {
	depth := flag.Int("depth", 0, "search depth (default from config)")
	delay := flag.Int("delay", -1, "delay between moves in ms (default from config)")
	games := flag.Int("games", 0, "number of games; more than 1 prints a summary")
	workers := flag.Int("workers", -1, "concurrent games for -games (0 = unlimited)")
	seed := flag.Uint64("seed", 0, "random seed (0 = config or random)")
	quiet := flag.Bool("quiet", false, "suppress board output")
	logLevel := flag.String("log-level", "", "log level (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *delay >= 0 {
		cfg.AutoPlay.DelayMillis = *delay
	}
	if *games > 0 {
		cfg.AutoPlay.Games = *games
	}
	if *workers >= 0 {
		cfg.AutoPlay.Workers = *workers
	}
	if *seed != 0 {
		cfg.AutoPlay.Seed = *seed
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid options")
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := cfg.ResolveSeed()
	logger.Info().Uint64("seed", s).Int("depth", cfg.Search.Depth).Int("games", cfg.AutoPlay.Games).Msg("starting autoplay")

	if cfg.AutoPlay.Games > 1 {
		summary, err := usecase.RunBatch(ctx, usecase.BatchConfig{
			Games:    cfg.AutoPlay.Games,
			Workers:  cfg.AutoPlay.Workers,
			Seed:     s,
			MaxDepth: cfg.Search.Depth,
		}, logger)
		if err != nil {
			logger.Error().Err(err).Msg("batch aborted")
			os.Exit(1)
		}
		usecase.PrintSummary(os.Stdout, summary)
		return
	}

	game := usecase.NewSeededGame(s, cfg.Search.Depth, logger)
	_, err = usecase.AutoPlay(ctx, os.Stdout, game, usecase.AutoPlayConfig{
		MaxDepth: cfg.Search.Depth,
		Delay:    time.Duration(cfg.AutoPlay.DelayMillis) * time.Millisecond,
		Verbose:  !*quiet,
	})
	if err != nil {
		logger.Error().Err(err).Msg("autoplay aborted")
		os.Exit(1)
	}
	if *quiet {
		snap := game.Snapshot()
		logger.Info().Float64("score", snap.Score).Int("moves", snap.Moves).Int("max_tile", snap.MaxTile).Msg("game finished")
	}
}
