package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/nnaakkaaii/minimax2048/internal/config"
	"github.com/nnaakkaaii/minimax2048/internal/domain"
	"github.com/nnaakkaaii/minimax2048/internal/logging"
	"github.com/nnaakkaaii/minimax2048/internal/ui"
	"github.com/nnaakkaaii/minimax2048/internal/usecase"
)

func main() {
	plain := flag.Bool("plain", false, "use the line-based interface instead of the terminal UI")
	depth := flag.Int("depth", 0, "AI search depth (default from config)")
	seed := flag.Uint64("seed", 0, "random seed (0 = config or random)")
	logLevel := flag.String("log-level", "", "log level (default from config)")
	writeConfig := flag.Bool("write-config", false, "save the effective settings to config.json and exit")
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

	if *writeConfig {
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid options")
		}
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Str("path", path).Msg("config saved")
		return
	}

	logger, closeLog := openLogger(cfg, *plain)
	defer closeLog()

	s := cfg.ResolveSeed()
	logger.Info().Uint64("seed", s).Int("depth", cfg.Search.Depth).Msg("starting game")

	rng := rand.New(rand.NewSource(s))
	solver := domain.NewSolver(rng, domain.WithDepth(cfg.Search.Depth), domain.WithLogger(logger))
	game := domain.NewGame(rng, domain.WithSolver(solver), domain.WithGameLogger(logger))

	if *plain {
		if err := usecase.PlayGame(os.Stdin, os.Stdout, game); err != nil {
			logger.Error().Err(err).Msg("game aborted")
			os.Exit(1)
		}
		return
	}

	if err := ui.NewApp(game, ui.NewPalette(cfg.Theme), logger).Run(); err != nil {
		logger.Error().Err(err).Msg("terminal UI failed")
		closeLog()
		log.Fatal().Err(err).Msg("terminal UI failed")
	}
}

// openLogger はTUIならファイル、行入力モードなら標準エラーに出すロガーを返す
func openLogger(cfg *config.Config, plain bool) (zerolog.Logger, func()) {
	if plain {
		logger, err := logging.New(os.Stderr, cfg.Log.Level)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid log level")
		}
		return logger, func() {}
	}

	path, err := config.LogFilePath()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve log file")
	}
	logger, closer, err := logging.OpenFile(path, cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	return logger, func() { closer.Close() }
}
