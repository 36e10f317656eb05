package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/nnaakkaaii/minimax2048/internal/domain"
)

// AutoPlayConfig は自動プレイの設定
type AutoPlayConfig struct {
	MaxDepth int
	Delay    time.Duration
	Verbose  bool
	// MaxMoves が正ならその手数で打ち切る
	MaxMoves int
}

// DefaultAutoPlayConfig はデフォルトの設定を返す
func DefaultAutoPlayConfig() AutoPlayConfig {
	return AutoPlayConfig{
		MaxDepth: domain.DefaultDepth,
		Delay:    100 * time.Millisecond,
		Verbose:  true,
	}
}

// Result は1ゲームの結果
type Result struct {
	Seed    uint64
	Score   float64
	Moves   int
	MaxTile int
}

// NewSeededGame はseedから再現可能なゲームを生成する
func NewSeededGame(seed uint64, depth int, logger zerolog.Logger) *domain.Game {
	rng := rand.New(rand.NewSource(seed))
	solver := domain.NewSolver(rng, domain.WithDepth(depth), domain.WithLogger(logger))
	return domain.NewGame(rng, domain.WithSolver(solver), domain.WithGameLogger(logger))
}

// AutoPlay はゲームオーバーまでAIの手を適用する
// ctxがキャンセルされた場合はその時点の結果とエラーを返す
func AutoPlay(ctx context.Context, w io.Writer, game *domain.Game, config AutoPlayConfig) (Result, error) {
	if config.Verbose {
		fmt.Fprintln(w, "=== 2048 AutoPlay ===")
		fmt.Fprintf(w, "Depth: %d\n\n", config.MaxDepth)
	}

	for !game.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return result(game), err
		}
		if config.MaxMoves > 0 && game.Moves() >= config.MaxMoves {
			break
		}

		if config.Verbose {
			printState(w, game.Snapshot())
			fmt.Fprintf(w, "Moves: %d\n", game.Moves())
		}

		dir, ok := game.ApplyAIMove()
		if !ok {
			break
		}

		if config.Verbose {
			fmt.Fprintf(w, "Move: %s\n\n", dir)
		}

		if config.Delay > 0 {
			select {
			case <-ctx.Done():
				return result(game), ctx.Err()
			case <-time.After(config.Delay):
			}
		}
	}

	res := result(game)
	if config.Verbose {
		fmt.Fprint(w, game.Board())
		fmt.Fprintln(w, "=== Game Over ===")
		fmt.Fprintf(w, "Final Score: %.2f\n", res.Score)
		fmt.Fprintf(w, "Total Moves: %d\n", res.Moves)
		fmt.Fprintf(w, "Max Tile: %d\n", res.MaxTile)
	}
	return res, nil
}

func result(game *domain.Game) Result {
	s := game.Snapshot()
	return Result{Score: s.Score, Moves: s.Moves, MaxTile: s.MaxTile}
}

// BatchConfig は複数ゲームを並行して実行する設定
type BatchConfig struct {
	Games    int
	Workers  int
	Seed     uint64
	MaxDepth int
	MaxMoves int
}

// BatchSummary は複数ゲームの集計
type BatchSummary struct {
	Results   []Result
	MeanScore float64
	MeanMoves float64
	// MaxTiles は最大タイルごとのゲーム数
	MaxTiles map[int]int
}

// RunBatch はseed, seed+1, ... のゲームを並行して自動プレイする
// 各ゲームは自分専用の乱数源とGameを持つので、結果はWorkersの数に依らない
func RunBatch(ctx context.Context, config BatchConfig, logger zerolog.Logger) (BatchSummary, error) {
	if config.Games <= 0 {
		return BatchSummary{}, fmt.Errorf("games must be positive, got %d", config.Games)
	}

	results := make([]Result, config.Games)
	g, ctx := errgroup.WithContext(ctx)
	if config.Workers > 0 {
		g.SetLimit(config.Workers)
	}

	for i := 0; i < config.Games; i++ {
		i := i
		seed := config.Seed + uint64(i)
		g.Go(func() error {
			gameLogger := logger.With().Uint64("seed", seed).Logger()
			game := NewSeededGame(seed, config.MaxDepth, gameLogger)
			res, err := AutoPlay(ctx, io.Discard, game, AutoPlayConfig{
				MaxDepth: config.MaxDepth,
				MaxMoves: config.MaxMoves,
			})
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			res.Seed = seed
			results[i] = res
			gameLogger.Info().
				Int("game", i+1).
				Float64("score", res.Score).
				Int("moves", res.Moves).
				Int("max_tile", res.MaxTile).
				Msg("game finished")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return BatchSummary{}, err
	}
	return summarize(results), nil
}

func summarize(results []Result) BatchSummary {
	s := BatchSummary{
		Results:  results,
		MaxTiles: make(map[int]int),
	}
	for _, r := range results {
		s.MeanScore += r.Score
		s.MeanMoves += float64(r.Moves)
		s.MaxTiles[r.MaxTile]++
	}
	if n := float64(len(results)); n > 0 {
		s.MeanScore /= n
		s.MeanMoves /= n
	}
	return s
}

// PrintSummary は集計結果を表示する
func PrintSummary(w io.Writer, s BatchSummary) {
	fmt.Fprintf(w, "=== %d games ===\n", len(s.Results))
	fmt.Fprintf(w, "Mean Score: %.2f\n", s.MeanScore)
	fmt.Fprintf(w, "Mean Moves: %.1f\n", s.MeanMoves)

	tiles := make([]int, 0, len(s.MaxTiles))
	for tile := range s.MaxTiles {
		tiles = append(tiles, tile)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiles)))

	fmt.Fprintln(w, "Max Tile:")
	for _, tile := range tiles {
		count := s.MaxTiles[tile]
		fmt.Fprintf(w, "  %5d: %d (%.1f%%)\n", tile, count, 100*float64(count)/float64(len(s.Results)))
	}
}
