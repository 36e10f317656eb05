package domain

import "github.com/rs/zerolog"

// GameOption はGameの設定を変更する
type GameOption func(g *Game)

// WithSolver はAIの手の選択に使うSolverを指定する
func WithSolver(solver *Solver) GameOption {
	return func(g *Game) {
		if solver != nil {
			g.solver = solver
		}
	}
}

// WithGameLogger はゲームのイベントを出力するロガーを指定する
func WithGameLogger(logger zerolog.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// Snapshot はUIが読むためのゲーム状態のコピー
type Snapshot struct {
	Board    Board
	Score    float64
	GameOver bool
	Moves    int
	MaxTile  int
}

// Game は2048ゲームの状態を管理する
// メソッドは再入不可なので、複数のゴルーチンから呼ぶ場合は呼び出し側で直列化すること
type Game struct {
	board    Board
	score    float64
	gameOver bool
	moves    int

	rng       Rand
	evaluator Evaluator
	solver    *Solver
	logger    zerolog.Logger
}

// NewGame は新しいゲームを開始する
func NewGame(rng Rand, options ...GameOption) *Game {
	g := &Game{
		rng:    rng,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(g)
	}
	if g.solver == nil {
		g.solver = NewSolver(rng)
	}
	// スコアの差分はSolverと同じ評価関数で計算する
	g.evaluator = g.solver.Evaluator()
	g.Reset()
	return g
}

// Reset は空の盤面に2つのタイルを配置し、スコアを0に戻す
func (g *Game) Reset() {
	g.board = Spawn(Spawn(NewBoard(), g.rng), g.rng)
	g.score = 0
	g.gameOver = false
	g.moves = 0
	g.logger.Debug().Msg("game reset")
}

// Board は現在の盤面を返す
func (g *Game) Board() Board {
	return g.board
}

// Score は現在のスコアを返す
func (g *Game) Score() float64 {
	return g.score
}

// Moves は確定した手数を返す
func (g *Game) Moves() int {
	return g.moves
}

// IsGameOver はゲームオーバーかどうかを返す
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// Snapshot は現在の状態のコピーを返す
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:    g.board,
		Score:    g.score,
		GameOver: g.gameOver,
		Moves:    g.moves,
		MaxTile:  g.board.MaxTile(),
	}
}

// ApplyDirection は指定した方向にスワイプを実行する
// 盤面が変化した場合はtrueを返す。ゲームオーバー後は何もしない
func (g *Game) ApplyDirection(dir Direction) bool {
	if g.gameOver {
		return false
	}

	out := Move(g.board, dir)
	if !out.Changed {
		return false
	}

	next := Spawn(out.Board, g.rng)
	delta := g.evaluator.Evaluate(next) - g.evaluator.Evaluate(g.board)
	g.score += delta
	g.board = next
	g.moves++

	if !HasAnyMove(g.board) {
		g.gameOver = true
		g.logger.Info().
			Float64("score", g.score).
			Int("moves", g.moves).
			Int("max_tile", g.board.MaxTile()).
			Msg("game over")
	}
	return true
}

// ApplyAIMove はSolverが選んだ方向にスワイプを実行する
// 動かせる方向がない場合は状態を変えずにfalseを返す（呼び出し側はゲームオーバーとして扱う）
func (g *Game) ApplyAIMove() (Direction, bool) {
	if g.gameOver {
		return Direction(-1), false
	}

	dir, ok := g.solver.BestMove(g.board)
	if !ok {
		g.logger.Debug().Msg("no move available")
		return Direction(-1), false
	}
	return dir, g.ApplyDirection(dir)
}
