package domain

import (
	"math"

	"github.com/rs/zerolog"
)

// DefaultDepth はデフォルトの探索深さ（プライ数）
const DefaultDepth = 3

// Option はSolverの設定を変更する
type Option func(s *Solver)

// WithDepth は探索深さを指定する（1未満は無視）
func WithDepth(depth int) Option {
	return func(s *Solver) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithEvaluator は評価関数を差し替える
func WithEvaluator(evaluator Evaluator) Option {
	return func(s *Solver) {
		if evaluator != nil {
			s.evaluator = evaluator
		}
	}
}

// WithLogger は探索統計を出力するロガーを指定する
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// Stats は1回の探索の統計
type Stats struct {
	Nodes     int
	Cutoffs   int
	CacheHits int
}

// Solver はalpha-beta枝刈り付きのミニマックスで最良の手を探索する
//
// 最大化層（プレイヤー）はスワイプ後にタイルを1つだけサンプルしてから潜り、
// 最小化層はスワイプ後の盤面をタイルなしでそのまま次の最大化層に渡す。
// 最小化層でタイルを出現させないのは意図した挙動で、テストで固定している。
type Solver struct {
	evaluator Evaluator
	maxDepth  int
	rng       Rand
	logger    zerolog.Logger

	cache *evalCache
	stats Stats
}

// NewSolver は新しいSolverを生成する
// rngは探索中のタイル出現のサンプルに使う
func NewSolver(rng Rand, options ...Option) *Solver {
	s := &Solver{
		evaluator: NewHeuristicEvaluator(),
		maxDepth:  DefaultDepth,
		rng:       rng,
		logger:    zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Depth は探索深さを返す
func (s *Solver) Depth() int {
	return s.maxDepth
}

// Evaluator は評価関数を返す
func (s *Solver) Evaluator() Evaluator {
	return s.evaluator
}

// LastStats は直前の探索の統計を返す
func (s *Solver) LastStats() Stats {
	return s.stats
}

// BestMove は現在の盤面から最良の手を返す
// 有効な手がない場合はfalseを返す
func (s *Solver) BestMove(board Board) (Direction, bool) {
	bestDir := Direction(-1)
	bestScore := math.Inf(-1)
	found := false

	s.forEachRoot(board, func(dir Direction, score float64) {
		if !found || score > bestScore {
			bestScore = score
			bestDir = dir
			found = true
		}
	})

	s.logger.Debug().
		Stringer("move", bestDir).
		Bool("found", found).
		Float64("score", bestScore).
		Int("depth", s.maxDepth).
		Int("nodes", s.stats.Nodes).
		Int("cutoffs", s.stats.Cutoffs).
		Int("cache_hits", s.stats.CacheHits).
		Msg("search finished")

	return bestDir, found
}

// ScoreMoves は動かせる各方向のルートでの評価値を返す
func (s *Solver) ScoreMoves(board Board) map[Direction]float64 {
	scores := make(map[Direction]float64, len(Directions))
	s.forEachRoot(board, func(dir Direction, score float64) {
		scores[dir] = score
	})
	return scores
}

func (s *Solver) forEachRoot(board Board, visit func(Direction, float64)) {
	s.cache = newEvalCache(s.evaluator)
	s.stats = Stats{}
	defer func() {
		s.stats.CacheHits = s.cache.hits
		s.cache = nil
	}()

	for _, dir := range Directions {
		out := Move(board, dir)
		if !out.Changed {
			continue
		}
		child := Spawn(out.Board, s.rng)
		visit(dir, s.minimize(child, s.maxDepth-1, math.Inf(-1), math.Inf(1)))
	}
}

// maximize はプレイヤーの手番（スワイプ後にタイルを1つサンプルする）
func (s *Solver) maximize(board Board, depth int, alpha, beta float64) float64 {
	s.stats.Nodes++
	if depth <= 0 || !HasAnyMove(board) {
		return s.cache.Evaluate(board)
	}

	best := math.Inf(-1)
	moved := false
	for _, dir := range Directions {
		out := Move(board, dir)
		if !out.Changed {
			continue
		}
		moved = true

		score := s.minimize(Spawn(out.Board, s.rng), depth-1, alpha, beta)
		best = max(best, score)
		alpha = max(alpha, score)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}

	// 空の盤面のようにどの方向にも動かない場合
	if !moved {
		return s.cache.Evaluate(board)
	}
	return best
}

// minimize は敵対的な手番（タイルは出現させない）
func (s *Solver) minimize(board Board, depth int, alpha, beta float64) float64 {
	s.stats.Nodes++
	if depth <= 0 || !HasAnyMove(board) {
		return s.cache.Evaluate(board)
	}

	best := math.Inf(1)
	moved := false
	for _, dir := range Directions {
		out := Move(board, dir)
		if !out.Changed {
			continue
		}
		moved = true

		score := s.maximize(out.Board, depth-1, alpha, beta)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}

	if !moved {
		return s.cache.Evaluate(board)
	}
	return best
}
