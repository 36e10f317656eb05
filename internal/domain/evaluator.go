package domain

// Evaluator はBoardを評価してスコアを返すインターフェース
// 高いほどプレイヤーにとって良い盤面
type Evaluator interface {
	Evaluate(b Board) float64
}

// デフォルトの係数
const (
	EmptyCellsWeight     = 0.1
	MergePotentialWeight = 1.0
	MonotonicityWeight   = 1.5
	CornerBonusWeight    = 0.5
	PositionalWeight     = 0.8
)

// WeightedEvaluator は複数のEvaluatorを係数付きで組み合わせる
type WeightedEvaluator struct {
	evaluators []Evaluator
	weights    []float64
}

// NewWeightedEvaluator は係数付きEvaluatorを生成する
func NewWeightedEvaluator(evaluators []Evaluator, weights []float64) *WeightedEvaluator {
	if len(evaluators) != len(weights) {
		panic("domain: evaluators and weights must have the same length")
	}
	return &WeightedEvaluator{
		evaluators: evaluators,
		weights:    weights,
	}
}

// NewHeuristicEvaluator は5項目のヒューリスティック評価関数を返す
func NewHeuristicEvaluator() *WeightedEvaluator {
	return NewWeightedEvaluator(
		[]Evaluator{
			&EmptyCellsEvaluator{},
			&MergePotentialEvaluator{},
			&MonotonicityEvaluator{},
			&CornerBonusEvaluator{},
			NewPositionalEvaluator(DefaultPositionalWeights),
		},
		[]float64{
			EmptyCellsWeight,
			MergePotentialWeight,
			MonotonicityWeight,
			CornerBonusWeight,
			PositionalWeight,
		},
	)
}

// Evaluate は全てのEvaluatorの重み付き和を返す
func (w *WeightedEvaluator) Evaluate(b Board) float64 {
	score := 0.0
	for i, ev := range w.evaluators {
		score += w.weights[i] * ev.Evaluate(b)
	}
	return score
}

// EmptyCellsEvaluator は空きマス数で評価する
type EmptyCellsEvaluator struct{}

func (e *EmptyCellsEvaluator) Evaluate(b Board) float64 {
	return float64(len(b.EmptyCells()))
}

// MergePotentialEvaluator は隣接する同じ値のペアの値の合計で評価する
// 右隣と下隣だけを見るので各ペアは1回だけ数えられる
type MergePotentialEvaluator struct{}

func (e *MergePotentialEvaluator) Evaluate(b Board) float64 {
	sum := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.Get(r, c)
			if v == 0 {
				continue
			}
			if c < Size-1 && b.Get(r, c+1) == v {
				sum += v
			}
			if r < Size-1 && b.Get(r+1, c) == v {
				sum += v
			}
		}
	}
	return float64(sum)
}

// MonotonicityEvaluator は左上から降順に並んでいるほど高評価
// 隣との比較で手前の値が大きければ加算、小さければ減算する
type MonotonicityEvaluator struct{}

func (e *MonotonicityEvaluator) Evaluate(b Board) float64 {
	score := 0

	// 行方向
	for r := 0; r < Size; r++ {
		for c := 0; c < Size-1; c++ {
			v := b.Get(r, c)
			if v >= b.Get(r, c+1) {
				score += v
			} else {
				score -= v
			}
		}
	}

	// 列方向
	for c := 0; c < Size; c++ {
		for r := 0; r < Size-1; r++ {
			v := b.Get(r, c)
			if v >= b.Get(r+1, c) {
				score += v
			} else {
				score -= v
			}
		}
	}

	return float64(score)
}

// CornerBonusEvaluator は最大タイルが角にあるとその値を返す
type CornerBonusEvaluator struct{}

func (e *CornerBonusEvaluator) Evaluate(b Board) float64 {
	maxVal := b.MaxTile()
	last := Size - 1
	for _, pos := range [4][2]int{{0, 0}, {0, last}, {last, 0}, {last, last}} {
		if b.Get(pos[0], pos[1]) == maxVal {
			return float64(maxVal)
		}
	}
	return 0
}

// DefaultPositionalWeights は左上の角から離れるほど小さくなる重み
var DefaultPositionalWeights = [Size][Size]float64{
	{15, 13, 9, 5},
	{13, 9, 5, 3},
	{9, 5, 3, 1},
	{5, 3, 1, 0},
}

// PositionalEvaluator は盤面と重み行列の内積で評価する
type PositionalEvaluator struct {
	weights [Size][Size]float64
}

// NewPositionalEvaluator は重み行列を指定してPositionalEvaluatorを生成する
func NewPositionalEvaluator(weights [Size][Size]float64) *PositionalEvaluator {
	return &PositionalEvaluator{weights: weights}
}

func (e *PositionalEvaluator) Evaluate(b Board) float64 {
	score := 0.0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			score += e.weights[r][c] * float64(b.Get(r, c))
		}
	}
	return score
}
