package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyCellsEvaluator(t *testing.T) {
	ev := &EmptyCellsEvaluator{}

	require.Equal(t, 15.0, ev.Evaluate(rowBoard([4]int{2, 0, 0, 0})))
	require.Equal(t, 0.0, ev.Evaluate(stuckBoard))
}

func TestMergePotentialEvaluator(t *testing.T) {
	ev := &MergePotentialEvaluator{}

	board := NewBoardFromCells([4][4]int{
		{2, 2, 2, 0},
		{8, 0, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
	})
	// 横の2-2が2組、縦の8-8が1組
	require.Equal(t, 2.0+2.0+8.0, ev.Evaluate(board))
	require.Equal(t, 0.0, ev.Evaluate(stuckBoard))
}

func TestMonotonicityEvaluator(t *testing.T) {
	ev := &MonotonicityEvaluator{}

	require.Equal(t, 8.0, ev.Evaluate(rowBoard([4]int{2, 2, 0, 0})))
	// 2<4 で-2, 4>=0 で+4, 列は2と4がそれぞれ下の0以上
	require.Equal(t, 8.0, ev.Evaluate(rowBoard([4]int{2, 4, 0, 0})))

	monoBoard := rowBoard([4]int{16, 8, 4, 2})
	nonMonoBoard := rowBoard([4]int{2, 16, 4, 8})
	require.Greater(t, ev.Evaluate(monoBoard), ev.Evaluate(nonMonoBoard))
}

func TestCornerBonusEvaluator(t *testing.T) {
	ev := &CornerBonusEvaluator{}

	require.Equal(t, 16.0, ev.Evaluate(rowBoard([4]int{16, 2, 0, 0})))
	require.Equal(t, 0.0, ev.Evaluate(rowBoard([4]int{2, 16, 0, 0})))

	bottomRight := NewBoard().Set(3, 3, 64).Set(1, 1, 32)
	require.Equal(t, 64.0, ev.Evaluate(bottomRight))

	require.Equal(t, 0.0, ev.Evaluate(NewBoard()))
}

func TestPositionalEvaluator(t *testing.T) {
	ev := NewPositionalEvaluator(DefaultPositionalWeights)

	require.Equal(t, 2*15.0+2*13.0, ev.Evaluate(rowBoard([4]int{2, 2, 0, 0})))
	require.Equal(t, 0.0, ev.Evaluate(NewBoard().Set(3, 3, 2048)))
	require.Greater(t,
		ev.Evaluate(NewBoard().Set(0, 0, 1024)),
		ev.Evaluate(NewBoard().Set(2, 2, 1024)))
}

func TestHeuristicEvaluator(t *testing.T) {
	ev := NewHeuristicEvaluator()

	// 0.1*14 + 1.0*2 + 1.5*8 + 0.5*2 + 0.8*56
	require.InDelta(t, 61.2, ev.Evaluate(rowBoard([4]int{2, 2, 0, 0})), 1e-9)
}

func TestHeuristicEvaluatorDeterministic(t *testing.T) {
	ev := NewHeuristicEvaluator()
	rng := newTestRand(7)
	for i := 0; i < 100; i++ {
		b := randomBoard(rng)
		require.Equal(t, ev.Evaluate(b), ev.Evaluate(b))
	}
}

func TestHeuristicEvaluatorLargeTiles(t *testing.T) {
	ev := NewHeuristicEvaluator()
	board := NewBoardFromCells([4][4]int{
		{65536, 32768, 16384, 8192},
		{4096, 2048, 1024, 512},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NotPanics(t, func() { ev.Evaluate(board) })
	require.Greater(t, ev.Evaluate(board), 0.0)
}

func TestWeightedEvaluator(t *testing.T) {
	wev := NewWeightedEvaluator(
		[]Evaluator{&EmptyCellsEvaluator{}, &CornerBonusEvaluator{}},
		[]float64{1.0, 10.0},
	)

	// 15 empty cells * 1.0 + corner bonus 16 * 10.0
	score := wev.Evaluate(rowBoard([4]int{16, 0, 0, 0}))
	require.Equal(t, 15.0*1.0+16.0*10.0, score)

	require.Panics(t, func() {
		NewWeightedEvaluator([]Evaluator{&EmptyCellsEvaluator{}}, nil)
	})
}
