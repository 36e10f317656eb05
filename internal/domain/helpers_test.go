package domain

import (
	"golang.org/x/exp/rand"
)

// scriptedRand は決まった値を返す乱数源
type scriptedRand struct {
	intn  func(n int) int
	float float64
	draws int
}

func (r *scriptedRand) Intn(n int) int {
	r.draws++
	if r.intn == nil {
		return 0
	}
	return r.intn(n)
}

func (r *scriptedRand) Float64() float64 {
	r.draws++
	return r.float
}

// firstCell は常に最初の空きマスに2を置く
func firstCell() *scriptedRand {
	return &scriptedRand{float: 0.5}
}

// lastCell は常に最後の空きマスに2を置く
func lastCell() *scriptedRand {
	return &scriptedRand{intn: func(n int) int { return n - 1 }, float: 0.5}
}

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomBoard は0から2048までのタイルをランダムに並べた盤面を返す
func randomBoard(rng *rand.Rand) Board {
	var cells [Size][Size]int
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if exp := rng.Intn(12); exp > 0 {
				cells[r][c] = 1 << exp
			}
		}
	}
	return NewBoardFromCells(cells)
}

// stuckBoard は空きマスも隣接する同じ値もない盤面
var stuckBoard = NewBoardFromCells([4][4]int{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
})

// onlyLeftBoard は左にしか動かせない盤面
var onlyLeftBoard = NewBoardFromCells([4][4]int{
	{0, 2, 4, 8},
	{0, 4, 8, 2},
	{0, 2, 4, 8},
	{0, 4, 8, 2},
})
