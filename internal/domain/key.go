package domain

import (
	"math/bits"
)

// Key は盤面を64ビット整数に詰めた表現
// 各タイルは4ビットの指数（0=空, 1=2, 2=4, ..., 15=32768）
// 16個のタイル × 4ビット = 64ビット
type Key uint64

// maxKeyExp は4ビットで表せる最大の指数
const maxKeyExp = 15

// Key はBoardをKeyに変換する
// 32768を超えるタイルがある場合は表現できないのでfalseを返す
func (b Board) Key() (Key, bool) {
	var k Key
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			val := b.cells[r][c]
			if val == 0 {
				continue
			}
			exp := bits.TrailingZeros(uint(val))
			if exp > maxKeyExp {
				return 0, false
			}
			k = k.setTile(r, c, exp)
		}
	}
	return k, true
}

// setTile は指定位置にタイル値（指数）を設定した新しいKeyを返す
func (k Key) setTile(row, col, exp int) Key {
	shift := (row*Size + col) * 4
	mask := ^(Key(0xF) << shift)
	return (k & mask) | (Key(exp) << shift)
}

// evalCache は評価値のメモ
// 評価関数は盤面だけで決まるので、同じ盤面を何度評価しても結果は変わらない
type evalCache struct {
	evaluator Evaluator
	scores    map[Key]float64
	hits      int
}

func newEvalCache(evaluator Evaluator) *evalCache {
	return &evalCache{
		evaluator: evaluator,
		scores:    make(map[Key]float64),
	}
}

func (c *evalCache) Evaluate(b Board) float64 {
	k, ok := b.Key()
	if !ok {
		return c.evaluator.Evaluate(b)
	}
	if score, found := c.scores[k]; found {
		c.hits++
		return score
	}
	score := c.evaluator.Evaluate(b)
	c.scores[k] = score
	return score
}
