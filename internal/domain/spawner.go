package domain

// スポーン確率（2が90%、4が10%）
const (
	spawn2Prob = 0.9
	spawnLow   = 2
	spawnHigh  = 4
)

// Rand はタイル出現に使う乱数源
// golang.org/x/exp/rand と math/rand の *Rand がどちらも満たす
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawn は空きマスの1つにランダムにタイルを配置した盤面を返す
// 空きマスがない場合は盤面をそのまま返す
func Spawn(b Board, rng Rand) Board {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b
	}

	pos := empty[rng.Intn(len(empty))]
	val := spawnHigh
	if rng.Float64() < spawn2Prob {
		val = spawnLow
	}
	return b.Set(pos[0], pos[1], val)
}
