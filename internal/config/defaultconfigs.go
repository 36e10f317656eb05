package config

import "github.com/nnaakkaaii/minimax2048/internal/domain"

// DefaultTheme は定番の2048の配色（2048より大きいタイルはDefaultColor）
var DefaultTheme = Theme{
	TileColors: map[int]int32{
		2:    0xeee4da,
		4:    0xede0c8,
		8:    0xf2b179,
		16:   0xf59563,
		32:   0xf67c5f,
		64:   0xf65e3b,
		128:  0xedcf72,
		256:  0xedcc61,
		512:  0xedc850,
		1024: 0xedc53f,
		2048: 0xedc22e,
	},
	DefaultColor:    0xcdc1b4,
	EmptyColor:      0xcdc1b4,
	BackgroundColor: 0xbbada0,
	TextColor:       0x000000,
}

// Default はデフォルトの設定を返す
// mapを含むので呼び出しごとに新しいコピーを作る
func Default() Config {
	theme := DefaultTheme
	theme.TileColors = make(map[int]int32, len(DefaultTheme.TileColors))
	for k, v := range DefaultTheme.TileColors {
		theme.TileColors[k] = v
	}

	return Config{
		Search: SearchConfig{Depth: domain.DefaultDepth},
		AutoPlay: AutoPlayConfig{
			Games:       1,
			Workers:     0,
			DelayMillis: 100,
		},
		Theme: theme,
		Log:   LogConfig{Level: "info"},
	}
}
