// Package ui はtviewで2048を遊ぶためのコントロール
// 盤面の状態は持たず、描画のたびにGameのスナップショットを読む
package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/nnaakkaaii/minimax2048/internal/config"
	"github.com/nnaakkaaii/minimax2048/internal/domain"
)

// 1マスの大きさ（文字数）
const (
	cellWidth  = 8
	cellHeight = 3
)

// Palette はタイル値ごとの背景色
type Palette struct {
	tiles      map[int]tcell.Color
	fallback   tcell.Color
	empty      tcell.Color
	background tcell.Color
	text       tcell.Color
}

// NewPalette はテーマからPaletteを作る
func NewPalette(theme config.Theme) Palette {
	p := Palette{
		tiles:      make(map[int]tcell.Color, len(theme.TileColors)),
		fallback:   tcell.NewHexColor(theme.DefaultColor),
		empty:      tcell.NewHexColor(theme.EmptyColor),
		background: tcell.NewHexColor(theme.BackgroundColor),
		text:       tcell.NewHexColor(theme.TextColor),
	}
	for tile, color := range theme.TileColors {
		p.tiles[tile] = tcell.NewHexColor(color)
	}
	return p
}

// TileColor はタイルの背景色を返す（テーマにない値はデフォルト色）
func (p Palette) TileColor(v int) tcell.Color {
	if v == 0 {
		return p.empty
	}
	if c, ok := p.tiles[v]; ok {
		return c
	}
	return p.fallback
}

// BoardView は盤面を描画するBox
type BoardView struct {
	*tview.Box
	game    *domain.Game
	palette Palette
}

// NewBoardView はgameの盤面を描画するBoardViewを生成する
func NewBoardView(game *domain.Game, palette Palette) *BoardView {
	v := &BoardView{
		Box:     tview.NewBox(),
		game:    game,
		palette: palette,
	}
	v.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		drawBoard(screen, x, y, v.game.Board(), v.palette)
		return x, y, width, height
	})
	return v
}

// drawBoard は(x, y)を左上にして盤面を描く
func drawBoard(screen tcell.Screen, x, y int, b domain.Board, p Palette) {
	frame := tcell.StyleDefault.Background(p.background)
	total := domain.Size*(cellWidth+1) + 1
	for dy := 0; dy < domain.Size*(cellHeight+1)+1; dy++ {
		for dx := 0; dx < total; dx++ {
			screen.SetContent(x+dx, y+dy, ' ', nil, frame)
		}
	}

	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v := b.Get(r, c)
			style := tcell.StyleDefault.Background(p.TileColor(v)).Foreground(p.text).Bold(true)
			left := x + 1 + c*(cellWidth+1)
			top := y + 1 + r*(cellHeight+1)
			for dy := 0; dy < cellHeight; dy++ {
				for dx := 0; dx < cellWidth; dx++ {
					screen.SetContent(left+dx, top+dy, ' ', nil, style)
				}
			}
			if v == 0 {
				continue
			}
			label := strconv.Itoa(v)
			start := left + (cellWidth-len(label))/2
			for i, ch := range label {
				screen.SetContent(start+i, top+cellHeight/2, ch, nil, style)
			}
		}
	}
}

// StatusText はスコアと操作方法の表示
func StatusText(s domain.Snapshot) string {
	text := fmt.Sprintf("[::b]Score:[-:-:-] %.2f   [::b]Moves:[-:-:-] %d   [::b]Max:[-:-:-] %d\n", s.Score, s.Moves, s.MaxTile)
	if s.GameOver {
		text += "\n[red::b]Game Over![-:-:-]  r · retry   q · quit"
		return text
	}
	text += "\n←↑→↓/hjkl/wasd move   i AI move   r reset   q quit"
	return text
}
