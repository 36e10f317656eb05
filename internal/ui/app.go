package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/nnaakkaaii/minimax2048/internal/domain"
)

// Action はキー入力に対応する操作
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionAI
	ActionReset
	ActionQuit
)

// KeyAction はキーイベントを操作に変換する
// ActionMoveのときだけ方向が意味を持つ
func KeyAction(ev *tcell.EventKey) (Action, domain.Direction) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionMove, domain.Left
	case tcell.KeyUp:
		return ActionMove, domain.Up
	case tcell.KeyRight:
		return ActionMove, domain.Right
	case tcell.KeyDown:
		return ActionMove, domain.Down
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
	default:
		return ActionNone, 0
	}

	switch ev.Rune() {
	case 'h', 'a':
		return ActionMove, domain.Left
	case 'k', 'w':
		return ActionMove, domain.Up
	case 'l', 'd':
		return ActionMove, domain.Right
	case 'j', 's':
		return ActionMove, domain.Down
	case 'i':
		return ActionAI, 0
	case 'r':
		return ActionReset, 0
	case 'q':
		return ActionQuit, 0
	}
	return ActionNone, 0
}

// App は2048のTUIアプリケーション
// Gameの操作はtviewのイベントループからだけ行うので直列化されている
type App struct {
	app    *tview.Application
	game   *domain.Game
	board  *BoardView
	status *tview.TextView
	logger zerolog.Logger
}

// NewApp はgameを操作するAppを生成する
func NewApp(game *domain.Game, palette Palette, logger zerolog.Logger) *App {
	a := &App{
		app:    tview.NewApplication(),
		game:   game,
		board:  NewBoardView(game, palette),
		status: tview.NewTextView(),
		logger: logger,
	}

	a.status.SetDynamicColors(true)
	a.status.SetTextAlign(tview.AlignLeft)
	a.refresh()

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.board, domain.Size*(cellHeight+1)+1, 0, false).
		AddItem(a.status, 3, 0, false)
	a.app.SetRoot(root, true)
	a.app.SetInputCapture(a.handle)
	return a
}

// Run はアプリケーションを実行する
func (a *App) Run() error {
	return a.app.Run()
}

func (a *App) handle(ev *tcell.EventKey) *tcell.EventKey {
	action, dir := KeyAction(ev)
	switch action {
	case ActionMove:
		if a.game.ApplyDirection(dir) {
			a.logger.Debug().Stringer("move", dir).Float64("score", a.game.Score()).Msg("move applied")
		}
	case ActionAI:
		if dir, ok := a.game.ApplyAIMove(); ok {
			a.logger.Debug().Stringer("move", dir).Float64("score", a.game.Score()).Msg("ai move applied")
		}
	case ActionReset:
		a.game.Reset()
		a.logger.Info().Msg("game reset")
	case ActionQuit:
		a.app.Stop()
		return nil
	default:
		return ev
	}
	a.refresh()
	return nil
}

func (a *App) refresh() {
	a.status.SetText(StatusText(a.game.Snapshot()))
}
