package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nnaakkaaii/minimax2048/internal/domain"
)

// PlayGame はCLIで2048ゲームを実行する
// 入力が尽きるか q が入力されるまで続ける
func PlayGame(r io.Reader, w io.Writer, game *domain.Game) error {
	reader := bufio.NewReader(r)

	fmt.Fprintln(w, "=== 2048 ===")
	fmt.Fprintln(w, "Controls: w=Up, s=Down, a=Left, d=Right, i=AI move, r=Reset, q=Quit")
	fmt.Fprintln(w)

	for {
		printState(w, game.Snapshot())
		if game.IsGameOver() {
			fmt.Fprintln(w, "Game Over! Press r to retry or q to quit.")
		}

		fmt.Fprint(w, "Move: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(strings.ToLower(input))
		switch input {
		case "q":
			fmt.Fprintln(w, "Quit.")
			return nil
		case "r":
			game.Reset()
			fmt.Fprintln(w)
			continue
		case "i":
			if game.IsGameOver() {
				continue
			}
			dir, ok := game.ApplyAIMove()
			if !ok {
				fmt.Fprintln(w, "No move available.")
			} else {
				fmt.Fprintf(w, "AI: %s\n", dir)
			}
			fmt.Fprintln(w)
			continue
		}

		dir, ok := parseKey(input)
		if !ok {
			fmt.Fprintln(w, "Invalid input. Use w/a/s/d, i, r or q.")
			continue
		}
		if game.IsGameOver() {
			continue
		}

		if !game.ApplyDirection(dir) {
			fmt.Fprintln(w, "Cannot move in that direction.")
		}
		fmt.Fprintln(w)
	}
}

func printState(w io.Writer, s domain.Snapshot) {
	fmt.Fprint(w, s.Board)
	fmt.Fprintf(w, "Score: %.2f\n", s.Score)
}

func parseKey(input string) (domain.Direction, bool) {
	switch input {
	case "w":
		return domain.Up, true
	case "s":
		return domain.Down, true
	case "a":
		return domain.Left, true
	case "d":
		return domain.Right, true
	default:
		return 0, false
	}
}
