package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nnaakkaaii/minimax2048/internal/domain"
)

// Analysis は1つの盤面に対する探索結果
type Analysis struct {
	Board  domain.Board
	Best   domain.Direction
	Found  bool
	Scores map[domain.Direction]float64
}

// AnalyzeBoard は各方向のルート評価値と推奨手を求める
// 推奨手は同じ評価値の中で探索順が先の方向
func AnalyzeBoard(solver *domain.Solver, board domain.Board) Analysis {
	a := Analysis{
		Board:  board,
		Best:   domain.Direction(-1),
		Scores: solver.ScoreMoves(board),
	}
	for _, dir := range domain.Directions {
		score, ok := a.Scores[dir]
		if !ok {
			continue
		}
		if !a.Found || score > a.Scores[a.Best] {
			a.Best = dir
			a.Found = true
		}
	}
	return a
}

// ParseBoardLine は空白区切りの16個の数値を盤面に変換する
func ParseBoardLine(line string) (domain.Board, error) {
	parts := strings.Fields(line)
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return domain.Board{}, fmt.Errorf("parse number %q: %w", p, err)
		}
		values = append(values, v)
	}
	return domain.ParseBoardValues(values)
}

// Analyze は標準入力などから盤面を1行ずつ読み、推奨手を表示する
func Analyze(r io.Reader, w io.Writer, solver *domain.Solver) error {
	scanner := bufio.NewScanner(r)

	fmt.Fprintln(w, "=== 2048 Interactive Analyzer ===")
	fmt.Fprintln(w, "Enter board state as 16 numbers (0 for empty), or 'quit' to exit")
	fmt.Fprintln(w, "Example: 0 0 0 0 0 0 0 0 0 0 0 0 0 0 2 2")
	fmt.Fprintln(w)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return nil
		}

		board, err := ParseBoardLine(line)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}

		printAnalysis(w, AnalyzeBoard(solver, board), solver.Depth())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	return nil
}

func printAnalysis(w io.Writer, a Analysis, depth int) {
	fmt.Fprintln(w, "\nCurrent board:")
	fmt.Fprint(w, a.Board)
	fmt.Fprintf(w, "Search depth: %d\n", depth)

	if !a.Found {
		fmt.Fprintln(w, "No valid moves available!")
		return
	}

	fmt.Fprintf(w, "\n=== Recommended move: %s ===\n", a.Best)
	fmt.Fprintln(w, "\nMove scores:")
	for _, dir := range domain.Directions {
		score, ok := a.Scores[dir]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s: %.2f", dir, score)
		if dir == a.Best {
			fmt.Fprint(w, " <- BEST")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
