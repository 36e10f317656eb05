package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Size は盤面の一辺の長さ
const Size = 4

var (
	// ErrInvalidTile は負の値や2の累乗でない値が含まれることを示す
	ErrInvalidTile = errors.New("invalid tile value")
	// ErrInvalidDirection は未知の方向を示す
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrBoardSize はセル数が16でないことを示す
	ErrBoardSize = errors.New("board must have exactly 16 cells")
)

// Direction はスワイプの方向を表す
// 値は左スワイプに帰着させるための反時計回り回転数と一致する
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions は探索で試す方向の順序
var Directions = [4]Direction{Left, Up, Right, Down}

// Valid は定義済みの方向かどうかを返す
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection は "left" や "l" のような文字列をDirectionに変換する
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "up", "u":
		return Up, nil
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidDirection)
}

// Board は4x4の2048ゲーム盤面を表す（immutable）
// 配列の値型なので代入がそのままディープコピーになる
type Board struct {
	cells [Size][Size]int
}

// MoveOutcome はスワイプの結果と盤面が変化したかどうか
type MoveOutcome struct {
	Board   Board
	Changed bool
}

// NewBoard は空のBoardを生成する
func NewBoard() Board {
	return Board{}
}

// NewBoardFromCells はセルの値を指定してBoardを生成する
// 不正なタイルは呼び出し側の契約違反なのでpanicする
func NewBoardFromCells(cells [Size][Size]int) Board {
	b, err := ParseBoard(cells)
	if err != nil {
		panic("domain: " + err.Error())
	}
	return b
}

// ParseBoard はセルを検証してBoardを生成する
func ParseBoard(cells [Size][Size]int) (Board, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !validTile(cells[r][c]) {
				return Board{}, fmt.Errorf("cell (%d,%d)=%d: %w", r, c, cells[r][c], ErrInvalidTile)
			}
		}
	}
	return Board{cells: cells}, nil
}

// ParseBoardValues は行優先の16個の値からBoardを生成する
func ParseBoardValues(values []int) (Board, error) {
	if len(values) != Size*Size {
		return Board{}, fmt.Errorf("got %d values: %w", len(values), ErrBoardSize)
	}
	var cells [Size][Size]int
	for i, v := range values {
		cells[i/Size][i%Size] = v
	}
	return ParseBoard(cells)
}

func validTile(v int) bool {
	return v == 0 || (v > 1 && v&(v-1) == 0)
}

// Get は指定した位置のセル値を取得する
func (b Board) Get(row, col int) int {
	return b.cells[row][col]
}

// Set は指定した位置に値を設定した新しいBoardを返す
func (b Board) Set(row, col, value int) Board {
	if !validTile(value) {
		panic(fmt.Sprintf("domain: set (%d,%d)=%d: %v", row, col, value, ErrInvalidTile))
	}
	b.cells[row][col] = value
	return b
}

// Cells はセルの配列を返す
func (b Board) Cells() [Size][Size]int {
	return b.cells
}

// EmptyCells は空のセルの座標一覧を返す
func (b Board) EmptyCells() [][2]int {
	empty := make([][2]int, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == 0 {
				empty = append(empty, [2]int{r, c})
			}
		}
	}
	return empty
}

// TileCount は0でないセルの数を返す
func (b Board) TileCount() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile は最大のタイル値を返す
func (b Board) MaxTile() int {
	m := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			m = max(m, b.cells[r][c])
		}
	}
	return m
}

// CollapseLeft は各行を左に詰めてマージする
// マージ済みのタイルは同じ呼び出しの中で再びマージされない
func CollapseLeft(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		fill := 0
		for c := 0; c < Size; c++ {
			v := b.cells[r][c]
			if v == 0 {
				continue
			}
			switch out.cells[r][fill] {
			case 0:
				out.cells[r][fill] = v
			case v:
				out.cells[r][fill] *= 2
				fill++
			default:
				fill++
				out.cells[r][fill] = v
			}
		}
	}
	return out
}

// Rotate は盤面を反時計回りに90度回転する
func Rotate(b Board) Board {
	var out Board
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out.cells[i][j] = b.cells[j][Size-1-i]
		}
	}
	return out
}

func rotateN(b Board, n int) Board {
	for i := 0; i < n%4; i++ {
		b = Rotate(b)
	}
	return b
}

// Move は指定した方向にスワイプした結果を返す（spawnなし）
// 左以外の方向は回転して左スワイプに帰着させる
func Move(b Board, dir Direction) MoveOutcome {
	if !dir.Valid() {
		panic(fmt.Sprintf("domain: move %v: %v", dir, ErrInvalidDirection))
	}
	n := int(dir)
	moved := rotateN(CollapseLeft(rotateN(b, n)), 4-n)
	return MoveOutcome{Board: moved, Changed: moved != b}
}

// HasAnyMove は空きマスか隣接する同じ値のタイルがあるかどうかを返す
func HasAnyMove(b Board) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.cells[r][c]
			if v == 0 {
				return true
			}
			if r < Size-1 && b.cells[r+1][c] == v {
				return true
			}
			if c < Size-1 && b.cells[r][c+1] == v {
				return true
			}
		}
	}
	return false
}

// IsGameOver はどの方向にも動かせないかどうかを返す
func (b Board) IsGameOver() bool {
	return !HasAnyMove(b)
}

// Equal は2つのBoardが等しいかどうかを返す
func (b Board) Equal(other Board) bool {
	return b.cells == other.cells
}

// String はBoardをASCIIアートとして表示する
func (b Board) String() string {
	line := "+------+------+------+------+"
	var sb strings.Builder
	sb.WriteString(line + "\n")
	for r := 0; r < Size; r++ {
		sb.WriteString("|")
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == 0 {
				sb.WriteString("      |")
			} else {
				fmt.Fprintf(&sb, "%5d |", b.cells[r][c])
			}
		}
		sb.WriteString("\n" + line + "\n")
	}
	return sb.String()
}
