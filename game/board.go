package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"memory-game/matcherrors"
)

// DefaultHidden is the marker shown for a card that has not been matched yet.
const DefaultHidden = '#'

// symbolAlphabet supplies card faces in order; a 10x10 board uses the first 50.
var symbolAlphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")

// Cell is a zero-indexed board position.
type Cell struct {
	Row int
	Col int
}

// String returns the 1-indexed position as the player would type it.
func (c Cell) String() string {
	return fmt.Sprintf("row %d, column %d", c.Row+1, c.Col+1)
}

// LogValue renders the cell as "row,col", 1-indexed.
func (c Cell) LogValue() slog.Value {
	return slog.StringValue(fmt.Sprintf("%d,%d", c.Row+1, c.Col+1))
}

// Board holds the answer grid and the grid the player sees.
// A Current cell is either Hidden or a copy of the Answer cell at the same position.
type Board struct {
	Dim     int
	Answer  [][]rune
	Current [][]rune
	Hidden  rune
}

// Symbols returns the first n card faces.
func Symbols(n int) ([]rune, error) {
	if n < 0 || n > len(symbolAlphabet) {
		return nil, fmt.Errorf("%w: %d pairs needed, %d symbols available", matcherrors.ErrDimensionOutOfRange, n, len(symbolAlphabet))
	}
	out := make([]rune, n)
	copy(out, symbolAlphabet[:n])
	return out, nil
}

// NewBoard creates a dim x dim board with randomly shuffled pairs, all hidden.
// A zero hidden rune means DefaultHidden.
func NewBoard(dim int, hidden rune, rng *rand.Rand) (*Board, error) {
	if dim < 2 {
		return nil, fmt.Errorf("%w: got %d", matcherrors.ErrDimensionOutOfRange, dim)
	}
	if dim%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", matcherrors.ErrOddDimension, dim)
	}
	total := dim * dim
	symbols, err := Symbols(total / 2)
	if err != nil {
		return nil, err
	}

	// Two cards for each symbol
	cards := make([]rune, 0, total)
	for _, s := range symbols {
		cards = append(cards, s, s)
	}

	rng.Shuffle(total, func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	answer := make([][]rune, dim)
	for r := range answer {
		answer[r] = cards[r*dim : (r+1)*dim : (r+1)*dim]
	}
	return newBoard(answer, hidden), nil
}

// NewBoardFromAnswer builds a board around a fixed answer grid. The grid must be
// square with an even side, and every symbol must appear exactly twice.
func NewBoardFromAnswer(answer [][]rune, hidden rune) (*Board, error) {
	if hidden == 0 {
		hidden = DefaultHidden
	}
	dim := len(answer)
	if dim < 2 {
		return nil, fmt.Errorf("%w: got %d", matcherrors.ErrDimensionOutOfRange, dim)
	}
	if dim%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", matcherrors.ErrOddDimension, dim)
	}
	counts := make(map[rune]int)
	grid := make([][]rune, dim)
	for r, row := range answer {
		if len(row) != dim {
			return nil, fmt.Errorf("answer row %d has %d cells, want %d", r+1, len(row), dim)
		}
		grid[r] = append([]rune(nil), row...)
		for _, s := range row {
			if s == hidden {
				return nil, fmt.Errorf("answer uses the hidden marker %q as a symbol", hidden)
			}
			counts[s]++
		}
	}
	for s, n := range counts {
		if n != 2 {
			return nil, fmt.Errorf("symbol %q appears %d times, want 2", s, n)
		}
	}
	return newBoard(grid, hidden), nil
}

func newBoard(answer [][]rune, hidden rune) *Board {
	if hidden == 0 {
		hidden = DefaultHidden
	}
	dim := len(answer)
	current := make([][]rune, dim)
	for r := range current {
		current[r] = make([]rune, dim)
		for c := range current[r] {
			current[r][c] = hidden
		}
	}
	return &Board{
		Dim:     dim,
		Answer:  answer,
		Current: current,
		Hidden:  hidden,
	}
}

// Pairs returns the number of symbol pairs on the board.
func (b *Board) Pairs() int {
	return b.Dim * b.Dim / 2
}

// Symbol returns the answer symbol at c.
func (b *Board) Symbol(c Cell) rune {
	return b.Answer[c.Row][c.Col]
}

// IsRevealed reports whether c has been permanently revealed.
func (b *Board) IsRevealed(c Cell) bool {
	return b.Current[c.Row][c.Col] != b.Hidden
}

// Matches reports whether two cells hold the same answer symbol.
func (b *Board) Matches(first, second Cell) bool {
	return b.Symbol(first) == b.Symbol(second)
}

// Reveal copies the answer symbols of both cells onto the current board.
// It is a no-op unless the cells match.
func (b *Board) Reveal(first, second Cell) bool {
	if !b.Matches(first, second) {
		return false
	}
	b.Current[first.Row][first.Col] = b.Symbol(first)
	b.Current[second.Row][second.Col] = b.Symbol(second)
	return true
}

// HiddenCells returns every hidden cell in row-major order.
func (b *Board) HiddenCells() []Cell {
	var cells []Cell
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			if b.Current[r][c] == b.Hidden {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// AllRevealed returns true if no hidden cells remain.
func (b *Board) AllRevealed() bool {
	for _, row := range b.Current {
		for _, v := range row {
			if v == b.Hidden {
				return false
			}
		}
	}
	return true
}
