package game

import (
	"errors"
	"math/rand"
	"testing"

	"memory-game/matcherrors"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// boardABBA is the 2x2 board [[A,B],[B,A]].
func boardABBA(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoardFromAnswer([][]rune{{'A', 'B'}, {'B', 'A'}}, DefaultHidden)
	if err != nil {
		t.Fatalf("NewBoardFromAnswer: %v", err)
	}
	return b
}

func TestNewBoard(t *testing.T) {
	for dim := 2; dim <= 10; dim += 2 {
		board, err := NewBoard(dim, DefaultHidden, testRand())
		if err != nil {
			t.Fatalf("NewBoard(%d): %v", dim, err)
		}
		if board.Dim != dim {
			t.Errorf("expected Dim=%d, got %d", dim, board.Dim)
		}
		if len(board.Answer) != dim || len(board.Current) != dim {
			t.Fatalf("expected %d rows, got answer=%d current=%d", dim, len(board.Answer), len(board.Current))
		}

		// Check that there are exactly 2 cards per symbol
		counts := make(map[rune]int)
		for r := 0; r < dim; r++ {
			if len(board.Answer[r]) != dim {
				t.Fatalf("dim %d: answer row %d has %d cells", dim, r, len(board.Answer[r]))
			}
			for c := 0; c < dim; c++ {
				counts[board.Answer[r][c]]++
				if board.Current[r][c] != DefaultHidden {
					t.Errorf("dim %d: cell %d,%d starts revealed", dim, r, c)
				}
			}
		}
		if len(counts) != dim*dim/2 {
			t.Errorf("dim %d: expected %d distinct symbols, got %d", dim, dim*dim/2, len(counts))
		}
		for s, n := range counts {
			if n != 2 {
				t.Errorf("dim %d: symbol %q appears %d times, expected 2", dim, s, n)
			}
			if s == DefaultHidden {
				t.Errorf("dim %d: hidden marker used as a symbol", dim)
			}
		}
	}
}

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	if _, err := NewBoard(3, DefaultHidden, testRand()); !errors.Is(err, matcherrors.ErrOddDimension) {
		t.Errorf("NewBoard(3) = %v, want ErrOddDimension", err)
	}
	if _, err := NewBoard(0, DefaultHidden, testRand()); !errors.Is(err, matcherrors.ErrDimensionOutOfRange) {
		t.Errorf("NewBoard(0) = %v, want ErrDimensionOutOfRange", err)
	}
	if _, err := NewBoard(12, DefaultHidden, testRand()); !errors.Is(err, matcherrors.ErrDimensionOutOfRange) {
		t.Errorf("NewBoard(12) = %v, want ErrDimensionOutOfRange", err)
	}
}

func TestNewBoardDeterministicForSeed(t *testing.T) {
	a, _ := NewBoard(6, DefaultHidden, rand.New(rand.NewSource(1)))
	b, _ := NewBoard(6, DefaultHidden, rand.New(rand.NewSource(1)))
	for r := range a.Answer {
		if string(a.Answer[r]) != string(b.Answer[r]) {
			t.Fatalf("same seed produced different boards at row %d", r)
		}
	}
}

func TestNewBoardFromAnswer(t *testing.T) {
	b := boardABBA(t)
	if b.Pairs() != 2 {
		t.Errorf("expected 2 pairs, got %d", b.Pairs())
	}
	if got := b.Symbol(Cell{Row: 1, Col: 0}); got != 'B' {
		t.Errorf("expected B at 2,1, got %q", got)
	}

	tests := []struct {
		name   string
		answer [][]rune
	}{
		{"odd", [][]rune{{'A'}}},
		{"ragged", [][]rune{{'A', 'B'}, {'B'}}},
		{"triple", [][]rune{{'A', 'A'}, {'A', 'B'}}},
		{"hidden symbol", [][]rune{{'#', 'B'}, {'B', '#'}}},
	}
	for _, tt := range tests {
		if _, err := NewBoardFromAnswer(tt.answer, DefaultHidden); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestRevealMatch(t *testing.T) {
	b := boardABBA(t)
	first, second := Cell{0, 0}, Cell{1, 1}

	if !b.Reveal(first, second) {
		t.Fatal("expected A/A to match")
	}
	for _, c := range []Cell{first, second} {
		if !b.IsRevealed(c) {
			t.Errorf("%v should be revealed", c)
		}
		if b.Current[c.Row][c.Col] != b.Symbol(c) {
			t.Errorf("%v shows %q, answer is %q", c, b.Current[c.Row][c.Col], b.Symbol(c))
		}
	}
	if b.AllRevealed() {
		t.Error("B pair is still hidden")
	}
}

func TestRevealMismatch(t *testing.T) {
	b := boardABBA(t)

	if b.Reveal(Cell{0, 0}, Cell{0, 1}) {
		t.Fatal("expected A/B not to match")
	}
	if got := len(b.HiddenCells()); got != 4 {
		t.Errorf("expected 4 hidden cells after mismatch, got %d", got)
	}
}

func TestRevealInvariantAfterEveryTurn(t *testing.T) {
	b, err := NewBoard(4, DefaultHidden, testRand())
	if err != nil {
		t.Fatal(err)
	}
	cells := b.HiddenCells()
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			b.Reveal(cells[i], cells[j])
			for r := 0; r < b.Dim; r++ {
				for c := 0; c < b.Dim; c++ {
					v := b.Current[r][c]
					if v != b.Hidden && v != b.Answer[r][c] {
						t.Fatalf("cell %d,%d shows %q, answer is %q", r, c, v, b.Answer[r][c])
					}
				}
			}
		}
	}
	if !b.AllRevealed() {
		t.Error("trying every pair should reveal the whole board")
	}
}

func TestHiddenCellsAndAllRevealed(t *testing.T) {
	b := boardABBA(t)
	if got := b.HiddenCells(); len(got) != 4 || got[0] != (Cell{0, 0}) || got[3] != (Cell{1, 1}) {
		t.Errorf("unexpected hidden cells %v", got)
	}

	b.Reveal(Cell{0, 1}, Cell{1, 0})
	b.Reveal(Cell{0, 0}, Cell{1, 1})
	if !b.AllRevealed() {
		t.Error("all pairs revealed but AllRevealed returned false")
	}
	if got := b.HiddenCells(); len(got) != 0 {
		t.Errorf("expected no hidden cells, got %v", got)
	}
}

func TestZeroHiddenUsesDefault(t *testing.T) {
	b, err := NewBoardFromAnswer([][]rune{{'A', 'B'}, {'B', 'A'}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if b.Hidden != DefaultHidden || b.Current[0][0] != DefaultHidden {
		t.Errorf("expected %q as the hidden marker, got %q", DefaultHidden, b.Hidden)
	}
}

func TestSymbols(t *testing.T) {
	s, err := Symbols(50)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[rune]bool)
	for _, r := range s {
		if seen[r] {
			t.Errorf("symbol %q repeated", r)
		}
		seen[r] = true
	}
	if _, err := Symbols(53); err == nil {
		t.Error("expected error beyond alphabet")
	}
}

func TestCellString(t *testing.T) {
	if got := (Cell{Row: 0, Col: 3}).String(); got != "row 1, column 4" {
		t.Errorf("got %q", got)
	}
	if got := (Cell{Row: 1, Col: 1}).LogValue().String(); got != "2,2" {
		t.Errorf("got %q", got)
	}
}
