package game

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Overlay is a set of cells shown face up for a single render, whatever
// their permanent state.
type Overlay map[Cell]struct{}

// NewOverlay returns an overlay containing cells.
func NewOverlay(cells ...Cell) Overlay {
	o := make(Overlay, len(cells))
	for _, c := range cells {
		o[c] = struct{}{}
	}
	return o
}

// Has reports whether c is in the overlay. A nil overlay is empty.
func (o Overlay) Has(c Cell) bool {
	_, ok := o[c]
	return ok
}

// Renderer turns boards into console text. With color enabled, matched
// cards and flashed cards get distinct styles.
type Renderer struct {
	color   bool
	title   lipgloss.Style
	matched lipgloss.Style
	flashed lipgloss.Style
}

// NewRenderer returns a renderer styled for w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		color:   color,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		matched: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		flashed: r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// Board renders the current board with overlay cells showing their answer symbol.
// Rows are separated by blank lines.
func (r *Renderer) Board(b *Board, overlay Overlay) string {
	return r.grid(b.Dim, func(c Cell) string {
		switch {
		case overlay.Has(c):
			return r.style(r.flashed, b.Symbol(c))
		case b.IsRevealed(c):
			return r.style(r.matched, b.Current[c.Row][c.Col])
		default:
			return string(b.Current[c.Row][c.Col])
		}
	})
}

// Answer renders the full answer board.
func (r *Renderer) Answer(b *Board) string {
	return r.grid(b.Dim, func(c Cell) string {
		return string(b.Symbol(c))
	})
}

// Title renders a heading.
func (r *Renderer) Title(s string) string {
	if !r.color {
		return s
	}
	return r.title.Render(s)
}

func (r *Renderer) grid(dim int, cell func(Cell) string) string {
	var sb strings.Builder
	sb.WriteString("\n")
	row := make([]string, dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			row[j] = cell(Cell{Row: i, Col: j})
		}
		sb.WriteString(strings.Join(row, " "))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (r *Renderer) style(s lipgloss.Style, v rune) string {
	if !r.color {
		return string(v)
	}
	return s.Render(string(v))
}
