// Package display draws boards on a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"ttt/game"

	"github.com/muesli/termenv"
)

const noMove = -1

var (
	xColor    = "#6afd76"
	oColor    = "#5f61fc"
	lastColor = "#fc7e7e"
	dimColor  = "#8f8f8f"
)

type Renderer struct {
	out *termenv.Output
}

// NewRenderer writes to w. Colors follow the terminal's capabilities unless
// plain is set.
func NewRenderer(w io.Writer, plain bool) *Renderer {
	var options []termenv.OutputOption
	if plain {
		options = append(options, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, options...)}
}

// Render returns b with column letters on top and row numbers on the left.
// The cell at last, if any, is highlighted.
func (r *Renderer) Render(b *game.Board, last int) string {
	var sb strings.Builder
	width := b.Width()
	gutter := len(fmt.Sprint(width))

	sb.WriteString(strings.Repeat(" ", gutter+1))
	for col := 0; col < width; col++ {
		sb.WriteString(" ")
		sb.WriteString(r.style(string(rune('A'+col)), dimColor))
	}
	sb.WriteString("\n")

	for row := 0; row < width; row++ {
		sb.WriteString(r.style(fmt.Sprintf("%*d", gutter, row+1), dimColor))
		sb.WriteString(" ")
		for col := 0; col < width; col++ {
			move := row*width + col
			sb.WriteString(" ")
			sb.WriteString(r.cell(b.At(move), move == last))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) cell(m game.Mark, last bool) string {
	switch {
	case m == game.Empty:
		return r.style(".", dimColor)
	case last:
		return r.out.String(m.String()).Foreground(r.out.Color(lastColor)).Bold().String()
	case m == game.X:
		return r.style(m.String(), xColor)
	}
	return r.style(m.String(), oColor)
}

func (r *Renderer) style(s, color string) string {
	return r.out.String(s).Foreground(r.out.Color(color)).String()
}

// Draw writes the board followed by a blank line.
func (r *Renderer) Draw(b *game.Board, last int) {
	fmt.Fprintln(r.out, r.Render(b, last))
}

// Print writes a plain message line.
func (r *Renderer) Print(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Highlight writes a bold message line.
func (r *Renderer) Highlight(format string, args ...any) {
	fmt.Fprintln(r.out, r.out.String(fmt.Sprintf(format, args...)).Bold().String())
}

// DrawInitial draws a board without highlighting.
func (r *Renderer) DrawInitial(b *game.Board) {
	r.Draw(b, noMove)
}
