package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render/styles"
)

// Each grid cell is two terminal columns wide so cells look square.
const (
	cellFilled = "██"
	cellEmpty  = "··"
)

var cellStyles = func() []lipgloss.Style {
	out := make([]lipgloss.Style, len(styles.Palette))
	for i, c := range styles.Palette {
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI))
	}
	return out
}()

// renderGrid draws g with the highest row first.
func renderGrid(g grid.Grid) string {
	var sb strings.Builder
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			v := g.At(x, y)
			if v == grid.Empty || v >= len(cellStyles) {
				sb.WriteString(cellStyles[0].Render(cellEmpty))
				continue
			}
			sb.WriteString(cellStyles[v].Render(cellFilled))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// termPanel is one titled grid shown in the terminal.
type termPanel struct {
	title string
	g     grid.Grid
}

func (p termPanel) render() string {
	return lipgloss.JoinVertical(lipgloss.Left, StyleTitle.Render(p.title), renderGrid(p.g))
}

func piecePanels(doc *puzzle.Document) []termPanel {
	out := make([]termPanel, 0, len(doc.Displays))
	for i, g := range doc.Displays {
		title := fmt.Sprintf("Piece %d", i+1)
		if i < len(doc.Pieces) {
			p := doc.Pieces[i]
			title = fmt.Sprintf("Piece %d · %dx%d %s", p.ID, p.Width, p.Depth, styles.Brick(p.Color).Name)
		}
		out = append(out, termPanel{title: title, g: g})
	}
	return out
}

func pagePanel(doc *puzzle.Document, p puzzle.Page, hideTop bool) termPanel {
	g := p.Grid
	if hideTop {
		g = p.Base
	}
	title := fmt.Sprintf("Step %d/%d · %s on %s", p.Index, len(doc.Pages), brickName(doc, p.Top), brickName(doc, p.Bottom))
	if p.Rotation != grid.Rot0 {
		title += fmt.Sprintf(" · turned %s°", p.Rotation)
	}
	return termPanel{title: title, g: g}
}

func solutionPanel(doc *puzzle.Document) termPanel {
	s := doc.Solution
	return termPanel{
		title: fmt.Sprintf("Solution · %s face · %s°", s.Face, s.Rotation),
		g:     s.Grid,
	}
}

func brickName(doc *puzzle.Document, id brick.ID) string {
	p, ok := doc.Piece(id)
	if !ok {
		return fmt.Sprintf("#%d", id)
	}
	return fmt.Sprintf("%s #%d", styles.Brick(p.Color).Name, id)
}

// joinPanels lays panels out left to right, perRow to a line.
func joinPanels(ps []termPanel, perRow int) string {
	if perRow < 1 {
		perRow = 1
	}
	gap := strings.Repeat(" ", 3)
	var rows []string
	for i := 0; i < len(ps); i += perRow {
		var cols []string
		for j, p := range ps[i:min(i+perRow, len(ps))] {
			if j > 0 {
				cols = append(cols, gap)
			}
			cols = append(cols, p.render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return strings.Join(rows, "\n\n")
}
