package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	bserrors "github.com/matzehuels/brickstack/pkg/errors"
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render/styles"
)

// showOpts selects what the show command prints. With no selection
// everything is printed.
type showOpts struct {
	page     int
	pieces   bool
	solution bool
	hideTop  bool
	perRow   int
}

func (o showOpts) all() bool { return o.page == 0 && !o.pieces && !o.solution }

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	opts := showOpts{perRow: 4}

	cmd := &cobra.Command{
		Use:   "show <puzzle.json>",
		Short: "Print a saved puzzle in color",
		Example: `  brickstack show puzzle.json
  brickstack show puzzle.json --page 3 --hide-top
  brickstack show puzzle.json --solution`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := puzzle.ReadFile(args[0])
			if err != nil {
				return err
			}
			return printDocument(cmd.OutOrStdout(), doc, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "print only this manual page (1-based)")
	cmd.Flags().BoolVar(&opts.pieces, "pieces", false, "print the piece list and displays")
	cmd.Flags().BoolVar(&opts.solution, "solution", false, "print the solution outline")
	cmd.Flags().BoolVar(&opts.hideTop, "hide-top", false, "draw pages without the brick being added")
	cmd.Flags().IntVar(&opts.perRow, "per-row", opts.perRow, "grids per line")

	return cmd
}

// printDocument writes the selected parts of doc to w.
func printDocument(w io.Writer, doc *puzzle.Document, opts showOpts) error {
	if opts.page < 0 || opts.page > len(doc.Pages) {
		return bserrors.New(bserrors.ErrCodeInvalidInput, "page %d out of range (puzzle has %d pages)", opts.page, len(doc.Pages))
	}

	if opts.all() || opts.pieces {
		fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Puzzle %s", shortID(doc.ID))))
		fmt.Fprintln(w, pieceTable(doc))
		fmt.Fprintln(w)
		fmt.Fprintln(w, joinPanels(piecePanels(doc), opts.perRow))
		fmt.Fprintln(w)
	}

	switch {
	case opts.page > 0:
		fmt.Fprintln(w, pagePanel(doc, doc.Pages[opts.page-1], opts.hideTop).render())
		fmt.Fprintln(w)
	case opts.all():
		ps := make([]termPanel, len(doc.Pages))
		for i, p := range doc.Pages {
			ps[i] = pagePanel(doc, p, opts.hideTop)
		}
		fmt.Fprintln(w, joinPanels(ps, opts.perRow))
		fmt.Fprintln(w)
	}

	if opts.all() || opts.solution {
		fmt.Fprintln(w, solutionPanel(doc).render())
	}
	return nil
}

// pieceTable lists every piece with its placement.
func pieceTable(doc *puzzle.Document) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	pieces := append(append([]puzzle.Piece{}, doc.Pieces...), doc.Unplaced...)
	rows := make([][]string, 0, len(pieces))
	for _, p := range pieces {
		pos, facing := "unplaced", ""
		if p.Position != nil {
			pos, facing = p.Position.String(), p.Facing.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(int(p.ID)),
			fmt.Sprintf("%dx%d", p.Width, p.Depth),
			styles.Brick(p.Color).Name,
			pos,
			facing,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Shape", "Color", "Position", "Facing").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row >= 0 && row < len(pieces) && col == 2 {
				return base.Foreground(lipgloss.Color(styles.Brick(pieces[row].Color).ANSI))
			}
			if row >= len(doc.Pieces) {
				return base.Foreground(colorDim)
			}
			return base
		}).
		String()
}
