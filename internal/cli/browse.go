package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/brickstack/pkg/puzzle"
)

var (
	browseHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	browseStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// browseCommand creates the interactive manual viewer.
func (c *CLI) browseCommand() *cobra.Command {
	var hideTop bool

	cmd := &cobra.Command{
		Use:   "browse <puzzle.json>",
		Short: "Step through a saved puzzle's manual in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := puzzle.ReadFile(args[0])
			if err != nil {
				return err
			}
			m := newBrowseModel(doc)
			m.hideTop = hideTop
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&hideTop, "hide-top", false, "start with the brick being added hidden")
	return cmd
}

// =============================================================================
// browseModel - manual pager
// =============================================================================

// browseModel pages through the piece overview, every manual page and the
// solution, in that order.
type browseModel struct {
	doc     *puzzle.Document
	index   int
	hideTop bool
	width   int
}

func newBrowseModel(doc *puzzle.Document) browseModel {
	return browseModel{doc: doc, width: 80}
}

// screens counts the overview, the pages and the solution.
func (m browseModel) screens() int { return len(m.doc.Pages) + 2 }

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ":
			if m.index < m.screens()-1 {
				m.index++
			}
		case "left", "h", "p":
			if m.index > 0 {
				m.index--
			}
		case "home", "g":
			m.index = 0
		case "end", "G":
			m.index = m.screens() - 1
		case "t":
			m.hideTop = !m.hideTop
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	switch {
	case m.index == 0:
		// Each grid cell takes two columns, plus the gap between panels.
		perRow := max(1, m.width/(2*m.doc.Dimensions.Width+3))
		b.WriteString(StyleTitle.Render(fmt.Sprintf("Pieces of puzzle %s", shortID(m.doc.ID))))
		b.WriteString("\n\n")
		b.WriteString(joinPanels(piecePanels(m.doc), perRow))
	case m.index <= len(m.doc.Pages):
		b.WriteString(pagePanel(m.doc, m.doc.Pages[m.index-1], m.hideTop).render())
	default:
		b.WriteString(solutionPanel(m.doc).render())
	}

	b.WriteString("\n\n")
	top := "shown"
	if m.hideTop {
		top = "hidden"
	}
	b.WriteString(browseStatusStyle.Render(fmt.Sprintf("[%d/%d] new brick %s", m.index+1, m.screens(), top)))
	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render("←/→ page  g/G first/last  t toggle new brick  q quit"))
	return b.String()
}
