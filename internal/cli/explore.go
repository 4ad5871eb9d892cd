package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/LyteFM/overlap-components/pkg/core/overlap"
	"github.com/LyteFM/overlap-components/pkg/familyio"
)

// List styles, matching the row-highlighting convention of the teacher's
// repo-picker TUI.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the "explore" command: a read-only TUI for
// stepping through a family in family order and inspecting compute_max's
// witnesses per set, useful for debugging the tie-breaking open question
// (spec.md §9) on small instances.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore FILE",
		Short: "Interactively step through a family's compute_max witnesses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(args[0])
		},
	}
}

func (c *CLI) runExplore(path string) error {
	f, err := familyio.ParseFile(path)
	if err != nil {
		return err
	}
	overlap.ComputeMax(f)

	g := overlap.BuildSubgraph(f)
	labels := make([]int, f.Len())
	g.ConnectedComponents(labels)

	model := newExploreModel(f, labels)
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}

// exploreModel is the bubbletea model for stepping through sets.
type exploreModel struct {
	sets   []*overlap.Set
	labels []int
	cursor int
}

func newExploreModel(f *overlap.Family, labels []int) exploreModel {
	return exploreModel{sets: f.Sets(), labels: labels}
}

func (m exploreModel) Init() tea.Cmd { return nil }

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sets)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Overlap Explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, len(m.sets))
	for i, s := range m.sets {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", s.ID),
			fmt.Sprintf("%d", s.Size()),
			formatWitness(s.Left), formatWitness(s.Right),
			formatWitness(s.MLeft), formatWitness(s.MRight),
			formatWitness(s.Max),
			fmt.Sprintf("%d", m.labels[s.ID]),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "id", "size", "left", "right", "mleft", "mright", "max", "component").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

func formatWitness(v int) string {
	if v == overlap.Undefined {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}
