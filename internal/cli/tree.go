package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nidhal-selmi/DeciMaLExample/pkg/model"
)

// List styles
var (
	treeSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	treeNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	treeDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Kind badge styles.
var badgeStyles = map[string]lipgloss.Style{
	model.KindPackage:          lipgloss.NewStyle().Foreground(colorBlue),
	model.KindLogicalFunction:  lipgloss.NewStyle().Foreground(colorGreen),
	model.KindLogicalComponent: lipgloss.NewStyle().Foreground(colorCyan),
	model.KindLogicalActor:     lipgloss.NewStyle().Foreground(colorYellow),
}

// newTreeCmd creates the tree command for browsing a parsed model
// interactively.
func newTreeCmd() *cobra.Command {
	opts := checkOpts{policy: "indent"}

	cmd := &cobra.Command{
		Use:   "tree <model>",
		Short: "Browse the parsed tree interactively",
		Long: `Browse a parsed DeciMaL model as a scrollable tree.

Each element shows its kind, alias, and description. Use the arrow keys
(or j/k) to move, and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTree(c.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.policy, "policy", opts.policy, "scope policy: indent (default), brace")

	return cmd
}

// runTree parses the model and starts the interactive browser.
func runTree(ctx context.Context, input string, opts *checkOpts) error {
	tree, warnings, err := loadModel(input, opts.policy)
	if err != nil {
		return err
	}
	reportWarnings(warnings)

	if tree.Count() == 0 {
		printInfo("%s contains no elements", input)
		return nil
	}

	m := newTreeModel(input, tree)
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// treeModel - Interactive tree browser
// =============================================================================

// treeRow is one flattened element of the tree.
type treeRow struct {
	name        string
	kind        string
	alias       string
	description string
	depth       int
}

// treeModel is the bubbletea model for tree browsing.
type treeModel struct {
	Title  string
	Rows   []treeRow
	Cursor int
	Height int
	Offset int
}

// newTreeModel flattens the tree into rows in document order.
func newTreeModel(title string, tree *model.Node) treeModel {
	var rows []treeRow
	tree.Walk(func(n *model.Node, depth int) {
		rows = append(rows, treeRow{
			name:        n.Name,
			kind:        n.Kind,
			alias:       n.Alias,
			description: n.Description,
			depth:       depth,
		})
	})
	return treeModel{
		Title:  title,
		Rows:   rows,
		Height: 15,
	}
}

func (m treeModel) Init() tea.Cmd {
	return nil
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor = 0
			m.Offset = 0
		case "end", "G":
			m.Cursor = len(m.Rows) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m treeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(treeDimStyle.Render("↑/↓ navigate  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		nameStyle := treeNormalStyle
		if i == m.Cursor {
			nameStyle = treeSelectedStyle
		}

		b.WriteString(cursor + strings.Repeat("  ", r.depth) + badgeFor(r.kind) + " " + nameStyle.Render(r.name))
		if r.alias != "" {
			b.WriteString(treeDimStyle.Render(" (" + r.alias + ")"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if desc := m.Rows[m.Cursor].description; desc != "" {
		b.WriteString(treeDimStyle.Render("  " + desc))
		b.WriteString("\n")
	}
	b.WriteString(treeDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// badgeFor renders a short colored tag for a node kind.
func badgeFor(kind string) string {
	style, ok := badgeStyles[kind]
	if !ok {
		style = treeDimStyle
	}
	return style.Render("[" + kind + "]")
}
