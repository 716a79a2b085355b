package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// elementListModel - Interactive diagram element browser
// =============================================================================

// elementRow is one browsable element.
type elementRow struct {
	kind     string // "node" or "edge"
	id       string
	label    string
	shape    string
	position string
	size     string
}

// elementListModel is the bubbletea model for browsing diagram elements.
type elementListModel struct {
	title  string
	rows   []elementRow
	cursor int
	height int
	offset int
}

// newElementListModel builds a browser over the document's nodes and edges.
func newElementListModel(title string, doc *model.Document) elementListModel {
	rows := make([]elementRow, 0, len(doc.Nodes)+len(doc.Edges))

	for _, n := range doc.Nodes {
		rows = append(rows, elementRow{
			kind:     "node",
			id:       n.ID,
			label:    n.Label,
			shape:    string(n.Kind),
			position: fmt.Sprintf("%.0f,%.0f", n.X, n.Y),
			size:     fmt.Sprintf("%.0f×%.0f", n.Width, n.Height),
		})
	}
	for _, e := range doc.Edges {
		rows = append(rows, elementRow{
			kind:  "edge",
			id:    e.ID,
			label: e.Label,
			shape: fmt.Sprintf("%s %s %s", e.Source, iconArrow, e.Target),
		})
	}

	return elementListModel{
		title:  title,
		rows:   rows,
		height: 15,
	}
}

func (m elementListModel) Init() tea.Cmd {
	return nil
}

func (m elementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m elementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Elements: " + m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(listDimStyle.Render("  (no elements)"))
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.kind, r.id, r.label, r.shape, r.position, r.size})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Kind", "ID", "Label", "Shape", "Position", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.offset + row
			if actualIdx >= len(m.rows) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if actualIdx == m.cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			if m.rows[actualIdx].kind == "edge" {
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))

	return b.String()
}
