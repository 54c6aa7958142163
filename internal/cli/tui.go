package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/citypaths/pkg/pipeline"
	"github.com/matzehuels/citypaths/pkg/shortest"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCurrent  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleReached  = lipgloss.NewStyle().Foreground(colorWhite)
	styleUnreach  = lipgloss.NewStyle().Foreground(colorDim)
	styleErrorRow = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// ExploreModel - Interactive route table
// =============================================================================

// destination is one row of the route table.
type destination struct {
	cost  shortest.Cost
	route []string
	err   error
}

// ExploreModel is the bubbletea model for browsing cheapest routes.
// The cursor selects a source city; every other city of the case is listed
// with its cost from that source.
type ExploreModel struct {
	Cases       []pipeline.Case
	Case        int // index into Cases
	Cursor      int // 0-based source city
	Height      int
	Offset      int
	Unreachable string

	rows []destination
}

// NewExploreModel creates a model positioned on the first city of the first case.
func NewExploreModel(cases []pipeline.Case, unreachable string) ExploreModel {
	m := ExploreModel{Cases: cases, Height: 15, Unreachable: unreachable}
	m.refresh()
	return m
}

// refresh recomputes the rows for the current source, one query per destination.
func (m *ExploreModel) refresh() {
	m.rows = nil
	if len(m.Cases) == 0 {
		return
	}
	g := m.Cases[m.Case].Graph
	src := m.Cursor + 1
	m.rows = make([]destination, g.NodeCount())
	for dst := 1; dst <= g.NodeCount(); dst++ {
		cost, path, err := shortest.Route(g, src, dst)
		m.rows[dst-1] = destination{cost: cost, route: routeNames(g, path), err: err}
	}
}

func (m ExploreModel) cities() int {
	if len(m.Cases) == 0 {
		return 0
	}
	return m.Cases[m.Case].Graph.NodeCount()
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
				m.refresh()
			}
		case "down", "j":
			if m.Cursor < m.cities()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
				m.refresh()
			}
		case "right", "l", "tab":
			if m.Case < len(m.Cases)-1 {
				m.Case++
				m.Cursor, m.Offset = 0, 0
				m.refresh()
			}
		case "left", "h", "shift+tab":
			if m.Case > 0 {
				m.Case--
				m.Cursor, m.Offset = 0, 0
				m.refresh()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	if len(m.Cases) == 0 {
		b.WriteString(StyleDim.Render("No test cases."))
		b.WriteString("\n")
		return b.String()
	}

	g := m.Cases[m.Case].Graph
	b.WriteString(styleTitle.Render(fmt.Sprintf("Case %d/%d", m.Case+1, len(m.Cases))))
	if g.NodeCount() > 0 {
		b.WriteString(StyleDim.Render(" · from ") + StyleValue.Render(g.Name(m.Cursor+1)))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ source  ←/→ case  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		cost := d.cost.Format(m.Unreachable)
		if d.err != nil {
			cost = "error"
		}
		rows = append(rows, []string{cursor, fmt.Sprint(i + 1), g.Name(i + 1), cost, strings.Join(d.route, " > ")})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "City", "Cost", "Route").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.rows) {
				return lipgloss.NewStyle()
			}
			switch d := m.rows[idx]; {
			case idx == m.Cursor:
				return styleCurrent
			case d.err != nil:
				return styleErrorRow
			case !d.cost.Reachable:
				return styleUnreach
			}
			return styleReached
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d] %d edges", m.Cursor+1, len(m.rows), g.EdgeCount())))

	return b.String()
}
