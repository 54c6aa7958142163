package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/citypaths/pkg/pipeline"
)

func exploreCases(t *testing.T) []pipeline.Case {
	t.Helper()
	_, cases, err := pipeline.ReadAll(strings.NewReader(strings.Replace(sampleInput, "5\n1\n", "5\n2\n", 1) + "2\nA\n0\nB\n1\n1 2\n0\n"))
	require.NoError(t, err)
	return cases
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m ExploreModel, keys ...string) ExploreModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(ExploreModel)
	}
	return m
}

func TestExploreModelRows(t *testing.T) {
	m := NewExploreModel(exploreCases(t)[:1], "-1")

	require.Len(t, m.rows, 4)
	assert.Equal(t, "0", m.rows[0].cost.String())
	assert.Equal(t, "3", m.rows[3].cost.String())
	assert.Equal(t, []string{"gdansk", "bydgoszcz", "torun", "warszawa"}, m.rows[3].route)

	view := m.View()
	assert.Contains(t, view, "Case 1/1")
	assert.Contains(t, view, "gdansk > bydgoszcz > torun > warszawa")
}

func TestExploreModelNavigation(t *testing.T) {
	m := NewExploreModel(exploreCases(t), "none")

	m = press(m, "down", "down", "down", "down")
	assert.Equal(t, 3, m.Cursor, "cursor stops at last city")
	assert.Equal(t, "0", m.rows[3].cost.String())

	m = press(m, "k")
	assert.Equal(t, 2, m.Cursor)

	m = press(m, "l")
	assert.Equal(t, 1, m.Case)
	assert.Equal(t, 0, m.Cursor)
	require.Len(t, m.rows, 2)
	assert.False(t, m.rows[1].cost.Reachable)
	assert.Contains(t, m.View(), "none")

	m = press(m, "j")
	assert.Equal(t, "2", m.rows[0].cost.String())

	m = press(m, "l", "h")
	assert.Equal(t, 0, m.Case)
}

func TestExploreModelQuit(t *testing.T) {
	m := NewExploreModel(exploreCases(t), "-1")
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestExploreModelEmpty(t *testing.T) {
	m := NewExploreModel(nil, "-1")
	m = press(m, "down", "l")
	assert.Contains(t, m.View(), "No test cases.")
}

func TestExploreModelWindowSize(t *testing.T) {
	m := NewExploreModel(exploreCases(t), "-1")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	assert.Equal(t, 5, next.(ExploreModel).Height)
}
