package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cegloff/mcp-diagram-tools/pkg/model"
)

func browserFixture() elementListModel {
	doc := &model.Document{
		Nodes: []model.Node{
			{ID: "a", Kind: model.KindRectangle, Label: "Start", X: 0, Y: 0, Width: 120, Height: 60},
			{ID: "b", Kind: model.KindEllipse, Label: "End", X: 300, Y: 0, Width: 120, Height: 60},
		},
		Edges: []model.Edge{{ID: "e1", Source: "a", Target: "b"}},
	}
	return newElementListModel("flow.drawio", doc)
}

func TestElementListRows(t *testing.T) {
	m := browserFixture()
	if len(m.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(m.rows))
	}
	if m.rows[0].kind != "node" || m.rows[2].kind != "edge" {
		t.Errorf("row kinds = %q/%q, want node/edge", m.rows[0].kind, m.rows[2].kind)
	}
	if !strings.Contains(m.rows[2].shape, "a") || !strings.Contains(m.rows[2].shape, "b") {
		t.Errorf("edge shape = %q, want endpoints", m.rows[2].shape)
	}
}

func TestElementListNavigation(t *testing.T) {
	m := browserFixture()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(elementListModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(elementListModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	// Never scrolls past the last row.
	for i := 0; i < 10; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(elementListModel)
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

func TestElementListQuit(t *testing.T) {
	m := browserFixture()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestElementListView(t *testing.T) {
	m := browserFixture()
	view := m.View()
	for _, want := range []string{"flow.drawio", "Start", "End", "e1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
