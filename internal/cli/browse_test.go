package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/nfogen/pkg/style"
)

func testHeaders() ([]string, []style.Header) {
	return []string{"alpha", "beta"}, []style.Header{
		{Text: "AAA\nAAA", Glyphs: "-*-"},
		{Text: "BBB"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{}
}

func TestHeaderListNavigation(t *testing.T) {
	names, headers := testHeaders()
	m := NewHeaderListModel(names, headers)

	next, _ := m.Update(keyMsg("down"))
	m = next.(HeaderListModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 after down", m.Cursor)
	}

	// The cursor stops at the last entry.
	next, _ = m.Update(keyMsg("down"))
	m = next.(HeaderListModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 at list end", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(HeaderListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 after up", m.Cursor)
	}
}

func TestHeaderListSelection(t *testing.T) {
	names, headers := testHeaders()
	m := NewHeaderListModel(names, headers)

	next, _ := m.Update(keyMsg("down"))
	m = next.(HeaderListModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(HeaderListModel)

	if m.Selected != "beta" {
		t.Errorf("Selected = %q, want beta", m.Selected)
	}
	if cmd == nil {
		t.Error("enter must quit the program")
	}
}

func TestHeaderListView(t *testing.T) {
	names, headers := testHeaders()
	m := NewHeaderListModel(names, headers)

	view := m.View()
	for _, want := range []string{"alpha", "beta", "AAA", "-*-"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	empty := NewHeaderListModel(nil, nil)
	if !strings.Contains(empty.View(), "no headers") {
		t.Error("empty catalog view should say so")
	}
}
