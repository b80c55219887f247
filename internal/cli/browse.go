package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/nfogen/pkg/style"
)

// List styles
var (
	listSelectedStyle = StyleHighlight.Bold(true)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewStyle      = lipgloss.NewStyle().Foreground(colorGray)
)

// HeaderListModel is the bubbletea model for interactive header browsing.
// The list of names sits above a live preview of the highlighted art.
type HeaderListModel struct {
	Names    []string
	Headers  []style.Header
	Cursor   int
	Selected string
}

// NewHeaderListModel creates a new header browser model. names and headers
// run parallel.
func NewHeaderListModel(names []string, headers []style.Header) HeaderListModel {
	return HeaderListModel{Names: names, Headers: headers}
}

func (m HeaderListModel) Init() tea.Cmd {
	return nil
}

func (m HeaderListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Names) > 0 {
				m.Selected = m.Names[m.Cursor]
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m HeaderListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Headers"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Names) == 0 {
		b.WriteString(listDimStyle.Render("no headers in catalog"))
		b.WriteString("\n")
		return b.String()
	}

	for i, name := range m.Names {
		cursor := "  "
		line := listNormalStyle.Render(name)
		if i == m.Cursor {
			cursor = "▸ "
			line = listSelectedStyle.Render(name)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	h := m.Headers[m.Cursor]
	for _, artLine := range strings.Split(h.Text, "\n") {
		b.WriteString(previewStyle.Render(artLine))
		b.WriteString("\n")
	}
	if h.Glyphs != "" {
		b.WriteString(previewStyle.Render(h.Glyphs))
		b.WriteString("\n")
	}
	return b.String()
}
