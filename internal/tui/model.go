package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	mdwstringx "github.com/msto63/mdwx/foundation/utils/stringx"
)

// Model is the live conversion preview. Every keystroke converts the input
// into all conventions; enter picks the highlighted one.
type Model struct {
	input       textinput.Model
	conventions []mdwstringx.Convention
	selected    int
	width       int

	// Set when the user confirmed with enter. chosen may be empty when
	// the input has no letters or digits.
	chosen    string
	confirmed bool
	quitting  bool
}

// NewModel creates a preview model. initial is the selected convention;
// unknown conventions select the first one.
func NewModel(initial mdwstringx.Convention, text string) Model {
	ti := textinput.New()
	ti.Placeholder = "Type some text..."
	ti.Prompt = "> "
	ti.CharLimit = 4000
	ti.Width = 60
	ti.SetValue(text)
	ti.Focus()

	conventions := mdwstringx.Conventions()
	selected := 0
	for i, c := range conventions {
		if c == initial {
			selected = i
		}
	}

	return Model{
		input:       ti,
		conventions: conventions,
		selected:    selected,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "shift+tab":
			m.selected = (m.selected + len(m.conventions) - 1) % len(m.conventions)
			return m, nil

		case "down", "tab":
			m.selected = (m.selected + 1) % len(m.conventions)
			return m, nil

		case "enter":
			if out, err := mdwstringx.Convert(m.Selected(), m.input.Value()); err == nil {
				m.chosen = out
				m.confirmed = true
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Selected returns the highlighted convention
func (m Model) Selected() mdwstringx.Convention {
	return m.conventions[m.selected]
}

// Chosen returns the conversion confirmed with enter, if any
func (m Model) Chosen() (string, bool) {
	return m.chosen, m.confirmed
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(RenderTitle("casex live"))
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")

	text := m.input.Value()
	if mdwstringx.IsBlank(text) {
		s.WriteString(RenderHelp("Enter text to see every convention."))
	} else {
		rows := make([][]string, len(m.conventions))
		for i, c := range m.conventions {
			out, err := mdwstringx.Convert(c, text)
			if err != nil {
				out = RenderError(err.Error())
			}
			rows[i] = []string{c.String(), out}
		}
		s.WriteString(RenderTable([]string{"Convention", "Result"}, rows, m.selected))
	}

	s.WriteString("\n")
	s.WriteString(RenderHelp("↑/↓ select • enter print and quit • esc cancel"))
	s.WriteString("\n")

	return s.String()
}
