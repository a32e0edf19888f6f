package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/internal/ui/style"
)

// Editor opens a multi-line text area. Ctrl+D finishes.
// Without a terminal it reads a single line instead.
func (t *Terminal) Editor(prompt string) (string, error) {
	if !t.tty {
		return t.readLine(prompt + " ")
	}

	final, err := t.runProgram(newEditorModel(prompt))
	if err != nil {
		return "", err
	}
	fm := final.(editorModel)
	if !fm.done {
		return "", dialog.ErrCanceled
	}
	return fm.text, nil
}

type editorModel struct {
	prompt string
	area   textarea.Model
	text   string
	done   bool
}

func newEditorModel(prompt string) editorModel {
	area := textarea.New()
	area.SetWidth(pickerWidth)
	area.SetHeight(8)
	area.ShowLineNumbers = false
	area.Focus()
	return editorModel{prompt: prompt, area: area}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, editorKeys.Submit):
			m.text = m.area.Value()
			m.done = true
			return m, tea.Quit
		case key.Matches(keyMsg, editorKeys.Cancel):
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.area.View())
	b.WriteString("\n")
	b.WriteString(style.Muted(footer(editorKeys.Submit, editorKeys.Cancel)))
	b.WriteString("\n")
	return b.String()
}
