package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/internal/ui/style"
)

// MultiSelect shows a checklist. Space toggles, enter confirms.
func (t *Terminal) MultiSelect(prompt string, options []string) ([]int, error) {
	if !t.tty {
		return t.multiSelectByNumber(prompt, options)
	}

	final, err := t.runProgram(newMultiModel(prompt, options))
	if err != nil {
		return nil, err
	}
	fm := final.(multiModel)
	if fm.cancelled || !fm.done {
		return nil, dialog.ErrCanceled
	}
	return fm.selected(), nil
}

// multiSelectByNumber reads 1-based numbers separated by spaces or commas.
// An empty line selects nothing.
func (t *Terminal) multiSelectByNumber(prompt string, options []string) ([]int, error) {
	printNumbered(t, prompt, options)
	s, err := t.readLine("请输入序号 (空格分隔): ")
	if err != nil {
		return nil, err
	}
	return parseChoices(s, len(options))
}

func parseChoices(s string, count int) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	seen := make(map[int]bool, len(fields))
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := parseChoice(f, count)
		if err != nil {
			return nil, err
		}
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out, nil
}

type multiModel struct {
	prompt    string
	options   []string
	cursor    int
	picked    []bool
	done      bool
	cancelled bool
}

func newMultiModel(prompt string, options []string) multiModel {
	return multiModel{
		prompt:  prompt,
		options: options,
		picked:  make([]bool, len(options)),
	}
}

// selected returns the picked indexes in option order.
func (m multiModel) selected() []int {
	out := []int{}
	for i, p := range m.picked {
		if p {
			out = append(out, i)
		}
	}
	return out
}

func (m multiModel) Init() tea.Cmd {
	return nil
}

func (m multiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := len(m.options) - 1
	switch {
	case key.Matches(keyMsg, pickerKeys.Cancel):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(keyMsg, pickerKeys.Submit):
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = last
		}

	case key.Matches(keyMsg, pickerKeys.Down):
		if m.cursor < last {
			m.cursor++
		} else {
			m.cursor = 0
		}

	case key.Matches(keyMsg, pickerKeys.Toggle):
		if len(m.picked) > 0 {
			m.picked[m.cursor] = !m.picked[m.cursor]
		}

	case key.Matches(keyMsg, pickerKeys.All):
		all := len(m.selected()) < len(m.options)
		m.picked = make([]bool, len(m.options))
		for i := range m.picked {
			m.picked[i] = all
		}
	}

	return m, nil
}

func (m multiModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.prompt))
	b.WriteString("\n\n")

	for i, o := range m.options {
		cursor := "   "
		if i == m.cursor {
			cursor = " → "
		}
		box := "[ ]"
		if m.picked[i] {
			box = style.Success("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, o)
	}

	b.WriteString("\n")
	k := pickerKeys
	b.WriteString(style.Muted(footer(k.Up, k.Down, k.Toggle, k.All, k.Submit, k.Cancel)))
	b.WriteString("\n")
	return b.String()
}
