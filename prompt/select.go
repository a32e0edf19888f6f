package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/internal/ui/style"
)

const (
	pickerWidth     = 60
	pickerMaxHeight = 20
)

// Select shows a filterable list. Typing / starts a fuzzy filter.
func (t *Terminal) Select(prompt string, options []string) (int, error) {
	if !t.tty {
		return t.selectByNumber(prompt, options)
	}

	final, err := t.runProgram(newSelectModel(prompt, options))
	if err != nil {
		return 0, err
	}
	fm := final.(selectModel)
	if fm.chosen < 0 {
		return 0, dialog.ErrCanceled
	}
	return fm.chosen, nil
}

// selectByNumber lists options with 1-based numbers and reads one of them.
func (t *Terminal) selectByNumber(prompt string, options []string) (int, error) {
	printNumbered(t, prompt, options)
	s, err := t.readLine("请输入序号: ")
	if err != nil {
		return 0, err
	}
	n, err := parseChoice(s, len(options))
	if err != nil {
		return 0, err
	}
	return n, nil
}

func printNumbered(t *Terminal, prompt string, options []string) {
	fmt.Fprintln(t.out, prompt)
	for i, o := range options {
		fmt.Fprintf(t.out, "  %s %s\n", style.Muted(strconv.Itoa(i+1)+"."), o)
	}
}

// parseChoice converts a 1-based option number into an index.
func parseChoice(s string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("序号需要在 1 到 %d 之间, 实际接收到了 %q", count, s)
	}
	return n - 1, nil
}

type choice struct {
	index int
	label string
}

func (c choice) FilterValue() string { return c.label }
func (c choice) Title() string       { return c.label }
func (c choice) Description() string { return "" }

type selectModel struct {
	list      list.Model
	chosen    int
	cancelled bool
}

func newSelectModel(prompt string, options []string) selectModel {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = choice{index: i, label: o}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, pickerWidth, pickerHeight(len(options)))
	l.Title = prompt
	l.Styles.Title = lipgloss.NewStyle().Bold(true)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()

	return selectModel{list: l, chosen: -1}
}

// pickerHeight leaves room for the title, filter line and help.
func pickerHeight(n int) int {
	return min(n+6, pickerMaxHeight)
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(min(msg.Width, pickerWidth), min(msg.Height, pickerHeight(len(m.list.Items()))))
		return m, nil

	case tea.KeyMsg:
		state := m.list.FilterState()
		switch {
		case msg.Type == tea.KeyCtrlC,
			msg.Type == tea.KeyEsc && state == list.Unfiltered:
			m.cancelled = true
			return m, tea.Quit

		case msg.Type == tea.KeyEnter && state != list.Filtering:
			if c, ok := m.list.SelectedItem().(choice); ok {
				m.chosen = c.index
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.chosen >= 0 || m.cancelled {
		return ""
	}
	return m.list.View()
}
