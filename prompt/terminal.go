// Package prompt implements dialog.Prompter on a terminal.
//
// Line prompts go through liner, so they work with a plain pipe as well as a
// TTY. Pickers and the editor are Bubble Tea programs and fall back to
// numbered line prompts when stdin is not a terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/internal/log"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

var errNotInteractive = errors.New("prompt: terminal required")

// Terminal asks questions on a terminal.
type Terminal struct {
	in  *os.File
	out io.Writer
	tty bool

	line       *liner.State
	readLine   func(prompt string) (string, error)
	readSecret func() ([]byte, error)
	runProgram func(tea.Model) (tea.Model, error)
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithInput reads answers from f instead of os.Stdin.
func WithInput(f *os.File) Option {
	return func(t *Terminal) {
		t.in = f
	}
}

// WithOutput writes prompts and pickers to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Terminal) {
		t.out = w
	}
}

// NewTerminal returns a prompter on stdin and stdout.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.tty = isTerminal(t.in) && isTerminal(t.out)
	t.readLine = t.linerPrompt
	t.readSecret = t.termPassword
	t.runProgram = t.teaProgram
	return t
}

// Close restores the terminal after line prompts.
func (t *Terminal) Close() error {
	if t.line == nil {
		return nil
	}
	err := t.line.Close()
	t.line = nil
	return err
}

// Interactive reports whether both ends are terminals.
func (t *Terminal) Interactive() bool {
	return t.tty
}

func (t *Terminal) Input(prompt string) (string, error) {
	return t.readLine(prompt + " ")
}

func (t *Terminal) Confirm(prompt string) (bool, error) {
	s, err := t.readLine(prompt + " [y/n] ")
	if err != nil {
		return false, err
	}
	return parseYesNo(s)
}

func (t *Terminal) Password(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt+" ")
	b, err := t.readSecret()
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (t *Terminal) PasswordWithConfirmation(prompt, confirmation, mismatch string) (string, error) {
	for {
		first, err := t.Password(prompt)
		if err != nil {
			return "", err
		}
		second, err := t.Password(confirmation)
		if err != nil {
			return "", err
		}
		if first == second {
			return first, nil
		}
		fmt.Fprintln(t.out, mismatch)
	}
}

// parseYesNo accepts y/yes/n/no in any case, and 是/否.
func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "是":
		return true, nil
	case "n", "no", "false", "否":
		return false, nil
	}
	return false, fmt.Errorf("请输入 y 或 n, 实际接收到了 %q", s)
}

// linerPrompt reads one edited line. Ctrl+C and end of input cancel the prompt.
// The liner is shared between prompts because it buffers piped input.
func (t *Terminal) linerPrompt(prompt string) (string, error) {
	if t.line == nil {
		t.line = liner.NewLiner()
		t.line.SetCtrlCAborts(true)
	}

	s, err := t.line.Prompt(prompt)
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return "", fmt.Errorf("%w: %w", dialog.ErrCanceled, err)
	case errors.Is(err, io.EOF):
		return "", fmt.Errorf("%w: end of input", dialog.ErrCanceled)
	case err != nil:
		return "", err
	}
	return s, nil
}

func (t *Terminal) termPassword() ([]byte, error) {
	if !isTerminal(t.in) {
		return nil, errNotInteractive
	}
	return term.ReadPassword(int(t.in.Fd()))
}

func (t *Terminal) teaProgram(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		log.Warn("prompt: program failed: %v", err)
		return nil, err
	}
	return final, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && f != nil && term.IsTerminal(int(f.Fd()))
}

var _ dialog.Prompter = (*Terminal)(nil)
