// Package ui writes command output, sending long help text through a pager
// when stdout is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/footprint-tools/subcmd/internal/domain"
	"github.com/footprint-tools/subcmd/internal/log"
	"github.com/mattn/go-shellwords"
	"golang.org/x/term"
)

// defaultPager is used when neither the config nor $PAGER names one.
var defaultPager = []string{"less", "-FRSX"}

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	envGetter     func(string) string
	runPager      func(argv []string, content string) error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets the pager command line, taking precedence over $PAGER.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a Writer for stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a Writer for out. Only an *os.File attached to a
// terminal is ever paged.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
		runPager:  execPager,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager shows content through the pager when the output is a terminal and
// content does not fit on one screen. A pager that fails to start falls back
// to printing.
func (w *Writer) Pager(content string) {
	if w.pagerDisabled {
		fmt.Fprint(w.out, content)
		return
	}
	height, ok := w.terminalHeight()
	if !ok || strings.Count(content, "\n") < height {
		fmt.Fprint(w.out, content)
		return
	}

	argv := w.pagerCommand()
	if len(argv) == 0 {
		fmt.Fprint(w.out, content)
		return
	}
	if err := w.runPager(argv, content); err != nil {
		log.Debug("ui: pager %q failed: %v", argv[0], err)
		fmt.Fprint(w.out, content)
	}
}

// terminalHeight reports the row count when out is a terminal.
func (w *Writer) terminalHeight() (int, bool) {
	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	_, h, err := term.GetSize(int(f.Fd()))
	if err != nil || h <= 0 {
		return 0, true
	}
	return h, true
}

// pagerCommand resolves the pager from the override, then $PAGER, then less.
// It returns nil when the pager is "cat" or cannot be parsed.
func (w *Writer) pagerCommand() []string {
	line := w.pagerOverride
	if line == "" && w.envGetter != nil {
		line = w.envGetter("PAGER")
	}
	if strings.TrimSpace(line) == "" {
		return defaultPager
	}

	argv, err := shellwords.Parse(line)
	if err != nil {
		log.Warn("ui: cannot parse pager %q: %v", line, err)
		return nil
	}
	if len(argv) == 0 || argv[0] == "cat" {
		return nil
	}
	return argv
}

func execPager(argv []string, content string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

var _ domain.OutputWriter = (*Writer)(nil)
