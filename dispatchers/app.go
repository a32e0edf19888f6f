// Package dispatchers routes a command line to one registered subcommand.
//
// An App holds an ordered list of subcommands. Dispatch picks one by name or
// alias, converts the remaining arguments for the subcommand's Shape and calls
// its callback. The tokens help, h, -h and --help print help, and version, v,
// -v and --version print the version. A subcommand followed by -h or
// --help prints its help, and one followed by -e or --example prints its
// examples.
package dispatchers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/history"
	"github.com/footprint-tools/subcmd/internal/domain"
	"github.com/footprint-tools/subcmd/internal/ui"
)

// AppSpec describes the program.
type AppSpec struct {
	Name    string
	Version string
	About   string
	// Default runs when no subcommand is given. Without it the app help is
	// printed.
	Default func() error
}

// App is a subcommand registry and dispatcher. Register everything before
// the first dispatch.
type App struct {
	spec AppSpec
	subs []Subcommand

	out      domain.OutputWriter
	errOut   io.Writer
	stdin    io.Reader
	prompter dialog.Prompter
	retry    dialog.RetryPolicy
	fatal    func(error)
	history  *history.Store
	ctx      context.Context

	outSet, retrySet bool
}

// Option configures an App.
type Option func(*App)

// WithOutput writes help, version and example text to w without a pager.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = ui.NewWriterTo(w, ui.WithPagerDisabled())
		a.outSet = true
	}
}

// WithErrorOutput makes RunArgs print failures to w instead of stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(a *App) {
		a.errOut = w
	}
}

// WithStdin sets where Dialog subcommands read a transcript from.
func WithStdin(r io.Reader) Option {
	return func(a *App) {
		a.stdin = r
	}
}

// WithPrompter sets the prompter for live dialog answers.
func WithPrompter(p dialog.Prompter) Option {
	return func(a *App) {
		a.prompter = p
	}
}

// WithRetry sets the retry policy for failing prompts.
func WithRetry(p dialog.RetryPolicy) Option {
	return func(a *App) {
		a.retry = p
		a.retrySet = true
	}
}

// WithFatal replaces the handler for failing password prompts.
func WithFatal(fn func(error)) Option {
	return func(a *App) {
		a.fatal = fn
	}
}

// WithHistory saves the transcript of every dialog that asked something live.
func WithHistory(s *history.Store) Option {
	return func(a *App) {
		a.history = s
	}
}

// WithContext sets the context passed to Dialog callbacks.
func WithContext(ctx context.Context) Option {
	return func(a *App) {
		a.ctx = ctx
	}
}

// NewApp returns an empty registry for the program described by spec.
func NewApp(spec AppSpec, opts ...Option) *App {
	a := &App{
		spec:   spec,
		out:    ui.NewWriter(),
		errOut: os.Stderr,
		stdin:  os.Stdin,
		retry:  dialog.RetryForever,
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Spec returns the program description.
func (a *App) Spec() AppSpec {
	return a.spec
}

// Register appends subcommands in help order. It panics when a subcommand
// has an invalid or already registered name or alias, or no action.
func (a *App) Register(subs ...Subcommand) *App {
	for _, s := range subs {
		if err := ValidateName(s.name); err != nil {
			panic("dispatchers: " + err.Error())
		}
		if s.short != "" {
			if err := ValidateName(s.short); err != nil {
				panic("dispatchers: alias of " + s.name + ": " + err.Error())
			}
		}
		if isNilShape(s.shape) {
			panic("dispatchers: subcommand " + s.name + " has no action")
		}
		for _, token := range []string{s.name, s.short} {
			if token == "" {
				continue
			}
			if prev, ok := a.Lookup(token); ok {
				panic(fmt.Sprintf("dispatchers: %q of %s is already used by %s", token, s.name, prev.name))
			}
		}
		if s.short == s.name {
			s.short = ""
		}
		a.subs = append(a.subs, s)
	}
	return a
}

// Subcommands returns the registered subcommands in registration order.
func (a *App) Subcommands() []Subcommand {
	return append([]Subcommand(nil), a.subs...)
}

// Lookup finds the first subcommand whose name or alias is token.
func (a *App) Lookup(token string) (Subcommand, bool) {
	for _, s := range a.subs {
		if s.matches(token) {
			return s, true
		}
	}
	return Subcommand{}, false
}
