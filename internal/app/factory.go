// Package app builds the services App.Run needs from the per-application
// config file and environment.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/history"
	"github.com/footprint-tools/subcmd/internal/config"
	"github.com/footprint-tools/subcmd/internal/domain"
	"github.com/footprint-tools/subcmd/internal/log"
	"github.com/footprint-tools/subcmd/internal/paths"
	"github.com/footprint-tools/subcmd/internal/ui"
	"github.com/footprint-tools/subcmd/internal/ui/style"
	"github.com/footprint-tools/subcmd/prompt"
	"golang.org/x/term"
)

// Env is the loaded environment of one run.
type Env struct {
	Config   config.Config
	Logger   domain.Logger
	Output   domain.OutputWriter
	Prompter dialog.Prompter
	Retry    dialog.RetryPolicy
	// History is nil unless enabled in the config.
	History *history.Store

	terminal *prompt.Terminal
}

// Options locates the files of an application.
type Options struct {
	ConfigPath  string
	LogPath     string
	HistoryPath string
	Getenv      func(string) string
	// StdoutIsTerminal decides colour in "auto" mode.
	StdoutIsTerminal bool
}

// DefaultOptions returns the standard locations for app.
func DefaultOptions(app string) Options {
	return Options{
		ConfigPath:       paths.ConfigFilePath(app),
		LogPath:          paths.LogFilePath(app),
		HistoryPath:      paths.HistoryDBPath(app),
		Getenv:           os.Getenv,
		StdoutIsTerminal: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Load builds the environment for app from its default locations.
func Load(app string) (*Env, error) {
	return New(app, DefaultOptions(app))
}

// New builds the environment. It always returns a usable Env: a part that
// fails to load falls back to its default and the failure is reported in the
// returned error.
func New(app string, opts Options) (*Env, error) {
	var errs []error

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		errs = append(errs, err)
	}
	if opts.Getenv != nil {
		cfg = cfg.ApplyEnv(app, opts.Getenv)
	}

	env := &Env{
		Config: cfg,
		Logger: log.NopLogger{},
		Retry:  dialog.RetryPolicy{MaxAttempts: cfg.RetryMaxAttempts},
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = opts.LogPath
	}
	rotation := log.DefaultRotation
	if cfg.LogMaxSizeMB > 0 {
		rotation.MaxSizeMB = cfg.LogMaxSizeMB
	}
	if l, err := log.NewRotating(logPath, log.ParseLevel(cfg.LogLevel), rotation); err != nil {
		errs = append(errs, fmt.Errorf("open log: %w", err))
	} else {
		log.SetDefault(l)
		env.Logger = l
	}

	palette, ok := style.Theme(cfg.ColorTheme)
	if !ok {
		log.Warn("app: unknown color theme %q, using the default", cfg.ColorTheme)
		palette = style.DefaultPalette
	}
	style.InitWithPalette(cfg.ColorEnabled(opts.StdoutIsTerminal), palette)

	var writerOpts []ui.WriterOption
	if cfg.NoPager {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if cfg.Pager != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(cfg.Pager))
	}
	if opts.Getenv != nil {
		writerOpts = append(writerOpts, ui.WithEnvGetter(opts.Getenv))
	}
	env.Output = ui.NewWriter(writerOpts...)

	env.terminal = prompt.NewTerminal()
	env.Prompter = env.terminal

	if cfg.History {
		store, err := history.Open(opts.HistoryPath)
		if err != nil {
			errs = append(errs, fmt.Errorf("open history: %w", err))
		} else {
			env.History = store
		}
	}

	log.Debug("app: loaded %s (log level %s, history %t)", app, cfg.LogLevel, env.History != nil)
	return env, errors.Join(errs...)
}

// NewForTesting returns an environment with no files, no styling and no pager.
func NewForTesting() *Env {
	return &Env{
		Config: config.Defaults(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Retry:  dialog.RetryForever,
	}
}

// Close releases the terminal, history and log.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	var errs []error
	if e.terminal != nil {
		errs = append(errs, e.terminal.Close())
	}
	if e.History != nil {
		errs = append(errs, e.History.Close())
	}
	if e.Logger != nil {
		errs = append(errs, e.Logger.Close())
	}
	return errors.Join(errs...)
}
