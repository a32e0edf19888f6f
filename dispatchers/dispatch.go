package dispatchers

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/footprint-tools/subcmd/args"
	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/internal/app"
	"github.com/footprint-tools/subcmd/internal/log"
	"github.com/footprint-tools/subcmd/internal/ui/style"
	"github.com/footprint-tools/subcmd/usage"
)

const defaultSuggestionsCount = 3

// Status is the outcome of a dispatch.
type Status int

const (
	// Handled means a subcommand or built-in ran to completion.
	Handled Status = iota
	// Failed means the invocation was rejected or the callback failed.
	Failed
)

func (s Status) String() string {
	if s == Handled {
		return "handled"
	}
	return "failed"
}

// Result is returned by Dispatch. Failures are data: Dispatch never prints
// them and never exits.
type Result struct {
	Status Status
	Err    *usage.Error
}

func handled() Result {
	return Result{Status: Handled}
}

func failed(err *usage.Error) Result {
	return Result{Status: Failed, Err: err}
}

// OK reports whether the dispatch was handled.
func (r Result) OK() bool {
	return r.Status == Handled
}

// Message is the text to show the user for a failure, or "".
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// ExitCode is 0 for handled dispatches and the error's exit code otherwise.
func (r Result) ExitCode() int {
	if r.OK() {
		return 0
	}
	if r.Err == nil {
		return 1
	}
	return r.Err.ExitCode()
}

// Dispatch runs the invocation argv, which excludes the program name.
func (a *App) Dispatch(argv []string) Result {
	if len(argv) == 0 {
		return a.runDefault()
	}

	token, rest := argv[0], argv[1:]
	switch {
	case slices.Contains(versionAliases, token):
		_, _ = a.out.Println(a.versionLine())
		return handled()
	case slices.Contains(helpAliases, token):
		return a.dispatchHelp(rest)
	}

	if sub, ok := a.Lookup(token); ok {
		return a.dispatchSubcommand(sub, rest)
	}

	log.Debug("dispatch: unknown command %q", token)
	return failed(usage.UnknownCommand(strings.Join(argv, " "), a.suggest(token)...))
}

func (a *App) runDefault() Result {
	if a.spec.Default == nil {
		a.out.Pager(a.AppHelp())
		return handled()
	}
	return a.actionResult(a.spec.Name, a.spec.Default())
}

func (a *App) dispatchHelp(rest []string) Result {
	if len(rest) == 0 {
		a.out.Pager(a.AppHelp())
		return handled()
	}

	target := rest[0]
	if sub, ok := a.Lookup(target); ok {
		a.out.Pager(a.SubcommandHelp(sub))
		return handled()
	}
	if slices.Contains(helpAliases, target) || slices.Contains(exampleFlags, target) {
		a.out.Pager(a.builtinHelp(target))
		return handled()
	}
	return failed(usage.UnknownHelpTarget(target))
}

func (a *App) dispatchSubcommand(sub Subcommand, raw []string) Result {
	if len(raw) > 0 {
		switch {
		case slices.Contains(helpFlags, raw[0]):
			a.out.Pager(a.SubcommandHelp(sub))
			return handled()
		case slices.Contains(exampleFlags, raw[0]):
			a.out.Pager(a.ExamplesTable(sub))
			return handled()
		}
	}

	log.Debug("dispatch: %s %v", sub.name, raw)
	return a.invoke(sub, raw)
}

// invoke converts raw for the subcommand's shape and calls the callback.
func (a *App) invoke(sub Subcommand, raw []string) Result {
	switch fn := sub.shape.(type) {
	case Empty:
		if err := args.Empty(raw); err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn())

	case String:
		v, err := args.String(raw)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn(v))

	case StringList:
		v, err := args.StringList(raw)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn(v))

	case Number:
		v, err := args.Number(raw)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn(v))

	case NumberList:
		v, err := args.NumberList(raw)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn(v))

	case Path:
		v, err := args.Path(raw)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn(v))

	case PathList:
		v, err := args.PathList(raw)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn(v))

	case Bool:
		v, err := args.Bool(raw)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn(v))

	case BoolList:
		v, err := args.BoolList(raw)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.actionResult(sub.name, fn(v))

	case Dialog:
		in, err := args.Dialog(raw, a.stdin)
		if err != nil {
			return a.codecFailure(sub, err)
		}
		return a.runDialog(sub, fn, in)

	default:
		panic(fmt.Sprintf("dispatchers: unknown shape %T", fn))
	}
}

func (a *App) runDialog(sub Subcommand, fn Dialog, in args.DialogInput) Result {
	opts := []dialog.Option{dialog.WithRetry(a.retry)}
	if a.fatal != nil {
		opts = append(opts, dialog.WithFatal(a.fatal))
	}

	var src *dialog.AnswerSource
	if in.FromStdin {
		src = dialog.FromJSON(in.Transcript, a.prompter, opts...)
	} else {
		src = dialog.New(a.prompter, opts...)
	}

	if err := fn(a.ctx, src); err != nil {
		return a.actionResult(sub.name, err)
	}

	a.saveTranscript(sub, in, src)
	return handled()
}

// saveTranscript records the session unless it was a pure replay.
func (a *App) saveTranscript(sub Subcommand, in args.DialogInput, src *dialog.AnswerSource) {
	if a.history == nil || len(src.Answers()) == 0 {
		return
	}
	transcript := src.ToJSON()
	if in.FromStdin && transcript == strings.TrimSpace(in.Transcript) {
		return
	}
	if _, err := a.history.Save(sub.name, transcript); err != nil {
		log.Warn("dispatch: save transcript of %s: %v", sub.name, err)
	}
}

// codecFailure appends the usage line of sub to a conversion error.
func (a *App) codecFailure(sub Subcommand, err error) Result {
	var ue *usage.Error
	if !errors.As(err, &ue) {
		ue = &usage.Error{Kind: usage.ErrUnknown, Message: err.Error(), Err: err}
	}
	return failed(ue.WithTip("用法: " + a.usageLine(sub)))
}

func (a *App) actionResult(command string, err error) Result {
	if err == nil {
		return handled()
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		return failed(ue)
	}
	log.Debug("dispatch: %s failed: %v", command, err)
	return failed(usage.ActionFailed(command, err))
}

// RunArgs dispatches argv, which includes the program name, prints a failure
// to the error output and returns the exit code.
func (a *App) RunArgs(argv []string) int {
	if len(argv) > 0 {
		argv = argv[1:]
	}
	res := a.Dispatch(argv)
	if !res.OK() {
		fmt.Fprintln(a.errOut, style.Error(res.Message()))
	}
	return res.ExitCode()
}

// Run loads the program's config, log and history, then dispatches os.Args.
// Options given to NewApp take precedence over the loaded environment.
func (a *App) Run() int {
	env, err := app.Load(a.spec.Name)
	if err != nil {
		fmt.Fprintln(a.errOut, style.Warning(err.Error()))
	}
	defer env.Close()

	if !a.outSet {
		a.out = env.Output
	}
	if a.prompter == nil {
		a.prompter = env.Prompter
	}
	if !a.retrySet {
		a.retry = env.Retry
	}
	if a.history == nil {
		a.history = env.History
	}

	return a.RunArgs(os.Args)
}
