package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when no subcommand or built-in matches the invocation.
func UnknownCommand(invocation string, suggestions ...string) *Error {
	msg := fmt.Sprintf("%s: %s", ErrUnknownCommand, invocation)
	if len(suggestions) > 0 {
		msg += "\n\n你是不是想输入:\n"
		for _, s := range suggestions {
			msg += "   " + s + "\n"
		}
		msg = strings.TrimSuffix(msg, "\n")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// UnknownHelpTarget is returned by `help <name>` when name matches nothing.
func UnknownHelpTarget(name string) *Error {
	return &Error{
		Kind:    ErrUnknownHelpTarget,
		Message: fmt.Sprintf("%s: %s", ErrUnknownHelpTarget, name),
	}
}

// ActionFailed wraps an error returned by a subcommand callback.
func ActionFailed(command string, err error) *Error {
	return &Error{
		Kind:    ErrAction,
		Message: fmt.Sprintf("%s: %s: %v", ErrAction, command, err),
		Err:     err,
	}
}

// StdinUnavailable is returned when a dialog transcript cannot be read from stdin.
func StdinUnavailable(err error) *Error {
	return &Error{
		Kind:    ErrStdin,
		Message: fmt.Sprintf("%s: %v", ErrStdin, err),
		Err:     err,
	}
}
