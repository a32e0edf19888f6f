// Package args converts the raw positional arguments of a subcommand into the
// typed value its shape expects. Every converter is a pure function of the list
// and returns either a value or a *usage.Error, never a silent default.
package args

import (
	"errors"
	"io"
	"math/big"
	"strings"

	"github.com/footprint-tools/subcmd/usage"
)

// StdinToken is the only argument a dialog subcommand accepts. It makes the
// dialog read its answer transcript from standard input.
const StdinToken = "stdin"

// DialogInput describes where a dialog gets its answers from.
type DialogInput struct {
	// Transcript is the JSON text read from stdin. Empty in live mode.
	Transcript string
	// FromStdin is true when the transcript was read from stdin.
	FromStdin bool
}

// Empty succeeds only when no argument was given.
func Empty(raw []string) error {
	if len(raw) != 0 {
		return usage.Arity(0, raw)
	}
	return nil
}

// String returns the single argument verbatim.
func String(raw []string) (string, error) {
	if len(raw) != 1 {
		return "", usage.Arity(1, raw)
	}
	return raw[0], nil
}

// StringList returns the arguments unchanged. It never fails.
func StringList(raw []string) ([]string, error) {
	out := make([]string, len(raw))
	copy(out, raw)
	return out, nil
}

// Number parses the single argument as a signed 128-bit integer.
func Number(raw []string) (*big.Int, error) {
	if len(raw) != 1 {
		return nil, usage.Arity(1, raw)
	}
	n, err := ParseInt128(raw[0])
	if err != nil {
		return nil, usage.TypeMismatch(raw[0], err)
	}
	return n, nil
}

// NumberList parses every argument as a signed 128-bit integer. When several
// arguments are invalid the error describes the last one.
func NumberList(raw []string) ([]*big.Int, error) {
	out := make([]*big.Int, 0, len(raw))
	var failed *usage.Error
	for _, s := range raw {
		n, err := ParseInt128(s)
		if err != nil {
			failed = usage.TypeMismatch(s, err)
			continue
		}
		out = append(out, n)
	}
	if failed != nil {
		return nil, failed
	}
	return out, nil
}

// Path returns the single argument as a path. The path is not checked.
func Path(raw []string) (string, error) {
	if len(raw) != 1 {
		return "", usage.Arity(1, raw)
	}
	return raw[0], nil
}

// PathList returns every argument as a path. It never fails.
func PathList(raw []string) ([]string, error) {
	return StringList(raw)
}

// ParseBool reports the value of a case-insensitive "true" or "false" literal.
func ParseBool(s string) (value bool, ok bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	default:
		return false, false
	}
}

// Bool parses the single argument as a boolean literal.
func Bool(raw []string) (bool, error) {
	if len(raw) != 1 {
		return false, usage.Arity(1, raw)
	}
	v, ok := ParseBool(raw[0])
	if !ok {
		return false, usage.NotBool(raw[0])
	}
	return v, nil
}

// BoolList parses every argument as a boolean literal. When several arguments
// are invalid the error describes the last one.
func BoolList(raw []string) ([]bool, error) {
	out := make([]bool, 0, len(raw))
	var failed *usage.Error
	for _, s := range raw {
		v, ok := ParseBool(s)
		if !ok {
			failed = usage.NotBool(s)
			continue
		}
		out = append(out, v)
	}
	if failed != nil {
		return nil, failed
	}
	return out, nil
}

// Dialog accepts no argument (live mode) or exactly StdinToken, in which case
// stdin is read to the end and returned as the transcript.
func Dialog(raw []string, stdin io.Reader) (DialogInput, error) {
	switch {
	case len(raw) == 0:
		return DialogInput{}, nil
	case len(raw) == 1 && raw[0] == StdinToken:
		if stdin == nil {
			return DialogInput{}, usage.StdinUnavailable(errors.New("no standard input"))
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return DialogInput{}, usage.StdinUnavailable(err)
		}
		return DialogInput{Transcript: string(data), FromStdin: true}, nil
	default:
		return DialogInput{}, usage.Arity(0, raw)
	}
}
