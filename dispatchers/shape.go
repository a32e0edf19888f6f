package dispatchers

import (
	"context"
	"math/big"

	"github.com/footprint-tools/subcmd/args"
	"github.com/footprint-tools/subcmd/dialog"
)

// Shape is the argument shape of a subcommand together with its callback.
// The set of shapes is closed: the ten function types below are the only
// implementations.
type Shape interface {
	Kind() args.Kind
	shape()
}

type (
	// Empty takes no arguments.
	Empty func() error
	// String takes exactly one argument, verbatim.
	String func(string) error
	// StringList takes any number of arguments.
	StringList func([]string) error
	// Number takes exactly one signed 128-bit integer.
	Number func(*big.Int) error
	// NumberList takes any number of signed 128-bit integers.
	NumberList func([]*big.Int) error
	// Path takes exactly one path. The path is not checked.
	Path func(string) error
	// PathList takes any number of paths.
	PathList func([]string) error
	// Bool takes exactly one of true or false, in any case.
	Bool func(bool) error
	// BoolList takes any number of true or false literals.
	BoolList func([]bool) error
	// Dialog asks its own questions. It takes no arguments for a live
	// session, or the single argument "stdin" to replay a transcript read
	// from standard input.
	Dialog func(context.Context, *dialog.AnswerSource) error
)

func (Empty) Kind() args.Kind      { return args.KindEmpty }
func (String) Kind() args.Kind     { return args.KindString }
func (StringList) Kind() args.Kind { return args.KindStringList }
func (Number) Kind() args.Kind     { return args.KindNumber }
func (NumberList) Kind() args.Kind { return args.KindNumberList }
func (Path) Kind() args.Kind       { return args.KindPath }
func (PathList) Kind() args.Kind   { return args.KindPathList }
func (Bool) Kind() args.Kind       { return args.KindBool }
func (BoolList) Kind() args.Kind   { return args.KindBoolList }
func (Dialog) Kind() args.Kind     { return args.KindDialog }

func (Empty) shape()      {}
func (String) shape()     {}
func (StringList) shape() {}
func (Number) shape()     {}
func (NumberList) shape() {}
func (Path) shape()       {}
func (PathList) shape()   {}
func (Bool) shape()       {}
func (BoolList) shape()   {}
func (Dialog) shape()     {}

// isNilShape reports whether s is missing or wraps a nil callback.
func isNilShape(s Shape) bool {
	switch fn := s.(type) {
	case nil:
		return true
	case Empty:
		return fn == nil
	case String:
		return fn == nil
	case StringList:
		return fn == nil
	case Number:
		return fn == nil
	case NumberList:
		return fn == nil
	case Path:
		return fn == nil
	case PathList:
		return fn == nil
	case Bool:
		return fn == nil
	case BoolList:
		return fn == nil
	case Dialog:
		return fn == nil
	}
	return false
}
