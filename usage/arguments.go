package usage

import (
	"fmt"
	"strconv"
	"strings"
)

// Arity is returned when a shape receives the wrong number of arguments.
func Arity(want int, got []string) *Error {
	return &Error{
		Kind:    ErrArity,
		Message: countMessage(ErrArity, want, got),
	}
}

// TypeMismatch is returned when a number argument cannot be parsed.
func TypeMismatch(token string, cause error) *Error {
	return &Error{
		Kind:    ErrType,
		Message: fmt.Sprintf("%s: %v: %s", ErrType, cause, strconv.Quote(token)),
		Err:     cause,
	}
}

// NotBool is returned when a boolean argument is neither "true" nor "false".
func NotBool(token string) *Error {
	return &Error{
		Kind:    ErrType,
		Message: fmt.Sprintf("%s: 需要 \"true\" 或 \"false\", 实际接收到了 %s", ErrType, strconv.Quote(token)),
	}
}

// Repr renders a string list the way a debug print would: ["a", "b"].
func Repr(list []string) string {
	quoted := make([]string, len(list))
	for i, s := range list {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func countMessage(kind ErrorKind, want int, got []string) string {
	return fmt.Sprintf("%s: 需要 %d 个参数, 实际接收到了 %d 个参数: %s", kind, want, len(got), Repr(got))
}
