// Package usage defines the errors returned to callers when an invocation cannot
// be dispatched. Messages are user facing and printed verbatim by the caller.
package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrArity
	ErrType
	ErrUnknownCommand
	ErrUnknownHelpTarget
	ErrAction
	ErrStdin
)

func (k ErrorKind) String() string {
	switch k {
	case ErrArity:
		return "参数数量错误"
	case ErrType:
		return "参数类型错误"
	case ErrUnknownCommand:
		return "未知命令"
	case ErrUnknownHelpTarget:
		return "查询的命令不存在"
	case ErrAction:
		return "命令执行失败"
	case ErrStdin:
		return "读取标准输入失败"
	default:
		return "未知错误"
	}
}

// Exit codes:
//
//	Exit 1: the command ran, or was looked up, and failed
//	  - Unknown errors
//	  - Unknown command
//	  - Unknown help target
//	  - Action failed
//	  - Standard input unavailable
//
//	Exit 2: User input errors
//	  - Wrong argument count
//	  - Wrong argument type
var exitCodes = map[ErrorKind]int{
	ErrUnknown:           1,
	ErrArity:             2,
	ErrType:              2,
	ErrUnknownCommand:    1,
	ErrUnknownHelpTarget: 1,
	ErrAction:            1,
	ErrStdin:             1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
	// Tip is the usage line of the shape that rejected the arguments, if any.
	Tip string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Tip == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Tip
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithTip returns a copy of e carrying the given usage tip.
func (e *Error) WithTip(tip string) *Error {
	c := *e
	c.Tip = tip
	return &c
}

// ExitCode returns the process exit code a caller should use for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
