// Package domain declares the services a dispatching App depends on, so the
// dispatcher can be tested with in-memory implementations.
package domain

import "io"

// Logger receives the diagnostic log of a run. Messages use fmt verbs.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	io.Closer
}

// OutputWriter is where help, version and example text goes.
type OutputWriter interface {
	io.Writer
	Printf(format string, args ...any) (int, error)
	Println(args ...any) (int, error)
	// Pager shows long text through the configured pager, or prints it
	// directly when paging does not apply.
	Pager(content string)
}
