package dialog

import "errors"

// Prompter is the interactive toolkit live answers come from. Every method
// blocks until the user answers or the terminal fails.
type Prompter interface {
	// Input reads one line of text.
	Input(prompt string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(prompt string) (bool, error)
	// Select lets the user pick one option and returns its index.
	Select(prompt string, options []string) (int, error)
	// MultiSelect lets the user pick any number of options and returns their indexes.
	MultiSelect(prompt string, options []string) ([]int, error)
	// Editor reads free multi-line text.
	Editor(prompt string) (string, error)
	// Password reads a secret without echoing it.
	Password(prompt string) (string, error)
	// PasswordWithConfirmation reads a secret twice and insists both match,
	// showing mismatch when they do not.
	PasswordWithConfirmation(prompt, confirmation, mismatch string) (string, error)
}

var (
	// ErrCanceled is wrapped by prompters when the user aborts a prompt.
	// Canceled prompts are not retried.
	ErrCanceled = errors.New("dialog: prompt canceled")

	// ErrRetriesExhausted is returned when a prompt failed more often than
	// the RetryPolicy allows.
	ErrRetriesExhausted = errors.New("dialog: prompt retries exhausted")

	// ErrNoPrompter is returned when a live answer is needed but the source
	// was built without a Prompter.
	ErrNoPrompter = errors.New("dialog: no prompter for live answers")

	// ErrNoOptions is returned by live selections over an empty option list.
	ErrNoOptions = errors.New("dialog: nothing to select from")
)

// RetryPolicy bounds how often a failing prompt is asked again.
// A failing prompt is one whose toolkit call errored or whose answer could
// not be parsed.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries. 0 retries forever.
	MaxAttempts int
}

// RetryForever never gives up on a prompt.
var RetryForever = RetryPolicy{}
