// Package dialog asks a sequence of typed questions whose answers come either
// from live prompts or from a recorded transcript.
//
// A transcript is a JSON array of strings, one token per answer. List answers
// are themselves JSON arrays of strings encoded into a single token, so
//
//	["true","8","[\"生菜\",\"西红柿片\"]"]
//
// answers a boolean, a number and a list. Every live answer is appended to the
// transcript, so ToJSON after an interactive session yields a transcript that
// replays it without prompting.
package dialog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/footprint-tools/subcmd/internal/log"
)

// AnswerSource is a cursor over a transcript. Not safe for concurrent use.
type AnswerSource struct {
	answers  []string
	index    int
	fromJSON bool
	prompter Prompter
	retry    RetryPolicy
	fatal    func(error)
}

// Option configures an AnswerSource.
type Option func(*AnswerSource)

// WithRetry sets the retry policy for failing prompts.
func WithRetry(p RetryPolicy) Option {
	return func(a *AnswerSource) {
		a.retry = p
	}
}

// WithFatal replaces the handler called when a password prompt fails.
// The default handler logs, prints to stderr and exits the process.
func WithFatal(fn func(error)) Option {
	return func(a *AnswerSource) {
		a.fatal = fn
	}
}

// New returns a live source: every question is prompted through p.
func New(p Prompter, opts ...Option) *AnswerSource {
	a := &AnswerSource{
		answers:  []string{},
		prompter: p,
		retry:    RetryForever,
		fatal:    exitOnFatal,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FromJSON returns a source replaying transcript. If transcript is not a JSON
// array of strings the source is live with an empty transcript instead.
func FromJSON(transcript string, p Prompter, opts ...Option) *AnswerSource {
	a := New(p, opts...)

	answers, ok := decodeList(transcript)
	if !ok {
		log.Debug("dialog: transcript is not a JSON string array, answering live: %.80q", transcript)
		return a
	}

	a.answers = answers
	a.fromJSON = true
	return a
}

// ToJSON encodes the whole transcript, replayed and recorded answers alike.
func (a *AnswerSource) ToJSON() string {
	return encodeList(a.answers)
}

// Replaying reports whether the source was built from a transcript.
func (a *AnswerSource) Replaying() bool {
	return a.fromJSON
}

// Cursor returns the index of the next answer to read or record.
func (a *AnswerSource) Cursor() int {
	return a.index
}

// Answers returns a copy of the transcript tokens.
func (a *AnswerSource) Answers() []string {
	out := make([]string, len(a.answers))
	copy(out, a.answers)
	return out
}

// record stores a live answer at the cursor. Replayed answers after the cursor
// no longer match the session and are dropped.
func (a *AnswerSource) record(token string) {
	if a.index < len(a.answers) {
		log.Debug("dialog: dropping %d replayed answers after %d", len(a.answers)-a.index, a.index)
		a.answers = a.answers[:a.index]
	}
	a.answers = append(a.answers, token)
	a.index = len(a.answers)
}

type liveAnswer[T any] struct {
	value T
	token string
}

// ask replays the answer at the cursor when it parses, and otherwise asks live.
// live returns the value and the token to record for it.
func ask[T any](ctx context.Context, a *AnswerSource, what string, parse func(string) (T, bool), live func() (T, string, error)) (T, error) {
	if a.fromJSON && a.index < len(a.answers) {
		token := a.answers[a.index]
		if v, ok := parse(token); ok {
			a.index++
			return v, nil
		}
		log.Debug("dialog: answer %d %q is not a valid %s, asking live", a.index, token, what)
	}

	got, err := retry(ctx, a, func() (liveAnswer[T], error) {
		v, token, err := live()
		return liveAnswer[T]{v, token}, err
	})
	if err != nil {
		var zero T
		return zero, err
	}

	a.record(got.token)
	return got.value, nil
}

// retry calls fn until it succeeds, the context ends, the user cancels or the
// retry policy runs out.
func retry[T any](ctx context.Context, a *AnswerSource, fn func() (T, error)) (T, error) {
	var zero T
	if a.prompter == nil {
		return zero, ErrNoPrompter
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		v, err := fn()
		if err == nil {
			return v, nil
		}
		if errors.Is(err, ErrCanceled) || errors.Is(err, ErrNoOptions) {
			return zero, err
		}

		log.Debug("dialog: prompt attempt %d failed: %v", attempt, err)
		if a.retry.MaxAttempts > 0 && attempt >= a.retry.MaxAttempts {
			return zero, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, err)
		}
	}
}

func exitOnFatal(err error) {
	log.Error("dialog: password prompt failed: %v", err)
	fmt.Fprintf(os.Stderr, "读取密码失败: %v\n", err)
	os.Exit(1)
}

// encodeList renders items as a compact JSON array without HTML escaping.
func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "[]"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// decodeList parses a JSON array of strings. null is not a list.
func decodeList(token string) ([]string, bool) {
	var items []string
	if err := json.Unmarshal([]byte(token), &items); err != nil || items == nil {
		return nil, false
	}
	return items, true
}
