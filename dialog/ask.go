package dialog

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/footprint-tools/subcmd/args"
	"github.com/mattn/go-shellwords"
)

// String asks for one line of text.
func (a *AnswerSource) String(ctx context.Context, prompt string) (string, error) {
	return ask(ctx, a, "string", acceptAny, func() (string, string, error) {
		s, err := a.prompter.Input(prompt)
		return s, s, err
	})
}

// StringList asks for several words on one line. Words are split with shell
// rules, so quoted words may contain spaces.
func (a *AnswerSource) StringList(ctx context.Context, prompt string) ([]string, error) {
	return ask(ctx, a, "string list", decodeList, func() ([]string, string, error) {
		words, err := a.inputWords(prompt)
		if err != nil {
			return nil, "", err
		}
		return words, encodeList(words), nil
	})
}

// Number asks for a signed 128-bit integer. Unparsable input is asked again.
func (a *AnswerSource) Number(ctx context.Context, prompt string) (*big.Int, error) {
	return ask(ctx, a, "number", parseNumber, func() (*big.Int, string, error) {
		s, err := a.prompter.Input(prompt)
		if err != nil {
			return nil, "", err
		}
		n, err := args.ParseInt128(strings.TrimSpace(s))
		if err != nil {
			return nil, "", fmt.Errorf("%q: %w", s, err)
		}
		return n, n.String(), nil
	})
}

// NumberList asks for several integers on one line. If any of them does not
// parse, the whole line is asked again.
func (a *AnswerSource) NumberList(ctx context.Context, prompt string) ([]*big.Int, error) {
	return ask(ctx, a, "number list", parseNumberList, func() ([]*big.Int, string, error) {
		words, err := a.inputWords(prompt)
		if err != nil {
			return nil, "", err
		}
		ns := make([]*big.Int, len(words))
		canonical := make([]string, len(words))
		for i, w := range words {
			n, err := args.ParseInt128(w)
			if err != nil {
				return nil, "", fmt.Errorf("%q: %w", w, err)
			}
			ns[i] = n
			canonical[i] = n.String()
		}
		return ns, encodeList(canonical), nil
	})
}

// Bool asks a yes/no question.
func (a *AnswerSource) Bool(ctx context.Context, prompt string) (bool, error) {
	return ask(ctx, a, "bool", args.ParseBool, func() (bool, string, error) {
		v, err := a.prompter.Confirm(prompt)
		return v, strconv.FormatBool(v), err
	})
}

// BoolList asks for several true/false literals on one line. If any of them
// does not parse, the whole line is asked again.
func (a *AnswerSource) BoolList(ctx context.Context, prompt string) ([]bool, error) {
	return ask(ctx, a, "bool list", parseBoolList, func() ([]bool, string, error) {
		words, err := a.inputWords(prompt)
		if err != nil {
			return nil, "", err
		}
		vs := make([]bool, len(words))
		canonical := make([]string, len(words))
		for i, w := range words {
			v, ok := args.ParseBool(w)
			if !ok {
				return nil, "", fmt.Errorf("%q is neither true nor false", w)
			}
			vs[i] = v
			canonical[i] = strconv.FormatBool(v)
		}
		return vs, encodeList(canonical), nil
	})
}

// Path asks for a filesystem path. The path is not checked.
func (a *AnswerSource) Path(ctx context.Context, prompt string) (string, error) {
	return ask(ctx, a, "path", acceptAny, func() (string, string, error) {
		s, err := a.prompter.Input(prompt)
		return s, s, err
	})
}

// PathList asks for several paths on one line, split with shell rules.
func (a *AnswerSource) PathList(ctx context.Context, prompt string) ([]string, error) {
	return ask(ctx, a, "path list", decodeList, func() ([]string, string, error) {
		words, err := a.inputWords(prompt)
		if err != nil {
			return nil, "", err
		}
		return words, encodeList(words), nil
	})
}

// Select asks the user to pick one of options. A replayed answer is returned
// as recorded, even if it is not one of options.
func (a *AnswerSource) Select(ctx context.Context, prompt string, options []string) (string, error) {
	return ask(ctx, a, "selection", acceptAny, func() (string, string, error) {
		if len(options) == 0 {
			return "", "", ErrNoOptions
		}
		i, err := a.prompter.Select(prompt, options)
		if err != nil {
			return "", "", err
		}
		if i < 0 || i >= len(options) {
			return "", "", fmt.Errorf("selection %d out of range [0, %d)", i, len(options))
		}
		return options[i], options[i], nil
	})
}

// SelectMultiple asks the user to pick any number of options. Replayed answers
// are returned as recorded.
func (a *AnswerSource) SelectMultiple(ctx context.Context, prompt string, options []string) ([]string, error) {
	return ask(ctx, a, "multiple selection", decodeList, func() ([]string, string, error) {
		if len(options) == 0 {
			return nil, "", ErrNoOptions
		}
		idx, err := a.prompter.MultiSelect(prompt, options)
		if err != nil {
			return nil, "", err
		}
		picked := make([]string, 0, len(idx))
		for _, i := range idx {
			if i < 0 || i >= len(options) {
				return nil, "", fmt.Errorf("selection %d out of range [0, %d)", i, len(options))
			}
			picked = append(picked, options[i])
		}
		return picked, encodeList(picked), nil
	})
}

// Editor asks for free multi-line text.
func (a *AnswerSource) Editor(ctx context.Context, prompt string) (string, error) {
	return ask(ctx, a, "text", acceptAny, func() (string, string, error) {
		s, err := a.prompter.Editor(prompt)
		return s, s, err
	})
}

func (a *AnswerSource) inputWords(prompt string) ([]string, error) {
	line, err := a.prompter.Input(prompt)
	if err != nil {
		return nil, err
	}
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", line, err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

func acceptAny(s string) (string, bool) {
	return s, true
}

func parseNumber(s string) (*big.Int, bool) {
	n, err := args.ParseInt128(s)
	return n, err == nil
}

func parseNumberList(token string) ([]*big.Int, bool) {
	items, ok := decodeList(token)
	if !ok {
		return nil, false
	}
	ns := make([]*big.Int, len(items))
	for i, s := range items {
		n, err := args.ParseInt128(s)
		if err != nil {
			return nil, false
		}
		ns[i] = n
	}
	return ns, true
}

func parseBoolList(token string) ([]bool, bool) {
	items, ok := decodeList(token)
	if !ok {
		return nil, false
	}
	vs := make([]bool, len(items))
	for i, s := range items {
		v, ok := args.ParseBool(s)
		if !ok {
			return nil, false
		}
		vs[i] = v
	}
	return vs, true
}
