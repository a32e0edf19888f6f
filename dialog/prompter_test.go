package dialog

import "testing"

// scripted answers prompts from a fixed queue. An error in the queue is returned
// by the next prompt instead of a value. Running out of replies fails the test.
type scripted struct {
	t       *testing.T
	replies []any
	calls   int
	prompts []string
}

func script(t *testing.T, replies ...any) *scripted {
	return &scripted{t: t, replies: replies}
}

func (s *scripted) next(method, prompt string) (any, error) {
	s.t.Helper()

	s.calls++
	s.prompts = append(s.prompts, prompt)
	if len(s.replies) == 0 {
		s.t.Fatalf("unexpected %s prompt %q", method, prompt)
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	if err, ok := r.(error); ok {
		return nil, err
	}
	return r, nil
}

func (s *scripted) Input(prompt string) (string, error) {
	r, err := s.next("Input", prompt)
	if err != nil {
		return "", err
	}
	return r.(string), nil
}

func (s *scripted) Confirm(prompt string) (bool, error) {
	r, err := s.next("Confirm", prompt)
	if err != nil {
		return false, err
	}
	return r.(bool), nil
}

func (s *scripted) Select(prompt string, _ []string) (int, error) {
	r, err := s.next("Select", prompt)
	if err != nil {
		return 0, err
	}
	return r.(int), nil
}

func (s *scripted) MultiSelect(prompt string, _ []string) ([]int, error) {
	r, err := s.next("MultiSelect", prompt)
	if err != nil {
		return nil, err
	}
	return r.([]int), nil
}

func (s *scripted) Editor(prompt string) (string, error) {
	r, err := s.next("Editor", prompt)
	if err != nil {
		return "", err
	}
	return r.(string), nil
}

func (s *scripted) Password(prompt string) (string, error) {
	r, err := s.next("Password", prompt)
	if err != nil {
		return "", err
	}
	return r.(string), nil
}

func (s *scripted) PasswordWithConfirmation(prompt, _, _ string) (string, error) {
	r, err := s.next("PasswordWithConfirmation", prompt)
	if err != nil {
		return "", err
	}
	return r.(string), nil
}

var _ Prompter = (*scripted)(nil)
