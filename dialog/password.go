package dialog

// Password reads a secret. Secrets are never recorded in or replayed from the
// transcript, so this always prompts. A failing prompt is fatal: the fatal
// handler runs and, if it returns, Password returns "".
func (a *AnswerSource) Password(prompt string) string {
	if a.prompter == nil {
		a.fatal(ErrNoPrompter)
		return ""
	}
	s, err := a.prompter.Password(prompt)
	if err != nil {
		a.fatal(err)
		return ""
	}
	return s
}

// PasswordWithConfirmation reads a secret twice. Like Password it is never
// recorded and a failing prompt is fatal.
func (a *AnswerSource) PasswordWithConfirmation(prompt, confirmation, mismatch string) string {
	if a.prompter == nil {
		a.fatal(ErrNoPrompter)
		return ""
	}
	s, err := a.prompter.PasswordWithConfirmation(prompt, confirmation, mismatch)
	if err != nil {
		a.fatal(err)
		return ""
	}
	return s
}
