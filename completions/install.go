package completions

import "fmt"

// SourceInstructions returns the line that loads completions for program,
// given a subcommand that prints the script.
func SourceInstructions(shell Shell, program, subcommand string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s %s %s)"`, program, subcommand, shell)
	case ShellFish:
		return fmt.Sprintf(`%s %s fish | source`, program, subcommand)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}
