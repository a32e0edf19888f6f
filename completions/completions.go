// Package completions generates shell completion scripts for a dispatchers.App.
package completions

import (
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/subcmd/args"
	"github.com/footprint-tools/subcmd/dispatchers"
)

// Shell is a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell accepts a shell name in any case.
func ParseShell(name string) (Shell, error) {
	s := Shell(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Shells {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("不支持的 shell: %q (可选: bash, zsh, fish)", name)
}

// CommandInfo is what completion needs to know about one subcommand.
type CommandInfo struct {
	Name    string
	Short   string
	Summary string
	Kind    args.Kind
}

// Names returns the name followed by the alias, if any.
func (c CommandInfo) Names() []string {
	if c.Short == "" {
		return []string{c.Name}
	}
	return []string{c.Name, c.Short}
}

// values are the fixed argument words the command accepts.
func (c CommandInfo) values() []string {
	switch c.Kind {
	case args.KindBool, args.KindBoolList:
		return []string{"true", "false"}
	case args.KindDialog:
		return []string{args.StdinToken}
	default:
		return nil
	}
}

func (c CommandInfo) takesPaths() bool {
	return c.Kind == args.KindPath || c.Kind == args.KindPathList
}

// ExtractCommands lists the subcommands of app in registration order.
func ExtractCommands(app *dispatchers.App) []CommandInfo {
	subs := app.Subcommands()
	commands := make([]CommandInfo, len(subs))
	for i, s := range subs {
		commands[i] = CommandInfo{
			Name:    s.Name(),
			Short:   s.ShortName(),
			Summary: s.Description(),
			Kind:    s.Kind(),
		}
	}
	return commands
}

// Print writes the completion script of app for shell to w.
func Print(w io.Writer, shell Shell, app *dispatchers.App) error {
	script, err := Generate(shell, app.Spec().Name, ExtractCommands(app))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

// Generate renders the script for program.
func Generate(shell Shell, program string, commands []CommandInfo) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(program, commands), nil
	case ShellZsh:
		return GenerateZsh(program, commands), nil
	case ShellFish:
		return GenerateFish(program, commands), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}
