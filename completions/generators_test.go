package completions

import (
	"strings"
	"testing"
)

func TestGenerateBash(t *testing.T) {
	script := GenerateBash("burger", ExtractCommands(buildTestApp()))

	checks := []string{
		"_burger_completions()",
		"complete -F _burger_completions burger",
		`"order o receipt spicy menu help h version v"`,
		"help|h|-h|--help)",
		"receipt)",
		"compgen -f",
		"spicy)",
		`"true false $flags"`,
		"order|o)",
		`"stdin $flags"`,
	}
	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("bash script should contain %q", check)
		}
	}

	if !strings.HasPrefix(script, "# burger bash completion script") {
		t.Error("bash script should start with comment header")
	}
	if strings.Contains(script, "menu)") {
		t.Error("commands without argument words should use the default case")
	}
}

func TestGenerateZsh(t *testing.T) {
	script := GenerateZsh("burger", ExtractCommands(buildTestApp()))

	checks := []string{
		"#compdef burger",
		"_burger()",
		"_burger_commands()",
		"_describe",
		"'order:Place an order'",
		"'o:Place an order'",
		"'menu'",
		"_files",
		"_values 'value' true false",
		`_burger "$@"`,
	}
	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("zsh script should contain %q", check)
		}
	}
}

func TestGenerateFish(t *testing.T) {
	script := GenerateFish("burger", ExtractCommands(buildTestApp()))

	checks := []string{
		"complete -c burger -f",
		"__fish_use_subcommand",
		"-a 'order' -d 'Place an order'",
		"-a 'menu'\n",
		"'__fish_seen_subcommand_from help h' -a 'order o receipt spicy menu'",
		"'__fish_seen_subcommand_from receipt' -F",
		"'__fish_seen_subcommand_from order o' -a 'stdin'",
	}
	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("fish script should contain %q", check)
		}
	}
}

func TestGenerate_EmptyApp(t *testing.T) {
	tests := []struct {
		name string
		gen  func(string, []CommandInfo) string
		want string
	}{
		{"bash", GenerateBash, "_burger_completions()"},
		{"zsh", GenerateZsh, "#compdef burger"},
		{"fish", GenerateFish, "complete -c burger -f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if script := tt.gen("burger", nil); !strings.Contains(script, tt.want) {
				t.Errorf("%s script should contain %q even without commands", tt.name, tt.want)
			}
		})
	}
}

func TestQuoting(t *testing.T) {
	if got := zshQuote("a:b", "it's"); got != `'a\:b:it'\''s'` {
		t.Errorf("zshQuote = %s", got)
	}
	if got := fishQuote(`it's \ok`); got != `'it\'s \\ok'` {
		t.Errorf("fishQuote = %s", got)
	}
}
