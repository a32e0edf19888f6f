package completions

import (
	"fmt"
	"strings"
)

var (
	helpWords    = []string{"help", "h", "-h", "--help"}
	versionWords = []string{"version", "v", "-v", "--version"}
	flagWords    = []string{"-h", "--help", "-e", "--example"}
)

// funcName turns a program name into a shell identifier.
func funcName(program string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, program)
}

func topLevelWords(commands []CommandInfo) []string {
	var words []string
	for _, c := range commands {
		words = append(words, c.Names()...)
	}
	words = append(words, helpWords[:2]...)
	return append(words, versionWords[:2]...)
}

func commandWords(commands []CommandInfo) []string {
	var words []string
	for _, c := range commands {
		words = append(words, c.Names()...)
	}
	return words
}

// GenerateBash renders a bash script using complete -F.
func GenerateBash(program string, commands []CommandInfo) string {
	fn := "_" + funcName(program) + "_completions"
	var b strings.Builder

	fmt.Fprintf(&b, "# %s bash completion script\n\n", program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(topLevelWords(commands), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    local flags=\"\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 2 ]]; then\n")
	fmt.Fprintf(&b, "        flags=%q\n", strings.Join(flagWords, " "))
	b.WriteString("    fi\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	fmt.Fprintf(&b, "        %s)\n", strings.Join(helpWords, "|"))
	fmt.Fprintf(&b, "            [[ ${COMP_CWORD} -eq 2 ]] && COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(commandWords(commands), " "))
	b.WriteString("            ;;\n")

	for _, c := range commands {
		switch {
		case c.takesPaths():
			fmt.Fprintf(&b, "        %s)\n", strings.Join(c.Names(), "|"))
			b.WriteString("            COMPREPLY=( $(compgen -f -- \"$cur\") $(compgen -W \"$flags\" -- \"$cur\") )\n")
			b.WriteString("            ;;\n")
		case len(c.values()) > 0:
			fmt.Fprintf(&b, "        %s)\n", strings.Join(c.Names(), "|"))
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s $flags\" -- \"$cur\") )\n", strings.Join(c.values(), " "))
			b.WriteString("            ;;\n")
		}
	}

	b.WriteString("        *)\n")
	b.WriteString("            COMPREPLY=( $(compgen -W \"$flags\" -- \"$cur\") )\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, program)
	return b.String()
}

// zshQuote quotes s for a single-quoted _describe entry, where ':' separates
// the word from its description.
func zshQuote(word, desc string) string {
	word = strings.ReplaceAll(word, ":", `\:`)
	entry := word
	if desc != "" {
		entry += ":" + desc
	}
	return "'" + strings.ReplaceAll(entry, "'", `'\''`) + "'"
}

// GenerateZsh renders a #compdef script using _describe.
func GenerateZsh(program string, commands []CommandInfo) string {
	fn := "_" + funcName(program)
	var b strings.Builder

	fmt.Fprintf(&b, "#compdef %s\n\n", program)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		for _, name := range c.Names() {
			fmt.Fprintf(&b, "        %s\n", zshQuote(name, c.Summary))
		}
	}
	fmt.Fprintf(&b, "        %s\n", zshQuote("help", "显示帮助信息"))
	fmt.Fprintf(&b, "        %s\n", zshQuote("version", "显示版本信息"))
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	fmt.Fprintf(&b, "        %s_commands\n", fn)
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	fmt.Fprintf(&b, "        %s)\n", strings.Join(helpWords, "|"))
	fmt.Fprintf(&b, "            (( CURRENT == 3 )) && %s_commands\n", fn)
	b.WriteString("            ;;\n")
	for _, c := range commands {
		switch {
		case c.takesPaths():
			fmt.Fprintf(&b, "        %s)\n", strings.Join(c.Names(), "|"))
			b.WriteString("            _files\n")
			b.WriteString("            ;;\n")
		case len(c.values()) > 0:
			fmt.Fprintf(&b, "        %s)\n", strings.Join(c.Names(), "|"))
			fmt.Fprintf(&b, "            _values 'value' %s\n", strings.Join(c.values(), " "))
			b.WriteString("            ;;\n")
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "%s \"$@\"\n", fn)
	return b.String()
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// GenerateFish renders complete -c lines.
func GenerateFish(program string, commands []CommandInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s fish completion script\n\n", program)
	fmt.Fprintf(&b, "complete -c %s -f\n", program)

	for _, c := range commands {
		for _, name := range c.Names() {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s", program, fishQuote(name))
			if c.Summary != "" {
				fmt.Fprintf(&b, " -d %s", fishQuote(c.Summary))
			}
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a 'help' -d %s\n", program, fishQuote("显示帮助信息"))
	fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a 'version' -d %s\n", program, fishQuote("显示版本信息"))

	if words := commandWords(commands); len(words) > 0 {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from help h' -a %s\n",
			program, fishQuote(strings.Join(words, " ")))
	}

	for _, c := range commands {
		seen := fmt.Sprintf("'__fish_seen_subcommand_from %s'", strings.Join(c.Names(), " "))
		switch {
		case c.takesPaths():
			fmt.Fprintf(&b, "complete -c %s -n %s -F\n", program, seen)
		case len(c.values()) > 0:
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s\n", program, seen, fishQuote(strings.Join(c.values(), " ")))
		}
	}
	return b.String()
}
