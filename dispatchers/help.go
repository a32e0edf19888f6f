package dispatchers

import (
	"strings"

	"github.com/footprint-tools/subcmd/internal/ui/style"
	"github.com/mattn/go-runewidth"
)

const indent = "   "

// row is one line of a two-column table.
type row struct {
	left, right string
}

// formatUsage styles the usage line with the command in Info color and the
// argument placeholders muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// writeTable aligns the left column by display width, so CJK names line up.
func writeTable(b *strings.Builder, rows []row) {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.left))
	}
	for _, r := range rows {
		b.WriteString(indent)
		b.WriteString(style.Info(runewidth.FillRight(r.left, width)))
		if r.right != "" {
			b.WriteString("  ")
			b.WriteString(r.right)
		}
		b.WriteString("\n")
	}
}

func writeSection(b *strings.Builder, title string) {
	b.WriteString(style.Header(title))
	b.WriteString("\n")
}

func (a *App) versionLine() string {
	return strings.TrimSpace(a.spec.Name + " " + a.spec.Version)
}

// usageLine is "<app> <name> <placeholder>".
func (a *App) usageLine(sub Subcommand) string {
	return strings.TrimSpace(a.spec.Name + " " + sub.name + " " + sub.Kind().Placeholder())
}

func names(sub Subcommand) string {
	if sub.short == "" {
		return sub.name
	}
	return sub.name + ", " + sub.short
}

// AppHelp renders the program overview: title, usage, the command table and
// the built-in commands.
func (a *App) AppHelp() string {
	var b strings.Builder

	b.WriteString(style.Header(a.versionLine()))
	b.WriteString("\n")
	if a.spec.About != "" {
		b.WriteString(a.spec.About)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	writeSection(&b, "用法:")
	b.WriteString(indent)
	b.WriteString(formatUsage(a.spec.Name + " [命令] [参数...]"))
	b.WriteString("\n\n")

	if len(a.subs) > 0 {
		writeSection(&b, "命令:")
		rows := make([]row, len(a.subs))
		for i, s := range a.subs {
			rows[i] = row{names(s), s.about}
		}
		writeTable(&b, rows)
		b.WriteString("\n")
	}

	writeSection(&b, "内置命令:")
	writeTable(&b, []row{
		{strings.Join(helpAliases, ", "), "显示帮助信息"},
		{strings.Join(versionAliases, ", "), "显示版本信息"},
	})
	b.WriteString("\n")

	b.WriteString(style.Muted("输入 '" + a.spec.Name + " help <命令>' 查看命令的详细帮助。"))
	b.WriteString("\n")
	b.WriteString(style.Muted("输入 '" + a.spec.Name + " <命令> -e' 查看命令的示例。"))
	b.WriteString("\n")
	return b.String()
}

// SubcommandHelp renders the help document of sub, or generated help when it
// has none.
func (a *App) SubcommandHelp(sub Subcommand) string {
	if sub.document != "" {
		if strings.HasSuffix(sub.document, "\n") {
			return sub.document
		}
		return sub.document + "\n"
	}

	var b strings.Builder

	title := a.spec.Name + " " + sub.name
	if sub.about != "" {
		title += " - " + sub.about
	}
	b.WriteString(style.Header(title))
	b.WriteString("\n\n")

	writeSection(&b, "用法:")
	b.WriteString(indent)
	b.WriteString(formatUsage(a.usageLine(sub)))
	b.WriteString("\n\n")

	if sub.short != "" {
		writeSection(&b, "别名:")
		b.WriteString(indent + sub.short + "\n\n")
	}

	writeSection(&b, "参数:")
	b.WriteString(indent + sub.Kind().Describe() + "\n\n")

	writeSection(&b, "选项:")
	writeTable(&b, []row{
		{strings.Join(helpFlags, ", "), "显示该命令的帮助信息"},
		{strings.Join(exampleFlags, ", "), "显示该命令的示例"},
	})

	if len(sub.examples) > 0 {
		b.WriteString("\n")
		writeSection(&b, "示例:")
		writeTable(&b, exampleRows(sub.examples))
	}
	return b.String()
}

// ExamplesTable renders the examples of sub under 命令 and 说明 headers.
func (a *App) ExamplesTable(sub Subcommand) string {
	if len(sub.examples) == 0 {
		return "该命令没有示例。\n"
	}

	rows := append([]row{{"命令", "说明"}}, exampleRows(sub.examples)...)
	var b strings.Builder
	writeTable(&b, rows)
	return b.String()
}

func exampleRows(examples []Example) []row {
	rows := make([]row, len(examples))
	for i, e := range examples {
		rows[i] = row{e.Command, e.Description}
	}
	return rows
}

// builtinHelp is shown for "help help" and "help -e".
func (a *App) builtinHelp(token string) string {
	if token == "-e" || token == "--example" {
		return strings.Join(exampleFlags, ", ") + ": 显示命令的示例。\n" +
			"用法: " + a.spec.Name + " <命令> " + token + "\n"
	}
	return strings.Join(helpAliases, ", ") + ": 显示帮助信息。\n" +
		"用法: " + a.spec.Name + " " + token + " [命令]\n"
}
