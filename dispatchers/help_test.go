package dispatchers

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

func helpApp() *App {
	app := NewApp(AppSpec{Name: "burger", Version: "0.3.0", About: "汉堡点餐工具"})
	app.Register(
		NewSubcommand("build").Short("b").About("构建订单").Action(Path(func(string) error { return nil })),
		NewSubcommand("点餐").About("开始点餐").Action(Empty(noop)),
	)
	return app
}

func TestAppHelp(t *testing.T) {
	help := helpApp().AppHelp()

	require.True(t, strings.HasPrefix(help, "burger 0.3.0\n汉堡点餐工具\n\n"))
	for _, want := range []string{
		"用法:\n   burger [命令] [参数...]\n",
		"命令:\n",
		"内置命令:\n",
		"help, h, -h, --help",
		"version, v, -v, --version",
		"输入 'burger help <命令>' 查看命令的详细帮助。",
		"输入 'burger <命令> -e' 查看命令的示例。",
	} {
		require.Contains(t, help, want)
	}
}

func TestAppHelp_AlignsWideNames(t *testing.T) {
	help := helpApp().AppHelp()

	var build, order string
	for _, line := range strings.Split(help, "\n") {
		switch {
		case strings.HasPrefix(line, indent+"build, b"):
			build = line
		case strings.HasPrefix(line, indent+"点餐"):
			order = line
		}
	}
	require.NotEmpty(t, build)
	require.NotEmpty(t, order)

	descCol := func(line, desc string) int {
		i := strings.Index(line, desc)
		require.GreaterOrEqual(t, i, 0)
		return runewidth.StringWidth(line[:i])
	}
	require.Equal(t, descCol(build, "构建订单"), descCol(order, "开始点餐"))
}

func TestAppHelp_NoCommandsOrAbout(t *testing.T) {
	help := NewApp(AppSpec{Name: "bare"}).AppHelp()
	require.True(t, strings.HasPrefix(help, "bare\n\n"))
	require.NotContains(t, help, "\n命令:")
	require.Contains(t, help, "内置命令:")
}

func TestSubcommandHelp_Generated(t *testing.T) {
	app := helpApp()
	sub, ok := app.Lookup("b")
	require.True(t, ok)

	help := app.SubcommandHelp(sub)
	require.True(t, strings.HasPrefix(help, "burger build - 构建订单\n\n"))
	for _, want := range []string{
		"用法:\n   burger build <路径>\n",
		"别名:\n   b\n",
		"参数:\n   接受 1 个路径参数\n",
		"-h, --help",
		"-e, --example",
	} {
		require.Contains(t, help, want)
	}
	require.NotContains(t, help, "示例:")

	order, _ := app.Lookup("点餐")
	require.NotContains(t, app.SubcommandHelp(order), "别名:")
}

func TestSubcommandHelp_Examples(t *testing.T) {
	app := NewApp(AppSpec{Name: "burger"})
	sub := NewSubcommand("order").
		Example("burger order", "开始点餐").
		Example("burger order stdin < order.json", "回放订单").
		Action(Empty(noop))
	app.Register(sub)

	help := app.SubcommandHelp(sub)
	require.Contains(t, help, "示例:\n")
	require.Contains(t, help, "burger order stdin < order.json")
	require.Contains(t, help, "回放订单")
}

func TestSubcommandHelp_Document(t *testing.T) {
	app := NewApp(AppSpec{Name: "burger"})

	tests := []struct {
		doc  string
		want string
	}{
		{"自定义帮助", "自定义帮助\n"},
		{"第一行\n第二行\n", "第一行\n第二行\n"},
	}
	for _, tt := range tests {
		sub := NewSubcommand("order").HelpDocument(tt.doc).Action(Empty(noop))
		require.Equal(t, tt.want, app.SubcommandHelp(sub))
	}
}

func TestExamplesTable(t *testing.T) {
	app := NewApp(AppSpec{Name: "burger"})

	require.Equal(t, "该命令没有示例。\n", app.ExamplesTable(NewSubcommand("order")))

	table := app.ExamplesTable(NewSubcommand("order").
		Example("burger order", "开始点餐").
		Example("burger order stdin", "回放"))
	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], indent+"命令"))
	require.Contains(t, lines[0], "说明")
	require.Contains(t, lines[1], "开始点餐")
	require.Contains(t, lines[2], "回放")
}

func TestBuiltinHelp(t *testing.T) {
	app := NewApp(AppSpec{Name: "burger"})

	tests := []struct {
		token string
		want  string
	}{
		{"help", "help, h, -h, --help: 显示帮助信息。\n用法: burger help [命令]\n"},
		{"h", "help, h, -h, --help: 显示帮助信息。\n用法: burger h [命令]\n"},
		{"-e", "-e, --example: 显示命令的示例。\n用法: burger <命令> -e\n"},
		{"--example", "-e, --example: 显示命令的示例。\n用法: burger <命令> --example\n"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			require.Equal(t, tt.want, app.builtinHelp(tt.token))
		})
	}
}

func TestFormatUsage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"burger order", "burger order"},
		{"burger count <整数>", "burger count <整数>"},
		{"burger setup [stdin]", "burger setup [stdin]"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, formatUsage(tt.in))
	}
}

func TestUsageLine(t *testing.T) {
	app := NewApp(AppSpec{Name: "burger"})
	require.Equal(t, "burger run", app.usageLine(NewSubcommand("run").Action(Empty(noop))))
	require.Equal(t, "burger sum [整数...]", app.usageLine(NewSubcommand("sum").Action(NumberList(nil))))
	require.Equal(t, "burger 0.1", NewApp(AppSpec{Name: "burger", Version: "0.1"}).versionLine())
}
