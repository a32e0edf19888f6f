// Command burger is a small ordering tool built on the subcmd dispatcher. It
// registers one subcommand per argument shape.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/footprint-tools/subcmd/completions"
	"github.com/footprint-tools/subcmd/dispatchers"
	"github.com/footprint-tools/subcmd/history"
	"github.com/footprint-tools/subcmd/internal/paths"
)

const (
	appName    = "burger"
	appVersion = "0.3.0"
)

func main() {
	d := &demo{
		out: os.Stdout,
		openHistory: func() (*history.Store, error) {
			return history.Open(paths.HistoryDBPath(appName))
		},
	}
	os.Exit(d.newApp().Run())
}

func (d *demo) newApp(opts ...dispatchers.Option) *dispatchers.App {
	app := dispatchers.NewApp(dispatchers.AppSpec{
		Name:    appName,
		Version: appVersion,
		About:   "汉堡店点餐工具",
	}, opts...)

	app.Register(
		dispatchers.NewSubcommand("order").Short("o").
			About("点一份汉堡").
			Example("burger order", "按提示点餐").
			Example("burger order stdin < order.json", "回放保存的订单").
			Example("burger show 1a2b3c4d | burger order stdin", "重复历史订单").
			Action(dispatchers.Dialog(d.order)),

		dispatchers.NewSubcommand("menu").
			About("查看菜单").
			Action(dispatchers.Empty(d.menu)),

		dispatchers.NewSubcommand("greet").
			About("向顾客问好").
			Example("burger greet 小明", "").
			Action(dispatchers.String(d.greet)),

		dispatchers.NewSubcommand("tags").
			About("为订单添加标签").
			Action(dispatchers.StringList(d.tags)),

		dispatchers.NewSubcommand("price").Short("p").
			About("计算若干份汉堡的总价").
			Example("burger price 3", "三份汉堡的价格").
			Action(dispatchers.Number(d.price)),

		dispatchers.NewSubcommand("sum").
			About("合计若干金额").
			Action(dispatchers.NumberList(d.sum)),

		dispatchers.NewSubcommand("receipt").
			About("检查小票文件").
			Action(dispatchers.Path(d.receipt)),

		dispatchers.NewSubcommand("receipts").
			About("检查多个小票文件").
			Action(dispatchers.PathList(d.receipts)),

		dispatchers.NewSubcommand("spicy").
			About("设置是否加辣").
			Action(dispatchers.Bool(d.spicy)),

		dispatchers.NewSubcommand("survey").
			About("提交满意度调查").
			Action(dispatchers.BoolList(d.survey)),

		dispatchers.NewSubcommand("history").
			About("列出保存的订单记录").
			Example("burger history", "全部记录").
			Example("burger history order", "只看点餐记录").
			Action(dispatchers.StringList(d.listHistory)),

		dispatchers.NewSubcommand("show").
			About("输出一条订单记录").
			HelpDocument(showHelp).
			Action(dispatchers.String(d.showHistory)),

		dispatchers.NewSubcommand("forget").
			About("删除一条订单记录").
			Action(dispatchers.String(d.forgetHistory)),

		dispatchers.NewSubcommand("completion").
			About("输出 shell 补全脚本").
			HelpDocument(completionHelp()).
			Action(dispatchers.String(func(shell string) error {
				return d.completion(app, shell)
			})),
	)
	return app
}

const showHelp = `burger show <记录编号>

输出记录的 JSON 答案, 可以直接交给 burger order stdin 回放。
记录编号可以只写开头几位, 只要不产生歧义。
`

func completionHelp() string {
	var b strings.Builder
	b.WriteString("burger completion <bash|zsh|fish>\n\n输出补全脚本。在 rc 文件中加入对应的一行即可启用:\n\n")
	for _, shell := range completions.Shells {
		fmt.Fprintf(&b, "   %-28s %s\n", completions.RcFile(shell), completions.SourceInstructions(shell, appName, "completion"))
	}
	return b.String()
}

func (d *demo) completion(app *dispatchers.App, name string) error {
	shell, err := completions.ParseShell(name)
	if err != nil {
		return err
	}
	return completions.Print(d.out, shell, app)
}
