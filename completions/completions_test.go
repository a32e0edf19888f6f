package completions

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/footprint-tools/subcmd/args"
	"github.com/footprint-tools/subcmd/dialog"
	"github.com/footprint-tools/subcmd/dispatchers"
)

func noop() error { return nil }

func buildTestApp() *dispatchers.App {
	app := dispatchers.NewApp(dispatchers.AppSpec{Name: "burger", About: "Test CLI"})
	app.Register(
		dispatchers.NewSubcommand("order").Short("o").About("Place an order").
			Action(dispatchers.Dialog(func(context.Context, *dialog.AnswerSource) error { return nil })),
		dispatchers.NewSubcommand("receipt").About("Check a receipt").
			Action(dispatchers.Path(func(string) error { return nil })),
		dispatchers.NewSubcommand("spicy").About("Toggle spice").
			Action(dispatchers.Bool(func(bool) error { return nil })),
		dispatchers.NewSubcommand("menu").
			Action(dispatchers.Empty(noop)),
	)
	return app
}

func TestExtractCommands(t *testing.T) {
	commands := ExtractCommands(buildTestApp())

	if len(commands) != 4 {
		t.Fatalf("expected 4 commands, got %d", len(commands))
	}

	want := []CommandInfo{
		{Name: "order", Short: "o", Summary: "Place an order", Kind: args.KindDialog},
		{Name: "receipt", Summary: "Check a receipt", Kind: args.KindPath},
		{Name: "spicy", Summary: "Toggle spice", Kind: args.KindBool},
		{Name: "menu", Kind: args.KindEmpty},
	}
	for i, w := range want {
		if commands[i] != w {
			t.Errorf("command %d = %+v, want %+v", i, commands[i], w)
		}
	}
}

func TestCommandInfo_Names(t *testing.T) {
	if got := (CommandInfo{Name: "order", Short: "o"}).Names(); len(got) != 2 || got[1] != "o" {
		t.Errorf("Names() = %v", got)
	}
	if got := (CommandInfo{Name: "menu"}).Names(); len(got) != 1 {
		t.Errorf("Names() = %v", got)
	}
}

func TestParseShell(t *testing.T) {
	tests := []struct {
		in      string
		want    Shell
		wantErr bool
	}{
		{"bash", ShellBash, false},
		{"ZSH", ShellZsh, false},
		{" fish ", ShellFish, false},
		{"powershell", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseShell(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseShell(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseShell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerate_Unsupported(t *testing.T) {
	if _, err := Generate(Shell("tcsh"), "burger", nil); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, ShellFish, buildTestApp()); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# burger fish completion script") {
		t.Errorf("unexpected script start: %q", buf.String())
	}
}

func TestSourceInstructions(t *testing.T) {
	tests := map[Shell]string{
		ShellBash: `eval "$(burger completion bash)"`,
		ShellZsh:  `eval "$(burger completion zsh)"`,
		ShellFish: `burger completion fish | source`,
		"tcsh":    "",
	}
	for shell, want := range tests {
		if got := SourceInstructions(shell, "burger", "completion"); got != want {
			t.Errorf("SourceInstructions(%s) = %q, want %q", shell, got, want)
		}
	}
	if RcFile(ShellZsh) != "~/.zshrc" || RcFile("tcsh") != "" {
		t.Error("unexpected rc file")
	}
}

func TestFuncName(t *testing.T) {
	if got := funcName("my-tool.v2"); got != "my_tool_v2" {
		t.Errorf("funcName = %q", got)
	}
}
