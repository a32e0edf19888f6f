package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var pickerKeys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "上移")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "下移")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("空格", "选中")),
	All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "全选")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("回车", "确认")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "取消")),
}

var editorKeys = keyMap{
	Submit: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "完成")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "取消")),
}

// footer renders bindings as "key 说明 · key 说明".
func footer(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
