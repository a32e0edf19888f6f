package prompt

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/footprint-tools/subcmd/dialog"
	"github.com/stretchr/testify/require"
)

// fakeTerminal answers line prompts and secrets from queues.
func fakeTerminal(t *testing.T, lines []string, secrets []string) (*Terminal, *bytes.Buffer, *[]string) {
	t.Helper()

	out := &bytes.Buffer{}
	var prompts []string
	term := &Terminal{out: out}
	term.readLine = func(prompt string) (string, error) {
		prompts = append(prompts, prompt)
		if len(lines) == 0 {
			return "", dialog.ErrCanceled
		}
		l := lines[0]
		lines = lines[1:]
		return l, nil
	}
	term.readSecret = func() ([]byte, error) {
		if len(secrets) == 0 {
			return nil, errNotInteractive
		}
		s := secrets[0]
		secrets = secrets[1:]
		return []byte(s), nil
	}
	term.runProgram = func(tea.Model) (tea.Model, error) {
		t.Fatal("unexpected program run")
		return nil, nil
	}
	return term, out, &prompts
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"y", true, false},
		{"YES", true, false},
		{" 是 ", true, false},
		{"n", false, false},
		{"No", false, false},
		{"否", false, false},
		{"", false, true},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseYesNo(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTerminal_InputAndConfirm(t *testing.T) {
	term, _, prompts := fakeTerminal(t, []string{"汉堡", "y", "nope"}, nil)

	s, err := term.Input("吃什么?")
	require.NoError(t, err)
	require.Equal(t, "汉堡", s)

	ok, err := term.Confirm("加芝士吗?")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = term.Confirm("加芝士吗?")
	require.Error(t, err)

	require.Equal(t, []string{"吃什么? ", "加芝士吗? [y/n] ", "加芝士吗? [y/n] "}, *prompts)
}

func TestTerminal_InputCanceled(t *testing.T) {
	term, _, _ := fakeTerminal(t, nil, nil)
	_, err := term.Input("?")
	require.ErrorIs(t, err, dialog.ErrCanceled)
}

func TestTerminal_Password(t *testing.T) {
	term, out, _ := fakeTerminal(t, nil, []string{"hunter2"})

	s, err := term.Password("密码:")
	require.NoError(t, err)
	require.Equal(t, "hunter2", s)
	require.Equal(t, "密码: \n", out.String())

	_, err = term.Password("密码:")
	require.ErrorIs(t, err, errNotInteractive)
}

func TestTerminal_PasswordWithConfirmation(t *testing.T) {
	term, out, _ := fakeTerminal(t, nil, []string{"a", "b", "c", "c"})

	s, err := term.PasswordWithConfirmation("密码:", "确认:", "两次输入不一致")
	require.NoError(t, err)
	require.Equal(t, "c", s)
	require.Equal(t, 1, bytes.Count(out.Bytes(), []byte("两次输入不一致")))
}

func TestTerminal_SelectWithoutTTY(t *testing.T) {
	term, out, _ := fakeTerminal(t, []string{"2", "9"}, nil)
	options := []string{"牛肉", "鸡肉"}

	i, err := term.Select("肉饼?", options)
	require.NoError(t, err)
	require.Equal(t, 1, i)
	require.Contains(t, out.String(), "鸡肉")

	_, err = term.Select("肉饼?", options)
	require.Error(t, err)
}

func TestTerminal_MultiSelectWithoutTTY(t *testing.T) {
	term, _, _ := fakeTerminal(t, []string{"3, 1 3", "", "0"}, nil)
	options := []string{"番茄酱", "芥末", "蛋黄酱"}

	got, err := term.MultiSelect("酱料?", options)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, got)

	got, err = term.MultiSelect("酱料?", options)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = term.MultiSelect("酱料?", options)
	require.Error(t, err)
}

func TestTerminal_EditorWithoutTTY(t *testing.T) {
	term, _, _ := fakeTerminal(t, []string{"不要洋葱"}, nil)
	s, err := term.Editor("备注?")
	require.NoError(t, err)
	require.Equal(t, "不要洋葱", s)
}

func TestTerminal_SelectRunsProgram(t *testing.T) {
	term, _, _ := fakeTerminal(t, nil, nil)
	term.tty = true

	term.runProgram = func(m tea.Model) (tea.Model, error) {
		sm := m.(selectModel)
		sm.chosen = 1
		return sm, nil
	}
	i, err := term.Select("?", []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, 1, i)

	term.runProgram = func(m tea.Model) (tea.Model, error) {
		return m, nil
	}
	_, err = term.Select("?", []string{"a", "b"})
	require.ErrorIs(t, err, dialog.ErrCanceled)

	boom := errors.New("boom")
	term.runProgram = func(tea.Model) (tea.Model, error) {
		return nil, boom
	}
	_, err = term.MultiSelect("?", []string{"a"})
	require.ErrorIs(t, err, boom)
}
