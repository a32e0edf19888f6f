package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var helpers = map[string]func(string) string{
	"Success": Success,
	"Warning": Warning,
	"Error":   Error,
	"Info":    Info,
	"Header":  Header,
	"Muted":   Muted,
}

// resetStyle leaves styling disabled after the test, which is what the rest
// of the module's tests expect.
func resetStyle(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Cleanup(func() { Init(false) })
}

func TestHelpers_Disabled(t *testing.T) {
	resetStyle(t)
	Init(false)

	require.False(t, Enabled())
	for name, fn := range helpers {
		require.Equal(t, "用法: burger order", fn("用法: burger order"), name)
		require.Empty(t, fn(""), name)
	}
}

func TestHelpers_Enabled(t *testing.T) {
	resetStyle(t)
	Init(true)

	require.True(t, Enabled())
	for name, fn := range helpers {
		out := fn("命令")
		require.Contains(t, out, "命令", name)
		require.Contains(t, out, "\x1b[", name)
	}
}

func TestNoColorWins(t *testing.T) {
	resetStyle(t)
	t.Setenv("NO_COLOR", "1")

	Init(true)
	require.False(t, Enabled())
	require.Equal(t, "ok", Success("ok"))
}

func TestInitWithPalette(t *testing.T) {
	resetStyle(t)

	InitWithPalette(true, Palette{Success: "bold", Warning: "3", Error: "1", Info: "6", Muted: "8", Header: "bold"})
	bold := Success("done")
	require.Contains(t, bold, "\x1b[1")

	InitWithPalette(true, Themes["ocean-dark"])
	coloured := Success("done")
	require.Contains(t, coloured, "79")
	require.NotEqual(t, bold, coloured)
}

func TestMakeStyle(t *testing.T) {
	resetStyle(t)
	Init(true)

	require.True(t, makeStyle("bold").GetBold())
	require.False(t, makeStyle("2").GetBold())
	require.True(t, strings.HasSuffix(makeStyle("2").Render("x"), "\x1b[0m"))
}
