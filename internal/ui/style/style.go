// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss styles for plain output are
// defined. All styling is semantic (Success, Warning, Error, etc.) rather than
// visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds ANSI 256 colour numbers, or "bold", for each semantic role.
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// DefaultPalette reads well on both dark and light backgrounds.
var DefaultPalette = Palette{
	Success: "2",
	Warning: "3",
	Error:   "1",
	Info:    "6",
	Muted:   "245",
	Header:  "bold",
}

var (
	enabled bool

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init enables or disables styling. NO_COLOR, when set to any non-empty value,
// disables styling regardless of enable.
//
// This function should be called once before any output.
func Init(enable bool) {
	InitWithPalette(enable, DefaultPalette)
}

// InitWithPalette is Init with explicit colours.
func InitWithPalette(enable bool, p Palette) {
	if os.Getenv("NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		initStyles(p)
	}
}

func initStyles(p Palette) {
	// Force ANSI256 regardless of TTY detection; Init already decided.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(p.Success)
	warningStyle = makeStyle(p.Warning)
	errorStyle = makeStyle(p.Error)
	infoStyle = makeStyle(p.Info)
	mutedStyle = makeStyle(p.Muted)
	headerStyle = makeStyle(p.Header)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages, such as command names.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}
