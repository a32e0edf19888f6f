package style

import (
	"strings"

	"github.com/muesli/termenv"
)

// ThemeNames lists the built-in themes. Each has a -dark and a -light variant.
var ThemeNames = []string{"default", "mono", "ocean"}

// Themes contains the built-in palettes. Dark variants use bright colours,
// light variants dark ones.
var Themes = map[string]Palette{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-dark": {
		Success: "255",
		Warning: "250",
		Error:   "bold",
		Info:    "252",
		Muted:   "243",
		Header:  "bold",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "bold",
		Info:    "235",
		Muted:   "246",
		Header:  "bold",
	},
	"ocean-dark": {
		Success: "79",
		Warning: "221",
		Error:   "204",
		Info:    "39",
		Muted:   "67",
		Header:  "bold",
	},
	"ocean-light": {
		Success: "29",
		Warning: "136",
		Error:   "161",
		Info:    "25",
		Muted:   "60",
		Header:  "bold",
	},
}

// IsDarkBackground queries the terminal; it returns true when detection fails.
var IsDarkBackground = termenv.HasDarkBackground

// ResolveThemeName appends -dark or -light to a base theme name according to
// the terminal background. Names that already carry a suffix are returned as-is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// Theme returns the palette for name. An empty name selects DefaultPalette and
// an unknown one reports false.
func Theme(name string) (Palette, bool) {
	if name == "" {
		return DefaultPalette, true
	}
	p, ok := Themes[ResolveThemeName(name)]
	return p, ok
}
