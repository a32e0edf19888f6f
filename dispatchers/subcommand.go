package dispatchers

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/footprint-tools/subcmd/args"
)

var (
	helpAliases    = []string{"help", "h", "-h", "--help"}
	versionAliases = []string{"version", "v", "-v", "--version"}
	exampleFlags   = []string{"-e", "--example"}
	helpFlags      = []string{"-h", "--help"}
)

// forbiddenRunes may not appear in subcommand names.
const forbiddenRunes = `$!()[]\'`

// Example is one line of a subcommand's example table.
type Example struct {
	Command     string
	Description string
}

// Subcommand describes one named command. Builder methods return a modified
// copy, so a Subcommand can be used as a template.
type Subcommand struct {
	name     string
	short    string
	about    string
	document string
	examples []Example
	shape    Shape
}

// NewSubcommand starts a subcommand called name. Name checks happen at
// registration.
func NewSubcommand(name string) Subcommand {
	return Subcommand{name: name}
}

// Short sets an alias, usually one letter.
func (s Subcommand) Short(short string) Subcommand {
	s.short = short
	return s
}

// About sets the one-line description shown in help tables.
func (s Subcommand) About(about string) Subcommand {
	s.about = about
	return s
}

// HelpDocument replaces the generated help text.
func (s Subcommand) HelpDocument(doc string) Subcommand {
	s.document = doc
	return s
}

// Example appends a row to the example table.
func (s Subcommand) Example(command, description string) Subcommand {
	s.examples = append(append([]Example(nil), s.examples...), Example{Command: command, Description: description})
	return s
}

// Action sets the argument shape and callback.
func (s Subcommand) Action(shape Shape) Subcommand {
	s.shape = shape
	return s
}

func (s Subcommand) Name() string        { return s.name }
func (s Subcommand) ShortName() string   { return s.short }
func (s Subcommand) Description() string { return s.about }
func (s Subcommand) Document() string    { return s.document }
func (s Subcommand) Shape() Shape        { return s.shape }

// Examples returns a copy of the example table.
func (s Subcommand) Examples() []Example {
	return append([]Example(nil), s.examples...)
}

// Kind returns the shape kind, or KindEmpty when no action is set.
func (s Subcommand) Kind() args.Kind {
	if s.shape == nil {
		return args.KindEmpty
	}
	return s.shape.Kind()
}

// matches reports whether token is the name or the alias.
func (s Subcommand) matches(token string) bool {
	return token == s.name || (s.short != "" && token == s.short)
}

// ValidateName checks a subcommand name or alias: it must be non-empty, free
// of whitespace, control characters and any of $ ! ( ) [ ] \ ', and must not
// be one of the built-in help, version or example tokens.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("subcommand name is empty")
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("subcommand name %q contains whitespace or a control character", name)
		}
		if strings.ContainsRune(forbiddenRunes, r) {
			return fmt.Errorf("subcommand name %q contains %q", name, r)
		}
	}
	if slices.Contains(helpAliases, name) || slices.Contains(versionAliases, name) || slices.Contains(exampleFlags, name) {
		return fmt.Errorf("subcommand name %q is reserved", name)
	}
	return nil
}
