package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Starties/calculators/internal/keypad"
)

// KeyReference returns the keyboard reference of both calculators as
// markdown.
func KeyReference() string {
	var b strings.Builder
	b.WriteString("# Keyboard reference\n\n")

	b.WriteString("## Scientific\n\n")
	b.WriteString("| Key | Button | Action |\n|---|---|---|\n")
	b.WriteString("| `0`-`9` | digits | insert digit |\n")
	for _, k := range sortedKeys(scientificKeys) {
		kp := scientificKeys[k]
		a, err := keypad.Lookup(kp.button, kp.shifted)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", k, escapeCell(a.Label), a.Kind)
	}

	b.WriteString("\n## Programmer\n\n")
	b.WriteString("| Key | Button | Action |\n|---|---|---|\n")
	b.WriteString("| `0`-`9`, `a`-`f` | digits | insert digit valid in the active base |\n")
	fmt.Fprintf(&b, "| `%s` / `%s` | base | cycle HEX, DEC, OCT, BIN |\n",
		globalKeys.NextBase.Help().Key, globalKeys.PrevBase.Help().Key)
	for _, k := range sortedKeys(programmerKeys) {
		a, err := keypad.Lookup(programmerKeys[k].button, false)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", k, escapeCell(a.Label), a.Kind)
	}

	b.WriteString("\n## Everywhere\n\n")
	for _, binding := range []keyBindingHelp{
		{globalKeys.Copy.Help().Key, "copy the result or register"},
		{globalKeys.Help.Help().Key, "toggle this reference"},
		{globalKeys.Back.Help().Key, globalKeys.Back.Help().Desc},
		{globalKeys.Quit.Help().Key, globalKeys.Quit.Help().Desc},
	} {
		fmt.Fprintf(&b, "- `%s` %s\n", binding.key, binding.desc)
	}
	return b.String()
}

type keyBindingHelp struct {
	key  string
	desc string
}

// RenderKeyReference renders KeyReference for a terminal of the given width
func RenderKeyReference(width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(KeyReference())
}

func sortedKeys(m map[string]keyPress) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// escapeCell keeps markdown table cells intact
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
