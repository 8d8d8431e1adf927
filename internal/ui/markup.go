// Where: internal/ui/markup.go
// What: Inline style markup rendering.
// Why: Let messages carry {green}...{/green} spans without a templating engine.
package ui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// styles enumerates the supported markup tags. Tags outside this set are
// passed through untouched.
var styles = map[string]lipgloss.Style{
	"bold":      lipgloss.NewStyle().Bold(true),
	"underline": lipgloss.NewStyle().Underline(true),
	"grey":      lipgloss.NewStyle().Faint(true),
	"red":       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow":    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"magenta":   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"cyan":      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

// spanPattern matches a single non-nested {name}...{/name} span.
var spanPattern = regexp.MustCompile(`\{([a-z]+)\}(.*?)\{/([a-z]+)\}`)

// RenderMarkup substitutes every matched style span in the message with its
// styled rendering. Mismatched or unknown tags are left as-is.
func RenderMarkup(message string) string {
	return spanPattern.ReplaceAllStringFunc(message, func(span string) string {
		parts := spanPattern.FindStringSubmatch(span)
		open, content, closing := parts[1], parts[2], parts[3]
		if open != closing {
			return span
		}
		style, ok := styles[open]
		if !ok {
			return span
		}
		return style.Render(content)
	})
}
