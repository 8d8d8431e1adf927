// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, indentation, and structure across the run.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted output.
// Debug controls whether Debugf lines are emitted.
type Console struct {
	Out   io.Writer
	Debug bool
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a section header with an emoji.
// Example: 🚀 Creating your project:
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", emoji, RenderMarkup(title))
}

// Item prints a key-value item with indentation.
// Example:    Directory: my-app
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// ItemPlain prints a generic indented line.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", RenderMarkup(msg))
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", RenderMarkup(msg))
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", RenderMarkup(msg))
}

// Warn prints a non-fatal warning message.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "⚠️  %s\n", RenderMarkup(msg))
}

// Error prints an error message.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.Out, "❌ %s\n", RenderMarkup(msg))
}

// Debugf prints a formatted line only when debug output is enabled.
func (c *Console) Debugf(format string, args ...any) {
	if !c.Debug {
		return
	}
	fmt.Fprintf(c.Out, "[debug] "+format+"\n", args...)
}
