// Where: internal/ui/markup_test.go
// What: Tests for inline style markup rendering.
// Why: Ensure spans resolve and malformed markup passes through.
package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkupKeepsContent(t *testing.T) {
	rendered := RenderMarkup("Created {green}my-app{/green} successfully")
	if !strings.Contains(rendered, "my-app") {
		t.Fatalf("expected span content to survive, got %q", rendered)
	}
	if strings.Contains(rendered, "{green}") || strings.Contains(rendered, "{/green}") {
		t.Fatalf("expected tags to be consumed, got %q", rendered)
	}
}

func TestRenderMarkupUnknownTagPassesThrough(t *testing.T) {
	input := "value is {rainbow}odd{/rainbow}"
	if got := RenderMarkup(input); got != input {
		t.Fatalf("expected unknown tag to pass through, got %q", got)
	}
}

func TestRenderMarkupMismatchedTagsPassThrough(t *testing.T) {
	input := "{green}oops{/red}"
	if got := RenderMarkup(input); got != input {
		t.Fatalf("expected mismatched span to pass through, got %q", got)
	}
}

func TestRenderMarkupMultipleSpans(t *testing.T) {
	rendered := RenderMarkup("{bold}one{/bold} and {cyan}two{/cyan}")
	for _, want := range []string{"one", "two", " and "} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in %q", want, rendered)
		}
	}
}

func TestRenderMarkupPlainText(t *testing.T) {
	if got := RenderMarkup("no markup here"); got != "no markup here" {
		t.Fatalf("unexpected rewrite: %q", got)
	}
}
