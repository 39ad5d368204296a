package skills

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Render formats the document body as styled terminal markdown. A width
// of zero disables word wrapping.
func Render(doc *Document, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(doc.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render skill document: %w", err)
	}
	return out, nil
}
