// Package preview renders Markdown for the terminal with glamour.
package preview

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/markhtml/pkg/errors"
)

// Style names understood by Renderer besides a path to a glamour JSON style.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// Renderer turns Markdown into styled terminal output.
type Renderer struct {
	Style string // "auto", a glamour style name, or a path to a custom style
	Width int    // word wrap column, 0 disables wrapping
}

// NewRenderer returns a renderer with auto style detection.
func NewRenderer(style string, width int) *Renderer {
	if style == "" {
		style = StyleAuto
	}
	return &Renderer{Style: style, Width: width}
}

// ResolveStyle returns the concrete style name, replacing "auto" with dark
// or light depending on the terminal background.
func (r *Renderer) ResolveStyle() string {
	if r.Style != "" && r.Style != StyleAuto {
		return r.Style
	}
	if termenv.HasDarkBackground() {
		return StyleDark
	}
	return StyleLight
}

// Render styles markdown.
func (r *Renderer) Render(markdown string) (string, error) {
	options := []glamour.TermRendererOption{
		glamour.WithStylePath(r.ResolveStyle()),
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot build preview renderer for style %q", r.Style).
			WithDetail("style", r.Style)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render preview")
	}
	return rendered, nil
}
