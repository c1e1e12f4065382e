package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/markhtml/pkg/errors"
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Background(SurfaceColor).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

var (
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
)

// RenderError formats err for the terminal: the message on the first line,
// then the error code and any details, muted and indented.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(ErrorIndicator + " " + ErrorStyle.Render(err.Error()))

	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return b.String()
	}
	b.WriteString("\n" + Indent(MutedStyle.Render("code: "+string(code)), 1))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line := fmt.Sprintf("%s: %v", k, details[k])
		b.WriteString("\n" + Indent(MutedStyle.Render(line), 1))
	}
	return b.String()
}

// Indent pads s by two spaces per level.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
