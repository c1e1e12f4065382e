// Package aside reclassifies block quotes that open with an admonition
// marker, such as "Note:", into asides.
package aside

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/markhtml/pkg/markup"
)

// TagRequirement controls which leading markers are accepted.
type TagRequirement int

const (
	// RequireSingleWordTag accepts only one word directly before the colon,
	// so prose such as "This is a compound sentence: ..." stays a quote.
	RequireSingleWordTag TagRequirement = iota
	// RequireAnyLengthTag also accepts multi-word markers like "See Also:".
	RequireAnyLengthTag
)

const delimiter = ":"

// Aside is a block quote reclassified as an admonition.
type Aside struct {
	// Kind is the lower-cased admonition name, e.g. "note".
	Kind string
	// Children is the quote's content with the marker removed.
	Children []markup.Node
}

var vocabulary = map[string]struct{}{
	"note":               {},
	"tip":                {},
	"important":          {},
	"experiment":         {},
	"warning":            {},
	"attention":          {},
	"author":             {},
	"authors":            {},
	"bug":                {},
	"complexity":         {},
	"copyright":          {},
	"date":               {},
	"invariant":          {},
	"mutatingvariant":    {},
	"nonmutatingvariant": {},
	"postcondition":      {},
	"precondition":       {},
	"remark":             {},
	"requires":           {},
	"since":              {},
	"todo":               {},
	"version":            {},
	"throws":             {},
	"seealso":            {},
}

// IsKnownKind reports whether kind names an admonition, ignoring case.
func IsKnownKind(kind string) bool {
	_, ok := vocabulary[strings.ToLower(kind)]
	return ok
}

// Classify inspects the first inline text of quote. When it opens with a
// known marker followed by a colon, the aside kind and the stripped content
// are returned. quote is never modified.
func Classify(quote *markup.BlockQuote, requirement TagRequirement) (Aside, bool) {
	if quote == nil {
		return Aside{}, false
	}
	children := quote.Children()
	if len(children) == 0 {
		return Aside{}, false
	}
	first, ok := children[0].(*markup.Paragraph)
	if !ok {
		return Aside{}, false
	}
	inlines := first.Children()
	if len(inlines) == 0 {
		return Aside{}, false
	}
	text, ok := inlines[0].(*markup.Text)
	if !ok {
		return Aside{}, false
	}

	kind, rest, ok := splitMarker(text.Value, requirement)
	if !ok {
		return Aside{}, false
	}

	remaining := stripMarker(inlines, rest)
	replaced := make([]markup.Node, 0, len(children))
	if len(remaining) > 0 {
		replaced = append(replaced, markup.NewParagraph(remaining...))
	}
	replaced = append(replaced, children[1:]...)

	return Aside{Kind: kind, Children: replaced}, true
}

// splitMarker returns the lower-cased kind and the text after the marker.
func splitMarker(value string, requirement TagRequirement) (string, string, bool) {
	idx := strings.Index(value, delimiter)
	if idx < 0 {
		return "", "", false
	}
	tag := strings.TrimLeftFunc(value[:idx], unicode.IsSpace)
	if tag == "" {
		return "", "", false
	}

	var key string
	switch requirement {
	case RequireSingleWordTag:
		if strings.IndexFunc(tag, unicode.IsSpace) >= 0 {
			return "", "", false
		}
		key = tag
	default:
		key = strings.Join(strings.Fields(tag), "")
	}

	key = strings.ToLower(key)
	if _, known := vocabulary[key]; !known {
		return "", "", false
	}

	rest := strings.TrimLeftFunc(value[idx+len(delimiter):], unicode.IsSpace)
	return key, rest, true
}

// stripMarker rebuilds the first paragraph's inlines with the marker text
// replaced by rest. An emptied text drops a directly following break too.
func stripMarker(inlines []markup.Node, rest string) []markup.Node {
	tail := inlines[1:]
	if rest != "" {
		out := make([]markup.Node, 0, len(inlines))
		out = append(out, markup.NewText(rest))
		return append(out, tail...)
	}
	if len(tail) > 0 {
		switch tail[0].(type) {
		case *markup.SoftBreak, *markup.LineBreak:
			tail = tail[1:]
		}
	}
	out := make([]markup.Node, 0, len(tail))
	return append(out, tail...)
}
