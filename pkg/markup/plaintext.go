package markup

import "strings"

// PlainText flattens node into text without markup.
func PlainText(node Node) string {
	var b strings.Builder
	writePlainText(&b, node)
	return b.String()
}

func writePlainText(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Text:
		b.WriteString(n.Value)
	case *InlineCode:
		b.WriteString("`")
		b.WriteString(n.Code)
		b.WriteString("`")
	case *SoftBreak:
		b.WriteString(" ")
	case *LineBreak:
		b.WriteString("\n")
	case *InlineHTML:
		b.WriteString(n.RawHTML)
	case *CodeBlock:
		b.WriteString(n.Code)
	case *SymbolLink:
		if n.Destination != nil {
			b.WriteString(*n.Destination)
		}
	default:
		for _, child := range node.Children() {
			writePlainText(b, child)
		}
	}
}
