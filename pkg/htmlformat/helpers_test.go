package htmlformat_test

import (
	"strings"

	"github.com/arthur-debert/markhtml/pkg/attributes"
	m "github.com/arthur-debert/markhtml/pkg/markup"
)

func attributesUnsupported() attributes.Decoder {
	return attributes.Unsupported
}

func countOccurrences(s, substr string) int {
	return strings.Count(s, substr)
}

func indexOf(s, substr string) int {
	return strings.Index(s, substr)
}

// sampleDocument exercises every node kind at least once.
func sampleDocument() *m.Document {
	return m.NewDocument(
		m.NewHeading(1, m.NewText("Sample")),
		m.NewParagraph(
			m.NewText("Mixed "),
			m.NewEmphasis(m.NewText("em")),
			m.NewSoftBreak(),
			m.NewStrong(m.NewText("strong")),
			m.NewLineBreak(),
			m.NewInlineCode("code"),
			m.NewStrikethrough(m.NewText("del")),
			m.NewHighlight(m.NewText("mark")),
			m.NewImage("/i.png", "img"),
			m.NewInlineHTML("<kbd>k</kbd>"),
			m.NewLink("/l", m.NewText("link")),
			m.NewSymbolLink("Sym"),
			m.NewInlineAttributes(`class: "c"`, m.NewText("attr")),
		),
		m.NewBlockQuote(m.NewParagraph(m.NewText("Note: aside"))),
		m.NewCodeBlock("go", "package main\n"),
		m.NewThematicBreak(),
		m.NewHTMLBlock("<div></div>\n"),
		m.NewOrderedList(2, m.NewTaskListItem(m.Checked, m.NewParagraph(m.NewText("task")))),
		m.NewUnorderedList(m.NewListItem(m.NewParagraph(m.NewText("item")))),
		m.NewTable(
			[]m.Alignment{m.AlignLeft, m.AlignNone},
			m.NewTableHead(m.NewTableCell(m.NewText("A")), m.NewTableCell(m.NewText("B"))),
			m.NewTableBody(m.NewTableRow(m.NewTableCell(m.NewText("1")), m.NewSpanningTableCell(1, 2, m.NewText("2")))),
		),
	)
}
