package htmlformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/markhtml/pkg/htmlformat"
	m "github.com/arthur-debert/markhtml/pkg/markup"
)

func cell(s string) m.Node { return m.NewTableCell(text(s)) }

func TestFormat_Table(t *testing.T) {
	tests := []struct {
		name string
		opts htmlformat.Options
		node m.Node
		want string
	}{
		{
			name: "head and body with alignments",
			node: m.NewTable(
				[]m.Alignment{m.AlignLeft, m.AlignNone},
				m.NewTableHead(cell("A"), cell("B")),
				m.NewTableBody(m.NewTableRow(cell("1"), cell("2"))),
			),
			want: "<table>\n" +
				"<thead>\n<tr>\n<th align=\"left\">A</th>\n<th>B</th>\n</tr>\n</thead>\n" +
				"<tbody>\n<tr>\n<td align=\"left\">1</td>\n<td>2</td>\n</tr>\n</tbody>\n" +
				"</table>\n",
		},
		{
			name: "empty body is omitted",
			node: m.NewTable(
				[]m.Alignment{m.AlignCenter},
				m.NewTableHead(cell("A")),
				m.NewTableBody(),
			),
			want: "<table>\n<thead>\n<tr>\n<th align=\"center\">A</th>\n</tr>\n</thead>\n</table>\n",
		},
		{
			name: "cells beyond declared columns are dropped",
			node: m.NewTable(
				[]m.Alignment{m.AlignRight},
				m.NewTableBody(m.NewTableRow(cell("kept"), cell("dropped"))),
			),
			want: "<table>\n<tbody>\n<tr>\n<td align=\"right\">kept</td>\n</tr>\n</tbody>\n</table>\n",
		},
		{
			name: "zero columns drops every cell",
			node: m.NewTable(nil, m.NewTableHead(cell("A")), m.NewTableBody(m.NewTableRow(cell("1")))),
			want: "<table>\n<thead>\n<tr>\n</tr>\n</thead>\n<tbody>\n<tr>\n</tr>\n</tbody>\n</table>\n",
		},
		{
			name: "non-positive spans are dropped without advancing",
			node: m.NewTable(
				[]m.Alignment{m.AlignLeft, m.AlignRight},
				m.NewTableBody(m.NewTableRow(
					m.NewSpanningTableCell(0, 1, text("gone")),
					m.NewSpanningTableCell(1, -1, text("gone too")),
					cell("first"),
					cell("second"),
				)),
			),
			want: "<table>\n<tbody>\n<tr>\n<td align=\"left\">first</td>\n<td align=\"right\">second</td>\n</tr>\n</tbody>\n</table>\n",
		},
		{
			name: "rowspan before colspan",
			node: m.NewTable(
				[]m.Alignment{m.AlignNone, m.AlignNone, m.AlignNone},
				m.NewTableBody(m.NewTableRow(m.NewSpanningTableCell(2, 3, text("wide")))),
			),
			want: "<table>\n<tbody>\n<tr>\n<td rowspan=\"3\" colspan=\"2\">wide</td>\n</tr>\n</tbody>\n</table>\n",
		},
		{
			name: "colspan advances by one",
			node: m.NewTable(
				[]m.Alignment{m.AlignLeft, m.AlignCenter, m.AlignRight},
				m.NewTableBody(m.NewTableRow(m.NewSpanningTableCell(2, 1, text("wide")), cell("next"))),
			),
			want: "<table>\n<tbody>\n<tr>\n<td align=\"left\" colspan=\"2\">wide</td>\n<td align=\"center\">next</td>\n</tr>\n</tbody>\n</table>\n",
		},
		{
			name: "span aware columns",
			opts: htmlformat.Options{SpanAwareColumns: true},
			node: m.NewTable(
				[]m.Alignment{m.AlignLeft, m.AlignCenter, m.AlignRight},
				m.NewTableBody(m.NewTableRow(m.NewSpanningTableCell(2, 1, text("wide")), cell("next"))),
			),
			want: "<table>\n<tbody>\n<tr>\n<td align=\"left\" colspan=\"2\">wide</td>\n<td align=\"right\">next</td>\n</tr>\n</tbody>\n</table>\n",
		},
		{
			name: "each row restarts the column counter",
			node: m.NewTable(
				[]m.Alignment{m.AlignLeft, m.AlignRight},
				m.NewTableBody(
					m.NewTableRow(cell("1"), cell("2")),
					m.NewTableRow(cell("3"), cell("4")),
				),
			),
			want: "<table>\n<tbody>\n" +
				"<tr>\n<td align=\"left\">1</td>\n<td align=\"right\">2</td>\n</tr>\n" +
				"<tr>\n<td align=\"left\">3</td>\n<td align=\"right\">4</td>\n</tr>\n" +
				"</tbody>\n</table>\n",
		},
		{
			name: "nested table restores the outer column",
			node: m.NewTable(
				[]m.Alignment{m.AlignLeft, m.AlignRight},
				m.NewTableBody(m.NewTableRow(
					m.NewTableCell(m.NewTable(
						[]m.Alignment{m.AlignCenter},
						m.NewTableHead(cell("in")),
					)),
					cell("after"),
				)),
			),
			want: "<table>\n<tbody>\n<tr>\n" +
				"<td align=\"left\"><table>\n<thead>\n<tr>\n<th align=\"center\">in</th>\n</tr>\n</thead>\n</table>\n</td>\n" +
				"<td align=\"right\">after</td>\n" +
				"</tr>\n</tbody>\n</table>\n",
		},
		{
			name: "nested table in head keeps header cells",
			node: m.NewTable(
				[]m.Alignment{m.AlignNone, m.AlignNone},
				m.NewTableHead(
					m.NewTableCell(m.NewTable(
						[]m.Alignment{m.AlignNone},
						m.NewTableBody(m.NewTableRow(cell("x"))),
					)),
					cell("B"),
				),
			),
			want: "<table>\n<thead>\n<tr>\n" +
				"<th><table>\n<tbody>\n<tr>\n<td>x</td>\n</tr>\n</tbody>\n</table>\n</th>\n" +
				"<th>B</th>\n" +
				"</tr>\n</thead>\n</table>\n",
		},
		{
			name: "cell outside a table renders nothing",
			node: m.NewParagraph(text("a"), cell("lost"), text("b")),
			want: "<p>ab</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlformat.Format(tt.node, tt.opts))
		})
	}
}

func TestFormat_TableStateDoesNotLeak(t *testing.T) {
	doc := m.NewDocument(
		m.NewTable([]m.Alignment{m.AlignLeft}, m.NewTableBody(m.NewTableRow(cell("1")))),
		m.NewParagraph(cell("after")),
	)

	got := htmlformat.Format(doc, htmlformat.Options{})
	assert.Equal(t,
		"<table>\n<tbody>\n<tr>\n<td align=\"left\">1</td>\n</tr>\n</tbody>\n</table>\n<p></p>\n",
		got)
}
