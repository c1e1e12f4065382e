package htmlformat

import (
	"strconv"

	"github.com/arthur-debert/markhtml/pkg/markup"
)

// tableState tracks where the traversal is inside one table. A table
// replaces the whole state on entry and restores the previous one on exit,
// so a table nested in a cell leaves its parent's columns intact.
type tableState struct {
	// active is set only while inside a Table node.
	active     bool
	alignments []markup.Alignment
	inHead     bool
	column     int
}

func (s *tableState) columnCount() int {
	return len(s.alignments)
}

func (f *Formatter) VisitTable(n *markup.Table) {
	saved := f.table
	f.table = tableState{active: true, alignments: n.Alignments}

	f.write("<table>\n")
	f.descendInto(n)
	f.write("</table>\n")

	f.table = saved
}

func (f *Formatter) VisitTableHead(n *markup.TableHead) {
	f.write("<thead>\n")
	f.write("<tr>\n")

	f.table.inHead = true
	f.table.column = 0
	f.descendInto(n)
	f.table.inHead = false

	f.write("</tr>\n")
	f.write("</thead>\n")
}

func (f *Formatter) VisitTableBody(n *markup.TableBody) {
	if len(n.Children()) == 0 {
		return
	}
	f.write("<tbody>\n")
	f.descendInto(n)
	f.write("</tbody>\n")
}

func (f *Formatter) VisitTableRow(n *markup.TableRow) {
	f.write("<tr>\n")
	f.table.column = 0
	f.descendInto(n)
	f.write("</tr>\n")
}

func (f *Formatter) VisitTableCell(n *markup.TableCell) {
	if !f.table.active || f.table.column >= f.table.columnCount() {
		f.logger.Trace().
			Int("column", f.table.column).
			Int("columns", f.table.columnCount()).
			Msg("Skipping table cell outside declared columns")
		return
	}
	if n.ColSpan <= 0 || n.RowSpan <= 0 {
		f.logger.Trace().
			Int("colspan", n.ColSpan).
			Int("rowspan", n.RowSpan).
			Msg("Skipping table cell with non-positive span")
		return
	}

	tag := "td"
	if f.table.inHead {
		tag = "th"
	}

	f.write("<" + tag)
	if align := f.table.alignments[f.table.column]; align != markup.AlignNone {
		f.write(` align="` + align.String() + `"`)
	}
	if n.RowSpan > 1 {
		f.write(` rowspan="` + strconv.Itoa(n.RowSpan) + `"`)
	}
	if n.ColSpan > 1 {
		f.write(` colspan="` + strconv.Itoa(n.ColSpan) + `"`)
	}
	f.write(">")

	f.descendInto(n)

	f.write("</" + tag + ">\n")

	if f.opts.SpanAwareColumns {
		f.table.column += n.ColSpan
	} else {
		f.table.column++
	}
}
