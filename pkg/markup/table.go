package markup

// Alignment is the declared horizontal alignment of a table column.
type Alignment int

const (
	// AlignNone means the column declares no alignment.
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the HTML align value, or "" for AlignNone.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// Table holds a head and a body. Alignments has one entry per declared
// column; its length is the table's column count.
type Table struct {
	container
	Alignments []Alignment
}

func NewTable(alignments []Alignment, children ...Node) *Table {
	return &Table{container: newContainer(children), Alignments: alignments}
}

// TableHead holds the header cells directly, without a row.
type TableHead struct {
	container
}

func NewTableHead(cells ...Node) *TableHead {
	return &TableHead{container: newContainer(cells)}
}

// TableBody holds the body rows.
type TableBody struct {
	container
}

func NewTableBody(rows ...Node) *TableBody {
	return &TableBody{container: newContainer(rows)}
}

// TableRow holds the cells of one body row.
type TableRow struct {
	container
}

func NewTableRow(cells ...Node) *TableRow {
	return &TableRow{container: newContainer(cells)}
}

// TableCell is one head or body cell. Spans below 1 mark malformed input.
type TableCell struct {
	container
	ColSpan int
	RowSpan int
}

// NewTableCell creates a cell spanning one column and one row.
func NewTableCell(children ...Node) *TableCell {
	return NewSpanningTableCell(1, 1, children...)
}

func NewSpanningTableCell(colSpan, rowSpan int, children ...Node) *TableCell {
	return &TableCell{container: newContainer(children), ColSpan: colSpan, RowSpan: rowSpan}
}
