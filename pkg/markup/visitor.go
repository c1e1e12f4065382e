package markup

// Visitor has one method per node kind.
type Visitor interface {
	VisitDocument(n *Document)
	VisitBlockQuote(n *BlockQuote)
	VisitCodeBlock(n *CodeBlock)
	VisitHeading(n *Heading)
	VisitThematicBreak(n *ThematicBreak)
	VisitHTMLBlock(n *HTMLBlock)
	VisitListItem(n *ListItem)
	VisitOrderedList(n *OrderedList)
	VisitUnorderedList(n *UnorderedList)
	VisitParagraph(n *Paragraph)
	VisitTable(n *Table)
	VisitTableHead(n *TableHead)
	VisitTableBody(n *TableBody)
	VisitTableRow(n *TableRow)
	VisitTableCell(n *TableCell)
	VisitInlineCode(n *InlineCode)
	VisitEmphasis(n *Emphasis)
	VisitStrong(n *Strong)
	VisitImage(n *Image)
	VisitInlineHTML(n *InlineHTML)
	VisitLineBreak(n *LineBreak)
	VisitSoftBreak(n *SoftBreak)
	VisitLink(n *Link)
	VisitText(n *Text)
	VisitStrikethrough(n *Strikethrough)
	VisitHighlight(n *Highlight)
	VisitSymbolLink(n *SymbolLink)
	VisitInlineAttributes(n *InlineAttributes)
}

func (n *Document) Accept(v Visitor)         { v.VisitDocument(n) }
func (n *BlockQuote) Accept(v Visitor)       { v.VisitBlockQuote(n) }
func (n *CodeBlock) Accept(v Visitor)        { v.VisitCodeBlock(n) }
func (n *Heading) Accept(v Visitor)          { v.VisitHeading(n) }
func (n *ThematicBreak) Accept(v Visitor)    { v.VisitThematicBreak(n) }
func (n *HTMLBlock) Accept(v Visitor)        { v.VisitHTMLBlock(n) }
func (n *ListItem) Accept(v Visitor)         { v.VisitListItem(n) }
func (n *OrderedList) Accept(v Visitor)      { v.VisitOrderedList(n) }
func (n *UnorderedList) Accept(v Visitor)    { v.VisitUnorderedList(n) }
func (n *Paragraph) Accept(v Visitor)        { v.VisitParagraph(n) }
func (n *Table) Accept(v Visitor)            { v.VisitTable(n) }
func (n *TableHead) Accept(v Visitor)        { v.VisitTableHead(n) }
func (n *TableBody) Accept(v Visitor)        { v.VisitTableBody(n) }
func (n *TableRow) Accept(v Visitor)         { v.VisitTableRow(n) }
func (n *TableCell) Accept(v Visitor)        { v.VisitTableCell(n) }
func (n *InlineCode) Accept(v Visitor)       { v.VisitInlineCode(n) }
func (n *Emphasis) Accept(v Visitor)         { v.VisitEmphasis(n) }
func (n *Strong) Accept(v Visitor)           { v.VisitStrong(n) }
func (n *Image) Accept(v Visitor)            { v.VisitImage(n) }
func (n *InlineHTML) Accept(v Visitor)       { v.VisitInlineHTML(n) }
func (n *LineBreak) Accept(v Visitor)        { v.VisitLineBreak(n) }
func (n *SoftBreak) Accept(v Visitor)        { v.VisitSoftBreak(n) }
func (n *Link) Accept(v Visitor)             { v.VisitLink(n) }
func (n *Text) Accept(v Visitor)             { v.VisitText(n) }
func (n *Strikethrough) Accept(v Visitor)    { v.VisitStrikethrough(n) }
func (n *Highlight) Accept(v Visitor)        { v.VisitHighlight(n) }
func (n *SymbolLink) Accept(v Visitor)       { v.VisitSymbolLink(n) }
func (n *InlineAttributes) Accept(v Visitor) { v.VisitInlineAttributes(n) }
