package markup

// Document is the root of a tree.
type Document struct {
	container
}

// NewDocument creates a document holding the given blocks.
func NewDocument(children ...Node) *Document {
	return &Document{container: newContainer(children)}
}

// BlockQuote is a quoted block, possibly an aside once classified.
type BlockQuote struct {
	container
}

func NewBlockQuote(children ...Node) *BlockQuote {
	return &BlockQuote{container: newContainer(children)}
}

// CodeBlock is a literal code block. An empty Language means none was given.
type CodeBlock struct {
	container
	Language string
	Code     string
}

func NewCodeBlock(language, code string) *CodeBlock {
	return &CodeBlock{Language: language, Code: code}
}

// Heading is a section heading of level 1 to 6.
type Heading struct {
	container
	Level int
}

func NewHeading(level int, children ...Node) *Heading {
	return &Heading{container: newContainer(children), Level: level}
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct {
	container
}

func NewThematicBreak() *ThematicBreak {
	return &ThematicBreak{}
}

// HTMLBlock is block-level raw HTML, emitted verbatim.
type HTMLBlock struct {
	container
	RawHTML string
}

func NewHTMLBlock(raw string) *HTMLBlock {
	return &HTMLBlock{RawHTML: raw}
}

// Checkbox is the state of a task list item.
type Checkbox int

const (
	Unchecked Checkbox = iota
	Checked
)

// ListItem is one entry of an ordered or unordered list.
// Checkbox is nil for items that are not tasks.
type ListItem struct {
	container
	Checkbox *Checkbox
}

func NewListItem(children ...Node) *ListItem {
	return &ListItem{container: newContainer(children)}
}

// NewTaskListItem creates a list item carrying a checkbox.
func NewTaskListItem(state Checkbox, children ...Node) *ListItem {
	item := NewListItem(children...)
	item.Checkbox = &state
	return item
}

// OrderedList is a numbered list starting at Start.
type OrderedList struct {
	container
	Start int
}

func NewOrderedList(start int, items ...Node) *OrderedList {
	return &OrderedList{container: newContainer(items), Start: start}
}

// UnorderedList is a bulleted list.
type UnorderedList struct {
	container
}

func NewUnorderedList(items ...Node) *UnorderedList {
	return &UnorderedList{container: newContainer(items)}
}

// Paragraph is a run of inline content.
type Paragraph struct {
	container
}

func NewParagraph(children ...Node) *Paragraph {
	return &Paragraph{container: newContainer(children)}
}
