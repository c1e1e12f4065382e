package markup

// InlineCode is a code span. Code is emitted as is.
type InlineCode struct {
	container
	Code string
}

func NewInlineCode(code string) *InlineCode {
	return &InlineCode{Code: code}
}

type Emphasis struct {
	container
}

func NewEmphasis(children ...Node) *Emphasis {
	return &Emphasis{container: newContainer(children)}
}

type Strong struct {
	container
}

func NewStrong(children ...Node) *Strong {
	return &Strong{container: newContainer(children)}
}

type Strikethrough struct {
	container
}

func NewStrikethrough(children ...Node) *Strikethrough {
	return &Strikethrough{container: newContainer(children)}
}

type Highlight struct {
	container
}

func NewHighlight(children ...Node) *Highlight {
	return &Highlight{container: newContainer(children)}
}

// Image references an image. Empty Source or Title means absent.
// The children hold the alternative text.
type Image struct {
	container
	Source string
	Title  string
}

func NewImage(source, title string, alt ...Node) *Image {
	return &Image{container: newContainer(alt), Source: source, Title: title}
}

// InlineHTML is inline raw HTML, emitted verbatim.
type InlineHTML struct {
	container
	RawHTML string
}

func NewInlineHTML(raw string) *InlineHTML {
	return &InlineHTML{RawHTML: raw}
}

// LineBreak is a hard line break.
type LineBreak struct {
	container
}

func NewLineBreak() *LineBreak {
	return &LineBreak{}
}

// SoftBreak is a soft line break inside a paragraph.
type SoftBreak struct {
	container
}

func NewSoftBreak() *SoftBreak {
	return &SoftBreak{}
}

// Link is a hyperlink. Destination is nil when the source gave none.
type Link struct {
	container
	Destination *string
}

func NewLink(destination string, children ...Node) *Link {
	return &Link{container: newContainer(children), Destination: &destination}
}

// NewLinkWithoutDestination creates a link that renders no href.
func NewLinkWithoutDestination(children ...Node) *Link {
	return &Link{container: newContainer(children)}
}

// Text is literal content. The value is not escaped when rendered.
type Text struct {
	container
	Value string
}

func NewText(value string) *Text {
	return &Text{Value: value}
}

// SymbolLink references a code symbol by identifier.
type SymbolLink struct {
	container
	Destination *string
}

func NewSymbolLink(destination string) *SymbolLink {
	return &SymbolLink{Destination: &destination}
}

// NewEmptySymbolLink creates a symbol link with no destination.
func NewEmptySymbolLink() *SymbolLink {
	return &SymbolLink{}
}

// InlineAttributes is a span carrying a raw attribute payload.
type InlineAttributes struct {
	container
	Attributes string
}

func NewInlineAttributes(attributes string, children ...Node) *InlineAttributes {
	return &InlineAttributes{container: newContainer(children), Attributes: attributes}
}
