package htmlformat

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/markhtml/pkg/aside"
	"github.com/arthur-debert/markhtml/pkg/attributes"
	"github.com/arthur-debert/markhtml/pkg/markup"
	"github.com/arthur-debert/markhtml/pkg/parser"
)

// Formatter renders one tree. It is created by Format for a single call and
// is not safe for reuse or concurrent use.
type Formatter struct {
	opts        Options
	logger      zerolog.Logger
	interpreter *attributes.Interpreter
	out         strings.Builder
	table       tableState
}

var _ markup.Visitor = (*Formatter)(nil)

func newFormatter(opts Options) *Formatter {
	logger := opts.logger()
	return &Formatter{
		opts:        opts,
		logger:      logger,
		interpreter: attributes.NewInterpreter(opts.AttributeDecoder, logger),
	}
}

// Format renders node and everything below it as HTML.
func Format(node markup.Node, opts Options) string {
	if node == nil {
		return ""
	}
	f := newFormatter(opts)
	node.Accept(f)
	return f.out.String()
}

// FormatMarkdown parses src with the goldmark-backed parser and renders the
// resulting document.
func FormatMarkdown(src []byte, opts Options, parseOpts parser.Options) (string, error) {
	doc, err := parser.Parse(src, parseOpts)
	if err != nil {
		return "", err
	}
	return Format(doc, opts), nil
}

func (f *Formatter) write(s string) {
	f.out.WriteString(s)
}

// descendInto visits every child of n in order.
func (f *Formatter) descendInto(n markup.Node) {
	for _, child := range n.Children() {
		child.Accept(f)
	}
}

func (f *Formatter) visitAll(nodes []markup.Node) {
	for _, node := range nodes {
		node.Accept(f)
	}
}

// Block elements

func (f *Formatter) VisitDocument(n *markup.Document) {
	f.descendInto(n)
}

func (f *Formatter) VisitBlockQuote(n *markup.BlockQuote) {
	if f.opts.ParseAsides {
		if a, ok := aside.Classify(n, aside.RequireSingleWordTag); ok {
			f.write(`<aside data-kind="` + a.Kind + `">` + "\n")
			f.visitAll(a.Children)
			f.write("</aside>\n")
			return
		}
	}

	f.write("<blockquote>\n")
	f.descendInto(n)
	f.write("</blockquote>\n")
}

func (f *Formatter) VisitCodeBlock(n *markup.CodeBlock) {
	f.write("<pre><code")
	if n.Language != "" {
		f.write(` class="language-` + n.Language + `"`)
	}
	f.write(">")
	f.write(n.Code)
	f.write("</code></pre>\n")
}

func (f *Formatter) VisitHeading(n *markup.Heading) {
	level := strconv.Itoa(n.Level)
	f.write("<h" + level + ">")
	f.write(markup.PlainText(n))
	f.write("</h" + level + ">\n")
}

func (f *Formatter) VisitThematicBreak(*markup.ThematicBreak) {
	f.write("<hr />\n")
}

func (f *Formatter) VisitHTMLBlock(n *markup.HTMLBlock) {
	f.write(n.RawHTML)
}

func (f *Formatter) VisitListItem(n *markup.ListItem) {
	f.write("<li>")
	if n.Checkbox != nil {
		f.write(`<input type="checkbox" disabled=""`)
		if *n.Checkbox == markup.Checked {
			f.write(` checked=""`)
		}
		f.write(" />")
	}
	f.descendInto(n)
	f.write("</li>\n")
}

func (f *Formatter) VisitOrderedList(n *markup.OrderedList) {
	if n.Start != 1 {
		f.write(`<ol start="` + strconv.Itoa(n.Start) + `">` + "\n")
	} else {
		f.write("<ol>\n")
	}
	f.descendInto(n)
	f.write("</ol>\n")
}

func (f *Formatter) VisitUnorderedList(n *markup.UnorderedList) {
	f.write("<ul>\n")
	f.descendInto(n)
	f.write("</ul>\n")
}

func (f *Formatter) VisitParagraph(n *markup.Paragraph) {
	f.write("<p>")
	f.descendInto(n)
	f.write("</p>\n")
}

// Inline elements

func (f *Formatter) VisitInlineCode(n *markup.InlineCode) {
	f.write("<code>" + n.Code + "</code>")
}

func (f *Formatter) VisitEmphasis(n *markup.Emphasis) {
	f.wrap("em", n)
}

func (f *Formatter) VisitStrong(n *markup.Strong) {
	f.wrap("strong", n)
}

func (f *Formatter) VisitStrikethrough(n *markup.Strikethrough) {
	f.wrap("del", n)
}

func (f *Formatter) VisitHighlight(n *markup.Highlight) {
	f.wrap("mark", n)
}

func (f *Formatter) wrap(tag string, n markup.Node) {
	f.write("<" + tag + ">")
	f.descendInto(n)
	f.write("</" + tag + ">")
}

func (f *Formatter) VisitImage(n *markup.Image) {
	f.write("<img")
	if n.Source != "" {
		f.write(` src="` + n.Source + `"`)
	}
	if n.Title != "" {
		f.write(` title="` + n.Title + `"`)
	}
	f.write(" />")
}

func (f *Formatter) VisitInlineHTML(n *markup.InlineHTML) {
	f.write(n.RawHTML)
}

func (f *Formatter) VisitLineBreak(*markup.LineBreak) {
	f.write("<br />\n")
}

func (f *Formatter) VisitSoftBreak(*markup.SoftBreak) {
	f.write("\n")
}

func (f *Formatter) VisitLink(n *markup.Link) {
	f.write("<a")
	if n.Destination != nil {
		f.write(` href="` + *n.Destination + `"`)
	}
	f.write(">")
	f.descendInto(n)
	f.write("</a>")
}

func (f *Formatter) VisitText(n *markup.Text) {
	f.write(n.Value)
}

func (f *Formatter) VisitSymbolLink(n *markup.SymbolLink) {
	if n.Destination == nil {
		return
	}
	f.write("<code>" + *n.Destination + "</code>")
}

func (f *Formatter) VisitInlineAttributes(n *markup.InlineAttributes) {
	f.write(`<span data-attributes="` + attributes.EscapePayload(n.Attributes) + `"`)
	if f.opts.ParseInlineAttributeClass {
		if class, ok := f.interpreter.Class(n.Attributes); ok {
			f.write(` class="` + class + `"`)
		}
	}
	f.write(">")
	f.descendInto(n)
	f.write("</span>")
}
