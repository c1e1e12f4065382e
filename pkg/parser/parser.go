// Package parser builds markup trees from Markdown source using goldmark.
//
// The parser sits outside the rendering core: htmlformat only consumes the
// tree. GitHub Flavored Markdown tables, strikethrough, task lists and
// autolinks are supported when Options.GFM is set. Highlight, symbol link
// and attribute span nodes have no goldmark syntax and are only produced by
// building trees directly.
package parser

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/arthur-debert/markhtml/pkg/errors"
	"github.com/arthur-debert/markhtml/pkg/logging"
	"github.com/arthur-debert/markhtml/pkg/markup"
)

// Options control how source is parsed.
type Options struct {
	// GFM enables the GitHub Flavored Markdown extensions.
	GFM bool
	// EscapeText HTML-escapes text, inline code and code block contents
	// while building the tree.
	EscapeText bool
}

// DefaultOptions enables GFM and leaves text unescaped.
func DefaultOptions() Options {
	return Options{GFM: true}
}

// Parse parses src into a document tree.
func Parse(src []byte, opts Options) (*markup.Document, error) {
	logger := logging.GetLogger("parser")

	var extensions []goldmark.Extender
	if opts.GFM {
		extensions = append(extensions, extension.GFM)
	}
	md := goldmark.New(goldmark.WithExtensions(extensions...))
	root := md.Parser().Parse(text.NewReader(src))

	c := &converter{source: src, opts: opts}
	node, err := c.convert(root)
	if err != nil {
		return nil, err
	}
	doc, ok := node.(*markup.Document)
	if !ok {
		return nil, errors.Newf(errors.ErrInternal, "parser returned %T instead of a document", node)
	}

	logger.Trace().Int("bytes", len(src)).Int("blocks", len(doc.Children())).Msg("Parsed source")
	return doc, nil
}

type converter struct {
	source []byte
	opts   Options
}

// convert maps one goldmark node, and its subtree, to a markup node.
// A nil node with a nil error means the goldmark node has no counterpart.
func (c *converter) convert(n gast.Node) (markup.Node, error) {
	switch n := n.(type) {
	case *gast.Document:
		children, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewDocument(children...), nil

	case *gast.Paragraph, *gast.TextBlock:
		children, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewParagraph(children...), nil

	case *gast.Heading:
		children, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewHeading(n.Level, children...), nil

	case *gast.ThematicBreak:
		return markup.NewThematicBreak(), nil

	case *gast.CodeBlock:
		return markup.NewCodeBlock("", c.code(c.lines(n.Lines()))), nil

	case *gast.FencedCodeBlock:
		return markup.NewCodeBlock(string(n.Language(c.source)), c.code(c.lines(n.Lines()))), nil

	case *gast.HTMLBlock:
		raw := c.lines(n.Lines())
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(c.source))
		}
		return markup.NewHTMLBlock(raw), nil

	case *gast.Blockquote:
		children, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewBlockQuote(children...), nil

	case *gast.List:
		items, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		if n.IsOrdered() {
			return markup.NewOrderedList(n.Start, items...), nil
		}
		return markup.NewUnorderedList(items...), nil

	case *gast.ListItem:
		return c.convertListItem(n)

	case *gast.Text:
		value := n.Segment.Value(c.source)
		if n.SoftLineBreak() || n.HardLineBreak() {
			value = bytes.TrimRight(value, " \t\r\n")
		}
		return c.text(value, n.IsRaw()), nil

	case *gast.String:
		return c.text(n.Value, true), nil

	case *gast.CodeSpan:
		return markup.NewInlineCode(c.code(c.codeSpan(n))), nil

	case *gast.Emphasis:
		children, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		if n.Level >= 2 {
			return markup.NewStrong(children...), nil
		}
		return markup.NewEmphasis(children...), nil

	case *gast.Link:
		children, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewLink(string(n.Destination), children...), nil

	case *gast.AutoLink:
		label := c.text(n.Label(c.source), false)
		return markup.NewLink(string(n.URL(c.source)), label), nil

	case *gast.Image:
		alt, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewImage(string(n.Destination), string(n.Title), alt...), nil

	case *gast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			segment := n.Segments.At(i)
			buf.Write(segment.Value(c.source))
		}
		return markup.NewInlineHTML(buf.String()), nil

	case *east.Table:
		return c.convertTable(n)

	case *east.TableCell:
		children, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewTableCell(children...), nil

	case *east.TableRow:
		cells, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewTableRow(cells...), nil

	case *east.TableHeader:
		cells, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewTableHead(cells...), nil

	case *east.Strikethrough:
		children, err := c.convertChildren(n)
		if err != nil {
			return nil, err
		}
		return markup.NewStrikethrough(children...), nil

	case *east.TaskCheckBox:
		// Folded into the enclosing list item.
		return nil, nil

	default:
		return nil, errors.Newf(errors.ErrParse, "unsupported markdown node %s", n.Kind().String()).
			WithDetail("kind", n.Kind().String())
	}
}

// convertChildren converts the children of n in order, turning line break
// flags on text into break nodes and merging adjacent text runs.
func (c *converter) convertChildren(n gast.Node) ([]markup.Node, error) {
	var out []markup.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		node, err := c.convert(child)
		if err != nil {
			return nil, err
		}
		if node != nil {
			out = appendMerged(out, node)
		}

		if t, ok := child.(*gast.Text); ok {
			switch {
			case t.HardLineBreak():
				out = append(out, markup.NewLineBreak())
			case t.SoftLineBreak():
				out = append(out, markup.NewSoftBreak())
			}
		}
	}
	return out, nil
}

func appendMerged(out []markup.Node, node markup.Node) []markup.Node {
	next, ok := node.(*markup.Text)
	if !ok || len(out) == 0 {
		return append(out, node)
	}
	prev, ok := out[len(out)-1].(*markup.Text)
	if !ok {
		return append(out, node)
	}
	prev.Value += next.Value
	return out
}

func (c *converter) convertListItem(n *gast.ListItem) (markup.Node, error) {
	children, err := c.convertChildren(n)
	if err != nil {
		return nil, err
	}

	first := n.FirstChild()
	if first == nil {
		return markup.NewListItem(children...), nil
	}
	box, ok := first.FirstChild().(*east.TaskCheckBox)
	if !ok {
		return markup.NewListItem(children...), nil
	}

	// The space between the box and the item text belongs to neither.
	if len(children) > 0 {
		if p, ok := children[0].(*markup.Paragraph); ok && len(p.Children()) > 0 {
			if t, ok := p.Children()[0].(*markup.Text); ok {
				t.Value = strings.TrimLeftFunc(t.Value, unicode.IsSpace)
			}
		}
	}

	state := markup.Unchecked
	if box.IsChecked {
		state = markup.Checked
	}
	return markup.NewTaskListItem(state, children...), nil
}

func (c *converter) convertTable(n *east.Table) (markup.Node, error) {
	alignments := make([]markup.Alignment, len(n.Alignments))
	for i, a := range n.Alignments {
		switch a {
		case east.AlignLeft:
			alignments[i] = markup.AlignLeft
		case east.AlignCenter:
			alignments[i] = markup.AlignCenter
		case east.AlignRight:
			alignments[i] = markup.AlignRight
		default:
			alignments[i] = markup.AlignNone
		}
	}

	var head markup.Node
	var rows []markup.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		node, err := c.convert(child)
		if err != nil {
			return nil, err
		}
		switch node.(type) {
		case *markup.TableHead:
			head = node
		case *markup.TableRow:
			rows = append(rows, node)
		}
	}

	return markup.NewTable(alignments, head, markup.NewTableBody(rows...)), nil
}

// text builds a text node, resolving backslash escapes and character
// references unless raw is set.
func (c *converter) text(value []byte, raw bool) *markup.Text {
	if !raw {
		value = util.UnescapePunctuations(value)
		value = util.ResolveNumericReferences(value)
		value = util.ResolveEntityNames(value)
	}
	if c.opts.EscapeText {
		value = util.EscapeHTML(value)
	}
	return markup.NewText(string(value))
}

func (c *converter) code(value string) string {
	if c.opts.EscapeText {
		return string(util.EscapeHTML([]byte(value)))
	}
	return value
}

func (c *converter) lines(lines *text.Segments) string {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(c.source))
	}
	return buf.String()
}

// codeSpan joins the text of a code span, turning line endings into spaces.
func (c *converter) codeSpan(n *gast.CodeSpan) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		var value []byte
		switch t := child.(type) {
		case *gast.Text:
			value = t.Segment.Value(c.source)
		case *gast.String:
			value = t.Value
		default:
			continue
		}
		if bytes.HasSuffix(value, []byte("\n")) {
			buf.Write(value[:len(value)-1])
			buf.WriteByte(' ')
			continue
		}
		buf.Write(value)
	}
	return buf.String()
}
