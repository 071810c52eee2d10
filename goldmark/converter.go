package goldmark

import (
	"strconv"
	"strings"

	"github.com/fwojciec/unfold"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

const bullet = "• "

type converter struct {
	parser parser.Parser
	out    unfold.Builder
}

func newConverter() *converter {
	return &converter{parser: goldmark.DefaultParser()}
}

func (c *converter) convert(source []byte) unfold.Text {
	doc := c.parser.Parse(text.NewReader(source))
	c.walkBlocks(doc, source, "")
	return c.out.Text()
}

func (c *converter) walkBlocks(node ast.Node, source []byte, indent string) {
	for n := node.FirstChild(); n != nil; n = n.NextSibling() {
		c.block(n, source, indent)
	}
}

// newline starts a new row unless nothing has been written yet.
func (c *converter) newline() {
	if c.out.Len() > 0 {
		c.out.Append("\n", 0)
	}
}

func (c *converter) block(node ast.Node, source []byte, indent string) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		c.newline()
		c.out.Append(indent, 0)
		c.inlines(n, source, 0)

	case *ast.Heading:
		c.newline()
		c.out.Append(indent, 0)
		c.inlines(n, source, unfold.Bold)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			c.newline()
			c.out.Append(indent, 0)
			c.out.Append(strings.TrimRight(string(line.Value(source)), "\r\n"), unfold.Code)
		}

	case *ast.List:
		c.list(n, source, indent)

	case *ast.ThematicBreak:
		c.newline()
		c.out.Append(indent+"───", 0)

	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			c.newline()
			c.out.Append(indent+strings.TrimRight(string(line.Value(source)), "\r\n"), 0)
		}

	default:
		// Blockquotes and other containers: flatten their children.
		c.walkBlocks(node, source, indent)
	}
}

func (c *converter) list(node *ast.List, source []byte, indent string) {
	num := node.Start
	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		marker := bullet
		if node.IsOrdered() {
			marker = strconv.Itoa(num) + ". "
			num++
		}
		first := true
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch child := child.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				c.newline()
				if first {
					c.out.Append(indent+marker, 0)
				} else {
					c.out.Append(indent+strings.Repeat(" ", len([]rune(marker))), 0)
				}
				c.inlines(child, source, 0)
			case *ast.List:
				c.list(child, source, indent+"  ")
			default:
				c.block(child, source, indent+"  ")
			}
			first = false
		}
	}
}

// inlines writes the inline children of node with emphasis inherited from
// enclosing nodes.
func (c *converter) inlines(node ast.Node, source []byte, e unfold.Emphasis) {
	for n := node.FirstChild(); n != nil; n = n.NextSibling() {
		c.inline(n, source, e)
	}
}

func (c *converter) inline(node ast.Node, source []byte, e unfold.Emphasis) {
	switch n := node.(type) {
	case *ast.Text:
		c.out.Append(string(n.Segment.Value(source)), e)
		if n.HardLineBreak() {
			c.out.Append("\n", 0)
		} else if n.SoftLineBreak() {
			c.out.Append(" ", 0)
		}

	case *ast.String:
		c.out.Append(string(n.Value), e)

	case *ast.Emphasis:
		// Goldmark represents ***bold italic*** as nested Emphasis nodes.
		if n.Level == 1 {
			c.inlines(n, source, e|unfold.Italic)
		} else {
			c.inlines(n, source, e|unfold.Bold)
		}

	case *ast.CodeSpan:
		for t := n.FirstChild(); t != nil; t = t.NextSibling() {
			if seg, ok := t.(*ast.Text); ok {
				c.out.Append(string(seg.Segment.Value(source)), e|unfold.Code)
			}
		}

	case *ast.Link:
		c.inlines(n, source, e|unfold.Underline)

	case *ast.AutoLink:
		c.out.Append(string(n.URL(source)), e|unfold.Underline)

	case *ast.Image:
		c.inlines(n, source, e|unfold.Underline)

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			c.out.Append(string(seg.Value(source)), e)
		}

	default:
		c.inlines(node, source, e)
	}
}
