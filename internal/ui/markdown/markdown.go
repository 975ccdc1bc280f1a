// Package markdown parses lesson markdown into typed content blocks
// the screens render with their own styling. An H2 titled "Hint - X"
// folds everything until the next heading into a collapsible hint.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Block is one renderable unit of lesson content.
type Block interface{ block() }

// Heading is a section title outside any hint.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of inline text with code spans kept in backticks.
type Paragraph struct {
	Text string
}

// ListItem is one flattened list entry.
type ListItem struct {
	Text string
}

// CodeBlock is a fenced or indented code block.
type CodeBlock struct {
	Language string
	Code     string
}

// Hint is a collapsible answer section. Body holds the blocks between
// the hint heading and the next heading.
type Hint struct {
	Title string
	Body  []Block
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (ListItem) block()  {}
func (CodeBlock) block() {}
func (Hint) block()      {}

const hintPrefix = "Hint - "

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse turns markdown source into content blocks.
func Parse(source string) []Block {
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	p := &parser{src: src}
	p.walk(doc)
	p.flushHint()
	return p.blocks
}

type parser struct {
	src    []byte
	blocks []Block

	inHint    bool
	hintTitle string
	hintBody  []Block
}

func (p *parser) emit(b Block) {
	if p.inHint {
		p.hintBody = append(p.hintBody, b)
		return
	}
	p.blocks = append(p.blocks, b)
}

func (p *parser) flushHint() {
	if !p.inHint {
		return
	}
	p.blocks = append(p.blocks, Hint{Title: p.hintTitle, Body: p.hintBody})
	p.inHint = false
	p.hintTitle = ""
	p.hintBody = nil
}

func (p *parser) walk(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			txt := strings.TrimSpace(inlineText(n, p.src))
			if n.Level == 2 && strings.HasPrefix(txt, hintPrefix) {
				p.flushHint()
				p.inHint = true
				p.hintTitle = strings.TrimPrefix(txt, hintPrefix)
				continue
			}
			p.flushHint()
			p.emit(Heading{Level: n.Level, Text: txt})
		case *ast.Paragraph:
			if txt := strings.TrimSpace(inlineText(n, p.src)); txt != "" {
				p.emit(Paragraph{Text: txt})
			}
		case *ast.List:
			p.walkList(n)
		case *ast.FencedCodeBlock:
			lang := ""
			if l := n.Language(p.src); l != nil {
				lang = string(l)
			}
			p.emit(CodeBlock{Language: lang, Code: blockLines(n, p.src)})
		case *ast.CodeBlock:
			p.emit(CodeBlock{Code: blockLines(n, p.src)})
		case *ast.Blockquote:
			p.walk(n)
		}
	}
}

func (p *parser) walkList(list *ast.List) {
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var parts []string
		var nested []*ast.List
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.List:
				nested = append(nested, c)
			default:
				if txt := strings.TrimSpace(inlineText(c, p.src)); txt != "" {
					parts = append(parts, txt)
				}
			}
		}
		if len(parts) > 0 {
			p.emit(ListItem{Text: strings.Join(parts, " ")})
		}
		// Nested lists flatten into trailing items.
		for _, nl := range nested {
			p.walkList(nl)
		}
	}
}

// inlineText renders a node's inline content as plain text, keeping
// code spans in backticks and turning line breaks into spaces.
func inlineText(parent ast.Node, src []byte) string {
	var sb strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.CodeSpan:
			sb.WriteByte('`')
			sb.WriteString(inlineText(n, src))
			sb.WriteByte('`')
		case *ast.AutoLink:
			sb.Write(n.URL(src))
		case *ast.Image:
			sb.WriteString(inlineText(n, src))
		default:
			sb.WriteString(inlineText(n, src))
		}
	}
	return sb.String()
}

func blockLines(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimRight(sb.String(), "\n")
}
