package markup

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// Parse converts CommonMark source into a node tree rooted at a
// KindDocument element. Adjacent text is merged into a single Text leaf so
// a marker is never split across siblings, and soft line breaks become
// spaces.
func Parse(src string) Node {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))
	c := converter{src: source}
	return Element{Kind: KindDocument, Children: c.children(doc)}
}

type converter struct {
	src []byte
}

func (c converter) children(n ast.Node) []Node {
	var out []Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.convert(child)...)
	}
	return mergeText(out)
}

func (c converter) convert(n ast.Node) []Node {
	switch v := n.(type) {
	case *ast.Text:
		value := string(v.Segment.Value(c.src))
		switch {
		case v.HardLineBreak():
			return []Node{Text{Value: value}, Element{Kind: KindLineBreak}}
		case v.SoftLineBreak():
			return []Node{Text{Value: value + " "}}
		default:
			return []Node{Text{Value: value}}
		}
	case *ast.String:
		return []Node{Text{Value: string(v.Value)}}
	case *ast.Paragraph:
		return []Node{c.element(KindParagraph, nil, v)}
	case *ast.TextBlock:
		return []Node{c.element(KindTextBlock, nil, v)}
	case *ast.Heading:
		return []Node{c.element(KindHeading, map[string]string{AttrLevel: strconv.Itoa(v.Level)}, v)}
	case *ast.Emphasis:
		kind := KindEmphasis
		if v.Level >= 2 {
			kind = KindStrong
		}
		return []Node{c.element(kind, nil, v)}
	case *ast.CodeSpan:
		return []Node{c.element(KindCode, nil, v)}
	case *ast.FencedCodeBlock:
		attrs := map[string]string{}
		if lang := v.Language(c.src); len(lang) > 0 {
			attrs[AttrLanguage] = string(lang)
		}
		return []Node{Element{Kind: KindCodeBlock, Attrs: attrs, Children: c.lines(v)}}
	case *ast.CodeBlock:
		return []Node{Element{Kind: KindCodeBlock, Children: c.lines(v)}}
	case *ast.HTMLBlock:
		// Raw HTML is shown as written.
		return []Node{Element{Kind: KindCodeBlock, Children: c.htmlLines(v)}}
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < v.Segments.Len(); i++ {
			seg := v.Segments.At(i)
			b.Write(seg.Value(c.src))
		}
		return []Node{Text{Value: b.String()}}
	case *ast.Blockquote:
		return []Node{c.element(KindBlockquote, nil, v)}
	case *ast.List:
		attrs := map[string]string{}
		if v.IsOrdered() {
			attrs[AttrOrdered] = "true"
			attrs[AttrStart] = strconv.Itoa(v.Start)
		}
		return []Node{c.element(KindList, attrs, v)}
	case *ast.ListItem:
		return []Node{c.element(KindListItem, nil, v)}
	case *ast.Link:
		return []Node{c.element(KindLink, map[string]string{AttrHref: string(v.Destination)}, v)}
	case *ast.AutoLink:
		url := string(v.URL(c.src))
		return []Node{Element{
			Kind:     KindLink,
			Attrs:    map[string]string{AttrHref: url},
			Children: []Node{Text{Value: string(v.Label(c.src))}},
		}}
	case *ast.Image:
		return []Node{c.element(KindImage, map[string]string{AttrHref: string(v.Destination)}, v)}
	case *ast.ThematicBreak:
		return []Node{Element{Kind: KindThematicBreak}}
	default:
		// Unknown inline or block containers keep their content.
		return c.children(n)
	}
}

func (c converter) element(kind Kind, attrs map[string]string, n ast.Node) Element {
	return Element{Kind: kind, Attrs: attrs, Children: c.children(n)}
}

func (c converter) lines(n ast.Node) []Node {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	value := strings.TrimRight(b.String(), "\n")
	if value == "" {
		return nil
	}
	return []Node{Text{Value: value}}
}

// htmlLines is lines plus the closing line goldmark keeps apart from the
// block body.
func (c converter) htmlLines(n *ast.HTMLBlock) []Node {
	children := c.lines(n)
	if !n.HasClosure() {
		return children
	}
	closure := strings.TrimRight(string(n.ClosureLine.Value(c.src)), "\n")
	if closure == "" {
		return children
	}
	if len(children) == 0 {
		return []Node{Text{Value: closure}}
	}
	prev := children[0].(Text)
	return []Node{Text{Value: prev.Value + "\n" + closure}}
}

func mergeText(nodes []Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		t, ok := n.(Text)
		if !ok {
			out = append(out, n)
			continue
		}
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(Text); ok {
				out[len(out)-1] = Text{Value: prev.Value + t.Value}
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
