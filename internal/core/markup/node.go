// Package markup turns the brief body into a tree of formatted-text nodes
// and substitutes citation markers inside that tree.
//
// The tree is a closed set of variants: Text, Element, Sequence and Cite.
// Cite only appears after Walk has replaced a marker.
package markup

// Kind identifies the formatting of an Element.
type Kind string

const (
	KindDocument      Kind = "document"
	KindParagraph     Kind = "paragraph"
	KindTextBlock     Kind = "textblock" // paragraph inside a tight list item
	KindHeading       Kind = "heading"
	KindEmphasis      Kind = "emphasis"
	KindStrong        Kind = "strong"
	KindCode          Kind = "code"
	KindCodeBlock     Kind = "codeblock"
	KindBlockquote    Kind = "blockquote"
	KindList          Kind = "list"
	KindListItem      Kind = "listitem"
	KindLink          Kind = "link"
	KindImage         Kind = "image"
	KindLineBreak     Kind = "linebreak"
	KindThematicBreak Kind = "thematicbreak"
)

// Attribute keys used on Element.Attrs.
const (
	AttrLevel    = "level"
	AttrOrdered  = "ordered"
	AttrStart    = "start"
	AttrHref     = "href"
	AttrLanguage = "language"
)

// Resolver reports whether a citation id is known to the brief.
type Resolver func(id string) bool

// Node is one of Text, Element, Sequence or Cite.
type Node interface {
	walk(resolve Resolver) Node
}

// Text is a plain-text leaf.
type Text struct {
	Value string
}

// Element is a formatting node with attributes and children.
type Element struct {
	Kind     Kind
	Attrs    map[string]string
	Children []Node
}

// Attr returns the attribute value for key, or "".
func (e Element) Attr(key string) string {
	if e.Attrs == nil {
		return ""
	}
	return e.Attrs[key]
}

// Sequence is an ordered run of sibling nodes.
type Sequence []Node

// Cite is a resolved citation marker.
type Cite struct {
	ID string
}

// PlainText flattens a node to its textual content. Cite nodes are written
// through cite, which may be nil to omit them.
func PlainText(n Node, cite func(id string) string) string {
	var out []byte
	var rec func(Node)
	rec = func(n Node) {
		switch v := n.(type) {
		case Text:
			out = append(out, v.Value...)
		case Cite:
			if cite != nil {
				out = append(out, cite(v.ID)...)
			}
		case Sequence:
			for _, c := range v {
				rec(c)
			}
		case Element:
			for _, c := range v.Children {
				rec(c)
			}
		}
	}
	rec(n)
	return string(out)
}

// Cites returns the ids of all Cite nodes in document order.
func Cites(n Node) []string {
	var ids []string
	var rec func(Node)
	rec = func(n Node) {
		switch v := n.(type) {
		case Cite:
			ids = append(ids, v.ID)
		case Sequence:
			for _, c := range v {
				rec(c)
			}
		case Element:
			for _, c := range v.Children {
				rec(c)
			}
		}
	}
	rec(n)
	return ids
}
