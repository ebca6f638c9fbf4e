package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docChildren(t *testing.T, n Node) []Node {
	t.Helper()
	doc, ok := n.(Element)
	require.True(t, ok)
	require.Equal(t, KindDocument, doc.Kind)
	return doc.Children
}

func TestParse_MarkerSurvivesAsText(t *testing.T) {
	children := docChildren(t, Parse("See " + Marker("c1") + " holding..."))

	require.Len(t, children, 1)
	assert.Equal(t, Element{
		Kind:     KindParagraph,
		Children: []Node{Text{Value: "See " + Marker("c1") + " holding..."}},
	}, children[0])
}

func TestParse_MarkerWithUnderscoreIsNotSplit(t *testing.T) {
	children := docChildren(t, Parse("x " + Marker("c_1_a") + " y"))

	require.Len(t, children, 1)
	para := children[0].(Element)
	assert.Equal(t, []Node{Text{Value: "x " + Marker("c_1_a") + " y"}}, para.Children)
}

func TestParse_UnresolvedPlaceholderKeepsText(t *testing.T) {
	n := Parse("see [[CITATION:9]] here")
	assert.Equal(t, "see [[CITATION:9]] here", PlainText(n, nil))
}

func TestParse_InlineFormatting(t *testing.T) {
	children := docChildren(t, Parse("A *b* **c** `d`"))

	require.Len(t, children, 1)
	para := children[0].(Element)
	assert.Equal(t, []Node{
		Text{Value: "A "},
		Element{Kind: KindEmphasis, Children: []Node{Text{Value: "b"}}},
		Text{Value: " "},
		Element{Kind: KindStrong, Children: []Node{Text{Value: "c"}}},
		Text{Value: " "},
		Element{Kind: KindCode, Children: []Node{Text{Value: "d"}}},
	}, para.Children)
}

func TestParse_SoftBreakBecomesSpace(t *testing.T) {
	children := docChildren(t, Parse("line one\nline two"))

	require.Len(t, children, 1)
	assert.Equal(t, "line one line two", PlainText(children[0], nil))
}

func TestParse_Blocks(t *testing.T) {
	src := "## Title\n\n1. first\n2. second\n\n> quoted\n\n---\n"
	children := docChildren(t, Parse(src))

	require.Len(t, children, 4)

	heading := children[0].(Element)
	assert.Equal(t, KindHeading, heading.Kind)
	assert.Equal(t, "2", heading.Attr(AttrLevel))
	assert.Equal(t, "Title", PlainText(heading, nil))

	list := children[1].(Element)
	assert.Equal(t, KindList, list.Kind)
	assert.Equal(t, "true", list.Attr(AttrOrdered))
	assert.Equal(t, "1", list.Attr(AttrStart))
	require.Len(t, list.Children, 2)
	assert.Equal(t, KindListItem, list.Children[0].(Element).Kind)
	assert.Equal(t, "second", PlainText(list.Children[1], nil))

	quote := children[2].(Element)
	assert.Equal(t, KindBlockquote, quote.Kind)
	assert.Equal(t, "quoted", PlainText(quote, nil))

	assert.Equal(t, Element{Kind: KindThematicBreak}, children[3])
}

func TestParse_Link(t *testing.T) {
	children := docChildren(t, Parse("[site](https://example.com)"))

	para := children[0].(Element)
	require.Len(t, para.Children, 1)
	link := para.Children[0].(Element)
	assert.Equal(t, KindLink, link.Kind)
	assert.Equal(t, "https://example.com", link.Attr(AttrHref))
	assert.Equal(t, "site", PlainText(link, nil))
}

func TestParse_HTMLBlockStaysLiteral(t *testing.T) {
	children := docChildren(t, Parse("<div>\n  <b>bold</b>\n</div>\n\n<!--\nnote\n-->"))

	require.Len(t, children, 2)
	div := children[0].(Element)
	assert.Equal(t, KindCodeBlock, div.Kind)
	assert.Equal(t, "<div>\n  <b>bold</b>\n</div>", PlainText(div, nil))

	comment := children[1].(Element)
	assert.Equal(t, KindCodeBlock, comment.Kind)
	assert.Equal(t, "<!--\nnote\n-->", PlainText(comment, nil))
}

func TestParse_ThenWalk(t *testing.T) {
	tree := Walk(Parse("> see **" + Marker("c1") + "** and " + Marker("nope")), knownIDs("c1"))

	assert.Equal(t, []string{"c1"}, Cites(tree))
	assert.Equal(t, "see <c1> and ", PlainText(tree, func(id string) string { return "<" + id + ">" }))
}
