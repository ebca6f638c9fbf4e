package brief

import (
	"fmt"
	"strconv"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/citeview/internal/core/markup"
	"github.com/colonyops/citeview/internal/core/styles"
)

// UnitRef addresses one unit of one tag occurrence in a layout.
type UnitRef struct {
	Tag  int
	Unit int
}

// NoFocus is the UnitRef used when nothing has keyboard focus.
var NoFocus = UnitRef{Tag: -1, Unit: -1}

// Region is the cell range occupied by a tag unit on one line. X1 is
// exclusive.
type Region struct {
	Line int
	X0   int
	X1   int
	Ref  UnitRef
}

// Layout is the brief wrapped to a width, with tags in document order and
// the screen regions of their units.
type Layout struct {
	Lines   []string
	Regions []Region
	Tags    []Tag
	Width   int
}

// Content joins the rendered lines.
func (l Layout) Content() string {
	return strings.Join(l.Lines, "\n")
}

// HitTest returns the unit under cell (x, line).
func (l Layout) HitTest(x, line int) (UnitRef, bool) {
	for _, r := range l.Regions {
		if r.Line == line && x >= r.X0 && x < r.X1 {
			return r.Ref, true
		}
	}
	return NoFocus, false
}

// LineOf returns the first line the unit occupies.
func (l Layout) LineOf(ref UnitRef) (int, bool) {
	for _, r := range l.Regions {
		if r.Ref == ref {
			return r.Line, true
		}
	}
	return 0, false
}

// Focusables returns the activatable units in document order.
func (l Layout) Focusables() []UnitRef {
	var refs []UnitRef
	for ti, t := range l.Tags {
		for ui := range t.Units {
			if t.UnitActivatable(ui) {
				refs = append(refs, UnitRef{Tag: ti, Unit: ui})
			}
		}
	}
	return refs
}

// TagIndex returns the first occurrence of the citation id.
func (l Layout) TagIndex(id string) (int, bool) {
	for i, t := range l.Tags {
		if t.Citation.ID == id {
			return i, true
		}
	}
	return 0, false
}

// TagFunc resolves a citation id to its tag. ok is false for unknown ids.
type TagFunc func(id string) (Tag, bool)

// LayoutInput is everything the layout depends on.
type LayoutInput struct {
	Title      string
	Root       markup.Node
	Width      int
	Tag        TagFunc
	Focus      UnitRef
	Accessible bool // draw tags as their accessible descriptions
}

// BuildLayout wraps the document to in.Width.
func BuildLayout(in LayoutInput) Layout {
	width := max(in.Width, 10)
	l := &layouter{in: in, width: width}

	var lines [][]placed
	if in.Title != "" {
		lines = append(lines, l.wrap(l.words(in.Title, styles.DocTitleStyle, nil), width)...)
		lines = append(lines, nil)
	}
	if in.Root != nil {
		lines = append(lines, l.block(in.Root, width)...)
	}

	out := Layout{Tags: l.tags, Width: width}
	for i, ln := range lines {
		out.Lines = append(out.Lines, renderLine(ln))
		out.Regions = append(out.Regions, lineRegions(i, ln)...)
	}
	return out
}

type atom struct {
	text  string
	style lipgloss.Style
	space bool // break opportunity
	brk   bool // forced line break
	ref   *UnitRef
}

type placed struct {
	atom
	x int
}

type layouter struct {
	in    LayoutInput
	width int
	tags  []Tag
}

type inlineState struct {
	base   lipgloss.Style
	italic bool
	bold   bool
	code   bool
	link   bool
}

func (s inlineState) style() lipgloss.Style {
	st := s.base
	if s.bold {
		st = st.Bold(true)
	}
	if s.italic {
		st = st.Italic(true)
	}
	if s.code {
		st = st.Foreground(styles.ColorSecondary).Background(styles.ColorSurface)
	}
	if s.link {
		st = st.Foreground(styles.ColorSecondary).Underline(true)
	}
	return st
}

func (l *layouter) block(n markup.Node, width int) [][]placed {
	switch v := n.(type) {
	case markup.Sequence:
		return l.blocks(v, width, true)
	case markup.Element:
		return l.element(v, width)
	default:
		return l.wrap(l.inline([]markup.Node{n}, inlineState{base: styles.TextForegroundStyle}), width)
	}
}

func (l *layouter) blocks(nodes []markup.Node, width int, spaced bool) [][]placed {
	var out [][]placed
	for i, n := range nodes {
		if i > 0 && spaced {
			out = append(out, nil)
		}
		out = append(out, l.block(n, width)...)
	}
	return out
}

func (l *layouter) element(e markup.Element, width int) [][]placed {
	switch e.Kind {
	case markup.KindDocument:
		return l.blocks(e.Children, width, true)
	case markup.KindParagraph, markup.KindTextBlock:
		return l.wrap(l.inline(e.Children, inlineState{base: styles.TextForegroundStyle}), width)
	case markup.KindHeading:
		level, _ := strconv.Atoi(e.Attr(markup.AttrLevel))
		marker := strings.Repeat("#", max(level, 1)) + " "
		atoms := append(l.words(marker, styles.DocHeadingStyle, nil),
			l.inline(e.Children, inlineState{base: styles.DocHeadingStyle})...)
		return l.wrap(atoms, width)
	case markup.KindBlockquote:
		bar := styles.IconQuote + " "
		inner := l.blocks(e.Children, width-ansi.StringWidth(bar), true)
		return prefix(inner, bar, bar, styles.DocQuoteBarStyle)
	case markup.KindList:
		return l.list(e, width)
	case markup.KindListItem:
		return l.blocks(e.Children, width, false)
	case markup.KindCodeBlock:
		return l.codeBlock(e, width)
	case markup.KindThematicBreak:
		return [][]placed{{{atom: atom{text: strings.Repeat("─", width), style: styles.DocRuleStyle}}}}
	default:
		return l.wrap(l.inline([]markup.Node{e}, inlineState{base: styles.TextForegroundStyle}), width)
	}
}

func (l *layouter) list(e markup.Element, width int) [][]placed {
	ordered := e.Attr(markup.AttrOrdered) == "true"
	start, err := strconv.Atoi(e.Attr(markup.AttrStart))
	if err != nil {
		start = 1
	}

	markerW := 2
	if ordered {
		markerW = len(fmt.Sprintf("%d. ", start+len(e.Children)-1))
	}

	var out [][]placed
	for i, item := range e.Children {
		marker := styles.IconBullet + " "
		if ordered {
			marker = fmt.Sprintf("%*s", markerW, fmt.Sprintf("%d. ", start+i))
		}
		inner := l.block(item, width-markerW)
		out = append(out, prefix(inner, marker, strings.Repeat(" ", markerW), styles.DocListMarkerStyle)...)
	}
	return out
}

// codeBlock keeps every line verbatim and truncates instead of wrapping.
// Citations inside the block are laid out as tags in place.
func (l *layouter) codeBlock(e markup.Element, width int) [][]placed {
	lines := [][]atom{nil}
	var rec func(n markup.Node)
	rec = func(n markup.Node) {
		switch v := n.(type) {
		case markup.Text:
			text := strings.ReplaceAll(v.Value, "\t", "    ")
			for i, part := range strings.Split(text, "\n") {
				if i > 0 {
					lines = append(lines, nil)
				}
				if part != "" {
					lines[len(lines)-1] = append(lines[len(lines)-1], atom{text: part, style: styles.DocCodeStyle})
				}
			}
		case markup.Cite:
			lines[len(lines)-1] = append(lines[len(lines)-1], l.cite(v.ID)...)
		case markup.Sequence:
			for _, c := range v {
				rec(c)
			}
		case markup.Element:
			for _, c := range v.Children {
				rec(c)
			}
		}
	}
	for _, c := range e.Children {
		rec(c)
	}

	out := make([][]placed, 0, len(lines))
	for _, atoms := range lines {
		ln := []placed{{atom: atom{text: "  "}}}
		x := 2
		for _, a := range atoms {
			aw := ansi.StringWidth(a.text)
			if x+aw > width {
				a.text = ansi.Truncate(a.text, max(width-x, 0), "…")
				ln = append(ln, placed{atom: a, x: x})
				break
			}
			ln = append(ln, placed{atom: a, x: x})
			x += aw
		}
		out = append(out, ln)
	}
	return out
}

// prefix prepends first to the first line and rest to the following ones.
func prefix(lines [][]placed, first, rest string, style lipgloss.Style) [][]placed {
	if len(lines) == 0 {
		lines = [][]placed{nil}
	}
	out := make([][]placed, len(lines))
	for i, ln := range lines {
		p := rest
		if i == 0 {
			p = first
		}
		w := ansi.StringWidth(p)
		shifted := make([]placed, 0, len(ln)+1)
		shifted = append(shifted, placed{atom: atom{text: p, style: style}})
		for _, pl := range ln {
			pl.x += w
			shifted = append(shifted, pl)
		}
		out[i] = shifted
	}
	return out
}

func (l *layouter) inline(nodes []markup.Node, st inlineState) []atom {
	var atoms []atom
	for _, n := range nodes {
		switch v := n.(type) {
		case markup.Text:
			atoms = append(atoms, l.words(v.Value, st.style(), nil)...)
		case markup.Sequence:
			atoms = append(atoms, l.inline(v, st)...)
		case markup.Cite:
			atoms = append(atoms, l.cite(v.ID)...)
		case markup.Element:
			inner := st
			switch v.Kind {
			case markup.KindEmphasis, markup.KindImage:
				inner.italic = true
			case markup.KindStrong:
				inner.bold = true
			case markup.KindCode:
				inner.code = true
			case markup.KindLink:
				inner.link = true
			case markup.KindLineBreak:
				atoms = append(atoms, atom{brk: true})
				continue
			}
			atoms = append(atoms, l.inline(v.Children, inner)...)
		}
	}
	return atoms
}

// words splits s into word and space atoms. Runs of whitespace collapse to
// one break opportunity.
func (l *layouter) words(s string, style lipgloss.Style, ref *UnitRef) []atom {
	var atoms []atom
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			atoms = append(atoms, atom{text: word.String(), style: style, ref: ref})
			word.Reset()
		}
	}
	for _, r := range s {
		if r == ' ' || r == '\n' || r == '\t' {
			flush()
			if len(atoms) == 0 || !atoms[len(atoms)-1].space {
				atoms = append(atoms, atom{text: " ", style: style, space: true, ref: ref})
			}
			continue
		}
		word.WriteRune(r)
	}
	flush()
	return atoms
}

func (l *layouter) cite(id string) []atom {
	if l.in.Tag == nil {
		return nil
	}
	tag, ok := l.in.Tag(id)
	if !ok {
		return nil
	}
	ti := len(l.tags)
	l.tags = append(l.tags, tag)

	var atoms []atom
	for ui, unit := range tag.Units {
		ref := &UnitRef{Tag: ti, Unit: ui}
		if ui > 0 {
			atoms = append(atoms, atom{text: " ", space: true})
		}
		focused := l.in.Focus == *ref

		if l.in.Accessible {
			atoms = append(atoms, l.words("["+tag.Describe(ui)+"]", tagStyle(tag, RoleText, focused), ref)...)
			continue
		}

		for _, seg := range unit.Segments {
			style := tagStyle(tag, seg.Role, focused)
			if seg.Role == RoleBadge {
				// Badges never wrap internally.
				atoms = append(atoms, atom{text: " " + seg.Text + " ", style: style, ref: ref})
				continue
			}
			atoms = append(atoms, l.words(seg.Text, style, ref)...)
		}
	}
	return atoms
}

func tagStyle(t Tag, role Role, focused bool) lipgloss.Style {
	if t.Variant == VariantPlain {
		return styles.TextForegroundStyle
	}

	accent := styles.TagColor(string(t.Meta.Color))
	var s lipgloss.Style
	switch role {
	case RoleCaseName:
		s = lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true)
	case RoleIcon:
		s = styles.TagIconStyle.Foreground(accent)
	case RoleSeparator:
		s = styles.TagSeparatorStyle
	case RoleDecoration:
		s = styles.TagDecorationStyle
	case RoleBadge:
		s = styles.TagBadgeStyle.Background(accent)
	case RoleFlag:
		return styles.TagUnverifiedStyle.Underline(false)
	case RoleSeverity:
		severity := ""
		if t.Result != nil {
			severity = string(t.Result.Severity)
		}
		s = lipgloss.NewStyle().Foreground(styles.SeverityColor(severity)).Bold(true)
	default:
		s = lipgloss.NewStyle().Foreground(accent)
	}

	if t.Result == nil {
		s = styles.TagUnverifiedStyle
		if role == RoleBadge {
			s = s.Background(styles.ColorSurface)
		}
	}
	if t.Selected {
		s = s.Reverse(true)
	}
	if focused {
		if t.Selected {
			s = s.Underline(true)
		} else {
			s = s.Background(styles.ColorSurface)
		}
	}
	return s
}

// wrap places atoms greedily into lines of at most width cells. Adjacent
// non-space atoms form one word and only break when the word alone is wider
// than a line.
func (l *layouter) wrap(atoms []atom, width int) [][]placed {
	var (
		lines   [][]placed
		cur     []placed
		x       int
		pending *atom
	)
	flush := func() {
		lines = append(lines, cur)
		cur = nil
		x = 0
		pending = nil
	}

	for i := 0; i < len(atoms); {
		a := atoms[i]
		switch {
		case a.brk:
			flush()
			i++
			continue
		case a.space:
			if x > 0 {
				sp := a
				pending = &sp
			}
			i++
			continue
		}

		j, w := i, 0
		for j < len(atoms) && !atoms[j].space && !atoms[j].brk {
			w += ansi.StringWidth(atoms[j].text)
			j++
		}

		spaceW := 0
		if pending != nil {
			spaceW = 1
		}
		if x > 0 && x+spaceW+w > width {
			flush()
		} else if pending != nil {
			cur = append(cur, placed{atom: *pending, x: x})
			x++
		}
		pending = nil

		for k := i; k < j; k++ {
			a := atoms[k]
			aw := ansi.StringWidth(a.text)
			if x+aw <= width {
				cur = append(cur, placed{atom: a, x: x})
				x += aw
				continue
			}
			// Hard split an over-long word.
			var piece strings.Builder
			pw := 0
			for _, r := range a.text {
				rw := ansi.StringWidth(string(r))
				if x+pw+rw > width && x+pw > 0 {
					if piece.Len() > 0 {
						p := a
						p.text = piece.String()
						cur = append(cur, placed{atom: p, x: x})
					}
					flush()
					piece.Reset()
					pw = 0
				}
				piece.WriteRune(r)
				pw += rw
			}
			if piece.Len() > 0 {
				p := a
				p.text = piece.String()
				cur = append(cur, placed{atom: p, x: x})
				x += pw
			}
		}
		i = j
	}

	if len(cur) > 0 || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

func renderLine(ln []placed) string {
	var b strings.Builder
	for _, p := range ln {
		b.WriteString(p.style.Render(p.text))
	}
	return b.String()
}

func lineRegions(line int, ln []placed) []Region {
	var regions []Region
	for _, p := range ln {
		if p.ref == nil {
			continue
		}
		x1 := p.x + ansi.StringWidth(p.text)
		if n := len(regions); n > 0 && regions[n-1].Ref == *p.ref && regions[n-1].X1 == p.x {
			regions[n-1].X1 = x1
			continue
		}
		regions = append(regions, Region{Line: line, X0: p.x, X1: x1, Ref: *p.ref})
	}
	return regions
}
