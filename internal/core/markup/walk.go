package markup

// Walk returns a new tree where every marker inside a Text leaf is replaced
// by a Cite node. Markers whose id is rejected by resolve are removed while
// the text around them is kept. All other structure is preserved, and a tree
// without markers comes back equal to the input.
func Walk(n Node, resolve Resolver) Node {
	if n == nil {
		return nil
	}
	return n.walk(resolve)
}

func (t Text) walk(resolve Resolver) Node {
	return splitMarkers(t.Value, resolve)
}

func (e Element) walk(resolve Resolver) Node {
	if len(e.Children) == 0 {
		return e
	}
	children := make([]Node, len(e.Children))
	for i, c := range e.Children {
		children[i] = c.walk(resolve)
	}
	return Element{Kind: e.Kind, Attrs: e.Attrs, Children: children}
}

func (s Sequence) walk(resolve Resolver) Node {
	out := make(Sequence, len(s))
	for i, c := range s {
		out[i] = c.walk(resolve)
	}
	return out
}

func (c Cite) walk(Resolver) Node {
	return c
}

// splitMarkers returns the Text unchanged when it holds no marker, and a
// Sequence of Text and Cite fragments otherwise.
func splitMarkers(s string, resolve Resolver) Node {
	matches := markerRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return Text{Value: s}
	}

	var (
		parts   Sequence
		pending string
		last    int
	)
	for _, m := range matches {
		id, ok := markerID(s[m[2]:m[3]])
		if !ok {
			continue
		}
		pending += s[last:m[0]]
		last = m[1]

		if resolve != nil && !resolve(id) {
			continue
		}
		if pending != "" {
			parts = append(parts, Text{Value: pending})
			pending = ""
		}
		parts = append(parts, Cite{ID: id})
	}
	pending += s[last:]
	if pending != "" {
		parts = append(parts, Text{Value: pending})
	}

	if len(parts) == 0 {
		return Text{}
	}
	if len(parts) == 1 {
		if t, ok := parts[0].(Text); ok {
			return t
		}
	}
	return parts
}
