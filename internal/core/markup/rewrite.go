package markup

import (
	"encoding/hex"
	"regexp"
	"strconv"

	"github.com/colonyops/citeview/internal/core/brief"
)

var (
	placeholderRe = regexp.MustCompile(`\[\[CITATION:(\d+)\]\]`)
	markerRe      = regexp.MustCompile(`\{\{CITE:([0-9a-f]+)\}\}`)
)

// Marker returns the id-keyed marker for a citation. The id is hex encoded
// so no id can carry emphasis, code span or link syntax into the parser,
// and braces carry no meaning in CommonMark.
func Marker(id string) string {
	return "{{CITE:" + hex.EncodeToString([]byte(id)) + "}}"
}

// markerID decodes the id carried by a marker payload.
func markerID(payload string) (string, bool) {
	raw, err := hex.DecodeString(payload)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// Rewrite replaces every "[[CITATION:N]]" placeholder with the marker of
// the N-th (1-based) citation. Placeholders whose index is out of range are
// left untouched.
func Rewrite(content string, citations []brief.Citation) string {
	return placeholderRe.ReplaceAllStringFunc(content, func(match string) string {
		sub := placeholderRe.FindStringSubmatch(match)
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx < 1 || idx > len(citations) {
			return match
		}
		return Marker(citations[idx-1].ID)
	})
}

// Unresolved returns the placeholder indexes in content that do not map to
// a citation, in order of appearance.
func Unresolved(content string, citations []brief.Citation) []string {
	var out []string
	for _, sub := range placeholderRe.FindAllStringSubmatch(content, -1) {
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx < 1 || idx > len(citations) {
			out = append(out, sub[1])
		}
	}
	return out
}
