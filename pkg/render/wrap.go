package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/nfogen/pkg/document"
)

// Indent carries the explicit margins for one block render call.
// Left applies to the first emitted line, Cont to every line after it.
// Margins are measured in display cells from the page's left edge.
type Indent struct {
	Left int
	Cont int
}

// indented returns the context for content nested under a prefix of the
// given width: both margins advance so continuation lines align to the
// column where the nested content starts.
func (in Indent) indented(by int) Indent {
	return Indent{Left: in.Left + by, Cont: in.Cont + by}
}

// pad returns n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// width returns the display width of s. This equals len(s) for ASCII but
// differs for wide runes in ornament glyphs or titles.
func width(s string) int {
	return runewidth.StringWidth(s)
}

// wrapIndent packs words greedily into lines. The first line is padded to
// in.Left and wrapped at pageWidth-in.Left; subsequent lines are padded to
// in.Cont and wrapped at pageWidth-in.Cont. A word wider than the available
// width is emitted on its own line, unbroken. Zero words yield zero lines.
func wrapIndent(words []string, pageWidth int, in Indent) []string {
	var lines []string
	var cur []string
	curWidth := 0

	margin := in.Left
	avail := pageWidth - margin

	flush := func() {
		lines = append(lines, pad(margin)+strings.Join(cur, " "))
		cur = cur[:0]
		curWidth = 0
		margin = in.Cont
		avail = pageWidth - margin
	}

	for _, word := range words {
		w := width(word)
		switch {
		case len(cur) == 0:
			// A line always receives at least one word, even one wider
			// than the available width.
			cur = append(cur, word)
			curWidth = w
		case curWidth+1+w <= avail:
			cur = append(cur, word)
			curWidth += 1 + w
		default:
			flush()
			cur = append(cur, word)
			curWidth = w
		}
	}
	if len(cur) > 0 {
		flush()
	}
	return lines
}

// alignLine positions s within pageWidth. Left emits s with no padding;
// right pads entirely on the left; center pads symmetrically with the extra
// space on the right when the remainder is odd.
func alignLine(s string, pageWidth int, a document.Alignment) string {
	gap := pageWidth - width(s)
	if gap <= 0 {
		return s
	}
	switch a {
	case document.AlignRight:
		return pad(gap) + s
	case document.AlignCenter:
		left := gap / 2
		return pad(left) + s + pad(gap-left)
	default:
		return s
	}
}

// decorate joins ornament glyphs around text with single separating spaces,
// skipping empty glyphs: decorate("About", "===", "===") == "=== About ===".
func decorate(text, prefix, suffix string) string {
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, text)
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}
