package render

import (
	"strings"

	"github.com/matzehuels/nfogen/pkg/document"
	"github.com/matzehuels/nfogen/pkg/errors"
)

// RenderBlock renders a single block into fully indented lines.
// It is the recursive core of the layout engine: lists, maps, and
// subsections re-enter it for their children with adjusted margins and an
// incremented depth.
func (r *Renderer) RenderBlock(b document.Block, in Indent) ([]string, error) {
	return r.renderBlock(b, in, 1)
}

func (r *Renderer) renderBlock(b document.Block, in Indent, depth int) ([]string, error) {
	if in.Left < 0 || in.Cont < 0 {
		return nil, errors.New(errors.ErrCodeInvalidMargin,
			"negative margin computed: left=%d cont=%d", in.Left, in.Cont)
	}
	if depth > r.cfg.maxDepth() {
		return nil, errors.New(errors.ErrCodeMaxDepthExceeded,
			"block nesting exceeds maximum depth %d", r.cfg.maxDepth())
	}

	switch v := b.(type) {
	case document.Scalar:
		return wrapIndent(strings.Fields(v.Value), r.cfg.PageWidth, in), nil
	case document.PreservedText:
		return r.renderPreserved(v, in), nil
	case document.ReflowText:
		return r.renderReflow(v, in), nil
	case document.List:
		return r.renderList(v, in, depth)
	case document.Map:
		return r.renderMap(v, in, depth)
	case document.Subsection:
		return r.renderSubsection(v, in, depth)
	case document.Credits:
		return r.renderCredits(v, in), nil
	default:
		return nil, errors.New(errors.ErrCodeInternal, "unhandled block type %T", b)
	}
}

// renderPreserved emits each stored line verbatim, internal spacing and
// leading indentation included. Only a line wider than the remaining page
// falls back to word-wrapping, which collapses its space runs; break points
// between stored lines are never merged, and blank stored lines emit
// exactly one blank output line. Once any line has been emitted, later
// lines sit at the continuation margin.
func (r *Renderer) renderPreserved(t document.PreservedText, in Indent) []string {
	var out []string
	left := in.Left
	for _, stored := range t.Lines {
		if strings.TrimSpace(stored) == "" {
			out = append(out, "")
			continue
		}
		stored = strings.TrimRight(stored, " ")
		if width(stored) <= r.cfg.PageWidth-left {
			out = append(out, pad(left)+stored)
		} else {
			sub := Indent{Left: left, Cont: in.Cont}
			out = append(out, wrapIndent(strings.Fields(stored), r.cfg.PageWidth, sub)...)
		}
		left = in.Cont
	}
	return out
}

// renderReflow packs each paragraph greedily and separates paragraphs with
// one blank line. A paragraph with zero words renders zero lines and no
// separator. Paragraphs after the first start at the continuation margin.
func (r *Renderer) renderReflow(t document.ReflowText, in Indent) []string {
	var out []string
	left := in.Left
	for _, words := range t.Paragraphs {
		if len(words) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		sub := Indent{Left: left, Cont: in.Cont}
		out = append(out, wrapIndent(words, r.cfg.PageWidth, sub)...)
		left = in.Cont
	}
	return out
}

// renderList emits each item behind a "- " marker with hanging-indent
// continuation: every line of the item after the first aligns under the
// text start, two cells past the item's left margin.
func (r *Renderer) renderList(l document.List, in Indent, depth int) ([]string, error) {
	var out []string
	for _, item := range l.Items {
		lines, err := r.renderBlock(item, in.indented(listIndent), depth+1)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			out = append(out, pad(in.Left)+"-")
			continue
		}
		out = append(out, spliceMarker(lines[0], in.Left, "- "))
		out = append(out, lines[1:]...)
	}
	return out, nil
}

// renderMap emits entries as "key: value". Scalar-like values render inline
// after the key; continuation lines left-align to the column following
// "key: ". Container values put the key on its own line and render their
// content with both margins advanced by the key prefix width, so
// continuation margins accumulate additively through nesting levels.
func (r *Renderer) renderMap(m document.Map, in Indent, depth int) ([]string, error) {
	var out []string
	for _, entry := range m.Entries {
		prefix := entry.Key + ": "
		// Margins are display cells, so a multi-byte key advances by its
		// rendered width, not its byte length.
		prefixWidth := width(prefix)

		switch entry.Value.(type) {
		case document.List, document.Map, document.Subsection:
			out = append(out, pad(in.Left)+entry.Key+":")
			lines, err := r.renderBlock(entry.Value, in.indented(prefixWidth), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, lines...)
		default:
			lines, err := r.renderBlock(entry.Value, in.indented(prefixWidth), depth+1)
			if err != nil {
				return nil, err
			}
			if len(lines) == 0 {
				out = append(out, pad(in.Left)+strings.TrimRight(prefix, " "))
				continue
			}
			out = append(out, spliceMarker(lines[0], in.Left, prefix))
			out = append(out, lines[1:]...)
		}
	}
	return out, nil
}

// renderSubsection emits a decorated marker line aligned per the
// subsection's own alignment, then renders the body one indent level
// deeper.
func (r *Renderer) renderSubsection(s document.Subsection, in Indent, depth int) ([]string, error) {
	marker := decorate(s.Label, r.cfg.SubsectionPrefix, r.cfg.SubsectionSuffix)

	var out []string
	if s.Alignment == document.AlignLeft {
		out = append(out, pad(in.Left)+marker)
	} else {
		out = append(out, alignLine(marker, r.cfg.PageWidth, s.Alignment))
	}

	for _, b := range s.Body {
		lines, err := r.renderBlock(b, in.indented(listIndent), depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

// renderCredits emits the thanks roll: a heading decorated like a
// subsection, each primary name centered inside the style's credit glyphs,
// and the secondary names joined into one centered "a, b, and c" run.
func (r *Renderer) renderCredits(c document.Credits, in Indent) []string {
	marker := decorate(c.Label, r.cfg.SubsectionPrefix, r.cfg.SubsectionSuffix)

	var out []string
	if c.Alignment == document.AlignLeft {
		out = append(out, pad(in.Left)+marker)
	} else {
		out = append(out, alignLine(marker, r.cfg.PageWidth, c.Alignment))
	}

	if len(c.Primary) > 0 {
		out = append(out, "")
		for _, name := range c.Primary {
			line := decorate(name, r.cfg.CreditsPrefix, r.cfg.CreditsSuffix)
			out = append(out, alignLine(line, r.cfg.PageWidth, document.AlignCenter))
		}
	}
	if len(c.Secondary) > 0 {
		out = append(out, "")
		words := strings.Fields(joinNames(c.Secondary))
		for _, line := range wrapIndent(words, r.cfg.PageWidth, Indent{}) {
			out = append(out, alignLine(line, r.cfg.PageWidth, document.AlignCenter))
		}
	}
	return out
}

// joinNames renders a name list as prose: "a", "a, and b", "a, b, and c".
func joinNames(names []string) string {
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	joined := make([]string, len(names))
	copy(joined, names)
	joined[len(joined)-1] = "and " + joined[len(joined)-1]
	return strings.Join(joined, ", ")
}

// spliceMarker overlays a marker (a list bullet or "key: " prefix) onto the
// padding of the first rendered line of a nested block. The line was
// rendered with its text starting at margin+width(marker), so the marker
// replaces the final width(marker) cells of padding. Padding is spaces, so
// the byte cut equals the cell count even for a multi-byte marker.
func spliceMarker(line string, margin int, marker string) string {
	cut := margin + width(marker)
	if len(line) >= cut && strings.TrimSpace(line[:cut]) == "" {
		return pad(margin) + marker + line[cut:]
	}
	// The nested block produced a line shorter than its own margin (e.g. a
	// blank first line); fall back to the marker alone.
	return pad(margin) + strings.TrimRight(marker, " ")
}
