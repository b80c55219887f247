package render

import (
	"strings"

	"github.com/matzehuels/nfogen/pkg/document"
)

// Render assembles the complete document: header art, each section in
// source order, and the optional footer. Trailing blank lines are stripped
// and the output always ends with exactly one newline.
func (r *Renderer) Render(doc *document.Document) (string, error) {
	lines := r.headerLines()

	for _, s := range doc.Sections {
		sec, err := r.RenderSection(s)
		if err != nil {
			return "", err
		}
		lines = append(lines, sec...)
	}

	lines = append(lines, r.footerLines()...)

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return "\n", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// headerLines aligns the header art within the page width. Every art line
// is padded to the width of the widest line first, so the block keeps its
// rectangular shape and all lines shift together. The ornament glyph line,
// when present, sits centered beneath the art separated by one blank line.
func (r *Renderer) headerLines() []string {
	if r.cfg.HeaderText == "" {
		return nil
	}

	art := strings.Split(strings.TrimRight(r.cfg.HeaderText, "\n"), "\n")
	block := 0
	for i, raw := range art {
		art[i] = strings.TrimRight(raw, " ")
		if w := width(art[i]); w > block {
			block = w
		}
	}

	var out []string
	for _, line := range art {
		if line == "" {
			out = append(out, "")
			continue
		}
		padded := line + pad(block-width(line))
		out = append(out, strings.TrimRight(alignLine(padded, r.cfg.PageWidth, r.cfg.HeaderAlignment), " "))
	}

	if r.cfg.HeaderGlyphs != "" {
		out = append(out, "", alignLine(r.cfg.HeaderGlyphs, r.cfg.PageWidth, document.AlignCenter))
	}
	out = append(out, "")
	return out
}

// footerLines emits the footer block after the last section: a divider,
// the footer text aligned per the style, and a closing divider.
func (r *Renderer) footerLines() []string {
	if r.cfg.FooterText == "" {
		return nil
	}

	var out []string
	if div := r.dividerLine(); div != "" {
		out = append(out, div)
	}
	out = append(out, "", alignLine(r.cfg.FooterText, r.cfg.PageWidth, r.cfg.FooterAlignment), "")
	if div := r.dividerLine(); div != "" {
		out = append(out, div)
	}
	return out
}
