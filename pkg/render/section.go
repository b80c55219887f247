package render

import (
	"strings"

	"github.com/matzehuels/nfogen/pkg/document"
)

// RenderSection renders one section: an optional divider frame, the
// decorated and aligned title line, the body blocks at margin zero, and the
// section's declared blank-line spacing. Spacing after the final section of
// a document is trimmed by the assembler.
func (r *Renderer) RenderSection(s document.Section) ([]string, error) {
	var out []string

	if div := r.dividerLine(); div != "" {
		out = append(out, div)
	}

	title := decorate(s.Title, r.cfg.SectionPrefix, r.cfg.SectionSuffix)
	out = append(out, alignLine(title, r.cfg.PageWidth, s.Alignment))

	if div := r.dividerLine(); div != "" {
		out = append(out, div)
	}

	for _, b := range s.Body {
		lines, err := r.RenderBlock(b, Indent{})
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}

	for i := 0; i < int(s.Spacing); i++ {
		out = append(out, "")
	}
	return out, nil
}

// dividerLine builds a divider from the configured glyph, sized to
// DividerPercent of the page width and aligned within it. Returns the
// empty string when the style defines no divider glyph.
func (r *Renderer) dividerLine() string {
	if r.cfg.DividerGlyph == "" {
		return ""
	}

	target := r.cfg.PageWidth
	if r.cfg.DividerPercent > 0 {
		target = r.cfg.PageWidth * r.cfg.DividerPercent / 100
	}
	if target <= 0 {
		return ""
	}

	glyphWidth := width(r.cfg.DividerGlyph)
	if glyphWidth <= 0 {
		return ""
	}
	div := strings.Repeat(r.cfg.DividerGlyph, target/glyphWidth)
	if div == "" {
		return ""
	}
	return alignLine(div, r.cfg.PageWidth, r.cfg.DividerAlignment)
}
