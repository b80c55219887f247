// Package style manages the catalogs of named layout styles and header art
// and resolves them into renderer configurations.
//
// A style names the full set of ornament and layout parameters for one
// document: page width, divider glyphs, section and subsection decorations,
// the default header, and the footer. Styles live in TOML files; a built-in
// catalog ships embedded in the binary and user catalogs can be layered on
// top from a directory.
package style

import (
	"context"
	"sort"
	"strings"

	"github.com/matzehuels/nfogen/pkg/document"
	"github.com/matzehuels/nfogen/pkg/errors"
	"github.com/matzehuels/nfogen/pkg/observability"
	"github.com/matzehuels/nfogen/pkg/render"
)

// DefaultStyle is the style used when neither the command line nor the
// template names one.
const DefaultStyle = "classic"

// Style is one named entry of the style catalog.
type Style struct {
	// PageWidth overrides the default page width. Zero keeps the default.
	PageWidth int
	// MaxDepth overrides the default nesting bound. Zero keeps the default.
	MaxDepth int

	// DividerGlyph, DividerPercent and DividerAlignment shape the divider
	// lines framing section titles. An empty glyph disables dividers.
	DividerGlyph     string
	DividerPercent   int
	DividerAlignment document.Alignment

	// SectionPrefix and SectionSuffix decorate section titles.
	SectionPrefix string
	SectionSuffix string

	// SubsectionPrefix and SubsectionSuffix decorate subsection labels.
	SubsectionPrefix string
	SubsectionSuffix string

	// CreditsPrefix and CreditsSuffix wrap each primary credit name.
	CreditsPrefix string
	CreditsSuffix string

	// HeaderKey names the header art this style uses by default. Empty
	// means no header.
	HeaderKey string
	// HeaderAlignment positions the header art within the page.
	HeaderAlignment document.Alignment

	// Footer is emitted after the last section. Empty disables the footer.
	Footer          string
	FooterAlignment document.Alignment
}

// Header is one named piece of header art.
type Header struct {
	// Text is the multi-line ASCII art.
	Text string
	// Glyphs is an ornament line drawn centered beneath the art. May be
	// empty.
	Glyphs string
}

// Catalog holds the known styles and headers. The zero value is empty;
// populate it with Builtin and LoadDir.
type Catalog struct {
	styles  map[string]Style
	headers map[string]Header
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		styles:  make(map[string]Style),
		headers: make(map[string]Header),
	}
}

// Styles returns the catalog's style names, sorted.
func (c *Catalog) Styles() []string {
	names := make([]string, 0, len(c.styles))
	for name := range c.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Headers returns the catalog's header names, sorted.
func (c *Catalog) Headers() []string {
	names := make([]string, 0, len(c.headers))
	for name := range c.headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style looks up a style by name.
func (c *Catalog) Style(name string) (Style, error) {
	s, ok := c.styles[name]
	if !ok {
		observability.Catalog().OnLookupMiss(context.Background(), "style", name)
		return Style{}, errors.New(errors.ErrCodeUnknownStyle,
			"unknown style %q (available: %s)", name, strings.Join(c.Styles(), ", "))
	}
	return s, nil
}

// Header looks up header art by name.
func (c *Catalog) Header(name string) (Header, error) {
	h, ok := c.headers[name]
	if !ok {
		observability.Catalog().OnLookupMiss(context.Background(), "header", name)
		return Header{}, errors.New(errors.ErrCodeUnknownHeader,
			"unknown header %q (available: %s)", name, strings.Join(c.Headers(), ", "))
	}
	return h, nil
}

// Resolve combines a named style with optional header and alignment
// overrides into a renderer configuration. An empty styleName selects
// DefaultStyle. headerOverride replaces the style's header key;
// alignmentOverride replaces the header alignment only, leaving every other
// aligned element on the style's values.
func (c *Catalog) Resolve(styleName, headerOverride, alignmentOverride string) (render.Config, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	s, err := c.Style(styleName)
	if err != nil {
		return render.Config{}, err
	}

	cfg := render.Config{
		PageWidth:        s.PageWidth,
		MaxDepth:         s.MaxDepth,
		HeaderAlignment:  s.HeaderAlignment,
		DividerGlyph:     s.DividerGlyph,
		DividerPercent:   s.DividerPercent,
		DividerAlignment: s.DividerAlignment,
		SectionPrefix:    s.SectionPrefix,
		SectionSuffix:    s.SectionSuffix,
		SubsectionPrefix: s.SubsectionPrefix,
		SubsectionSuffix: s.SubsectionSuffix,
		CreditsPrefix:    s.CreditsPrefix,
		CreditsSuffix:    s.CreditsSuffix,
		FooterText:       s.Footer,
		FooterAlignment:  s.FooterAlignment,
	}
	if cfg.PageWidth == 0 {
		cfg.PageWidth = render.DefaultPageWidth
	}

	headerKey := s.HeaderKey
	if headerOverride != "" {
		headerKey = headerOverride
	}
	if headerKey != "" {
		h, err := c.Header(headerKey)
		if err != nil {
			return render.Config{}, err
		}
		cfg.HeaderText = h.Text
		cfg.HeaderGlyphs = h.Glyphs
	}

	if alignmentOverride != "" {
		a, err := document.ParseAlignment(alignmentOverride)
		if err != nil {
			return render.Config{}, err
		}
		cfg.HeaderAlignment = a
	}

	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg, nil
}
