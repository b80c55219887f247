package render

import (
	"github.com/matzehuels/nfogen/pkg/document"
	"github.com/matzehuels/nfogen/pkg/errors"
)

const (
	// DefaultPageWidth is the page width used when a style does not set one.
	// 76 columns keeps documents readable in an 80-column terminal with room
	// for viewer chrome.
	DefaultPageWidth = 76

	// DefaultMaxDepth bounds recursion through nested subsections, lists,
	// and maps. Deeper trees fail with MAX_DEPTH_EXCEEDED instead of
	// growing the stack without limit.
	DefaultMaxDepth = 8

	// listIndent is the hanging indent applied under a "- " list marker,
	// and the indent step applied to subsection bodies.
	listIndent = 2
)

// Config is the resolved, immutable set of layout parameters for one
// document render. It is produced by the style resolver from a named style
// and the optional header/alignment overrides, and is never modified during
// rendering.
type Config struct {
	// PageWidth is the fixed output width in display cells. Must be > 0.
	PageWidth int

	// MaxDepth bounds block nesting. Zero means DefaultMaxDepth.
	MaxDepth int

	// HeaderText is the multi-line ASCII header art emitted first.
	HeaderText string
	// HeaderGlyphs is an ornament line drawn beneath the header art.
	// Empty means no ornament line.
	HeaderGlyphs string
	// HeaderAlignment positions each header art line within PageWidth.
	HeaderAlignment document.Alignment

	// DividerGlyph is the character sequence repeated to build divider
	// lines around section titles and the footer. Empty disables dividers.
	DividerGlyph string
	// DividerPercent is the divider length as a percentage of PageWidth.
	// Zero means full width.
	DividerPercent int
	// DividerAlignment positions a partial-width divider within PageWidth.
	DividerAlignment document.Alignment

	// SectionPrefix and SectionSuffix decorate section titles,
	// e.g. "..::" and "::.." produce "..:: Credits ::..".
	SectionPrefix string
	SectionSuffix string

	// SubsectionPrefix and SubsectionSuffix decorate subsection labels.
	SubsectionPrefix string
	SubsectionSuffix string

	// CreditsPrefix and CreditsSuffix wrap each primary credit name,
	// e.g. "-=" and "=-" produce "-= alice =-".
	CreditsPrefix string
	CreditsSuffix string

	// FooterText is emitted after the last section. Empty disables the
	// footer block.
	FooterText      string
	FooterAlignment document.Alignment
}

// maxDepth returns the effective nesting bound.
func (c Config) maxDepth() int {
	if c.MaxDepth > 0 {
		return c.MaxDepth
	}
	return DefaultMaxDepth
}

// Validate checks that the configuration is renderable.
func (c Config) Validate() error {
	if c.PageWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "page width must be positive, got %d", c.PageWidth)
	}
	if c.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.DividerPercent < 0 || c.DividerPercent > 100 {
		return errors.New(errors.ErrCodeInvalidInput, "divider percent must be 0-100, got %d", c.DividerPercent)
	}
	return nil
}

// Renderer renders documents with a fixed configuration. A Renderer holds
// no mutable state, so a single instance may be shared by concurrent
// renders.
type Renderer struct {
	cfg Config
}

// New creates a Renderer after validating cfg.
func New(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}
