// Package document defines the typed content tree for a template document.
//
// A Document is an ordered list of Sections; each Section holds an ordered
// body of Blocks. Blocks form a tagged union: scalar values, preserved-break
// text, reflowable text, lists, key/value maps, and named subsections that
// recursively contain further blocks.
//
// The tree is pure data. It is built once by the template decoder, consumed
// read-only by the renderer, and never mutated after construction. No block
// carries behavior beyond small accessors; all rendering logic dispatches on
// the concrete block type.
package document

import (
	"strings"

	"github.com/matzehuels/nfogen/pkg/errors"
)

// Alignment positions a line of text within the page width.
type Alignment int

const (
	// AlignLeft emits the text with no leading padding.
	AlignLeft Alignment = iota
	// AlignCenter pads symmetrically, with the extra space on the right
	// when the remainder is odd.
	AlignCenter
	// AlignRight places all padding on the left.
	AlignRight
)

// String returns the alignment keyword as it appears in templates and styles.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment converts an alignment keyword to an Alignment.
// The empty string maps to AlignLeft.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, errors.New(errors.ErrCodeInvalidAlignment,
			"invalid alignment: %s (must be 'left', 'center', or 'right')", s)
	}
}

// Spacing is the number of blank lines a section emits after its body.
type Spacing int

const (
	// SpacingSingle emits one blank line after the section body.
	SpacingSingle Spacing = 1
	// SpacingDouble emits two blank lines after the section body.
	SpacingDouble Spacing = 2
)

// String returns the spacing keyword as it appears in section tags.
func (s Spacing) String() string {
	if s == SpacingSingle {
		return "single"
	}
	return "double"
}

// ParseSpacing converts a spacing keyword to a Spacing.
// The empty string maps to SpacingDouble, matching the template default.
func ParseSpacing(s string) (Spacing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "double":
		return SpacingDouble, nil
	case "single":
		return SpacingSingle, nil
	default:
		return SpacingDouble, errors.New(errors.ErrCodeInvalidSpacing,
			"invalid spacing: %s (must be 'single' or 'double')", s)
	}
}

// Block is one renderable unit inside a section body.
//
// The set of implementations is closed: Scalar, PreservedText, ReflowText,
// List, Map, Subsection, and Credits. The unexported marker method prevents
// implementations outside this package, so renderers can treat a type switch
// over these seven as exhaustive.
type Block interface {
	isBlock()
}

// Scalar is a single short text value. It is word-wrapped when it exceeds
// the available width but never carries internal line breaks.
type Scalar struct {
	Value string
}

// PreservedText is text whose stored line breaks are retained verbatim.
// A stored line that fits the page is emitted as-is, internal spacing
// included; only overlong lines are word-wrapped. Break points between
// stored lines are never merged, and empty stored lines re-emit as blank
// output lines.
type PreservedText struct {
	Lines []string
}

// ReflowText is text whose original line breaks are discardable. The
// renderer repacks words greedily up to the page width. Each paragraph is
// an ordered word run; paragraph boundaries re-emit as one blank line.
type ReflowText struct {
	Paragraphs [][]string
}

// List is an ordered sequence of items, each rendered with a leading "- "
// marker and hanging-indent continuation.
type List struct {
	Items []Block
}

// MapEntry is one key/value pair of a Map. Entry order is source order.
type MapEntry struct {
	Key   string
	Value Block
}

// Map is an ordered sequence of key/value entries rendered as "key: value".
// Multi-line values left-align their continuation lines to the column
// immediately following "key: " on the first line.
type Map struct {
	Entries []MapEntry
}

// Subsection is a named, aligned sub-grouping inside a section. Its body is
// rendered one indent level deeper and may nest further subsections.
type Subsection struct {
	Label     string
	Alignment Alignment
	Body      []Block
}

// Credits is the thanks roll of a release document. Primary names render
// one per line, centered and wrapped in the style's credit glyphs;
// secondary names join into a single centered "a, b, and c" run. The label
// is decorated and aligned like a subsection marker.
type Credits struct {
	Label     string
	Alignment Alignment
	Primary   []string
	Secondary []string
}

func (Scalar) isBlock()        {}
func (PreservedText) isBlock() {}
func (ReflowText) isBlock()    {}
func (List) isBlock()          {}
func (Map) isBlock()           {}
func (Subsection) isBlock()    {}
func (Credits) isBlock()       {}

// Section is a titled top-level grouping of blocks. Title, alignment, and
// spacing are fixed at parse time from the section tag.
type Section struct {
	Title     string
	Alignment Alignment
	Spacing   Spacing
	Body      []Block
}

// Meta carries template-level settings that are not content: the requested
// style name and the optional header key and header alignment overrides.
// Empty fields mean "no override".
type Meta struct {
	Style           string
	Header          string
	HeaderAlignment string
}

// Document is the complete parsed template: ordered sections plus the
// template-level metadata. Section order is render order.
type Document struct {
	Sections []Section
	Meta     Meta
}

// BlockCount returns the total number of blocks in the document, counting
// nested blocks inside lists, maps, and subsections.
func (d *Document) BlockCount() int {
	n := 0
	for _, s := range d.Sections {
		for _, b := range s.Body {
			n += countBlocks(b)
		}
	}
	return n
}

func countBlocks(b Block) int {
	switch v := b.(type) {
	case List:
		n := 1
		for _, it := range v.Items {
			n += countBlocks(it)
		}
		return n
	case Map:
		n := 1
		for _, e := range v.Entries {
			n += countBlocks(e.Value)
		}
		return n
	case Subsection:
		n := 1
		for _, c := range v.Body {
			n += countBlocks(c)
		}
		return n
	default:
		return 1
	}
}

// Depth returns the deepest nesting level of the document's block tree.
// Top-level section blocks are at depth 1; each list item, map value, or
// subsection body descends one level.
func (d *Document) Depth() int {
	max := 0
	for _, s := range d.Sections {
		for _, b := range s.Body {
			if dep := blockDepth(b, 1); dep > max {
				max = dep
			}
		}
	}
	return max
}

func blockDepth(b Block, at int) int {
	max := at
	switch v := b.(type) {
	case List:
		for _, it := range v.Items {
			if d := blockDepth(it, at+1); d > max {
				max = d
			}
		}
	case Map:
		for _, e := range v.Entries {
			if d := blockDepth(e.Value, at+1); d > max {
				max = d
			}
		}
	case Subsection:
		for _, c := range v.Body {
			if d := blockDepth(c, at+1); d > max {
				max = d
			}
		}
	}
	return max
}
