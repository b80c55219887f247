// Package render is the layout engine that turns a parsed content tree into
// a fixed-width plain-text document.
//
// # Overview
//
// Rendering is a pure, single-threaded computation over an immutable
// [document.Document] and an immutable [Config]. The package provides:
//
//   - Block rendering: scalars, preserved-break text, reflowable text,
//     lists, key/value maps, and nested subsections, each emitted as a
//     sequence of fully indented lines
//   - Section rendering: decorated, aligned title lines plus declared
//     blank-line spacing
//   - Document assembly: header art, sections in source order, optional
//     footer, trailing-blank trimming, and a single terminating newline
//
// # Wrapping semantics
//
// Two word-wrap modes exist. Reflow discards original line breaks and
// repacks words greedily up to the page width; a paragraph boundary re-emits
// as one blank line. Preserve keeps stored line breaks verbatim and wraps
// only lines that exceed the width. In both modes a single word wider than
// the available width is emitted on its own line, unbroken.
//
// # Indentation
//
// Every recursive render call receives its margins as an explicit [Indent]
// value rather than ambient state, which keeps block rendering reentrant and
// testable per block. Continuation margins accumulate additively through
// nesting levels: a wrapped map value aligns its continuation lines to the
// column following "key: ", and a list item aligns continuation lines under
// the text start after its "- " marker.
//
// # Usage
//
//	r, err := render.New(cfg)
//	if err != nil {
//	    return err
//	}
//	text, err := r.Render(doc)
//
// Rendering either produces a complete document or fails; there is no
// partial-output mode. All lines are at most cfg.PageWidth display cells
// wide, except single-overlong-word lines.
package render
