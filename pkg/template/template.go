// Package template decodes YAML templates into the typed content tree.
//
// A template is a top-level mapping. Keys tagged !section open sections; the
// tag payload carries "name~alignment~spacing" with spacing optional.
// Untagged top-level keys are reserved for the document metadata scalars
// style, header, and header_alignment. Inside section bodies, mapping keys
// tagged !subsection open nested subsections and keys tagged !credits open
// thanks rolls; sequences become lists, mappings become ordered key/value
// maps, and scalars map to one of three text shapes by their YAML node
// style:
//
//   - literal (|) scalars keep their line breaks
//   - plain or folded scalars spanning multiple lines reflow, with a blank
//     line marking a paragraph boundary
//   - single-line scalars stay scalar
package template

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/nfogen/pkg/document"
	"github.com/matzehuels/nfogen/pkg/errors"
)

// Custom tags recognized in templates.
const (
	sectionTag    = "!section"
	subsectionTag = "!subsection"
	creditsTag    = "!credits"
)

// Metadata keys allowed as untagged top-level entries.
const (
	metaStyle           = "style"
	metaHeader          = "header"
	metaHeaderAlignment = "header_alignment"
)

// ParseFile reads and decodes a template file.
func ParseFile(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "template %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read template %s", path)
	}
	return Parse(data)
}

// Parse decodes template source into a document.
func Parse(data []byte) (*document.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplateSyntax, err, "decode template")
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return &document.Document{}, nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, syntaxErr(top, "template root must be a mapping, got %s", kindName(top))
	}

	doc := &document.Document{}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]

		switch {
		case key.Tag == sectionTag:
			sec, err := decodeSection(key, value)
			if err != nil {
				return nil, err
			}
			doc.Sections = append(doc.Sections, sec)
		case key.Kind == yaml.ScalarNode:
			if err := decodeMeta(doc, key, value); err != nil {
				return nil, err
			}
		default:
			return nil, syntaxErr(key, "unexpected top-level key")
		}
	}
	return doc, nil
}

// decodeSection parses the !section tag payload and the section body.
func decodeSection(key, value *yaml.Node) (document.Section, error) {
	parts := strings.Split(key.Value, "~")
	if len(parts) < 2 || len(parts) > 3 {
		return document.Section{}, syntaxErr(key,
			"section tag must be 'name~alignment' or 'name~alignment~spacing', got %q", key.Value)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return document.Section{}, syntaxErr(key, "section name cannot be empty")
	}

	alignment, err := document.ParseAlignment(parts[1])
	if err != nil {
		return document.Section{}, errors.Wrap(errors.ErrCodeTemplateSyntax, err,
			"section %q (line %d)", name, key.Line)
	}

	spacing := document.SpacingDouble
	if len(parts) == 3 {
		spacing, err = document.ParseSpacing(parts[2])
		if err != nil {
			return document.Section{}, errors.Wrap(errors.ErrCodeTemplateSyntax, err,
				"section %q (line %d)", name, key.Line)
		}
	}

	body, err := decodeBody(value)
	if err != nil {
		return document.Section{}, err
	}
	return document.Section{
		Title:     name,
		Alignment: alignment,
		Spacing:   spacing,
		Body:      body,
	}, nil
}

// decodeMeta handles the untagged top-level metadata scalars.
func decodeMeta(doc *document.Document, key, value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return syntaxErr(value, "metadata %q must be a scalar", key.Value)
	}
	switch key.Value {
	case metaStyle:
		doc.Meta.Style = value.Value
	case metaHeader:
		doc.Meta.Header = value.Value
	case metaHeaderAlignment:
		doc.Meta.HeaderAlignment = value.Value
	default:
		return syntaxErr(key,
			"unknown top-level key %q (sections need a !section tag)", key.Value)
	}
	return nil
}

// decodeBody turns a section or subsection value into its block sequence.
// A mapping body may interleave !subsection keys with plain entries; runs
// of plain entries collapse into one Map block so source order survives.
func decodeBody(node *yaml.Node) ([]document.Block, error) {
	if node == nil || node.Tag == "!!null" {
		return nil, nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		var blocks []document.Block
		var entries []document.MapEntry

		flush := func() {
			if len(entries) > 0 {
				blocks = append(blocks, document.Map{Entries: entries})
				entries = nil
			}
		}

		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]

			if key.Tag == subsectionTag {
				flush()
				sub, err := decodeSubsection(key, value)
				if err != nil {
					return nil, err
				}
				blocks = append(blocks, sub)
				continue
			}
			if key.Tag == creditsTag {
				flush()
				cr, err := decodeCredits(key, value)
				if err != nil {
					return nil, err
				}
				blocks = append(blocks, cr)
				continue
			}
			if key.Kind != yaml.ScalarNode {
				return nil, syntaxErr(key, "map key must be a scalar")
			}
			v, err := decodeValue(value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, document.MapEntry{Key: key.Value, Value: v})
		}
		flush()
		return blocks, nil
	default:
		b, err := decodeValue(node)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, nil
		}
		return []document.Block{b}, nil
	}
}

// decodeSubsection parses a !subsection key and its body. The tag payload
// is "label" or "label~alignment"; alignment defaults to left.
func decodeSubsection(key, value *yaml.Node) (document.Subsection, error) {
	parts := strings.Split(key.Value, "~")
	if len(parts) > 2 {
		return document.Subsection{}, syntaxErr(key,
			"subsection tag must be 'label' or 'label~alignment', got %q", key.Value)
	}
	label := strings.TrimSpace(parts[0])
	if label == "" {
		return document.Subsection{}, syntaxErr(key, "subsection label cannot be empty")
	}

	alignment := document.AlignLeft
	if len(parts) == 2 {
		var err error
		alignment, err = document.ParseAlignment(parts[1])
		if err != nil {
			return document.Subsection{}, errors.Wrap(errors.ErrCodeTemplateSyntax, err,
				"subsection %q (line %d)", label, key.Line)
		}
	}

	body, err := decodeBody(value)
	if err != nil {
		return document.Subsection{}, err
	}
	return document.Subsection{Label: label, Alignment: alignment, Body: body}, nil
}

// decodeCredits parses a !credits key and its body. The tag payload is
// "label" or "label~alignment" like a subsection, but alignment defaults
// to center. The value is a mapping whose primary and secondary keys each
// hold a sequence of names.
func decodeCredits(key, value *yaml.Node) (document.Credits, error) {
	parts := strings.Split(key.Value, "~")
	if len(parts) > 2 {
		return document.Credits{}, syntaxErr(key,
			"credits tag must be 'label' or 'label~alignment', got %q", key.Value)
	}
	label := strings.TrimSpace(parts[0])
	if label == "" {
		return document.Credits{}, syntaxErr(key, "credits label cannot be empty")
	}

	alignment := document.AlignCenter
	if len(parts) == 2 {
		var err error
		alignment, err = document.ParseAlignment(parts[1])
		if err != nil {
			return document.Credits{}, errors.Wrap(errors.ErrCodeTemplateSyntax, err,
				"credits %q (line %d)", label, key.Line)
		}
	}

	cr := document.Credits{Label: label, Alignment: alignment}
	if value == nil || value.Tag == "!!null" {
		return cr, nil
	}
	if value.Kind != yaml.MappingNode {
		return cr, syntaxErr(value,
			"credits body must be a mapping of primary and secondary name lists")
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		names, err := decodeNames(v)
		if err != nil {
			return cr, err
		}
		switch k.Value {
		case "primary":
			cr.Primary = names
		case "secondary":
			cr.Secondary = names
		default:
			return cr, syntaxErr(k,
				"unknown credits key %q (want primary or secondary)", k.Value)
		}
	}
	return cr, nil
}

// decodeNames collects a sequence of scalar credit names.
func decodeNames(node *yaml.Node) ([]string, error) {
	if node == nil || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, syntaxErr(node, "credit names must be a sequence")
	}
	names := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, syntaxErr(item, "credit name must be a scalar")
		}
		names = append(names, strings.TrimSpace(item.Value))
	}
	return names, nil
}

// decodeValue turns a body value node into a single block.
func decodeValue(node *yaml.Node) (document.Block, error) {
	if node == nil || node.Tag == "!!null" {
		return nil, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node), nil
	case yaml.SequenceNode:
		items := make([]document.Block, 0, len(node.Content))
		for _, item := range node.Content {
			b, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			if b == nil {
				b = document.Scalar{}
			}
			items = append(items, b)
		}
		return document.List{Items: items}, nil
	case yaml.MappingNode:
		blocks, err := decodeBody(node)
		if err != nil {
			return nil, err
		}
		switch len(blocks) {
		case 0:
			return document.Map{}, nil
		case 1:
			return blocks[0], nil
		default:
			return nil, syntaxErr(node,
				"a nested value cannot mix subsections with plain entries")
		}
	default:
		return nil, syntaxErr(node, "unsupported node kind %s", kindName(node))
	}
}

// decodeScalar maps a scalar node to a text block by its source style.
func decodeScalar(node *yaml.Node) document.Block {
	text := node.Value

	if node.Style == yaml.LiteralStyle {
		return document.PreservedText{
			Lines: strings.Split(strings.TrimRight(text, "\n"), "\n"),
		}
	}

	text = strings.TrimRight(text, "\n")
	if strings.Contains(text, "\n") {
		// Plain and folded scalars arrive with soft breaks already folded
		// to spaces, so every remaining newline marks a paragraph boundary
		// (a blank line in the source).
		var paragraphs [][]string
		for _, para := range strings.Split(text, "\n") {
			paragraphs = append(paragraphs, strings.Fields(para))
		}
		return document.ReflowText{Paragraphs: paragraphs}
	}
	return document.Scalar{Value: text}
}

func syntaxErr(node *yaml.Node, format string, args ...any) error {
	err := errors.New(errors.ErrCodeTemplateSyntax, format, args...)
	if node != nil && node.Line > 0 {
		err.Message += " (line " + strconv.Itoa(node.Line) + ")"
	}
	return err
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
