package style

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/nfogen/pkg/document"
	"github.com/matzehuels/nfogen/pkg/errors"
)

//go:embed catalog/styles/*.toml catalog/headers/*.toml
var builtinFS embed.FS

// styleFile is the on-disk TOML shape of a style. Alignment fields are
// keywords and are converted after decoding.
type styleFile struct {
	PageWidth int `toml:"page_width"`
	MaxDepth  int `toml:"max_depth"`

	DividerGlyph     string `toml:"divider_glyph"`
	DividerPercent   int    `toml:"divider_percent"`
	DividerAlignment string `toml:"divider_alignment"`

	SectionPrefix string `toml:"section_prefix"`
	SectionSuffix string `toml:"section_suffix"`

	SubsectionPrefix string `toml:"subsection_prefix"`
	SubsectionSuffix string `toml:"subsection_suffix"`

	CreditsPrefix string `toml:"credits_prefix"`
	CreditsSuffix string `toml:"credits_suffix"`

	Header          string `toml:"header"`
	HeaderAlignment string `toml:"header_alignment"`

	Footer          string `toml:"footer"`
	FooterAlignment string `toml:"footer_alignment"`
}

// headerFile is the on-disk TOML shape of header art.
type headerFile struct {
	Text   string `toml:"text"`
	Glyphs string `toml:"glyphs"`
}

// Builtin returns a catalog populated with the embedded styles and headers.
func Builtin() (*Catalog, error) {
	c := NewCatalog()
	if err := c.loadFS(builtinFS, "catalog"); err != nil {
		// The embedded catalog is fixed at build time, so a decode failure
		// is a packaging bug rather than user error.
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load embedded catalog")
	}
	return c, nil
}

// LoadDir layers user styles and headers from dir over the catalog. The
// directory mirrors the embedded layout: styles/*.toml and headers/*.toml.
// Entries with the same name replace built-in ones. A missing directory is
// not an error; a present but unreadable or malformed file is.
func (c *Catalog) LoadDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "stat catalog dir %s", dir)
	}
	return c.loadFS(os.DirFS(dir), ".")
}

func (c *Catalog) loadFS(fsys fs.FS, root string) error {
	if err := c.loadStyles(fsys, filepath.ToSlash(filepath.Join(root, "styles"))); err != nil {
		return err
	}
	return c.loadHeaders(fsys, filepath.ToSlash(filepath.Join(root, "headers")))
}

func (c *Catalog) loadStyles(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read styles dir %s", dir)
	}

	for _, entry := range entries {
		name, ok := catalogName(entry)
		if !ok {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read style %s", name)
		}

		var raw styleFile
		if err := toml.Unmarshal(data, &raw); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse style %s", name)
		}
		s, err := raw.toStyle()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "style %s", name)
		}
		c.styles[name] = s
	}
	return nil
}

func (c *Catalog) loadHeaders(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read headers dir %s", dir)
	}

	for _, entry := range entries {
		name, ok := catalogName(entry)
		if !ok {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read header %s", name)
		}

		var raw headerFile
		if err := toml.Unmarshal(data, &raw); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse header %s", name)
		}
		c.headers[name] = Header{
			Text:   strings.TrimRight(raw.Text, "\n"),
			Glyphs: raw.Glyphs,
		}
	}
	return nil
}

// BuiltinStyleSource returns the raw TOML of an embedded style, for
// extracting an editable copy of it.
func BuiltinStyleSource(name string) ([]byte, error) {
	if err := errors.ValidateCatalogName(name); err != nil {
		return nil, err
	}
	data, err := builtinFS.ReadFile("catalog/styles/" + name + ".toml")
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnknownStyle, "unknown style %q", name)
	}
	return data, nil
}

// catalogName derives the catalog key from a directory entry, skipping
// subdirectories, non-TOML files, and names that fail validation.
func catalogName(entry fs.DirEntry) (string, bool) {
	if entry.IsDir() {
		return "", false
	}
	base := entry.Name()
	if !strings.HasSuffix(base, ".toml") {
		return "", false
	}
	name := strings.TrimSuffix(base, ".toml")
	if err := errors.ValidateCatalogName(name); err != nil {
		return "", false
	}
	return name, true
}

func (f styleFile) toStyle() (Style, error) {
	divAlign, err := document.ParseAlignment(f.DividerAlignment)
	if err != nil {
		return Style{}, err
	}
	hdrAlign, err := document.ParseAlignment(f.HeaderAlignment)
	if err != nil {
		return Style{}, err
	}
	ftrAlign, err := document.ParseAlignment(f.FooterAlignment)
	if err != nil {
		return Style{}, err
	}

	return Style{
		PageWidth:        f.PageWidth,
		MaxDepth:         f.MaxDepth,
		DividerGlyph:     f.DividerGlyph,
		DividerPercent:   f.DividerPercent,
		DividerAlignment: divAlign,
		SectionPrefix:    f.SectionPrefix,
		SectionSuffix:    f.SectionSuffix,
		SubsectionPrefix: f.SubsectionPrefix,
		SubsectionSuffix: f.SubsectionSuffix,
		CreditsPrefix:    f.CreditsPrefix,
		CreditsSuffix:    f.CreditsSuffix,
		HeaderKey:        f.Header,
		HeaderAlignment:  hdrAlign,
		Footer:           f.Footer,
		FooterAlignment:  ftrAlign,
	}, nil
}
