package style

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/nfogen/pkg/document"
	"github.com/matzehuels/nfogen/pkg/errors"
	"github.com/matzehuels/nfogen/pkg/observability"
)

func TestBuiltinCatalog(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	wantStyles := []string{"boxed", "classic", "minimal"}
	if got := c.Styles(); !reflect.DeepEqual(got, wantStyles) {
		t.Errorf("Styles() = %v, want %v", got, wantStyles)
	}

	wantHeaders := []string{"banner", "block", "slant"}
	if got := c.Headers(); !reflect.DeepEqual(got, wantHeaders) {
		t.Errorf("Headers() = %v, want %v", got, wantHeaders)
	}

	classic, err := c.Style("classic")
	if err != nil {
		t.Fatalf("Style(classic) error = %v", err)
	}
	if classic.PageWidth != 76 {
		t.Errorf("classic.PageWidth = %d, want 76", classic.PageWidth)
	}
	if classic.CreditsPrefix != "-=" || classic.CreditsSuffix != "=-" {
		t.Errorf("classic credit glyphs = %q %q, want -= =-", classic.CreditsPrefix, classic.CreditsSuffix)
	}
	if classic.HeaderKey != "block" {
		t.Errorf("classic.HeaderKey = %q, want %q", classic.HeaderKey, "block")
	}
	if classic.HeaderAlignment != document.AlignCenter {
		t.Errorf("classic.HeaderAlignment = %v, want center", classic.HeaderAlignment)
	}

	block, err := c.Header("block")
	if err != nil {
		t.Fatalf("Header(block) error = %v", err)
	}
	if !strings.Contains(block.Text, "_____") {
		t.Errorf("block header art missing expected content: %q", block.Text)
	}
	if strings.HasSuffix(block.Text, "\n") {
		t.Errorf("header text should not keep a trailing newline: %q", block.Text)
	}
}

func TestResolve(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	t.Run("empty name selects default style", func(t *testing.T) {
		cfg, err := c.Resolve("", "", "")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.PageWidth != 76 {
			t.Errorf("PageWidth = %d, want 76", cfg.PageWidth)
		}
		if cfg.HeaderText == "" {
			t.Error("default style should carry header art")
		}
	})

	t.Run("header override replaces style header", func(t *testing.T) {
		cfg, err := c.Resolve("classic", "banner", "")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !strings.Contains(cfg.HeaderText, "#####") {
			t.Errorf("HeaderText = %q, want banner art", cfg.HeaderText)
		}
		if cfg.HeaderGlyphs != "" {
			t.Errorf("HeaderGlyphs = %q, want empty for banner", cfg.HeaderGlyphs)
		}
	})

	t.Run("alignment override touches header alignment only", func(t *testing.T) {
		cfg, err := c.Resolve("classic", "", "right")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.HeaderAlignment != document.AlignRight {
			t.Errorf("HeaderAlignment = %v, want right", cfg.HeaderAlignment)
		}
		if cfg.FooterAlignment != document.AlignCenter {
			t.Errorf("FooterAlignment = %v, want untouched center", cfg.FooterAlignment)
		}
	})

	t.Run("minimal style has no header", func(t *testing.T) {
		cfg, err := c.Resolve("minimal", "", "")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.HeaderText != "" || cfg.DividerGlyph != "" || cfg.FooterText != "" {
			t.Errorf("minimal should render bare: %+v", cfg)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := c.Resolve("nope", "", "")
		if errors.GetCode(err) != errors.ErrCodeUnknownStyle {
			t.Errorf("GetCode(err) = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownStyle)
		}
	})

	t.Run("unknown header", func(t *testing.T) {
		_, err := c.Resolve("classic", "nope", "")
		if errors.GetCode(err) != errors.ErrCodeUnknownHeader {
			t.Errorf("GetCode(err) = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownHeader)
		}
	})

	t.Run("invalid alignment override", func(t *testing.T) {
		_, err := c.Resolve("classic", "", "diagonal")
		if errors.GetCode(err) != errors.ErrCodeInvalidAlignment {
			t.Errorf("GetCode(err) = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidAlignment)
		}
	})
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	custom := "page_width = 40\nsection_prefix = \">>\"\n"
	if err := os.WriteFile(filepath.Join(dir, "styles", "custom.toml"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	// Override the built-in classic entry.
	if err := os.WriteFile(filepath.Join(dir, "styles", "classic.toml"), []byte("page_width = 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	if err := c.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	s, err := c.Style("custom")
	if err != nil {
		t.Fatalf("Style(custom) error = %v", err)
	}
	if s.PageWidth != 40 || s.SectionPrefix != ">>" {
		t.Errorf("custom style = %+v", s)
	}

	classic, err := c.Style("classic")
	if err != nil {
		t.Fatalf("Style(classic) error = %v", err)
	}
	if classic.PageWidth != 50 {
		t.Errorf("classic.PageWidth = %d, want user override 50", classic.PageWidth)
	}
}

func TestLoadDirMissing(t *testing.T) {
	c := NewCatalog()
	if err := c.LoadDir(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("LoadDir() on missing dir = %v, want nil", err)
	}
}

func TestLoadDirBadStyle(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles", "bad.toml"), []byte("page_width = \"wide\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCatalog()
	err := c.LoadDir(dir)
	if errors.GetCode(err) != errors.ErrCodeInvalidCatalog {
		t.Errorf("GetCode(err) = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCatalog)
	}
}

type missRecorder struct {
	observability.NoopCatalogHooks
	kinds []string
	names []string
}

func (m *missRecorder) OnLookupMiss(_ context.Context, kind, name string) {
	m.kinds = append(m.kinds, kind)
	m.names = append(m.names, name)
}

func TestLookupMissHook(t *testing.T) {
	rec := &missRecorder{}
	observability.SetCatalogHooks(rec)
	defer observability.Reset()

	c := NewCatalog()
	if _, err := c.Style("ghost"); err == nil {
		t.Fatal("Style(ghost) should fail on an empty catalog")
	}
	if _, err := c.Header("phantom"); err == nil {
		t.Fatal("Header(phantom) should fail on an empty catalog")
	}

	if !reflect.DeepEqual(rec.kinds, []string{"style", "header"}) {
		t.Errorf("miss kinds = %v, want [style header]", rec.kinds)
	}
	if !reflect.DeepEqual(rec.names, []string{"ghost", "phantom"}) {
		t.Errorf("miss names = %v, want [ghost phantom]", rec.names)
	}
}

func TestBuiltinStyleSource(t *testing.T) {
	data, err := BuiltinStyleSource("classic")
	if err != nil {
		t.Fatalf("BuiltinStyleSource() error = %v", err)
	}
	if !strings.Contains(string(data), "page_width") {
		t.Errorf("style source missing page_width: %q", data)
	}

	if _, err := BuiltinStyleSource("nope"); errors.GetCode(err) != errors.ErrCodeUnknownStyle {
		t.Errorf("GetCode(err) = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownStyle)
	}
	if _, err := BuiltinStyleSource("../escape"); errors.GetCode(err) != errors.ErrCodeInvalidCatalog {
		t.Errorf("GetCode(err) = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCatalog)
	}
}
