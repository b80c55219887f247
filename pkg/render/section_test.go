package render

import (
	"testing"

	"github.com/matzehuels/nfogen/pkg/document"
)

func TestRenderSectionDecoratedTitle(t *testing.T) {
	r := newTestRenderer(t, Config{
		PageWidth:     21,
		SectionPrefix: "===",
		SectionSuffix: "===",
	})

	sec := document.Section{
		Title:     "About",
		Alignment: document.AlignCenter,
		Spacing:   document.SpacingSingle,
		Body: []document.Block{
			document.Scalar{Value: "hello"},
		},
	}
	lines, err := r.RenderSection(sec)
	if err != nil {
		t.Fatalf("RenderSection() error = %v", err)
	}

	want := []string{
		"    === About ===    ",
		"hello",
		"",
	}
	assertLines(t, lines, want)
}

func TestRenderSectionEmptyBody(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 30})

	sec := document.Section{
		Title:     "Greetz",
		Alignment: document.AlignLeft,
		Spacing:   document.SpacingDouble,
	}
	lines, err := r.RenderSection(sec)
	if err != nil {
		t.Fatalf("RenderSection() error = %v", err)
	}

	want := []string{
		"Greetz",
		"",
		"",
	}
	assertLines(t, lines, want)
}

func TestRenderSectionDividers(t *testing.T) {
	r := newTestRenderer(t, Config{
		PageWidth:        20,
		DividerGlyph:     "=",
		DividerPercent:   50,
		DividerAlignment: document.AlignCenter,
	})

	sec := document.Section{
		Title:     "Info",
		Alignment: document.AlignLeft,
		Spacing:   document.SpacingSingle,
	}
	lines, err := r.RenderSection(sec)
	if err != nil {
		t.Fatalf("RenderSection() error = %v", err)
	}

	want := []string{
		"     ==========     ",
		"Info",
		"     ==========     ",
		"",
	}
	assertLines(t, lines, want)
}

func TestDividerLine(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "no glyph means no divider",
			cfg:  Config{PageWidth: 20},
			want: "",
		},
		{
			name: "zero percent fills the page",
			cfg:  Config{PageWidth: 10, DividerGlyph: "-"},
			want: "----------",
		},
		{
			name: "partial width right aligned",
			cfg: Config{
				PageWidth:        10,
				DividerGlyph:     "-",
				DividerPercent:   40,
				DividerAlignment: document.AlignRight,
			},
			want: "      ----",
		},
		{
			name: "multi cell glyph truncates to whole repeats",
			cfg:  Config{PageWidth: 10, DividerGlyph: "=-", DividerPercent: 50},
			want: "=-=-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(t, tt.cfg)
			if got := r.dividerLine(); got != tt.want {
				t.Errorf("dividerLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
