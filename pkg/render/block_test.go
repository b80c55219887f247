package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/nfogen/pkg/document"
	"github.com/matzehuels/nfogen/pkg/errors"
)

func newTestRenderer(t *testing.T, cfg Config) *Renderer {
	t.Helper()
	if cfg.PageWidth == 0 {
		cfg.PageWidth = 40
	}
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestRenderScalar(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 20})

	lines, err := r.RenderBlock(document.Scalar{Value: "a short value"}, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}
	if len(lines) != 1 || lines[0] != "a short value" {
		t.Errorf("lines = %q, want [\"a short value\"]", lines)
	}
}

func TestRenderPreservedBreakFidelity(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 16})

	block := document.PreservedText{Lines: []string{
		"first stored line that wraps",
		"",
		"short",
		"tail",
	}}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	want := []string{
		"first stored",
		"line that wraps",
		"",
		"short",
		"tail",
	}
	assertLines(t, lines, want)
}

// Fitting stored lines keep their spacing verbatim: column alignment built
// with space runs and leading indentation must survive. Only an overlong
// line falls back to word-wrapping.
func TestRenderPreservedVerbatimSpacing(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 40})

	block := document.PreservedText{Lines: []string{
		"2.4.1  fix divider width rounding",
		"    indented art line",
		"this stored line is definitely wider than forty columns and wraps",
	}}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	want := []string{
		"2.4.1  fix divider width rounding",
		"    indented art line",
		"this stored line is definitely wider",
		"than forty columns and wraps",
	}
	assertLines(t, lines, want)
}

func TestRenderReflowParagraphs(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 24})

	block := document.ReflowText{Paragraphs: [][]string{
		{"the", "first", "paragraph", "repacks", "freely"},
		{"second", "paragraph"},
	}}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	want := []string{
		"the first paragraph",
		"repacks freely",
		"",
		"second paragraph",
	}
	assertLines(t, lines, want)
}

func TestRenderReflowZeroWords(t *testing.T) {
	r := newTestRenderer(t, Config{})

	lines, err := r.RenderBlock(document.ReflowText{}, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines = %q, want none", lines)
	}
}

// Joining the rendered lines and re-splitting must reproduce the original
// words in order: wrapping may move words between lines but never alter,
// drop, or reorder them.
func TestReflowWordPreservation(t *testing.T) {
	words := strings.Fields("pack my box with five dozen liquor jugs and then " +
		"do it again for good measure just to be sure")
	r := newTestRenderer(t, Config{PageWidth: 18})

	lines, err := r.RenderBlock(document.ReflowText{Paragraphs: [][]string{words}}, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	got := strings.Fields(strings.Join(lines, " "))
	if len(got) != len(words) {
		t.Fatalf("word count = %d, want %d", len(got), len(words))
	}
	for i := range got {
		if got[i] != words[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], words[i])
		}
	}
}

func TestRenderListHangingIndent(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 16})

	block := document.List{Items: []document.Block{
		document.Scalar{Value: "one short"},
		document.Scalar{Value: "a longer item that wraps"},
	}}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	want := []string{
		"- one short",
		"- a longer item",
		"  that wraps",
	}
	assertLines(t, lines, want)
}

// The continuation lines of a wrapped map value align to the column
// immediately following "key: " on the first line: for key "Temp" that is
// len("Temp: ") = 6 leading spaces.
func TestRenderMapIndentationAlignment(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 20})

	block := document.Map{Entries: []document.MapEntry{
		{Key: "Temp", Value: document.Scalar{Value: "a value long enough to wrap"}},
	}}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	if len(lines) < 2 {
		t.Fatalf("lines = %q, want at least 2", lines)
	}
	if !strings.HasPrefix(lines[0], "Temp: ") {
		t.Errorf("first line = %q, want prefix %q", lines[0], "Temp: ")
	}
	for _, cont := range lines[1:] {
		lead := len(cont) - len(strings.TrimLeft(cont, " "))
		if lead != 6 {
			t.Errorf("continuation lead = %d (%q), want 6", lead, cont)
		}
	}
}

// Each entry's continuation margin is proportional to its own key length,
// not globally uniform.
func TestRenderMapPerEntryMargins(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 22})

	block := document.Map{Entries: []document.MapEntry{
		{Key: "BPM", Value: document.Scalar{Value: "one two three four five"}},
		{Key: "Mapper", Value: document.Scalar{Value: "one two three four five"}},
	}}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	var leads []int
	for _, l := range lines {
		if strings.HasPrefix(l, " ") {
			leads = append(leads, len(l)-len(strings.TrimLeft(l, " ")))
		}
	}
	for _, lead := range leads {
		if lead != len("BPM: ") && lead != len("Mapper: ") {
			t.Errorf("continuation lead = %d, want %d or %d", lead, len("BPM: "), len("Mapper: "))
		}
	}
}

// A map value that is itself a list renders the key on its own line and
// advances both margins additively through the nesting.
func TestRenderMapNestedContainer(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 30})

	block := document.Map{Entries: []document.MapEntry{
		{Key: "Links", Value: document.List{Items: []document.Block{
			document.Scalar{Value: "first"},
			document.Scalar{Value: "second"},
		}}},
	}}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	want := []string{
		"Links:",
		"       - first",
		"       - second",
	}
	assertLines(t, lines, want)
}

func TestRenderSubsection(t *testing.T) {
	r := newTestRenderer(t, Config{
		PageWidth:        20,
		SubsectionPrefix: "--[",
		SubsectionSuffix: "]--",
	})

	block := document.Subsection{
		Label:     "Links",
		Alignment: document.AlignCenter,
		Body: []document.Block{
			document.Scalar{Value: "content"},
		},
	}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	want := []string{
		"   --[ Links ]--    ",
		"  content",
	}
	assertLines(t, lines, want)
}

// Margins are display cells, so a key with multi-byte runes must not shift
// continuation lines by its extra bytes.
func TestRenderMapWideKey(t *testing.T) {
	r := newTestRenderer(t, Config{PageWidth: 20})

	block := document.Map{Entries: []document.MapEntry{
		{Key: "resumé", Value: document.Scalar{Value: "alpha beta gamma delta"}},
	}}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	want := []string{
		"resumé: alpha beta",
		"        gamma delta",
	}
	assertLines(t, lines, want)
}

func TestRenderCredits(t *testing.T) {
	r := newTestRenderer(t, Config{
		PageWidth:        24,
		SubsectionPrefix: "--[",
		SubsectionSuffix: "]--",
		CreditsPrefix:    "-=",
		CreditsSuffix:    "=-",
	})

	block := document.Credits{
		Label:     "Greetz",
		Alignment: document.AlignCenter,
		Primary:   []string{"alice", "bob"},
		Secondary: []string{"carol", "dave", "erin"},
	}
	lines, err := r.RenderBlock(block, Indent{})
	if err != nil {
		t.Fatalf("RenderBlock() error = %v", err)
	}

	want := []string{
		"     --[ Greetz ]--     ",
		"",
		"      -= alice =-       ",
		"       -= bob =-        ",
		"",
		" carol, dave, and erin  ",
	}
	assertLines(t, lines, want)
}

func TestJoinNames(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"alice"}, "alice"},
		{[]string{"alice", "bob"}, "alice, and bob"},
		{[]string{"alice", "bob", "carol"}, "alice, bob, and carol"},
	}
	for _, tt := range tests {
		if got := joinNames(tt.names); got != tt.want {
			t.Errorf("joinNames(%v) = %q, want %q", tt.names, got, tt.want)
		}
	}
}

func TestRenderMaxDepth(t *testing.T) {
	nested := func(levels int) document.Block {
		b := document.Block(document.Scalar{Value: "leaf"})
		for i := 0; i < levels-1; i++ {
			b = document.Subsection{Label: "deep", Body: []document.Block{b}}
		}
		return b
	}

	r := newTestRenderer(t, Config{PageWidth: 60, MaxDepth: 4})

	// Nesting up to the limit renders.
	if _, err := r.RenderBlock(nested(4), Indent{}); err != nil {
		t.Errorf("RenderBlock(depth 4) error = %v, want nil", err)
	}

	// One level past the limit fails with MAX_DEPTH_EXCEEDED.
	_, err := r.RenderBlock(nested(5), Indent{})
	if !errors.Is(err, errors.ErrCodeMaxDepthExceeded) {
		t.Errorf("RenderBlock(depth 5) error = %v, want %v", err, errors.ErrCodeMaxDepthExceeded)
	}
}

func TestRenderNegativeMargin(t *testing.T) {
	r := newTestRenderer(t, Config{})

	_, err := r.RenderBlock(document.Scalar{Value: "x"}, Indent{Left: -1})
	if !errors.Is(err, errors.ErrCodeInvalidMargin) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidMargin)
	}
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
