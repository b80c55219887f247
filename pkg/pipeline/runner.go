package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nfogen/pkg/document"
	"github.com/matzehuels/nfogen/pkg/observability"
	"github.com/matzehuels/nfogen/pkg/render"
	"github.com/matzehuels/nfogen/pkg/style"
	"github.com/matzehuels/nfogen/pkg/template"
)

// Runner executes the parse → resolve → render pipeline.
//
// The Runner is stateless apart from its logger; multiple goroutines can
// safely share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete pipeline. Any stage error aborts the run; no
// partial output is produced.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	result := &Result{}

	parseStart := time.Now()
	doc, err := r.Parse(ctx, opts)
	result.Stats.ParseTime = time.Since(parseStart)
	sections := 0
	if doc != nil {
		sections = len(doc.Sections)
	}
	observability.Pipeline().OnParseComplete(ctx, opts.source(),
		sections, result.Stats.ParseTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.SectionCount = len(doc.Sections)
	result.Stats.BlockCount = doc.BlockCount()

	logger.Info("parsed template",
		"source", opts.source(),
		"sections", result.Stats.SectionCount,
		"blocks", result.Stats.BlockCount,
		"duration", result.Stats.ParseTime)

	resolveStart := time.Now()
	styleName, cfg, err := r.Resolve(ctx, doc, opts)
	result.Stats.ResolveTime = time.Since(resolveStart)
	observability.Pipeline().OnResolveComplete(ctx, styleName, opts.Header,
		result.Stats.ResolveTime, err)
	if err != nil {
		return nil, err
	}
	result.Style = styleName
	result.Config = cfg

	logger.Info("resolved style",
		"style", styleName,
		"page_width", cfg.PageWidth,
		"duration", result.Stats.ResolveTime)

	observability.Pipeline().OnRenderStart(ctx, styleName, result.Stats.SectionCount)
	renderStart := time.Now()
	text, err := r.Render(ctx, doc, cfg)
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.LineCount = strings.Count(text, "\n")
	observability.Pipeline().OnRenderComplete(ctx, styleName,
		result.Stats.LineCount, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Text = text

	logger.Info("rendered document",
		"lines", result.Stats.LineCount,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse decodes the template named by opts into a content tree.
func (r *Runner) Parse(ctx context.Context, opts Options) (*document.Document, error) {
	observability.Pipeline().OnParseStart(ctx, opts.source())
	if len(opts.Source) > 0 {
		return template.Parse(opts.Source)
	}
	return template.ParseFile(opts.TemplatePath)
}

// Resolve builds the renderer configuration for doc, applying the
// flag > template > style-default precedence to the style, header, and
// header alignment. It returns the name of the style that won.
func (r *Runner) Resolve(ctx context.Context, doc *document.Document, opts Options) (string, render.Config, error) {
	styleName := firstNonEmpty(opts.Style, doc.Meta.Style, style.DefaultStyle)
	header := firstNonEmpty(opts.Header, doc.Meta.Header)
	alignment := firstNonEmpty(opts.HeaderAlignment, doc.Meta.HeaderAlignment)

	observability.Pipeline().OnResolveStart(ctx, styleName, header)

	catalog, err := style.Builtin()
	if err != nil {
		return styleName, render.Config{}, err
	}
	if opts.CatalogDir != "" {
		if err := catalog.LoadDir(opts.CatalogDir); err != nil {
			return styleName, render.Config{}, err
		}
		observability.Catalog().OnCatalogLoad(ctx, opts.CatalogDir,
			len(catalog.Styles()), len(catalog.Headers()))
	}

	cfg, err := catalog.Resolve(styleName, header, alignment)
	if err != nil {
		return styleName, render.Config{}, err
	}
	return styleName, cfg, nil
}

// Render lays the content tree out as text using cfg.
func (r *Runner) Render(ctx context.Context, doc *document.Document, cfg render.Config) (string, error) {
	renderer, err := render.New(cfg)
	if err != nil {
		return "", err
	}
	return renderer.Render(doc)
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
