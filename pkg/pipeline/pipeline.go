// Package pipeline provides the core rendering pipeline for nfogen.
//
// This package implements the complete parse → resolve → render pipeline
// used by the CLI. By centralizing this logic, all entry points share the
// same staging, logging, and precedence behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: decode the YAML template into the typed content tree
//  2. Resolve: combine the named style, header art, and alignment override
//     into a renderer configuration
//  3. Render: lay the content tree out as fixed-width text
//
// Each stage can be run independently or as part of the complete pipeline.
// Rendering is pure, so there is no caching: re-running with identical
// input produces identical output at negligible cost.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    TemplatePath: "release.yaml",
//	    Style:        "classic",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Text)
package pipeline

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nfogen/pkg/errors"
	"github.com/matzehuels/nfogen/pkg/render"
)

// Options configures a pipeline run.
//
// Style, Header, and HeaderAlignment are overrides: an empty value defers
// to the template's metadata, which in turn defers to the style's defaults.
type Options struct {
	// TemplatePath is the template file to render. Ignored when Source is
	// set.
	TemplatePath string

	// Source is in-memory template content. Takes precedence over
	// TemplatePath.
	Source []byte

	// Style names the layout style. Empty defers to the template, then to
	// the default style.
	Style string

	// Header names the header art, replacing the style's choice.
	Header string

	// HeaderAlignment overrides the header alignment only
	// (left/center/right).
	HeaderAlignment string

	// CatalogDir is an optional directory of user styles and headers
	// layered over the built-in catalog.
	CatalogDir string

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// Validate checks that the options name a template source and carry
// well-formed override values.
func (o *Options) Validate() error {
	if len(o.Source) == 0 && strings.TrimSpace(o.TemplatePath) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "no template given")
	}
	if err := errors.ValidateAlignment(o.HeaderAlignment); err != nil {
		return err
	}
	if o.Style != "" {
		if err := errors.ValidateCatalogName(o.Style); err != nil {
			return err
		}
	}
	if o.Header != "" {
		if err := errors.ValidateCatalogName(o.Header); err != nil {
			return err
		}
	}
	return nil
}

// source returns a printable name for the template origin, for logs and
// hook events.
func (o *Options) source() string {
	if len(o.Source) > 0 {
		return "<memory>"
	}
	return o.TemplatePath
}

// Stats captures per-stage timings and document shape for one run.
type Stats struct {
	ParseTime   time.Duration
	ResolveTime time.Duration
	RenderTime  time.Duration

	SectionCount int
	BlockCount   int
	LineCount    int
}

// Result is the outcome of a complete pipeline run.
type Result struct {
	// Text is the rendered document, terminated by exactly one newline.
	Text string

	// Style is the name of the style that was resolved.
	Style string

	// Config is the resolved renderer configuration.
	Config render.Config

	// Stats holds stage timings and document counts.
	Stats Stats
}
