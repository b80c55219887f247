// Package pkg provides the core libraries for nfogen document rendering.
//
// # Overview
//
// nfogen turns structured YAML templates into fixed-width plain-text
// documents. The pkg directory is organized into five main areas:
//
//  1. [document] - The typed content tree (sections, blocks, metadata)
//  2. [template] - YAML decoding into the content tree
//  3. [style] - Style and header catalogs, resolved into render configs
//  4. [render] - The fixed-width layout engine
//  5. [pipeline] - Orchestration (parse → resolve → render)
//
// Supporting packages: [errors] for coded errors, [output] for atomic file
// writes, [observability] for instrumentation hooks, and [buildinfo] for
// version stamping.
//
// # Architecture
//
// The typical data flow through nfogen:
//
//	template.yaml
//	     ↓
//	[template] package (decode into the content tree)
//	     ↓
//	[style] package (resolve style + header into a render config)
//	     ↓
//	[render] package (lay blocks out as fixed-width lines)
//	     ↓
//	plain-text document
//
// # Quick Start
//
// Render a template through the pipeline:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/nfogen/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    TemplatePath: "release.yaml",
//	    Style:        "classic",
//	})
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(result.Text)
package pkg
