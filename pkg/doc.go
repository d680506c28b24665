// Package pkg provides the core libraries for cardfold greeting card generation.
//
// # Overview
//
// Cardfold turns an occasion and a few words into a print-ready quarter-fold
// greeting card: the front artwork and inside message come from generative
// models, the geometry comes from a deterministic layout engine, and the
// output is a pair of printable pages that fold into a card. The pkg
// directory is organized into five main areas:
//
//  1. [card] - Domain logic (fold geometry, image fitting, text layout, rendering)
//  2. [gen] - Generative model clients (prompt construction, artwork fetch)
//  3. [cache], [history] - Persistence (response/artifact caching, card records)
//  4. [pipeline] - Orchestration (compose → layout → render)
//  5. [errors], [httputil], [observability] - Cross-cutting support
//
// # Architecture
//
// The typical data flow through cardfold:
//
//	Occasion + Art Style + Description
//	         ↓
//	gen: build prompts, call the image and text models
//	         ↓
//	card/layout: fold geometry, aspect-fit artwork, wrap and center the message
//	         ↓
//	card/sink: render both pages to SVG, PNG, PDF, or the plan as JSON
//	         ↓
//	Printable card (page 1 outside, page 2 inside)
//
// The [pipeline] package drives this flow with per-stage caching; the CLI
// and the HTTP API both sit on top of its Runner so behavior stays
// identical across entry points.
//
// # Determinism
//
// Everything below the model calls is deterministic: the same image
// dimensions, message, and page format always produce the same layout
// plan, and the same plan with the same seed always produces the same
// rendered output. Model responses are cached so a card can be re-rendered
// without repeating generation.
//
// [card]: github.com/matzehuels/cardfold/pkg/card
// [gen]: github.com/matzehuels/cardfold/pkg/gen
// [cache]: github.com/matzehuels/cardfold/pkg/cache
// [history]: github.com/matzehuels/cardfold/pkg/history
// [pipeline]: github.com/matzehuels/cardfold/pkg/pipeline
// [errors]: github.com/matzehuels/cardfold/pkg/errors
// [httputil]: github.com/matzehuels/cardfold/pkg/httputil
// [observability]: github.com/matzehuels/cardfold/pkg/observability
package pkg
