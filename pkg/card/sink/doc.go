// Package sink provides output format renderers for card layout plans.
//
// # Overview
//
// A "sink" transforms a computed [layout.Plan] into a final output format.
// This package provides renderers for:
//
//   - SVG: One document per card page, styled and print-accurate
//   - JSON: Layout data export for external tools
//   - PDF: Print-ready two-page output (requires rsvg-convert)
//   - PNG: Raster preview of a single page (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] renders one page of the bifold card. Page 1 (outside)
// carries the back panel and the front-cover artwork; page 2 (inside)
// carries the flourish strokes and the message block or writing guides.
//
// Basic usage:
//
//	svg, err := sink.RenderSVG(plan, sink.PageOutside,
//	    sink.WithArtwork(dataURI),
//	    sink.WithBranding("made with cardfold"),
//	    sink.WithStyle(styles.NewHanddrawn(seed)),
//	)
//
// # SVG Options
//
//   - [WithArtwork]: Front-cover bitmap reference (file href or data URI)
//   - [WithBranding]: Back-panel branding text
//   - [WithShareQR]: QR code on the back panel linking to a share URL
//   - [WithStyle]: Visual style ([styles.Simple] or [styles.NewHanddrawn])
//   - [WithDPI]: Output resolution (default 96 user units per page unit)
//
// # PDF and PNG Output
//
// [RenderPDF] renders both pages and converts them into a single
// multi-page PDF via [render.ToPDF]; [RenderPNG] rasterizes one page via
// [render.ToPNG]. Both require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # JSON Output
//
// [RenderJSON] exports the complete plan with a schema version, and
// [ParseJSON] re-imports it, enabling caching of layout computations and
// round-trip rendering.
//
// [layout.Plan]: github.com/matzehuels/cardfold/pkg/card/layout.Plan
// [styles.Simple]: github.com/matzehuels/cardfold/pkg/card/styles.Simple
// [styles.NewHanddrawn]: github.com/matzehuels/cardfold/pkg/card/styles.NewHanddrawn
// [render.ToPDF]: github.com/matzehuels/cardfold/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/cardfold/pkg/render.ToPNG
package sink
