package pipeline

import (
	"encoding/base64"
	"net/http"

	"github.com/matzehuels/cardfold/pkg/card/layout"
	"github.com/matzehuels/cardfold/pkg/card/sink"
	"github.com/matzehuels/cardfold/pkg/card/styles"
	"github.com/matzehuels/cardfold/pkg/gen"
)

// InsideSuffix marks the inside-page artifact of a per-page format.
const InsideSuffix = "-inside"

// ArtifactNames expands output formats to the artifact keys they
// produce. SVG and PNG render one artifact per card page; PDF bundles
// both pages and JSON exports the plan, so those stay single artifacts.
func ArtifactNames(formats []string) []string {
	var names []string
	for _, format := range formats {
		names = append(names, format)
		if format == FormatSVG || format == FormatPNG {
			names = append(names, format+InsideSuffix)
		}
	}
	return names
}

// RenderFromPlan renders all requested formats from a computed plan.
// The artwork may be nil, in which case the front panel shows only the
// placement frame.
func RenderFromPlan(plan *layout.Plan, artwork *gen.Artwork, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()

	svgOpts := svgOptions(artwork, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			outside, err := sink.RenderSVG(plan, sink.PageOutside, svgOpts...)
			if err != nil {
				return nil, err
			}
			inside, err := sink.RenderSVG(plan, sink.PageInside, svgOpts...)
			if err != nil {
				return nil, err
			}
			artifacts[FormatSVG] = outside
			artifacts[FormatSVG+InsideSuffix] = inside

		case FormatPNG:
			pngOpts := []sink.PNGOption{
				sink.WithScale(opts.Scale),
				sink.WithPNGSVGOptions(svgOpts...),
			}
			outside, err := sink.RenderPNG(plan, sink.PageOutside, pngOpts...)
			if err != nil {
				return nil, err
			}
			inside, err := sink.RenderPNG(plan, sink.PageInside, pngOpts...)
			if err != nil {
				return nil, err
			}
			artifacts[FormatPNG] = outside
			artifacts[FormatPNG+InsideSuffix] = inside

		case FormatPDF:
			data, err := sink.RenderPDF(plan, svgOpts...)
			if err != nil {
				return nil, err
			}
			artifacts[FormatPDF] = data

		case FormatJSON:
			data, err := sink.RenderJSON(plan)
			if err != nil {
				return nil, err
			}
			artifacts[FormatJSON] = data

		default:
			if err := ValidateFormat(format); err != nil {
				return nil, err
			}
		}
	}
	return artifacts, nil
}

// svgOptions builds the sink options shared by SVG, PNG, and PDF output.
func svgOptions(artwork *gen.Artwork, opts Options) []sink.SVGOption {
	var style styles.Style
	if opts.Style == StyleSimple {
		style = styles.Simple{}
	} else {
		style = styles.NewHanddrawn(int64(opts.Seed))
	}

	svgOpts := []sink.SVGOption{
		sink.WithStyle(style),
		sink.WithBranding(opts.Branding),
	}
	if artwork != nil && len(artwork.Data) > 0 {
		svgOpts = append(svgOpts, sink.WithArtwork(artworkDataURI(artwork.Data)))
	}
	if opts.ShareURL != "" {
		svgOpts = append(svgOpts, sink.WithShareQR(opts.ShareURL))
	}
	return svgOpts
}

// artworkDataURI embeds image bytes as a data URI for self-contained SVGs.
func artworkDataURI(data []byte) string {
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
