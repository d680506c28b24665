// Package render provides SVG-to-PDF/PNG conversion for card output.
//
// The conversion shells out to rsvg-convert (from librsvg), which both the
// [sink] renderers use for print-ready export. A bifold card spans two
// pages, so [ToPDF] accepts multiple SVG documents and emits a multi-page
// PDF.
//
// [sink]: github.com/matzehuels/cardfold/pkg/card/sink
package render

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ToPDF converts one SVG document per page into a single PDF using
// rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svgs ...[]byte) ([]byte, error) {
	if len(svgs) == 0 {
		return nil, fmt.Errorf("no pages to convert")
	}
	if len(svgs) == 1 {
		return rsvgConvert(svgs[0], "pdf")
	}

	// rsvg-convert only builds multi-page PDFs from file arguments.
	dir, err := os.MkdirTemp("", "cardfold-pdf-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	paths := make([]string, len(svgs))
	for i, svg := range svgs {
		paths[i] = filepath.Join(dir, fmt.Sprintf("page-%d.svg", i+1))
		if err := os.WriteFile(paths[i], svg, 0o644); err != nil {
			return nil, err
		}
	}
	return rsvgConvertFiles("pdf", paths)
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale
// factor. Scale of 2.0 produces a 2x resolution image.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert shells out to rsvg-convert, feeding a single SVG on stdin.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	args := append([]string{"-f", format}, extraArgs...)
	cmd, err := rsvgCommand(args)
	if err != nil {
		return nil, err
	}
	cmd.Stdin = bytes.NewReader(svg)
	return runConvert(cmd)
}

// rsvgConvertFiles shells out to rsvg-convert with file arguments.
func rsvgConvertFiles(format string, paths []string) ([]byte, error) {
	args := append([]string{"-f", format}, paths...)
	cmd, err := rsvgCommand(args)
	if err != nil {
		return nil, err
	}
	return runConvert(cmd)
}

func rsvgCommand(args []string) (*exec.Cmd, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("PDF/PNG export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}
	return exec.Command("rsvg-convert", args...), nil
}

func runConvert(cmd *exec.Cmd) ([]byte, error) {
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
