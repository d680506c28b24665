package gen

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/cardfold/pkg/card/layout"
	"github.com/matzehuels/cardfold/pkg/errors"
	"github.com/matzehuels/cardfold/pkg/httputil"
)

const (
	downloadTimeout = 30 * time.Second
	maxArtworkBytes = 32 << 20 // 32 MiB
)

// Artwork holds a decoded front image and the intrinsic dimensions the
// layout engine needs for aspect-fit placement.
type Artwork struct {
	Data []byte
	Spec layout.ImageSpec
}

// DecodeArtwork decodes image bytes and surfaces their intrinsic
// dimensions. It accepts any format imaging can decode (PNG, JPEG,
// GIF, TIFF, BMP).
func DecodeArtwork(data []byte) (*Artwork, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidImageSpec, err, "decoding artwork")
	}
	bounds := img.Bounds()
	return &Artwork{
		Data: data,
		Spec: layout.ImageSpec{
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
		},
	}, nil
}

// FetchArtwork resolves a GeneratedImage to decoded artwork, downloading
// the image when the provider returned a URL instead of inline bytes.
func FetchArtwork(ctx context.Context, img *GeneratedImage) (*Artwork, error) {
	if img == nil {
		return nil, errors.New(errors.ErrCodeInvalidImageSpec, "no generated image")
	}
	if len(img.Data) > 0 {
		return DecodeArtwork(img.Data)
	}
	if err := errors.ValidateURL(img.URL); err != nil {
		return nil, err
	}

	data, err := downloadArtwork(ctx, img.URL)
	if err != nil {
		return nil, err
	}
	return DecodeArtwork(data)
}

func downloadArtwork(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: downloadTimeout}

	var data []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "downloading artwork")}
		}
		defer resp.Body.Close()

		if err := checkStatus(resp.StatusCode, url); err != nil {
			return err
		}
		data, err = io.ReadAll(io.LimitReader(resp.Body, maxArtworkBytes))
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
