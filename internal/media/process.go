// Package media turns uploaded gallery pictures into web-sized WebP files
// and stores them in an S3 compatible bucket.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const webpQuality = 82

var ErrUnsupportedImage = errors.New("media: unsupported image")

// Image is an encoded WebP picture ready for upload.
type Image struct {
	Data   []byte
	Width  int
	Height int
}

// Process decodes a JPEG, PNG or WebP picture, downscales it to at most
// maxWidth pixels wide keeping the aspect ratio and encodes it as WebP.
// The WebP decoder is registered with package image by the webp import.
func Process(r io.Reader, maxWidth int) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	img := resize(src, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	b := img.Bounds()
	return &Image{Data: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

func resize(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	height := b.Dy() * maxWidth / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
