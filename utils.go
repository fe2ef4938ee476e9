package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

var ErrColorMode = errors.New("glyphpad: image is not grayscale")

// IsGray reports whether img stores one gray sample per pixel. Paletted
// images count when every palette entry is an opaque gray, which is how 8-bit
// grayscale BMPs decode.
func IsGray(img image.Image) bool {
	m := img.ColorModel()
	if p, ok := m.(color.Palette); ok {
		return isGrayPalette(p)
	}
	return m == color.GrayModel || m == color.Gray16Model
}

func isGrayPalette(p color.Palette) bool {
	if len(p) == 0 {
		return false
	}
	for _, c := range p {
		r, g, b, a := c.RGBA()
		if r != g || g != b || a != 0xffff {
			return false
		}
	}
	return true
}

// ImageToGray copies any image.Image into an 8-bit *image.Gray with bounds
// starting at (0,0) and Stride equal to its width.
func ImageToGray(src image.Image) *image.Gray {
	b := src.Bounds()
	if g, ok := src.(*image.Gray); ok && b.Min == (image.Point{}) && g.Stride == b.Dx() {
		return g
	}
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// GrayFromBytes wraps pix, laid out row by row, as a w x h gray image.
func GrayFromBytes(pix []byte, w, h int) (*image.Gray, error) {
	if w <= 0 || h <= 0 || len(pix) != w*h {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d image", ErrShape, len(pix), w, h)
	}
	return &image.Gray{
		Pix:    pix,
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

// LoadGray decodes the image at path and returns its samples as a tight
// 8-bit gray buffer.
func LoadGray(path string) (*image.Gray, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	img, format, err := image.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if !IsGray(img) {
		return nil, fmt.Errorf("%w: %s (%s)", ErrColorMode, path, format)
	}
	return ImageToGray(img), nil
}

// SavePNG encodes img as PNG and writes it to path, replacing any existing
// file. The file is only touched once encoding has succeeded.
func SavePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
