// glyphpad widens a bitmap font spritesheet by inserting blank columns around
// and between its glyph cells, so that every glyph gets room to breathe when
// the sheet is sampled by a renderer.
package main

import (
	"errors"
	"fmt"
)

var (
	ErrShape  = errors.New("glyphpad: buffer does not match layout")
	ErrLayout = errors.New("glyphpad: invalid layout")
)

// Layout describes a grayscale glyph sheet and the padding to insert into it.
// All sizes are in bytes, one byte per pixel.
type Layout struct {
	// width of an input row
	Width int
	// number of rows
	Height int
	// width of one glyph cell; a gutter starts every Cell columns
	Cell int
	// zero bytes before the first and after the last column of a row
	Margin int
	// zero bytes between neighbouring cells
	Gutter int
}

// SpleenLayout is the 16 glyphs x 8px sheet of the spleen font.
var SpleenLayout = Layout{
	Width:  128,
	Height: 10464,
	Cell:   8,
	Margin: 4,
	Gutter: 8,
}

func (l Layout) Validate() error {
	switch {
	case l.Width <= 0 || l.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrLayout, l.Width, l.Height)
	case l.Cell <= 0:
		return fmt.Errorf("%w: cell width %d", ErrLayout, l.Cell)
	case l.Width%l.Cell != 0:
		return fmt.Errorf("%w: width %d is not a multiple of cell width %d", ErrLayout, l.Width, l.Cell)
	case l.Margin < 0 || l.Gutter < 0:
		return fmt.Errorf("%w: negative padding (margin %d, gutter %d)", ErrLayout, l.Margin, l.Gutter)
	}
	return nil
}

// OutWidth returns the width of a padded row.
func (l Layout) OutWidth() int {
	return l.Margin + l.Width + (l.Width/l.Cell-1)*l.Gutter + l.Margin
}

// InLen and OutLen return the buffer sizes before and after padding.
func (l Layout) InLen() int  { return l.Width * l.Height }
func (l Layout) OutLen() int { return l.OutWidth() * l.Height }

// PadRow appends the padded form of row to dst. row must be l.Width bytes.
//
// Column 0 is preceded by the left margin rather than a gutter, and the right
// margin follows the last column.
func (l Layout) PadRow(dst, row []byte) []byte {
	for col, b := range row {
		switch {
		case col == 0:
			dst = appendZeros(dst, l.Margin)
		case col%l.Cell == 0:
			dst = appendZeros(dst, l.Gutter)
		}
		dst = append(dst, b)
	}
	return appendZeros(dst, l.Margin)
}

// Pad returns a new buffer holding every row of src padded according to l.
// src must hold exactly l.Width*l.Height bytes; nothing is produced otherwise.
func Pad(src []byte, l Layout) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if len(src) != l.InLen() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d (%dx%d)", ErrShape, len(src), l.InLen(), l.Width, l.Height)
	}

	dst := make([]byte, 0, l.OutLen())
	for off := 0; off < len(src); off += l.Width {
		dst = l.PadRow(dst, src[off:off+l.Width])
	}
	return dst, nil
}

func appendZeros(dst []byte, n int) []byte {
	return append(dst, make([]byte, n)...)
}
