package main

import (
	"fmt"
	"os"
)

const (
	inputPath  = "data/font/spleen.png"
	outputPath = "out.png"
)

func main() {
	n, err := padSheet(inputPath, outputPath, SpleenLayout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(n)
}

// padSheet pads the sheet at inPath and writes it to outPath as PNG. It
// returns the length of the padded pixel buffer.
func padSheet(inPath, outPath string, l Layout) (int, error) {
	src, err := LoadGray(inPath)
	if err != nil {
		return 0, fmt.Errorf("load error: %w", err)
	}

	if b := src.Bounds(); b.Dx() != l.Width || b.Dy() != l.Height {
		return 0, fmt.Errorf("pad error: %w: %s is %dx%d, want %dx%d", ErrShape, inPath, b.Dx(), b.Dy(), l.Width, l.Height)
	}

	padded, err := Pad(src.Pix, l)
	if err != nil {
		return 0, fmt.Errorf("pad error: %w", err)
	}

	dst, err := GrayFromBytes(padded, l.OutWidth(), l.Height)
	if err != nil {
		return 0, fmt.Errorf("pad error: %w", err)
	}

	if err := SavePNG(outPath, dst); err != nil {
		return 0, fmt.Errorf("save error: %w", err)
	}
	return len(padded), nil
}
