// Package braille renders bitmaps as text, packing each 2x4 block of pixels
// into one braille glyph.
package braille

import (
	"image"
	"strings"

	"github.com/borkshop/quadrant/internal/bitmap"
)

// CellSize is the number of pixels covered by one glyph.
var CellSize = image.Pt(2, 4)

// Blank is the rune written for a cell with no pixels set.
const Blank = ' '

// BitmapAt returns the braille glyph that coresponds to the 2x4 grid at the
// given point in a bitmap, or Blank when none of its bits are set.
func BitmapAt(src bitmap.Reader, sp image.Point) rune {
	var r rune
	if src.At(sp.X, sp.Y) {
		r |= 0x1
	}
	if src.At(sp.X, sp.Y+1) {
		r |= 0x2
	}
	if src.At(sp.X, sp.Y+2) {
		r |= 0x4
	}
	if src.At(sp.X, sp.Y+3) {
		r |= 0x40
	}
	if src.At(sp.X+1, sp.Y) {
		r |= 0x8
	}
	if src.At(sp.X+1, sp.Y+1) {
		r |= 0x10
	}
	if src.At(sp.X+1, sp.Y+2) {
		r |= 0x20
	}
	if src.At(sp.X+1, sp.Y+3) {
		r |= 0x80
	}
	if r == 0 {
		return Blank
	}
	return 0x2800 + r
}

// Bounds maps a rectangle of text cells to the bitmap pixels they cover.
func Bounds(cells image.Rectangle) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(cells.Min.X*CellSize.X, cells.Min.Y*CellSize.Y),
		Max: image.Pt(cells.Max.X*CellSize.X, cells.Max.Y*CellSize.Y),
	}
}

// Lines renders every cell covering the source bitmap, one string per row of
// cells, with trailing blanks trimmed.
func Lines(src bitmap.Reader) []string {
	r := src.Bounds()
	cols := (r.Dx() + CellSize.X - 1) / CellSize.X
	rows := (r.Dy() + CellSize.Y - 1) / CellSize.Y

	lines := make([]string, rows)
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		sb.Reset()
		for x := 0; x < cols; x++ {
			sp := r.Min.Add(image.Pt(x*CellSize.X, y*CellSize.Y))
			sb.WriteRune(BitmapAt(src, sp))
		}
		lines[y] = strings.TrimRight(sb.String(), string(Blank))
	}
	return lines
}
