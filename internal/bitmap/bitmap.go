// Package bitmap provides a compact one-bit-per-pixel image.
package bitmap

import "image"

// Reader is a view into a bitmap.
type Reader interface {
	At(x, y int) bool
	Bounds() image.Rectangle
}

// Bitmap is a compact bitmap image with a two-color palette.
type Bitmap struct {
	Bytes  []byte
	Stride int
	Rect   image.Rectangle
}

// New returns an all-clear bitmap covering the given rectangle.
func New(r image.Rectangle) *Bitmap {
	r = r.Canon()
	w, h := r.Dx(), r.Dy()
	stride := (w + 7) / 8
	return &Bitmap{
		Bytes:  make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// Bounds returns the bounds of the bitmap
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

// maskIndex returns the bit mask and byte index for the bit at a given point.
func (b *Bitmap) maskIndex(x, y int) (byte, int) {
	x -= b.Rect.Min.X
	y -= b.Rect.Min.Y
	return 1 << uint(x&07), y*b.Stride + x>>3
}

// At returns whether the bit is set at a point; points outside the bitmap
// are clear.
func (b *Bitmap) At(x, y int) bool {
	if !image.Pt(x, y).In(b.Rect) {
		return false
	}

	mask, index := b.maskIndex(x, y)
	return b.Bytes[index]&mask != 0
}

// Set sets or resets the bit at a point; points outside the bitmap are
// ignored.
func (b *Bitmap) Set(x, y int, bit bool) {
	if !image.Pt(x, y).In(b.Rect) {
		return
	}

	mask, index := b.maskIndex(x, y)
	if bit {
		b.Bytes[index] |= mask
	} else {
		b.Bytes[index] &^= mask
	}
}
