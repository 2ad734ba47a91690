// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package recognize

import (
	"image"

	"rescribe.xyz/cistercian"
)

// minGlyphSize is the smallest bounding box accepted as a located
// glyph; anything smaller falls back to treating the whole mask as
// the glyph.
const minGlyphSize = 20

// stemClearance is the half width of the column band around the
// located stem that is blanked before quadrant analysis, wide enough
// to cover the stem line plus the blurring and dilation it picks up
// during binarization.
const stemClearance = 6

// Structure is the located glyph skeleton: the stem line and the four
// quadrant rectangles around its centre.
type Structure struct {
	Stem      [2]image.Point
	Quadrants map[cistercian.Quadrant]image.Rectangle
}

// Locate finds the glyph's bounding region in an ink mask and derives
// the stem line and quadrant rectangles from it. It never fails: a
// mask with no ink, or with an implausibly small ink region, is
// treated as holding a glyph filling the whole mask.
func Locate(mask *image.Gray) Structure {
	box := image.Rectangle{}
	for _, c := range findContours(mask) {
		box = box.Union(c.bounds)
	}
	if box.Dx() < minGlyphSize || box.Dy() < minGlyphSize {
		box = mask.Bounds()
	}

	centerX := box.Min.X + box.Dx()/2
	centerY := box.Min.Y + box.Dy()/2

	return Structure{
		Stem: [2]image.Point{{centerX, box.Min.Y}, {centerX, box.Max.Y}},
		Quadrants: map[cistercian.Quadrant]image.Rectangle{
			cistercian.TopLeft:     image.Rect(box.Min.X, box.Min.Y, centerX, centerY),
			cistercian.TopRight:    image.Rect(centerX, box.Min.Y, box.Max.X, centerY),
			cistercian.BottomLeft:  image.Rect(box.Min.X, centerY, centerX, box.Max.Y),
			cistercian.BottomRight: image.Rect(centerX, centerY, box.Max.X, box.Max.Y),
		},
	}
}

// clearStem blanks a narrow column band along the located stem so the
// stem's own ink does not show up as a vertical feature in every
// quadrant. Digit strokes extend well past the band, so at most their
// innermost few pixels are lost.
func clearStem(mask *image.Gray, s Structure) {
	b := mask.Bounds()
	for x := s.Stem[0].X - stemClearance; x <= s.Stem[0].X+stemClearance; x++ {
		if x < b.Min.X || x >= b.Max.X {
			continue
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			mask.Pix[(y-b.Min.Y)*mask.Stride+(x-b.Min.X)] = 0
		}
	}
}
