// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package cistercian

import "image"

// SymbolSize is how far a digit's strokes extend from the stem, in
// pixels.
const SymbolSize = 50

// StrokeKind says which way a stroke runs.
type StrokeKind int

const (
	Horizontal StrokeKind = iota
	Vertical
	Diagonal
)

func (k StrokeKind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	}
	return "unknown"
}

// MarshalText renders the kind as its name, so stroke lists serialise
// readably.
func (k StrokeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Stroke is one straight line segment of a digit's glyph.
type Stroke struct {
	Kind  StrokeKind  `json:"type"`
	Start image.Point `json:"start"`
	End   image.Point `json:"end"`
}

// Strokes returns the ordered line segments which draw digit (0-9) in
// quadrant q, anchored at origin on the stem. The geometry is mirrored
// into the quadrant by its direction signs; each stroke reaches at most
// SymbolSize pixels from the origin. Digit 0 has no strokes.
func Strokes(digit int, origin image.Point, q Quadrant) []Stroke {
	endX := origin.X + q.XDir()*SymbolSize
	endY := origin.Y - q.YDir()*SymbolSize

	horiz := func(a, b image.Point) Stroke { return Stroke{Horizontal, a, b} }
	vert := func(a, b image.Point) Stroke { return Stroke{Vertical, a, b} }
	diag := func(a, b image.Point) Stroke { return Stroke{Diagonal, a, b} }

	farX := image.Pt(endX, origin.Y)
	farY := image.Pt(origin.X, endY)
	farXY := image.Pt(endX, endY)

	switch digit {
	case 1:
		return []Stroke{horiz(origin, farX)}
	case 2:
		return []Stroke{horiz(origin, farX), vert(farX, farXY)}
	case 3:
		return []Stroke{diag(origin, farXY)}
	case 4:
		return []Stroke{diag(origin, farXY), vert(farXY, farX)}
	case 5:
		return []Stroke{diag(origin, farXY), horiz(farXY, farY)}
	case 6:
		return []Stroke{vert(origin, farY)}
	case 7:
		return []Stroke{vert(origin, farY), horiz(farY, farXY)}
	case 8:
		return []Stroke{horiz(origin, farX), vert(farX, farXY)}
	case 9:
		return []Stroke{horiz(origin, farX), vert(farX, farXY), horiz(farXY, farY)}
	}
	return nil
}
