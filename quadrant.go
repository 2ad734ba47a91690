// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package cistercian

// Quadrant is one of the four positions around the stem, each of which
// encodes one decimal place of the number.
type Quadrant int

const (
	TopRight Quadrant = iota // units
	TopLeft                  // tens
	BottomRight              // hundreds
	BottomLeft               // thousands
)

// Quadrants lists all four quadrants in decimal place order, from
// units up to thousands.
var Quadrants = [4]Quadrant{TopRight, TopLeft, BottomRight, BottomLeft}

func (q Quadrant) String() string {
	switch q {
	case TopRight:
		return "top-right"
	case TopLeft:
		return "top-left"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	}
	return "unknown"
}

// Place returns the name of the decimal place the quadrant encodes.
func (q Quadrant) Place() string {
	switch q {
	case TopRight:
		return "units"
	case TopLeft:
		return "tens"
	case BottomRight:
		return "hundreds"
	case BottomLeft:
		return "thousands"
	}
	return "unknown"
}

// XDir is the horizontal direction sign for stroke geometry in the
// quadrant: +1 for the right quadrants, -1 for the left.
func (q Quadrant) XDir() int {
	if q == TopRight || q == BottomRight {
		return 1
	}
	return -1
}

// YDir is the vertical direction sign for stroke geometry in the
// quadrant: +1 for the bottom quadrants, -1 for the top.
func (q Quadrant) YDir() int {
	if q == BottomRight || q == BottomLeft {
		return 1
	}
	return -1
}
