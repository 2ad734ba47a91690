// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package recognize

import (
	"image"
	"log"
	"math"
)

// Feature thresholds for quadrant classification. These were tuned
// against glyphs rendered by this package and scanned examples;
// together with the rule order below they define the classifier, so
// changing any of them changes observable behaviour.
const (
	minInkSum        = 100  // intensity units below which a quadrant is empty
	minFillRatio     = 0.02 // fill below which a quadrant is empty
	horizontalAspect = 2.5  // bbox aspect above which a contour is a horizontal line
	verticalAspect   = 0.4  // bbox aspect below which a contour is a vertical line
	rectAspectLow    = 0.8
	rectAspectHigh   = 1.2
	rectMinAreaFrac  = 0.1  // of the quadrant area
	approxEpsFrac    = 0.02 // of the contour perimeter, for line approximation
)

// features is the shape evidence extracted from one quadrant.
type features struct {
	contours   int
	horizontal int
	vertical   int
	diagonal   int
	rectangles int
	fill       float64
}

// rules is the classification cascade: an ordered list of predicates,
// evaluated top to bottom with the first match winning. Several rules
// overlap on purpose (2/5 and 7/8 share feature space), so the order
// is the tie break and must not be changed.
var rules = []struct {
	digit int
	match func(f features) bool
}{
	{1, func(f features) bool {
		return f.horizontal >= 1 && f.vertical == 0 && f.diagonal == 0 && f.contours <= 2
	}},
	{2, func(f features) bool {
		return f.horizontal >= 1 && f.vertical >= 1 && f.fill < 0.2
	}},
	{3, func(f features) bool {
		return f.diagonal >= 1 && f.horizontal == 0 && f.vertical == 0
	}},
	{4, func(f features) bool {
		return f.diagonal >= 1 && f.horizontal >= 1
	}},
	{5, func(f features) bool {
		return f.horizontal >= 1 && f.vertical >= 1 && f.fill > 0.15
	}},
	{6, func(f features) bool {
		return f.vertical >= 1 && f.horizontal == 0 && f.diagonal == 0
	}},
	{7, func(f features) bool {
		return f.vertical >= 1 && f.horizontal >= 1 && f.contours <= 3
	}},
	{8, func(f features) bool {
		return f.horizontal >= 1 && f.vertical >= 1 && f.contours >= 2
	}},
	{9, func(f features) bool {
		return f.rectangles >= 1 || (f.fill > 0.25 && f.contours >= 3)
	}},
}

// Classify decides which digit the ink within region of mask shows.
// A degenerate or near-empty region is digit 0.
func Classify(mask *image.Gray, region image.Rectangle) int {
	return classifyQuadrant(mask, region, discard())
}

func classifyQuadrant(mask *image.Gray, region image.Rectangle, logger *log.Logger) int {
	crop, ok := cropRegion(mask, region)
	if !ok {
		return 0
	}
	if inkSum(crop) < minInkSum {
		return 0
	}

	f := analyse(crop)
	logger.Printf("quadrant %v: horiz=%d vert=%d diag=%d rect=%d contours=%d fill=%.2f",
		region, f.horizontal, f.vertical, f.diagonal, f.rectangles, f.contours, f.fill)

	if f.fill < minFillRatio || f.contours == 0 {
		return 0
	}
	for _, r := range rules {
		if r.match(f) {
			return r.digit
		}
	}

	// Second tier: no rule matched cleanly, so take the best guess
	// from whatever evidence there is.
	switch {
	case f.vertical >= 1:
		return 1
	case f.diagonal >= 1:
		return 2
	case f.horizontal >= 1:
		return 1
	case f.fill > 0.1:
		return 5
	}
	return 1
}

// analyse extracts shape features from a quadrant crop.
func analyse(crop *image.Gray) features {
	b := crop.Bounds()
	area := b.Dx() * b.Dy()

	var f features
	contours := findContours(crop)
	f.contours = len(contours)

	inked := 0
	for _, v := range crop.Pix {
		if v > 0 {
			inked++
		}
	}
	if area > 0 {
		f.fill = float64(inked) / float64(area)
	}

	for _, c := range contours {
		w, h := c.bounds.Dx(), c.bounds.Dy()
		aspect := 0.0
		if h > 0 {
			aspect = float64(w) / float64(h)
		}
		carea := polyArea(c.points)

		if aspect > horizontalAspect {
			f.horizontal++
		} else if aspect < verticalAspect {
			f.vertical++
		} else if aspect > rectAspectLow && aspect < rectAspectHigh && carea > rectMinAreaFrac*float64(area) {
			f.rectangles++
		}

		// A contour which simplifies to a single slanted line is a
		// diagonal stroke.
		approx := approxPoly(c.points, approxEpsFrac*polyPerimeter(c.points))
		if len(approx) == 2 {
			dx := approx[1].X - approx[0].X
			dy := approx[1].Y - approx[0].Y
			if dx == 0 {
				continue
			}
			angle := math.Abs(math.Atan2(float64(dy), float64(dx)) * 180 / math.Pi)
			if (angle > 30 && angle < 60) || (angle > 120 && angle < 150) {
				f.diagonal++
			}
		}
	}
	return f
}

// cropRegion clips region to the mask and copies it out as a fresh
// zero-based image, so later analysis only depends on the ink relative
// to the region. ok is false for regions that clip to nothing.
func cropRegion(mask *image.Gray, region image.Rectangle) (crop *image.Gray, ok bool) {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	x1 := clamp(region.Min.X-b.Min.X, 0, w-1)
	x2 := clamp(region.Max.X-b.Min.X, 0, w)
	y1 := clamp(region.Min.Y-b.Min.Y, 0, h-1)
	y2 := clamp(region.Max.Y-b.Min.Y, 0, h)
	if x2 <= x1 || y2 <= y1 {
		return nil, false
	}

	crop = image.NewGray(image.Rect(0, 0, x2-x1, y2-y1))
	for y := y1; y < y2; y++ {
		copy(crop.Pix[(y-y1)*crop.Stride:(y-y1)*crop.Stride+(x2-x1)],
			mask.Pix[y*mask.Stride+x1:y*mask.Stride+x2])
	}
	return crop, true
}

// inkSum totals the pixel intensities of a mask.
func inkSum(img *image.Gray) int64 {
	var sum int64
	for _, v := range img.Pix {
		sum += int64(v)
	}
	return sum
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
