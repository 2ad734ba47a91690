// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package cistercian

import (
	"image"
	"image/color"
	"math"
)

// Canvas dimensions and drawing parameters for a rendered glyph.
const (
	Width         = 300
	Height        = 400
	LineThickness = 3

	background = 255
	ink        = 0
)

// Glyph is a rendered Cistercian numeral: the raster itself, the stem
// endpoints, and the strokes that were drawn for each decimal place,
// keyed "units", "tens", "hundreds" and "thousands". Every place key
// is present, with an empty list where the digit was 0.
type Glyph struct {
	Image   *image.Gray         `json:"-"`
	Stem    [2]image.Point      `json:"stem"`
	Strokes map[string][]Stroke `json:"segments"`
}

// Render draws number as a Cistercian numeral on a fresh Width x Height
// greyscale canvas, white background and black ink. It is
// deterministic: the same number always yields a byte-identical
// raster. Numbers outside [0,Max] return ErrRange before anything is
// drawn.
func Render(number int) (*image.Gray, error) {
	g, err := RenderWithSegments(number)
	if err != nil {
		return nil, err
	}
	return g.Image, nil
}

// RenderWithSegments is Render, but also reporting the stem endpoints
// and the stroke list drawn for each decimal place.
func RenderWithSegments(number int) (*Glyph, error) {
	if number < 0 || number > Max {
		return nil, ErrRange
	}

	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for i := range img.Pix {
		img.Pix[i] = background
	}

	// The stem runs down the horizontal centre, spanning the middle
	// half of the canvas height.
	stemX := Width / 2
	stemTop := image.Pt(stemX, Height/4)
	stemBottom := image.Pt(stemX, Height/4+Height/2)
	drawLine(img, stemTop, stemBottom)

	units, tens, hundreds, thousands := Split(number)
	digits := [4]int{units, tens, hundreds, thousands}

	g := Glyph{
		Image:   img,
		Stem:    [2]image.Point{stemTop, stemBottom},
		Strokes: make(map[string][]Stroke, 4),
	}
	for i, q := range Quadrants {
		origin := stemTop
		if q.YDir() == 1 {
			origin = stemBottom
		}
		strokes := Strokes(digits[i], origin, q)
		for _, s := range strokes {
			drawLine(img, s.Start, s.End)
		}
		if strokes == nil {
			strokes = []Stroke{}
		}
		g.Strokes[q.Place()] = strokes
	}
	return &g, nil
}

// drawLine paints every pixel within half of LineThickness of the
// segment from a to b with ink.
func drawLine(img *image.Gray, a, b image.Point) {
	r := float64(LineThickness) / 2
	pad := int(math.Ceil(r))

	x1, x2 := a.X, b.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := a.Y, b.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}

	bounds := img.Bounds()
	for y := y1 - pad; y <= y2+pad; y++ {
		for x := x1 - pad; x <= x2+pad; x++ {
			if !(image.Pt(x, y).In(bounds)) {
				continue
			}
			if segmentDistance(x, y, a, b) <= r {
				img.SetGray(x, y, color.Gray{ink})
			}
		}
	}
}

// segmentDistance is the distance from the pixel at (x, y) to the
// nearest point of the segment from a to b.
func segmentDistance(x, y int, a, b image.Point) float64 {
	px, py := float64(x), float64(y)
	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)

	lensq := dx*dx + dy*dy
	if lensq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lensq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
