// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package recognize

import (
	"image"
	"image/color"
	"testing"
)

// paintDiagonal paints a thin 45 degree band running from (from,from)
// to (to,to).
func paintDiagonal(img *image.Gray, from, to int) {
	for x := from; x <= to; x++ {
		for y := x - 1; y <= x+1; y++ {
			if y < from || y > to {
				continue
			}
			img.SetGray(x, y, color.Gray{255})
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		draw  func(img *image.Gray)
		digit int
	}{
		{"empty", func(img *image.Gray) {}, 0},
		{"horizontal", func(img *image.Gray) {
			paint(img, image.Rect(10, 45, 90, 53))
		}, 1},
		{"horizontal and vertical", func(img *image.Gray) {
			paint(img, image.Rect(10, 10, 90, 18))
			paint(img, image.Rect(10, 25, 18, 90))
		}, 2},
		{"diagonal", func(img *image.Gray) {
			paintDiagonal(img, 10, 90)
		}, 3},
		{"diagonal and horizontal", func(img *image.Gray) {
			paintDiagonal(img, 10, 60)
			paint(img, image.Rect(10, 80, 90, 88))
		}, 4},
		{"thick horizontal and vertical", func(img *image.Gray) {
			paint(img, image.Rect(0, 0, 100, 30))
			paint(img, image.Rect(0, 40, 20, 100))
		}, 5},
		{"vertical", func(img *image.Gray) {
			paint(img, image.Rect(45, 10, 53, 90))
		}, 6},
		{"square", func(img *image.Gray) {
			paint(img, image.Rect(30, 30, 70, 70))
		}, 9},
		{"vertical and diagonal", func(img *image.Gray) {
			paint(img, image.Rect(80, 10, 88, 90))
			paintDiagonal(img, 10, 60)
		}, 1},
	}

	for _, c := range cases {
		mask := image.NewGray(image.Rect(0, 0, 100, 100))
		c.draw(mask)
		if got := Classify(mask, mask.Bounds()); got != c.digit {
			t.Errorf("%s classified as %d, expected %d\n", c.name, got, c.digit)
		}
	}
}

func TestClassifyDegenerateRegion(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 100, 100))
	paint(mask, image.Rect(10, 45, 90, 53))

	for _, region := range []image.Rectangle{
		image.Rect(50, 50, 50, 50),
		{Min: image.Point{60, 60}, Max: image.Point{50, 50}},
	} {
		if got := Classify(mask, region); got != 0 {
			t.Errorf("Degenerate region %v classified as %d, expected 0\n", region, got)
		}
	}
}

func TestClassifyTranslationInvariance(t *testing.T) {
	// Classification must only depend on ink relative to the region.
	a := image.NewGray(image.Rect(0, 0, 100, 100))
	paint(a, image.Rect(10, 45, 90, 53))

	b := image.NewGray(image.Rect(0, 0, 300, 400))
	paint(b, image.Rect(160, 245, 240, 253))

	da := Classify(a, a.Bounds())
	db := Classify(b, image.Rect(150, 200, 250, 300))
	if da != db {
		t.Errorf("Same shape classified as %d at the origin but %d translated\n", da, db)
	}
	if da != 1 {
		t.Errorf("Horizontal bar classified as %d, expected 1\n", da)
	}
}
