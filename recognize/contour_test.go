// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package recognize

import (
	"image"
	"image/color"
	"testing"
)

func paint(img *image.Gray, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetGray(x, y, color.Gray{255})
		}
	}
}

func TestFindContours(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 20, 20))
	paint(mask, image.Rect(2, 2, 6, 6))
	paint(mask, image.Rect(10, 10, 16, 13))

	contours := findContours(mask)
	if len(contours) != 2 {
		t.Fatalf("Found %d contours, expected 2\n", len(contours))
	}
	if got := contours[0].bounds; got != image.Rect(2, 2, 6, 6) {
		t.Errorf("First contour bounds %v, expected (2,2)-(6,6)\n", got)
	}
	if got := contours[1].bounds; got != image.Rect(10, 10, 16, 13) {
		t.Errorf("Second contour bounds %v, expected (10,10)-(16,13)\n", got)
	}
	if contours[0].pixels != 16 || contours[1].pixels != 18 {
		t.Errorf("Contour pixel counts %d and %d, expected 16 and 18\n",
			contours[0].pixels, contours[1].pixels)
	}
}

func TestFindContoursDiagonalConnectivity(t *testing.T) {
	// Pixels touching only at corners belong to the same component.
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	mask.SetGray(3, 3, color.Gray{255})
	mask.SetGray(4, 4, color.Gray{255})
	mask.SetGray(5, 5, color.Gray{255})

	contours := findContours(mask)
	if len(contours) != 1 {
		t.Fatalf("Found %d contours, expected 1\n", len(contours))
	}
	if contours[0].pixels != 3 {
		t.Errorf("Contour has %d pixels, expected 3\n", contours[0].pixels)
	}
}

func TestFindContoursEmpty(t *testing.T) {
	if got := findContours(image.NewGray(image.Rect(0, 0, 10, 10))); len(got) != 0 {
		t.Errorf("Found %d contours in an empty mask\n", len(got))
	}
}

func TestPolyStats(t *testing.T) {
	square := []image.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if got := polyArea(square); got != 16 {
		t.Errorf("Square area %f, expected 16\n", got)
	}
	if got := polyPerimeter(square); got != 16 {
		t.Errorf("Square perimeter %f, expected 16\n", got)
	}

	center, ok := centroid(square)
	if !ok {
		t.Fatalf("Centroid of a square reported as degenerate\n")
	}
	if center != image.Pt(2, 2) {
		t.Errorf("Square centroid %v, expected (2,2)\n", center)
	}

	if _, ok := centroid([]image.Point{{0, 0}, {5, 5}}); ok {
		t.Errorf("Centroid of a degenerate polygon reported ok\n")
	}
}

func TestApproxPolyLine(t *testing.T) {
	// A thin straight stroke must collapse to its two endpoints.
	mask := image.NewGray(image.Rect(0, 0, 40, 40))
	paint(mask, image.Rect(5, 20, 35, 21))

	contours := findContours(mask)
	if len(contours) != 1 {
		t.Fatalf("Found %d contours, expected 1\n", len(contours))
	}
	pts := contours[0].points
	approx := approxPoly(pts, approxEpsFrac*polyPerimeter(pts))
	if len(approx) != 2 {
		t.Fatalf("Line approximated to %d points, expected 2\n", len(approx))
	}
	if approx[0].Y != approx[1].Y {
		t.Errorf("Horizontal line approximated to %v-%v\n", approx[0], approx[1])
	}
}

func TestApproxPolySquare(t *testing.T) {
	// A filled square must not collapse to a line.
	mask := image.NewGray(image.Rect(0, 0, 40, 40))
	paint(mask, image.Rect(5, 5, 30, 30))

	contours := findContours(mask)
	if len(contours) != 1 {
		t.Fatalf("Found %d contours, expected 1\n", len(contours))
	}
	pts := contours[0].points
	approx := approxPoly(pts, approxEpsFrac*polyPerimeter(pts))
	if len(approx) < 3 {
		t.Errorf("Square approximated to only %d points\n", len(approx))
	}
}
