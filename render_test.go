// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package cistercian

import (
	"errors"
	"image"
	"testing"
)

func imgsequal(img1 *image.Gray, img2 *image.Gray) bool {
	b := img1.Bounds()
	if !b.Eq(img2.Bounds()) {
		return false
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img1.GrayAt(x, y) != img2.GrayAt(x, y) {
				return false
			}
		}
	}
	return true
}

func TestRenderRange(t *testing.T) {
	cases := []struct {
		number int
		ok     bool
	}{
		{-1, false},
		{0, true},
		{9999, true},
		{10000, false},
		{-9999, false},
	}

	for _, c := range cases {
		img, err := Render(c.number)
		if c.ok {
			if err != nil {
				t.Errorf("Render(%d) failed: %v\n", c.number, err)
			}
			continue
		}
		if !errors.Is(err, ErrRange) {
			t.Errorf("Render(%d) returned %v, expected ErrRange\n", c.number, err)
		}
		if img != nil {
			t.Errorf("Render(%d) returned an image alongside an error\n", c.number)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, n := range []int{0, 7, 1993, 9999} {
		a, err := Render(n)
		if err != nil {
			t.Fatalf("Render(%d) failed: %v\n", n, err)
		}
		b, err := Render(n)
		if err != nil {
			t.Fatalf("Render(%d) failed: %v\n", n, err)
		}
		if !imgsequal(a, b) {
			t.Errorf("Render(%d) is not deterministic\n", n)
		}
	}
}

func TestRenderCanvas(t *testing.T) {
	img, err := Render(0)
	if err != nil {
		t.Fatalf("Render failed: %v\n", err)
	}
	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		t.Fatalf("Canvas is %dx%d, expected %dx%d\n", b.Dx(), b.Dy(), Width, Height)
	}
	// The stem runs down the centre of every glyph, zero included.
	if img.GrayAt(Width/2, Height/2).Y != 0 {
		t.Errorf("No ink at the stem midpoint\n")
	}
	if img.GrayAt(0, 0).Y != 255 {
		t.Errorf("Corner pixel is not background\n")
	}
	if img.GrayAt(Width/2, 10).Y != 255 {
		t.Errorf("Ink above the stem top\n")
	}
}

func TestRenderStem(t *testing.T) {
	g, err := RenderWithSegments(42)
	if err != nil {
		t.Fatalf("RenderWithSegments failed: %v\n", err)
	}
	top := image.Pt(Width/2, Height/4)
	bottom := image.Pt(Width/2, Height/4+Height/2)
	if g.Stem[0] != top || g.Stem[1] != bottom {
		t.Errorf("Stem is %v-%v, expected %v-%v\n", g.Stem[0], g.Stem[1], top, bottom)
	}
}

func TestRenderPlacement(t *testing.T) {
	g, err := RenderWithSegments(4060)
	if err != nil {
		t.Fatalf("RenderWithSegments failed: %v\n", err)
	}

	for _, place := range []string{"units", "hundreds"} {
		if len(g.Strokes[place]) != 0 {
			t.Errorf("%s of 4060 has %d strokes, expected none\n", place, len(g.Strokes[place]))
		}
	}

	tens := g.Strokes["tens"]
	if len(tens) != 1 || tens[0].Kind != Vertical {
		t.Fatalf("tens of 4060 drew %v, expected one vertical stroke\n", tens)
	}
	if tens[0].Start != image.Pt(150, 100) || tens[0].End != image.Pt(150, 150) {
		t.Errorf("tens stroke runs %v-%v, expected (150,100)-(150,150)\n", tens[0].Start, tens[0].End)
	}

	thousands := g.Strokes["thousands"]
	if len(thousands) != 2 {
		t.Fatalf("thousands of 4060 has %d strokes, expected 2\n", len(thousands))
	}
	if thousands[0].Kind != Diagonal || thousands[1].Kind != Vertical {
		t.Errorf("thousands strokes are %v and %v, expected diagonal then vertical\n",
			thousands[0].Kind, thousands[1].Kind)
	}
	if thousands[0].Start != image.Pt(150, 300) || thousands[0].End != image.Pt(100, 250) {
		t.Errorf("thousands diagonal runs %v-%v, expected (150,300)-(100,250)\n",
			thousands[0].Start, thousands[0].End)
	}
	if thousands[1].End != image.Pt(100, 300) {
		t.Errorf("thousands vertical ends at %v, expected (100,300)\n", thousands[1].End)
	}
}

func TestRenderInkWithinQuadrant(t *testing.T) {
	// 1 draws only the units bar at the top right of the stem, so the
	// left half and bottom half stay clean apart from the stem itself.
	img, err := Render(1)
	if err != nil {
		t.Fatalf("Render failed: %v\n", err)
	}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if img.GrayAt(x, y).Y == 255 {
				continue
			}
			onStem := x >= Width/2-LineThickness && x <= Width/2+LineThickness
			if x < Width/2-LineThickness || (y > Height/2 && !onStem) {
				t.Fatalf("Unexpected ink at %d,%d rendering 1\n", x, y)
				return
			}
		}
	}
}
