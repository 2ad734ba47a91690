// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package binarize

import "image"

// Binary morphology over ink masks with a full 3x3 structuring
// element. Pixels beyond the mask edge count as background for
// dilation and as ink for erosion, so strokes touching the edge are
// not eaten away.

func dilate(img *image.Gray) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if anyNeighbour(img, x, y, w, h) {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

func erode(img *image.Gray) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if allNeighbours(img, x, y, w, h) {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

// opening is erosion followed by dilation, iterations times each;
// it removes features smaller than the structuring element.
func opening(img *image.Gray, iterations int) *image.Gray {
	for i := 0; i < iterations; i++ {
		img = erode(img)
	}
	for i := 0; i < iterations; i++ {
		img = dilate(img)
	}
	return img
}

// closing is dilation followed by erosion, iterations times each;
// it bridges gaps smaller than the structuring element.
func closing(img *image.Gray, iterations int) *image.Gray {
	for i := 0; i < iterations; i++ {
		img = dilate(img)
	}
	for i := 0; i < iterations; i++ {
		img = erode(img)
	}
	return img
}

func anyNeighbour(img *image.Gray, x, y, w, h int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			if img.Pix[ny*img.Stride+nx] > 0 {
				return true
			}
		}
	}
	return false
}

func allNeighbours(img *image.Gray, x, y, w, h int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			if img.Pix[ny*img.Stride+nx] == 0 {
				return false
			}
		}
	}
	return true
}
