// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// The binarize package turns an arbitrary input image into a clean two
// level ink mask at the working resolution used by the recognizer.
// It combines a global histogram threshold with a local adaptive one,
// so ink is kept if either method detects it, and tidies the result
// with binary morphology.
package binarize

import (
	"image"
	"image/draw"

	"github.com/ernyoke/imger/threshold"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"rescribe.xyz/preproc"
)

// Width and Height are the working resolution every input is rescaled
// to before thresholding. Aspect ratio distortion is accepted.
const (
	Width  = 300
	Height = 400
)

const (
	// blurSigma approximates the original 5x5 Gaussian smoothing pass.
	blurSigma = 1.1
	// Sauvola parameters for the local adaptive threshold.
	sauvolaKsize = 0.5
	sauvolaWsize = 11
)

// Binarize flattens, rescales and thresholds img into a mask where ink
// pixels are 255 and background pixels are 0. It never fails; input
// with no usable contrast just yields an empty mask.
func Binarize(img image.Image) *image.Gray {
	gray := rescale(toGray(img), Width, Height)

	norm, flat := normalize(gray)
	if flat {
		// No contrast at all, so there is no ink to find.
		return image.NewGray(image.Rect(0, 0, Width, Height))
	}
	blurred := toGray(imaging.Blur(norm, blurSigma))

	otsu, err := threshold.OtsuThreshold(blurred, threshold.ThreshBinary)
	if err != nil {
		otsu = nil
	}
	sauvola := preproc.IntegralSauvola(blurred, sauvolaKsize, sauvolaWsize)

	// Both thresholds output ink as black; the mask convention is ink
	// as white.
	var mask *image.Gray
	if otsu == nil {
		mask = invert(sauvola)
	} else {
		mask = union(invert(otsu), invert(sauvola))
	}

	// One opening pass drops speckle noise, two closing passes bridge
	// small gaps in strokes, and a final dilation thickens thin
	// strokes so that contour extraction is more reliable.
	mask = opening(mask, 1)
	mask = closing(mask, 2)
	mask = dilate(mask)
	return mask
}

// toGray flattens any image to 8 bit greyscale.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// rescale resizes img to exactly w x h.
func rescale(img *image.Gray, w, h int) *image.Gray {
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h && b.Min == image.Pt(0, 0) && img.Stride == w {
		return img
	}
	scaled := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return scaled
}

// normalize stretches the intensity range of img to the full 0-255.
// flat reports that every pixel had the same value, in which case img
// is returned unchanged.
func normalize(img *image.Gray) (norm *image.Gray, flat bool) {
	min, max := uint8(255), uint8(0)
	for _, v := range img.Pix {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min >= max {
		return img, true
	}

	norm = image.NewGray(img.Bounds())
	spread := int(max) - int(min)
	for i, v := range img.Pix {
		norm.Pix[i] = uint8(((int(v)-int(min))*255 + spread/2) / spread)
	}
	return norm, false
}

// invert swaps ink and background, as the thresholding functions
// output ink as black but the mask convention is ink as white.
func invert(img *image.Gray) *image.Gray {
	out := image.NewGray(img.Bounds())
	for i, v := range img.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

// union combines two masks with a per-pixel OR.
func union(a, b *image.Gray) *image.Gray {
	out := image.NewGray(a.Bounds())
	for i := range a.Pix {
		if a.Pix[i] > 0 || b.Pix[i] > 0 {
			out.Pix[i] = 255
		}
	}
	return out
}
