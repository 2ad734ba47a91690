// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The recognize package reads a number back out of an image believed to
contain a Cistercian numeral glyph.

Recognition is heuristic, not learned: the image is binarized, the
glyph's stem and quadrants are located from its ink bounding box, and
each quadrant's connected ink regions are classified into a digit by an
ordered rule cascade over simple shape features. The pipeline is
fail-safe throughout; input in which nothing recognizable is found
comes back as number 0 with empty segment lists.
*/
package recognize

import (
	"image"
	"io"
	"log"

	"rescribe.xyz/cistercian"
	"rescribe.xyz/cistercian/binarize"
)

// Result is the outcome of recognizing one image: the number read from
// the glyph, the detected stem endpoints, and up to maxDescriptors
// region descriptors per decimal place, keyed "units", "tens",
// "hundreds" and "thousands". Every place key is always present.
type Result struct {
	Number   int                     `json:"number"`
	Stem     [2]image.Point          `json:"stem"`
	Segments map[string][]Descriptor `json:"segments"`
}

// Recognizer recognizes Cistercian numeral glyphs in images. The zero
// Recognizer is ready to use; set Log to capture diagnostics about
// each stage of the pipeline.
type Recognizer struct {
	Log *log.Logger
}

// Recognize reads the number out of img using a zero Recognizer.
func Recognize(img image.Image) Result {
	var r Recognizer
	return r.Recognize(img)
}

// Recognize locates a Cistercian numeral glyph in img and reads its
// number. It never fails: images in which no glyph structure can be
// found yield number 0 with empty segment lists.
func (r Recognizer) Recognize(img image.Image) (res Result) {
	logger := r.Log
	if logger == nil {
		logger = discard()
	}
	defer func() {
		// The decode path promises a usable result for any input.
		if p := recover(); p != nil {
			logger.Printf("recognition failed: %v", p)
			res = emptyResult()
		}
	}()

	mask := binarize.Binarize(img)
	logger.Printf("binarized mask has %d intensity units of ink", inkSum(mask))

	structure := Locate(mask)
	logger.Printf("stem at x=%d, span %v to %v", structure.Stem[0].X, structure.Stem[0], structure.Stem[1])

	// Blank the stem band so its ink is not mistaken for a digit
	// stroke in each quadrant.
	clearStem(mask, structure)

	var digits [4]int
	segments := make(map[string][]Descriptor, 4)
	for i, q := range cistercian.Quadrants {
		region := structure.Quadrants[q]
		digits[i] = classifyQuadrant(mask, region, logger)
		logger.Printf("%s (%s): digit %d", q.Place(), q, digits[i])
		segments[q.Place()] = Extract(mask, region, digits[i])
	}

	return Result{
		Number:   cistercian.Combine(digits[0], digits[1], digits[2], digits[3]),
		Stem:     structure.Stem,
		Segments: segments,
	}
}

func emptyResult() Result {
	segments := make(map[string][]Descriptor, 4)
	for _, q := range cistercian.Quadrants {
		segments[q.Place()] = nil
	}
	return Result{Segments: segments}
}

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
