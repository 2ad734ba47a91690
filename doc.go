// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The cistercian package converts numbers to and from Cistercian numeral
glyph images.

The Cistercian numeral system writes any number from 0 to 9999 as a
single glyph: a vertical stem with up to four marks attached around it,
one per decimal place. The quadrant to the top right of the stem holds
the units, top left the tens, bottom right the hundreds and bottom left
the thousands. Each mark is built from at most three straight strokes,
mirrored horizontally and vertically according to the quadrant.

Encoding is handled by Render and RenderWithSegments, which draw a
number onto a fresh 300x400 greyscale canvas. Decoding is handled by
the recognize subpackage, which takes an arbitrary image believed to
contain a glyph, binarizes it using the binarize subpackage, and reads
the digits back out with contour analysis and a rule cascade.

Several command line tools are provided under cmd; each gives usage
information with the '-h' flag:

	cisterrender - draw a number as a PNG glyph
	cisterread   - read the number out of a glyph image
	cistersheet  - write a reference sheet of glyphs as a PDF
	cistergraph  - graph render/recognize round trip accuracy
*/
package cistercian
