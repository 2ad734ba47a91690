// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package recognize

import (
	"image"
	"sort"
)

// maxDescriptors is how many ink regions Extract reports per quadrant.
const maxDescriptors = 3

// Descriptor describes one connected ink region of a recognized
// digit, in full mask coordinates. It is diagnostic output for
// visualisation and debugging, and feeds nothing downstream.
type Descriptor struct {
	Center image.Point     `json:"center"`
	Bounds image.Rectangle `json:"bbox"`
	Area   float64         `json:"area"`
}

// Extract returns descriptors for the most prominent ink regions
// within region of mask, largest first, at most maxDescriptors of
// them. A quadrant classified as digit 0 has no segments.
func Extract(mask *image.Gray, region image.Rectangle, digit int) []Descriptor {
	if digit == 0 {
		return nil
	}
	crop, ok := cropRegion(mask, region)
	if !ok {
		return nil
	}

	b := mask.Bounds()
	offset := image.Pt(clamp(region.Min.X-b.Min.X, 0, b.Dx()-1), clamp(region.Min.Y-b.Min.Y, 0, b.Dy()-1))

	var segments []Descriptor
	for _, c := range findContours(crop) {
		center, ok := centroid(c.points)
		if !ok {
			continue
		}
		segments = append(segments, Descriptor{
			Center: center.Add(offset),
			Bounds: c.bounds.Add(offset),
			Area:   polyArea(c.points),
		})
	}

	sort.SliceStable(segments, func(i, j int) bool { return segments[i].Area > segments[j].Area })
	if len(segments) > maxDescriptors {
		segments = segments[:maxDescriptors]
	}
	return segments
}
