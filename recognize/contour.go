// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package recognize

import (
	"image"
	"math"
)

// contour is the outer boundary of one connected ink region, traced
// clockwise, along with some precomputed statistics about the region.
type contour struct {
	points []image.Point
	bounds image.Rectangle
	pixels int
}

// findContours labels the 8-connected ink regions of mask and returns
// the outer boundary contour of each.
func findContours(mask *image.Gray) []contour {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	labels := make([]int, w*h)
	ink := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return mask.Pix[y*mask.Stride+x] > 0
	}

	var contours []contour
	next := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !ink(x, y) || labels[y*w+x] != 0 {
				continue
			}
			next++
			c := fillComponent(labels, w, h, ink, x, y, next)
			c.points = traceBoundary(labels, w, h, next, c.bounds)
			contours = append(contours, c)
		}
	}
	return contours
}

// fillComponent flood fills the 8-connected component containing
// (sx, sy), marking it in labels and gathering its statistics.
func fillComponent(labels []int, w, h int, ink func(int, int) bool, sx, sy, label int) contour {
	queue := []image.Point{{sx, sy}}
	labels[sy*w+sx] = label
	st := contour{bounds: image.Rect(sx, sy, sx+1, sy+1)}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		st.pixels++
		st.bounds = st.bounds.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := p.X+dx, p.Y+dy
				if !ink(nx, ny) || labels[ny*w+nx] != 0 {
					continue
				}
				labels[ny*w+nx] = label
				queue = append(queue, image.Point{nx, ny})
			}
		}
	}
	return st
}

// traceBoundary walks the outer boundary of the labelled component
// with Moore neighbour tracing, returning the boundary polygon.
func traceBoundary(labels []int, w, h, label int, box image.Rectangle) []image.Point {
	at := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return labels[y*w+x] == label
	}

	// The top-left-most pixel of the component is always on the
	// boundary, with free space to its left.
	var sx, sy int
	found := false
	for y := box.Min.Y; y < box.Max.Y && !found; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if at(x, y) {
				sx, sy = x, y
				found = true
				break
			}
		}
	}
	if !found {
		return nil
	}

	// 8-neighbourhood in clockwise order starting east.
	ndx := [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	ndy := [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dir := func(dx, dy int) int {
		for i := 0; i < 8; i++ {
			if ndx[i] == dx && ndy[i] == dy {
				return i
			}
		}
		return 0
	}

	pts := []image.Point{{sx, sy}}
	cx, cy := sx, sy
	bx, by := sx-1, sy
	maxSteps := 4*w*h + 8

	for step := 0; step < maxSteps; step++ {
		// Scan the neighbourhood clockwise starting just past the
		// backtrack pixel.
		start := (dir(bx-cx, by-cy) + 1) % 8
		nx, ny := -1, -1
		for k := 0; k < 8; k++ {
			i := (start + k) % 8
			tx, ty := cx+ndx[i], cy+ndy[i]
			if at(tx, ty) {
				nx, ny = tx, ty
				break
			}
			bx, by = tx, ty
		}
		if nx == -1 {
			// Isolated pixel.
			break
		}

		bx, by, cx, cy = cx, cy, nx, ny
		if cx == sx && cy == sy {
			break
		}
		pts = append(pts, image.Point{cx, cy})
	}
	return pts
}

// polyArea is the area enclosed by the closed polygon, by the shoelace
// formula. Degenerate polygons that double back on themselves come out
// near zero, matching the behaviour of contour area on thin lines.
func polyArea(pts []image.Point) float64 {
	return math.Abs(signedArea(pts))
}

func signedArea(pts []image.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += float64(p.X*q.Y - q.X*p.Y)
	}
	return sum / 2
}

// polyPerimeter is the length of the closed polygon boundary.
func polyPerimeter(pts []image.Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
	}
	return sum
}

// centroid is the area-moment centre of the closed polygon. ok is
// false for degenerate polygons with no enclosed area.
func centroid(pts []image.Point) (image.Point, bool) {
	a := signedArea(pts)
	if a == 0 {
		return image.Point{}, false
	}
	var cx, cy float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		cross := float64(p.X*q.Y - q.X*p.Y)
		cx += float64(p.X+q.X) * cross
		cy += float64(p.Y+q.Y) * cross
	}
	return image.Pt(int(cx/(6*a)), int(cy/(6*a))), true
}

// approxPoly simplifies the closed contour with the Douglas-Peucker
// algorithm so that no original point deviates more than epsilon from
// the simplified outline. A thin straight line collapses to its two
// endpoints.
func approxPoly(pts []image.Point, epsilon float64) []image.Point {
	if len(pts) < 3 {
		return pts
	}

	// Split the ring at its two most distant points and simplify the
	// two arcs separately.
	ai, bi, far := 0, 0, -1.0
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			d := math.Hypot(float64(pts[j].X-pts[i].X), float64(pts[j].Y-pts[i].Y))
			if d > far {
				ai, bi, far = i, j, d
			}
		}
	}

	arc1 := pts[ai : bi+1]
	arc2 := append(append([]image.Point{}, pts[bi:]...), pts[:ai+1]...)

	out := append([]image.Point{}, simplifyChain(arc1, epsilon)...)
	tail := simplifyChain(arc2, epsilon)
	// Both arcs share their endpoints; drop the duplicates.
	out = append(out, tail[1:len(tail)-1]...)
	return out
}

func simplifyChain(pts []image.Point, epsilon float64) []image.Point {
	if len(pts) < 3 {
		return pts
	}
	a, b := pts[0], pts[len(pts)-1]
	far, fi := -1.0, 0
	for i := 1; i < len(pts)-1; i++ {
		d := chordDistance(pts[i], a, b)
		if d > far {
			far, fi = d, i
		}
	}
	if far <= epsilon {
		return []image.Point{a, b}
	}
	left := simplifyChain(pts[:fi+1], epsilon)
	right := simplifyChain(pts[fi:], epsilon)
	out := make([]image.Point, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	return append(out, right...)
}

// chordDistance is the perpendicular distance from p to the line
// through a and b.
func chordDistance(p, a, b image.Point) float64 {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}
	return math.Abs(dy*float64(p.X-a.X)-dx*float64(p.Y-a.Y)) / length
}
