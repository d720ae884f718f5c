// Package polyline filters raw input paths before ribbon construction.
package polyline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// CollinearTolerance bounds the XY cross-product magnitude below which
	// three consecutive points are treated as collinear.
	CollinearTolerance = 1e-9
)

// RemoveCollinear returns a copy of points with every interior point removed
// that is collinear, in the XY projection, with its kept predecessor and its
// successor. Coincident points have a zero cross product and are removed by
// the same test, so every segment of the result has strictly positive
// length. Endpoints are never removed. The operation is idempotent:
// filtering an already-filtered path returns it unchanged.
func RemoveCollinear(points []mgl64.Vec3) []mgl64.Vec3 {
	kept := make([]mgl64.Vec3, 0, len(points))
	if len(points) <= 2 {
		return append(kept, points...)
	}

	kept = append(kept, points[0])
	for i := 1; i < len(points)-1; i++ {
		if !collinearXY(kept[len(kept)-1], points[i], points[i+1]) {
			kept = append(kept, points[i])
		}
	}
	return append(kept, points[len(points)-1])
}

// collinearXY reports whether b lies on the line through a and c, using only
// the X and Y components.
func collinearXY(a, b, c mgl64.Vec3) bool {
	ab := b.Sub(a)
	bc := c.Sub(b)
	cross := ab.X()*bc.Y() - ab.Y()*bc.X()
	return math.Abs(cross) < CollinearTolerance
}
