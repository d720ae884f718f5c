package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// ParallelTolerance bounds the determinant magnitude below which two
	// lines are treated as parallel and have no usable intersection.
	ParallelTolerance = 1e-12
)

// ErrParallelLines is returned by IntersectXY for (near-)parallel lines.
var ErrParallelLines = errors.New("geom: lines are parallel")

// IntersectXY returns the intersection point of the two infinite lines
// through (a1, a2) and (b1, b2), projected onto the XY plane. Only the X and
// Y components of the inputs are used; the Z of the result is always 0.
func IntersectXY(a1, a2, b1, b2 mgl64.Vec3) (mgl64.Vec3, error) {
	x1, y1 := a1.X(), a1.Y()
	x2, y2 := a2.X(), a2.Y()
	x3, y3 := b1.X(), b1.Y()
	x4, y4 := b2.X(), b2.Y()

	det := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(det) < ParallelTolerance {
		return mgl64.Vec3{}, fmt.Errorf("%w (determinant %g)", ErrParallelLines, det)
	}

	c1 := x1*y2 - y1*x2
	c2 := x3*y4 - y3*x4

	return mgl64.Vec3{
		(c1*(x3-x4) - (x1-x2)*c2) / det,
		(c1*(y3-y4) - (y1-y2)*c2) / det,
		0,
	}, nil
}
