package ribbon

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// FanSliceDegrees is the nominal angular width of one cap-fan slice.
	// The actual per-slice rotation is the sweep evenly divided by the
	// slice count, so slices are only exactly this wide when the sweep is
	// a multiple of it.
	FanSliceDegrees = 10.0
)

// fanPoints returns the radial boundary points of a cap fan around pivot,
// sweeping counter-clockwise from `from` to `to` (both at the fan radius).
// The returned slice includes both endpoints; adjacent pairs plus the pivot
// form the fan triangles.
func fanPoints(pivot, from, to mgl64.Vec3) []mgl64.Vec3 {
	start := fanAngle(from, pivot)
	end := fanAngle(to, pivot)
	if end == 0 {
		// An end angle of exactly 0 means a full quarter-or-more sweep up
		// to the +X axis, not an empty one.
		end = 360
	}
	sweep := end - start
	if sweep < 0 {
		sweep += 360
	}

	slices := int(sweep / FanSliceDegrees)
	if slices < 1 {
		slices = 1
	}
	step := sweep / float64(slices)

	points := make([]mgl64.Vec3, 0, slices+1)
	points = append(points, from)
	radial := from.Sub(pivot)
	for k := 1; k < slices; k++ {
		rot := mgl64.Rotate3DZ(mgl64.DegToRad(step * float64(k)))
		points = append(points, pivot.Add(rot.Mul3x1(radial)))
	}
	return append(points, to)
}

// fanAngle measures p's angle around pivot in degrees, normalized to
// [0, 360).
func fanAngle(p, pivot mgl64.Vec3) float64 {
	deg := mgl64.RadToDeg(math.Atan2(p.Y()-pivot.Y(), p.X()-pivot.X()))
	if deg < 0 {
		deg += 360
	}
	return deg
}
