// Package geom provides the line-segment value model and the 2D line
// intersection used by the ribbon builder.
//
// All computation happens in the XY plane; Z components are carried along
// unchanged by Translated and forced to 0 by IntersectXY.
package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// ZeroLengthTolerance is the minimum length for a segment to be
	// considered non-degenerate. Shorter segments have no usable direction.
	ZeroLengthTolerance = 1e-12
)

// LineSegment is a read-only segment with its derived unit direction and
// length. Invariant: Length > 0 (enforced by NewLineSegment).
type LineSegment struct {
	From      mgl64.Vec3
	To        mgl64.Vec3
	Direction mgl64.Vec3 // unit vector From→To
	Length    float64
}

// NewLineSegment derives direction and length from the endpoints.
// A zero-length segment is an error: direction would be undefined.
func NewLineSegment(from, to mgl64.Vec3) (LineSegment, error) {
	d := to.Sub(from)
	length := d.Len()
	if length < ZeroLengthTolerance {
		return LineSegment{}, fmt.Errorf("geom: zero-length segment at %v", from)
	}
	return LineSegment{
		From:      from,
		To:        to,
		Direction: d.Mul(1 / length),
		Length:    length,
	}, nil
}

// Translated returns the segment displaced by offset. Direction and length
// are unchanged.
func (s LineSegment) Translated(offset mgl64.Vec3) LineSegment {
	return LineSegment{
		From:      s.From.Add(offset),
		To:        s.To.Add(offset),
		Direction: s.Direction,
		Length:    s.Length,
	}
}
