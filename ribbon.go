// Package ribbon converts a 2D/3D polyline into a constant-width band mesh:
// mitered inside corners, rounded outside corners, output as a triangle list
// plus a matching border outline.
//
// The computation is planar: the working plane is XY, the Z component of
// every input point is forced to 0, and non-planar (true 3D) ribbons are
// unsupported.
package ribbon

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/bjnortier/ribbon-3d/geom"
	"github.com/bjnortier/ribbon-3d/polyline"
)

const DEFAULT_WORKERS = 1

// Options configures a single Build invocation.
type Options struct {
	// Width is the perpendicular offset distance on each side of the
	// centerline. Required, must be positive.
	Width float64

	// Closed marks the path as a logical loop. It only skips the
	// outline-closing edges appended for open paths; the first and last
	// segments do not get a wrap-around joint.
	Closed bool

	// Workers sets the goroutine count for the per-segment offset phase.
	// Values below 1 mean DEFAULT_WORKERS. Joint resolution always runs
	// after every offset is complete, so the output is identical for any
	// worker count.
	Workers int
}

// Triangle is a single mesh face.
type Triangle [3]mgl64.Vec3

// Mesh is the ribbon output: the concatenated rectangle, stub, and cap-fan
// triangles, and the border outline. Consecutive Outline point pairs form
// border line segments, in emission order; points are neither deduplicated
// nor closed into a loop.
type Mesh struct {
	Triangles []Triangle
	Outline   []mgl64.Vec3
}

// Build produces the ribbon mesh for path. The path must hold at least two
// points and survive collinear filtering with at least two; all failures are
// reported as ErrInvalidInput or ErrDegenerateGeometry wrappings and leave
// no partial output.
func Build(path []mgl64.Vec3, opts Options) (Mesh, error) {
	if math.IsNaN(opts.Width) || math.IsInf(opts.Width, 0) || opts.Width <= 0 {
		return Mesh{}, fmt.Errorf("%w: width must be positive, got %v", ErrInvalidInput, opts.Width)
	}
	if len(path) < 2 {
		return Mesh{}, fmt.Errorf("%w: path needs at least 2 points, got %d", ErrInvalidInput, len(path))
	}

	// Project onto the working plane, rejecting malformed coordinates.
	flat := make([]mgl64.Vec3, len(path))
	for i, p := range path {
		for axis := 0; axis < 3; axis++ {
			if math.IsNaN(p[axis]) || math.IsInf(p[axis], 0) {
				return Mesh{}, fmt.Errorf("%w: malformed point %d: %v", ErrInvalidInput, i, p)
			}
		}
		flat[i] = mgl64.Vec3{p.X(), p.Y(), 0}
	}

	filtered := polyline.RemoveCollinear(flat)
	if len(filtered) < 2 {
		return Mesh{}, fmt.Errorf("%w: %d points left after collinear filtering", ErrInvalidInput, len(filtered))
	}

	segments := make([]geom.LineSegment, len(filtered)-1)
	for i := range segments {
		seg, err := geom.NewLineSegment(filtered[i], filtered[i+1])
		if err != nil {
			return Mesh{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		segments[i] = seg
	}

	// Offset phase. Each segment's offsets are independent, so this is the
	// one part of the build that may run on multiple workers; forEach blocks
	// until every offset is written before joint resolution reads them.
	workers := opts.Workers
	if workers < 1 {
		workers = DEFAULT_WORKERS
	}
	offsets := make([]offsetPair, len(segments))
	compute := func(i int) { offsets[i] = offsetSegments(segments[i], opts.Width) }
	if workers > 1 {
		forEach(workers, len(segments), compute)
	} else {
		for i := range segments {
			compute(i)
		}
	}

	joints := make([]joint, len(segments)-1)
	for i := range joints {
		j, err := resolveJoint(offsets[i], offsets[i+1], segments[i].To, opts.Width)
		if err != nil {
			return Mesh{}, fmt.Errorf("%w at joint %d: %v", ErrDegenerateGeometry, i, err)
		}
		joints[i] = j
	}

	// Assembly: a single forward pass threading the resolved left/right
	// start points of the next rectangle through each joint.
	var mesh Mesh
	leftStart, rightStart := offsets[0].left.From, offsets[0].right.From
	for i := range segments {
		leftEnd, rightEnd := offsets[i].left.To, offsets[i].right.To
		if i < len(joints) {
			leftEnd, rightEnd = joints[i].leftEnd, joints[i].rightEnd
		}
		appendQuad(&mesh, leftStart, rightStart, rightEnd, leftEnd)
		mesh.Outline = append(mesh.Outline, leftStart, leftEnd, rightStart, rightEnd)

		if i < len(joints) {
			appendJointGeometry(&mesh, joints[i])
			leftStart, rightStart = joints[i].nextLeftStart, joints[i].nextRightStart
		}
	}

	if !opts.Closed {
		// Close the visual border of an open ribbon: the first rectangle's
		// start edge and the last rectangle's end edge.
		last := len(segments) - 1
		mesh.Outline = append(mesh.Outline,
			offsets[0].left.From, offsets[0].right.From,
			offsets[last].left.To, offsets[last].right.To,
		)
	}

	return mesh, nil
}

// appendQuad triangulates the quad (p0, p1, p2, p3) as a fan from p0.
func appendQuad(mesh *Mesh, p0, p1, p2, p3 mgl64.Vec3) {
	mesh.Triangles = append(mesh.Triangles,
		Triangle{p0, p1, p2},
		Triangle{p0, p2, p3},
	)
}
