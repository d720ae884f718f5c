package ribbon

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/bjnortier/ribbon-3d/geom"
)

// upAxis fixes the working plane. Left and right offsets are defined by the
// cross product with this axis, so the sides are consistent winding-wise
// rather than relative to the path's travel.
var upAxis = mgl64.Vec3{0, 0, 1}

// offsetPair holds a center segment's parallel offset segments.
type offsetPair struct {
	left  geom.LineSegment // displaced +width along dir
	right geom.LineSegment // displaced -width along dir
	dir   mgl64.Vec3       // unit left-offset direction, in the XY plane
}

func offsetSegments(seg geom.LineSegment, width float64) offsetPair {
	dir := upAxis.Cross(seg.Direction).Normalize()
	return offsetPair{
		left:  seg.Translated(dir.Mul(width)),
		right: seg.Translated(dir.Mul(-width)),
		dir:   dir,
	}
}

// joint is the resolved geometry at the shared vertex of two consecutive
// center segments: the mitered inside corner, the rectangle corners it
// imposes on both segments, and the raw outward offset points bridged by
// the cap fan.
type joint struct {
	insideLeft bool       // whether the left side is the mitered corner
	inside     mgl64.Vec3 // the chosen inside intersection (miter point)
	pivot      mgl64.Vec3 // raw path vertex, cap-fan center

	leftEnd  mgl64.Vec3 // resolved rectangle end corners of the first segment
	rightEnd mgl64.Vec3

	nextLeftStart  mgl64.Vec3 // resolved rectangle start corners of the second segment
	nextRightStart mgl64.Vec3

	cornerA mgl64.Vec3 // raw outward offset endpoint of the first segment
	cornerB mgl64.Vec3 // raw outward offset start of the second segment
}

// resolveJoint intersects the left and right offset lines of two adjacent
// segments and decides the join topology. The side whose intersection lies
// closer to its own offset-segment start is the converging side: it becomes
// the sharp miter. The other side diverges and keeps a gap, later filled by
// two stub quads and a cap fan. vertex is the raw path point shared by the
// two segments.
func resolveJoint(a, b offsetPair, vertex mgl64.Vec3, width float64) (joint, error) {
	leftInt, err := geom.IntersectXY(a.left.From, a.left.To, b.left.From, b.left.To)
	if err != nil {
		return joint{}, err
	}
	rightInt, err := geom.IntersectXY(a.right.From, a.right.To, b.right.From, b.right.To)
	if err != nil {
		return joint{}, err
	}

	j := joint{
		insideLeft: leftInt.Sub(a.left.From).Len() < rightInt.Sub(a.right.From).Len(),
		pivot:      vertex,
	}

	// Both segments snap to the inside intersection on the mitered side. On
	// the outside, each segment ends where the inside point projects onto
	// its own outside offset line (2*width along the outward direction).
	if j.insideLeft {
		j.inside = leftInt
		j.leftEnd = leftInt
		j.nextLeftStart = leftInt
		j.rightEnd = leftInt.Add(a.dir.Mul(-2 * width))
		j.nextRightStart = leftInt.Add(b.dir.Mul(-2 * width))
		j.cornerA = vertex.Add(a.dir.Mul(-width))
		j.cornerB = vertex.Add(b.dir.Mul(-width))
	} else {
		j.inside = rightInt
		j.rightEnd = rightInt
		j.nextRightStart = rightInt
		j.leftEnd = rightInt.Add(a.dir.Mul(2 * width))
		j.nextLeftStart = rightInt.Add(b.dir.Mul(2 * width))
		j.cornerA = vertex.Add(a.dir.Mul(width))
		j.cornerB = vertex.Add(b.dir.Mul(width))
	}
	return j, nil
}

// appendJointGeometry emits the geometry filling the outside corner of a
// joint: one stub quad per adjacent segment bridging the rectangle edge to
// the raw vertex, then the cap fan between the two outward offset points.
func appendJointGeometry(mesh *Mesh, j joint) {
	var outA, outB, fanFrom, fanTo mgl64.Vec3
	if j.insideLeft {
		outA, outB = j.rightEnd, j.nextRightStart
		fanFrom, fanTo = j.cornerA, j.cornerB
	} else {
		outA, outB = j.leftEnd, j.nextLeftStart
		fanFrom, fanTo = j.cornerB, j.cornerA
	}

	appendQuad(mesh, j.inside, outA, j.cornerA, j.pivot)
	appendQuad(mesh, j.inside, j.pivot, j.cornerB, outB)
	// Stub trailing edges belong to the border.
	mesh.Outline = append(mesh.Outline, outA, j.cornerA, j.cornerB, outB)

	points := fanPoints(j.pivot, fanFrom, fanTo)
	for k := 0; k+1 < len(points); k++ {
		mesh.Triangles = append(mesh.Triangles, Triangle{points[k], j.pivot, points[k+1]})
		mesh.Outline = append(mesh.Outline, points[k], points[k+1])
	}
}
