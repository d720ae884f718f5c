package ribbon

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/bjnortier/ribbon-3d/geom"
)

func mustSegment(t *testing.T, from, to mgl64.Vec3) geom.LineSegment {
	t.Helper()
	seg, err := geom.NewLineSegment(from, to)
	if err != nil {
		t.Fatalf("bad test segment: %v", err)
	}
	return seg
}

func TestOffsetSegments(t *testing.T) {
	seg := mustSegment(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0})
	offs := offsetSegments(seg, 1)

	// cross(+Z, +X) = +Y: the left side is up.
	if !vec3Equal(offs.dir, mgl64.Vec3{0, 1, 0}) {
		t.Errorf("expected offset direction (0,1,0), got %v", offs.dir)
	}
	if !vec3Equal(offs.left.From, mgl64.Vec3{0, 1, 0}) || !vec3Equal(offs.left.To, mgl64.Vec3{10, 1, 0}) {
		t.Errorf("left offset wrong: %v → %v", offs.left.From, offs.left.To)
	}
	if !vec3Equal(offs.right.From, mgl64.Vec3{0, -1, 0}) || !vec3Equal(offs.right.To, mgl64.Vec3{10, -1, 0}) {
		t.Errorf("right offset wrong: %v → %v", offs.right.From, offs.right.To)
	}
}

func TestResolveJoint_LeftTurn(t *testing.T) {
	a := offsetSegments(mustSegment(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}), 1)
	b := offsetSegments(mustSegment(t, mgl64.Vec3{10, 0, 0}, mgl64.Vec3{10, 10, 0}), 1)

	j, err := resolveJoint(a, b, mgl64.Vec3{10, 0, 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !j.insideLeft {
		t.Fatal("a left bend must mitre the left side")
	}
	if !vec3Equal(j.inside, mgl64.Vec3{9, 1, 0}) {
		t.Errorf("expected inside intersection (9,1,0), got %v", j.inside)
	}
	if !vec3Equal(j.leftEnd, mgl64.Vec3{9, 1, 0}) || !vec3Equal(j.nextLeftStart, mgl64.Vec3{9, 1, 0}) {
		t.Error("both segments must snap to the inside intersection on the mitered side")
	}
	if !vec3Equal(j.rightEnd, mgl64.Vec3{9, -1, 0}) {
		t.Errorf("expected resolved right end (9,-1,0), got %v", j.rightEnd)
	}
	if !vec3Equal(j.nextRightStart, mgl64.Vec3{11, 1, 0}) {
		t.Errorf("expected resolved next right start (11,1,0), got %v", j.nextRightStart)
	}
	if !vec3Equal(j.cornerA, mgl64.Vec3{10, -1, 0}) || !vec3Equal(j.cornerB, mgl64.Vec3{11, 0, 0}) {
		t.Errorf("raw outward corners wrong: %v, %v", j.cornerA, j.cornerB)
	}
}

func TestResolveJoint_RightTurn(t *testing.T) {
	a := offsetSegments(mustSegment(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}), 1)
	b := offsetSegments(mustSegment(t, mgl64.Vec3{10, 0, 0}, mgl64.Vec3{10, -10, 0}), 1)

	j, err := resolveJoint(a, b, mgl64.Vec3{10, 0, 0}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if j.insideLeft {
		t.Fatal("a right bend must mitre the right side")
	}
	if !vec3Equal(j.inside, mgl64.Vec3{9, -1, 0}) {
		t.Errorf("expected inside intersection (9,-1,0), got %v", j.inside)
	}
	if !vec3Equal(j.leftEnd, mgl64.Vec3{9, 1, 0}) {
		t.Errorf("expected resolved left end (9,1,0), got %v", j.leftEnd)
	}
	if !vec3Equal(j.cornerA, mgl64.Vec3{10, 1, 0}) || !vec3Equal(j.cornerB, mgl64.Vec3{11, 0, 0}) {
		t.Errorf("raw outward corners wrong: %v, %v", j.cornerA, j.cornerB)
	}
}

func TestResolveJoint_TieBreakMirrorSymmetry(t *testing.T) {
	// Bending up by θ selects the left side exactly when bending down by
	// the same θ selects the right side.
	for _, deg := range []float64{10, 45, 90, 135, 170} {
		rad := mgl64.DegToRad(deg)
		up := mgl64.Vec3{10 + 10*math.Cos(rad), 10 * math.Sin(rad), 0}
		down := mgl64.Vec3{up.X(), -up.Y(), 0}

		a := offsetSegments(mustSegment(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}), 1)
		bUp := offsetSegments(mustSegment(t, mgl64.Vec3{10, 0, 0}, up), 1)
		bDown := offsetSegments(mustSegment(t, mgl64.Vec3{10, 0, 0}, down), 1)

		jUp, err := resolveJoint(a, bUp, mgl64.Vec3{10, 0, 0}, 1)
		if err != nil {
			t.Fatalf("θ=%v up: %v", deg, err)
		}
		jDown, err := resolveJoint(a, bDown, mgl64.Vec3{10, 0, 0}, 1)
		if err != nil {
			t.Fatalf("θ=%v down: %v", deg, err)
		}

		if !jUp.insideLeft {
			t.Errorf("θ=%v: upward bend should mitre the left side", deg)
		}
		if jDown.insideLeft {
			t.Errorf("θ=%v: downward bend should mitre the right side", deg)
		}
	}
}

func TestResolveJoint_ParallelOffsetsFail(t *testing.T) {
	// Collinear segments never reach joint resolution through Build (the
	// filter removes the shared point); fed in directly they must fail
	// rather than return a bogus point.
	a := offsetSegments(mustSegment(t, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 0, 0}), 1)
	b := offsetSegments(mustSegment(t, mgl64.Vec3{10, 0, 0}, mgl64.Vec3{20, 0, 0}), 1)

	if _, err := resolveJoint(a, b, mgl64.Vec3{10, 0, 0}, 1); err == nil {
		t.Fatal("expected an error for parallel offset lines")
	}
}

func TestBuild_ZigZagThreadsJointState(t *testing.T) {
	// Two joints with opposite bend sides: the resolved corners of the
	// middle rectangle come from both neighbors.
	path := []mgl64.Vec3{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {20, 10, 0}}
	mesh, err := Build(path, Options{Width: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3 rectangles ×2 + 2 joints × (2 stubs ×2 + 9 fan triangles).
	if len(mesh.Triangles) != 32 {
		t.Fatalf("expected 32 triangles, got %d", len(mesh.Triangles))
	}

	for _, v := range []mgl64.Vec3{
		{9, 1, 0},  // first miter
		{11, 1, 0}, // middle rectangle right start
		{11, 9, 0}, // second miter
		{9, 9, 0},  // middle rectangle left end
	} {
		if !meshHasVertex(mesh, v) {
			t.Errorf("expected middle rectangle corner %v in mesh", v)
		}
	}
}
