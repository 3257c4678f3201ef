package math3d

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch: %v", got)
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch: %v", got)
	}
}

func TestMat4TranslatePoint(t *testing.T) {
	m := Mat4Translate(V3(5, 0, 0))
	got := Mat4MulV4(m, V4(0, 0, 0, 1))
	if got != (Vec4{X: 5, Y: 0, Z: 0, W: 1}) {
		t.Fatalf("translate=%v", got)
	}
}

func TestMat4ScalePoint(t *testing.T) {
	m := Mat4Scale(V3(2, 3, 4))
	got := Mat4MulV4(m, V4(1, 1, 1, 1))
	if got != (Vec4{X: 2, Y: 3, Z: 4, W: 1}) {
		t.Fatalf("scale=%v", got)
	}
}

func TestMat4RotateZ90(t *testing.T) {
	m := Mat4Rotate(V3(0, 0, 1), 90)
	got := Mat4MulV4(m, V4(1, 0, 0, 1))
	if math.Abs(float64(got.X)) > 1e-6 || math.Abs(float64(got.Y-1)) > 1e-6 {
		t.Fatalf("rotate z 90: %v", got)
	}
}

func TestMat4RotateNormalizesAxis(t *testing.T) {
	a := Mat4Rotate(V3(0, 0, 10), 45)
	b := Mat4Rotate(V3(0, 0, 1), 45)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(float64(a[r][c]-b[r][c])) > 1e-6 {
				t.Fatalf("axis scaling changed rotation: %v vs %v", a, b)
			}
		}
	}
}

func TestMat4OrthoClosedForm(t *testing.T) {
	m := Mat4Ortho(-1, 1, -1, 1, 1, 10)
	want := Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -2.0 / 9.0, -11.0 / 9.0},
		{0, 0, 0, 1},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(float64(m[r][c]-want[r][c])) > 1e-6 {
				t.Fatalf("ortho[%d][%d]=%v want %v", r, c, m[r][c], want[r][c])
			}
		}
	}
}

func TestMat4FrustumCenterRay(t *testing.T) {
	m := Mat4Frustum(-1, 1, -1, 1, 1, 10)
	// A point on the near plane center projects to NDC z=-1 after divide.
	got := Mat4MulV4(m, V4(0, 0, -1, 1))
	if got.W != 1 {
		t.Fatalf("frustum w=%v", got.W)
	}
	if math.Abs(float64(got.Z/got.W+1)) > 1e-6 {
		t.Fatalf("near plane should map to ndc z=-1, got %v", got.Z/got.W)
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(V3(3, 0, 4))
	if math.Abs(float64(Len(v)-1)) > 1e-6 {
		t.Fatalf("len=%v", Len(v))
	}
	if (Normalize(Vec3{})) != (Vec3{}) {
		t.Fatalf("zero vector should normalize to zero")
	}
}

func TestCrossRightHanded(t *testing.T) {
	if got := Cross(V3(1, 0, 0), V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Fatalf("cross=%v", got)
	}
}
