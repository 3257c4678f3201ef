// Package math3d provides small fixed-size vector and matrix types for the
// software rendering pipeline.
//
// Mat4 is stored row-major and follows the M * v convention: transforming a
// vector multiplies matrix rows against the column vector. All operations are
// value-based and side-effect free.
package math3d

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4D homogeneous vector.
type Vec4 struct {
	X, Y, Z, W float32
}

func V3(x, y, z float32) Vec3    { return Vec3{X: x, Y: y, Z: z} }
func V4(x, y, z, w float32) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

func (v Vec3) Add(o Vec3) Vec3     { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3     { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

// Normalize returns the unit vector. The zero vector normalizes to itself.
func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// Mat4 is a row-major 4x4 matrix: m[row][col].
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c] + a[r][3]*b[3][c]
		}
	}
	return out
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	return m
}

// Mat4Rotate builds a rotation of angleDeg degrees around axis. The axis is
// normalized first.
func Mat4Rotate(axis Vec3, angleDeg float32) Mat4 {
	axis = Normalize(axis)
	rad := float64(angleDeg) * math.Pi / 180
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		{c + x*x*t, x*y*t - z*s, x*z*t + y*s, 0},
		{y*x*t + z*s, c + y*y*t, y*z*t - x*s, 0},
		{z*x*t - y*s, z*y*t + x*s, c + z*z*t, 0},
		{0, 0, 0, 1},
	}
}

// Mat4Frustum builds the off-center perspective projection for the six
// frustum bounds.
func Mat4Frustum(left, right, bottom, top, near, far float32) Mat4 {
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -((far + near) / (far - near))
	d := -((2 * far * near) / (far - near))

	return Mat4{
		{(2 * near) / (right - left), 0, a, 0},
		{0, (2 * near) / (top - bottom), b, 0},
		{0, 0, c, d},
		{0, 0, -1, 0},
	}
}

// Mat4Ortho builds the off-center orthographic projection for the six bounds.
// Bounds must describe a non-degenerate box; the caller validates.
func Mat4Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	tx := -(right + left) / rl
	ty := -(top + bottom) / tb
	tz := -(far + near) / fn

	return Mat4{
		{2 / rl, 0, 0, tx},
		{0, 2 / tb, 0, ty},
		{0, 0, -2 / fn, tz},
		{0, 0, 0, 1},
	}
}
