package viz

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Mat3 is a row-major 3x3 matrix.
type Mat3 [9]float64

func Identity() Mat3 { return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1} }

func (m Mat3) Apply(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[1]*p.Y + m[2]*p.Z,
		m[3]*p.X + m[4]*p.Y + m[5]*p.Z,
		m[6]*p.X + m[7]*p.Y + m[8]*p.Z,
	}
}

// Euler holds rotation angles in radians, applied in XYZ order
// (the matrix is Rx·Ry·Rz).
type Euler struct {
	X, Y, Z float64
}

func (e Euler) Matrix() Mat3 {
	cx, sx := math.Cos(e.X), math.Sin(e.X)
	cy, sy := math.Cos(e.Y), math.Sin(e.Y)
	cz, sz := math.Cos(e.Z), math.Sin(e.Z)
	return Mat3{
		cy * cz, -cy * sz, sy,
		sx*sy*cz + cx*sz, -sx*sy*sz + cx*cz, -sx * cy,
		-cx*sy*cz + sx*sz, cx*sy*sz + sx*cz, cx * cy,
	}
}

// PerspectiveCamera looks down -Z from Position. FOV is the vertical field
// of view in degrees.
type PerspectiveCamera struct {
	FOV, Aspect, Near, Far float64
	Position               Vec3

	focal float64
}

func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjection()
	return c
}

// UpdateProjection must be called after FOV or Aspect change.
func (c *PerspectiveCamera) UpdateProjection() {
	c.focal = 1 / math.Tan(c.FOV*math.Pi/360)
}

// Project converts a world point to pixel coordinates on a w x h surface.
// Returns x, y, depth along the view axis, and visibility.
func (c *PerspectiveCamera) Project(p Vec3, w, h int) (int, int, float64, bool) {
	v := p.Sub(c.Position)
	depth := -v.Z
	if depth < c.Near || depth > c.Far || c.Aspect <= 0 {
		return 0, 0, depth, false
	}
	nx := c.focal / c.Aspect * v.X / depth
	ny := c.focal * v.Y / depth
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
		return 0, 0, depth, false
	}
	sx := int((nx + 1) / 2 * float64(w))
	sy := int((1 - ny) / 2 * float64(h))
	return sx, sy, depth, sx >= 0 && sx < w && sy >= 0 && sy < h
}

// Frame is one draw of a rigidly rotated point group.
type Frame struct {
	Points    []Vec3
	Transform Mat3
	Camera    *PerspectiveCamera
	Width     int
	Height    int
}

// Each projects every point through the group transform and calls fn for
// the visible ones. It returns the number of visible points.
func (f Frame) Each(fn func(x, y int, depth float64)) int {
	if f.Camera == nil || f.Width <= 0 || f.Height <= 0 {
		return 0
	}
	n := 0
	for _, p := range f.Points {
		x, y, d, ok := f.Camera.Project(f.Transform.Apply(p), f.Width, f.Height)
		if !ok {
			continue
		}
		fn(x, y, d)
		n++
	}
	return n
}
