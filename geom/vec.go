package geom

import "math"

// Vec is a 2D vector in continuous pixel space.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V constructs a Vec from its components.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v − o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Dot returns the dot product v·o.
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// LenSq returns the squared length of v. Cheaper than Len when only
// comparisons are needed.
func (v Vec) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }

// DistSq returns the squared distance between v and o.
func (v Vec) DistSq(o Vec) float64 { return v.Sub(o).LenSq() }

// Norm returns the unit vector pointing along v, or the zero vector when
// v is too short to carry a direction.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l < 1e-9 {
		return Vec{}
	}

	return Vec{v.X / l, v.Y / l}
}

// Rotate returns v rotated by rad radians.
func (v Vec) Rotate(rad float64) Vec {
	sin, cos := math.Sincos(rad)

	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Angle returns the angle of v in radians, in (−π, π].
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }

// ClampLen returns v shortened to max when it is longer than max.
func (v Vec) ClampLen(max float64) Vec {
	if l := v.Len(); l > max && l > 0 {
		return v.Scale(max / l)
	}

	return v
}
