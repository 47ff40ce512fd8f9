package mathutil

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrComponentIndex is returned by the checked component accessors.
var ErrComponentIndex = errors.New("mathutil: component index out of range")

// Vec3 is a 3-component vector (value type, stack-allocated).
// Index 0, 1, 2 map to x, y, z. The zero value is (0, 0, 0).
type Vec3 [3]float32

// Splat returns a vector with all three components set to a.
func Splat(a float32) Vec3 {
	return Vec3{a, a, a}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

// Component returns v[i], reporting an error instead of panicking for i outside 0..2.
func (v Vec3) Component(i int) (float32, error) {
	if i < 0 || i > 2 {
		return 0, fmt.Errorf("%w: %d", ErrComponentIndex, i)
	}
	return v[i], nil
}

// SetComponent sets v[i] with the same check as Component.
func (v *Vec3) SetComponent(i int, f float32) error {
	if i < 0 || i > 2 {
		return fmt.Errorf("%w: %d", ErrComponentIndex, i)
	}
	v[i] = f
	return nil
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul is the componentwise product.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Div is the componentwise quotient. Zero components follow IEEE rules.
func (a Vec3) Div(b Vec3) Vec3 {
	return Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// AddAssign adds b to v in place and returns v for chaining.
func (v *Vec3) AddAssign(b Vec3) *Vec3 {
	v[0] += b[0]
	v[1] += b[1]
	v[2] += b[2]
	return v
}

func (v *Vec3) SubAssign(b Vec3) *Vec3 {
	v[0] -= b[0]
	v[1] -= b[1]
	v[2] -= b[2]
	return v
}

func (v *Vec3) MulAssign(b Vec3) *Vec3 {
	v[0] *= b[0]
	v[1] *= b[1]
	v[2] *= b[2]
	return v
}

func (v *Vec3) DivAssign(b Vec3) *Vec3 {
	v[0] /= b[0]
	v[1] /= b[1]
	v[2] /= b[2]
	return v
}

// DivScalarAssign multiplies v by 1/s in place.
func (v *Vec3) DivScalarAssign(s float32) *Vec3 {
	inv := 1 / s
	v[0] *= inv
	v[1] *= inv
	v[2] *= inv
	return v
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross is the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// LenSq is the squared length, v·v.
func (v Vec3) LenSq() float32 {
	return v.Dot(v)
}

func (v Vec3) Len() float32 {
	return math32.Sqrt(v.LenSq())
}

// Normalize returns v scaled to unit length.
// A zero vector yields NaN components; callers must not pass one.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Len())
}

// Lerp returns a*(1-t) + b*t.
func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// NearEqual reports whether every component of a and b differs by at most eps.
func (a Vec3) NearEqual(b Vec3, eps float32) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
