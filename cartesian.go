package geocentric

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Cartesian is a geocentric position in meters with its origin at the
// ellipsoid center.
type Cartesian r3.Vector

// Vector returns c as an r3.Vector.
func (c Cartesian) Vector() r3.Vector { return r3.Vector(c) }

func (c Cartesian) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", c.X, c.Y, c.Z)
}

// IsFinite reports whether every component of c is a finite number.
func (c Cartesian) IsFinite() bool {
	return isFinite(c.X) && isFinite(c.Y) && isFinite(c.Z)
}

// Add returns the sum of c and o.
func (c Cartesian) Add(o Cartesian) Cartesian { return Cartesian(c.Vector().Add(o.Vector())) }

// Sub returns c - o.
func (c Cartesian) Sub(o Cartesian) Cartesian { return Cartesian(c.Vector().Sub(o.Vector())) }

// Mul returns c scaled by m.
func (c Cartesian) Mul(m float64) Cartesian { return Cartesian(c.Vector().Mul(m)) }

// MulComponents returns the componentwise product of c and o.
func (c Cartesian) MulComponents(o Cartesian) Cartesian {
	return Cartesian{X: c.X * o.X, Y: c.Y * o.Y, Z: c.Z * o.Z}
}

// Dot returns the dot product of c and o.
func (c Cartesian) Dot(o Cartesian) float64 { return c.Vector().Dot(o.Vector()) }

// Magnitude returns the Euclidean length of c.
func (c Cartesian) Magnitude() float64 { return c.Vector().Norm() }

// Distance returns the Euclidean distance between c and o.
func (c Cartesian) Distance(o Cartesian) float64 { return c.Vector().Distance(o.Vector()) }

// Normalize returns the unit vector in the direction of c. The zero vector
// normalizes to itself.
func (c Cartesian) Normalize() Cartesian { return Cartesian(c.Vector().Normalize()) }

// sign returns 0 for 0, otherwise 1 or -1 matching the sign of v.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
