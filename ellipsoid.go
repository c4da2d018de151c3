package geocentric

import (
	"errors"
	"math"
)

// Ellipsoid is an ellipsoid of revolution used for conversions between
// geocentric Cartesian and geodetic coordinates. Its parameters are fixed
// at construction, so one Ellipsoid may be shared by any number of
// goroutines.
type Ellipsoid struct {
	radii                  Cartesian
	radiiSquared           Cartesian
	oneOverRadii           Cartesian
	oneOverRadiiSquared    Cartesian
	centerToleranceSquared float64
}

// NewEllipsoid constructs an Ellipsoid from its equatorial (semi-major)
// and polar (semi-minor) radii in meters.
func NewEllipsoid(equatorialRadius, polarRadius float64) (*Ellipsoid, error) {
	if !isFinite(equatorialRadius) || equatorialRadius <= 0.0 {
		return nil, errors.New("equatorial radius must be a finite number greater than zero")
	}
	if !isFinite(polarRadius) || polarRadius <= 0.0 {
		return nil, errors.New("polar radius must be a finite number greater than zero")
	}

	a := equatorialRadius
	b := polarRadius
	e := &Ellipsoid{
		radii:        Cartesian{X: a, Y: a, Z: b},
		radiiSquared: Cartesian{X: a * a, Y: a * a, Z: b * b},
		oneOverRadii: Cartesian{X: 1.0 / a, Y: 1.0 / a, Z: 1.0 / b},
		oneOverRadiiSquared: Cartesian{
			X: 1.0 / (a * a),
			Y: 1.0 / (a * a),
			Z: 1.0 / (b * b),
		},
		centerToleranceSquared: wgs84CenterToleranceSquared,
	}
	return e, nil
}

// NewEllipsoidFromFlattening constructs an Ellipsoid from its semi-major
// axis in meters and its flattening.
func NewEllipsoidFromFlattening(semiMajorAxis, flattening float64) (*Ellipsoid, error) {
	if !isFinite(flattening) || flattening < 0 || flattening >= 1 {
		return nil, errors.New("flattening must be in the range [0, 1)")
	}
	return NewEllipsoid(semiMajorAxis, semiMajorAxis*(1-flattening))
}

// Radii returns the radii along the x, y and z axes.
func (e *Ellipsoid) Radii() Cartesian { return e.radii }

// RadiiSquared returns the squared radii along each axis.
func (e *Ellipsoid) RadiiSquared() Cartesian { return e.radiiSquared }

// OneOverRadii returns the reciprocal of each radius.
func (e *Ellipsoid) OneOverRadii() Cartesian { return e.oneOverRadii }

// OneOverRadiiSquared returns the reciprocal of each squared radius.
func (e *Ellipsoid) OneOverRadiiSquared() Cartesian { return e.oneOverRadiiSquared }

// CenterToleranceSquared returns the squared, radius-normalized distance
// from the center below which ScaleToGeodeticSurface falls back to a
// radial projection.
func (e *Ellipsoid) CenterToleranceSquared() float64 { return e.centerToleranceSquared }

// MaximumRadius returns the largest of the three radii.
func (e *Ellipsoid) MaximumRadius() float64 {
	return math.Max(e.radii.X, math.Max(e.radii.Y, e.radii.Z))
}

// MinimumRadius returns the smallest of the three radii.
func (e *Ellipsoid) MinimumRadius() float64 {
	return math.Min(e.radii.X, math.Min(e.radii.Y, e.radii.Z))
}
