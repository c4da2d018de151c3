package geocentric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/geocentric"
)

// onEllipsoid returns the residual of the ellipsoid equation at c.
func onEllipsoid(e *geocentric.Ellipsoid, c geocentric.Cartesian) float64 {
	s := c.MulComponents(e.OneOverRadii())
	return s.Dot(s) - 1
}

func TestScaleToGeodeticSurfaceIdempotent(t *testing.T) {
	e := geocentric.WGS84
	for lng := -180.0; lng <= 180; lng += 30 {
		for lat := -90.0; lat <= 90; lat += 10 {
			surface := e.CartesianFromCartographic(geocentric.Cartographic{Longitude: lng, Latitude: lat})
			p, err := e.ScaleToGeodeticSurface(surface)
			if err != nil {
				t.Fatalf("expected no error projecting %s, got %s", surface, err)
			}
			if d := p.Distance(surface); d > 1e-6 {
				t.Fatalf("expected %s, got %s (off by %g m)", surface, p, d)
			}
		}
	}
}

func TestScaleToGeodeticSurfaceAlongNormal(t *testing.T) {
	e := geocentric.WGS84
	for _, c := range []geocentric.Cartographic{
		{Longitude: 0, Latitude: 0, Height: 1e6},
		{Longitude: 45, Latitude: 45, Height: 1e5},
		{Longitude: -120, Latitude: -30, Height: -2000},
		{Longitude: 170, Latitude: 80, Height: 35786000},
	} {
		p := e.CartesianFromCartographic(c)
		s, err := e.ScaleToGeodeticSurface(p)
		require.NoError(t, err)

		assert.InDelta(t, 0, onEllipsoid(e, s), 1e-11, "%v", c)

		// The offset from the surface point is parallel to the normal there.
		n := e.GeodeticSurfaceNormal(s)
		offset := p.Sub(s).Normalize()
		assert.InDelta(t, 1, math.Abs(offset.Dot(n)), 1e-9, "%v", c)
		assert.InDelta(t, math.Abs(c.Height), p.Distance(s), 1e-5, "%v", c)
	}
}

func TestScaleToGeodeticSurfaceNearCenter(t *testing.T) {
	e := geocentric.WGS84

	_, err := e.ScaleToGeodeticSurface(geocentric.Cartesian{})
	assert.ErrorIs(t, err, geocentric.ErrPointNearCenter)

	// Squares underflow to zero.
	_, err = e.ScaleToGeodeticSurface(geocentric.Cartesian{X: 1e-300})
	assert.ErrorIs(t, err, geocentric.ErrPointNearCenter)

	// Inside the center tolerance the radial intersection is returned.
	p, err := e.ScaleToGeodeticSurface(geocentric.Cartesian{X: 1000})
	require.NoError(t, err)
	assert.InDelta(t, ellipsoidSemiMajorAxis, p.X, 1e-6)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.0, p.Z)

	p, err = e.ScaleToGeodeticSurface(geocentric.Cartesian{X: 1000, Y: 1000, Z: 1000})
	require.NoError(t, err)
	assert.InDelta(t, p.X, p.Y, 1e-9)
	assert.InDelta(t, p.X, p.Z, 1e-9)
	assert.InDelta(t, 0, onEllipsoid(e, p), 1e-12)
}

func TestScaleToGeodeticSurfaceInvalid(t *testing.T) {
	for _, c := range []geocentric.Cartesian{
		{X: math.NaN()},
		{Y: math.Inf(1)},
		{X: 1, Y: 2, Z: math.Inf(-1)},
	} {
		_, err := geocentric.WGS84.ScaleToGeodeticSurface(c)
		assert.ErrorIs(t, err, geocentric.ErrInvalidCartesian)
	}
}

func TestScaleToGeodeticSurfaceOverflow(t *testing.T) {
	// Squared components overflow to Inf and the residual goes NaN, so the
	// iteration can only stop at its cap.
	for _, c := range []geocentric.Cartesian{
		{X: 1e300},
		{X: -math.MaxFloat64, Y: math.MaxFloat64},
	} {
		_, err := geocentric.WGS84.ScaleToGeodeticSurface(c)
		assert.ErrorIs(t, err, geocentric.ErrNoConvergence, "%s", c)
	}
}

func TestScaleToGeodeticSurfaceCrashers(t *testing.T) {
	for _, c := range []geocentric.Cartesian{
		{X: 1e300},
		{X: -math.MaxFloat64, Y: math.MaxFloat64},
		{X: math.SmallestNonzeroFloat64, Z: 1e200},
		{X: 1e150, Y: -1e150, Z: 1e150},
		{Z: 2e6},
	} {
		p, err := geocentric.WGS84.ScaleToGeodeticSurface(c)
		if err == nil && !p.IsFinite() {
			t.Errorf("expected a finite projection of %s, got %s", c, p)
		}
	}
}

func TestGeodeticSurfaceNormal(t *testing.T) {
	e := geocentric.WGS84
	n := e.GeodeticSurfaceNormal(geocentric.Cartesian{X: ellipsoidSemiMajorAxis})
	assert.InDelta(t, 1, n.X, 1e-15)
	assert.Equal(t, 0.0, n.Y)
	assert.Equal(t, 0.0, n.Z)

	n = e.GeodeticSurfaceNormal(geocentric.Cartesian{Z: -ellipsoidSemiMinorAxis})
	assert.InDelta(t, -1, n.Z, 1e-15)

	// Off the axes the normal is not radial.
	s := e.CartesianFromCartographic(geocentric.Cartographic{Longitude: 0, Latitude: 45})
	n = e.GeodeticSurfaceNormal(s)
	assert.InDelta(t, 45, math.Asin(n.Z)*180/math.Pi, 1e-12)
	assert.Greater(t, math.Abs(n.Dot(s.Normalize())-1), 1e-7)
}
