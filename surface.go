package geocentric

import "math"

const (
	surfaceEpsilon       = 1e-12 // residual of the ellipsoid equation
	maxSurfaceIterations = 100
)

// ScaleToGeodeticSurface returns the point on the ellipsoid surface whose
// outward normal passes through cartesian.
//
// Points whose radius-normalized squared distance from the center is below
// CenterToleranceSquared are projected radially instead, and
// ErrPointNearCenter is returned when even that is impossible.
func (e *Ellipsoid) ScaleToGeodeticSurface(cartesian Cartesian) (Cartesian, error) {
	if !cartesian.IsFinite() {
		return Cartesian{}, ErrInvalidCartesian
	}

	positionX := cartesian.X
	positionY := cartesian.Y
	positionZ := cartesian.Z

	oneOverRadiiX := e.oneOverRadii.X
	oneOverRadiiY := e.oneOverRadii.Y
	oneOverRadiiZ := e.oneOverRadii.Z

	x2 := positionX * positionX * oneOverRadiiX * oneOverRadiiX
	y2 := positionY * positionY * oneOverRadiiY * oneOverRadiiY
	z2 := positionZ * positionZ * oneOverRadiiZ * oneOverRadiiZ

	squaredNorm := x2 + y2 + z2
	ratio := math.Sqrt(1.0 / squaredNorm)

	// Start from the radial intersection.
	intersection := cartesian.Mul(ratio)

	if squaredNorm < e.centerToleranceSquared {
		if !isFinite(ratio) {
			return Cartesian{}, ErrPointNearCenter
		}
		return intersection, nil
	}

	oneOverRadiiSquaredX := e.oneOverRadiiSquared.X
	oneOverRadiiSquaredY := e.oneOverRadiiSquared.Y
	oneOverRadiiSquaredZ := e.oneOverRadiiSquared.Z

	// The gradient at the intersection stands in for the true normal; the
	// magnitude difference is absorbed by lambda.
	gradient := intersection.MulComponents(e.oneOverRadiiSquared).Mul(2.0)

	lambda := ((1.0 - ratio) * cartesian.Magnitude()) / (0.5 * gradient.Magnitude())
	correction := 0.0

	var xMultiplier, yMultiplier, zMultiplier float64
	for i := 0; ; i++ {
		if i == maxSurfaceIterations {
			return Cartesian{}, ErrNoConvergence
		}
		lambda -= correction

		xMultiplier = 1.0 / (1.0 + lambda*oneOverRadiiSquaredX)
		yMultiplier = 1.0 / (1.0 + lambda*oneOverRadiiSquaredY)
		zMultiplier = 1.0 / (1.0 + lambda*oneOverRadiiSquaredZ)

		xMultiplier2 := xMultiplier * xMultiplier
		yMultiplier2 := yMultiplier * yMultiplier
		zMultiplier2 := zMultiplier * zMultiplier

		xMultiplier3 := xMultiplier2 * xMultiplier
		yMultiplier3 := yMultiplier2 * yMultiplier
		zMultiplier3 := zMultiplier2 * zMultiplier

		f := x2*xMultiplier2 + y2*yMultiplier2 + z2*zMultiplier2 - 1.0

		denominator := x2*xMultiplier3*oneOverRadiiSquaredX +
			y2*yMultiplier3*oneOverRadiiSquaredY +
			z2*zMultiplier3*oneOverRadiiSquaredZ
		derivative := -2.0 * denominator
		correction = f / derivative

		// NaN never satisfies this, so a poisoned iteration runs into the cap.
		if math.Abs(f) <= surfaceEpsilon {
			break
		}
	}

	return Cartesian{
		X: positionX * xMultiplier,
		Y: positionY * yMultiplier,
		Z: positionZ * zMultiplier,
	}, nil
}

// GeodeticSurfaceNormal returns the outward unit normal of the ellipsoid at
// a point on its surface.
func (e *Ellipsoid) GeodeticSurfaceNormal(surface Cartesian) Cartesian {
	return surface.MulComponents(e.oneOverRadiiSquared).Normalize()
}
