package geocentric

import "errors"

var (
	// ErrPointNearCenter is returned when a point is too close to the
	// ellipsoid center to be projected onto its surface.
	ErrPointNearCenter = errors.New("cannot project point near the ellipsoid center")

	// ErrNoConvergence is returned when the surface projection does not
	// reach its tolerance within maxSurfaceIterations steps.
	ErrNoConvergence = errors.New("surface projection did not converge")

	// ErrInvalidCartesian is returned for positions with a NaN or infinite
	// component.
	ErrInvalidCartesian = errors.New("cartesian position is not finite")
)
