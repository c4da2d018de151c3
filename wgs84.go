package geocentric

import "fmt"

const (
	wgs84EquatorialRadius = 6378137.0
	wgs84PolarRadius      = 6356752.3142451793

	// Squared distance, in units of the radii, below which a point is
	// treated as lying at the center.
	wgs84CenterToleranceSquared = 0.1
)

// WGS84 is the WGS84 ellipsoid.
var WGS84 *Ellipsoid

func init() {
	var err error
	WGS84, err = NewEllipsoid(wgs84EquatorialRadius, wgs84PolarRadius)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
}

// CartographicFromCartesian converts a geocentric position to geodetic
// coordinates on the WGS84 ellipsoid.
func CartographicFromCartesian(cartesian Cartesian) (Cartographic, error) {
	return WGS84.CartographicFromCartesian(cartesian)
}

// CartesianFromCartographic converts geodetic coordinates on the WGS84
// ellipsoid to a geocentric position.
func CartesianFromCartographic(cartographic Cartographic) Cartesian {
	return WGS84.CartesianFromCartographic(cartographic)
}
