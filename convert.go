package geocentric

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// CartographicFromCartesian converts a geocentric position to longitude and
// latitude in degrees and height in meters above the ellipsoid.
//
// It fails with ErrPointNearCenter for points at or extremely near the
// center, with ErrNoConvergence if the surface projection does not settle,
// and with ErrInvalidCartesian for non-finite input.
func (e *Ellipsoid) CartographicFromCartesian(cartesian Cartesian) (Cartographic, error) {
	longitude, latitude, height, err := e.toGeodetic(cartesian)
	if err != nil {
		return Cartographic{}, err
	}
	return Cartographic{
		Longitude: longitude.Degrees(),
		Latitude:  latitude.Degrees(),
		Height:    height,
	}, nil
}

// CartesianFromCartographic converts longitude and latitude in degrees and
// height in meters to a geocentric position.
func (e *Ellipsoid) CartesianFromCartographic(cartographic Cartographic) Cartesian {
	return e.fromGeodetic(
		s1.Angle(cartographic.Longitude)*s1.Degree,
		s1.Angle(cartographic.Latitude)*s1.Degree,
		cartographic.Height)
}

// CartesianFromRadians converts longitude and latitude in radians and
// height in meters to a geocentric position.
func (e *Ellipsoid) CartesianFromRadians(longitude, latitude, height float64) Cartesian {
	return e.fromGeodetic(s1.Angle(longitude), s1.Angle(latitude), height)
}

// ConvertFromGeodetic converts a geodetic coordinate and a height in meters
// to a geocentric position.
func (e *Ellipsoid) ConvertFromGeodetic(geodeticCoordinates s2.LatLng, height float64) Cartesian {
	return e.fromGeodetic(geodeticCoordinates.Lng, geodeticCoordinates.Lat, height)
}

// ConvertToGeodetic converts a geocentric position to a geodetic coordinate
// and a height in meters.
func (e *Ellipsoid) ConvertToGeodetic(cartesian Cartesian) (s2.LatLng, float64, error) {
	longitude, latitude, height, err := e.toGeodetic(cartesian)
	if err != nil {
		return s2.LatLng{}, 0, err
	}
	return s2.LatLng{Lat: latitude, Lng: longitude}, height, nil
}

func (e *Ellipsoid) toGeodetic(cartesian Cartesian) (longitude, latitude s1.Angle, height float64, err error) {
	p, err := e.ScaleToGeodeticSurface(cartesian)
	if err != nil {
		return 0, 0, 0, err
	}

	n := e.GeodeticSurfaceNormal(p)
	h := cartesian.Sub(p)

	longitude = s1.Angle(math.Atan2(n.Y, n.X))
	latitude = s1.Angle(math.Asin(n.Z))
	height = sign(h.Dot(cartesian)) * h.Magnitude()
	return longitude, latitude, height, nil
}

func (e *Ellipsoid) fromGeodetic(longitude, latitude s1.Angle, height float64) Cartesian {
	lng := longitude.Radians()
	lat := latitude.Radians()

	cosLatitude := math.Cos(lat)
	n := Cartesian{
		X: cosLatitude * math.Cos(lng),
		Y: cosLatitude * math.Sin(lng),
		Z: math.Sin(lat),
	}.Normalize()

	k := e.radiiSquared.MulComponents(n)
	gamma := math.Sqrt(n.Dot(k))
	k = Cartesian{X: k.X / gamma, Y: k.Y / gamma, Z: k.Z / gamma}

	return k.Add(n.Mul(height))
}
