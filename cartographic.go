package geocentric

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Cartographic is a geodetic position: longitude and latitude in degrees
// and height in meters above the ellipsoid surface. Height is negative
// below the surface.
type Cartographic struct {
	Longitude float64
	Latitude  float64
	Height    float64
}

// CartographicFromLatLng builds a Cartographic from an s2.LatLng and a
// height in meters.
func CartographicFromLatLng(ll s2.LatLng, height float64) Cartographic {
	return Cartographic{
		Longitude: ll.Lng.Degrees(),
		Latitude:  ll.Lat.Degrees(),
		Height:    height,
	}
}

// LatLng returns the longitude and latitude of c as an s2.LatLng. The
// height is dropped.
func (c Cartographic) LatLng() s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(c.Latitude) * s1.Degree,
		Lng: s1.Angle(c.Longitude) * s1.Degree,
	}
}

func (c Cartographic) String() string {
	return fmt.Sprintf("[lon %.9f, lat %.9f, h %.6f]", c.Longitude, c.Latitude, c.Height)
}
