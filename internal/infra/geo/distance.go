// Package geo implements geodesic distance on the WGS-84 ellipsoid and the
// bounding boxes used to prefilter proximity searches.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/tidwall/geodesic"
)

// WGS-84 ellipsoid parameters.
const (
	SemiMajorAxis = 6378137.0
	Flattening    = 1 / 298.257223563
	SemiMinorAxis = SemiMajorAxis * (1 - Flattening)
)

// MaxDistanceKm is the longest geodesic on the WGS-84 ellipsoid (half a
// meridian). Every pair of points is at most this far apart.
const MaxDistanceKm = 20003.9314586

// DistanceKm returns the ellipsoidal distance between a and b in kilometres.
func DistanceKm(a, b orb.Point) float64 {
	return DistanceMeters(a, b) / 1000
}

// DistanceMeters returns the geodesic distance between a and b on the WGS-84
// ellipsoid (Karney's algorithm, accurate to nanometres and convergent for
// antipodal points). Coincident points yield exactly 0.
func DistanceMeters(a, b orb.Point) float64 {
	if a.Equal(b) {
		return 0
	}

	var s12 float64
	geodesic.WGS84.Inverse(a.Lat(), a.Lon(), b.Lat(), b.Lon(), &s12, nil, nil)

	return s12
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
