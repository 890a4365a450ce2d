package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// minCurvatureRadius is the smallest radius of curvature of the WGS-84
// ellipsoid (b^2/a, the meridional radius at the equator). Measuring angles on
// a sphere of this radius never overestimates how far a point can be from the
// centre, so boxes derived from it contain every point within the ellipsoidal
// radius.
const minCurvatureRadius = SemiMinorAxis * SemiMinorAxis / SemiMajorAxis

// boundsMargin absorbs floating-point error at the box edges.
const boundsMargin = 1.0001

// SearchBounds returns the longitude/latitude boxes that contain every point
// whose ellipsoidal distance from center is at most radiusKm. A box crossing
// the antimeridian is split in two; a box reaching a pole spans all longitudes.
func SearchBounds(center orb.Point, radiusKm float64) []orb.Bound {
	delta := radiusKm * 1000 / minCurvatureRadius * boundsMargin
	if delta >= math.Pi {
		return []orb.Bound{WorldBound()}
	}

	lat := toRadians(center.Lat())
	minLat := lat - delta
	maxLat := lat + delta

	if minLat <= -math.Pi/2 || maxLat >= math.Pi/2 {
		return []orb.Bound{{
			Min: orb.Point{-180, toDegrees(math.Max(minLat, -math.Pi/2))},
			Max: orb.Point{180, toDegrees(math.Min(maxLat, math.Pi/2))},
		}}
	}

	ratio := math.Sin(delta) / math.Cos(lat)
	if ratio >= 1 {
		return []orb.Bound{{
			Min: orb.Point{-180, toDegrees(minLat)},
			Max: orb.Point{180, toDegrees(maxLat)},
		}}
	}

	dLon := toDegrees(math.Asin(ratio))
	minLon := center.Lon() - dLon
	maxLon := center.Lon() + dLon
	minLatDeg, maxLatDeg := toDegrees(minLat), toDegrees(maxLat)

	switch {
	case minLon < -180:
		return []orb.Bound{
			{Min: orb.Point{minLon + 360, minLatDeg}, Max: orb.Point{180, maxLatDeg}},
			{Min: orb.Point{-180, minLatDeg}, Max: orb.Point{maxLon, maxLatDeg}},
		}
	case maxLon > 180:
		return []orb.Bound{
			{Min: orb.Point{minLon, minLatDeg}, Max: orb.Point{180, maxLatDeg}},
			{Min: orb.Point{-180, minLatDeg}, Max: orb.Point{maxLon - 360, maxLatDeg}},
		}
	default:
		return []orb.Bound{{Min: orb.Point{minLon, minLatDeg}, Max: orb.Point{maxLon, maxLatDeg}}}
	}
}

// WorldBound covers every valid coordinate.
func WorldBound() orb.Bound {
	return orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}
}

// BoundsContain reports whether p lies in any of the boxes, edges included.
func BoundsContain(bounds []orb.Bound, p orb.Point) bool {
	for _, b := range bounds {
		if b.Contains(p) {
			return true
		}
	}

	return false
}

// SphereSearchRadiusKm converts an ellipsoidal search radius into the radius
// a great-circle filter on a sphere of sphereRadiusM metres must use so that
// it still contains every point within radiusKm on the ellipsoid.
func SphereSearchRadiusKm(radiusKm, sphereRadiusM float64) float64 {
	return radiusKm * sphereRadiusM / minCurvatureRadius * boundsMargin
}
