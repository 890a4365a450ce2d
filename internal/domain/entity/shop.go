package entity

import (
	"math"
	"time"

	"github.com/paulmach/orb"
)

// Shop is a geolocated listing owned by exactly one vendor.
// VendorID is stamped from the authenticated caller and never changes afterwards.
type Shop struct {
	ID        int64     // Numeric identifier assigned by the store at creation.
	VendorID  int64     // Owning vendor.
	Name      string    // Display name.
	Type      string    // Free-form shop type, e.g. "cafe".
	Latitude  float64   // WGS-84 latitude in degrees, [-90, 90].
	Longitude float64   // WGS-84 longitude in degrees, [-180, 180].
	Details   ShopDetails
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShopDetails holds the optional descriptive fields of a shop.
// A nil field is absent; updates replace the whole set.
type ShopDetails struct {
	Description      *string
	Phone            *string
	Email            *string
	Website          *string
	OpeningHours     *string
	BusinessCategory *string
	Address          *string
}

// Location returns the shop's coordinate.
func (s *Shop) Location() Coordinate {
	return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

// ShopMatch is a shop returned by a proximity search with its distance from the query point.
type ShopMatch struct {
	Shop       *Shop
	DistanceKm float64
}

// Coordinate is a WGS-84 position in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Point converts the coordinate to an orb point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether both components are finite and within range.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
