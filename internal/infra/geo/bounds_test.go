package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBounds_ContainPointsOnTheRadius(t *testing.T) {
	center := orb.Point{-74.0060, 40.7128}
	targets := []orb.Point{
		{-74.0060, 40.8},
		{-73.9, 40.7128},
		{-74.1, 40.65},
		{-73.95, 40.75},
	}

	for _, target := range targets {
		radius := DistanceKm(center, target)
		bounds := SearchBounds(center, radius)

		assert.Len(t, bounds, 1)
		assert.True(t, BoundsContain(bounds, target), "target %v outside bounds for radius %f", target, radius)
	}
}

func TestSearchBounds_SplitsAtAntimeridian(t *testing.T) {
	bounds := SearchBounds(orb.Point{179.99, 0}, 5)
	require.Len(t, bounds, 2)

	assert.True(t, BoundsContain(bounds, orb.Point{-179.99, 0}))
	assert.True(t, BoundsContain(bounds, orb.Point{179.98, 0}))
	assert.False(t, BoundsContain(bounds, orb.Point{0, 0}))

	bounds = SearchBounds(orb.Point{-179.99, 0}, 5)
	require.Len(t, bounds, 2)
	assert.True(t, BoundsContain(bounds, orb.Point{179.99, 0}))
}

func TestSearchBounds_PoleSpansAllLongitudes(t *testing.T) {
	bounds := SearchBounds(orb.Point{10, 89.99}, 5)
	require.Len(t, bounds, 1)

	assert.Equal(t, -180.0, bounds[0].Min.Lon())
	assert.Equal(t, 180.0, bounds[0].Max.Lon())
	assert.Equal(t, 90.0, bounds[0].Max.Lat())
	assert.True(t, BoundsContain(bounds, orb.Point{-170, 89.99}))
}

func TestSearchBounds_HugeRadiusIsWholeWorld(t *testing.T) {
	bounds := SearchBounds(orb.Point{0, 0}, 25_000)

	assert.Equal(t, []orb.Bound{WorldBound()}, bounds)
}

func TestSearchBounds_ZeroRadiusContainsCenter(t *testing.T) {
	center := orb.Point{2.3522, 48.8566}

	assert.True(t, BoundsContain(SearchBounds(center, 0), center))
}

func TestSphereSearchRadiusKm_NeverShrinks(t *testing.T) {
	assert.Greater(t, SphereSearchRadiusKm(5, 6371008.7714), 5.0)
	assert.Zero(t, SphereSearchRadiusKm(0, 6371008.7714))
}
