package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	lisbon := Point{Latitude: 38.7223, Longitude: -9.1393}
	porto := Point{Latitude: 41.1579, Longitude: -8.6291}

	d := Haversine(lisbon, porto)
	assert.InDelta(t, 274, d, 5, "Lisbon-Porto is roughly 274km")

	assert.Zero(t, Haversine(lisbon, lisbon))
}

func TestInCircle(t *testing.T) {
	center := Point{Latitude: 38.7, Longitude: -9.1}

	testCases := []struct {
		name     string
		point    Point
		radiusKm float64
		expected bool
	}{
		{
			name:     "point well inside",
			point:    Point{Latitude: 38.71, Longitude: -9.09},
			radiusKm: 5,
			expected: true,
		},
		{
			name:     "center itself",
			point:    center,
			radiusKm: 0.1,
			expected: true,
		},
		{
			name:     "point outside",
			point:    Point{Latitude: 38.772, Longitude: -9.1},
			radiusKm: 5,
			expected: false,
		},
		{
			name:     "zero radius never contains",
			point:    Point{Latitude: 38.71, Longitude: -9.09},
			radiusKm: 0,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InCircle(tc.point, center, tc.radiusKm))
		})
	}
}

func TestInCircleBoundaryInclusive(t *testing.T) {
	center := Point{Latitude: 38.7, Longitude: -9.1}
	edge := Point{Latitude: 38.71, Longitude: -9.09}

	r := Haversine(edge, center)
	assert.True(t, InCircle(edge, center, r), "point at exactly R is contained")
	assert.False(t, InCircle(edge, center, r-0.0001), "point just past R is not")
}

func TestInPolygon(t *testing.T) {
	// unit square around the origin
	square := []Point{
		{Latitude: -1, Longitude: -1},
		{Latitude: -1, Longitude: 1},
		{Latitude: 1, Longitude: 1},
		{Latitude: 1, Longitude: -1},
	}

	testCases := []struct {
		name     string
		point    Point
		ring     []Point
		expected bool
	}{
		{
			name:     "inside square",
			point:    Point{Latitude: 0, Longitude: 0},
			ring:     square,
			expected: true,
		},
		{
			name:     "outside square",
			point:    Point{Latitude: 2, Longitude: 0},
			ring:     square,
			expected: false,
		},
		{
			name:     "outside but aligned with an edge",
			point:    Point{Latitude: 0, Longitude: 5},
			ring:     square,
			expected: false,
		},
		{
			name:     "degenerate ring fails closed",
			point:    Point{Latitude: 0, Longitude: 0},
			ring:     square[:2],
			expected: false,
		},
		{
			name:     "empty ring fails closed",
			point:    Point{Latitude: 0, Longitude: 0},
			ring:     nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InPolygon(tc.point, tc.ring))
		})
	}
}

func TestInPolygonConcave(t *testing.T) {
	// an L-shape: the notch at the top right is outside
	l := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 4},
		{Latitude: 2, Longitude: 4},
		{Latitude: 2, Longitude: 2},
		{Latitude: 4, Longitude: 2},
		{Latitude: 4, Longitude: 0},
	}

	assert.True(t, InPolygon(Point{Latitude: 1, Longitude: 1}, l))
	assert.True(t, InPolygon(Point{Latitude: 1, Longitude: 3}, l))
	assert.False(t, InPolygon(Point{Latitude: 3, Longitude: 3}, l), "notch is outside")
}

func TestBoundingBoxArea(t *testing.T) {
	ring := []Point{
		{Latitude: 38.70, Longitude: -9.20},
		{Latitude: 38.70, Longitude: -9.10},
		{Latitude: 38.80, Longitude: -9.10},
		{Latitude: 38.80, Longitude: -9.20},
	}

	area := BoundingBoxArea(ring)
	// ~11.1km tall, ~8.7km wide at this latitude
	assert.InDelta(t, 96, area, 5)

	assert.Zero(t, BoundingBoxArea(ring[:2]), "degenerate ring has no area")

	bigger := []Point{
		{Latitude: 38.60, Longitude: -9.30},
		{Latitude: 38.60, Longitude: -9.00},
		{Latitude: 38.90, Longitude: -9.00},
		{Latitude: 38.90, Longitude: -9.30},
	}
	assert.Greater(t, BoundingBoxArea(bigger), area)
}
