package geo

import "math"

// EarthRadiusKm is the mean earth radius used for great-circle math.
const EarthRadiusKm = 6371.0088

// Point is a WGS 84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b Point) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// InCircle reports whether p lies within radiusKm of center. The boundary is
// inclusive: a point at exactly radiusKm is contained.
func InCircle(p, center Point, radiusKm float64) bool {
	if radiusKm <= 0 {
		return false
	}
	return Haversine(p, center) <= radiusKm
}

// InPolygon reports whether p lies inside the closed ring described by
// vertices, using the even-odd ray-casting rule. The last vertex implicitly
// connects back to the first. Rings with fewer than 3 vertices fail closed.
func InPolygon(p Point, vertices []Point) bool {
	if len(vertices) < 3 {
		return false
	}

	inside := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		vi, vj := vertices[i], vertices[j]
		if (vi.Latitude > p.Latitude) != (vj.Latitude > p.Latitude) {
			crossLon := (vj.Longitude-vi.Longitude)*(p.Latitude-vi.Latitude)/(vj.Latitude-vi.Latitude) + vi.Longitude
			if p.Longitude < crossLon {
				inside = !inside
			}
		}
		j = i
	}

	return inside
}

// BoundingBoxArea returns the area in km2 of the axis-aligned bounding box of
// the ring, with the longitude span corrected for latitude. Used as a zone
// specificity proxy, not as an exact polygon area.
func BoundingBoxArea(vertices []Point) float64 {
	if len(vertices) < 3 {
		return 0
	}

	minLat, maxLat := vertices[0].Latitude, vertices[0].Latitude
	minLon, maxLon := vertices[0].Longitude, vertices[0].Longitude
	for _, v := range vertices[1:] {
		minLat = math.Min(minLat, v.Latitude)
		maxLat = math.Max(maxLat, v.Latitude)
		minLon = math.Min(minLon, v.Longitude)
		maxLon = math.Max(maxLon, v.Longitude)
	}

	kmPerDegLat := EarthRadiusKm * math.Pi / 180
	midLat := (minLat + maxLat) / 2 * math.Pi / 180
	height := (maxLat - minLat) * kmPerDegLat
	width := (maxLon - minLon) * kmPerDegLat * math.Cos(midLat)

	return height * width
}
