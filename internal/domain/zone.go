package domain

import (
	"encoding/json"
	"math"

	"github.com/dinehub/food-marketplace/delivery-engine/pkg/geo"
	"github.com/jmoiron/sqlx/types"
)

const (
	ShapeCircle  = "circle"
	ShapePolygon = "polygon"
)

// DeliveryZone is a delivery-eligible area owned by one restaurant. The shape
// is a tagged variant: circle columns are set for circle zones, the vertices
// JSON column for polygon zones.
type DeliveryZone struct {
	ID            int64          `db:"id"`
	RestaurantID  int64          `db:"restaurant_id"`
	Name          string         `db:"name"`
	Description   string         `db:"description"`
	ShapeType     string         `db:"shape_type"`
	CenterLat     float64        `db:"center_lat"`
	CenterLon     float64        `db:"center_lon"`
	RadiusKm      float64        `db:"radius_km"`
	Vertices      types.JSONText `db:"vertices"`
	DeliveryFee   Money          `db:"delivery_fee"`
	MinimumOrder  Money          `db:"minimum_order"`
	EtaMinMinutes int            `db:"eta_min_minutes"`
	EtaMaxMinutes int            `db:"eta_max_minutes"`
	IsActive      bool           `db:"is_active"`
	CreatedAt     int64          `db:"created_at"`
	UpdatedAt     int64          `db:"updated_at"`
	DeletedAt     *int64         `db:"deleted_at"`
}

// Ring decodes the polygon vertices column. Empty for circle zones.
func (z DeliveryZone) Ring() ([]geo.Point, error) {
	if len(z.Vertices) == 0 {
		return nil, nil
	}
	var ring []geo.Point
	if err := json.Unmarshal(z.Vertices, &ring); err != nil {
		return nil, err
	}
	return ring, nil
}

// Contains reports whether the zone's shape contains p. Polygon zones with an
// undecodable or degenerate ring fail closed.
func (z DeliveryZone) Contains(p geo.Point) bool {
	switch z.ShapeType {
	case ShapeCircle:
		return geo.InCircle(p, geo.Point{Latitude: z.CenterLat, Longitude: z.CenterLon}, z.RadiusKm)
	case ShapePolygon:
		ring, err := z.Ring()
		if err != nil {
			return false
		}
		return geo.InPolygon(p, ring)
	}
	return false
}

// Specificity is the overlap tie-break proxy: the area covered by the shape's
// footprint, in km2, so circle and polygon zones compare on the same scale.
// Smaller is more specific.
func (z DeliveryZone) Specificity() float64 {
	switch z.ShapeType {
	case ShapeCircle:
		return math.Pi * z.RadiusKm * z.RadiusKm
	case ShapePolygon:
		ring, err := z.Ring()
		if err != nil {
			return math.MaxFloat64
		}
		return geo.BoundingBoxArea(ring)
	}
	return math.MaxFloat64
}

// MoreSpecificThan applies the full governing-zone tie-break chain:
// specificity, then delivery fee, then eta ceiling, then creation time.
// The chain guarantees a deterministic total order over any overlap set.
func (z DeliveryZone) MoreSpecificThan(other DeliveryZone) bool {
	if z.Specificity() != other.Specificity() {
		return z.Specificity() < other.Specificity()
	}
	if z.DeliveryFee != other.DeliveryFee {
		return z.DeliveryFee < other.DeliveryFee
	}
	if z.EtaMaxMinutes != other.EtaMaxMinutes {
		return z.EtaMaxMinutes < other.EtaMaxMinutes
	}
	return z.CreatedAt < other.CreatedAt
}
