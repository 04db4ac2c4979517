package service

import (
	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/geo"
)

const reasonOutsideDeliveryArea = "address outside delivery area"

// ResolveZone matches a delivery point against a restaurant's active zones
// and picks the single governing zone. hasZoneRows covers the catalog
// including inactive zones: a restaurant whose zones are all inactive is
// treated as "zones exist, none match", not as flat-rate.
func ResolveZone(zones []domain.DeliveryZone, hasZoneRows bool, point geo.Point) domain.ZoneResolution {
	resolution := domain.ZoneResolution{
		HasZones: hasZoneRows || len(zones) > 0,
	}

	for _, zone := range zones {
		if !zone.Contains(point) {
			continue
		}
		if !resolution.Matched || zone.MoreSpecificThan(resolution.Zone) {
			resolution.Matched = true
			resolution.Zone = zone
		}
	}

	return resolution
}

// EvaluatePricing derives the fee, minimum and eta for a delivery from the
// resolved zone, or from the restaurant's flat-rate defaults when no zone
// system is configured. The minimum-order check against the cart subtotal is
// the caller's gate, not part of deliverability.
func EvaluatePricing(restaurant domain.Restaurant, resolution domain.ZoneResolution) dto.DeliveryValidationResult {
	if !resolution.HasZones {
		return dto.DeliveryValidationResult{
			IsValid:       true,
			DeliveryFee:   restaurant.DeliveryFee.Float(),
			MinimumOrder:  restaurant.MinimumOrder.Float(),
			EtaMinMinutes: restaurant.DeliveryTimeMin,
			EtaMaxMinutes: restaurant.DeliveryTimeMax,
		}
	}

	if !resolution.Matched {
		return dto.DeliveryValidationResult{
			IsValid: false,
			Reason:  reasonOutsideDeliveryArea,
		}
	}

	zone := resolution.Zone
	return dto.DeliveryValidationResult{
		IsValid:       true,
		ZoneName:      zone.Name,
		DeliveryFee:   zone.DeliveryFee.Float(),
		MinimumOrder:  zone.MinimumOrder.Float(),
		EtaMinMinutes: zone.EtaMinMinutes,
		EtaMaxMinutes: zone.EtaMaxMinutes,
	}
}
