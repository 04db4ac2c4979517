package service

import (
	"context"

	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/infrastructure/geocoding"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/repository"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/geo"
	"github.com/rs/zerolog/log"
)

type DeliveryServiceImpl struct {
	repository repository.DeliveryRepository
	geocoder   geocoding.Geocoder
}

func CreateDeliveryService(repository repository.DeliveryRepository, geocoder geocoding.Geocoder) DeliveryService {
	return &DeliveryServiceImpl{
		repository: repository,
		geocoder:   geocoder,
	}
}

// ValidateAddress is the interactive deliverability check the checkout UI
// calls while the customer types. A geocoding failure surfaces as an invalid
// result rather than an error so the UI can re-prompt.
func (s *DeliveryServiceImpl) ValidateAddress(ctx context.Context, req dto.AddressValidationRequest) (result dto.DeliveryValidationResult, err error) {
	restaurant, err := s.repository.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		return
	}

	point, err := s.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		return dto.DeliveryValidationResult{
			IsValid: false,
			Reason:  errs.ErrGeocodeFailure.Error(),
		}, nil
	}

	resolution, err := s.resolveForRestaurant(ctx, req.RestaurantID, point)
	if err != nil {
		return
	}

	return EvaluatePricing(restaurant, resolution), nil
}

// ComputeSplit recomputes a commission split for admin payout and analytics
// screens. Configuration is fetched fresh on every call; a stale cached
// config must never price a split.
func (s *DeliveryServiceImpl) ComputeSplit(ctx context.Context, restaurantID int64, total domain.Money) (resp dto.PaymentSplitResponse, err error) {
	cfg, err := s.repository.GetCommissionConfigByRestaurantID(ctx, restaurantID)
	if err != nil {
		return
	}

	split, err := ComputeSplit(total, cfg)
	if err != nil {
		log.Error().Err(err).Str("component", "ComputeSplit").Int64("restaurant_id", restaurantID).Msg("")
		return
	}

	return dto.PaymentSplitResponse{
		RestaurantID:        restaurantID,
		TotalOrderAmount:    split.TotalOrderAmount.Float(),
		RestaurantAmount:    split.RestaurantAmount.Float(),
		SuperAdminAmount:    split.SuperAdminAmount.Float(),
		PlatformOwnerAmount: split.PlatformOwnerAmount.Float(),
		DriverAmount:        split.DriverAmount.Float(),
	}, nil
}

func (s *DeliveryServiceImpl) resolveForRestaurant(ctx context.Context, restaurantID int64, point geo.Point) (resolution domain.ZoneResolution, err error) {
	zones, err := s.repository.GetActiveZonesByRestaurantID(ctx, restaurantID)
	if err != nil {
		return
	}

	zoneRows, err := s.repository.CountZonesByRestaurantID(ctx, restaurantID)
	if err != nil {
		return
	}

	return ResolveZone(zones, zoneRows > 0, point), nil
}
