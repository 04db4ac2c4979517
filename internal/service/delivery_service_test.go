package service

import (
	"context"
	"testing"

	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/repository"
	pkgdto "github.com/dinehub/food-marketplace/delivery-engine/pkg/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository serves canned catalog data so the service layer can be
// exercised without a database.
type fakeRepository struct {
	restaurant domain.Restaurant
	zones      []domain.DeliveryZone
	zoneRows   int64
	config     domain.CommissionConfig
	configErr  error
	order       domain.Order
	orderErr    error
	totalOrders int64
	splits      []domain.PaymentSplit
}

func (f *fakeRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.DeliveryRepository) error) error {
	return fn(ctx, f)
}

func (f *fakeRepository) GetRestaurantByID(ctx context.Context, id int64) (domain.Restaurant, error) {
	if f.restaurant.ID == 0 {
		return domain.Restaurant{}, errs.ErrRestaurantNotFound
	}
	return f.restaurant, nil
}

func (f *fakeRepository) GetActiveZonesByRestaurantID(ctx context.Context, restaurantID int64) ([]domain.DeliveryZone, error) {
	return f.zones, nil
}

func (f *fakeRepository) CountZonesByRestaurantID(ctx context.Context, restaurantID int64) (int64, error) {
	return f.zoneRows, nil
}

func (f *fakeRepository) GetCommissionConfigByRestaurantID(ctx context.Context, restaurantID int64) (domain.CommissionConfig, error) {
	if f.configErr != nil {
		return domain.CommissionConfig{}, f.configErr
	}
	return f.config, nil
}

func (f *fakeRepository) AddOrder(ctx context.Context, data domain.Order) (int64, error) {
	return 1, nil
}

func (f *fakeRepository) AddOrderItems(ctx context.Context, data []domain.OrderItem) error {
	return nil
}

func (f *fakeRepository) GetOrderByTransactionNumber(ctx context.Context, transactionNumber string) (domain.Order, error) {
	if f.orderErr != nil {
		return domain.Order{}, f.orderErr
	}
	return f.order, nil
}

func (f *fakeRepository) GetOrders(ctx context.Context, filter pkgdto.Filter) ([]domain.Order, error) {
	return []domain.Order{f.order}, nil
}

func (f *fakeRepository) CountOrders(ctx context.Context, filter pkgdto.Filter) (int64, error) {
	return f.totalOrders, nil
}

func (f *fakeRepository) UpdateOrderPaymentStatus(ctx context.Context, data domain.Order) error {
	return nil
}

func (f *fakeRepository) AddPaymentSplit(ctx context.Context, data domain.PaymentSplit) (int64, error) {
	f.splits = append(f.splits, data)
	return int64(len(f.splits)), nil
}

func (f *fakeRepository) GetPaymentSplitByOrderID(ctx context.Context, orderID int64) (domain.PaymentSplit, error) {
	if len(f.splits) == 0 {
		return domain.PaymentSplit{}, errs.ErrNotFound
	}
	return f.splits[0], nil
}

// fakeGeocoder maps exact address strings to points.
type fakeGeocoder struct {
	points map[string]geo.Point
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (geo.Point, error) {
	p, ok := f.points[address]
	if !ok {
		return geo.Point{}, errs.ErrGeocodeFailure
	}
	return p, nil
}

func testRestaurant() domain.Restaurant {
	return domain.Restaurant{
		ID:              1,
		Name:            "Tasca do Rio",
		DeliveryFee:     199,
		MinimumOrder:    1000,
		DeliveryTimeMin: 30,
		DeliveryTimeMax: 60,
		IsActive:        true,
	}
}

func TestValidateAddressWithinZone(t *testing.T) {
	zone := circleZone(1, 38.7, -9.1, 5)
	zone.Name = "Center"

	repo := &fakeRepository{
		restaurant: testRestaurant(),
		zones:      []domain.DeliveryZone{zone},
		zoneRows:   1,
	}
	geocoder := &fakeGeocoder{points: map[string]geo.Point{
		"Rua Augusta 1, Lisboa": {Latitude: 38.71, Longitude: -9.09},
	}}

	svc := CreateDeliveryService(repo, geocoder)

	result, err := svc.ValidateAddress(context.Background(), dto.AddressValidationRequest{
		RestaurantID: 1,
		Address:      "Rua Augusta 1, Lisboa",
	})
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Equal(t, "Center", result.ZoneName)
	assert.Equal(t, 2.50, result.DeliveryFee)
	assert.Equal(t, 15.0, result.MinimumOrder)
}

func TestValidateAddressOutsideZone(t *testing.T) {
	repo := &fakeRepository{
		restaurant: testRestaurant(),
		zones:      []domain.DeliveryZone{circleZone(1, 38.7, -9.1, 5)},
		zoneRows:   1,
	}
	geocoder := &fakeGeocoder{points: map[string]geo.Point{
		"Sintra": {Latitude: 38.8, Longitude: -9.39}, // well outside the 5km circle
	}}

	svc := CreateDeliveryService(repo, geocoder)

	result, err := svc.ValidateAddress(context.Background(), dto.AddressValidationRequest{
		RestaurantID: 1,
		Address:      "Sintra",
	})
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Equal(t, "address outside delivery area", result.Reason)
}

func TestValidateAddressGeocodeFailureIsRepromptable(t *testing.T) {
	repo := &fakeRepository{restaurant: testRestaurant()}
	geocoder := &fakeGeocoder{}

	svc := CreateDeliveryService(repo, geocoder)

	result, err := svc.ValidateAddress(context.Background(), dto.AddressValidationRequest{
		RestaurantID: 1,
		Address:      "gibberish",
	})
	require.NoError(t, err, "geocode failures surface as an invalid result, not an error")

	assert.False(t, result.IsValid)
	assert.Equal(t, errs.ErrGeocodeFailure.Error(), result.Reason)
}

func TestValidateAddressFlatRateFallback(t *testing.T) {
	repo := &fakeRepository{restaurant: testRestaurant()}
	geocoder := &fakeGeocoder{points: map[string]geo.Point{
		"anywhere": {Latitude: 40.0, Longitude: -8.0},
	}}

	svc := CreateDeliveryService(repo, geocoder)

	result, err := svc.ValidateAddress(context.Background(), dto.AddressValidationRequest{
		RestaurantID: 1,
		Address:      "anywhere",
	})
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.ZoneName)
	assert.Equal(t, 1.99, result.DeliveryFee)
}

func TestComputeSplitService(t *testing.T) {
	repo := &fakeRepository{
		restaurant: testRestaurant(),
		config:     validConfig(),
	}
	svc := CreateDeliveryService(repo, &fakeGeocoder{})

	resp, err := svc.ComputeSplit(context.Background(), 1, 10000)
	require.NoError(t, err)

	assert.Equal(t, 2.0, resp.PlatformOwnerAmount)
	assert.Equal(t, 15.0, resp.SuperAdminAmount)
	assert.Equal(t, 83.0, resp.RestaurantAmount)
	assert.Equal(t, 100.0, resp.TotalOrderAmount)

	again, err := svc.ComputeSplit(context.Background(), 1, 10000)
	require.NoError(t, err)
	assert.Equal(t, resp, again, "unchanged configuration yields identical output")
}

func TestComputeSplitServicePropagatesConfigError(t *testing.T) {
	repo := &fakeRepository{
		restaurant: testRestaurant(),
		configErr:  errs.ErrCommissionConfigInvalid,
	}
	svc := CreateDeliveryService(repo, &fakeGeocoder{})

	_, err := svc.ComputeSplit(context.Background(), 1, 10000)
	assert.ErrorIs(t, err, errs.ErrCommissionConfigInvalid)
}
