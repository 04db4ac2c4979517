package service

import (
	"math/rand"
	"testing"

	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() domain.CommissionConfig {
	return domain.CommissionConfig{
		SuperAdminPercent:    15,
		PlatformOwnerPercent: 2,
		DriverPercent:        0,
		PaymentCycle:         domain.PaymentCycleWeekly,
		IsActive:             true,
	}
}

func TestComputeSplitBaseline(t *testing.T) {
	// 100.00 at super_admin=15%, platform_owner=2%, driver=0%
	split, err := ComputeSplit(10000, validConfig())
	require.NoError(t, err)

	assert.Equal(t, domain.Money(200), split.PlatformOwnerAmount)
	assert.Equal(t, domain.Money(1500), split.SuperAdminAmount)
	assert.Equal(t, domain.Money(0), split.DriverAmount)
	assert.Equal(t, domain.Money(8300), split.RestaurantAmount)
	assert.Equal(t, domain.Money(10000), split.TotalOrderAmount)
}

func TestComputeSplitRoundingFlowsToRestaurant(t *testing.T) {
	// 10.01 at super_admin=12.5%: 1.251.. rounds to 1.25, the restaurant
	// absorbs the remainder and the row still balances exactly
	cfg := validConfig()
	cfg.SuperAdminPercent = 12.5

	split, err := ComputeSplit(1001, cfg)
	require.NoError(t, err)

	assert.Equal(t, domain.Money(125), split.SuperAdminAmount)
	assert.Equal(t, domain.Money(20), split.PlatformOwnerAmount)
	sum := split.RestaurantAmount + split.SuperAdminAmount + split.PlatformOwnerAmount + split.DriverAmount
	assert.Equal(t, domain.Money(1001), sum)
}

func TestComputeSplitDriverShare(t *testing.T) {
	testCases := []struct {
		name           string
		total          domain.Money
		driverPercent  float64
		driverFixed    domain.Money
		expectedDriver domain.Money
	}{
		{
			name:           "percent only",
			total:          10000,
			driverPercent:  10,
			expectedDriver: 1000,
		},
		{
			name:           "fixed only",
			total:          10000,
			driverFixed:    150,
			expectedDriver: 150,
		},
		{
			name:           "percent and fixed are additive",
			total:          10000,
			driverPercent:  10,
			driverFixed:    150,
			expectedDriver: 1150,
		},
		{
			name:           "capped at what remains after commissions",
			total:          100,
			driverPercent:  20,
			driverFixed:    10000,
			expectedDriver: 83, // 100 - 15 super admin - 2 platform
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.DriverPercent = tc.driverPercent
			cfg.DriverFixedAmount = tc.driverFixed

			split, err := ComputeSplit(tc.total, cfg)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedDriver, split.DriverAmount)
			assert.GreaterOrEqual(t, split.RestaurantAmount, domain.Money(0))
			sum := split.RestaurantAmount + split.SuperAdminAmount + split.PlatformOwnerAmount + split.DriverAmount
			assert.Equal(t, tc.total, sum)
		})
	}
}

func TestComputeSplitRejectsInvalidConfig(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(cfg *domain.CommissionConfig)
	}{
		{
			name:   "platform owner below floor",
			mutate: func(cfg *domain.CommissionConfig) { cfg.PlatformOwnerPercent = 0.5 },
		},
		{
			name:   "platform owner above ceiling",
			mutate: func(cfg *domain.CommissionConfig) { cfg.PlatformOwnerPercent = 6 },
		},
		{
			name:   "super admin above ceiling",
			mutate: func(cfg *domain.CommissionConfig) { cfg.SuperAdminPercent = 51 },
		},
		{
			name:   "negative super admin",
			mutate: func(cfg *domain.CommissionConfig) { cfg.SuperAdminPercent = -1 },
		},
		{
			name:   "driver percent above ceiling",
			mutate: func(cfg *domain.CommissionConfig) { cfg.DriverPercent = 21 },
		},
		{
			name:   "negative driver fixed amount",
			mutate: func(cfg *domain.CommissionConfig) { cfg.DriverFixedAmount = -1 },
		},
		{
			name:   "unknown payment cycle",
			mutate: func(cfg *domain.CommissionConfig) { cfg.PaymentCycle = "daily" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			_, err := ComputeSplit(10000, cfg)
			assert.ErrorIs(t, err, errs.ErrCommissionConfigInvalid, "must fail loud, never clamp")
		})
	}
}

func TestComputeSplitRejectsNegativeTotal(t *testing.T) {
	_, err := ComputeSplit(-1, validConfig())
	assert.ErrorIs(t, err, errs.ErrClient)
}

func TestComputeSplitZeroTotal(t *testing.T) {
	split, err := ComputeSplit(0, validConfig())
	require.NoError(t, err)

	assert.Zero(t, split.RestaurantAmount)
	assert.Zero(t, split.SuperAdminAmount)
	assert.Zero(t, split.PlatformOwnerAmount)
	assert.Zero(t, split.DriverAmount)
}

func TestComputeSplitExactnessProperty(t *testing.T) {
	// for any total and any valid config the four amounts sum to the total
	// exactly, to the cent
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		total := domain.Money(r.Int63n(5_000_000)) // up to 50,000.00
		cfg := domain.CommissionConfig{
			SuperAdminPercent:    r.Float64() * 50,
			PlatformOwnerPercent: 1 + r.Float64()*4,
			DriverPercent:        r.Float64() * 20,
			DriverFixedAmount:    domain.Money(r.Int63n(1000)),
			PaymentCycle:         domain.PaymentCycleMonthly,
		}

		split, err := ComputeSplit(total, cfg)
		require.NoError(t, err)

		sum := split.RestaurantAmount + split.SuperAdminAmount + split.PlatformOwnerAmount + split.DriverAmount
		require.Equal(t, total, sum, "total=%d cfg=%+v", total, cfg)
		require.GreaterOrEqual(t, split.RestaurantAmount, domain.Money(0))
		require.GreaterOrEqual(t, split.DriverAmount, domain.Money(0))
	}
}

func TestComputeSplitIdempotent(t *testing.T) {
	cfg := validConfig()
	cfg.DriverPercent = 7.5
	cfg.DriverFixedAmount = 99

	first, err := ComputeSplit(123457, cfg)
	require.NoError(t, err)
	second, err := ComputeSplit(123457, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
