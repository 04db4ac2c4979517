package domain

import "github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"

const (
	PaymentCycleWeekly   = "weekly"
	PaymentCycleBiweekly = "biweekly"
	PaymentCycleMonthly  = "monthly"
)

// CommissionConfig defines how a paid order's total is divided among the
// restaurant, the regional super admin, the platform owner and optionally the
// driver. RestaurantID is nil for the global default row; an active
// restaurant-specific row replaces the global one wholesale, never field by
// field.
type CommissionConfig struct {
	ID                   int64   `db:"id"`
	RestaurantID         *int64  `db:"restaurant_id"`
	SuperAdminPercent    float64 `db:"super_admin_percent"`
	PlatformOwnerPercent float64 `db:"platform_owner_percent"`
	DriverPercent        float64 `db:"driver_percent"`
	DriverFixedAmount    Money   `db:"driver_fixed_amount"`
	PaymentCycle         string  `db:"payment_cycle"`
	IsActive             bool    `db:"is_active"`
	CreatedAt            int64   `db:"created_at"`
	UpdatedAt            int64   `db:"updated_at"`
	DeletedAt            *int64  `db:"deleted_at"`
}

// Validate enforces the commission invariants. It runs at config-write time
// and again defensively before every split; a violating config must block the
// split rather than be clamped to fit.
func (c CommissionConfig) Validate() error {
	if c.SuperAdminPercent < 0 || c.SuperAdminPercent > 50 {
		return errs.ErrCommissionConfigInvalid
	}
	if c.PlatformOwnerPercent < 1 || c.PlatformOwnerPercent > 5 {
		return errs.ErrCommissionConfigInvalid
	}
	if c.DriverPercent < 0 || c.DriverPercent > 20 {
		return errs.ErrCommissionConfigInvalid
	}
	if c.DriverFixedAmount < 0 {
		return errs.ErrCommissionConfigInvalid
	}
	if c.SuperAdminPercent+c.PlatformOwnerPercent+c.DriverPercent > 100 {
		return errs.ErrCommissionConfigInvalid
	}
	switch c.PaymentCycle {
	case PaymentCycleWeekly, PaymentCycleBiweekly, PaymentCycleMonthly:
	default:
		return errs.ErrCommissionConfigInvalid
	}
	return nil
}

// PaymentSplit is the append-only ledger row recording how one paid order's
// total was divided. The four amounts always sum to TotalOrderAmount exactly.
type PaymentSplit struct {
	ID                  int64 `db:"id"`
	OrderID             int64 `db:"order_id"`
	RestaurantID        int64 `db:"restaurant_id"`
	TotalOrderAmount    Money `db:"total_order_amount"`
	RestaurantAmount    Money `db:"restaurant_amount"`
	SuperAdminAmount    Money `db:"super_admin_amount"`
	PlatformOwnerAmount Money `db:"platform_owner_amount"`
	DriverAmount        Money `db:"driver_amount"`
	IsPaid              bool  `db:"is_paid"`
	CreatedAt           int64 `db:"created_at"`
}
