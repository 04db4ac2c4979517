package service

import (
	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"
	"github.com/rs/zerolog/log"
)

// ComputeSplit divides a paid order total among the four stakeholders.
// Percentage commissions are contractual and computed first; the driver share
// is paid out of what remains and never inflates the total; the restaurant
// takes the remainder and with it every rounding cent. A config that fails
// validation blocks the split, it is never clamped to fit.
func ComputeSplit(total domain.Money, cfg domain.CommissionConfig) (split domain.PaymentSplit, err error) {
	if total < 0 {
		return split, errs.ErrClient
	}

	if err = cfg.Validate(); err != nil {
		log.Error().Err(err).Str("component", "ComputeSplit").Msg("refusing to split with invalid commission config")
		return
	}

	platformOwnerAmount := total.PercentOf(cfg.PlatformOwnerPercent)
	superAdminAmount := total.PercentOf(cfg.SuperAdminPercent)

	driverAmount := total.PercentOf(cfg.DriverPercent) + cfg.DriverFixedAmount
	remaining := total - platformOwnerAmount - superAdminAmount
	if driverAmount > remaining {
		driverAmount = remaining
	}
	if driverAmount < 0 {
		driverAmount = 0
	}

	restaurantAmount := total - platformOwnerAmount - superAdminAmount - driverAmount

	split = domain.PaymentSplit{
		TotalOrderAmount:    total,
		RestaurantAmount:    restaurantAmount,
		SuperAdminAmount:    superAdminAmount,
		PlatformOwnerAmount: platformOwnerAmount,
		DriverAmount:        driverAmount,
	}

	// post-condition, not best-effort: the ledger row must balance exactly
	sum := split.RestaurantAmount + split.SuperAdminAmount + split.PlatformOwnerAmount + split.DriverAmount
	if sum != total {
		log.Error().
			Str("component", "ComputeSplit").
			Int64("total", int64(total)).
			Int64("sum", int64(sum)).
			Msg("split does not balance")
		return split, errs.ErrInternalServer
	}

	return split, nil
}
