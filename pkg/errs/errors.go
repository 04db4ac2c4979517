package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusUndeliverable  = http.StatusUnprocessableEntity
	ErrStatusNoPermission   = http.StatusForbidden
	ErrBadGateway           = http.StatusBadGateway
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotFound                = errors.New("Resource not found")
	ErrRestaurantNotFound      = errors.New("Restaurant not found")
	ErrGeocodeFailure          = errors.New("Could not validate address, try again")
	ErrOutsideDeliveryArea     = errors.New("Address outside delivery area")
	ErrBelowMinimumOrder       = errors.New("Order subtotal is below the delivery minimum")
	ErrCommissionConfigInvalid = errors.New("Commission configuration is invalid")
	ErrPaymentFailure          = errors.New("Payment could not be captured")
	ErrPaymentExpired          = errors.New("Payment for this order has expired")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotFound:                ErrStatusNotFound,
	ErrRestaurantNotFound:      ErrStatusNotFound,
	ErrGeocodeFailure:          ErrStatusUndeliverable,
	ErrOutsideDeliveryArea:     ErrStatusUndeliverable,
	ErrBelowMinimumOrder:       ErrStatusUndeliverable,
	ErrCommissionConfigInvalid: ErrStatusInternalServer,
	ErrPaymentFailure:          ErrBadGateway,
	ErrPaymentExpired:          ErrStatusNoPermission,
}

func GetErrorStatusCode(err error) int {
	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}
	return ErrStatusInternalServer
}
