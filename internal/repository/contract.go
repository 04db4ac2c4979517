package repository

import (
	"context"

	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	pkgdto "github.com/dinehub/food-marketplace/delivery-engine/pkg/dto"
)

type DeliveryRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo DeliveryRepository) error) error

	GetRestaurantByID(ctx context.Context, id int64) (data domain.Restaurant, err error)
	GetActiveZonesByRestaurantID(ctx context.Context, restaurantID int64) (data []domain.DeliveryZone, err error)
	CountZonesByRestaurantID(ctx context.Context, restaurantID int64) (count int64, err error)
	GetCommissionConfigByRestaurantID(ctx context.Context, restaurantID int64) (data domain.CommissionConfig, err error)

	AddOrder(ctx context.Context, data domain.Order) (id int64, err error)
	AddOrderItems(ctx context.Context, data []domain.OrderItem) (err error)
	GetOrderByTransactionNumber(ctx context.Context, transactionNumber string) (data domain.Order, err error)
	GetOrders(ctx context.Context, filter pkgdto.Filter) (data []domain.Order, err error)
	CountOrders(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
	UpdateOrderPaymentStatus(ctx context.Context, data domain.Order) (err error)

	AddPaymentSplit(ctx context.Context, data domain.PaymentSplit) (id int64, err error)
	GetPaymentSplitByOrderID(ctx context.Context, orderID int64) (data domain.PaymentSplit, err error)
}
