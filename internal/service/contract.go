package service

import (
	"context"

	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/dto"
	pkgdto "github.com/dinehub/food-marketplace/delivery-engine/pkg/dto"
)

type DeliveryService interface {
	ValidateAddress(ctx context.Context, req dto.AddressValidationRequest) (result dto.DeliveryValidationResult, err error)
	ComputeSplit(ctx context.Context, restaurantID int64, total domain.Money) (resp dto.PaymentSplitResponse, err error)
}

type OrderService interface {
	FinalizeOrder(ctx context.Context, req dto.OrderRequest) (resp dto.OrderResponse, err error)
	PaymentWebhook(ctx context.Context, req dto.PaymentNotification) (err error)
	GetOrderSplit(ctx context.Context, transactionNumber string) (resp dto.PaymentSplitResponse, err error)
	GetOrders(ctx context.Context, filter pkgdto.Filter) (response pkgdto.Pagination, err error)
	ExpirePendingPayments()
}
