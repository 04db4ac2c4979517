package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dinehub/food-marketplace/delivery-engine/config"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/infrastructure/geocoding"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/repository"
	pkgdto "github.com/dinehub/food-marketplace/delivery-engine/pkg/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/utils"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/segmentio/kafka-go"
)

type OrderServiceImpl struct {
	repository     repository.DeliveryRepository
	geocoder       geocoding.Geocoder
	midtransClient *coreapi.Client
	kafkaProducer  *kafka.Conn
	config         *config.Config
}

func CreateOrderService(repository repository.DeliveryRepository, geocoder geocoding.Geocoder, midtransClient *coreapi.Client, kafkaProducer *kafka.Conn, config *config.Config) OrderService {
	return &OrderServiceImpl{
		repository:     repository,
		geocoder:       geocoder,
		midtransClient: midtransClient,
		kafkaProducer:  kafkaProducer,
		config:         config,
	}
}

// FinalizeOrder validates and prices a checkout draft, captures payment and
// persists the order. Deliverability, the minimum-order gate and the
// commission config check all run before any money moves; nothing is written
// unless the charge succeeds.
func (s *OrderServiceImpl) FinalizeOrder(ctx context.Context, req dto.OrderRequest) (resp dto.OrderResponse, err error) {
	if req.DeliveryAddress == "" || len(req.OrderItems) == 0 {
		return resp, errs.ErrClient
	}

	restaurant, err := s.repository.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		return
	}

	point, err := s.geocoder.Geocode(ctx, req.DeliveryAddress)
	if err != nil {
		return
	}

	zones, err := s.repository.GetActiveZonesByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		return
	}
	zoneRows, err := s.repository.CountZonesByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		return
	}

	resolution := ResolveZone(zones, zoneRows > 0, point)
	pricing := EvaluatePricing(restaurant, resolution)
	if !pricing.IsValid {
		return resp, errs.ErrOutsideDeliveryArea
	}

	var subtotal domain.Money
	for _, item := range req.OrderItems {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return resp, errs.ErrClient
		}
		subtotal += domain.MoneyFromFloat(item.UnitPrice) * domain.Money(item.Quantity)
	}

	minimumOrder := domain.MoneyFromFloat(pricing.MinimumOrder)
	if subtotal < minimumOrder {
		shortfall := minimumOrder - subtotal
		return resp, fmt.Errorf("%w: add %s to reach the %s minimum", errs.ErrBelowMinimumOrder, shortfall, minimumOrder)
	}

	// money-moving config problems must block the order before the charge,
	// not after
	commissionCfg, err := s.repository.GetCommissionConfigByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		return
	}
	if err = commissionCfg.Validate(); err != nil {
		log.Error().Err(err).Str("component", "FinalizeOrder").Int64("restaurant_id", req.RestaurantID).Msg("invalid commission config blocks finalization")
		return
	}

	deliveryFee := domain.MoneyFromFloat(pricing.DeliveryFee)
	totalAmount := subtotal + deliveryFee

	trxNumber, err := uuid.NewV7()
	if err != nil {
		return resp, fmt.Errorf("error generating transaction number: %v", err)
	}

	orderItems := make([]domain.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		orderItems = append(orderItems, domain.OrderItem{
			MenuID:    item.MenuID,
			Name:      item.Name,
			Quantity:  int64(item.Quantity),
			UnitPrice: domain.MoneyFromFloat(item.UnitPrice),
			CreatedAt: time.Now().Unix(),
			UpdatedAt: time.Now().Unix(),
		})
	}

	chargeReq := buildChargeRequest(trxNumber.String(), totalAmount, deliveryFee, orderItems)

	chargeResp, chargeErr := s.midtransClient.ChargeTransaction(chargeReq)
	if chargeErr != nil {
		log.Error().Err(chargeErr).Str("component", "FinalizeOrder").Msg("")
		return resp, errs.ErrPaymentFailure
	}
	if chargeResp.StatusCode != "201" {
		log.Error().Str("component", "FinalizeOrder").Str("status_code", chargeResp.StatusCode).Msg("payment gateway rejected charge")
		return resp, errs.ErrPaymentFailure
	}

	expiredAt, err := utils.ConvertGatewayTimeToUnixTimestamp(chargeResp.ExpiryTime, s.config.MidtransConfig.TimeZone)
	if err != nil {
		return
	}

	order := domain.Order{
		RestaurantID:      req.RestaurantID,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryLat:       point.Latitude,
		DeliveryLon:       point.Longitude,
		Subtotal:          subtotal,
		DeliveryFee:       deliveryFee,
		Amount:            totalAmount,
		EtaMinMinutes:     pricing.EtaMinMinutes,
		EtaMaxMinutes:     pricing.EtaMaxMinutes,
		TransactionNumber: trxNumber.String(),
		PaymentStatus:     domain.PaymentStatusPending,
		ExpiredAt:         expiredAt,
		CreatedAt:         time.Now().Unix(),
		UpdatedAt:         time.Now().Unix(),
	}
	if resolution.Matched {
		zoneID := resolution.Zone.ID
		zoneName := resolution.Zone.Name
		order.ZoneID = &zoneID
		order.ZoneName = &zoneName
	}

	err = s.repository.HandleTrx(ctx, func(ctx context.Context, repo repository.DeliveryRepository) error {
		orderID, err := repo.AddOrder(ctx, order)
		if err != nil {
			return err
		}
		order.ID = orderID

		for idx := range orderItems {
			orderItems[idx].OrderID = orderID
		}

		return repo.AddOrderItems(ctx, orderItems)
	})
	if err != nil {
		return
	}

	s.publishEvent(dto.KafkaMessage{
		EventType: "order_finalized",
		Data: dto.OrderFinalizedEvent{
			TransactionNumber: order.TransactionNumber,
			RestaurantID:      order.RestaurantID,
			ZoneName:          order.ZoneName,
			Amount:            order.Amount.Float(),
		},
	}, order.TransactionNumber)

	return dto.OrderResponse{
		ID:                order.ID,
		TransactionNumber: order.TransactionNumber,
		RestaurantID:      order.RestaurantID,
		ZoneName:          order.ZoneName,
		Subtotal:          order.Subtotal.Float(),
		DeliveryFee:       order.DeliveryFee.Float(),
		TransactionAmount: order.Amount.Float(),
		EtaMinMinutes:     order.EtaMinMinutes,
		EtaMaxMinutes:     order.EtaMaxMinutes,
		PaymentStatus:     order.PaymentStatus,
		PaymentExpiredAt:  &order.ExpiredAt,
	}, nil
}

// PaymentWebhook reacts to the gateway settlement notification: in a single
// transaction the order flips to paid and its payment split is appended to
// the ledger. A paid order always has exactly one split row.
func (s *OrderServiceImpl) PaymentWebhook(ctx context.Context, req dto.PaymentNotification) (err error) {
	if req.TransactionStatus != "settlement" && req.TransactionStatus != "capture" {
		return nil
	}

	order, err := s.repository.GetOrderByTransactionNumber(ctx, req.OrderID)
	if err != nil {
		return
	}

	if order.PaymentStatus == domain.PaymentStatusPaid {
		return nil
	}

	if order.ExpiredAt < time.Now().Unix() {
		return errs.ErrPaymentExpired
	}

	commissionCfg, err := s.repository.GetCommissionConfigByRestaurantID(ctx, order.RestaurantID)
	if err != nil {
		return
	}

	split, err := ComputeSplit(order.Amount, commissionCfg)
	if err != nil {
		return
	}
	split.OrderID = order.ID
	split.RestaurantID = order.RestaurantID
	split.CreatedAt = time.Now().Unix()

	err = s.repository.HandleTrx(ctx, func(ctx context.Context, repo repository.DeliveryRepository) error {
		paidAt := time.Now().Unix()
		err := repo.UpdateOrderPaymentStatus(ctx, domain.Order{
			ID:            order.ID,
			PaymentStatus: domain.PaymentStatusPaid,
			PaidAt:        &paidAt,
			UpdatedAt:     paidAt,
		})
		if err != nil {
			return err
		}

		_, err = repo.AddPaymentSplit(ctx, split)
		return err
	})
	if err != nil {
		return
	}

	s.publishEvent(dto.KafkaMessage{
		EventType: "payment_split_created",
		Data: dto.PaymentSplitCreatedEvent{
			TransactionNumber:   order.TransactionNumber,
			OrderID:             order.ID,
			RestaurantID:        order.RestaurantID,
			TotalOrderAmount:    split.TotalOrderAmount.Float(),
			RestaurantAmount:    split.RestaurantAmount.Float(),
			SuperAdminAmount:    split.SuperAdminAmount.Float(),
			PlatformOwnerAmount: split.PlatformOwnerAmount.Float(),
			DriverAmount:        split.DriverAmount.Float(),
			PaymentCycle:        commissionCfg.PaymentCycle,
		},
	}, order.TransactionNumber)

	return nil
}

// GetOrderSplit returns the ledger row recorded when the order was paid, for
// payout and analytics screens.
func (s *OrderServiceImpl) GetOrderSplit(ctx context.Context, transactionNumber string) (resp dto.PaymentSplitResponse, err error) {
	order, err := s.repository.GetOrderByTransactionNumber(ctx, transactionNumber)
	if err != nil {
		return
	}

	split, err := s.repository.GetPaymentSplitByOrderID(ctx, order.ID)
	if err != nil {
		return
	}

	return dto.PaymentSplitResponse{
		OrderID:             split.OrderID,
		RestaurantID:        split.RestaurantID,
		TotalOrderAmount:    split.TotalOrderAmount.Float(),
		RestaurantAmount:    split.RestaurantAmount.Float(),
		SuperAdminAmount:    split.SuperAdminAmount.Float(),
		PlatformOwnerAmount: split.PlatformOwnerAmount.Float(),
		DriverAmount:        split.DriverAmount.Float(),
		IsPaid:              split.IsPaid,
	}, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, filter pkgdto.Filter) (response pkgdto.Pagination, err error) {
	datas, err := s.repository.GetOrders(ctx, filter)
	if err != nil {
		return
	}

	totalCount, err := s.repository.CountOrders(ctx, filter)
	if err != nil {
		return
	}

	var orderResponse []dto.OrderResponse
	for _, data := range datas {
		orderResponse = append(orderResponse, dto.OrderResponse{
			ID:                data.ID,
			TransactionNumber: data.TransactionNumber,
			RestaurantID:      data.RestaurantID,
			ZoneName:          data.ZoneName,
			Subtotal:          data.Subtotal.Float(),
			DeliveryFee:       data.DeliveryFee.Float(),
			TransactionAmount: data.Amount.Float(),
			EtaMinMinutes:     data.EtaMinMinutes,
			EtaMaxMinutes:     data.EtaMaxMinutes,
			PaymentStatus:     data.PaymentStatus,
		})
	}

	response.Records = orderResponse
	response.Metadata = pkgdto.Metadata{
		TotalCount: int(totalCount),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}

	return
}

// ExpirePendingPayments is the scheduled sweep over orders whose payment
// window has lapsed.
func (s *OrderServiceImpl) ExpirePendingPayments() {
	log.Info().Str("component", "ExpirePendingPayments").Msg("cron starts")

	orders, err := s.repository.GetOrders(context.Background(), pkgdto.Filter{
		PaymentStatus: domain.PaymentStatusPending,
		Expired:       true,
	})
	if err != nil {
		return
	}

	for _, order := range orders {
		err = s.repository.UpdateOrderPaymentStatus(context.Background(), domain.Order{
			ID:            order.ID,
			PaymentStatus: domain.PaymentStatusExpired,
			UpdatedAt:     time.Now().Unix(),
		})
		if err != nil {
			return
		}

		s.publishEvent(dto.KafkaMessage{
			EventType: "order_payment_expired",
			Data: dto.OrderFinalizedEvent{
				TransactionNumber: order.TransactionNumber,
				RestaurantID:      order.RestaurantID,
				Amount:            order.Amount.Float(),
			},
		}, order.TransactionNumber)
	}

	log.Info().Str("component", "ExpirePendingPayments").Msg("cron ends")
}

// buildChargeRequest assembles the gateway charge payload. Amounts go over
// the wire in minor units, never through float conversion: the captured
// amount must equal the persisted order amount to the cent.
func buildChargeRequest(transactionNumber string, totalAmount, deliveryFee domain.Money, items []domain.OrderItem) *coreapi.ChargeReq {
	chargeItems := make([]midtrans.ItemDetails, 0, len(items)+1)
	for _, item := range items {
		chargeItems = append(chargeItems, midtrans.ItemDetails{
			ID:    item.MenuID,
			Price: int64(item.UnitPrice),
			Qty:   int32(item.Quantity),
			Name:  item.Name,
		})
	}
	if deliveryFee > 0 {
		chargeItems = append(chargeItems, midtrans.ItemDetails{
			ID:    "delivery-fee",
			Price: int64(deliveryFee),
			Qty:   1,
			Name:  "Delivery fee",
		})
	}

	return &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  transactionNumber,
			GrossAmt: int64(totalAmount),
		},
		Items: &chargeItems,
	}
}

func (s *OrderServiceImpl) publishEvent(msg dto.KafkaMessage, key string) {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessageWithKey(jsonMsg, key)
		if err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}

	log.Error().Err(err).Str("component", "publishEvent").Str("event_type", msg.EventType).Msgf("failed to write Kafka message after %d attempts", maxRetries)
}

func (s *OrderServiceImpl) writeKafkaMessageWithKey(msg []byte, key string) error {
	s.kafkaProducer.SetWriteDeadline(time.Now().Add(10 * time.Second))
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Key:   []byte(key),
			Value: msg,
		},
	)
	return err
}
