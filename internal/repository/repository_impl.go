package repository

import (
	"context"
	"database/sql"

	"github.com/dinehub/food-marketplace/delivery-engine/internal/domain"
	pkgdto "github.com/dinehub/food-marketplace/delivery-engine/pkg/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type DeliveryRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateDeliveryRepository(db *sqlx.DB) DeliveryRepository {
	return &DeliveryRepositoryImpl{
		db: db,
	}
}

// queryer returns the transaction when one is open, the pool otherwise.
func (r *DeliveryRepositoryImpl) queryer() sqlx.ExtContext {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *DeliveryRepositoryImpl) GetRestaurantByID(ctx context.Context, id int64) (data domain.Restaurant, err error) {
	row := r.queryer().QueryRowxContext(ctx, "SELECT * FROM restaurants WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrRestaurantNotFound
		}
		log.Error().Err(err).Str("component", "GetRestaurantByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *DeliveryRepositoryImpl) GetActiveZonesByRestaurantID(ctx context.Context, restaurantID int64) (data []domain.DeliveryZone, err error) {
	// inactive zones are excluded at the source so the resolver stays pure
	err = sqlx.SelectContext(ctx, r.queryer(), &data,
		"SELECT * FROM delivery_zones WHERE restaurant_id = $1 AND is_active = true AND deleted_at IS NULL", restaurantID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetActiveZonesByRestaurantID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *DeliveryRepositoryImpl) CountZonesByRestaurantID(ctx context.Context, restaurantID int64) (count int64, err error) {
	err = sqlx.GetContext(ctx, r.queryer(), &count,
		"SELECT COUNT(*) FROM delivery_zones WHERE restaurant_id = $1 AND deleted_at IS NULL", restaurantID)
	if err != nil {
		log.Error().Err(err).Str("component", "CountZonesByRestaurantID").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *DeliveryRepositoryImpl) GetCommissionConfigByRestaurantID(ctx context.Context, restaurantID int64) (data domain.CommissionConfig, err error) {
	// an active restaurant-specific row replaces the global default wholesale
	row := r.queryer().QueryRowxContext(ctx,
		"SELECT * FROM commission_configs WHERE restaurant_id = $1 AND is_active = true AND deleted_at IS NULL", restaurantID)
	err = row.StructScan(&data)
	if err == nil {
		return data, nil
	}
	if err != sql.ErrNoRows {
		log.Error().Err(err).Str("component", "GetCommissionConfigByRestaurantID").Msg("")
		return data, errs.ErrInternalServer
	}

	row = r.queryer().QueryRowxContext(ctx,
		"SELECT * FROM commission_configs WHERE restaurant_id IS NULL AND is_active = true AND deleted_at IS NULL")
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			// the global default must always exist; a missing row blocks splits
			return data, errs.ErrCommissionConfigInvalid
		}
		log.Error().Err(err).Str("component", "GetCommissionConfigByRestaurantID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *DeliveryRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id int64, err error) {
	nstmt, err := r.tx.PrepareNamedContext(ctx, "INSERT INTO orders(restaurant_id, zone_id, zone_name, delivery_address, delivery_lat, delivery_lon, subtotal, delivery_fee, amount, eta_min_minutes, eta_max_minutes, transaction_number, payment_status, expired_at, created_at, updated_at) VALUES (:restaurant_id, :zone_id, :zone_name, :delivery_address, :delivery_lat, :delivery_lon, :subtotal, :delivery_fee, :amount, :eta_min_minutes, :eta_max_minutes, :transaction_number, :payment_status, :expired_at, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return data.ID, nil
}

func (r *DeliveryRepositoryImpl) AddOrderItems(ctx context.Context, data []domain.OrderItem) (err error) {
	_, err = r.tx.NamedExecContext(ctx, "INSERT INTO order_items(order_id, menu_id, name, quantity, unit_price, created_at, updated_at) VALUES (:order_id, :menu_id, :name, :quantity, :unit_price, :created_at, :updated_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrderItems").Msg("")
		return
	}

	return nil
}

func (r *DeliveryRepositoryImpl) GetOrderByTransactionNumber(ctx context.Context, transactionNumber string) (data domain.Order, err error) {
	row := r.queryer().QueryRowxContext(ctx, "SELECT * FROM orders WHERE transaction_number = $1 AND deleted_at IS NULL", transactionNumber)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrNotFound
		}
		log.Error().Err(err).Str("component", "GetOrderByTransactionNumber").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *DeliveryRepositoryImpl) GetOrders(ctx context.Context, filter pkgdto.Filter) (data []domain.Order, err error) {
	query := "SELECT * FROM orders WHERE deleted_at IS NULL"

	args := make(map[string]interface{})

	if filter.RestaurantID != 0 {
		query += " AND restaurant_id = :restaurant_id"
		args["restaurant_id"] = filter.RestaurantID
	}

	if filter.PaymentStatus != "" {
		query += " AND payment_status = :payment_status"
		args["payment_status"] = filter.PaymentStatus
	}

	if filter.Expired {
		query += " AND expired_at < extract(epoch from now())"
	}

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
		return nil, err
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
		return nil, err
	}

	return
}

func (r *DeliveryRepositoryImpl) CountOrders(ctx context.Context, filter pkgdto.Filter) (count int64, err error) {
	query := "SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL"

	args := make(map[string]interface{})

	if filter.RestaurantID != 0 {
		query += " AND restaurant_id = :restaurant_id"
		args["restaurant_id"] = filter.RestaurantID
	}

	if filter.PaymentStatus != "" {
		query += " AND payment_status = :payment_status"
		args["payment_status"] = filter.PaymentStatus
	}

	if filter.Expired {
		query += " AND expired_at < extract(epoch from now())"
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "CountOrders").Msg("")
		return 0, err
	}

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountOrders").Msg("")
		return 0, err
	}

	return
}

func (r *DeliveryRepositoryImpl) UpdateOrderPaymentStatus(ctx context.Context, data domain.Order) (err error) {
	_, err = sqlx.NamedExecContext(ctx, r.queryer(), "UPDATE orders SET payment_status = :payment_status, paid_at = :paid_at, updated_at = :updated_at WHERE id = :id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderPaymentStatus").Msg("")
		return
	}

	return nil
}

func (r *DeliveryRepositoryImpl) AddPaymentSplit(ctx context.Context, data domain.PaymentSplit) (id int64, err error) {
	nstmt, err := r.tx.PrepareNamedContext(ctx, "INSERT INTO payment_splits(order_id, restaurant_id, total_order_amount, restaurant_amount, super_admin_amount, platform_owner_amount, driver_amount, is_paid, created_at) VALUES (:order_id, :restaurant_id, :total_order_amount, :restaurant_amount, :super_admin_amount, :platform_owner_amount, :driver_amount, :is_paid, :created_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddPaymentSplit").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPaymentSplit").Msg("")
		return
	}

	return data.ID, nil
}

func (r *DeliveryRepositoryImpl) GetPaymentSplitByOrderID(ctx context.Context, orderID int64) (data domain.PaymentSplit, err error) {
	row := r.queryer().QueryRowxContext(ctx, "SELECT * FROM payment_splits WHERE order_id = $1", orderID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrNotFound
		}
		log.Error().Err(err).Str("component", "GetPaymentSplitByOrderID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

// HandleTrx runs fn inside one transaction. The error is a named return so
// the deferred commit failure reaches the caller: money-moving writes must
// never report success on a transaction that did not land.
func (r *DeliveryRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo DeliveryRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	trxRepo := &DeliveryRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, trxRepo)

	return err
}
