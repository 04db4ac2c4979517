package domain

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusExpired = "expired"
)

// Order is a customer order priced by the delivery engine. Amount is the
// order total charged to the customer: item subtotal plus the resolved
// delivery fee.
type Order struct {
	ID                int64   `db:"id"`
	RestaurantID      int64   `db:"restaurant_id"`
	ZoneID            *int64  `db:"zone_id"`
	ZoneName          *string `db:"zone_name"`
	DeliveryAddress   string  `db:"delivery_address"`
	DeliveryLat       float64 `db:"delivery_lat"`
	DeliveryLon       float64 `db:"delivery_lon"`
	Subtotal          Money   `db:"subtotal"`
	DeliveryFee       Money   `db:"delivery_fee"`
	Amount            Money   `db:"amount"`
	EtaMinMinutes     int     `db:"eta_min_minutes"`
	EtaMaxMinutes     int     `db:"eta_max_minutes"`
	TransactionNumber string  `db:"transaction_number"`
	PaymentStatus     string  `db:"payment_status"`
	PaidAt            *int64  `db:"paid_at"`
	ExpiredAt         int64   `db:"expired_at"`
	CreatedAt         int64   `db:"created_at"`
	UpdatedAt         int64   `db:"updated_at"`
	DeletedAt         *int64  `db:"deleted_at"`
	OrderItems        []OrderItem
}

// OrderItem is one menu line on an order.
type OrderItem struct {
	ID        int64  `db:"id"`
	OrderID   int64  `db:"order_id"`
	MenuID    string `db:"menu_id"`
	Name      string `db:"name"`
	Quantity  int64  `db:"quantity"`
	UnitPrice Money  `db:"unit_price"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
	DeletedAt *int64 `db:"deleted_at"`
}

// ZoneResolution is the outcome of matching a delivery point against a
// restaurant's zone catalog. HasZones distinguishes "no zone system
// configured" (flat-rate fallback) from "zones exist, none matched"
// (undeliverable); an all-inactive zone set still counts as HasZones.
type ZoneResolution struct {
	HasZones bool
	Matched  bool
	Zone     DeliveryZone
}
