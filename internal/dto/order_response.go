package dto

// DeliveryValidationResult is the transient outcome of validating a delivery
// address against a restaurant's zone catalog. Zone fields are only populated
// when the address is deliverable. The numeric fields are always serialized:
// a free-delivery zone legitimately prices at 0.
type DeliveryValidationResult struct {
	IsValid       bool    `json:"is_valid"`
	Reason        string  `json:"reason,omitempty"`
	ZoneName      string  `json:"zone_name,omitempty"`
	DeliveryFee   float64 `json:"delivery_fee"`
	MinimumOrder  float64 `json:"minimum_order"`
	EtaMinMinutes int     `json:"eta_min_minutes"`
	EtaMaxMinutes int     `json:"eta_max_minutes"`
}

type OrderResponse struct {
	ID                int64   `json:"id"`
	TransactionNumber string  `json:"transaction_number"`
	RestaurantID      int64   `json:"restaurant_id"`
	ZoneName          *string `json:"zone_name,omitempty"`
	Subtotal          float64 `json:"subtotal"`
	DeliveryFee       float64 `json:"delivery_fee"`
	TransactionAmount float64 `json:"transaction_amount"`
	EtaMinMinutes     int     `json:"eta_min_minutes"`
	EtaMaxMinutes     int     `json:"eta_max_minutes"`
	PaymentStatus     string  `json:"payment_status"`
	PaymentExpiredAt  *int64  `json:"payment_expired_at,omitempty"`
}

type PaymentSplitResponse struct {
	OrderID             int64   `json:"order_id,omitempty"`
	RestaurantID        int64   `json:"restaurant_id"`
	TotalOrderAmount    float64 `json:"total_order_amount"`
	RestaurantAmount    float64 `json:"restaurant_amount"`
	SuperAdminAmount    float64 `json:"super_admin_amount"`
	PlatformOwnerAmount float64 `json:"platform_owner_amount"`
	DriverAmount        float64 `json:"driver_amount"`
	IsPaid              bool    `json:"is_paid"`
}
