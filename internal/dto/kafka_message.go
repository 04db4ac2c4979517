package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type OrderFinalizedEvent struct {
	TransactionNumber string  `json:"transaction_number"`
	RestaurantID      int64   `json:"restaurant_id"`
	ZoneName          *string `json:"zone_name,omitempty"`
	Amount            float64 `json:"amount"`
}

type PaymentSplitCreatedEvent struct {
	TransactionNumber   string  `json:"transaction_number"`
	OrderID             int64   `json:"order_id"`
	RestaurantID        int64   `json:"restaurant_id"`
	TotalOrderAmount    float64 `json:"total_order_amount"`
	RestaurantAmount    float64 `json:"restaurant_amount"`
	SuperAdminAmount    float64 `json:"super_admin_amount"`
	PlatformOwnerAmount float64 `json:"platform_owner_amount"`
	DriverAmount        float64 `json:"driver_amount"`
	PaymentCycle        string  `json:"payment_cycle"`
}
