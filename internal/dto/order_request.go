package dto

type OrderItem struct {
	MenuID    string  `json:"menu_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderRequest is the checkout draft. Items arrive already priced by the menu
// layer; the engine owns deliverability, the delivery fee and the split.
type OrderRequest struct {
	RestaurantID    int64       `json:"restaurant_id"`
	DeliveryAddress string      `json:"delivery_address"`
	OrderItems      []OrderItem `json:"order_items"`
}

type AddressValidationRequest struct {
	RestaurantID int64  `json:"restaurant_id"`
	Address      string `json:"address"`
}
