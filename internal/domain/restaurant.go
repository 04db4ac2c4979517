package domain

// Restaurant carries the flat-rate delivery defaults used when a restaurant
// has no delivery zones configured at all.
type Restaurant struct {
	ID              int64   `db:"id"`
	Name            string  `db:"name"`
	Address         string  `db:"address"`
	Latitude        float64 `db:"latitude"`
	Longitude       float64 `db:"longitude"`
	DeliveryFee     Money   `db:"delivery_fee"`
	MinimumOrder    Money   `db:"minimum_order"`
	DeliveryTimeMin int     `db:"delivery_time_min"`
	DeliveryTimeMax int     `db:"delivery_time_max"`
	IsActive        bool    `db:"is_active"`
	CreatedAt       int64   `db:"created_at"`
	UpdatedAt       int64   `db:"updated_at"`
	DeletedAt       *int64  `db:"deleted_at"`
}
