package dto

type Filter struct {
	Limit         int    `query:"limit"`
	Page          int    `query:"page"`
	RestaurantID  int64  `query:"restaurant_id"`
	PaymentStatus string `query:"payment_status"`
	Expired       bool   `query:"expired"`
}

type Metadata struct {
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
}

type Pagination struct {
	Metadata Metadata    `json:"_metadata"`
	Records  interface{} `json:"records"`
}
