package models

// Order is a single purchase record served by GET /orders/{order_id}.
type Order struct {
	ID       int64   `json:"id"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}
