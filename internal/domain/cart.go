package domain

import "time"

// Cart states. A cart is active until an order is placed from it.
const (
	CartStateActive  = "active"
	CartStateOrdered = "ordered"
)

type Cart struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	State      string     `json:"state"`
	CreatedAt  time.Time  `json:"createdAt"`
	Lines      []CartLine `json:"lines,omitempty"`
}

// CartLine captures the unit price at add-to-cart time; it is not re-read
// from the catalog at checkout.
type CartLine struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cartId"`
	ProductID string    `json:"productId"`
	Size      *string   `json:"size,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unitPrice"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}
