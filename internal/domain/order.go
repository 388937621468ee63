package domain

import "time"

// Order statuses walked by the back office after placement.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order owns its totals once created; later cart or promotion changes never
// touch it.
type Order struct {
	ID            string      `json:"id"`
	Number        string      `json:"number"`
	CustomerID    string      `json:"customerId"`
	Status        string      `json:"status"`
	Subtotal      int64       `json:"subtotal"`
	Discount      int64       `json:"discount"`
	ShippingFee   int64       `json:"shippingFee"`
	Total         int64       `json:"total"`
	PromotionCode string      `json:"promotionCode,omitempty"`
	Recipient     Recipient   `json:"recipient"`
	CreatedAt     time.Time   `json:"createdAt"`
	Lines         []OrderLine `json:"lines,omitempty"`
}

type OrderLine struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Size      *string `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unitPrice"`
	Total     int64   `json:"total"`
}

// Recipient holds the shipping contact fields collected at checkout.
type Recipient struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Note     string `json:"note,omitempty"`
}
