package domain

import "time"

type Favorite struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	ProductID  string    `json:"productId"`
	CreatedAt  time.Time `json:"createdAt"`
}
