package domain

import "time"

type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
