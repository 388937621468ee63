// Package events publishes order lifecycle events to RabbitMQ. Publishing is
// best-effort from the API's point of view: a broker outage never fails an
// order.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"jewelstore/internal/domain"
)

const OrderCreatedQueue = "order.created"

// OrderCreated is the wire contract consumed by fulfillment tooling.
type OrderCreated struct {
	EventType  string             `json:"eventType"`
	OrderID    string             `json:"orderId"`
	Number     string             `json:"number"`
	CustomerID string             `json:"customerId"`
	Total      int64              `json:"total"`
	Lines      []OrderCreatedLine `json:"lines"`
	Timestamp  time.Time          `json:"timestamp"`
}

type OrderCreatedLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher opens a channel and declares the queue so publishing never
// fails on missing infra.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(OrderCreatedQueue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare %s: %w", OrderCreatedQueue, err)
	}
	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, o *domain.Order) error {
	ev := OrderCreated{
		EventType:  "OrderCreated",
		OrderID:    o.ID,
		Number:     o.Number,
		CustomerID: o.CustomerID,
		Total:      o.Total,
		Timestamp:  time.Now().UTC(),
	}
	for _, line := range o.Lines {
		ev.Lines = append(ev.Lines, OrderCreatedLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderCreated: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",
		OrderCreatedQueue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
