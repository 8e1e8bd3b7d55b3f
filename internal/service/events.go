package service

import (
	"context"
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/models"

	"github.com/google/uuid"
)

type OrderItemEvent struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total_cents"`
}

type OrderCreatedEvent struct {
	OrderID     uuid.UUID        `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	CustomerID  uuid.UUID        `json:"customer_id"`
	Items       []OrderItemEvent `json:"items"`
	TotalCents  int64            `json:"total_cents"`
	CreatedAt   time.Time        `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID     uuid.UUID          `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	From        models.OrderStatus `json:"from"`
	To          models.OrderStatus `json:"to"`
	ChangedAt   time.Time          `json:"changed_at"`
}

// EventBus is the optional notification side-channel. A nil bus disables
// publishing; publish failures never fail the originating request.
type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, e OrderStatusChangedEvent) error
}
