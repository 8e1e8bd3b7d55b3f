package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/service"

	"github.com/segmentio/kafka-go"
)

// OrderProducer publishes order lifecycle events for downstream consumers
// (notification board sounds, dashboards). It implements service.EventBus.
type OrderProducer struct {
	writer *kafka.Writer
}

func NewOrderProducer(brokers []string, topic string) *OrderProducer {
	return &OrderProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (p *OrderProducer) publish(ctx context.Context, key, eventType string, data any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(envelope{Type: eventType, Data: data})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *OrderProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return p.publish(ctx, e.OrderNumber, "order.created", e)
}

func (p *OrderProducer) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	return p.publish(ctx, e.OrderNumber, "order.status_changed", e)
}

func (p *OrderProducer) Close() error {
	return p.writer.Close()
}
