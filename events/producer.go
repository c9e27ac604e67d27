// Package events publishes order lifecycle events for downstream consumers
// (fulfilment, notifications). Publishing is an explicit post-commit step
// invoked by the checkout handler, never a storage-layer hook, so the
// creation path stays auditable. Delivery is best-effort: a failed publish
// is logged, the order stands.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Abdessamed08/boutique-api/models"
)

type OrderCreatedEvent struct {
	EventID   string             `json:"event_id"`
	OrderID   uint               `json:"order_id"`
	OrderRef  string             `json:"order_ref"`
	UserID    string             `json:"user_id"`
	Total     string             `json:"total"`
	Items     []models.OrderItem `json:"items"`
	Status    string             `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

type Producer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewProducer builds a kafka-backed producer, or a disabled one when no
// brokers are configured (local dev runs without kafka).
func NewProducer(brokers, topic string, logger *zap.Logger) *Producer {
	if brokers == "" {
		return &Producer{logger: logger}
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	return &Producer{writer: writer, logger: logger}
}

func (p *Producer) PublishOrderCreated(ctx context.Context, order *models.Order) {
	if p.writer == nil {
		return
	}

	event := OrderCreatedEvent{
		EventID:   uuid.NewString(),
		OrderID:   order.ID,
		OrderRef:  order.OrderRef,
		UserID:    order.UserID,
		Total:     order.Total.String(),
		Items:     order.Items,
		Status:    string(order.Status),
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal order event", zap.Error(err))
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("ORDER#%d", order.ID)),
		Value: data,
	})
	if err != nil {
		p.logger.Error("Failed to publish order event",
			zap.String("order_ref", order.OrderRef),
			zap.Error(err))
	}
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
