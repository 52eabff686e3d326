package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/commercekit/backoffice/internal/domain"
	pkgkafka "github.com/commercekit/backoffice/pkg/kafka"
)

// Kafka topics for back-office domain events.
const (
	TopicInventoryCreated  = "backoffice.inventory.created"
	TopicInventoryUpdated  = "backoffice.inventory.updated"
	TopicInventoryDeleted  = "backoffice.inventory.deleted"
	TopicInventoryLowStock = "backoffice.inventory.low_stock"
	TopicProductCreated    = "backoffice.product.created"
	TopicProductUpdated    = "backoffice.product.updated"
)

// Aggregate type constants.
const (
	AggregateTypeInventory = "inventory_record"
	AggregateTypeProduct   = "product"
)

// Source identifier for events originating from this service.
const Source = "backoffice"

// InventoryEventData is the payload for inventory lifecycle events.
type InventoryEventData struct {
	RecordID          string `json:"record_id"`
	ProductID         string `json:"product_id"`
	Quantity          int    `json:"quantity"`
	UsedQuantity      int    `json:"used_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
	Status            string `json:"status"`
}

// InventoryLowStockData is the payload for an inventory.low_stock event.
type InventoryLowStockData struct {
	RecordID          string `json:"record_id"`
	ProductID         string `json:"product_id"`
	AvailableQuantity int    `json:"available_quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

// ProductEventData is the payload for product lifecycle events.
type ProductEventData struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsActive  bool   `json:"is_active"`
}

// Producer publishes back-office domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

func inventoryData(rec *domain.InventoryRecord) InventoryEventData {
	return InventoryEventData{
		RecordID:          rec.ID,
		ProductID:         rec.ProductID,
		Quantity:          rec.Quantity,
		UsedQuantity:      rec.UsedQuantity,
		AvailableQuantity: rec.AvailableQuantity,
		Status:            rec.Status,
	}
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	event, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, Source, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	return nil
}

// PublishInventoryCreated publishes an inventory.created event.
func (p *Producer) PublishInventoryCreated(ctx context.Context, rec *domain.InventoryRecord) error {
	return p.publish(ctx, TopicInventoryCreated, rec.ID, AggregateTypeInventory, inventoryData(rec))
}

// PublishInventoryUpdated publishes an inventory.updated event.
func (p *Producer) PublishInventoryUpdated(ctx context.Context, rec *domain.InventoryRecord) error {
	return p.publish(ctx, TopicInventoryUpdated, rec.ID, AggregateTypeInventory, inventoryData(rec))
}

// PublishInventoryDeleted publishes an inventory.deleted event.
func (p *Producer) PublishInventoryDeleted(ctx context.Context, recordID string) error {
	return p.publish(ctx, TopicInventoryDeleted, recordID, AggregateTypeInventory,
		InventoryEventData{RecordID: recordID})
}

// PublishInventoryLowStock publishes an inventory.low_stock event.
func (p *Producer) PublishInventoryLowStock(ctx context.Context, rec *domain.InventoryRecord) error {
	data := InventoryLowStockData{
		RecordID:          rec.ID,
		ProductID:         rec.ProductID,
		AvailableQuantity: rec.AvailableQuantity,
		LowStockThreshold: rec.LowStockThreshold,
	}
	if err := p.publish(ctx, TopicInventoryLowStock, rec.ID, AggregateTypeInventory, data); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "published low stock event",
		slog.String("record_id", rec.ID),
		slog.String("product_id", rec.ProductID),
		slog.Int("available", rec.AvailableQuantity),
	)
	return nil
}

// PublishProductCreated publishes a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	return p.publish(ctx, TopicProductCreated, product.ID, AggregateTypeProduct, ProductEventData{
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		IsActive:  product.IsActive,
	})
}

// PublishProductUpdated publishes a product.updated event.
func (p *Producer) PublishProductUpdated(ctx context.Context, product *domain.Product) error {
	return p.publish(ctx, TopicProductUpdated, product.ID, AggregateTypeProduct, ProductEventData{
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		IsActive:  product.IsActive,
	})
}
